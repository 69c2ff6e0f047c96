// dyndb/scan.go
package dyndb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// List executa uma página de Scan. limit <= 0 deixa o DynamoDB decidir
// (até 1MB por página).
func (s *dynamoStore[T]) List(ctx context.Context, limit int32, token string) ([]T, string, error) {
	startKey, err := decodeToken(token)
	if err != nil {
		return nil, "", err
	}

	input := &dynamodb.ScanInput{
		TableName:         aws.String(s.cfg.TableName),
		ConsistentRead:    aws.Bool(true),
		ExclusiveStartKey: startKey,
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	out, err := s.client.Scan(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("dynamostore: scan failed: %w", err)
	}

	items, err := unmarshalItems[T](out.Items)
	if err != nil {
		return nil, "", err
	}

	next, err := encodeToken(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", err
	}
	return items, next, nil
}

// ScanAll segue o LastEvaluatedKey até o fim da tabela
func (s *dynamoStore[T]) ScanAll(ctx context.Context) ([]T, error) {
	result := make([]T, 0)
	token := ""
	for {
		page, next, err := s.List(ctx, 0, token)
		if err != nil {
			return nil, err
		}
		result = append(result, page...)
		if next == "" {
			return result, nil
		}
		token = next
	}
}

func unmarshalItems[T any](items []map[string]types.AttributeValue) ([]T, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		var t T
		if err := attributevalue.UnmarshalMap(item, &t); err != nil {
			return nil, fmt.Errorf("dynamostore: unmarshal failed: %w", err)
		}
		result = append(result, t)
	}
	return result, nil
}

// encodeToken converte o LastEvaluatedKey em base64(JSON) usando tipos Go,
// já que types.AttributeValue é uma interface e não volta do JSON sozinho.
func encodeToken(lastKey map[string]types.AttributeValue) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}

	var plain map[string]any
	if err := attributevalue.UnmarshalMap(lastKey, &plain); err != nil {
		return "", fmt.Errorf("dynamostore: encode token failed: %w", err)
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("dynamostore: encode token failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func decodeToken(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var plain map[string]any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	key, err := attributevalue.MarshalMap(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return key, nil
}
