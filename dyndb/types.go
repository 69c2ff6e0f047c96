// dyndb/types.go
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound – erro padrão quando o item não existe
var ErrNotFound = errors.New("dyndb: item not found")

// ErrNoChanges é retornado por Update quando não há atributos para gravar
var ErrNoChanges = errors.New("dyndb: no attributes to update")

// ErrInvalidToken indica um token de paginação que não pôde ser decodificado
var ErrInvalidToken = errors.New("dyndb: invalid pagination token")

// DynamoDBClient interface para abstrair o cliente DynamoDB.
// *dynamodb.Client satisfaz a interface.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store: interface principal (genérica)
type Store[T any] interface {
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	Put(ctx context.Context, item T) error
	Delete(ctx context.Context, hashKey, sortKey any) error

	// Update grava apenas os atributos informados em changes (SET).
	Update(ctx context.Context, hashKey, sortKey any, changes map[string]any, opts ...UpdateOption) error

	// List devolve uma página do Scan e o token da próxima ("" no fim).
	List(ctx context.Context, limit int32, token string) ([]T, string, error)
	// ScanAll percorre todas as páginas da tabela.
	ScanAll(ctx context.Context) ([]T, error)
}

// TableConfig: configuração da tabela
type TableConfig[T any] struct {
	TableName string `yaml:"name"`
	HashKey   string `yaml:"hash_key"`
	SortKey   string `yaml:"sort_key"` // opcional
}

// UpdateOption ajusta uma chamada de Update
type UpdateOption func(*updateOptions)

type updateOptions struct {
	mustExist bool
}

// MustExist condiciona o Update à existência do item
// (attribute_exists na hash key). Se o item não existir, Update retorna ErrNotFound.
func MustExist() UpdateOption {
	return func(o *updateOptions) {
		o.mustExist = true
	}
}

// ApplyUpdateOptions resolve as opções de Update. Usada pelo dynamoStore e
// por implementações alternativas de Store.
func ApplyUpdateOptions(opts ...UpdateOption) (mustExist bool) {
	var o updateOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o.mustExist
}
