package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Interfaces para abstrair o SDK da AWS (permite mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// GetParameter lê um parâmetro do Parameter Store (SecureString é decifrada).
func GetParameter(ctx context.Context, client SSMClient, name string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("ssm get parameter %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("ssm parameter %s has no value", name)
	}
	return *out.Parameter.Value, nil
}

// GetSecret lê um segredo do Secrets Manager. Com "id#campo", o segredo é
// tratado como objeto JSON e apenas o campo é devolvido.
func GetSecret(ctx context.Context, client SecretsClient, ref string) (string, error) {
	secretID, field, hasField := strings.Cut(ref, "#")

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("secretsmanager get secret %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretID)
	}
	if !hasField {
		return *out.SecretString, nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(*out.SecretString), &data); err != nil {
		return "", fmt.Errorf("secret %s is not a JSON object: %w", secretID, err)
	}
	val, ok := data[field]
	if !ok {
		return "", fmt.Errorf("secret %s has no field %s", secretID, field)
	}
	return fmt.Sprintf("%v", val), nil
}

// ResolveTableName devolve o nome da tabela guardado no parâmetro, ou
// fallback quando nenhum parâmetro foi configurado.
func ResolveTableName(ctx context.Context, client SSMClient, parameter, fallback string) (string, error) {
	if parameter == "" {
		return fallback, nil
	}
	name, err := GetParameter(ctx, client, parameter)
	if err != nil {
		return "", fmt.Errorf("resolve table name: %w", err)
	}
	return name, nil
}

// lazySSM só cria o client real na primeira chamada, para que o boot não
// dependa de credenciais quando nenhum parâmetro é usado.
type lazySSM struct {
	region string
	once   sync.Once
	client *ssm.Client
	err    error
}

// NewSSMClient devolve um SSMClient lazy na região indicada ("" usa a default).
func NewSSMClient(region string) SSMClient {
	return &lazySSM{region: region}
}

func (l *lazySSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	l.once.Do(func() {
		cfg, err := GetAWSConfig(ctx)
		if err != nil {
			l.err = err
			return
		}
		l.client = ssm.NewFromConfig(cfg, func(o *ssm.Options) {
			if l.region != "" {
				o.Region = l.region
			}
		})
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.client.GetParameter(ctx, params, optFns...)
}

type lazySecrets struct {
	region string
	once   sync.Once
	client *secretsmanager.Client
	err    error
}

// NewSecretsClient devolve um SecretsClient lazy na região indicada.
func NewSecretsClient(region string) SecretsClient {
	return &lazySecrets{region: region}
}

func (l *lazySecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	l.once.Do(func() {
		cfg, err := GetAWSConfig(ctx)
		if err != nil {
			l.err = err
			return
		}
		l.client = secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
			if l.region != "" {
				o.Region = l.region
			}
		})
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.client.GetSecretValue(ctx, params, optFns...)
}
