package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/raywall/users-function/envloader"
	"github.com/raywall/users-function/pkg/cloud"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.API_KEY}, ${ssm./users/table}, ${secret.users/config#table}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// Injector resolve placeholders em strings de structs de configuração.
type Injector struct {
	lookup  envloader.LookupFunc
	ssm     cloud.SSMClient
	secrets cloud.SecretsClient
}

type Option func(*Injector)

// WithLookup troca a fonte das variáveis ${env.*} (default: os.LookupEnv)
func WithLookup(lookup envloader.LookupFunc) Option {
	return func(i *Injector) { i.lookup = lookup }
}

// WithSSM habilita placeholders ${ssm.*}
func WithSSM(client cloud.SSMClient) Option {
	return func(i *Injector) { i.ssm = client }
}

// WithSecrets habilita placeholders ${secret.*}
func WithSecrets(client cloud.SecretsClient) Option {
	return func(i *Injector) { i.secrets = client }
}

func New(opts ...Option) *Injector {
	i := &Injector{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inject percorre target (ponteiro para struct) substituindo os placeholders
// encontrados em campos string, slices de string e mapas.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			field := v.Field(k)
			if !field.CanSet() {
				continue
			}
			if err := i.injectRecursive(ctx, field); err != nil {
				return fmt.Errorf("%s: %w", v.Type().Field(k).Name, err)
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolateString(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)

	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String && !v.IsNil() {
			return i.injectMap(ctx, v)
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}

		sub := pattern.FindStringSubmatch(match)
		val, resolveErr := i.fetchValue(ctx, sub[1], sub[2])
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return val
	})

	return result, err
}

// injectMap lida com mapas de string ou interface{} (inclusive aninhados)
func (i *Injector) injectMap(ctx context.Context, v reflect.Value) error {
	iter := v.MapRange()
	updates := make(map[string]reflect.Value)

	for iter.Next() {
		elem := iter.Value()
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if !elem.IsValid() {
			continue
		}

		switch elem.Kind() {
		case reflect.String:
			newVal, err := i.interpolateString(ctx, elem.String())
			if err != nil {
				return err
			}
			updates[iter.Key().String()] = reflect.ValueOf(newVal).Convert(v.Type().Elem())
		case reflect.Map:
			if elem.Type().Key().Kind() == reflect.String {
				if err := i.injectMap(ctx, elem); err != nil {
					return err
				}
			}
		}
	}

	for k, val := range updates {
		v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), val)
	}
	return nil
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	switch sourceType {
	case "env":
		// variável ausente vira string vazia
		val, _ := i.lookup(key)
		return val, nil

	case "ssm":
		if i.ssm == nil {
			return "", fmt.Errorf("placeholder ${ssm.%s} sem client SSM configurado", key)
		}
		return cloud.GetParameter(ctx, i.ssm, key)

	case "secret":
		if i.secrets == nil {
			return "", fmt.Errorf("placeholder ${secret.%s} sem client Secrets Manager configurado", key)
		}
		return cloud.GetSecret(ctx, i.secrets, key)
	}

	return "", fmt.Errorf("fonte desconhecida: %s", sourceType)
}
