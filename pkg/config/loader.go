package config

import (
	"context"
	"fmt"
	"os"

	"github.com/raywall/users-function/envloader"
	"github.com/raywall/users-function/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// Load monta a configuração na ordem: arquivo YAML opcional (path), variáveis
// de ambiente, placeholders ${env|ssm|secret.*} e por fim a validação.
func Load(ctx context.Context, path string, inj *injector.Injector) (*FunctionConfig, error) {
	return load(ctx, path, nil, inj)
}

// load lê o ambiente do processo quando lookup é nil
func load(ctx context.Context, path string, lookup envloader.LookupFunc, inj *injector.Injector) (*FunctionConfig, error) {
	cfg := &FunctionConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler arquivo de configuração: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("falha ao parsear YAML: %w", err)
		}
	}

	var err error
	if lookup == nil {
		err = envloader.Load(cfg)
	} else {
		err = envloader.LoadWithLookup(cfg, lookup)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar variáveis de ambiente: %w", err)
	}

	if inj != nil {
		if err := inj.Inject(ctx, cfg); err != nil {
			return nil, fmt.Errorf("falha ao resolver placeholders: %w", err)
		}
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
