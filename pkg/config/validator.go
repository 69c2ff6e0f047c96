package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Nomes de tabela aceitos pelo DynamoDB
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,255}$`)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *FunctionConfig) error {
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *FunctionConfig) error {
	// O nome vindo do SSM só é conhecido no boot; aqui validamos o literal
	if cfg.Table.NameParameter == "" && !tableNamePattern.MatchString(cfg.Table.Name) {
		return fmt.Errorf("nome de tabela inválido: '%s'", cfg.Table.Name)
	}

	d, err := time.ParseDuration(cfg.Service.Timeout)
	if err != nil {
		return fmt.Errorf("timeout inválido '%s': %w", cfg.Service.Timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout deve ser positivo: '%s'", cfg.Service.Timeout)
	}

	return nil
}
