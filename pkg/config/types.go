package config

import "time"

// FunctionConfig é a configuração completa da função de usuários.
// Cada campo pode vir do YAML (CONFIG_FILE_PATH) e ser sobreposto por env.
type FunctionConfig struct {
	Service ServiceConf `yaml:"service"`
	Table   TableConf   `yaml:"table"`
	AWS     AWSConf     `yaml:"aws"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
	Errors  ErrorsConf  `yaml:"errors"`
}

// ServiceConf contém os metadados e configurações de runtime.
type ServiceConf struct {
	Name    string `yaml:"name" env:"SERVICE_NAME" envDefault:"users-function" validate:"required,hostname_rfc1123"`
	Runtime string `yaml:"runtime" env:"RUNTIME" envDefault:"lambda" validate:"required,oneof=local lambda"`
	Port    int    `yaml:"port" env:"PORT" envDefault:"8080" validate:"required_if=Runtime local,gte=0,lt=65536"`
	Timeout string `yaml:"timeout" env:"REQUEST_TIMEOUT" envDefault:"10s" validate:"required"` // Ex: "500ms", "2s"
}

// TableConf identifica a tabela. NameParameter, quando informado, aponta
// para um parâmetro do SSM com o nome real da tabela.
type TableConf struct {
	Name          string `yaml:"name" env:"USERS_TABLE" envDefault:"Users" validate:"required"`
	NameParameter string `yaml:"name_parameter" env:"USERS_TABLE_SSM_PARAMETER"`
}

type AWSConf struct {
	Region   string `yaml:"region" env:"AWS_REGION"`
	Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"` // DynamoDB Local, LocalStack
}

type LoggingConf struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error disabled"`
	Format string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_ADDR" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"users."`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
}

// ErrorsConf controla o mapeamento de erros para status HTTP.
type ErrorsConf struct {
	// UniformStatus faz toda falha responder 400
	UniformStatus bool `yaml:"uniform_status" env:"UNIFORM_ERROR_STATUS"`
}

func (s ServiceConf) GetTimeout() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
