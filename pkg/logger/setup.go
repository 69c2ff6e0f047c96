package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/users-function/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure inicializa o logger global baseando-se na configuração.
func Configure(cfg config.LoggingConf, service string) zerolog.Logger {
	return ConfigureOutput(cfg, service, os.Stdout)
}

// ConfigureOutput funciona como Configure, escrevendo em out.
func ConfigureOutput(cfg config.LoggingConf, service string, out io.Writer) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// JSON para produção (CloudWatch), console "bonito" para local
	output := out
	if level == zerolog.Disabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	// log.Ctx(ctx) sem logger no contexto cai no DefaultContextLogger
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	return logger
}
