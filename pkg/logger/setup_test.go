package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/raywall/users-function/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	level := zerolog.GlobalLevel()
	global := log.Logger
	ctxLogger := zerolog.DefaultContextLogger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = global
		zerolog.DefaultContextLogger = ctxLogger
	})
}

func TestConfigure(t *testing.T) {
	t.Run("Default Level Info", func(t *testing.T) {
		restoreGlobals(t)
		_ = ConfigureOutput(config.LoggingConf{}, "users-function", &bytes.Buffer{})

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		restoreGlobals(t)
		_ = ConfigureOutput(config.LoggingConf{Level: "DEBUG"}, "users-function", &bytes.Buffer{})

		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("Nível inválido cai para info", func(t *testing.T) {
		restoreGlobals(t)
		_ = ConfigureOutput(config.LoggingConf{Level: "verbose"}, "users-function", &bytes.Buffer{})

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("JSON com service e logger de contexto padrão", func(t *testing.T) {
		restoreGlobals(t)
		var buf bytes.Buffer
		_ = ConfigureOutput(config.LoggingConf{Level: "info", Format: "json"}, "users-function", &buf)

		log.Ctx(context.Background()).Info().Str("route", "GET /users").Msg("ok")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "users-function", entry["service"])
		assert.Equal(t, "GET /users", entry["route"])
		assert.Equal(t, "ok", entry["message"])
	})

	t.Run("Console", func(t *testing.T) {
		restoreGlobals(t)
		var buf bytes.Buffer
		logger := ConfigureOutput(config.LoggingConf{Level: "info", Format: "console"}, "users-function", &buf)

		logger.Info().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
		assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})

	t.Run("Disabled Logger", func(t *testing.T) {
		restoreGlobals(t)
		var buf bytes.Buffer
		logger := ConfigureOutput(config.LoggingConf{Level: "disabled"}, "users-function", &buf)

		logger.Error().Msg("teste")
		assert.Empty(t, buf.String())
	})
}
