package observability

import (
	"testing"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/users-function/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMetrics(t *testing.T) {
	t.Run("Disabled returns Noop", func(t *testing.T) {
		cfg := config.MetricsConf{
			Datadog: config.DatadogConf{Enabled: false},
		}

		provider, err := SetupMetrics(cfg, "users-function")
		require.NoError(t, err)

		assert.IsType(t, &NoopProvider{}, provider)
		assert.NoError(t, provider.Count("requests", 1, nil))
	})

	t.Run("Enabled returns Datadog", func(t *testing.T) {
		cfg := config.MetricsConf{
			Datadog: config.DatadogConf{
				Enabled:   true,
				Addr:      "localhost:8125",
				Namespace: "users.",
				Tags:      []string{"env:test"},
			},
		}

		provider, err := SetupMetrics(cfg, "users-function")
		require.NoError(t, err)

		dd, ok := provider.(*DatadogProvider)
		require.True(t, ok, "Esperado DatadogProvider, recebido %T", provider)
		assert.NoError(t, dd.Close())
	})
}

func TestDatadogProvider_DelegatesToClient(t *testing.T) {
	// NoOpClient aceita tudo sem rede
	provider := &DatadogProvider{client: &statsd.NoOpClient{}}

	assert.NoError(t, provider.Count("requests", 1, []string{"route:GET /users"}))
	assert.NoError(t, provider.Gauge("inflight", 2, nil))
	assert.NoError(t, provider.Histogram("latency_ms", 12.5, nil))
	assert.NoError(t, provider.Close())
}
