package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Métricas emitidas por requisição
var (
	RequestsMetric = MetricDefinition{Name: "requests", Type: TypeCount}
	LatencyMetric  = MetricDefinition{Name: "latency_ms", Type: TypeHistogram}
	ErrorsMetric   = MetricDefinition{Name: "errors", Type: TypeCount}
)

// Recorder traduz o resultado de uma requisição em métricas do Provider.
type Recorder struct {
	provider Provider
}

func NewRecorder(provider Provider) *Recorder {
	return &Recorder{provider: provider}
}

// ObserveRequest registra contagem, latência e (status >= 400) erro da rota.
// Todas as métricas são enviadas mesmo que alguma falhe.
func (r *Recorder) ObserveRequest(route string, status int, latency time.Duration) error {
	tags := []string{
		"route:" + route,
		"status:" + strconv.Itoa(status),
	}

	errs := []error{
		r.emit(RequestsMetric, 1, tags),
		r.emit(LatencyMetric, float64(latency.Milliseconds()), tags),
	}
	if status >= 400 {
		errs = append(errs, r.emit(ErrorsMetric, 1, tags))
	}
	return errors.Join(errs...)
}

func (r *Recorder) emit(def MetricDefinition, val float64, tags []string) error {
	var err error
	switch def.Type {
	case TypeCount:
		err = r.provider.Count(def.Name, val, tags)
	case TypeGauge:
		err = r.provider.Gauge(def.Name, val, tags)
	case TypeHistogram:
		err = r.provider.Histogram(def.Name, val, tags)
	default:
		return fmt.Errorf("tipo de métrica desconhecido: %s", def.Type)
	}
	if err != nil {
		return fmt.Errorf("falha ao enviar métrica %s: %w", def.Name, err)
	}
	return nil
}
