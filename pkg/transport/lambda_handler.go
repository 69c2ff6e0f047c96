package transport

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/raywall/users-function/pkg/metrics"
	"github.com/rs/zerolog/log"
)

// HeaderCorrelationID é lido da requisição e devolvido na resposta
const HeaderCorrelationID = "x-correlation-id"

// RequestRouter executa a rota de um evento HTTP API (payload v2)
type RequestRouter interface {
	Route(ctx context.Context, req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse
}

// LambdaHandler adapta eventos do API Gateway para o router de usuários
type LambdaHandler struct {
	router   RequestRouter
	recorder *metrics.Recorder
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(router RequestRouter, recorder *metrics.Recorder) *LambdaHandler {
	return &LambdaHandler{router: router, recorder: recorder}
}

// Handle processa a requisição Lambda. Erros do domínio já chegam como
// resposta do router, então o erro retornado é sempre nil.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	start := time.Now()

	corrID := correlationID(req)

	logger := log.With().
		Str("correlation_id", corrID).
		Str("route", req.RouteKey).
		Logger()
	// O router loga via log.Ctx(ctx), herdando correlation_id e route
	ctx = logger.WithContext(ctx)

	response := h.router.Route(ctx, req)

	latency := time.Since(start)
	logger.Info().
		Int("status", response.StatusCode).
		Int64("latency_ms", latency.Milliseconds()).
		Msg("lambda request completed")

	if h.recorder != nil {
		if err := h.recorder.ObserveRequest(req.RouteKey, response.StatusCode, latency); err != nil {
			logger.Warn().Err(err).Msg("failed to record metrics")
		}
	}

	// Injeta headers de observabilidade na resposta
	if response.Headers == nil {
		response.Headers = make(map[string]string)
	}
	response.Headers[HeaderCorrelationID] = corrID

	return response, nil
}

// correlationID usa o header, depois o request id do API Gateway e por fim um uuid novo
func correlationID(req events.APIGatewayV2HTTPRequest) string {
	for k, v := range req.Headers {
		// HTTP API entrega headers em minúsculas, mas chamadas diretas podem não
		if v != "" && strings.EqualFold(k, HeaderCorrelationID) {
			return v
		}
	}
	if req.RequestContext.RequestID != "" {
		return req.RequestContext.RequestID
	}
	return uuid.NewString()
}
