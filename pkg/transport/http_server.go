package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/raywall/users-function/pkg/config"
	"github.com/rs/zerolog/log"
)

// NewHTTPHandler expõe o LambdaHandler como http.Handler, reconstruindo o
// evento HTTP API a partir da requisição. routeKeys usa o formato
// "METHOD /path/{param}".
func NewHTTPHandler(h *LambdaHandler, routeKeys []string, timeout time.Duration) http.Handler {
	r := mux.NewRouter()

	for _, routeKey := range routeKeys {
		routeKey := routeKey // cópia por iteração (semântica go1.22+ sob go 1.21)
		method, path, ok := strings.Cut(routeKey, " ")
		if !ok {
			continue
		}
		r.HandleFunc(path, forward(h, timeout, func(*http.Request) string { return routeKey })).Methods(method)
	}

	// Sem match: o router devolve o erro de rota não suportada
	unmatched := forward(h, timeout, func(req *http.Request) string {
		return req.Method + " " + req.URL.Path
	})
	r.NotFoundHandler = unmatched
	r.MethodNotAllowedHandler = unmatched

	return r
}

// StartHTTPServer sobe o servidor local na porta configurada
func StartHTTPServer(h *LambdaHandler, routeKeys []string, cfg config.ServiceConf) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewHTTPHandler(h, routeKeys, cfg.GetTimeout()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Msgf("Servidor HTTP ouvindo em %s", srv.Addr)
	return srv.ListenAndServe()
}

func forward(h *LambdaHandler, timeout time.Duration, routeKey func(*http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		event, err := toEvent(r, routeKey(r))
		if err != nil {
			http.Error(w, `"failed to read request body"`, http.StatusBadRequest)
			return
		}

		resp, _ := h.Handle(ctx, event)

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func toEvent(r *http.Request, routeKey string) (events.APIGatewayV2HTTPRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayV2HTTPRequest{}, err
	}
	defer r.Body.Close()

	// HTTP API entrega headers em minúsculas
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[strings.ToLower(k)] = strings.Join(v, ",")
		}
	}

	var query map[string]string
	if values := r.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		for k, v := range values {
			query[k] = strings.Join(v, ",")
		}
	}

	var pathParams map[string]string
	if vars := mux.Vars(r); len(vars) > 0 {
		pathParams = vars
	}

	return events.APIGatewayV2HTTPRequest{
		Version:               "2.0",
		RouteKey:              routeKey,
		RawPath:               r.URL.Path,
		RawQueryString:        r.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: query,
		PathParameters:        pathParams,
		Body:                  string(body),
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    r.Method,
				Path:      r.URL.Path,
				SourceIP:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
			},
		},
	}, nil
}
