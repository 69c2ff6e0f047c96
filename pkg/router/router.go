package router

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/users-function/dyndb"
	"github.com/raywall/users-function/pkg/users/models"
	"github.com/rs/zerolog/log"
)

// Route keys reconhecidas (formato "METHOD /path" do API Gateway HTTP API)
const (
	RouteDeleteUser = "DELETE /users/{userId}"
	RouteGetUser    = "GET /users/{userId}"
	RouteListUsers  = "GET /users"
	RoutePutUser    = "PUT /users"
	RoutePatchUser  = "PATCH /users/{userId}"
)

const (
	PathParamUserID = "userId"

	// Query params opcionais do GET /users
	QueryParamLimit = "limit"
	QueryParamNext  = "next"

	// HeaderNextToken carrega o token da próxima página quando há paginação
	HeaderNextToken = "x-next-token"
)

// Repository é o contrato que o router espera da camada de dados
type Repository interface {
	Save(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Patch(ctx context.Context, userID string, patch models.UserPatch) error
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, limit int32, token string) ([]models.User, string, error)
	All(ctx context.Context) ([]models.User, error)
}

// notFoundBody é o placeholder devolvido (com 200) por GET /users/{userId}
type notFoundBody struct {
	Message string `json:"message"`
}

// result é o que cada rota produz em caso de sucesso
type result struct {
	body    any
	headers map[string]string
}

type handlerFunc func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (result, error)

// Router despacha eventos do API Gateway para as operações da tabela Users.
type Router struct {
	repo          Repository
	uniformErrors bool
	routes        map[string]handlerFunc
}

// Option configura o Router
type Option func(*Router)

// WithUniformErrorStatus faz todo erro responder 400, inclusive falhas do
// DynamoDB e PATCH sobre usuário inexistente.
func WithUniformErrorStatus(enabled bool) Option {
	return func(r *Router) {
		r.uniformErrors = enabled
	}
}

// New cria o Router. repo deve ser compartilhado entre invocações.
func New(repo Repository, opts ...Option) *Router {
	r := &Router{repo: repo}
	for _, opt := range opts {
		opt(r)
	}

	r.routes = map[string]handlerFunc{
		RouteDeleteUser: r.deleteUser,
		RouteGetUser:    r.getUser,
		RouteListUsers:  r.listUsers,
		RoutePutUser:    r.putUser,
		RoutePatchUser:  r.patchUser,
	}
	return r
}

// Routes lista as route keys atendidas
func Routes() []string {
	return []string{RouteDeleteUser, RouteGetUser, RouteListUsers, RoutePutUser, RoutePatchUser}
}

// Route executa a rota correspondente a req.RouteKey e monta a resposta.
// Erros nunca escapam: viram status + mensagem serializada como string JSON.
func (r *Router) Route(ctx context.Context, req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	handler, ok := r.routes[req.RouteKey]
	if !ok {
		return r.failure(ctx, req.RouteKey, &UnsupportedRouteError{RouteKey: req.RouteKey})
	}

	res, err := handler(ctx, req)
	if err != nil {
		return r.failure(ctx, req.RouteKey, err)
	}

	resp := respond(http.StatusOK, res.body)
	for k, v := range res.headers {
		resp.Headers[k] = v
	}
	return resp
}

func (r *Router) deleteUser(ctx context.Context, req events.APIGatewayV2HTTPRequest) (result, error) {
	userID, err := pathUserID(req)
	if err != nil {
		return result{}, err
	}
	if err := r.repo.Delete(ctx, userID); err != nil {
		return result{}, err
	}
	return result{body: fmt.Sprintf("Deleted user %s", userID)}, nil
}

func (r *Router) getUser(ctx context.Context, req events.APIGatewayV2HTTPRequest) (result, error) {
	userID, err := pathUserID(req)
	if err != nil {
		return result{}, err
	}

	user, err := r.repo.GetByID(ctx, userID)
	if errors.Is(err, dyndb.ErrNotFound) {
		return result{body: notFoundBody{Message: "User not found"}}, nil
	}
	if err != nil {
		return result{}, err
	}
	return result{body: user}, nil
}

func (r *Router) listUsers(ctx context.Context, req events.APIGatewayV2HTTPRequest) (result, error) {
	rawLimit, paged := req.QueryStringParameters[QueryParamLimit]
	if !paged {
		users, err := r.repo.All(ctx)
		if err != nil {
			return result{}, err
		}
		return result{body: nonNil(users)}, nil
	}

	limit, err := strconv.ParseInt(rawLimit, 10, 32)
	if err != nil || limit <= 0 {
		return result{}, models.InvalidInput("invalid %s query parameter: %q", QueryParamLimit, rawLimit)
	}

	users, next, err := r.repo.List(ctx, int32(limit), req.QueryStringParameters[QueryParamNext])
	if err != nil {
		return result{}, err
	}

	res := result{body: nonNil(users)}
	if next != "" {
		res.headers = map[string]string{HeaderNextToken: next}
	}
	return res, nil
}

func (r *Router) putUser(ctx context.Context, req events.APIGatewayV2HTTPRequest) (result, error) {
	body, err := requestBody(req)
	if err != nil {
		return result{}, err
	}

	user, err := models.DecodeUser(body)
	if err != nil {
		return result{}, err
	}
	if err := r.repo.Save(ctx, user); err != nil {
		return result{}, err
	}
	return result{body: fmt.Sprintf("User %s has been created/updated successfully.", user.UserID)}, nil
}

func (r *Router) patchUser(ctx context.Context, req events.APIGatewayV2HTTPRequest) (result, error) {
	userID, err := pathUserID(req)
	if err != nil {
		return result{}, err
	}

	body, err := requestBody(req)
	if err != nil {
		return result{}, err
	}

	patch, err := models.DecodePatch(userID, body)
	if err != nil {
		return result{}, err
	}

	err = r.repo.Patch(ctx, userID, patch)
	if errors.Is(err, dyndb.ErrNotFound) {
		return result{}, &userNotFoundError{userID: userID}
	}
	if err != nil {
		return result{}, err
	}
	return result{body: fmt.Sprintf("User %s has been updated successfully.", userID)}, nil
}

func (r *Router) failure(ctx context.Context, routeKey string, err error) events.APIGatewayV2HTTPResponse {
	status := statusFor(err, r.uniformErrors)

	logger := log.Ctx(ctx)
	if statusFor(err, false) >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("route", routeKey).Int("status", status).Msg("store operation failed")
	} else {
		logger.Warn().Err(err).Str("route", routeKey).Int("status", status).Msg("request rejected")
	}

	return respond(status, err.Error())
}

func pathUserID(req events.APIGatewayV2HTTPRequest) (string, error) {
	userID := req.PathParameters[PathParamUserID]
	if userID == "" {
		return "", models.InvalidInput("missing path parameter: %s", PathParamUserID)
	}
	return userID, nil
}

func requestBody(req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), nil
	}
	body, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return nil, models.MalformedBody(err)
	}
	return body, nil
}

func nonNil(users []models.User) []models.User {
	if users == nil {
		return []models.User{}
	}
	return users
}

// respond serializa body como JSON sem escapar <, > e &
func respond(status int, body any) events.APIGatewayV2HTTPResponse {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_ = enc.Encode(err.Error())
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}
}
