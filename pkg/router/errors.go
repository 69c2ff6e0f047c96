package router

import (
	"errors"
	"net/http"

	"github.com/raywall/users-function/dyndb"
	"github.com/raywall/users-function/pkg/users/models"
)

// ErrUnsupportedRoute classifica route keys fora da tabela de rotas
var ErrUnsupportedRoute = errors.New("unsupported route")

// UnsupportedRouteError carrega a route key recebida
type UnsupportedRouteError struct {
	RouteKey string
}

func (e *UnsupportedRouteError) Error() string {
	return `Unsupported route: "` + e.RouteKey + `"`
}

func (e *UnsupportedRouteError) Is(target error) bool {
	return target == ErrUnsupportedRoute
}

// userNotFoundError é o erro de um PATCH sobre um userId inexistente
type userNotFoundError struct {
	userID string
}

func (e *userNotFoundError) Error() string {
	return "User " + e.userID + " not found"
}

func (e *userNotFoundError) Unwrap() error { return dyndb.ErrNotFound }

// statusFor mapeia um erro para o status HTTP. Em modo uniforme tudo é 400.
func statusFor(err error, uniform bool) int {
	if uniform {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, ErrUnsupportedRoute),
		errors.Is(err, models.ErrMalformedBody),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, dyndb.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, dyndb.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
