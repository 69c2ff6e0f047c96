package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedBody indica um corpo que não é JSON (ou base64) válido
	ErrMalformedBody = errors.New("malformed body")
	// ErrInvalidInput indica um corpo ou parâmetro bem formado mas inválido
	ErrInvalidInput = errors.New("invalid input")
)

// inputError preserva a mensagem original e permite errors.Is com o kind.
type inputError struct {
	kind error
	err  error
}

func (e *inputError) Error() string { return e.err.Error() }

func (e *inputError) Unwrap() []error { return []error{e.kind, e.err} }

// MalformedBody classifica err como ErrMalformedBody sem alterar a mensagem
func MalformedBody(err error) error {
	return &inputError{kind: ErrMalformedBody, err: err}
}

// InvalidInput cria um erro ErrInvalidInput com a mensagem formatada
func InvalidInput(format string, args ...any) error {
	return &inputError{kind: ErrInvalidInput, err: fmt.Errorf(format, args...)}
}
