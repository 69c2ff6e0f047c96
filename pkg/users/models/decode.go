package models

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validator.Validate é seguro para uso concorrente e mantém cache das structs
var validate = newValidator()

// newValidator reporta os campos pelo nome da tag json (ex: "email") e
// registra a regra "integer" para números sem parte fracionária.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("integer", isInteger)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// isInteger aceita 30 e 30.0, rejeita 30.5
func isInteger(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// DecodeUser lê o corpo de um PUT e valida o payload.
func DecodeUser(body []byte) (User, error) {
	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return User{}, MalformedBody(err)
	}
	if err := validateStruct(u); err != nil {
		return User{}, err
	}
	return u, nil
}

// DecodePatch lê o corpo de um PATCH. O userId do corpo, se enviado, precisa
// ser igual ao do path; o patch precisa alterar ao menos um campo.
func DecodePatch(userID string, body []byte) (UserPatch, error) {
	var p UserPatch
	if err := json.Unmarshal(body, &p); err != nil {
		return UserPatch{}, MalformedBody(err)
	}
	if p.UserID != nil && *p.UserID != userID {
		return UserPatch{}, InvalidInput("userId in body (%s) does not match path (%s)", *p.UserID, userID)
	}
	if err := validateStruct(p); err != nil {
		return UserPatch{}, err
	}
	if len(p.Changes()) == 0 {
		return UserPatch{}, InvalidInput("no fields to update")
	}
	return p, nil
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
		return InvalidInput("invalid user: %s", strings.Join(msgs, "; "))
	}
	return InvalidInput("invalid user: %v", err)
}
