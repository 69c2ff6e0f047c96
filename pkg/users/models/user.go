// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package models

// Nomes dos atributos na tabela Users
const (
	AttrUserID   = "userId"
	AttrNombre   = "nombre"
	AttrApellido = "apellido"
	AttrAge      = "age"
	AttrEmail    = "email"
)

// User é o registro da tabela Users (hash key: userId).
// Campos nil estão ausentes do item; "" é gravado e devolvido como "".
type User struct {
	UserID   string   `json:"userId" dynamodbav:"userId" validate:"required"`
	Nombre   *string  `json:"nombre,omitempty" dynamodbav:"nombre,omitempty"`
	Apellido *string  `json:"apellido,omitempty" dynamodbav:"apellido,omitempty"`
	Age      *float64 `json:"age,omitempty" dynamodbav:"age,omitempty" validate:"omitempty,gte=0,integer"`
	Email    *string  `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,eq=|email"`
}

// UserPatch representa o corpo de um PATCH. Campos nil (ausentes ou null
// no JSON) não entram no update.
type UserPatch struct {
	UserID   *string  `json:"userId,omitempty"`
	Nombre   *string  `json:"nombre,omitempty"`
	Apellido *string  `json:"apellido,omitempty"`
	Age      *float64 `json:"age,omitempty" validate:"omitempty,gte=0,integer"`
	Email    *string  `json:"email,omitempty" validate:"omitempty,eq=|email"`
}

// Changes devolve os atributos presentes no patch, indexados pelo nome na tabela.
func (p UserPatch) Changes() map[string]any {
	changes := make(map[string]any, 4)
	if p.Nombre != nil {
		changes[AttrNombre] = *p.Nombre
	}
	if p.Apellido != nil {
		changes[AttrApellido] = *p.Apellido
	}
	if p.Age != nil {
		changes[AttrAge] = *p.Age
	}
	if p.Email != nil {
		changes[AttrEmail] = *p.Email
	}
	return changes
}
