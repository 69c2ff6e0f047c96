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
package repository

import (
	"context"

	"github.com/raywall/users-function/dyndb"
	"github.com/raywall/users-function/pkg/users/models"
)

// DefaultTableName é a tabela usada quando nenhuma outra é configurada
const DefaultTableName = "Users"

type UserRepository struct {
	store dyndb.Store[models.User]
}

// NewUserRepository cria o repositório sobre um cliente DynamoDB já construído.
// O cliente deve ser criado uma única vez por processo e reutilizado.
func NewUserRepository(client dyndb.DynamoDBClient, tableName string) *UserRepository {
	if tableName == "" {
		tableName = DefaultTableName
	}
	return NewUserRepositoryWithStore(dyndb.New(client, dyndb.TableConfig[models.User]{
		TableName: tableName,
		HashKey:   models.AttrUserID,
	}))
}

// NewUserRepositoryWithStore permite injetar qualquer Store (mocks, fakes)
func NewUserRepositoryWithStore(store dyndb.Store[models.User]) *UserRepository {
	return &UserRepository{store: store}
}

// Save (upsert): cria ou substitui o registro inteiro
func (r *UserRepository) Save(ctx context.Context, user models.User) error {
	return r.store.Put(ctx, user)
}

// GetByID: busca por PK; retorna dyndb.ErrNotFound se não existir
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return r.store.Get(ctx, userID, nil)
}

// Patch: altera apenas os campos presentes; nunca cria o usuário
func (r *UserRepository) Patch(ctx context.Context, userID string, patch models.UserPatch) error {
	return r.store.Update(ctx, userID, nil, patch.Changes(), dyndb.MustExist())
}

// Delete: deleta por PK
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, userID, nil)
}

// List: uma página do scan
func (r *UserRepository) List(ctx context.Context, limit int32, token string) ([]models.User, string, error) {
	return r.store.List(ctx, limit, token)
}

// All: scan completo da tabela
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	return r.store.ScanAll(ctx)
}
