package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/raywall/users-function/dyndb"
	"github.com/raywall/users-function/pkg/users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRepository_DefaultTable(t *testing.T) {
	repo := NewUserRepository(nil, "")
	assert.NotNil(t, repo)
	assert.NotNil(t, repo.store)
}

func TestUserRepository_Save(t *testing.T) {
	age, nombre := 30.0, "Ana"
	mockStore := &dyndb.MockStore[models.User]{
		PutFn: func(ctx context.Context, user models.User) error {
			assert.Equal(t, "u1", user.UserID)
			assert.Equal(t, "Ana", *user.Nombre)
			assert.Equal(t, 30.0, *user.Age)
			return nil
		},
	}

	repo := NewUserRepositoryWithStore(mockStore)
	err := repo.Save(context.Background(), models.User{UserID: "u1", Nombre: &nombre, Age: &age})

	assert.NoError(t, err)
}

func TestUserRepository_GetByID(t *testing.T) {
	email := "a@x.com"
	mockStore := &dyndb.MockStore[models.User]{
		GetFn: func(ctx context.Context, hashKey, sortKey any) (*models.User, error) {
			assert.Equal(t, "u1", hashKey)
			assert.Nil(t, sortKey)
			return &models.User{UserID: "u1", Email: &email}, nil
		},
	}

	repo := NewUserRepositoryWithStore(mockStore)
	user, err := repo.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@x.com", *user.Email)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := NewUserRepositoryWithStore(&dyndb.MockStore[models.User]{})

	user, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, dyndb.ErrNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_Patch(t *testing.T) {
	email := "b@x.com"
	mockStore := &dyndb.MockStore[models.User]{
		UpdateFn: func(ctx context.Context, hashKey, sortKey any, changes map[string]any, opts ...dyndb.UpdateOption) error {
			assert.Equal(t, "u1", hashKey)
			assert.Equal(t, map[string]any{models.AttrEmail: "b@x.com"}, changes)
			assert.True(t, dyndb.ApplyUpdateOptions(opts...), "patch não pode criar usuário")
			return nil
		},
	}

	repo := NewUserRepositoryWithStore(mockStore)
	err := repo.Patch(context.Background(), "u1", models.UserPatch{Email: &email})

	assert.NoError(t, err)
}

func TestUserRepository_Delete(t *testing.T) {
	mockStore := &dyndb.MockStore[models.User]{
		DeleteFn: func(ctx context.Context, hashKey, sortKey any) error {
			assert.Equal(t, "u1", hashKey)
			assert.Nil(t, sortKey)
			return nil
		},
	}

	repo := NewUserRepositoryWithStore(mockStore)
	assert.NoError(t, repo.Delete(context.Background(), "u1"))
}

func TestUserRepository_ListAndAll(t *testing.T) {
	mockStore := &dyndb.MockStore[models.User]{
		ListFn: func(ctx context.Context, limit int32, token string) ([]models.User, string, error) {
			assert.Equal(t, int32(1), limit)
			assert.Equal(t, "abc", token)
			return []models.User{{UserID: "u1"}}, "def", nil
		},
		ScanAllFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{UserID: "u1"}, {UserID: "u2"}}, nil
		},
	}

	repo := NewUserRepositoryWithStore(mockStore)

	page, next, err := repo.List(context.Background(), 1, "abc")
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, "def", next)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserRepository_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("dynamostore: scan failed: throttled")
	repo := NewUserRepositoryWithStore(&dyndb.MockStore[models.User]{
		ScanAllFn: func(ctx context.Context) ([]models.User, error) { return nil, boom },
	})

	_, err := repo.All(context.Background())
	assert.ErrorIs(t, err, boom)
}
