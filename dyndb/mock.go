// dyndb/mock.go
package dyndb

import (
	"context"
)

// MockStore é um mock da interface Store[T] baseado em campos de função.
//
// Defina apenas os campos (`GetFn`, `PutFn`, etc.) relevantes para o teste;
// os demais devolvem o comportamento neutro (ErrNotFound no Get, nil no resto).
type MockStore[T any] struct {
	GetFn     func(ctx context.Context, hashKey, sortKey any) (*T, error)
	PutFn     func(ctx context.Context, item T) error
	DeleteFn  func(ctx context.Context, hashKey, sortKey any) error
	UpdateFn  func(ctx context.Context, hashKey, sortKey any, changes map[string]any, opts ...UpdateOption) error
	ListFn    func(ctx context.Context, limit int32, token string) ([]T, string, error)
	ScanAllFn func(ctx context.Context) ([]T, error)
}

var _ Store[struct{}] = (*MockStore[struct{}])(nil)

func (m *MockStore[T]) Get(ctx context.Context, hashKey, sortKey any) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, hashKey, sortKey)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) Put(ctx context.Context, item T) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, item)
	}
	return nil
}

func (m *MockStore[T]) Delete(ctx context.Context, hashKey, sortKey any) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, hashKey, sortKey)
	}
	return nil
}

func (m *MockStore[T]) Update(ctx context.Context, hashKey, sortKey any, changes map[string]any, opts ...UpdateOption) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, hashKey, sortKey, changes, opts...)
	}
	return nil
}

func (m *MockStore[T]) List(ctx context.Context, limit int32, token string) ([]T, string, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, token)
	}
	return []T{}, "", nil
}

func (m *MockStore[T]) ScanAll(ctx context.Context) ([]T, error) {
	if m.ScanAllFn != nil {
		return m.ScanAllFn(ctx)
	}
	return []T{}, nil
}
