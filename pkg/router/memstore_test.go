package router

import (
	"context"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/raywall/users-function/dyndb"
	"github.com/raywall/users-function/pkg/users/models"
)

// memStore é um dyndb.Store em memória que guarda os itens no formato do
// DynamoDB, para que os testes passem pelas mesmas tags dynamodbav.
type memStore struct {
	mu    sync.Mutex
	items map[string]map[string]any
	calls int
}

var _ dyndb.Store[models.User] = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{items: map[string]map[string]any{}}
}

func (m *memStore) Get(ctx context.Context, hashKey, sortKey any) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	raw, ok := m.items[hashKey.(string)]
	if !ok {
		return nil, dyndb.ErrNotFound
	}
	return decodeItem(raw)
}

func (m *memStore) Put(ctx context.Context, item models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	raw, err := encodeItem(item)
	if err != nil {
		return err
	}
	m.items[item.UserID] = raw
	return nil
}

func (m *memStore) Delete(ctx context.Context, hashKey, sortKey any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	delete(m.items, hashKey.(string))
	return nil
}

func (m *memStore) Update(ctx context.Context, hashKey, sortKey any, changes map[string]any, opts ...dyndb.UpdateOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if len(changes) == 0 {
		return dyndb.ErrNoChanges
	}

	key := hashKey.(string)
	raw, ok := m.items[key]
	if !ok {
		if dyndb.ApplyUpdateOptions(opts...) {
			return dyndb.ErrNotFound
		}
		raw = map[string]any{models.AttrUserID: key}
	}
	for name, value := range changes {
		raw[name] = value
	}
	m.items[key] = raw
	return nil
}

func (m *memStore) List(ctx context.Context, limit int32, token string) ([]models.User, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	keys := m.sortedKeys()
	start := 0
	if token != "" {
		start = sort.SearchStrings(keys, token) + 1
	}

	end := start + int(limit)
	if end > len(keys) {
		end = len(keys)
	}

	page := make([]models.User, 0, end-start)
	for _, k := range keys[start:end] {
		u, err := decodeItem(m.items[k])
		if err != nil {
			return nil, "", err
		}
		page = append(page, *u)
	}

	next := ""
	if end < len(keys) {
		next = keys[end-1]
	}
	return page, next, nil
}

func (m *memStore) ScanAll(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	users := make([]models.User, 0, len(m.items))
	for _, k := range m.sortedKeys() {
		u, err := decodeItem(m.items[k])
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (m *memStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *memStore) sortedKeys() []string {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func encodeItem(u models.User) (map[string]any, error) {
	av, err := attributevalue.MarshalMap(u)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(av, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeItem(raw map[string]any) (*models.User, error) {
	av, err := attributevalue.MarshalMap(raw)
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := attributevalue.UnmarshalMap(av, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
