// Package memory реализует простое потокобезопасное key/value хранилище в памяти.
// Значения хранятся в сериализованном JSON виде, поэтому наружу всегда отдаются копии.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
)

// MStorage хранилище в памяти.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
}

// SetOptions опции для Set.
type SetOptions struct {
	overwrite bool
}

// WithOverwrite разрешает перезапись существующего ключа.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.overwrite = true
	}
}

// NewMemStorage создает пустое хранилище.
func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

// Len возвращает количество записей.
func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

// Get возвращает значение по ключу. Если ключа нет - ErrNotFound.
func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return decode[T](key, val)
}

// Set Сохраняет новую пару ключ/значение. Без опции WithOverwrite ключ обязан быть уникальным,
// иначе вернется ошибка ErrDuplicateKey.
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to marshal json for key `%s`: %w", key, err)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, exists := m.data[key]; exists && !options.overwrite {
		return ErrDuplicateKey
	}
	m.data[key] = bytes
	return nil
}

// Update атомарно изменяет значение по ключу функцией fn.
// Если fn возвращает ошибку, значение остается прежним.
func Update[T any](ctx context.Context, key string, m *MStorage, fn func(*T) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return ErrNotFound
	}
	val, err := decode[T](key, raw)
	if err != nil {
		return err
	}
	if fnErr := fn(val); fnErr != nil {
		return fnErr
	}
	bytes, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to marshal json for key `%s`: %w", key, err)
	}
	m.data[key] = bytes
	return nil
}

// Delete удаляет запись по ключу. Если ключа нет - ErrNotFound.
func Delete(ctx context.Context, key string, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

// GetAll возвращает все значения хранилища в порядке возрастания ключей.
func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	return FilterAll[T](ctx, m, func(T) bool { return true })
}

// FilterAll возвращает значения, для которых fn вернула true, в порядке возрастания ключей.
func FilterAll[T any](ctx context.Context, m *MStorage, fn func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]T, 0, len(keys))
	for _, k := range keys {
		val, err := decode[T](k, m.data[k])
		if err != nil {
			return nil, err
		}
		if fn(*val) {
			result = append(result, *val)
		}
	}
	return result, nil
}

func decode[T any](key string, raw []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json by key `%s`: %w", key, err)
	}
	return &result, nil
}
