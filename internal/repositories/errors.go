package repositories

import "errors"

// Ошибки уровня репозитория. Реализации хранилищ приводят к ним ошибки драйверов,
// сервисный слой проверяет их через errors.Is.
var (
	// ErrNotFound запись не найдена или не видна в запрошенной области (чужая, удаленная).
	ErrNotFound = errors.New("[repository]: record not found")
	// ErrDuplicateKey нарушено ограничение уникальности (slug, email).
	ErrDuplicateKey = errors.New("[repository]: duplicate key")
	ErrUnknown      = errors.New("[repository]: unknown error")
)
