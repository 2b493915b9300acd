package memory

import "errors"

// Ошибки коллекции.
var (
	ErrNotFound     = errors.New("[memory]: key not found")     // Ключ отсутствует в коллекции
	ErrDuplicateKey = errors.New("[memory]: key already exists") // Set вызван для занятого ключа
)
