package sql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// convertErrorType конвертирует ошибки gorm в общие ошибки уровня репозитория,
// сохраняя текст исходной ошибки.
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, repositories.ErrDuplicateKey),
		errors.Is(err, repositories.ErrUnknown):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}

	return fmt.Errorf("%w: %s", nativeErr, err.Error())
}
