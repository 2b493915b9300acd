package services

import (
	"errors"
	"fmt"
)

var (
	ErrUnknown             = errors.New("[service]: unknown error")
	ErrRecordNotFound      = errors.New("[service]: record not found")
	ErrValidation          = errors.New("[service]: validation failed")
	ErrAllocationExhausted = errors.New("[service]: slug allocation exhausted")
	ErrTransientStorage    = errors.New("[service]: transient storage failure")
	ErrUserExists          = errors.New("[service]: user already exists")
	ErrInvalidCredentials  = errors.New("[service]: invalid credentials")
)

// Правила валидации, которые может нарушить входное значение.
const (
	RuleRequired = "required"
	RuleLength   = "length"
	RuleCharset  = "charset"
	RuleUnique   = "unique"
	RuleURL      = "url"
	RuleMax      = "max"
	RuleMin      = "min"
	RuleEmail    = "email"
)

// ValidationError ошибка валидации конкретного поля с указанием нарушенного правила.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Message: message}
}
