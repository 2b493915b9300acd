package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/fsdevblog/shortlinks/internal/models"
)

// DefaultSlugMaxAttempts предел попыток подобрать свободный slug.
const DefaultSlugMaxAttempts = 100

var slugPattern = regexp.MustCompile(models.SlugPatternExpr)

// SlugAllocator генерирует уникальные slug и проверяет пользовательские.
type SlugAllocator struct {
	repo        SlugChecker
	intN        func(n int) int
	maxAttempts int
}

// NewSlugAllocator создает аллокатор. maxAttempts <= 0 заменяется на DefaultSlugMaxAttempts.
func NewSlugAllocator(repo SlugChecker, maxAttempts int) *SlugAllocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSlugMaxAttempts
	}
	return &SlugAllocator{
		repo:        repo,
		maxAttempts: maxAttempts,
		intN:        rand.IntN,
	}
}

// MaxAttempts возвращает предел попыток генерации.
func (a *SlugAllocator) MaxAttempts() int {
	return a.maxAttempts
}

// Generate подбирает свободный slug.
//
// Параметры:
//   - ctx: контекст выполнения
//   - length: желаемая длина; 0 - случайная длина из [SlugMinLength, SlugMaxLength],
//     прочие значения приводятся к этому диапазону
//
// Возвращает:
//   - string: свободный на момент проверки slug
//   - error: ErrAllocationExhausted, если за maxAttempts попыток свободный slug не найден
func (a *SlugAllocator) Generate(ctx context.Context, length int) (string, error) {
	for range a.maxAttempts {
		candidate := a.Candidate(length)
		exists, err := a.Exists(ctx, candidate, 0)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free slug after %d attempts", ErrAllocationExhausted, a.maxAttempts)
}

// Candidate возвращает случайную строку из алфавита slug без проверки занятости.
func (a *SlugAllocator) Candidate(length int) string {
	length = a.resolveLength(length)

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		sb.WriteByte(models.SlugAlphabet[a.intN(len(models.SlugAlphabet))])
	}
	return sb.String()
}

// IsValid сообщает, подходит ли candidate по формату и свободен ли он.
func (a *SlugAllocator) IsValid(ctx context.Context, candidate string) (bool, error) {
	err := a.Validate(ctx, candidate, 0)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrValidation) {
		return false, nil
	}
	return false, err
}

// Validate проверяет candidate и возвращает *ValidationError с нарушенным правилом:
// RuleLength, RuleCharset или RuleUnique. Ссылка excludeID не учитывается при проверке уникальности.
func (a *SlugAllocator) Validate(ctx context.Context, candidate string, excludeID uint) error {
	if l := len(candidate); l < models.SlugMinLength || l > models.SlugMaxLength {
		return newValidationError("slug", RuleLength,
			fmt.Sprintf("slug must be between %d and %d characters", models.SlugMinLength, models.SlugMaxLength))
	}
	if !slugPattern.MatchString(candidate) {
		return newValidationError("slug", RuleCharset, "slug may contain only latin letters and digits")
	}
	exists, err := a.Exists(ctx, candidate, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return newValidationError("slug", RuleUnique, "slug has already been taken")
	}
	return nil
}

// Exists проверяет занятость slug любой ссылкой, кроме excludeID (0 - не исключать).
func (a *SlugAllocator) Exists(ctx context.Context, candidate string, excludeID uint) (bool, error) {
	exists, err := a.repo.SlugExists(ctx, candidate, excludeID)
	if err != nil {
		return false, fmt.Errorf("%w: check slug: %w", ErrUnknown, err)
	}
	return exists, nil
}

func (a *SlugAllocator) resolveLength(length int) int {
	switch {
	case length == 0:
		return models.SlugMinLength + a.intN(models.SlugMaxLength-models.SlugMinLength+1)
	case length < models.SlugMinLength:
		return models.SlugMinLength
	case length > models.SlugMaxLength:
		return models.SlugMaxLength
	default:
		return length
	}
}
