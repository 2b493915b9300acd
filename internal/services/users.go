package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
	"github.com/fsdevblog/shortlinks/internal/tokens"
)

// PasswordMinLength минимальная длина пароля.
const PasswordMinLength = 8

// RegisterInput данные регистрации.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UserService регистрация и аутентификация владельцев ссылок.
type UserService struct {
	users     UserRepository
	log       *zap.Logger
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewUserService(users UserRepository, jwtSecret []byte, jwtTTL time.Duration, log *zap.Logger) *UserService {
	return &UserService{users: users, jwtSecret: jwtSecret, jwtTTL: jwtTTL, log: log}
}

// Register создает пользователя с bcrypt хешем пароля.
//
// Возвращает:
//   - *models.User: созданный пользователь
//   - error: *ValidationError, ErrUserExists или ErrUnknown
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	switch {
	case name == "":
		return nil, newValidationError("name", RuleRequired, "name is required")
	case utf8.RuneCountInString(name) > 255: //nolint:mnd
		return nil, newValidationError("name", RuleMax, "name may not be greater than 255 characters")
	case email == "":
		return nil, newValidationError("email", RuleRequired, "email is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, newValidationError("email", RuleEmail, "email must be a valid email address")
	}
	if utf8.RuneCountInString(in.Password) < PasswordMinLength {
		return nil, newValidationError("password", RuleMin,
			fmt.Sprintf("password must be at least %d characters", PasswordMinLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", ErrUnknown, err)
	}

	user := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if createErr := s.users.Create(ctx, user); createErr != nil {
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, email)
		}
		return nil, fmt.Errorf("%w: create user: %w", ErrUnknown, createErr)
	}
	return user, nil
}

// Login проверяет учетные данные и выпускает JWT токен. Неизвестный email и неверный пароль
// неразличимы для вызывающей стороны.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("%w: find user: %w", ErrUnknown, err)
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); cmpErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := tokens.GenerateUserJWT(user.ID, s.jwtTTL, s.jwtSecret)
	if err != nil {
		s.log.Error("issue user token", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", nil, fmt.Errorf("%w: issue token: %w", ErrUnknown, err)
	}
	return token, user, nil
}

// GetByID возвращает пользователя по идентификатору.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return user, nil
}
