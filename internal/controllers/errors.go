package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/services"
)

// Ошибки.
var (
	ErrRecordNotFound = errors.New("record not found") // Запись не найдена
	ErrInternal       = errors.New("internal error")   // Прочая ошибка
	ErrBadRequest     = errors.New("invalid request")  // Тело или параметры запроса не разобраны
)

// respondError переводит ошибку сервисного слоя в HTTP ответ. Подробности внутренних ошибок
// попадают только в лог через ctx.Error.
func respondError(ctx *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": vErr.Message,
			"errors":  gin.H{vErr.Field: []string{vErr.Message}},
		})
	case errors.Is(err, services.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Not found."})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
	case errors.Is(err, services.ErrUserExists):
		ctx.JSON(http.StatusConflict, gin.H{
			"message": "The email has already been taken.",
			"errors":  gin.H{"email": []string{"The email has already been taken."}},
		})
	case errors.Is(err, ErrBadRequest):
		_ = ctx.Error(err)
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	default:
		_ = ctx.Error(fmt.Errorf("%w: %w", ErrInternal, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	}
}
