package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// currentUserID возвращает идентификатор пользователя, установленный AuthMiddleware.
// Без него маршрут не должен был пройти аутентификацию, поэтому отвечаем 401.
func currentUserID(ctx *gin.Context) (uint, bool) {
	id, ok := middlewares.UserID(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
	}
	return id, ok
}

// idParam разбирает числовой параметр маршрута. Некорректное значение трактуется как отсутствующая запись.
func idParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Not found."})
		return 0, false
	}
	return uint(id), true
}

// intQuery возвращает целочисленный query параметр или 0, если он не задан или некорректен.
func intQuery(ctx *gin.Context, name string) int {
	v, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// baseURL возвращает базовый адрес коротких ссылок: из конфигурации или по адресу запроса.
func baseURL(r *http.Request, configured string) string {
	if configured != "" {
		return configured
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
