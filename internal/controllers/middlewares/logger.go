package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// RequestIDHeader заголовок с идентификатором запроса. Пришедшее значение сохраняется,
	// иначе генерируется новое.
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"

	maxRequestIDLen = 64
	unmatchedRoute  = "<unmatched>"
)

// RequestID возвращает идентификатор запроса, установленный LoggerMiddleware.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LoggerMiddleware присваивает запросу идентификатор и пишет по одной записи на запрос.
// Должен быть первым в стеке, чтобы видеть итоговый статус и пользователя после AuthMiddleware.
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Header(RequestIDHeader, reqID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ce := logger.Check(accessLevel(c.Request.URL.Path, status), "request")
		if ce == nil {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", max(c.Writer.Size(), 0)),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if userID, ok := UserID(c); ok {
			fields = append(fields, zap.Uint("user_id", userID))
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			fields = append(fields, zap.Strings("errors", errs.Errors()))
		}
		ce.Write(fields...)
	}
}

// accessLevel уровень записи: ошибки сервера и клиента отдельно, проверки доступности только в debug.
func accessLevel(path string, status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	case path == "/ping":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
