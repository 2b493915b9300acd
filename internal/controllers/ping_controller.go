package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingController проверка доступности хранилища.
type PingController struct {
	conn ConnectionChecker
}

func NewPingController(conn ConnectionChecker) *PingController {
	return &PingController{conn: conn}
}

// Ping обрабатывает GET /ping.
//
// Возвращает:
//   - HTTP 200 OK с телом "pong", если хранилище отвечает
//   - HTTP 500 Internal Server Error в противном случае
func (c *PingController) Ping(ctx *gin.Context) {
	if c.conn == nil {
		ctx.String(http.StatusOK, "pong")
		return
	}
	pingCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()
	if err := c.conn.CheckConnection(pingCtx); err != nil {
		_ = ctx.Error(fmt.Errorf("ping error: %w", err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.String(http.StatusOK, "pong")
}
