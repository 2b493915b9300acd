package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/services"
)

// RedirectController публичный редирект по короткой ссылке.
type RedirectController struct {
	redirector Redirector
}

func NewRedirectController(redirector Redirector) *RedirectController {
	return &RedirectController{redirector: redirector}
}

// Redirect обрабатывает GET /:slug.
//
// В случае успеха возвращает:
//   - HTTP 302 Found с заголовком Location
//
// В случае ошибки возвращает:
//   - HTTP 404 Not Found для неизвестного, удаленного или некорректного slug (без различий)
//   - HTTP 500 Internal Server Error при сбое хранилища
func (c *RedirectController) Redirect(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	target, err := c.redirector.Resolve(reqCtx, ctx.Param("slug"), services.Visit{
		IP:        ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	})
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
			return
		}
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	ctx.Redirect(http.StatusFound, target)
}
