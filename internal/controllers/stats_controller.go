package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatsController статистика пользователя.
type StatsController struct {
	stats   StatsProvider
	baseURL string
	now     func() time.Time
}

func NewStatsController(stats StatsProvider, baseURL string) *StatsController {
	return &StatsController{stats: stats, baseURL: baseURL, now: time.Now}
}

// Summary GET /api/stats
func (c *StatsController) Summary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	summary, err := c.stats.Summary(reqCtx, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSummaryResource(summary))
}

// Detailed GET /api/stats/detailed
func (c *StatsController) Detailed(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	detailed, err := c.stats.Detailed(reqCtx, userID, c.now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newDetailedStatsResource(detailed, baseURL(ctx.Request, c.baseURL)))
}

// Accesses GET /api/links/:id/accesses последние переходы по ссылке.
func (c *StatsController) Accesses(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	entries, err := c.stats.LinkAccesses(reqCtx, userID, id, intQuery(ctx, "limit"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": newAccessLogCollection(entries)})
}
