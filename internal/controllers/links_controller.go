package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/fsdevblog/shortlinks/internal/services"
)

type createLinkRequest struct {
	Slug        *string `json:"slug"`
	Title       *string `json:"title"`
	OriginalURL string  `json:"original_url"`
}

type updateLinkRequest struct {
	OriginalURL *string        `json:"original_url"`
	Slug        *string        `json:"slug"`
	Title       nullableString `json:"title"`
}

// nullableString отличает отсутствующее поле от явного null.
type nullableString struct {
	Value *string
	Set   bool
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	n.Value = &v
	return nil
}

// LinksController управление ссылками аутентифицированного пользователя.
// Чужие ссылки для пользователя не существуют: на них отвечаем 404.
type LinksController struct {
	links   LinkManager
	baseURL string
}

func NewLinksController(links LinkManager, baseURL string) *LinksController {
	return &LinksController{links: links, baseURL: baseURL}
}

// Index GET /api/links?search=&sort_by=&sort_order=&page=&per_page=
func (c *LinksController) Index(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	page, err := c.links.List(reqCtx, userID, services.ListParams{
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sort_by"),
		SortOrder: ctx.Query("sort_order"),
		Page:      intQuery(ctx, "page"),
		PerPage:   intQuery(ctx, "per_page"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newLinkCollection(page, baseURL(ctx.Request, c.baseURL)))
}

// Store POST /api/links
func (c *LinksController) Store(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req createLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	link, err := c.links.Create(reqCtx, userID, services.CreateLinkInput{
		URL:   req.OriginalURL,
		Slug:  req.Slug,
		Title: req.Title,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": newLinkResource(link, baseURL(ctx.Request, c.baseURL))})
}

// Show GET /api/links/:id
func (c *LinksController) Show(ctx *gin.Context) {
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

	link, err := c.links.Get(reqCtx, userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": newLinkResource(link, baseURL(ctx.Request, c.baseURL))})
}

// Update PUT|PATCH /api/links/:id
func (c *LinksController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req updateLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	link, err := c.links.Update(reqCtx, userID, id, services.UpdateLinkInput{
		URL:        req.OriginalURL,
		Slug:       req.Slug,
		Title:      req.Title.Value,
		ClearTitle: req.Title.Set && req.Title.Value == nil,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": newLinkResource(link, baseURL(ctx.Request, c.baseURL))})
}

// Destroy DELETE /api/links/:id переносит ссылку в корзину.
func (c *LinksController) Destroy(ctx *gin.Context) {
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

	if err := c.links.Delete(reqCtx, userID, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Link moved to trash."})
}

// Trash GET /api/links/trash?page=
func (c *LinksController) Trash(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	page, err := c.links.Trash(reqCtx, userID, intQuery(ctx, "page"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newLinkCollection(page, baseURL(ctx.Request, c.baseURL)))
}

// Restore POST /api/links/:id/restore
func (c *LinksController) Restore(ctx *gin.Context) {
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

	link, err := c.links.Restore(reqCtx, userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": newLinkResource(link, baseURL(ctx.Request, c.baseURL))})
}

// ForceDestroy DELETE /api/links/:id/force удаляет ссылку окончательно вместе с журналом переходов.
func (c *LinksController) ForceDestroy(ctx *gin.Context) {
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

	if err := c.links.ForceDelete(reqCtx, userID, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Link permanently deleted."})
}
