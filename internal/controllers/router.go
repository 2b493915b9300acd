package controllers

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
)

// RouterParams зависимости роутера.
type RouterParams struct {
	Redirector  Redirector
	Links       LinkManager
	Stats       StatsProvider
	Users       UserManager
	PingService ConnectionChecker
	Logger      *zap.Logger
	BaseURL     string
	JWTSecret   []byte
	// CORSOrigins разрешенные CORS источники. Пустой список отключает CORS.
	CORSOrigins []string
}

// corsMaxAge время кеширования preflight ответа браузером.
const corsMaxAge = 12 * time.Hour

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(gin.Recovery())
	// Preflight запросы не имеют маршрута, поэтому CORS подключается глобально и до gzip.
	if len(params.CORSOrigins) > 0 {
		r.Use(corsMiddleware(params.CORSOrigins))
	}
	r.Use(middlewares.GzipMiddleware())

	authController := NewAuthController(params.Users)
	linksController := NewLinksController(params.Links, params.BaseURL)
	statsController := NewStatsController(params.Stats, params.BaseURL)
	redirectController := NewRedirectController(params.Redirector)

	r.GET("/ping", NewPingController(params.PingService).Ping)

	api := r.Group("/api")
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	authorized := api.Group("")
	authorized.Use(middlewares.AuthMiddleware(params.JWTSecret))
	authorized.GET("/user", authController.Me)
	authorized.POST("/logout", authController.Logout)

	authorized.GET("/links", linksController.Index)
	authorized.POST("/links", linksController.Store)
	authorized.GET("/links/trash", linksController.Trash)
	authorized.GET("/links/:id", linksController.Show)
	authorized.PUT("/links/:id", linksController.Update)
	authorized.PATCH("/links/:id", linksController.Update)
	authorized.DELETE("/links/:id", linksController.Destroy)
	authorized.POST("/links/:id/restore", linksController.Restore)
	authorized.DELETE("/links/:id/force", linksController.ForceDestroy)
	authorized.GET("/links/:id/accesses", statsController.Accesses)

	authorized.GET("/stats", statsController.Summary)
	authorized.GET("/stats/detailed", statsController.Detailed)

	r.GET("/:slug", redirectController.Redirect)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept-Encoding", "Content-Encoding"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        corsMaxAge,
	}
	if slices.Contains(origins, "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	return cors.New(conf)
}
