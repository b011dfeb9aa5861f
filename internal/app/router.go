package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/pips-site-api/internal/handler"
	"github.com/noah-isme/pips-site-api/internal/middleware"
	"github.com/noah-isme/pips-site-api/internal/models"
	"github.com/noah-isme/pips-site-api/pkg/config"
	"github.com/noah-isme/pips-site-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/pips-site-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/pips-site-api/pkg/middleware/requestid"
)

// Router builds the gin engine with every route mounted.
func (a *App) Router() *gin.Engine {
	cfg := a.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(a.Logger))
	r.Use(corsmiddleware.New(corsmiddleware.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}))
	r.Use(middleware.Metrics(a.Metrics))

	metricsHandler := handler.NewMetricsHandler(a.Metrics, a.Store.Backend(), cfg.Storage.Driver)
	authHandler := handler.NewAuthHandler(a.Auth)
	contentHandler := handler.NewContentHandler(a.Content)
	postHandler := handler.NewPostHandler(a.Posts, cfg.School.BaseURL)
	formHandler := handler.NewFormHandler(a.Forms)
	searchHandler := handler.NewSearchHandler(a.Search, a.SEO)
	submissionHandler := handler.NewSubmissionHandler(a.Submissions)
	exportHandler := handler.NewExportHandler(a.Exports)

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/sitemap.xml", searchHandler.Sitemap)
	r.GET("/robots.txt", searchHandler.Robots)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())

	api.GET("/contact", contentHandler.Contact)
	api.GET("/gallery", contentHandler.Gallery)
	api.GET("/gallery/lightbox", contentHandler.Lightbox)
	api.GET("/faq/accordion", contentHandler.Accordion)
	api.GET("/notices", contentHandler.Notices)
	api.GET("/notices/modal", contentHandler.NoticeModal)
	api.GET("/uniforms", contentHandler.Uniforms)

	posts := api.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/featured", postHandler.Featured)
	posts.GET("/featured/carousel", postHandler.Carousel)
	posts.GET("/recent", postHandler.Recent)
	posts.GET("/search", postHandler.Search)
	posts.GET("/types/:type", postHandler.ByType)
	posts.GET("/:id", postHandler.Get)
	posts.POST("/:id/like", postHandler.Like)
	posts.DELETE("/:id/like", postHandler.Unlike)
	posts.POST("/:id/comments", postHandler.AddComment)
	posts.GET("/:id/share", postHandler.Share)

	forms := api.Group("/forms")
	forms.GET("", formHandler.List)
	forms.GET("/:form", formHandler.Get)
	forms.POST("/:form/validate", formHandler.Validate)
	forms.POST("/:form/submit", formHandler.Submit)
	forms.PUT("/:form/draft", formHandler.SaveDraft)
	forms.GET("/:form/draft", formHandler.RecoverDraft)
	forms.DELETE("/:form/draft", formHandler.DiscardDraft)

	api.GET("/search", searchHandler.Search)
	api.GET("/seo/meta", searchHandler.PageMeta)
	api.GET("/seo/breadcrumbs", searchHandler.Breadcrumbs)

	api.POST("/auth/login", authHandler.Login)
	api.GET("/exports/download", exportHandler.Download)

	admin := api.Group("/admin")
	admin.Use(middleware.JWT(a.Auth), middleware.RequireRoles(models.RoleAdmin))

	admin.GET("/me", authHandler.Me)
	admin.GET("/metrics", metricsHandler.Snapshot)

	admin.PUT("/contact", contentHandler.SaveContact)
	admin.POST("/gallery", contentHandler.AddImage)
	admin.DELETE("/gallery/:id", contentHandler.DeleteImage)
	admin.PUT("/notices", contentHandler.SaveNotices)
	admin.POST("/notices/:category", contentHandler.AddNotice)
	admin.DELETE("/notices/:category/:id", contentHandler.DeleteNotice)
	admin.POST("/uniforms/:gender/:season", contentHandler.AddUniformItem)
	admin.PATCH("/uniforms/:gender/:season/:id", contentHandler.UpdateUniformItem)
	admin.DELETE("/uniforms/:gender/:season/:id", contentHandler.DeleteUniformItem)

	admin.POST("/posts", postHandler.Create)
	admin.PATCH("/posts/:id", postHandler.Update)
	admin.DELETE("/posts/:id", postHandler.Delete)

	admin.POST("/submissions/export", exportHandler.Generate)
	admin.GET("/submissions/:form", submissionHandler.List)
	admin.GET("/submissions/:form/:id", submissionHandler.Get)
	admin.PATCH("/submissions/:form/:id/status", submissionHandler.UpdateStatus)
	admin.DELETE("/submissions/:form/:id", submissionHandler.Delete)
	admin.GET("/statistics", submissionHandler.Statistics)
	admin.GET("/validation-logs", submissionHandler.ValidationLogs)
	admin.GET("/search-analytics", searchHandler.Analytics)
	admin.GET("/backup", submissionHandler.Backup)

	return r
}
