package router

import (
	"context"
	"errors"

	"kedai/config"
	"kedai/internal/client"
	"kedai/internal/handler"
	"kedai/internal/middleware"
	"kedai/internal/repository"
	"kedai/internal/service"
	"kedai/internal/web"
	"kedai/internal/ws"
	"kedai/pkg/cloudinary"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers. cloud may be nil; it is
// only used when image offload is set to "cloudinary".
func Setup(ctx context.Context, cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, notifier *ws.AboutUsNotifier) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	limiter := middleware.NewInMemoryRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	go limiter.Start(ctx)
	r.Use(middleware.RateLimit(limiter))

	// Repositories
	aboutRepo := repository.NewAboutUsRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	if notifier == nil {
		notifier = ws.NewAboutUsNotifier()
	}

	// Services
	opts := []service.Option{service.WithNotifier(notifier)}
	if cfg.Images.Offload == config.OffloadCloudinary {
		if cloud == nil {
			return nil, errors.New("IMAGE_OFFLOAD=cloudinary but cloudinary is not configured")
		}
		opts = append(opts, service.WithImageOffload(cloud, cfg.Cloudinary.Folder))
		log.Info("image offload enabled", "folder", cfg.Cloudinary.Folder)
	}
	aboutSvc := service.NewAboutUsService(aboutRepo, opts...)
	authSvc := service.NewAuthService(&cfg.JWT, adminRepo)

	engine, err := web.NewTemplateEngine()
	if err != nil {
		return nil, err
	}

	// Handlers
	aboutHandler := handler.NewAboutUsHandler(aboutSvc)
	adminHandler := handler.NewAdminHandler(authSvc)
	pageStore := handler.StaticStore(aboutSvc)
	if cfg.Remote.APIURL != "" {
		pageStore = handler.RemoteStore(client.New(cfg.Remote.APIURL, cfg.Remote.APIToken))
		log.Info("pages use remote about us api", "url", cfg.Remote.APIURL)
	}
	pageHandler := handler.NewPageHandler(pageStore, engine, authSvc, cfg.JWT.AccessExpiry, cfg.Server.Env == "production")
	healthHandler := handler.NewHealthHandler(db)

	var guard []gin.HandlerFunc
	if cfg.Admin.AuthRequired {
		guard = []gin.HandlerFunc{middleware.AuthRequired(&cfg.JWT), middleware.AdminRequired()}
	} else {
		log.Warn("admin auth disabled, writes are open")
	}
	protected := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, guard...), h)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/ws/about-us", ws.UpgradeAboutUsWS(notifier))

	api := r.Group("/api")
	{
		api.GET("/about-us", aboutHandler.Get)
		api.PUT("/about-us", protected(aboutHandler.Put)...)
		api.POST("/admin/login", adminHandler.AdminLogin)
	}

	r.GET("/", pageHandler.About)
	admin := r.Group("/admin")
	{
		admin.GET("/login", pageHandler.AdminLoginPage)
		admin.POST("/login", pageHandler.AdminLoginSubmit)
		admin.POST("/logout", pageHandler.AdminLogout)
		admin.GET("/about-us", protected(pageHandler.AdminAbout)...)
		admin.POST("/about-us", protected(pageHandler.AdminAboutSubmit)...)
	}

	return r, nil
}
