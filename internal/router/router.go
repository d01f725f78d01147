package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/config"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/handler"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/middleware"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/service"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/storage"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, store *storage.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Origins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Worker dispatcher — injected into services that retire object-store
	// assets
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	categorySvc := service.NewCategoryService(categoryRepo, dispatcher)
	templateSvc := service.NewTemplateService(templateRepo, categoryRepo, dispatcher)
	catalogSvc := service.NewCatalogService(templateRepo, categoryRepo)
	bannerSvc := service.NewBannerService(bannerRepo, dispatcher)
	orderSvc := service.NewOrderService(orderRepo)
	contactSvc := service.NewContactService(contactRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(db)
	authH := handler.NewAuthHandler(authSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	templatesH := handler.NewTemplatesHandler(templateSvc)
	publicH := handler.NewPublicTemplatesHandler(catalogSvc)
	bannersH := handler.NewBannersHandler(bannerSvc, store, rdb)
	ordersH := handler.NewOrdersHandler(orderSvc)
	contactsH := handler.NewContactsHandler(contactSvc)
	uploadsH := handler.NewUploadsHandler(store)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", healthH.Check)

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register-admin", middleware.LoginRateLimiter(), authH.RegisterAdmin)
	}

	// Public storefront — no auth, no side effects except checkout and the
	// contact form
	public := r.Group("/api/public")
	{
		public.GET("/templates", publicH.List)
		public.GET("/templates/search", publicH.Search)
		public.GET("/templates/:idOrSlug", publicH.Get)
	}
	r.GET("/api/categories", categoriesH.List)
	r.GET("/api/categories/:id", categoriesH.Get)
	r.GET("/api/banners", bannersH.List)
	r.POST("/api/contact", contactsH.Create)
	r.POST("/api/orders", ordersH.Create)

	// Admin-gated management API
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireRole(model.RoleAdmin)
	api := r.Group("/api", jwtMW, adminMW)
	{
		api.POST("/categories", categoriesH.Create)
		api.PUT("/categories/:id", categoriesH.Update)
		api.DELETE("/categories/:id", categoriesH.Delete)

		api.POST("/templates", templatesH.Create)
		api.GET("/templates", templatesH.List)
		api.GET("/templates/:id", templatesH.Get)
		api.PUT("/templates/:id", templatesH.Update)
		api.DELETE("/templates/:id", templatesH.Delete)

		api.POST("/banners", bannersH.Create)
		api.DELETE("/banners/:id", bannersH.Delete)

		api.GET("/orders", ordersH.List)
		api.GET("/orders/:id", ordersH.Get)
		api.GET("/orders/:id/receipt", ordersH.Receipt)
		api.PUT("/orders/:id", ordersH.Update)
		api.DELETE("/orders/:id", ordersH.Delete)

		api.GET("/contact", contactsH.List)
		api.PUT("/contact/:id", contactsH.Update)

		api.POST("/upload/category", uploadsH.UploadCategoryImage)
		api.POST("/upload/template", uploadsH.UploadTemplateImage)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
