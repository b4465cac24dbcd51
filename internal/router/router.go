package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/krikodium/hermanascaradonti/internal/config"
	"github.com/krikodium/hermanascaradonti/internal/handler"
	"github.com/krikodium/hermanascaradonti/internal/infra"
	"github.com/krikodium/hermanascaradonti/internal/middleware"
	"github.com/krikodium/hermanascaradonti/internal/repository"
	"github.com/krikodium/hermanascaradonti/internal/service"
	"github.com/krikodium/hermanascaradonti/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, whatsappCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	generalCashRepo := repository.NewGeneralCashRepository(db)
	eventsCashRepo := repository.NewEventsCashRepository(db)
	shopCashRepo := repository.NewShopCashRepository(db)
	movementRepo := repository.NewStudioMovementRepository(db)
	orderRepo := repository.NewDisbursementOrderRepository(db)
	cashCountRepo := repository.NewCashCountRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	generalCashSvc := service.NewGeneralCashService(generalCashRepo, cfg, dispatcher)
	eventsCashSvc := service.NewEventsCashService(eventsCashRepo)
	shopCashSvc := service.NewShopCashService(shopCashRepo)
	studioSvc := service.NewStudioService(movementRepo, orderRepo, projectRepo)
	cashCountSvc := service.NewCashCountService(cashCountRepo, movementRepo, cfg, dispatcher)
	projectSvc := service.NewProjectService(projectRepo, movementRepo, orderRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	generalCashH := handler.NewGeneralCashHandler(generalCashSvc)
	eventsCashH := handler.NewEventsCashHandler(eventsCashSvc)
	shopCashH := handler.NewShopCashHandler(shopCashSvc)
	studioH := handler.NewStudioHandler(studioSvc)
	cashCountH := handler.NewCashCountHandler(cashCountSvc)
	projectH := handler.NewProjectHandler(projectSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/api/health", handler.Health(db, rdb, whatsappCB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/auth/me", authH.Me)
		api.POST("/auth/register", middleware.RequireRole("super-admin"), authH.Register)

		// Roles: employee, area-admin, super-admin
		general := api.Group("/general-cash")
		{
			general.POST("", generalCashH.Create)
			general.GET("", generalCashH.List)
			general.GET("/summary", generalCashH.Summary)
			general.GET("/:id", generalCashH.Get)
			general.PATCH("/:id", generalCashH.Update)
			// Resolving payment orders is an admin action
			general.POST("/:id/approve", middleware.RequireRole("area-admin", "super-admin"), generalCashH.Approve)
		}

		events := api.Group("/events-cash")
		{
			events.POST("", eventsCashH.Create)
			events.GET("", eventsCashH.List)
			events.GET("/summary", eventsCashH.Summary)
			events.GET("/:id", eventsCashH.Get)
			events.POST("/:id/ledger", eventsCashH.AppendEntry)
		}

		shop := api.Group("/shop-cash")
		{
			shop.POST("", shopCashH.Create)
			shop.GET("", shopCashH.List)
			shop.GET("/summary", shopCashH.Summary)
			shop.GET("/:id", shopCashH.Get)
		}

		movements := api.Group("/deco-movements")
		{
			movements.POST("", studioH.CreateMovement)
			movements.GET("", studioH.ListMovements)
			movements.GET("/summary", studioH.Summary)
		}

		orders := api.Group("/disbursement-orders")
		{
			orders.POST("", studioH.CreateOrder)
			orders.GET("", studioH.ListOrders)
		}

		counts := api.Group("/cash-counts")
		{
			counts.POST("", cashCountH.Create)
			counts.GET("", cashCountH.List)
			counts.GET("/summary", cashCountH.Summary)
			counts.GET("/:id", cashCountH.Get)
			counts.POST("/:id/discrepancies/:discrepancy_id/resolve",
				middleware.RequireRole("area-admin", "super-admin"), cashCountH.ResolveDiscrepancy)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectH.List)
			projects.GET("/summary", projectH.Summary)
			projects.GET("/:id", projectH.Get)
			projects.POST("", middleware.RequireRole("area-admin", "super-admin"), projectH.Create)
			projects.PATCH("/:id", middleware.RequireRole("area-admin", "super-admin"), projectH.Update)
			projects.DELETE("/:id", middleware.RequireRole("super-admin"), projectH.Archive)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
