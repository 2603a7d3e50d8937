// Package routes defines HTTP routes for the refdata service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/docs"
	"github.com/poseidon-markets/refdata-service/internal/config"
	"github.com/poseidon-markets/refdata-service/internal/handlers"
	"github.com/poseidon-markets/refdata-service/internal/middleware"
	"github.com/poseidon-markets/refdata-service/internal/models"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Auth       *handlers.AuthHandler
	BidList    *handlers.BidListHandler
	CurvePoint *handlers.CurvePointHandler
	Rating     *handlers.RatingHandler
	RuleName   *handlers.RuleNameHandler
	Trade      *handlers.TradeHandler
	User       *handlers.UserHandler
	Health     *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application. Reads require
// any authenticated role, writes and user administration require Admin.
func Setup(router *gin.Engine, h Handlers, jwtService service.JWTService, authService service.AuthService, cfg *config.Config, log *zap.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Login is the only unauthenticated business route.
	router.POST("/auth/login", h.Auth.Login)

	authenticated := router.Group("/", middleware.Auth(jwtService, authService))
	authenticated.POST("/auth/logout", h.Auth.Logout)

	anyRole := middleware.RequireRole(models.RoleUser, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	registerCRUD(authenticated, "/bidlist", anyRole, adminOnly, crudHandlers{
		getAll: h.BidList.GetAll, getByID: h.BidList.GetByID,
		create: h.BidList.Create, update: h.BidList.Update, delete: h.BidList.Delete,
	})
	registerCRUD(authenticated, "/curve", anyRole, adminOnly, crudHandlers{
		getAll: h.CurvePoint.GetAll, getByID: h.CurvePoint.GetByID,
		create: h.CurvePoint.Create, update: h.CurvePoint.Update, delete: h.CurvePoint.Delete,
	})
	registerCRUD(authenticated, "/rating", anyRole, adminOnly, crudHandlers{
		getAll: h.Rating.GetAll, getByID: h.Rating.GetByID,
		create: h.Rating.Create, update: h.Rating.Update, delete: h.Rating.Delete,
	})
	registerCRUD(authenticated, "/rulename", anyRole, adminOnly, crudHandlers{
		getAll: h.RuleName.GetAll, getByID: h.RuleName.GetByID,
		create: h.RuleName.Create, update: h.RuleName.Update, delete: h.RuleName.Delete,
	})
	registerCRUD(authenticated, "/trade", anyRole, adminOnly, crudHandlers{
		getAll: h.Trade.GetAll, getByID: h.Trade.GetByID,
		create: h.Trade.Create, update: h.Trade.Update, delete: h.Trade.Delete,
	})

	// User administration is Admin-only, reads included.
	users := authenticated.Group("/users", adminOnly)
	{
		users.GET("", h.User.GetAll)
		users.GET("/:id", h.User.GetByID)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

type crudHandlers struct {
	getAll  gin.HandlerFunc
	getByID gin.HandlerFunc
	create  gin.HandlerFunc
	update  gin.HandlerFunc
	delete  gin.HandlerFunc
}

func registerCRUD(rg *gin.RouterGroup, path string, read, write gin.HandlerFunc, h crudHandlers) {
	group := rg.Group(path)
	{
		group.GET("", read, h.getAll)
		group.GET("/:id", read, h.getByID)
		group.POST("", write, h.create)
		group.PUT("/:id", write, h.update)
		group.DELETE("/:id", write, h.delete)
	}
}
