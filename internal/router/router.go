package router

import (
	"net/http"
	"time"

	"github.com/LSkevi/PieTracker/internal/config"
	"github.com/LSkevi/PieTracker/internal/currency"
	"github.com/LSkevi/PieTracker/internal/handler"
	"github.com/LSkevi/PieTracker/internal/identity"
	"github.com/LSkevi/PieTracker/internal/middleware"
	"github.com/LSkevi/PieTracker/internal/service"
	"github.com/LSkevi/PieTracker/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup configures the Gin engine and registers all API routes.
func Setup(cfg *config.Config, st store.Store, resolver *identity.Resolver, rates *currency.Cache) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "X-User-Id", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to PieTracker API", "docs": "/docs"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "PieTracker API is running"})
	})

	authHandler := handler.NewAuthHandler(st, resolver)
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	// Everything below resolves the caller's identity but never rejects:
	// anonymous requests operate on the shared "public" namespace.
	api := r.Group("")
	api.Use(middleware.Identity(resolver), middleware.Audit())

	api.GET("/auth/me", authHandler.Me)

	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(st))
	api.GET("/categories", categoryHandler.List)
	api.POST("/categories", categoryHandler.Add)
	api.GET("/categories/colors", categoryHandler.Colors)
	api.DELETE("/categories/:name", categoryHandler.Delete)

	expenseService := service.NewExpenseService(st)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	api.GET("/expenses", expenseHandler.List)
	api.POST("/expenses", expenseHandler.Create)
	api.DELETE("/expenses/:id", expenseHandler.Delete)
	api.GET("/expenses/month/:year/:month", expenseHandler.ListMonth)
	api.GET("/expenses/summary/:year/:month", expenseHandler.Summary)
	api.GET("/expenses/available-months", expenseHandler.AvailableMonths)

	exportHandler := handler.NewExportHandler(expenseService)
	api.GET("/expenses/export/csv", exportHandler.ExportCSV)
	api.GET("/expenses/export/xlsx", exportHandler.ExportXLSX)

	currencyHandler := handler.NewCurrencyHandler(rates)
	api.GET("/currencies", currencyHandler.Supported)
	api.GET("/currencies/rates", currencyHandler.RatesTable)

	return r
}
