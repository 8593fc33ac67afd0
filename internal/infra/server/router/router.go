// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/repairdesk/backend/internal/integration/entrypoint/controller"
	"github.com/repairdesk/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	partyController     *controller.PartyController
	repairController    *controller.RepairController
	saleController      *controller.SaleController
	productController   *controller.ProductController
	expenseController   *controller.ExpenseController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	partyController *controller.PartyController,
	repairController *controller.RepairController,
	saleController *controller.SaleController,
	productController *controller.ProductController,
	expenseController *controller.ExpenseController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		partyController:     partyController,
		repairController:    repairController,
		saleController:      saleController,
		productController:   productController,
		expenseController:   expenseController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Party directory, ledger and activity routes (require authentication)
		if r.partyController != nil && r.authMiddleware != nil {
			parties := v1.Group("/parties")
			parties.Use(r.authMiddleware.Authenticate())
			{
				parties.GET("", r.partyController.List)
				parties.POST("", r.partyController.Create)
				parties.GET("/activity", r.partyController.Activity)
				parties.POST("/import", r.partyController.Import)
				parties.PATCH("/:id", r.partyController.Update)
				parties.DELETE("/:id", r.partyController.Delete)
				parties.POST("/:id/adjustments", r.partyController.PostAdjustment)
				parties.GET("/:id/ledger", r.partyController.Ledger)
			}
		}

		// Repair ticket routes (require authentication)
		if r.repairController != nil && r.authMiddleware != nil {
			repairs := v1.Group("/repairs")
			repairs.Use(r.authMiddleware.Authenticate())
			{
				repairs.GET("", r.repairController.List)
				repairs.POST("", r.repairController.Create)
				repairs.PATCH("/:id", r.repairController.Update)
				repairs.DELETE("/:id", r.repairController.Delete)
			}
		}

		// Sale routes (require authentication)
		if r.saleController != nil && r.authMiddleware != nil {
			phoneSales := v1.Group("/phone-sales")
			phoneSales.Use(r.authMiddleware.Authenticate())
			{
				phoneSales.GET("", r.saleController.ListPhoneSales)
				phoneSales.POST("", r.saleController.CreatePhoneSale)
				phoneSales.DELETE("/:id", r.saleController.DeletePhoneSale)
			}

			productSales := v1.Group("/product-sales")
			productSales.Use(r.authMiddleware.Authenticate())
			{
				productSales.GET("", r.saleController.ListProductSales)
				productSales.POST("", r.saleController.CreateProductSale)
				productSales.DELETE("/:id", r.saleController.DeleteProductSale)
			}
		}

		// Product catalog routes (require authentication)
		if r.productController != nil && r.authMiddleware != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.PATCH("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Dashboard and reminder routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
			}

			reminders := v1.Group("/reminders")
			reminders.Use(r.authMiddleware.Authenticate())
			{
				reminders.POST("/debt", r.dashboardController.QueueReminders)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
