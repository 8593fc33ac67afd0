// Package main is the entry point for the RepairDesk API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/repairdesk/backend/config"
	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/application/usecase/attribution"
	"github.com/repairdesk/backend/internal/application/usecase/auth"
	"github.com/repairdesk/backend/internal/application/usecase/dashboard"
	"github.com/repairdesk/backend/internal/application/usecase/expense"
	"github.com/repairdesk/backend/internal/application/usecase/ledger"
	"github.com/repairdesk/backend/internal/application/usecase/party"
	"github.com/repairdesk/backend/internal/application/usecase/product"
	"github.com/repairdesk/backend/internal/application/usecase/reminder"
	"github.com/repairdesk/backend/internal/application/usecase/repair"
	"github.com/repairdesk/backend/internal/application/usecase/sale"
	"github.com/repairdesk/backend/internal/infra/db"
	"github.com/repairdesk/backend/internal/infra/server/router"
	"github.com/repairdesk/backend/internal/integration/adapters"
	"github.com/repairdesk/backend/internal/integration/cache"
	"github.com/repairdesk/backend/internal/integration/email"
	"github.com/repairdesk/backend/internal/integration/entrypoint/controller"
	"github.com/repairdesk/backend/internal/integration/entrypoint/middleware"
	"github.com/repairdesk/backend/internal/integration/persistence"
	"github.com/repairdesk/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting RepairDesk API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PartyModel{},
		&model.LedgerEntryModel{},
		&model.RepairModel{},
		&model.PhoneSaleModel{},
		&model.ProductModel{},
		&model.ProductSaleModel{},
		&model.ExpenseModel{},
		&model.EmailJobModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the summary cache. A missing Redis is not fatal; the
	// dashboard falls back to direct computation.
	var summaryCache adapter.SummaryCache
	if redisOpts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, running without summary cache", "error", err)
	} else {
		if cfg.Redis.Password != "" {
			redisOpts.Password = cfg.Redis.Password
		}
		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unreachable, running without summary cache", "error", err)
		} else {
			summaryCache = cache.NewSummaryCache(redisClient)
			slog.Info("Summary cache connected")
		}
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	partyRepo := persistence.NewPartyRepository(database.DB())
	ledgerRepo := persistence.NewLedgerRepository(database.DB())
	repairRepo := persistence.NewRepairRepository(database.DB())
	phoneSaleRepo := persistence.NewPhoneSaleRepository(database.DB())
	productRepo := persistence.NewProductRepository(database.DB())
	productSaleRepo := persistence.NewProductSaleRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create party, ledger and attribution use cases
	createPartyUseCase := party.NewCreatePartyUseCase(partyRepo)
	updatePartyUseCase := party.NewUpdatePartyUseCase(partyRepo)
	deletePartyUseCase := party.NewDeletePartyUseCase(partyRepo)
	listPartiesUseCase := party.NewListPartiesUseCase(partyRepo)
	importPartiesUseCase := party.NewImportPartiesUseCase(partyRepo, repairRepo, phoneSaleRepo, productSaleRepo)
	postAdjustmentUseCase := ledger.NewPostAdjustmentUseCase(partyRepo, ledgerRepo, summaryCache)
	listEntriesUseCase := ledger.NewListEntriesUseCase(partyRepo, ledgerRepo)
	activityUseCase := attribution.NewAggregateActivityUseCase(partyRepo, repairRepo, phoneSaleRepo, productSaleRepo)

	// Create repair use cases
	createRepairUseCase := repair.NewCreateRepairUseCase(repairRepo, ledgerRepo, summaryCache)
	updateRepairUseCase := repair.NewUpdateRepairUseCase(repairRepo, ledgerRepo, summaryCache)
	listRepairsUseCase := repair.NewListRepairsUseCase(repairRepo)
	deleteRepairUseCase := repair.NewDeleteRepairUseCase(repairRepo, summaryCache)

	// Create sale use cases
	createPhoneSaleUseCase := sale.NewCreatePhoneSaleUseCase(phoneSaleRepo, summaryCache)
	listPhoneSalesUseCase := sale.NewListPhoneSalesUseCase(phoneSaleRepo)
	deletePhoneSaleUseCase := sale.NewDeletePhoneSaleUseCase(phoneSaleRepo, summaryCache)
	createProductSaleUseCase := sale.NewCreateProductSaleUseCase(productRepo, productSaleRepo, summaryCache)
	listProductSalesUseCase := sale.NewListProductSalesUseCase(productSaleRepo)
	deleteProductSaleUseCase := sale.NewDeleteProductSaleUseCase(productSaleRepo, summaryCache)

	// Create product use cases
	createProductUseCase := product.NewCreateProductUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, summaryCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, summaryCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache)

	// Create dashboard and reminder use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(repairRepo, phoneSaleRepo, productSaleRepo, expenseRepo, partyRepo, summaryCache)
	queueRemindersUseCase := reminder.NewQueueDebtRemindersUseCase(partyRepo, emailQueueRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	partyController := controller.NewPartyController(
		createPartyUseCase,
		updatePartyUseCase,
		deletePartyUseCase,
		listPartiesUseCase,
		importPartiesUseCase,
		postAdjustmentUseCase,
		listEntriesUseCase,
		activityUseCase,
	)
	repairController := controller.NewRepairController(createRepairUseCase, updateRepairUseCase, listRepairsUseCase, deleteRepairUseCase)
	saleController := controller.NewSaleController(
		createPhoneSaleUseCase,
		listPhoneSalesUseCase,
		deletePhoneSaleUseCase,
		createProductSaleUseCase,
		listProductSalesUseCase,
		deleteProductSaleUseCase,
	)
	productController := controller.NewProductController(createProductUseCase, updateProductUseCase, listProductsUseCase, deleteProductUseCase)
	expenseController := controller.NewExpenseController(createExpenseUseCase, updateExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase)
	dashboardController := controller.NewDashboardController(summaryUseCase, queueRemindersUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Start the reminder email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)
	} else {
		slog.Info("Email worker disabled")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		partyController,
		repairController,
		saleController,
		productController,
		expenseController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
