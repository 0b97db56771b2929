// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cashflow-tracker/backend/config"
	accountuc "github.com/cashflow-tracker/backend/internal/application/usecase/account"
	"github.com/cashflow-tracker/backend/internal/application/usecase/analysis"
	"github.com/cashflow-tracker/backend/internal/application/usecase/cashflow"
	categoryuc "github.com/cashflow-tracker/backend/internal/application/usecase/category"
	reportuc "github.com/cashflow-tracker/backend/internal/application/usecase/report"
	transactionuc "github.com/cashflow-tracker/backend/internal/application/usecase/transaction"
	"github.com/cashflow-tracker/backend/internal/infra/server/router"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/cashflow-tracker/backend/internal/integration/persistence"
	"github.com/cashflow-tracker/backend/internal/integration/pubsub"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Hub    *pubsub.Hub
	Router *router.Router

	EnsureDefaultAccounts *accountuc.EnsureDefaultAccountsUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Change notification fabric
	notifier := pubsub.NewRedisNotifier(redisClient)
	hub := pubsub.NewHub(redisClient)

	// Create repositories
	accountRepo := persistence.NewAccountRepository(db, notifier)
	categoryRepo := persistence.NewCategoryRepository(db, notifier)
	transactionRepo := persistence.NewTransactionRepository(db, notifier)

	// Create account use cases
	listAccountsUseCase := accountuc.NewListAccountsUseCase(accountRepo, transactionRepo)
	getAccountUseCase := accountuc.NewGetAccountUseCase(accountRepo)
	createAccountUseCase := accountuc.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := accountuc.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := accountuc.NewDeleteAccountUseCase(accountRepo, transactionRepo)
	ensureDefaultAccountsUseCase := accountuc.NewEnsureDefaultAccountsUseCase(accountRepo)

	// Create category use cases
	listCategoriesUseCase := categoryuc.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := categoryuc.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := categoryuc.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := categoryuc.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Create transaction use cases
	listTransactionsUseCase := transactionuc.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transactionuc.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transactionuc.NewCreateTransactionUseCase(transactionRepo, categoryRepo, accountRepo)
	updateTransactionUseCase := transactionuc.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, accountRepo)
	deleteTransactionUseCase := transactionuc.NewDeleteTransactionUseCase(transactionRepo)

	// Create aggregate use cases
	getSummaryUseCase := cashflow.NewGetSummaryUseCase(transactionRepo)
	generateAnalysisUseCase := analysis.NewGenerateAnalysisUseCase(transactionRepo, accountRepo)
	dailyClosureDocumentUseCase := reportuc.NewGetDailyClosureDocumentUseCase(transactionRepo, accountRepo)
	dailyClosureMessageUseCase := reportuc.NewGetDailyClosureMessageUseCase(transactionRepo, accountRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		getAccountUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	cashflowController := controller.NewCashflowController(getSummaryUseCase)
	analysisController := controller.NewAnalysisController(generateAnalysisUseCase)
	reportController := controller.NewReportController(dailyClosureDocumentUseCase, dailyClosureMessageUseCase)
	streamController := controller.NewStreamController(
		hub,
		listAccountsUseCase,
		listCategoriesUseCase,
		listTransactionsUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var mutationRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		mutationRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		mutationRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		categoryController,
		transactionController,
		cashflowController,
		analysisController,
		reportController,
		streamController,
		mutationRateLimiter,
	)

	return &Injector{
		Config:                cfg,
		DB:                    db,
		Hub:                   hub,
		Router:                r,
		EnsureDefaultAccounts: ensureDefaultAccountsUseCase,
	}
}
