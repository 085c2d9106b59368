// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetlens/backend/config"
	"github.com/budgetlens/backend/internal/application/adapter"
	"github.com/budgetlens/backend/internal/application/usecase/aireport"
	"github.com/budgetlens/backend/internal/application/usecase/auth"
	"github.com/budgetlens/backend/internal/application/usecase/budget"
	"github.com/budgetlens/backend/internal/application/usecase/category"
	"github.com/budgetlens/backend/internal/application/usecase/goal"
	"github.com/budgetlens/backend/internal/application/usecase/report"
	"github.com/budgetlens/backend/internal/application/usecase/transaction"
	"github.com/budgetlens/backend/internal/infra/server/router"
	"github.com/budgetlens/backend/internal/integration/adapters"
	"github.com/budgetlens/backend/internal/integration/cache"
	"github.com/budgetlens/backend/internal/integration/email"
	"github.com/budgetlens/backend/internal/integration/email/templates"
	"github.com/budgetlens/backend/internal/integration/entrypoint/controller"
	"github.com/budgetlens/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetlens/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// SubscriptionRepo is exposed so main can seed the free plan at startup.
	SubscriptionRepo adapter.SubscriptionRepository

	// EmailWorker is nil when the worker is disabled or resend is not configured.
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	aiReportRepo := persistence.NewAIReportRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	completionService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)

	// Email notifications are optional: without a resend key the generation
	// path simply skips the enqueue.
	var emailService adapter.EmailService
	var emailWorker *email.Worker
	if cfg.Email.ResendAPIKey != "" {
		emailService = email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

		if cfg.Email.WorkerEnabled {
			renderer, err := templates.NewRenderer()
			if err != nil {
				return nil, err
			}
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
		}
	} else {
		slog.Info("Resend API key not configured, report emails disabled")
	}

	// The dashboard stats cache is optional in the same way.
	var statsCache report.StatsCache
	if cfg.Redis.Enabled {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Invalid redis URL, dashboard stats cache disabled", "error", err)
		} else {
			if cfg.Redis.Password != "" {
				opts.Password = cfg.Redis.Password
			}
			opts.DB = cfg.Redis.DB
			statsCache = cache.NewStatsCache(redis.NewClient(opts), cfg.Redis.StatsTTL)
		}
	}

	// Create auth use cases
	provisionUseCase := auth.NewProvisionUserUseCase(categoryRepo, subscriptionRepo)
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, provisionUseCase)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo, transactionRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	addFundsUseCase := goal.NewAddFundsUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create report use cases
	dashboardStatsUseCase := report.NewGetDashboardStatsUseCase(transactionRepo, statsCache)
	monthlyReportUseCase := report.NewGetMonthlyReportUseCase(transactionRepo)

	// Create AI report use cases
	generateReportUseCase := aireport.NewGenerateReportUseCase(
		aiReportRepo,
		transactionRepo,
		userRepo,
		completionService,
		emailService,
	)
	autoGenerateUseCase := aireport.NewAutoGenerateUseCase(userRepo, transactionRepo, generateReportUseCase)
	listReportsUseCase := aireport.NewListReportsUseCase(aiReportRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(userRepo)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		addFundsUseCase,
		deleteGoalUseCase,
	)

	reportController := controller.NewReportController(
		dashboardStatsUseCase,
		monthlyReportUseCase,
	)

	aiReportController := controller.NewAIReportController(
		listReportsUseCase,
		generateReportUseCase,
		autoGenerateUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		budgetController,
		goalController,
		reportController,
		aiReportController,
		loginRateLimiter,
		authMiddleware,
		cfg.Cron.Secret,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		SubscriptionRepo: subscriptionRepo,
		EmailWorker:      emailWorker,
	}, nil
}
