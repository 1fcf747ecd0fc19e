// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/village-finance/backend/config"
	"github.com/village-finance/backend/internal/application/adapter"
	"github.com/village-finance/backend/internal/application/usecase/dashboard"
	"github.com/village-finance/backend/internal/application/usecase/record"
	"github.com/village-finance/backend/internal/domain/entity"
	"github.com/village-finance/backend/internal/infra/server/router"
	"github.com/village-finance/backend/internal/integration/adapters"
	"github.com/village-finance/backend/internal/integration/cache"
	"github.com/village-finance/backend/internal/integration/entrypoint/controller"
	"github.com/village-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/village-finance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	clock adapter.Clock
}

// WithClock replaces the system clock, used by tests that pin "today".
func WithClock(clock adapter.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the dashboard then recomputes every request and writes are not rate limited.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) *Injector {
	o := options{clock: adapters.NewSystemClock()}
	for _, opt := range opts {
		opt(&o)
	}

	// Create repositories
	recordRepo := persistence.NewRecordRepository(db)

	// Create cache
	var trendCache dashboard.TrendCache
	var invalidator adapter.CacheInvalidator
	var writeRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		redisTrendCache := cache.NewTrendCache(redisClient, cfg.Dashboard.TrendCacheTTL)
		trendCache = redisTrendCache
		invalidator = redisTrendCache
		writeRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	}

	// Create dashboard use cases
	getFinancialTrendUseCase := dashboard.NewGetFinancialTrendUseCase(recordRepo, trendCache, o.clock, cfg.Dashboard.Location())
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(recordRepo)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(recordRepo)

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, invalidator)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, invalidator)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo, invalidator)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	dashboardController := controller.NewDashboardController(
		getFinancialTrendUseCase,
		getSummaryUseCase,
		getCategoryBreakdownUseCase,
	)

	incomeController := controller.NewRecordController(
		entity.RecordKindIncome,
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
	)

	expenseController := controller.NewRecordController(
		entity.RecordKindExpense,
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
	)

	// Create router
	r := router.NewRouter(healthController, dashboardController, incomeController, expenseController, writeRateLimiter)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
