package router

import (
	app "github.com/lifeosapp/backend/internal/application"
	"github.com/lifeosapp/backend/internal/container"
	pginfra "github.com/lifeosapp/backend/internal/infrastructure/postgres"
	handlers "github.com/lifeosapp/backend/internal/interface/http"
	"github.com/lifeosapp/backend/internal/router/modules"
)

// InitModules wires repositories, the kernel, services, and handlers from the
// container singletons, then registers every feature module. Call once during
// startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	stores := app.Stores{
		Users:         pginfra.NewUserRepository(pool),
		Events:        pginfra.NewEventRepository(pool),
		HealthLogs:    pginfra.NewHealthLogRepository(pool),
		Transactions:  pginfra.NewTransactionRepository(pool),
		Habits:        pginfra.NewHabitRepository(pool),
		Goals:         pginfra.NewGoalRepository(pool),
		Tasks:         pginfra.NewTaskRepository(pool),
		Relationships: pginfra.NewRelationshipRepository(pool),
	}

	kernel := app.NewKernel(stores, container.GetRedis(), logger, container.GetES(), cfg.ESEventsIndex)

	authSvc := app.NewAuthService(stores.Users, container.GetJWT(), container.GetRedis(), logger)
	healthSvc := app.NewHealthService(stores.HealthLogs, kernel)
	financeSvc := app.NewFinanceService(stores.Transactions, kernel)
	habitSvc := app.NewHabitService(stores.Habits, kernel)
	goalSvc := app.NewGoalService(stores.Goals, stores.Tasks, kernel)
	taskSvc := app.NewTaskService(stores.Tasks, stores.Goals, kernel)
	relSvc := app.NewRelationshipService(stores.Relationships, kernel)
	exportSvc := app.NewExportService(stores, container.GetGCS(), cfg.GCSBucket)
	digestSvc := app.NewDigestService(stores.Users, kernel, container.GetRabbitPub())

	authHandler := handlers.NewAuthHandler(authSvc, container.GetJWT(), logger, cfg.CookieDomain, cfg.CookieSecure)
	kernelHandler := handlers.NewKernelHandler(kernel, exportSvc, digestSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewKernelModule(kernelHandler, container.GetJWT()))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(healthSvc, logger), container.GetJWT()))
	r.Add(modules.NewFinanceModule(handlers.NewFinanceHandler(financeSvc, logger), container.GetJWT()))
	r.Add(modules.NewHabitModule(handlers.NewHabitHandler(habitSvc, logger), container.GetJWT()))
	r.Add(modules.NewGoalModule(handlers.NewGoalHandler(goalSvc, logger), container.GetJWT()))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), container.GetJWT()))
	r.Add(modules.NewRelationshipModule(handlers.NewRelationshipHandler(relSvc, logger), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
