package app

import (
	"time"

	"github.com/spendsight/spendsight/internal/config"
	"github.com/spendsight/spendsight/internal/event_bus"
	"github.com/spendsight/spendsight/internal/utils"
	"github.com/spendsight/spendsight/pkg/backend"
	"github.com/spendsight/spendsight/pkg/category"
	"github.com/spendsight/spendsight/pkg/dashboard"
	"github.com/spendsight/spendsight/pkg/expense"
	"github.com/spendsight/spendsight/pkg/search"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	BackendClient backend.Client

	FavoritesRepo   category.FavoritesRepo
	CategoryStore   *category.StoreImpl
	CategoryHandler *category.Handler

	ExpenseStore   *expense.StoreImpl
	ExpenseHandler *expense.Handler

	DashboardService *dashboard.ServiceImpl
	DashboardHandler *dashboard.Handler

	SearchHandler *search.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.BackendClient = backend.NewClient(cfg.Backend.URL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)

	deps.FavoritesRepo = category.NewFileFavoritesRepo(cfg.Storage.FavoritesPath)
	deps.CategoryStore = category.NewStore(deps.BackendClient, deps.FavoritesRepo, deps.Bus, cfg.Categories.Defaults)
	deps.CategoryHandler = category.NewHandler(deps.CategoryStore)

	deps.ExpenseStore = expense.NewStore(deps.BackendClient, deps.Bus, deps.Clock)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseStore)

	deps.DashboardService = dashboard.NewService(deps.ExpenseStore, deps.CategoryStore, deps.Clock)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	deps.SearchHandler = search.NewHandler(deps.ExpenseStore)

	return deps
}
