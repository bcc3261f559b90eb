package routes

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/setup/adapters"
	"github.com/anuntech/budget-manager/internal/setup/factory"
)

func BudgetRoutes(server *http.ServeMux, deps *factory.Dependencies) {
	server.Handle("GET /budget-manager", withSession(
		adapters.AdaptRoute(factory.MakeGetBudgetManagerController(deps)),
		deps,
	))

	server.Handle("GET /budget-manager/set-budget/{date}", withSession(
		adapters.AdaptRoute(factory.MakeGetSetBudgetFormController(deps)),
		deps,
	))

	server.Handle("POST /budget-manager/set-budget/{date}", withSession(
		adapters.AdaptRoute(factory.MakeSetBudgetController(deps)),
		deps,
	))

	server.Handle("GET /budget-manager/export", withSession(
		adapters.AdaptRoute(factory.MakeExportBudgetController(deps)),
		deps,
	))

	server.Handle("GET /summary", withSession(
		adapters.AdaptRoute(factory.MakeGetSummaryController(deps)),
		deps,
	))
}
