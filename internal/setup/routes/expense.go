package routes

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/setup/adapters"
	"github.com/anuntech/budget-manager/internal/setup/factory"
)

func ExpenseRoutes(server *http.ServeMux, deps *factory.Dependencies) {
	server.Handle("GET /budget-manager/add-expense/{date}", withSession(
		adapters.AdaptRoute(factory.MakeGetCreateExpenseFormController()),
		deps,
	))

	server.Handle("POST /budget-manager/add-expense/{date}", withSession(
		adapters.AdaptRoute(factory.MakeCreateExpenseController(deps)),
		deps,
	))

	server.Handle("GET /budget-manager/edit-expense/{date}/{expenseId}", withSession(
		adapters.AdaptRoute(factory.MakeGetUpdateExpenseFormController(deps)),
		deps,
	))

	server.Handle("POST /budget-manager/edit-expense/{date}/{expenseId}", withSession(
		adapters.AdaptRoute(factory.MakeUpdateExpenseController(deps)),
		deps,
	))

	server.Handle("GET /budget-manager/delete-expense/{date}/{expenseId}", withSession(
		adapters.AdaptRoute(factory.MakeGetDeleteExpenseFormController(deps)),
		deps,
	))

	server.Handle("POST /budget-manager/delete-expense/{date}/{expenseId}", withSession(
		adapters.AdaptRoute(factory.MakeDeleteExpenseController(deps)),
		deps,
	))
}
