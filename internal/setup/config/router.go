package config

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/setup/factory"
	"github.com/anuntech/budget-manager/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, deps *factory.Dependencies) {
	routes.HomeRoutes(server)
	routes.AuthRoutes(server, deps)
	routes.BudgetRoutes(server, deps)
	routes.ExpenseRoutes(server, deps)
}
