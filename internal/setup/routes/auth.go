package routes

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/setup/adapters"
	"github.com/anuntech/budget-manager/internal/setup/factory"
)

func AuthRoutes(server *http.ServeMux, deps *factory.Dependencies) {
	server.Handle("GET /register", adapters.AdaptRoute(factory.MakeGetRegisterFormController()))

	server.Handle("POST /register", adapters.AdaptRoute(factory.MakeRegisterController(deps)))

	server.Handle("GET /login", adapters.AdaptRoute(factory.MakeGetLoginFormController()))

	server.Handle("POST /login", adapters.AdaptRoute(factory.MakeLoginController(deps)))

	logout := withSession(adapters.AdaptRoute(factory.MakeLogoutController(deps)), deps)
	server.Handle("GET /logout", logout)
	server.Handle("POST /logout", logout)
}
