package routes

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/setup/factory"
	"github.com/anuntech/budget-manager/internal/setup/middlewares"
)

func withSession(next http.Handler, deps *factory.Dependencies) http.Handler {
	return middlewares.VerifySession(next, deps.SessionToken, factory.MakeFindSessionRepository(deps))
}
