package routes

import (
	"net/http"
	"time"

	"github.com/anuntech/budget-manager/internal/setup/adapters"
	"github.com/anuntech/budget-manager/internal/setup/factory"
	"github.com/anuntech/budget-manager/internal/setup/middlewares"
)

func HomeRoutes(server *http.ServeMux) {
	server.Handle("GET /{$}", adapters.AdaptRoute(factory.MakeIndexController()))

	server.Handle("GET /categories", middlewares.AllowCacheHeader(
		adapters.AdaptRoute(factory.MakeGetCategoriesController()),
		time.Hour,
	))
}
