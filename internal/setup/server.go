package setup

import (
	"fmt"
	"net/http"

	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/budget-manager/internal/setup/config"
	"github.com/anuntech/budget-manager/internal/setup/factory"
	"github.com/anuntech/budget-manager/internal/setup/middlewares"
	"github.com/anuntech/budget-manager/internal/utils"
)

// Server connects to MongoDB and Redis and returns the fully wrapped
// handler together with the function that releases both connections.
func Server(cfg *config.Config) (http.Handler, func(), error) {
	sessionToken, err := utils.NewSessionTokenUtil(cfg.SessionSecret)
	if err != nil {
		return nil, nil, err
	}

	db, err := helpers.MongoHelper(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := helpers.EnsureIndexes(db); err != nil {
		helpers.DisconnectMongo(db)
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}

	redisClient, err := helpers.RedisHelper(cfg.RedisURL)
	if err != nil {
		helpers.DisconnectMongo(db)
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	mux := http.NewServeMux()

	config.SetupRoutes(mux, &factory.Dependencies{
		Db:           db,
		Redis:        redisClient,
		SessionToken: sessionToken,
		SessionTTL:   cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
	})

	handler := middlewares.CorsMiddleware(mux, cfg.AllowedOrigins)
	handler = middlewares.RecoveryMiddleware(handler)
	handler = middlewares.RequestLogger(handler)

	cleanup := func() {
		helpers.DisconnectMongo(db)
		helpers.DisconnectRedis()
	}

	return handler, cleanup, nil
}
