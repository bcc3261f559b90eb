package factory

import (
	"time"

	"github.com/anuntech/budget-manager/internal/utils"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependencies struct {
	Db           *mongo.Database
	Redis        *redis.Client
	SessionToken *utils.SessionTokenUtil
	SessionTTL   time.Duration
	CookieSecure bool
}
