package factory

import (
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/user_repository"
	controllers "github.com/anuntech/budget-manager/internal/presentation/controllers/auth"
)

func MakeGetRegisterFormController() *controllers.GetFormController {
	return controllers.NewGetRegisterFormController()
}

func MakeRegisterController(deps *Dependencies) *controllers.RegisterController {
	createUser := user_repository.NewCreateUserRepository(deps.Db)
	findUserByEmail := user_repository.NewFindUserByEmailRepository(deps.Db)
	return controllers.NewRegisterController(createUser, findUserByEmail)
}

func MakeGetLoginFormController() *controllers.GetFormController {
	return controllers.NewGetLoginFormController()
}

func MakeLoginController(deps *Dependencies) *controllers.LoginController {
	findUserByEmail := user_repository.NewFindUserByEmailRepository(deps.Db)
	createSession := redis_repository.NewCreateSessionRepository(deps.Redis)
	return controllers.NewLoginController(findUserByEmail, createSession, deps.SessionToken, deps.SessionTTL, deps.CookieSecure)
}

func MakeLogoutController(deps *Dependencies) *controllers.LogoutController {
	deleteSession := redis_repository.NewDeleteSessionRepository(deps.Redis)
	return controllers.NewLogoutController(deleteSession, deps.CookieSecure)
}

func MakeFindSessionRepository(deps *Dependencies) *redis_repository.FindSessionRepository {
	return redis_repository.NewFindSessionRepository(deps.Redis)
}
