package factory

import (
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/expense_repository"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/user_repository"
	controllers "github.com/anuntech/budget-manager/internal/presentation/controllers/expense"
)

func MakeGetCreateExpenseFormController() *controllers.GetCreateExpenseFormController {
	return controllers.NewGetCreateExpenseFormController()
}

func MakeCreateExpenseController(deps *Dependencies) *controllers.CreateExpenseController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	createExpense := expense_repository.NewCreateExpenseRepository(deps.Db)
	return controllers.NewCreateExpenseController(findUserById, createExpense)
}

func MakeGetUpdateExpenseFormController(deps *Dependencies) *controllers.GetUpdateExpenseFormController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(deps.Db)
	return controllers.NewGetUpdateExpenseFormController(findUserById, findExpenseById)
}

func MakeUpdateExpenseController(deps *Dependencies) *controllers.UpdateExpenseController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(deps.Db)
	updateExpense := expense_repository.NewUpdateExpenseRepository(deps.Db)
	return controllers.NewUpdateExpenseController(findUserById, findExpenseById, updateExpense)
}

func MakeGetDeleteExpenseFormController(deps *Dependencies) *controllers.GetDeleteExpenseFormController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(deps.Db)
	return controllers.NewGetDeleteExpenseFormController(findUserById, findExpenseById)
}

func MakeDeleteExpenseController(deps *Dependencies) *controllers.DeleteExpenseController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(deps.Db)
	deleteExpense := expense_repository.NewDeleteExpenseRepository(deps.Db)
	return controllers.NewDeleteExpenseController(findUserById, findExpenseById, deleteExpense)
}
