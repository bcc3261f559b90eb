package factory

import (
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/budget_repository"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/expense_repository"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/user_repository"
	"github.com/anuntech/budget-manager/internal/infra/excel"
	controllers "github.com/anuntech/budget-manager/internal/presentation/controllers/budget"
)

func MakeGetBudgetManagerController(deps *Dependencies) *controllers.GetBudgetManagerController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findBudgets := budget_repository.NewFindBudgetsRepository(deps.Db)
	findExpenses := expense_repository.NewFindExpensesRepository(deps.Db)
	return controllers.NewGetBudgetManagerController(findUserById, findBudgets, findExpenses)
}

func MakeGetSetBudgetFormController(deps *Dependencies) *controllers.GetSetBudgetFormController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findBudgets := budget_repository.NewFindBudgetsRepository(deps.Db)
	return controllers.NewGetSetBudgetFormController(findUserById, findBudgets)
}

func MakeSetBudgetController(deps *Dependencies) *controllers.SetBudgetController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findBudgets := budget_repository.NewFindBudgetsRepository(deps.Db)
	deleteBudget := budget_repository.NewDeleteBudgetRepository(deps.Db)
	createBudget := budget_repository.NewCreateBudgetRepository(deps.Db)
	return controllers.NewSetBudgetController(findUserById, findBudgets, deleteBudget, createBudget)
}

func MakeGetSummaryController(deps *Dependencies) *controllers.GetSummaryController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findBudgets := budget_repository.NewFindBudgetsRepository(deps.Db)
	findExpenses := expense_repository.NewFindExpensesRepository(deps.Db)
	return controllers.NewGetSummaryController(findUserById, findBudgets, findExpenses)
}

func MakeExportBudgetController(deps *Dependencies) *controllers.ExportBudgetController {
	findUserById := user_repository.NewFindUserByIdRepository(deps.Db)
	findBudgets := budget_repository.NewFindBudgetsRepository(deps.Db)
	findExpenses := expense_repository.NewFindExpensesRepository(deps.Db)
	generateReport := excel.NewMonthlyReportGenerator()
	return controllers.NewExportBudgetController(findUserById, findBudgets, findExpenses, generateReport)
}
