package budget

import (
	"net/http"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetBudgetManagerController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
	FindBudgetsRepository  usecase.FindBudgetsRepository
	FindExpensesRepository usecase.FindExpensesRepository
	Now                    func() time.Time
}

func NewGetBudgetManagerController(
	findUserById usecase.FindUserByIdRepository,
	findBudgets usecase.FindBudgetsRepository,
	findExpenses usecase.FindExpensesRepository,
) *GetBudgetManagerController {
	return &GetBudgetManagerController{
		FindUserByIdRepository: findUserById,
		FindBudgetsRepository:  findBudgets,
		FindExpensesRepository: findExpenses,
		Now:                    time.Now,
	}
}

type BudgetManagerResponse struct {
	Title         string                 `json:"title"`
	Date          string                 `json:"date"`
	BudgetAmount  float64                `json:"budgetAmount"`
	BudgetLeft    float64                `json:"budgetLeft"`
	TotalExpenses float64                `json:"totalExpenses"`
	Expenses      []models.Expense       `json:"expenses"`
	Categories    []models.CategoryTotal `json:"categories"`
}

func (c *GetBudgetManagerController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	month, err := helpers.ParseMonthOrDefault(r.UrlParams.Get("date"), c.Now())
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}

	user, errResponse := helpers.FindCurrentUser(r, c.FindUserByIdRepository)
	if errResponse != nil {
		return errResponse
	}

	summary, expenses, errResponse := loadSummary(user, month, month, c.FindBudgetsRepository, c.FindExpensesRepository)
	if errResponse != nil {
		return errResponse
	}

	return helpers.CreateResponse(&BudgetManagerResponse{
		Title:         helpers.TitlePrefix + " | BudgetManager",
		Date:          month,
		BudgetAmount:  summary.BudgetAmount,
		BudgetLeft:    summary.BudgetLeft,
		TotalExpenses: summary.TotalExpenses,
		Expenses:      expenses,
		Categories:    summary.Categories,
	}, http.StatusOK)
}
