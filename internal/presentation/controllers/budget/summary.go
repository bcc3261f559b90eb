package budget

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetSummaryController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
	FindBudgetsRepository  usecase.FindBudgetsRepository
	FindExpensesRepository usecase.FindExpensesRepository
	Validate               *helpers.FormValidator
}

func NewGetSummaryController(
	findUserById usecase.FindUserByIdRepository,
	findBudgets usecase.FindBudgetsRepository,
	findExpenses usecase.FindExpensesRepository,
) *GetSummaryController {
	return &GetSummaryController{
		FindUserByIdRepository: findUserById,
		FindBudgetsRepository:  findBudgets,
		FindExpensesRepository: findExpenses,
		Validate:               helpers.NewFormValidator(),
	}
}

func (c *GetSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	params, errResponse := helpers.GetMonthRangeByQueries(r.UrlParams, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	user, errResponse := helpers.FindCurrentUser(r, c.FindUserByIdRepository)
	if errResponse != nil {
		return errResponse
	}

	summary, _, errResponse := loadSummary(user, params.From, params.To, c.FindBudgetsRepository, c.FindExpensesRepository)
	if errResponse != nil {
		return errResponse
	}

	return helpers.CreateResponse(summary, http.StatusOK)
}
