package budget

import (
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetSetBudgetFormController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
	FindBudgetsRepository  usecase.FindBudgetsRepository
}

func NewGetSetBudgetFormController(findUserById usecase.FindUserByIdRepository, findBudgets usecase.FindBudgetsRepository) *GetSetBudgetFormController {
	return &GetSetBudgetFormController{
		FindUserByIdRepository: findUserById,
		FindBudgetsRepository:  findBudgets,
	}
}

func (c *GetSetBudgetFormController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	month, err := helpers.ParseMonth(r.Req.PathValue("date"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}

	user, errResponse := helpers.FindCurrentUser(r, c.FindUserByIdRepository)
	if errResponse != nil {
		return errResponse
	}

	budgets, err := c.FindBudgetsRepository.Find(user.Budgets, month, month)
	if err != nil {
		slog.Error("Error finding budgets", "userId", user.Id.Hex(), "month", month, "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving budget",
		}, http.StatusInternalServerError)
	}

	current := 0.0
	if len(budgets) > 0 {
		current = budgets[0].Amount
	}

	return helpers.CreateResponse(helpers.BudgetForm(setBudgetAction(month), current), http.StatusOK)
}

func setBudgetAction(month string) string {
	return "/budget-manager/set-budget/" + month
}
