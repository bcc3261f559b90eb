package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type SetBudgetController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
	FindBudgetsRepository  usecase.FindBudgetsRepository
	DeleteBudgetRepository usecase.DeleteBudgetRepository
	CreateBudgetRepository usecase.CreateBudgetRepository
	Validate               *helpers.FormValidator
}

func NewSetBudgetController(
	findUserById usecase.FindUserByIdRepository,
	findBudgets usecase.FindBudgetsRepository,
	deleteBudget usecase.DeleteBudgetRepository,
	createBudget usecase.CreateBudgetRepository,
) *SetBudgetController {
	return &SetBudgetController{
		FindUserByIdRepository: findUserById,
		FindBudgetsRepository:  findBudgets,
		DeleteBudgetRepository: deleteBudget,
		CreateBudgetRepository: createBudget,
		Validate:               helpers.NewFormValidator(),
	}
}

type SetBudgetBody struct {
	Amount *float64 `json:"amount" validate:"required,gte=0"`
}

func (c *SetBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	month, err := helpers.ParseMonth(r.Req.PathValue("date"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}

	var body SetBudgetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateInvalidBodyResponse()
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateFormErrorResponse(helpers.BudgetForm(setBudgetAction(month), 0), c.Validate, err)
	}

	user, errResponse := helpers.FindCurrentUser(r, c.FindUserByIdRepository)
	if errResponse != nil {
		return errResponse
	}

	existing, err := c.FindBudgetsRepository.Find(user.Budgets, month, month)
	if err != nil {
		slog.Error("Error finding budgets", "userId", user.Id.Hex(), "month", month, "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving budget",
		}, http.StatusInternalServerError)
	}

	// Budgets are replaced, never updated: every budget of the month goes
	// before the new one is inserted.
	for _, budget := range existing {
		if err := c.DeleteBudgetRepository.Delete(budget.Id, user.Id); err != nil {
			slog.Error("Error deleting budget", "budgetId", budget.Id.Hex(), "error", err)
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when replacing budget",
			}, http.StatusInternalServerError)
		}
	}

	budget, err := c.CreateBudgetRepository.Create(&models.Budget{
		Amount: *body.Amount,
		Month:  month,
	}, user.Id)
	if err != nil {
		slog.Error("Error creating budget", "userId", user.Id.Hex(), "month", month, "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating budget",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateRedirect(helpers.BudgetManagerLocation(month), budget)
}
