package expense

import (
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type DeleteExpenseController struct {
	FindUserByIdRepository    usecase.FindUserByIdRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
	DeleteExpenseRepository   usecase.DeleteExpenseRepository
}

func NewDeleteExpenseController(
	findUserById usecase.FindUserByIdRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
	deleteExpense usecase.DeleteExpenseRepository,
) *DeleteExpenseController {
	return &DeleteExpenseController{
		FindUserByIdRepository:    findUserById,
		FindExpenseByIdRepository: findExpenseById,
		DeleteExpenseRepository:   deleteExpense,
	}
}

type DeleteExpenseResponse struct {
	Message string `json:"message"`
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	month, errResponse := parseMonthPath(r)
	if errResponse != nil {
		return errResponse
	}

	user, errResponse := helpers.FindCurrentUser(r, c.FindUserByIdRepository)
	if errResponse != nil {
		return errResponse
	}

	expense, errResponse := findOwnedExpense(r, user, c.FindExpenseByIdRepository)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteExpenseRepository.Delete(expense.Id, user.Id); err != nil {
		slog.Error("Error deleting expense", "expenseId", expense.Id.Hex(), "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateRedirect(helpers.BudgetManagerLocation(month), &DeleteExpenseResponse{
		Message: "Expense deleted successfully.",
	})
}
