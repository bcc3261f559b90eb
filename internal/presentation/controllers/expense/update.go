package expense

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type UpdateExpenseController struct {
	FindUserByIdRepository    usecase.FindUserByIdRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
	UpdateExpenseRepository   usecase.UpdateExpenseRepository
	Validate                  *helpers.FormValidator
}

func NewUpdateExpenseController(
	findUserById usecase.FindUserByIdRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
	updateExpense usecase.UpdateExpenseRepository,
) *UpdateExpenseController {
	return &UpdateExpenseController{
		FindUserByIdRepository:    findUserById,
		FindExpenseByIdRepository: findExpenseById,
		UpdateExpenseRepository:   updateExpense,
		Validate:                  helpers.NewFormValidator(),
	}
}

// Handle rewrites every field of the expense. The month comes from the URL,
// so editing from another month's page moves the expense there.
func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var body ExpenseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateInvalidBodyResponse()
	}
	body.normalize()

	if err := c.Validate.Struct(body); err != nil {
		form := helpers.ExpenseForm("EditExpense", editExpenseAction(month, expense.Id.Hex()), expense)
		return helpers.CreateFormErrorResponse(form, c.Validate, err)
	}

	updated, err := c.UpdateExpenseRepository.Update(expense.Id, body.toInput(month))
	if err != nil {
		slog.Error("Error updating expense", "expenseId", expense.Id.Hex(), "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating expense",
		}, http.StatusInternalServerError)
	}

	if updated == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "expense not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateRedirect(helpers.BudgetManagerLocation(month), updated)
}
