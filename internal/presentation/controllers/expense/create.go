package expense

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type CreateExpenseController struct {
	FindUserByIdRepository  usecase.FindUserByIdRepository
	CreateExpenseRepository usecase.CreateExpenseRepository
	Validate                *helpers.FormValidator
}

func NewCreateExpenseController(findUserById usecase.FindUserByIdRepository, createExpense usecase.CreateExpenseRepository) *CreateExpenseController {
	return &CreateExpenseController{
		FindUserByIdRepository:  findUserById,
		CreateExpenseRepository: createExpense,
		Validate:                helpers.NewFormValidator(),
	}
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	month, errResponse := parseMonthPath(r)
	if errResponse != nil {
		return errResponse
	}

	var body ExpenseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateInvalidBodyResponse()
	}
	body.normalize()

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateFormErrorResponse(helpers.ExpenseForm("AddExpense", addExpenseAction(month), nil), c.Validate, err)
	}

	user, errResponse := helpers.FindCurrentUser(r, c.FindUserByIdRepository)
	if errResponse != nil {
		return errResponse
	}

	expense, err := c.CreateExpenseRepository.Create(body.toInput(month), user.Id)
	if err != nil {
		slog.Error("Error creating expense", "userId", user.Id.Hex(), "month", month, "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateRedirect(helpers.BudgetManagerLocation(month), expense)
}
