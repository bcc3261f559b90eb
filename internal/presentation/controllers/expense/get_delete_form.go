package expense

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetDeleteExpenseFormController struct {
	FindUserByIdRepository    usecase.FindUserByIdRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewGetDeleteExpenseFormController(findUserById usecase.FindUserByIdRepository, findExpenseById usecase.FindExpenseByIdRepository) *GetDeleteExpenseFormController {
	return &GetDeleteExpenseFormController{
		FindUserByIdRepository:    findUserById,
		FindExpenseByIdRepository: findExpenseById,
	}
}

type DeleteConfirmation struct {
	Title   string          `json:"title"`
	Method  string          `json:"method"`
	Action  string          `json:"action"`
	Cancel  string          `json:"cancel"`
	Expense *models.Expense `json:"expense"`
}

func (c *GetDeleteExpenseFormController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	return helpers.CreateResponse(&DeleteConfirmation{
		Title:   helpers.TitlePrefix + " | BudgetManager - DeleteExpense",
		Method:  http.MethodPost,
		Action:  deleteExpenseAction(month, expense.Id.Hex()),
		Cancel:  helpers.BudgetManagerLocation(month),
		Expense: expense,
	}, http.StatusOK)
}
