package expense

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetUpdateExpenseFormController struct {
	FindUserByIdRepository    usecase.FindUserByIdRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewGetUpdateExpenseFormController(findUserById usecase.FindUserByIdRepository, findExpenseById usecase.FindExpenseByIdRepository) *GetUpdateExpenseFormController {
	return &GetUpdateExpenseFormController{
		FindUserByIdRepository:    findUserById,
		FindExpenseByIdRepository: findExpenseById,
	}
}

func (c *GetUpdateExpenseFormController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	form := helpers.ExpenseForm("EditExpense", editExpenseAction(month, expense.Id.Hex()), expense)
	return helpers.CreateResponse(form, http.StatusOK)
}
