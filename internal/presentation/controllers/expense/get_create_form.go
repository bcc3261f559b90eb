package expense

import (
	"net/http"

	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

type GetCreateExpenseFormController struct{}

func NewGetCreateExpenseFormController() *GetCreateExpenseFormController {
	return &GetCreateExpenseFormController{}
}

func (c *GetCreateExpenseFormController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	month, errResponse := parseMonthPath(r)
	if errResponse != nil {
		return errResponse
	}

	return helpers.CreateResponse(helpers.ExpenseForm("AddExpense", addExpenseAction(month), nil), http.StatusOK)
}
