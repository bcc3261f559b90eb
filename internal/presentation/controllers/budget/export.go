package budget

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportBudgetController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
	FindBudgetsRepository  usecase.FindBudgetsRepository
	FindExpensesRepository usecase.FindExpensesRepository
	GenerateMonthlyReport  usecase.GenerateMonthlyReport
	Now                    func() time.Time
}

func NewExportBudgetController(
	findUserById usecase.FindUserByIdRepository,
	findBudgets usecase.FindBudgetsRepository,
	findExpenses usecase.FindExpensesRepository,
	generateReport usecase.GenerateMonthlyReport,
) *ExportBudgetController {
	return &ExportBudgetController{
		FindUserByIdRepository: findUserById,
		FindBudgetsRepository:  findBudgets,
		FindExpensesRepository: findExpenses,
		GenerateMonthlyReport:  generateReport,
		Now:                    time.Now,
	}
}

func (c *ExportBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	data, err := c.GenerateMonthlyReport.Generate(summary, expenses)
	if err != nil {
		slog.Error("Error generating monthly report", "userId", user.Id.Hex(), "month", month, "error", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when generating report",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateFileResponse(data, xlsxContentType, "budget-"+month[:7]+".xlsx")
}
