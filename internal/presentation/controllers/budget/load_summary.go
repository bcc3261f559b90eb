package budget

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"github.com/anuntech/budget-manager/internal/utils"
)

// loadSummary fetches the user's budgets and expenses for from..to in
// parallel and aggregates them. Missing records yield an all-zero summary.
func loadSummary(
	user *models.User,
	from string,
	to string,
	findBudgets usecase.FindBudgetsRepository,
	findExpenses usecase.FindExpensesRepository,
) (*models.Summary, []models.Expense, *presentationProtocols.HttpResponse) {
	var (
		budgets     []models.Budget
		expenses    []models.Expense
		budgetsErr  error
		expensesErr error
		wg          sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer utils.RecoverWith(func(r any) { budgetsErr = fmt.Errorf("panic: %v", r) })

		budgets, budgetsErr = findBudgets.Find(user.Budgets, from, to)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer utils.RecoverWith(func(r any) { expensesErr = fmt.Errorf("panic: %v", r) })

		expenses, expensesErr = findExpenses.Find(user.Expenses, from, to)
	}()

	wg.Wait()

	if budgetsErr != nil {
		slog.Error("Error finding budgets", "userId", user.Id.Hex(), "from", from, "to", to, "error", budgetsErr)
		return nil, nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving budgets",
		}, http.StatusInternalServerError)
	}

	if expensesErr != nil {
		slog.Error("Error finding expenses", "userId", user.Id.Hex(), "from", from, "to", to, "error", expensesErr)
		return nil, nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving expenses",
		}, http.StatusInternalServerError)
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	return models.Summarize(from, to, budgets, expenses), expenses, nil
}
