package expense

import (
	"log/slog"
	"net/http"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// findOwnedExpense resolves the {expenseId} path value. Ids that are
// malformed, unknown or owned by someone else all answer 404.
func findOwnedExpense(
	r presentationProtocols.HttpRequest,
	user *models.User,
	findExpenseById usecase.FindExpenseByIdRepository,
) (*models.Expense, *presentationProtocols.HttpResponse) {
	notFound := helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error: "expense not found",
	}, http.StatusNotFound)

	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil || !user.OwnsExpense(expenseId) {
		return nil, notFound
	}

	expense, err := findExpenseById.Find(expenseId)
	if err != nil {
		slog.Error("Error finding expense", "expenseId", expenseId.Hex(), "error", err)
		return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving expense",
		}, http.StatusInternalServerError)
	}

	if expense == nil {
		return nil, notFound
	}

	return expense, nil
}

func parseMonthPath(r presentationProtocols.HttpRequest) (string, *presentationProtocols.HttpResponse) {
	month, err := helpers.ParseMonth(r.Req.PathValue("date"))
	if err != nil {
		return "", helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)
	}
	return month, nil
}
