package budget

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// store mirrors the Mongo layout: records live in their own collections
// and the user document lists the ids it owns.
type store struct {
	user     *models.User
	budgets  map[primitive.ObjectID]models.Budget
	expenses map[primitive.ObjectID]models.Expense
}

func newStore() *store {
	return &store{
		user: &models.User{
			Id:       primitive.NewObjectID(),
			Email:    "user@example.com",
			Budgets:  []primitive.ObjectID{},
			Expenses: []primitive.ObjectID{},
		},
		budgets:  map[primitive.ObjectID]models.Budget{},
		expenses: map[primitive.ObjectID]models.Expense{},
	}
}

func (s *store) addExpense(title, category string, amount float64, month string) {
	expense := models.Expense{Id: primitive.NewObjectID(), Title: title, Category: category, Amount: amount, Month: month}
	s.expenses[expense.Id] = expense
	s.user.Expenses = append(s.user.Expenses, expense.Id)
}

type usersRepo struct{ s *store }

func (r usersRepo) Find(userId primitive.ObjectID) (*models.User, error) {
	if userId != r.s.user.Id {
		return nil, nil
	}
	user := *r.s.user
	return &user, nil
}

type findBudgetsRepo struct{ s *store }

func (r findBudgetsRepo) Find(ids []primitive.ObjectID, from, to string) ([]models.Budget, error) {
	result := []models.Budget{}
	for _, id := range ids {
		budget, ok := r.s.budgets[id]
		if ok && budget.Month >= from && budget.Month <= to {
			result = append(result, budget)
		}
	}
	return result, nil
}

type createBudgetRepo struct{ s *store }

func (r createBudgetRepo) Create(budget *models.Budget, userId primitive.ObjectID) (*models.Budget, error) {
	saved := *budget
	saved.Id = primitive.NewObjectID()
	r.s.budgets[saved.Id] = saved
	r.s.user.Budgets = append(r.s.user.Budgets, saved.Id)
	return &saved, nil
}

type deleteBudgetRepo struct{ s *store }

func (r deleteBudgetRepo) Delete(budgetId, userId primitive.ObjectID) error {
	delete(r.s.budgets, budgetId)
	r.s.user.Budgets = slices.DeleteFunc(r.s.user.Budgets, func(id primitive.ObjectID) bool { return id == budgetId })
	return nil
}

type findExpensesRepo struct{ s *store }

func (r findExpensesRepo) Find(ids []primitive.ObjectID, from, to string) ([]models.Expense, error) {
	result := []models.Expense{}
	for _, id := range ids {
		expense, ok := r.s.expenses[id]
		if ok && expense.Month >= from && expense.Month <= to {
			result = append(result, expense)
		}
	}
	return result, nil
}

type fakeReport struct {
	summary  *models.Summary
	expenses []models.Expense
}

func (f *fakeReport) Generate(summary *models.Summary, expenses []models.Expense) ([]byte, error) {
	f.summary = summary
	f.expenses = expenses
	return []byte("xlsx"), nil
}

func authedRequest(t *testing.T, s *store, method, target string, body any, pathValues map[string]string) presentationProtocols.HttpRequest {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	for name, value := range pathValues {
		req.SetPathValue(name, value)
	}
	req.Header.Set(helpers.UserIdHeader, s.user.Id.Hex())
	return presentationProtocols.HttpRequest{Body: req.Body, Header: req.Header, UrlParams: req.URL.Query(), Req: req}
}
