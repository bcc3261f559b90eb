package expense

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/budget-manager/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type store struct {
	users    map[primitive.ObjectID]*models.User
	expenses map[primitive.ObjectID]models.Expense
}

func newStore() *store {
	return &store{
		users:    map[primitive.ObjectID]*models.User{},
		expenses: map[primitive.ObjectID]models.Expense{},
	}
}

func (s *store) addUser(email string) *models.User {
	user := &models.User{
		Id:       primitive.NewObjectID(),
		Email:    email,
		Budgets:  []primitive.ObjectID{},
		Expenses: []primitive.ObjectID{},
	}
	s.users[user.Id] = user
	return user
}

func (s *store) Find(userId primitive.ObjectID) (*models.User, error) {
	user, ok := s.users[userId]
	if !ok {
		return nil, nil
	}
	copied := *user
	copied.Expenses = slices.Clone(user.Expenses)
	return &copied, nil
}

func (s *store) Create(input *models.ExpenseInput, userId primitive.ObjectID) (*models.Expense, error) {
	now := time.Now()
	expense := models.Expense{
		Id:        primitive.NewObjectID(),
		Title:     input.Title,
		Category:  input.Category,
		Amount:    input.Amount,
		Month:     input.Month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.expenses[expense.Id] = expense
	s.users[userId].Expenses = append(s.users[userId].Expenses, expense.Id)
	return &expense, nil
}

func (s *store) Update(expenseId primitive.ObjectID, input *models.ExpenseInput) (*models.Expense, error) {
	expense, ok := s.expenses[expenseId]
	if !ok {
		return nil, nil
	}
	expense.Title = input.Title
	expense.Category = input.Category
	expense.Amount = input.Amount
	expense.Month = input.Month
	expense.UpdatedAt = time.Now()
	s.expenses[expenseId] = expense
	return &expense, nil
}

func (s *store) Delete(expenseId primitive.ObjectID, userId primitive.ObjectID) error {
	delete(s.expenses, expenseId)
	user := s.users[userId]
	user.Expenses = slices.DeleteFunc(user.Expenses, func(id primitive.ObjectID) bool { return id == expenseId })
	return nil
}

type expensesById struct{ s *store }

func (r expensesById) Find(expenseId primitive.ObjectID) (*models.Expense, error) {
	expense, ok := r.s.expenses[expenseId]
	if !ok {
		return nil, nil
	}
	return &expense, nil
}

func authedRequest(t *testing.T, user *models.User, method string, body any, date, expenseId string) presentationProtocols.HttpRequest {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, "/budget-manager", &buf)
	req.SetPathValue("date", date)
	if expenseId != "" {
		req.SetPathValue("expenseId", expenseId)
	}
	req.Header.Set(helpers.UserIdHeader, user.Id.Hex())
	return presentationProtocols.HttpRequest{Body: req.Body, Header: req.Header, UrlParams: req.URL.Query(), Req: req}
}
