package budget

import (
	"net/http"
	"testing"
)

func newSetController(s *store) *SetBudgetController {
	return NewSetBudgetController(usersRepo{s}, findBudgetsRepo{s}, deleteBudgetRepo{s}, createBudgetRepo{s})
}

func TestSetBudgetTwiceKeepsOneRecord(t *testing.T) {
	s := newStore()
	controller := newSetController(s)

	for _, amount := range []float64{500, 750} {
		resp := controller.Handle(authedRequest(t, s, http.MethodPost, "/budget-manager/set-budget/2024-03-15",
			map[string]float64{"amount": amount}, map[string]string{"date": "2024-03-15"}))
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("status = %d, want 303", resp.StatusCode)
		}
		if got := resp.Header.Get("Location"); got != "/budget-manager?date=2024-03-01" {
			t.Fatalf("location = %q", got)
		}
	}

	if len(s.budgets) != 1 || len(s.user.Budgets) != 1 {
		t.Fatalf("budgets = %d, user list = %d, want 1 each", len(s.budgets), len(s.user.Budgets))
	}
	budget := s.budgets[s.user.Budgets[0]]
	if budget.Amount != 750 || budget.Month != "2024-03-01" {
		t.Fatalf("unexpected budget %+v", budget)
	}
}

func TestSetBudgetKeepsOtherMonths(t *testing.T) {
	s := newStore()
	controller := newSetController(s)

	for _, date := range []string{"2024-03-01", "2024-04-01"} {
		controller.Handle(authedRequest(t, s, http.MethodPost, "/", map[string]float64{"amount": 100}, map[string]string{"date": date}))
	}

	if len(s.budgets) != 2 {
		t.Fatalf("budgets = %d, want 2", len(s.budgets))
	}
}

func TestSetBudgetValidation(t *testing.T) {
	s := newStore()
	controller := newSetController(s)

	tests := []struct {
		name   string
		body   any
		date   string
		status int
	}{
		{"negative amount", map[string]float64{"amount": -1}, "2024-03-01", http.StatusUnprocessableEntity},
		{"missing amount", map[string]string{}, "2024-03-01", http.StatusUnprocessableEntity},
		{"zero amount", map[string]float64{"amount": 0}, "2024-03-01", http.StatusSeeOther},
		{"bad date", map[string]float64{"amount": 10}, "March", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := controller.Handle(authedRequest(t, s, http.MethodPost, "/", tt.body, map[string]string{"date": tt.date}))
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestSetBudgetRequiresUser(t *testing.T) {
	s := newStore()
	req := authedRequest(t, s, http.MethodPost, "/", map[string]float64{"amount": 10}, map[string]string{"date": "2024-03-01"})
	req.Header.Del("UserId")

	if resp := newSetController(s).Handle(req); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
