package expense

import (
	"strings"

	"github.com/anuntech/budget-manager/internal/domain/models"
)

type ExpenseBody struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Category string  `json:"category" validate:"required,expense_category"`
	Amount   float64 `json:"amount" validate:"required,gte=0.01"`
}

func (b *ExpenseBody) toInput(month string) *models.ExpenseInput {
	return &models.ExpenseInput{
		Title:    b.Title,
		Category: b.Category,
		Amount:   b.Amount,
		Month:    month,
	}
}

func (b *ExpenseBody) normalize() {
	b.Title = strings.TrimSpace(b.Title)
}

func addExpenseAction(month string) string {
	return "/budget-manager/add-expense/" + month
}

func editExpenseAction(month string, expenseId string) string {
	return "/budget-manager/edit-expense/" + month + "/" + expenseId
}

func deleteExpenseAction(month string, expenseId string) string {
	return "/budget-manager/delete-expense/" + month + "/" + expenseId
}
