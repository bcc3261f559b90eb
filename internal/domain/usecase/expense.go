package usecase

import (
	"github.com/anuntech/budget-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseRepository interface {
	Create(expense *models.ExpenseInput, userId primitive.ObjectID) (*models.Expense, error)
}

type FindExpensesRepository interface {
	Find(expenseIds []primitive.ObjectID, from string, to string) ([]models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(expenseId primitive.ObjectID) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(expenseId primitive.ObjectID, expense *models.ExpenseInput) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(expenseId primitive.ObjectID, userId primitive.ObjectID) error
}
