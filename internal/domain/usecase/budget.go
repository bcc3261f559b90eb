package usecase

import (
	"github.com/anuntech/budget-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindBudgetsRepository interface {
	Find(budgetIds []primitive.ObjectID, from string, to string) ([]models.Budget, error)
}

type CreateBudgetRepository interface {
	Create(budget *models.Budget, userId primitive.ObjectID) (*models.Budget, error)
}

type DeleteBudgetRepository interface {
	Delete(budgetId primitive.ObjectID, userId primitive.ObjectID) error
}
