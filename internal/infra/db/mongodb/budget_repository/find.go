package budget_repository

import (
	"context"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindBudgetsRepository struct {
	Db *mongo.Database
}

func NewFindBudgetsRepository(db *mongo.Database) *FindBudgetsRepository {
	return &FindBudgetsRepository{
		Db: db,
	}
}

func (r *FindBudgetsRepository) Find(budgetIds []primitive.ObjectID, from string, to string) ([]models.Budget, error) {
	if len(budgetIds) == 0 {
		return []models.Budget{}, nil
	}

	collection := r.Db.Collection(helpers.BudgetCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "month", Value: 1}})
	cursor, err := collection.Find(ctx, helpers.BuildOwnedMonthFilter(budgetIds, from, to), opts)
	if err != nil {
		return nil, err
	}

	budgets := []models.Budget{}
	if err = cursor.All(ctx, &budgets); err != nil {
		return nil, err
	}

	return budgets, nil
}
