package expense_repository

import (
	"context"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindExpensesRepository struct {
	Db *mongo.Database
}

func NewFindExpensesRepository(db *mongo.Database) *FindExpensesRepository {
	return &FindExpensesRepository{
		Db: db,
	}
}

func (r *FindExpensesRepository) Find(expenseIds []primitive.ObjectID, from string, to string) ([]models.Expense, error) {
	if len(expenseIds) == 0 {
		return []models.Expense{}, nil
	}

	collection := r.Db.Collection(helpers.ExpenseCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "month", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := collection.Find(ctx, helpers.BuildOwnedMonthFilter(expenseIds, from, to), opts)
	if err != nil {
		return nil, err
	}

	expenses := []models.Expense{}
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
