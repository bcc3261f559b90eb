package budget_repository

import (
	"context"

	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBudgetRepository struct {
	Db *mongo.Database
}

func NewDeleteBudgetRepository(db *mongo.Database) *DeleteBudgetRepository {
	return &DeleteBudgetRepository{
		Db: db,
	}
}

func (r *DeleteBudgetRepository) Delete(budgetId primitive.ObjectID, userId primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := r.Db.Collection(helpers.BudgetCollection).DeleteOne(ctx, bson.M{"_id": budgetId})
	if err != nil {
		return err
	}

	_, err = r.Db.Collection(helpers.UserCollection).UpdateOne(ctx,
		bson.M{"_id": userId},
		bson.M{"$pull": bson.M{"budgets": budgetId}},
	)
	return err
}
