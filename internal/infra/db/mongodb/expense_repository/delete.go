package expense_repository

import (
	"context"

	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteExpenseRepository struct {
	Db *mongo.Database
}

func NewDeleteExpenseRepository(db *mongo.Database) *DeleteExpenseRepository {
	return &DeleteExpenseRepository{
		Db: db,
	}
}

// Delete removes the expense document and pulls its id from the owner's list.
func (r *DeleteExpenseRepository) Delete(expenseId primitive.ObjectID, userId primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := r.Db.Collection(helpers.ExpenseCollection).DeleteOne(ctx, bson.M{"_id": expenseId})
	if err != nil {
		return err
	}

	_, err = r.Db.Collection(helpers.UserCollection).UpdateOne(ctx,
		bson.M{"_id": userId},
		bson.M{"$pull": bson.M{"expenses": expenseId}},
	)
	return err
}
