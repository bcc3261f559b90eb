package expense_repository

import (
	"context"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateExpenseRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseRepository(db *mongo.Database) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db: db,
	}
}

func (r *UpdateExpenseRepository) Update(expenseId primitive.ObjectID, expense *models.ExpenseInput) (*models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	update := bson.M{
		"$set": bson.M{
			"title":      expense.Title,
			"category":   expense.Category,
			"amount":     expense.Amount,
			"month":      expense.Month,
			"updated_at": time.Now(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Expense
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": expenseId}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &updated, nil
}
