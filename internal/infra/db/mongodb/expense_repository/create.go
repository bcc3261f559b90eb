package expense_repository

import (
	"context"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseRepository(db *mongo.Database) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db: db,
	}
}

func (r *CreateExpenseRepository) Create(expense *models.ExpenseInput, userId primitive.ObjectID) (*models.Expense, error) {
	now := time.Now()
	expenseToSave := &models.Expense{
		Id:        primitive.NewObjectID(),
		Title:     expense.Title,
		Category:  expense.Category,
		Amount:    expense.Amount,
		Month:     expense.Month,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := r.Db.Collection(helpers.ExpenseCollection).InsertOne(ctx, expenseToSave)
	if err != nil {
		return nil, err
	}

	_, err = r.Db.Collection(helpers.UserCollection).UpdateOne(ctx,
		bson.M{"_id": userId},
		bson.M{"$push": bson.M{"expenses": expenseToSave.Id}},
	)
	if err != nil {
		return nil, err
	}

	return expenseToSave, nil
}
