package budget_repository

import (
	"context"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateBudgetRepository struct {
	Db *mongo.Database
}

func NewCreateBudgetRepository(db *mongo.Database) *CreateBudgetRepository {
	return &CreateBudgetRepository{
		Db: db,
	}
}

func (r *CreateBudgetRepository) Create(budget *models.Budget, userId primitive.ObjectID) (*models.Budget, error) {
	now := time.Now()
	budgetToSave := &models.Budget{
		Id:        primitive.NewObjectID(),
		Amount:    budget.Amount,
		Month:     budget.Month,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := r.Db.Collection(helpers.BudgetCollection).InsertOne(ctx, budgetToSave)
	if err != nil {
		return nil, err
	}

	_, err = r.Db.Collection(helpers.UserCollection).UpdateOne(ctx,
		bson.M{"_id": userId},
		bson.M{"$push": bson.M{"budgets": budgetToSave.Id}},
	)
	if err != nil {
		return nil, err
	}

	return budgetToSave, nil
}
