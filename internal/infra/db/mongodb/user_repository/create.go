package user_repository

import (
	"context"
	"time"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/domain/usecase"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{
		Db: db,
	}
}

func (r *CreateUserRepository) Create(user *models.User) (*models.User, error) {
	collection := r.Db.Collection(helpers.UserCollection)

	// Empty lists, not null: $push fails on a null field.
	userToSave := &models.User{
		Id:        primitive.NewObjectID(),
		Email:     user.Email,
		Password:  user.Password,
		Expenses:  []primitive.ObjectID{},
		Budgets:   []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, userToSave)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, usecase.ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	return userToSave, nil
}
