package user_repository

import (
	"context"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByEmailRepository struct {
	Db *mongo.Database
}

func NewFindUserByEmailRepository(db *mongo.Database) *FindUserByEmailRepository {
	return &FindUserByEmailRepository{
		Db: db,
	}
}

func (r *FindUserByEmailRepository) Find(email string) (*models.User, error) {
	collection := r.Db.Collection(helpers.UserCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
