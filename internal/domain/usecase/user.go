package usecase

import (
	"errors"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEmailAlreadyRegistered = errors.New("email already registered")

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

type FindUserByEmailRepository interface {
	Find(email string) (*models.User, error)
}

type FindUserByIdRepository interface {
	Find(userId primitive.ObjectID) (*models.User, error)
}
