package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id        primitive.ObjectID   `bson:"_id" json:"id"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Expenses  []primitive.ObjectID `bson:"expenses" json:"expenses"`
	Budgets   []primitive.ObjectID `bson:"budgets" json:"budgets"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
}

func (u *User) OwnsExpense(expenseId primitive.ObjectID) bool {
	return slices.Contains(u.Expenses, expenseId)
}
