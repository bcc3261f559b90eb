package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Budget struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	Amount    float64            `bson:"amount" json:"amount"`
	Month     string             `bson:"month" json:"month"` // YYYY-MM-01
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
