package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CardNumber string             `bson:"cardNumber" json:"cardNumber"`
	Name       string             `bson:"name" json:"name"`
}

const (
	UserEntity = "user"
)
