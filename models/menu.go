package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Price    float64            `bson:"price" json:"price"`
}
