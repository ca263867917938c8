package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item snapshot placed in a user's cart, keyed to the
// owner by email.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId,omitempty" json:"menuItemId,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
	Email      string             `bson:"email" json:"email"`
}
