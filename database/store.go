package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alimbdit/bistro-boss-server/models"
)

// ErrInvalidID reports an id path parameter that is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id")

// Store is the storage surface the HTTP layer depends on: one method per
// operation the API performs. Ids are the hex strings taken from the URL.
// Lookups that find nothing return (nil, nil); deletes and updates report
// zero counts rather than an error.
type Store interface {
	AllUsers(ctx context.Context) ([]models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	PromoteUserAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*mongo.DeleteResult, error)

	AllMenu(ctx context.Context) ([]models.MenuItem, error)
	InsertMenuItem(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error)
	DeleteMenuItem(ctx context.Context, id string) (*mongo.DeleteResult, error)

	AllReviews(ctx context.Context) ([]models.Review, error)

	CartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error)
	DeleteCartItem(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// MongoStore implements Store against the four bistro collections.
type MongoStore struct {
	users   *mongo.Collection
	menu    *mongo.Collection
	reviews *mongo.Collection
	carts   *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		users:   db.Collection("users"),
		menu:    db.Collection("menu"),
		reviews: db.Collection("reviews"),
		carts:   db.Collection("carts"),
	}
}

func (s *MongoStore) AllUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	return s.users.InsertOne(ctx, user)
}

func (s *MongoStore) PromoteUserAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	return s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": "admin"}},
	)
}

func (s *MongoStore) DeleteUser(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return s.deleteByID(ctx, s.users, id)
}

func (s *MongoStore) AllMenu(ctx context.Context) ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	cursor, err := s.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) InsertMenuItem(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	return s.menu.InsertOne(ctx, item)
}

func (s *MongoStore) DeleteMenuItem(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return s.deleteByID(ctx, s.menu, id)
}

func (s *MongoStore) AllReviews(ctx context.Context) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *MongoStore) CartItemsByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	cursor, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) InsertCartItem(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	return s.carts.InsertOne(ctx, item)
}

func (s *MongoStore) DeleteCartItem(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return s.deleteByID(ctx, s.carts, id)
}

func (s *MongoStore) deleteByID(ctx context.Context, col *mongo.Collection, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	return col.DeleteOne(ctx, bson.M{"_id": oid})
}
