package controllers_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alimbdit/bistro-boss-server/auth"
	"github.com/alimbdit/bistro-boss-server/config"
	"github.com/alimbdit/bistro-boss-server/database"
	"github.com/alimbdit/bistro-boss-server/models"
	"github.com/alimbdit/bistro-boss-server/routes"
)

const testSecret = "test-secret"

var errAny = errors.New("storage down")

// fakeStore is an in-memory database.Store. When err is set every method
// fails with it.
type fakeStore struct {
	users   []models.User
	menu    []models.MenuItem
	reviews []models.Review
	carts   []models.CartItem
	err     error
}

func (f *fakeStore) AllUsers(context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.User{}, f.users...), nil
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertUser(_ context.Context, user models.User) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeStore) PromoteUserAdmin(_ context.Context, id string) (*mongo.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrInvalidID
	}
	for i := range f.users {
		if f.users[i].ID == oid {
			f.users[i].Role = "admin"
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrInvalidID
	}
	for i := range f.users {
		if f.users[i].ID == oid {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeStore) AllMenu(context.Context) ([]models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.MenuItem{}, f.menu...), nil
}

func (f *fakeStore) InsertMenuItem(_ context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	item.ID = primitive.NewObjectID()
	f.menu = append(f.menu, item)
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (f *fakeStore) DeleteMenuItem(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrInvalidID
	}
	for i := range f.menu {
		if f.menu[i].ID == oid {
			f.menu = append(f.menu[:i], f.menu[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeStore) AllReviews(context.Context) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Review{}, f.reviews...), nil
}

func (f *fakeStore) CartItemsByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := []models.CartItem{}
	for _, item := range f.carts {
		if item.Email == email {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeStore) InsertCartItem(_ context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	item.ID = primitive.NewObjectID()
	f.carts = append(f.carts, item)
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (f *fakeStore) DeleteCartItem(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrInvalidID
	}
	for i := range f.carts {
		if f.carts[i].ID == oid {
			f.carts = append(f.carts[:i], f.carts[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func newRouter(store database.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, &config.Config{AccessTokenSecret: testSecret}, store)
	return r
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.IssueToken(map[string]interface{}{"email": email}, testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(r *gin.Engine, method, path, body, authHeader string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
