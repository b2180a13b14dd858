package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eprinting/printshop-backend/internal/model"
)

const usersCollection = "users"

type UserRepository interface {
	Get(ctx context.Context, uid string) (*model.User, error)
	Set(ctx context.Context, uid string, data map[string]interface{}) error
	Update(ctx context.Context, uid string, fields map[string]interface{}) error
}

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Get(ctx context.Context, uid string) (*model.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		return nil, err
	}
	u := model.UserFromDoc(doc)
	return &u, nil
}

func (r *userRepository) Set(ctx context.Context, uid string, data map[string]interface{}) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, data)
	return err
}

func (r *userRepository) Update(ctx context.Context, uid string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, updates)
	return err
}

// IsNotFound reports whether err is the store's not-found error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
