// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) (string, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	UpdateRole(ctx context.Context, id, role string) error
	UpdateRoleByEmail(ctx context.Context, email, role string) error
}

type repository struct {
	users *core.Collection[User]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{users: core.NewCollection[User](db, CollectionName)}
}

func (r *repository) Create(ctx context.Context, user *User) (string, error) {
	id, err := r.users.Insert(ctx, user)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	user, err := r.users.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	users, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *repository) UpdateLastLogin(
	ctx context.Context,
	id primitive.ObjectID,
	at time.Time,
) error {
	err := r.users.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogin": at}},
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, id, role string) error {
	err := r.users.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (r *repository) UpdateRoleByEmail(
	ctx context.Context,
	email, role string,
) error {
	err := r.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return fmt.Errorf("update role by email: %w", err)
	}
	return nil
}
