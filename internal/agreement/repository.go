// AngelaMos | 2026
// repository.go

package agreement

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
	Create(ctx context.Context, a *Agreement) (string, error)
	GetByID(ctx context.Context, id string) (*Agreement, error)
	GetByEmail(ctx context.Context, email string) (*Agreement, error)
	ExistsForEmail(ctx context.Context, email string) (bool, error)
	ListByStatus(ctx context.Context, status string) ([]Agreement, error)
	UpdateStatus(
		ctx context.Context,
		id primitive.ObjectID,
		status string,
		at time.Time,
	) error
}

type repository struct {
	agreements *core.Collection[Agreement]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		agreements: core.NewCollection[Agreement](db, CollectionName),
	}
}

func (r *repository) Create(ctx context.Context, a *Agreement) (string, error) {
	id, err := r.agreements.Insert(ctx, a)
	if err != nil {
		return "", fmt.Errorf("create agreement: %w", err)
	}
	return id, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Agreement, error) {
	a, err := r.agreements.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}
	return a, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*Agreement, error) {
	a, err := r.agreements.FindOne(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("get agreement by email: %w", err)
	}
	return a, nil
}

func (r *repository) ExistsForEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	exists, err := r.agreements.Exists(ctx, bson.M{"userEmail": email})
	if err != nil {
		return false, fmt.Errorf("check agreement exists: %w", err)
	}
	return exists, nil
}

func (r *repository) ListByStatus(
	ctx context.Context,
	status string,
) ([]Agreement, error) {
	items, err := r.agreements.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	return items, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status string,
	at time.Time,
) error {
	err := r.agreements.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": at}},
	)
	if err != nil {
		return fmt.Errorf("update agreement status: %w", err)
	}
	return nil
}
