// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) (string, error)
	ListByEmail(ctx context.Context, email, month string) ([]Payment, error)
}

type repository struct {
	payments *core.Collection[Payment]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		payments: core.NewCollection[Payment](db, CollectionName),
	}
}

func (r *repository) Create(ctx context.Context, p *Payment) (string, error) {
	id, err := r.payments.Insert(ctx, p)
	if err != nil {
		return "", fmt.Errorf("record payment: %w", err)
	}
	return id, nil
}

// ListByEmail returns the payments of email, newest first. An empty month
// matches every month.
func (r *repository) ListByEmail(
	ctx context.Context,
	email string,
	month string,
) ([]Payment, error) {
	filter := bson.M{"userEmail": email}
	if month != "" {
		filter["month"] = month
	}

	opts := options.Find().SetSort(bson.D{{Key: "paymentDate", Value: -1}})

	items, err := r.payments.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return items, nil
}
