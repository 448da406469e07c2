// AngelaMos | 2026
// repository.go

package apartment

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Apartment, error)
	InsertMany(ctx context.Context, items []Apartment) (int, error)
}

type repository struct {
	apartments *core.Collection[Apartment]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		apartments: core.NewCollection[Apartment](db, CollectionName),
	}
}

func (r *repository) List(ctx context.Context) ([]Apartment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "blockName", Value: 1},
		{Key: "floorNo", Value: 1},
		{Key: "apartmentNo", Value: 1},
	})

	items, err := r.apartments.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	return items, nil
}

func (r *repository) InsertMany(
	ctx context.Context,
	items []Apartment,
) (int, error) {
	n, err := r.apartments.InsertMany(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("seed apartments: %w", err)
	}
	return n, nil
}
