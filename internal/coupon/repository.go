// AngelaMos | 2026
// repository.go

package coupon

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Coupon) (string, error)
	List(ctx context.Context) ([]Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	Replace(ctx context.Context, id string, c *Coupon) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	coupons *core.Collection[Coupon]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		coupons: core.NewCollection[Coupon](db, CollectionName),
	}
}

func (r *repository) Create(ctx context.Context, c *Coupon) (string, error) {
	id, err := r.coupons.Insert(ctx, c)
	if err != nil {
		return "", fmt.Errorf("create coupon: %w", err)
	}
	return id, nil
}

func (r *repository) List(ctx context.Context) ([]Coupon, error) {
	items, err := r.coupons.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	return items, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	c, err := r.coupons.FindOne(ctx, bson.M{"code": code})
	if err != nil {
		return nil, fmt.Errorf("get coupon by code: %w", err)
	}
	return c, nil
}

// Replace overwrites the editable fields and drops any legacy expiry.
func (r *repository) Replace(ctx context.Context, id string, c *Coupon) error {
	err := r.coupons.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"code":        c.Code,
			"discount":    c.Discount,
			"expiration":  c.Expiration,
			"description": c.Description,
		},
		"$unset": bson.M{"expiry": ""},
	})
	if err != nil {
		return fmt.Errorf("update coupon: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.coupons.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}
