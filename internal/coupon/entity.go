// AngelaMos | 2026
// entity.go

package coupon

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "coupons"

type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"    json:"_id"`
	Code        string             `bson:"code"             json:"code"`
	Discount    float64            `bson:"discount"         json:"discount"`
	Expiration  time.Time          `bson:"expiration"       json:"expiration"`
	Description string             `bson:"description"      json:"description"`

	// Expiry is the field name older documents were written with. It is
	// read when Expiration is unset and never written.
	Expiry *time.Time `bson:"expiry,omitempty" json:"-"`
}

func (c *Coupon) ExpiresAt() time.Time {
	if c.Expiration.IsZero() && c.Expiry != nil {
		return *c.Expiry
	}
	return c.Expiration
}

// IsValid reports whether the coupon can be redeemed at now. A coupon with
// no expiration at all is never valid.
func (c *Coupon) IsValid(now time.Time) bool {
	exp := c.ExpiresAt()
	return !exp.IsZero() && now.Before(exp)
}

// normalize moves a legacy expiry into Expiration so responses always carry
// the canonical field.
func (c *Coupon) normalize() {
	c.Expiration = c.ExpiresAt()
	c.Expiry = nil
}
