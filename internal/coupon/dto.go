// AngelaMos | 2026
// dto.go

package coupon

import (
	"time"
)

type CouponRequest struct {
	Code        string    `json:"code"        validate:"required,max=64"`
	Discount    float64   `json:"discount"    validate:"gt=0,lte=100"`
	Expiration  time.Time `json:"expiration"  validate:"required"`
	Description string    `json:"description" validate:"max=500"`
}

type CreateCouponResponse struct {
	Message  string `json:"message"`
	CouponID string `json:"couponId"`
}
