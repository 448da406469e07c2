// AngelaMos | 2026
// service.go

package coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/estateease-api/internal/core"
	"github.com/carterperez-dev/estateease-api/internal/metrics"
)

var ErrInvalidCoupon = errors.New("invalid or expired coupon")

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Coupon, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].normalize()
	}
	return items, nil
}

// Validate returns the coupon for code when it exists and has not expired.
// Missing and expired coupons both yield ErrInvalidCoupon.
func (s *Service) Validate(ctx context.Context, code string) (*Coupon, error) {
	c, err := s.repo.GetByCode(ctx, strings.TrimSpace(code))
	if errors.Is(err, core.ErrNotFound) {
		s.metrics.CouponLookup("missing")
		return nil, fmt.Errorf("coupon %q: %w", code, ErrInvalidCoupon)
	}
	if err != nil {
		return nil, err
	}

	if !c.IsValid(s.now()) {
		s.metrics.CouponLookup("expired")
		return nil, fmt.Errorf("coupon %q expired: %w", code, ErrInvalidCoupon)
	}

	s.metrics.CouponLookup("valid")
	c.normalize()
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CouponRequest) (string, error) {
	return s.repo.Create(ctx, fromRequest(req))
}

func (s *Service) Update(ctx context.Context, id string, req CouponRequest) error {
	return s.repo.Replace(ctx, id, fromRequest(req))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromRequest(req CouponRequest) *Coupon {
	return &Coupon{
		Code:        strings.TrimSpace(req.Code),
		Discount:    req.Discount,
		Expiration:  req.Expiration.UTC(),
		Description: req.Description,
	}
}
