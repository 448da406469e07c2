// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"strings"
	"time"

	"github.com/carterperez-dev/estateease-api/internal/metrics"
)

type Service struct {
	repo     Repository
	gateway  Gateway
	currency string
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewService(
	repo Repository,
	gateway Gateway,
	currency string,
	m *metrics.Metrics,
) *Service {
	if currency == "" {
		currency = "usd"
	}
	return &Service{
		repo:     repo,
		gateway:  gateway,
		currency: strings.ToLower(currency),
		metrics:  m,
		now:      time.Now,
	}
}

// Record appends a payment. Repeated payments for the same email and month
// are all kept.
func (s *Service) Record(
	ctx context.Context,
	req RecordPaymentRequest,
) (string, error) {
	id, err := s.repo.Create(ctx, &Payment{
		UserEmail:    strings.TrimSpace(req.UserEmail),
		FloorNo:      req.FloorNo,
		BlockName:    req.BlockName,
		ApartmentNo:  req.ApartmentNo,
		OriginalRent: req.OriginalRent,
		FinalRent:    req.FinalRent,
		Discount:     req.Discount,
		Month:        req.Month,
		PaymentDate:  s.now(),
	})
	if err != nil {
		return "", err
	}

	s.metrics.PaymentRecorded()
	return id, nil
}

func (s *Service) History(
	ctx context.Context,
	email string,
	month string,
) ([]Payment, error) {
	return s.repo.ListByEmail(ctx, strings.TrimSpace(email), strings.TrimSpace(month))
}

func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := ToMinorUnits(price)
	if err != nil {
		s.metrics.PaymentIntent("invalid")
		return "", err
	}

	secret, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		s.metrics.PaymentIntent("error")
		return "", err
	}

	s.metrics.PaymentIntent("ok")
	return secret, nil
}
