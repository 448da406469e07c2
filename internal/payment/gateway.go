// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Gateway creates payment intents with an external processor and returns
// the client secret the browser uses to confirm the payment.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit price to minor units, dropping any
// fraction of a minor unit.
func ToMinorUnits(price float64) (int64, error) {
	d := decimal.NewFromFloat(price)
	if !d.IsPositive() {
		return 0, fmt.Errorf("price %v: %w", price, ErrInvalidAmount)
	}

	minor := d.Mul(hundred).Truncate(0)
	if !minor.IsPositive() {
		return 0, fmt.Errorf("price %v below one minor unit: %w", price, ErrInvalidAmount)
	}
	return minor.IntPart(), nil
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(
	ctx context.Context,
	amountMinor int64,
	currency string,
) (string, error) {
	ctx, span := core.StartSpan(ctx, "stripe.PaymentIntents.New",
		attribute.Int64("payment.amount_minor", amountMinor),
		attribute.String("payment.currency", currency),
	)
	defer span.End()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		core.SetSpanError(ctx, err)
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

var _ Gateway = (*StripeGateway)(nil)
