package payment

import (
	"context"
	"fmt"

	"feedindia/internal/utils"

	"github.com/stripe/stripe-go/v84"
)

type paymentIntentCreator interface {
	Create(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
}

// StripeGateway creates INR PaymentIntents.
type StripeGateway struct {
	intents paymentIntentCreator
}

func NewStripeGateway(secretKey string) *StripeGateway {
	sc := stripe.NewClient(secretKey)
	return &StripeGateway{intents: sc.V1PaymentIntents}
}

func intentParams(charge Charge) *stripe.PaymentIntentCreateParams {
	params := &stripe.PaymentIntentCreateParams{
		Amount:      stripe.Int64(charge.AmountPaise),
		Currency:    stripe.String(string(stripe.CurrencyINR)),
		Description: stripe.String(fmt.Sprintf("Donation: %s", charge.Purpose)),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"purpose": charge.Purpose,
			"method":  charge.Method,
		},
	}
	if charge.DonorName != "" {
		params.Metadata["donor_name"] = charge.DonorName
	}

	key := charge.IdempotencyKey
	if key == "" {
		key = utils.NanoID()
	}
	params.SetIdempotencyKey(key)

	return params
}

func (g *StripeGateway) CreateIntent(ctx context.Context, charge Charge) (*Intent, error) {
	if charge.AmountPaise <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	pi, err := g.intents.Create(ctx, intentParams(charge))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &Intent{
		Reference:    pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}
