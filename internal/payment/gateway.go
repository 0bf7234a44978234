package payment

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a nil gateway.
var ErrNotConfigured = errors.New("payment gateway not configured")

type Charge struct {
	AmountPaise    int64
	Purpose        string
	Method         string
	DonorName      string
	IdempotencyKey string
}

type Intent struct {
	Reference    string
	ClientSecret string
	Status       string
}

// Gateway accepts monetary donations.
type Gateway interface {
	CreateIntent(ctx context.Context, charge Charge) (*Intent, error)
}
