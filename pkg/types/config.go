package types

import (
	"fmt"
	"strings"
)

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Cognito Auth for the admin console
	AuthEnabled       bool   `envconfig:"AUTH_ENABLED" default:"false"`
	CognitoUserPoolID string `envconfig:"COGNITO_USER_POOL_ID"`
	CognitoClientID   string `envconfig:"COGNITO_CLIENT_ID"`
	CognitoIssuerURL  string `envconfig:"COGNITO_ISSUER_URL"`

	// Donor sessions
	CookieName       string `envconfig:"SESSION_COOKIE_NAME" default:"feedindia_session"`
	SessionMaxAgeSec int    `envconfig:"SESSION_MAX_AGE_SEC" default:"604800"` // 7 days

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Donation lifecycle
	StrictStatusTransitions bool `envconfig:"STRICT_STATUS_TRANSITIONS" default:"false"`
	DeriveDonationCounts    bool `envconfig:"DERIVE_DONATION_COUNTS" default:"false"`

	// Simulated latency, kept for parity with the donor-facing UX
	SubmitDelayMS int `envconfig:"SUBMIT_DELAY_MS" default:"800"`
	SearchDelayMS int `envconfig:"SEARCH_DELAY_MS" default:"1000"`

	// Payments
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`

	// Exports
	ExportBucket string `envconfig:"EXPORT_BUCKET"`
}

// CognitoIssuer returns COGNITO_ISSUER_URL, or derives the issuer from the
// user pool id, whose prefix names the region (ap-south-1_AbC123).
func (c *Config) CognitoIssuer() string {
	if c.CognitoIssuerURL != "" {
		return strings.TrimSuffix(c.CognitoIssuerURL, "/")
	}

	region, _, ok := strings.Cut(c.CognitoUserPoolID, "_")
	if !ok || region == "" {
		return ""
	}

	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", region, c.CognitoUserPoolID)
}
