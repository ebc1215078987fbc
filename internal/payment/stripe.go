package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	apperrors "scholarhub/internal/errors"
)

// Gateway creates charge intents with an external processor.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// StripeGateway creates PaymentIntents through the Stripe API.
type StripeGateway struct {
	api *client.API
}

var _ Gateway = (*StripeGateway)(nil)

// NewStripeGateway returns a gateway for secretKey, or nil when the key is empty.
// Network retries are disabled: a failed call is reported, never replayed.
func NewStripeGateway(secretKey string) *StripeGateway {
	if secretKey == "" {
		return nil
	}
	// GetBackendWithConfig fills in the URL, so each backend needs its own config.
	noRetries := func() *stripe.BackendConfig {
		return &stripe.BackendConfig{MaxNetworkRetries: stripe.Int64(0)}
	}
	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, noRetries()),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, noRetries()),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, noRetries()),
	}
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// CreateIntent requests a PaymentIntent for amount minor units and returns its client secret.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", translateError(err)
	}
	return intent.ClientSecret, nil
}

// translateError keeps the provider's status and message.
func translateError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		status := stripeErr.HTTPStatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		msg := stripeErr.Msg
		if msg == "" {
			msg = err.Error()
		}
		return &apperrors.PaymentRejectedError{StatusCode: status, Message: msg}
	}
	return err
}
