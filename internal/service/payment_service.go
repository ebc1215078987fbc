package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "scholarhub/internal/errors"
	"scholarhub/internal/payment"
)

// PaymentService creates charge intents for checkout.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (clientSecret string, err error)
}

type paymentService struct {
	gateway payment.Gateway
}

// NewPaymentService creates a payment service. gateway may be nil when no
// provider key is configured; every call then fails with ErrPaymentUnavailable.
func NewPaymentService(gateway payment.Gateway) PaymentService {
	return &paymentService{gateway: gateway}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	if s.gateway == nil {
		return "", apperrors.ErrPaymentUnavailable
	}
	amount := payment.ToMinorUnits(price)
	if amount <= 0 {
		return "", apperrors.ErrInvalidAmount
	}

	secret, err := s.gateway.CreateIntent(ctx, amount, payment.Currency)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}
