package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"scholarhub/internal/errors"
	"scholarhub/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentIntentRequest accepts the price as a JSON number or numeric string.
type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

// PaymentIntentResponse carries the secret the client confirms the payment with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentIntentRequest true "Price in major units"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: errors.ErrInvalidAmount.Error(),
			Code:  "INVALID_AMOUNT",
		})
	}

	secret, err := h.paymentService.CreatePaymentIntent(c.Request().Context(), req.Price)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}
