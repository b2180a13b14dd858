package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eprinting/printshop-backend/internal/payment"
)

type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

type PaymentOutcomeRequest struct {
	PageText string `json:"pageText"`
	PageURL  string `json:"pageUrl"`
}

type PaymentOutcomeResponse struct {
	Outcome       string `json:"outcome"`
	PaymentStatus string `json:"paymentStatus"`
}

// Outcome classifies the hosted checkout result the client observed. The
// classification is best-effort text and URL matching; the caller uses the
// returned payment status when creating the order.
func (h *PaymentHandler) Outcome(c echo.Context) error {
	var req PaymentOutcomeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	outcome := payment.Detect(req.PageText, req.PageURL)
	return c.JSON(http.StatusOK, PaymentOutcomeResponse{
		Outcome:       string(outcome),
		PaymentStatus: string(outcome.PaymentStatus()),
	})
}
