// Package payment classifies the outcome of the hosted checkout page.
//
// The checkout provider gives no verified server callback in this flow; the
// client reports the page text and current URL it observed, and the outcome is
// best-effort string matching over those. The resulting flag only selects the
// order's initial payment status; it is client-asserted, not proof of payment.
package payment

import (
	"strings"

	"github.com/eprinting/printshop-backend/internal/model"
)

type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

var successIndicators = []string{
	"payment successful",
	"payment succeeded",
	"payment complete",
	"payment completed",
	"successful payment",
	"transaction successful",
	"payment was successful",
	"thank you for your payment",
	"paid successfully",
}

var failedIndicators = []string{
	"payment failed",
	"transaction failed",
	"payment declined",
	"unsuccessful",
	"failed to process",
	"payment error",
}

var successURLPatterns = []string{
	"/success",
	"success=true",
	"checkout/success",
	"payment_intent_status=succeeded",
}

var failedURLPatterns = []string{
	"/failed",
	"failed=true",
	"checkout/failed",
	"payment_intent_status=failed",
}

var cancelURLPatterns = []string{
	"/cancel",
	"cancelled=true",
	"checkout/cancel",
}

// Detect classifies the checkout result from the page body text and the page
// URL. Anything it cannot classify is treated as a cancellation.
func Detect(pageText, pageURL string) Outcome {
	text := strings.ToLower(pageText)
	for _, s := range successIndicators {
		if strings.Contains(text, s) {
			return OutcomeSuccess
		}
	}
	for _, s := range failedIndicators {
		if strings.Contains(text, s) {
			return OutcomeFailed
		}
	}

	u := strings.ToLower(pageURL)
	for _, p := range successURLPatterns {
		if strings.Contains(u, p) {
			return OutcomeSuccess
		}
	}
	for _, p := range failedURLPatterns {
		if strings.Contains(u, p) {
			return OutcomeFailed
		}
	}
	for _, p := range cancelURLPatterns {
		if strings.Contains(u, p) {
			return OutcomeCancelled
		}
	}
	return OutcomeCancelled
}

// PaymentStatus maps a detection outcome onto the order's payment status. A
// cancelled checkout leaves the order unpaid.
func (o Outcome) PaymentStatus() model.PaymentStatus {
	switch o {
	case OutcomeSuccess:
		return model.PaymentStatusPaid
	case OutcomeFailed:
		return model.PaymentStatusFailed
	default:
		return model.PaymentStatusUnpaid
	}
}
