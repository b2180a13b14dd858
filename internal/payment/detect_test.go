package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eprinting/printshop-backend/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		pageText string
		pageURL  string
		want     Outcome
	}{
		{
			name:     "success phrase in page text",
			pageText: "Payment Successful! Thank you for shopping with us.",
			want:     OutcomeSuccess,
		},
		{
			name:     "failure phrase in page text",
			pageText: "We are sorry, the payment declined by the issuer could not be completed.",
			want:     OutcomeFailed,
		},
		{
			name:     "phrase match is case insensitive",
			pageText: "TRANSACTION SUCCESSFUL",
			want:     OutcomeSuccess,
		},
		{
			name: "success url when text is inconclusive",
			pageText: "Redirecting you back to the merchant...",
			pageURL:  "https://checkout.example.com/checkout/success?ref=abc",
			want:     OutcomeSuccess,
		},
		{
			name:    "failed url",
			pageURL: "https://checkout.example.com/pay?payment_intent_status=failed",
			want:    OutcomeFailed,
		},
		{
			name:    "cancel url",
			pageURL: "https://checkout.example.com/checkout/cancel",
			want:    OutcomeCancelled,
		},
		{
			name:     "text wins over url",
			pageText: "payment failed, please try again",
			pageURL:  "https://checkout.example.com/success",
			want:     OutcomeFailed,
		},
		{
			name:     "nothing recognizable defaults to cancelled",
			pageText: "loading...",
			pageURL:  "https://checkout.example.com/pay/session-123",
			want:     OutcomeCancelled,
		},
		{
			name: "empty inputs default to cancelled",
			want: OutcomeCancelled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.pageText, tt.pageURL))
		})
	}
}

func TestOutcomePaymentStatus(t *testing.T) {
	assert.Equal(t, model.PaymentStatusPaid, OutcomeSuccess.PaymentStatus())
	assert.Equal(t, model.PaymentStatusFailed, OutcomeFailed.PaymentStatus())
	assert.Equal(t, model.PaymentStatusUnpaid, OutcomeCancelled.PaymentStatus())
	assert.Equal(t, model.PaymentStatusUnpaid, Outcome("garbage").PaymentStatus())
}
