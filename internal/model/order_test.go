package model

import (
	"errors"
	"testing"
)

func TestOrderFromData(t *testing.T) {
	full := map[string]interface{}{
		"userId":        "cust-1",
		"shopId":        "shop-1",
		"ownerId":       "owner-1",
		"customerName":  "Ana",
		"fileUrl":       "https://files.example/docs/report.pdf",
		"fileName":      "report.pdf",
		"copies":        int64(3),
		"price":         15.0,
		"status":        "PRINTING",
		"paymentStatus": "PAID",
		"date":          int64(1700000000000),
		"paper":         "Glossy A4",
		"color":         ColorModeColored,
		"shopName":      "Quick Print",
	}

	o, err := orderFromData("order-1", full)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != "order-1" || o.UserID != "cust-1" || o.OwnerID != "owner-1" {
		t.Fatalf("ids not mapped: %+v", o)
	}
	if o.Copies != 3 || o.Price != 15.0 || o.Status != OrderStatusPrinting || o.PaymentStatus != PaymentStatusPaid {
		t.Fatalf("fields not mapped: %+v", o)
	}
}

func TestOrderFromDataMalformed(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{"empty doc", map[string]interface{}{}},
		{"missing userId", map[string]interface{}{"ownerId": "owner-1"}},
		{"missing ownerId", map[string]interface{}{"userId": "cust-1"}},
		{"wrong id type", map[string]interface{}{"userId": int64(5), "ownerId": "owner-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := orderFromData("x", tt.data); !errors.Is(err, ErrMalformedDoc) {
				t.Fatalf("want ErrMalformedDoc, got %v", err)
			}
		})
	}
}

func TestOrderFromDataDefaults(t *testing.T) {
	o, err := orderFromData("order-2", map[string]interface{}{
		"userId":  "cust-1",
		"ownerId": "owner-1",
		"fileUrl": "https://files.example/docs/flyer.png",
		"copies":  int64(0),
		"status":  "SHIPPED", // not a known label
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Copies != 1 {
		t.Fatalf("copies should floor to 1, got %d", o.Copies)
	}
	if o.Status != OrderStatusPending {
		t.Fatalf("unknown status should fall back to PENDING, got %s", o.Status)
	}
	if o.PaymentStatus != PaymentStatusUnpaid {
		t.Fatalf("missing payment status should fall back to UNPAID, got %s", o.PaymentStatus)
	}
	if o.FileName != "flyer.png" {
		t.Fatalf("fileName should derive from fileUrl, got %q", o.FileName)
	}
	if o.Date == 0 {
		t.Fatal("date should default to now")
	}
}

func TestOrderFromDataNumericCoercion(t *testing.T) {
	o, err := orderFromData("order-3", map[string]interface{}{
		"userId":  "cust-1",
		"ownerId": "owner-1",
		"copies":  2.0,        // stored as a double
		"price":   int64(12),  // stored as an integer
		"date":    float64(1), // stored as a double
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Copies != 2 || o.Price != 12.0 || o.Date != 1 {
		t.Fatalf("numeric coercion failed: %+v", o)
	}
}

func TestOrderStatusFromString(t *testing.T) {
	tests := []struct {
		in     string
		want   OrderStatus
		wantOK bool
	}{
		{"PENDING", OrderStatusPending, true},
		{"printing", OrderStatusPrinting, true},
		{" ready ", OrderStatusReady, true},
		{"COMPLETED", OrderStatusCompleted, true},
		{"CANCELLED", OrderStatusCancelled, true},
		{"DELIVERED", OrderStatusPending, false},
		{"", OrderStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := OrderStatusFromString(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("got (%s,%v), want (%s,%v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
