package model

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPrinting  OrderStatus = "PRINTING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatusFromString reports whether s names a known status label.
func OrderStatusFromString(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, true
	case OrderStatusPrinting:
		return OrderStatusPrinting, true
	case OrderStatusReady:
		return OrderStatusReady, true
	case OrderStatusCompleted:
		return OrderStatusCompleted, true
	case OrderStatusCancelled:
		return OrderStatusCancelled, true
	}
	return OrderStatusPending, false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusFailed PaymentStatus = "FAILED"
)

func PaymentStatusFromString(s string) (PaymentStatus, bool) {
	switch PaymentStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case PaymentStatusUnpaid:
		return PaymentStatusUnpaid, true
	case PaymentStatusPaid:
		return PaymentStatusPaid, true
	case PaymentStatusFailed:
		return PaymentStatusFailed, true
	}
	return PaymentStatusUnpaid, false
}

const (
	ColorModeBW      = "Black & White"
	ColorModeColored = "Colored"
)

type Order struct {
	ID            string        `firestore:"-" json:"id"`
	UserID        string        `firestore:"userId" json:"userId"`
	ShopID        string        `firestore:"shopId" json:"shopId"`
	OwnerID       string        `firestore:"ownerId" json:"ownerId"`
	CustomerName  string        `firestore:"customerName" json:"customerName"`
	FileURL       string        `firestore:"fileUrl" json:"fileUrl"`
	FileName      string        `firestore:"fileName" json:"fileName"`
	Copies        int           `firestore:"copies" json:"copies"`
	Price         float64       `firestore:"price" json:"price"`
	Status        OrderStatus   `firestore:"status" json:"status"`
	PaymentStatus PaymentStatus `firestore:"paymentStatus" json:"paymentStatus"`
	Date          int64         `firestore:"date" json:"date"` // epoch millis
	Paper         string        `firestore:"paper" json:"paper"`
	Color         string        `firestore:"color" json:"color"`
	ShopName      string        `firestore:"shopName" json:"shopName"`
}

var ErrMalformedDoc = errors.New("malformed document")

// OrderFromDoc maps a raw orders document to an Order. Documents missing the
// participant ids are reported as malformed; callers drop those instead of
// failing the whole fetch.
func OrderFromDoc(doc *firestore.DocumentSnapshot) (Order, error) {
	return orderFromData(doc.Ref.ID, doc.Data())
}

func orderFromData(id string, data map[string]interface{}) (Order, error) {
	userID := asString(data["userId"])
	ownerID := asString(data["ownerId"])
	if userID == "" || ownerID == "" {
		return Order{}, ErrMalformedDoc
	}

	o := Order{
		ID:           id,
		UserID:       userID,
		ShopID:       asString(data["shopId"]),
		OwnerID:      ownerID,
		CustomerName: asString(data["customerName"]),
		FileURL:      asString(data["fileUrl"]),
		FileName:     asString(data["fileName"]),
		Copies:       int(asInt(data["copies"], 1)),
		Price:        asFloat(data["price"], 0),
		Date:         asInt(data["date"], time.Now().UnixMilli()),
		Paper:        asString(data["paper"]),
		Color:        asString(data["color"]),
		ShopName:     asString(data["shopName"]),
	}
	if o.Copies < 1 {
		o.Copies = 1
	}
	if o.FileName == "" && o.FileURL != "" {
		if i := strings.LastIndex(o.FileURL, "/"); i >= 0 {
			o.FileName = o.FileURL[i+1:]
		}
	}
	// Unrecognized labels fall back to the safe defaults.
	o.Status, _ = OrderStatusFromString(asString(data["status"]))
	o.PaymentStatus, _ = PaymentStatusFromString(asString(data["paymentStatus"]))
	return o, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}, fallback int64) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return fallback
}

func asFloat(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return fallback
}
