package model

import (
	"errors"
	"testing"
)

func TestShopFromData(t *testing.T) {
	s, err := shopFromData("shop-1", map[string]interface{}{
		"shopName":     "Quick Print",
		"shopLocation": "Session Road",
		"ownerId":      "owner-1",
		"paperOptions": []interface{}{
			map[string]interface{}{"type": "Glossy", "size": "A4", "priceBW": 2.0, "priceColored": 5.0},
			map[string]interface{}{"type": "Matte", "size": "A4", "priceBW": int64(1), "priceColored": int64(4)},
			"not a map", // skipped
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != "shop-1" || s.ShopName != "Quick Print" || s.OwnerID != "owner-1" {
		t.Fatalf("shop not mapped: %+v", s)
	}
	if len(s.PaperOptions) != 2 {
		t.Fatalf("want 2 paper options, got %d", len(s.PaperOptions))
	}
	if s.PaperOptions[0] != (PaperOption{Type: "Glossy", Size: "A4", PriceBW: 2.0, PriceColored: 5.0}) {
		t.Fatalf("option not mapped: %+v", s.PaperOptions[0])
	}
	if s.PaperOptions[1].PriceBW != 1.0 || s.PaperOptions[1].PriceColored != 4.0 {
		t.Fatalf("integer prices not coerced: %+v", s.PaperOptions[1])
	}
}

func TestShopFromDataMalformed(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"ownerId": "owner-1"}},
		{"missing owner", map[string]interface{}{"shopName": "Quick Print"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := shopFromData("x", tt.data); !errors.Is(err, ErrMalformedDoc) {
				t.Fatalf("want ErrMalformedDoc, got %v", err)
			}
		})
	}
}

func TestShopFromDataEmptyCatalog(t *testing.T) {
	s, err := shopFromData("shop-2", map[string]interface{}{
		"shopName": "Bare Shop",
		"ownerId":  "owner-2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PaperOptions == nil || len(s.PaperOptions) != 0 {
		t.Fatalf("missing catalog should map to empty list, got %#v", s.PaperOptions)
	}
}
