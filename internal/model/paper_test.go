package model

import "testing"

func TestPaperOptionName(t *testing.T) {
	tests := []struct {
		name string
		opt  PaperOption
		want string
	}{
		{"both set", PaperOption{Type: "Glossy", Size: "A4"}, "Glossy A4"},
		{"missing size", PaperOption{Type: "Glossy"}, ""},
		{"missing type", PaperOption{Size: "A4"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.Name(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaperOptionUnitPrice(t *testing.T) {
	opt := PaperOption{Type: "Glossy", Size: "A4", PriceBW: 2.0, PriceColored: 5.0}
	if got := opt.UnitPrice(ColorModeColored); got != 5.0 {
		t.Fatalf("colored price: got %v", got)
	}
	if got := opt.UnitPrice(ColorModeBW); got != 2.0 {
		t.Fatalf("bw price: got %v", got)
	}
	if got := opt.UnitPrice("anything else"); got != 2.0 {
		t.Fatalf("unknown mode should price as bw: got %v", got)
	}
}
