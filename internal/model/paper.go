package model

type PaperOption struct {
	Type         string  `firestore:"type" json:"type"`
	Size         string  `firestore:"size" json:"size"`
	PriceBW      float64 `firestore:"priceBW" json:"priceBW"`
	PriceColored float64 `firestore:"priceColored" json:"priceColored"`
}

// Name is the label used on orders, e.g. "Glossy A4".
func (p PaperOption) Name() string {
	if p.Type == "" || p.Size == "" {
		return ""
	}
	return p.Type + " " + p.Size
}

// UnitPrice returns the per-copy price for the given color mode.
func (p PaperOption) UnitPrice(color string) float64 {
	if color == ColorModeColored {
		return p.PriceColored
	}
	return p.PriceBW
}
