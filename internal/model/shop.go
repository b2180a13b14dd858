package model

import "cloud.google.com/go/firestore"

type Shop struct {
	ID           string        `firestore:"-" json:"id"`
	ShopName     string        `firestore:"shopName" json:"shopName"`
	ShopLocation string        `firestore:"shopLocation" json:"shopLocation"`
	OwnerID      string        `firestore:"ownerId" json:"ownerId"`
	PaperOptions []PaperOption `firestore:"paperOptions" json:"paperOptions"`
}

// ShopFromDoc maps a raw shops document to a Shop. Documents without a name or
// owner are malformed and skipped by callers.
func ShopFromDoc(doc *firestore.DocumentSnapshot) (Shop, error) {
	return shopFromData(doc.Ref.ID, doc.Data())
}

func shopFromData(id string, data map[string]interface{}) (Shop, error) {
	s := Shop{
		ID:           id,
		ShopName:     asString(data["shopName"]),
		ShopLocation: asString(data["shopLocation"]),
		OwnerID:      asString(data["ownerId"]),
		PaperOptions: []PaperOption{},
	}
	if s.ShopName == "" || s.OwnerID == "" {
		return Shop{}, ErrMalformedDoc
	}
	raw, _ := data["paperOptions"].([]interface{})
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		s.PaperOptions = append(s.PaperOptions, PaperOption{
			Type:         asString(m["type"]),
			Size:         asString(m["size"]),
			PriceBW:      asFloat(m["priceBW"], 0),
			PriceColored: asFloat(m["priceColored"], 0),
		})
	}
	return s, nil
}
