package model

// Transaction is a lightweight view of an order used by the owner's daily
// earnings screen. It is derived from orders, never stored.
type Transaction struct {
	ID           string  `json:"id"`
	Date         int64   `json:"date"` // epoch millis
	Price        float64 `json:"price"`
	CustomerName string  `json:"customerName"`
	Paper        string  `json:"paper"`
	Color        string  `json:"color"`
	Copies       int     `json:"copies"`
}

// TransactionFromOrder projects an order onto its transaction view.
func TransactionFromOrder(o Order) Transaction {
	name := o.CustomerName
	if name == "" {
		name = "Unknown"
	}
	return Transaction{
		ID:           o.ID,
		Date:         o.Date,
		Price:        o.Price,
		CustomerName: name,
		Paper:        o.Paper,
		Color:        o.Color,
		Copies:       o.Copies,
	}
}
