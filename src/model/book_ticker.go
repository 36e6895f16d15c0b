package model

// BookTicker is the top-of-book snapshot for one symbol.
type BookTicker struct {
	Symbol    string         `json:"s"`
	Bid       Price          `json:"b"`
	Ask       Price          `json:"a"`
	UpdatedAt TimestampMilli `json:"E"`
}

func (b *BookTicker) HasPrice() bool {
	return b.Bid.Value() > 0.00 && b.Ask.Value() > 0.00
}

func (b *BookTicker) GetMidPrice() float64 {
	return (b.Bid.Value() + b.Ask.Value()) / 2.00
}
