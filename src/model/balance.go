package model

// Balance is the quote-asset balance snapshot used for sizing. Available
// excludes margin locked by open positions and orders.
type Balance struct {
	Asset     string  `json:"asset"`
	Available float64 `json:"available"`
	Total     float64 `json:"total"`
}
