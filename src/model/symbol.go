package model

type SymbolInterface interface {
	GetSymbol() string
}

// SymbolRules carries the exchange trading rules needed to round a raw
// amount to a submittable quantity.
type SymbolRules struct {
	Symbol      string  `json:"symbol"`
	StepSize    float64 `json:"stepSize"`
	MinQuantity float64 `json:"minQuantity"`
}

func (s SymbolRules) GetSymbol() string {
	return s.Symbol
}

type DummySymbol struct {
	Symbol string
}

func (d DummySymbol) GetSymbol() string {
	return d.Symbol
}
