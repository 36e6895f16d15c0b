package model

import "math"

// Position is a read-only snapshot of the live futures position for one
// symbol. SignedAmount is positive for long, negative for short, zero for
// flat. The engine never mutates positions directly, only through orders.
type Position struct {
	Symbol       string         `json:"symbol"`
	SignedAmount float64        `json:"signedAmount"`
	EntryPrice   float64        `json:"entryPrice"`
	UpdatedAt    TimestampMilli `json:"updatedAt"`
}

func (p *Position) IsOpened() bool {
	return p.SignedAmount != 0.00
}

func (p *Position) IsLong() bool {
	return p.SignedAmount > 0.00
}

func (p *Position) IsShort() bool {
	return p.SignedAmount < 0.00
}

func (p *Position) GetPositionSide() string {
	if p.IsLong() {
		return PositionSideLong
	}

	return PositionSideShort
}

func (p *Position) GetAbsAmount() float64 {
	return math.Abs(p.SignedAmount)
}

func (p *Position) GetCloseOrderSide() string {
	if p.IsLong() {
		return OrderSideSell
	}

	return OrderSideBuy
}

// PositionDiff is the minimal corrective trade that moves the live position
// to the target. ReduceOnly is asserted exactly when the move strictly
// shrinks an existing directional position without flipping its sign.
type PositionDiff struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Amount     float64 `json:"amount"`
	ReduceOnly bool    `json:"reduceOnly"`
}

func (d *PositionDiff) IsNoop() bool {
	return d.Amount == 0.00
}

func (d *PositionDiff) GetOrderSide() string {
	if d.Amount > 0.00 {
		return OrderSideBuy
	}

	return OrderSideSell
}

func (d *PositionDiff) GetAbsAmount() float64 {
	return math.Abs(d.Amount)
}
