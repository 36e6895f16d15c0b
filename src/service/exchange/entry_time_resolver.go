package exchange

import (
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"gitlab.com/open-soft/go-signal-trader/src/repository"
)

type EntryTimeResolverInterface interface {
	ResolveEntryTime(symbol string, position model.Position) model.TimestampMilli
}

// EntryTimeResolver recovers the entry time of a live position from the
// filled order history. The latest filled order that opened or extended the
// position in its current direction wins. Returns zero when no such order
// exists, the caller treats that as "age unknown".
type EntryTimeResolver struct {
	OrderHistory repository.OrderHistoryInterface
}

func (e *EntryTimeResolver) ResolveEntryTime(symbol string, position model.Position) model.TimestampMilli {
	positionSide := position.GetPositionSide()

	var entryTime model.TimestampMilli

	for _, order := range e.OrderHistory.GetOrderHistory(symbol) {
		if !order.IsFilled() {
			continue
		}

		if !order.IsOpening(positionSide) {
			continue
		}

		if order.Timestamp.Gt(entryTime) {
			entryTime = order.Timestamp
		}
	}

	return entryTime
}
