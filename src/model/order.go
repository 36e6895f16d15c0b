package model

const OrderSideBuy = "BUY"
const OrderSideSell = "SELL"

const OrderTypeMarket = "MARKET"

const PositionSideLong = "LONG"
const PositionSideShort = "SHORT"
const PositionSideBoth = "BOTH"

const OrderStatusNew = "NEW"
const OrderStatusPartiallyFilled = "PARTIALLY_FILLED"
const OrderStatusFilled = "FILLED"
const OrderStatusCanceled = "CANCELED"
const OrderStatusExpired = "EXPIRED"

// Order is a futures order as observed by the engine. Uuid is the
// engine-generated client order id, ExternalId the exchange order id.
type Order struct {
	Uuid         string         `json:"uuid"`
	ExternalId   *int64         `json:"externalId"`
	Symbol       string         `json:"symbol"`
	Side         string         `json:"side"`
	Type         string         `json:"type"`
	Quantity     float64        `json:"quantity"`
	Price        float64        `json:"price"`
	ReduceOnly   bool           `json:"reduceOnly"`
	PositionSide string         `json:"positionSide"`
	Status       string         `json:"status"`
	Timestamp    TimestampMilli `json:"timestamp"`
}

func (o *Order) IsBuy() bool {
	return o.Side == OrderSideBuy
}

func (o *Order) IsSell() bool {
	return o.Side == OrderSideSell
}

func (o *Order) IsNew() bool {
	return o.Status == OrderStatusNew
}

func (o *Order) IsPartiallyFilled() bool {
	return o.Status == OrderStatusPartiallyFilled
}

func (o *Order) IsFilled() bool {
	return o.Status == OrderStatusFilled
}

func (o *Order) IsCanceled() bool {
	return o.Status == OrderStatusCanceled
}

func (o *Order) IsExpired() bool {
	return o.Status == OrderStatusExpired
}

func (o *Order) IsOpen() bool {
	return o.IsNew() || o.IsPartiallyFilled()
}

// IsOpening reports whether this order established (or re-entered) a
// position on the given side. A hedge-mode order is matched by its explicit
// position side tag, a one-way order by its direction. Reduce-only orders
// never open exposure.
func (o *Order) IsOpening(positionSide string) bool {
	if o.ReduceOnly {
		return false
	}

	if o.PositionSide == positionSide {
		return true
	}

	if o.PositionSide == "" || o.PositionSide == PositionSideBoth {
		if positionSide == PositionSideLong {
			return o.IsBuy()
		}

		if positionSide == PositionSideShort {
			return o.IsSell()
		}
	}

	return false
}
