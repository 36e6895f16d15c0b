package model

// DTOs for the Binance USD-M futures REST API and user data stream.

type FuturesOrderResponse struct {
	OrderId       int64          `json:"orderId"`
	Symbol        string         `json:"symbol"`
	ClientOrderId string         `json:"clientOrderId"`
	Status        string         `json:"status"`
	Side          string         `json:"side"`
	Type          string         `json:"type"`
	OrigQty       Volume         `json:"origQty"`
	AvgPrice      Price          `json:"avgPrice"`
	ReduceOnly    bool           `json:"reduceOnly"`
	PositionSide  string         `json:"positionSide"`
	UpdateTime    TimestampMilli `json:"updateTime"`
	Time          TimestampMilli `json:"time"`
}

func (r *FuturesOrderResponse) ToOrder() Order {
	orderId := r.OrderId
	timestamp := r.UpdateTime

	if r.Time.IsKnown() {
		timestamp = r.Time
	}

	return Order{
		Uuid:         r.ClientOrderId,
		ExternalId:   &orderId,
		Symbol:       r.Symbol,
		Side:         r.Side,
		Type:         r.Type,
		Quantity:     r.OrigQty.Value(),
		Price:        r.AvgPrice.Value(),
		ReduceOnly:   r.ReduceOnly,
		PositionSide: r.PositionSide,
		Status:       r.Status,
		Timestamp:    timestamp,
	}
}

type FuturesPositionRisk struct {
	Symbol       string         `json:"symbol"`
	PositionAmt  Volume         `json:"positionAmt"`
	EntryPrice   Price          `json:"entryPrice"`
	PositionSide string         `json:"positionSide"`
	UpdateTime   TimestampMilli `json:"updateTime"`
}

type FuturesBalance struct {
	Asset            string `json:"asset"`
	Balance          Volume `json:"balance"`
	AvailableBalance Volume `json:"availableBalance"`
}

func (b *FuturesBalance) ToBalance() Balance {
	return Balance{
		Asset:     b.Asset,
		Available: b.AvailableBalance.Value(),
		Total:     b.Balance.Value(),
	}
}

const ExchangeFilterTypeLotSize = "LOT_SIZE"

type ExchangeInfo struct {
	Symbols []ExchangeSymbol `json:"symbols"`
}

type ExchangeSymbol struct {
	Symbol  string           `json:"symbol"`
	Status  string           `json:"status"`
	Filters []ExchangeFilter `json:"filters"`
}

type ExchangeFilter struct {
	FilterType  string  `json:"filterType"`
	StepSize    *Volume `json:"stepSize"`
	MinQuantity *Volume `json:"minQty"`
}

func (s *ExchangeSymbol) ToSymbolRules() SymbolRules {
	rules := SymbolRules{
		Symbol: s.Symbol,
	}

	for _, filter := range s.Filters {
		if filter.FilterType != ExchangeFilterTypeLotSize {
			continue
		}

		if filter.StepSize != nil {
			rules.StepSize = filter.StepSize.Value()
		}

		if filter.MinQuantity != nil {
			rules.MinQuantity = filter.MinQuantity.Value()
		}
	}

	return rules
}

type ListenKey struct {
	ListenKey string `json:"listenKey"`
}

// User data stream events.

const UserDataEventOrderTradeUpdate = "ORDER_TRADE_UPDATE"
const UserDataEventAccountUpdate = "ACCOUNT_UPDATE"

type OrderTradeUpdate struct {
	Symbol        string         `json:"s"`
	ClientOrderId string         `json:"c"`
	Side          string         `json:"S"`
	Type          string         `json:"o"`
	Quantity      Volume         `json:"q"`
	AvgPrice      Price          `json:"ap"`
	Status        string         `json:"X"`
	OrderId       int64          `json:"i"`
	ReduceOnly    bool           `json:"R"`
	PositionSide  string         `json:"ps"`
	TradeTime     TimestampMilli `json:"T"`
}

func (u *OrderTradeUpdate) ToOrder() Order {
	orderId := u.OrderId

	return Order{
		Uuid:         u.ClientOrderId,
		ExternalId:   &orderId,
		Symbol:       u.Symbol,
		Side:         u.Side,
		Type:         u.Type,
		Quantity:     u.Quantity.Value(),
		Price:        u.AvgPrice.Value(),
		ReduceOnly:   u.ReduceOnly,
		PositionSide: u.PositionSide,
		Status:       u.Status,
		Timestamp:    u.TradeTime,
	}
}

type OrderTradeUpdateEvent struct {
	Event     string           `json:"e"`
	EventTime TimestampMilli   `json:"E"`
	Order     OrderTradeUpdate `json:"o"`
}

type BalanceUpdate struct {
	Asset         string `json:"a"`
	WalletBalance Volume `json:"wb"`
	CrossBalance  Volume `json:"cw"`
}

func (b *BalanceUpdate) ToBalance() Balance {
	return Balance{
		Asset:     b.Asset,
		Available: b.CrossBalance.Value(),
		Total:     b.WalletBalance.Value(),
	}
}

type PositionUpdate struct {
	Symbol       string `json:"s"`
	PositionAmt  Volume `json:"pa"`
	EntryPrice   Price  `json:"ep"`
	PositionSide string `json:"ps"`
}

type AccountUpdate struct {
	Balances  []BalanceUpdate  `json:"B"`
	Positions []PositionUpdate `json:"P"`
}

type AccountUpdateEvent struct {
	Event     string         `json:"e"`
	EventTime TimestampMilli `json:"E"`
	Data      AccountUpdate  `json:"a"`
}

// Combined market stream wrappers.

type BookTickerStreamEvent struct {
	Stream string     `json:"stream"`
	Data   BookTicker `json:"data"`
}

type KLineStreamEvent struct {
	Stream string     `json:"stream"`
	Data   KLineEvent `json:"data"`
}
