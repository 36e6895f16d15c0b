package model

const IntervalHour1 = "1h"

// KLine is a single OHLC bar from the futures kline stream. Confirmed is
// true only when the bar is closed, partial updates of the running bar
// arrive with Confirmed = false.
type KLine struct {
	Symbol    string         `json:"s"`
	Interval  string         `json:"i"`
	OpenTime  TimestampMilli `json:"t"`
	CloseTime TimestampMilli `json:"T"`
	Open      Price          `json:"o"`
	Close     Price          `json:"c"`
	High      Price          `json:"h"`
	Low       Price          `json:"l"`
	Volume    Volume         `json:"v"`
	Confirmed bool           `json:"x"`
}

func (k *KLine) IsPositive() bool {
	return k.Close.Value() > k.Open.Value()
}

func (k *KLine) IsNegative() bool {
	return k.Close.Value() < k.Open.Value()
}

type KLineEvent struct {
	Event     string         `json:"e"`
	EventTime TimestampMilli `json:"E"`
	Symbol    string         `json:"s"`
	KLine     KLine          `json:"k"`
}
