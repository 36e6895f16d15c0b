package model

const TrendNeutral int64 = 0
const TrendBullish int64 = 1
const TrendBearish int64 = 2

// Signal is one directional trading intent from the external publisher.
// Trend is 0 = neutral, 1 = bullish, 2 = bearish; Importance is a 0-10 score
// used as the fraction of capital to deploy.
type Signal struct {
	InstrumentID string  `json:"instrumentID"`
	Trend        int64   `json:"trend"`
	Importance   float64 `json:"importance"`
}

func (s *Signal) IsNeutral() bool {
	return s.Trend == TrendNeutral
}

func (s *Signal) IsBullish() bool {
	return s.Trend == TrendBullish
}

func (s *Signal) IsBearish() bool {
	return s.Trend == TrendBearish
}

func (s *Signal) PositionRatio() float64 {
	if s.Importance <= 0.00 {
		return 0.00
	}

	if s.Importance >= 10.00 {
		return 1.00
	}

	return s.Importance / 10.00
}

// SignalRecord is the per-symbol fast-path hint remembered at signal
// acceptance time. The order-history resolver remains the source of truth
// for entry time, this record only avoids the history scan while the
// process that accepted the signal is still alive.
type SignalRecord struct {
	Symbol     string         `json:"symbol"`
	EntryTime  TimestampMilli `json:"entryTime"`
	Trend      int64          `json:"trend"`
	Importance float64        `json:"importance"`
}
