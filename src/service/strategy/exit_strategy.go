package strategy

import (
	"github.com/google/uuid"
	"gitlab.com/open-soft/go-signal-trader/src/client"
	"gitlab.com/open-soft/go-signal-trader/src/metrics"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"gitlab.com/open-soft/go-signal-trader/src/repository"
	"gitlab.com/open-soft/go-signal-trader/src/service/exchange"
	"log"
)

// CandleExitStrategy closes a position on the first confirmed hourly candle
// that moves in the position's favor, once the position is at least one full
// hour old. Take profit on momentum confirmation, not a stop loss.
type CandleExitStrategy struct {
	ExchangeRepository repository.AccountCacheInterface
	EntryTimeResolver  exchange.EntryTimeResolverInterface
	SignalRecords      repository.SignalRecordStorageInterface
	OrderTracker       exchange.OrderTrackerInterface
	Binance            client.ExchangeOrderAPIInterface
	OrderRepository    repository.OrderStorageInterface
	Interval           string
}

func (c *CandleExitStrategy) OnKline(kLine model.KLine) {
	if !kLine.Confirmed || kLine.Interval != c.Interval {
		return
	}

	position := c.ExchangeRepository.GetPosition(kLine.Symbol)
	if position == nil || !position.IsOpened() {
		return
	}

	entryTime := c.resolveEntryTime(kLine.Symbol, *position)

	if !entryTime.IsKnown() {
		log.Printf("[%s] Exit check skipped, entry time is unknown", kLine.Symbol)
		return
	}

	elapsedHours := kLine.OpenTime.HoursSince(entryTime)
	if elapsedHours < 1.00 {
		return
	}

	favorable := (position.IsLong() && kLine.IsPositive()) || (position.IsShort() && kLine.IsNegative())
	if !favorable {
		return
	}

	log.Printf(
		"[%s] Exit after %.2f hours, closing %s %f",
		kLine.Symbol,
		elapsedHours,
		position.GetPositionSide(),
		position.GetAbsAmount(),
	)

	c.closePosition(*position)
}

func (c *CandleExitStrategy) resolveEntryTime(symbol string, position model.Position) model.TimestampMilli {
	record := c.SignalRecords.GetRecord(symbol)
	if record != nil && record.EntryTime.IsKnown() {
		return record.EntryTime
	}

	return c.EntryTimeResolver.ResolveEntryTime(symbol, position)
}

func (c *CandleExitStrategy) closePosition(position model.Position) {
	clientOrderId := uuid.New().String()

	order, err := c.Binance.CreateOrder(
		position.Symbol,
		position.GetCloseOrderSide(),
		position.GetAbsAmount(),
		true,
		clientOrderId,
	)

	if err != nil {
		log.Printf("[%s] Close order: %s", position.Symbol, err.Error())
		metrics.OrdersFailed.Inc()
		return
	}

	err = c.OrderRepository.Create(order)
	if err != nil {
		log.Printf("[%s] Order save: %s", position.Symbol, err.Error())
	}

	c.OrderTracker.Record(position.Symbol, clientOrderId)
	c.SignalRecords.Invalidate(position.Symbol)
	metrics.ExitsTriggered.Inc()
	metrics.OrdersSubmitted.WithLabelValues(position.GetCloseOrderSide()).Inc()
}
