package strategy

import (
	"encoding/json"
	"github.com/google/uuid"
	"gitlab.com/open-soft/go-signal-trader/src/client"
	"gitlab.com/open-soft/go-signal-trader/src/metrics"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"gitlab.com/open-soft/go-signal-trader/src/repository"
	"gitlab.com/open-soft/go-signal-trader/src/service/exchange"
	"gitlab.com/open-soft/go-signal-trader/src/utils"
	"log"
	"slices"
	"strings"
)

// SignalDispatcher turns each inbound signal batch into corrective market
// orders. One bad signal never blocks the rest of the batch.
type SignalDispatcher struct {
	ReadinessGate      exchange.ReadinessGateInterface
	PositionCalculator exchange.PositionCalculatorInterface
	OrderTracker       exchange.OrderTrackerInterface
	Binance            client.ExchangeOrderAPIInterface
	OrderRepository    repository.OrderStorageInterface
	SignalRecords      repository.SignalRecordStorageInterface
	TimeHelper         utils.TimeServiceInterface
	TrackedSymbols     []string
	InstrumentSuffix   string
	SymbolSuffix       string
}

func (s *SignalDispatcher) OnSignalBatch(message []byte) {
	metrics.SignalBatches.Inc()

	var signals []model.Signal
	err := json.Unmarshal(message, &signals)
	if err != nil {
		log.Printf("Signal batch is not parsable: %s", err.Error())
		return
	}

	for _, signal := range signals {
		s.dispatch(signal)
	}
}

// MapInstrument rewrites the publisher's instrument id into the exchange
// symbol, for example "BTCUSDT.BBP" becomes "BTCUSDT".
func (s *SignalDispatcher) MapInstrument(instrumentId string) string {
	return strings.Replace(instrumentId, s.InstrumentSuffix, s.SymbolSuffix, 1)
}

func (s *SignalDispatcher) dispatch(signal model.Signal) {
	if !s.ReadinessGate.IsReady() {
		log.Printf("[%s] Signal skipped, market data is not ready", signal.InstrumentID)
		metrics.SignalsSkipped.WithLabelValues("not_ready").Inc()
		return
	}

	symbol := s.MapInstrument(signal.InstrumentID)

	if !slices.Contains(s.TrackedSymbols, symbol) {
		metrics.SignalsSkipped.WithLabelValues("untracked").Inc()
		return
	}

	if signal.IsNeutral() {
		metrics.SignalsSkipped.WithLabelValues("neutral").Inc()
		return
	}

	target, err := s.PositionCalculator.CalculateTarget(symbol, signal)
	if err != nil {
		log.Printf("[%s] Signal skipped: %s", symbol, err.Error())
		metrics.SignalsSkipped.WithLabelValues("sizing").Inc()
		return
	}

	s.SignalRecords.SaveRecord(model.SignalRecord{
		Symbol:     symbol,
		EntryTime:  model.TimestampMilli(s.TimeHelper.GetNowUnixMilli()),
		Trend:      signal.Trend,
		Importance: signal.Importance,
	})

	if target == 0.00 {
		log.Printf("[%s] Target amount is zero, nothing to trade", symbol)
		metrics.SignalsSkipped.WithLabelValues("zero_target").Inc()
		return
	}

	diff, err := s.PositionCalculator.CalculateDiff(symbol, target)
	if err != nil {
		log.Printf("[%s] Signal skipped: %s", symbol, err.Error())
		metrics.SignalsSkipped.WithLabelValues("sizing").Inc()
		return
	}

	if diff.IsNoop() {
		log.Printf("[%s] Position %f already matches target %f", symbol, diff.Current, diff.Target)
		metrics.SignalsSkipped.WithLabelValues("noop").Inc()
		return
	}

	clientOrderId := uuid.New().String()

	log.Printf(
		"[%s] Reconciling %f -> %f, %s %f (reduceOnly=%v)",
		symbol,
		diff.Current,
		diff.Target,
		diff.GetOrderSide(),
		diff.GetAbsAmount(),
		diff.ReduceOnly,
	)

	order, err := s.Binance.CreateOrder(symbol, diff.GetOrderSide(), diff.GetAbsAmount(), diff.ReduceOnly, clientOrderId)
	if err != nil {
		log.Printf("[%s] CreateOrder: %s", symbol, err.Error())
		metrics.OrdersFailed.Inc()
		return
	}

	err = s.OrderRepository.Create(order)
	if err != nil {
		log.Printf("[%s] Order save: %s", symbol, err.Error())
	}

	s.OrderTracker.Record(symbol, clientOrderId)
	metrics.OrdersSubmitted.WithLabelValues(diff.GetOrderSide()).Inc()
}
