package service

import (
	"encoding/json"
	"gitlab.com/open-soft/go-signal-trader/src/metrics"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"gitlab.com/open-soft/go-signal-trader/src/repository"
	"gitlab.com/open-soft/go-signal-trader/src/service/exchange"
	"gitlab.com/open-soft/go-signal-trader/src/service/strategy"
	"log"
	"strings"
)

// TradingEngine serializes every event source into one goroutine. Signals,
// market data and order callbacks never mutate state concurrently, the
// select loop processes one event to completion before the next.
type TradingEngine struct {
	MarketChannel   chan []byte
	UserDataChannel chan []byte
	SignalChannel   chan []byte

	ExchangeRepository *repository.ExchangeRepository
	OrderRepository    repository.OrderStorageInterface
	ReadinessGate      exchange.ReadinessGateInterface
	OrderTracker       exchange.OrderTrackerInterface
	SignalDispatcher   *strategy.SignalDispatcher
	ExitStrategy       *strategy.CandleExitStrategy
}

func (e *TradingEngine) Run() {
	for {
		select {
		case message := <-e.MarketChannel:
			e.handleMarketMessage(message)
		case message := <-e.UserDataChannel:
			e.handleUserDataMessage(message)
		case message := <-e.SignalChannel:
			e.SignalDispatcher.OnSignalBatch(message)
		}
	}
}

func (e *TradingEngine) handleMarketMessage(message []byte) {
	if strings.Contains(string(message), "@bookTicker") {
		var event model.BookTickerStreamEvent
		err := json.Unmarshal(message, &event)
		if err != nil {
			log.Printf("Book ticker event: %s", err.Error())
			return
		}

		e.OnBookUpdate(event.Data)
		return
	}

	if strings.Contains(string(message), "@kline") {
		var event model.KLineStreamEvent
		err := json.Unmarshal(message, &event)
		if err != nil {
			log.Printf("KLine event: %s", err.Error())
			return
		}

		e.OnCandle(event.Data.KLine)
	}
}

func (e *TradingEngine) OnBookUpdate(ticker model.BookTicker) {
	if !ticker.HasPrice() {
		return
	}

	e.ExchangeRepository.SetBookTicker(ticker)
	e.ReadinessGate.Input(ticker.Symbol)

	if e.ReadinessGate.IsReady() {
		metrics.DataReady.Set(1)
	}
}

func (e *TradingEngine) OnCandle(kLine model.KLine) {
	e.ExitStrategy.OnKline(kLine)
}

func (e *TradingEngine) handleUserDataMessage(message []byte) {
	if strings.Contains(string(message), model.UserDataEventOrderTradeUpdate) {
		var event model.OrderTradeUpdateEvent
		err := json.Unmarshal(message, &event)
		if err != nil {
			log.Printf("Order trade update: %s", err.Error())
			return
		}

		e.OnOrderUpdate(event.Order.ToOrder())
		return
	}

	if strings.Contains(string(message), model.UserDataEventAccountUpdate) {
		var event model.AccountUpdateEvent
		err := json.Unmarshal(message, &event)
		if err != nil {
			log.Printf("Account update: %s", err.Error())
			return
		}

		e.OnAccountUpdate(event)
	}
}

func (e *TradingEngine) OnOrderUpdate(order model.Order) {
	err := e.OrderRepository.Save(order)
	if err != nil {
		log.Printf("[%s] Order save: %s", order.Symbol, err.Error())
	}

	switch order.Status {
	case model.OrderStatusNew:
		e.OrderTracker.Record(order.Symbol, order.Uuid)
		log.Printf("[%s] Order %s accepted", order.Symbol, order.Uuid)
	case model.OrderStatusFilled:
		e.OrderTracker.Remove(order.Symbol, order.Uuid)
		log.Printf("[%s] Order %s filled at %f", order.Symbol, order.Uuid, order.Price)
	case model.OrderStatusCanceled, model.OrderStatusExpired:
		e.OrderTracker.Remove(order.Symbol, order.Uuid)
		log.Printf("[%s] Order %s is %s", order.Symbol, order.Uuid, order.Status)
	}
}

func (e *TradingEngine) OnAccountUpdate(event model.AccountUpdateEvent) {
	for _, balanceUpdate := range event.Data.Balances {
		e.ExchangeRepository.SetBalance(balanceUpdate.ToBalance())
	}

	for _, positionUpdate := range event.Data.Positions {
		e.ExchangeRepository.SetPosition(model.Position{
			Symbol:       positionUpdate.Symbol,
			SignedAmount: positionUpdate.PositionAmt.Value(),
			EntryPrice:   positionUpdate.EntryPrice.Value(),
			UpdatedAt:    event.EventTime,
		})
	}
}
