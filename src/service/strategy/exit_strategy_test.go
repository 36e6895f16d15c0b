package strategy

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"testing"
)

type exitMocks struct {
	exchangeRepository *AccountCacheMock
	entryTimeResolver  *EntryTimeResolverMock
	signalRecords      *SignalRecordStorageMock
	orderTracker       *OrderTrackerMock
	binance            *ExchangeOrderAPIMock
	orderRepository    *OrderStorageMock
}

func newExitStrategy() (CandleExitStrategy, exitMocks) {
	mocks := exitMocks{
		exchangeRepository: new(AccountCacheMock),
		entryTimeResolver:  new(EntryTimeResolverMock),
		signalRecords:      new(SignalRecordStorageMock),
		orderTracker:       new(OrderTrackerMock),
		binance:            new(ExchangeOrderAPIMock),
		orderRepository:    new(OrderStorageMock),
	}

	exitStrategy := CandleExitStrategy{
		ExchangeRepository: mocks.exchangeRepository,
		EntryTimeResolver:  mocks.entryTimeResolver,
		SignalRecords:      mocks.signalRecords,
		OrderTracker:       mocks.orderTracker,
		Binance:            mocks.binance,
		OrderRepository:    mocks.orderRepository,
		Interval:           model.IntervalHour1,
	}

	return exitStrategy, mocks
}

const hourMillis = int64(3600000)

func confirmedCandle(openTime int64, openPrice float64, closePrice float64) model.KLine {
	return model.KLine{
		Symbol:    "BTCUSDT",
		Interval:  model.IntervalHour1,
		OpenTime:  model.TimestampMilli(openTime),
		CloseTime: model.TimestampMilli(openTime + hourMillis - 1),
		Open:      model.Price(openPrice),
		Close:     model.Price(closePrice),
		Confirmed: true,
	}
}

func TestExitIgnoresUnconfirmedCandle(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	kLine := confirmedCandle(2*hourMillis, 100.00, 110.00)
	kLine.Confirmed = false

	exitStrategy.OnKline(kLine)

	mocks.exchangeRepository.AssertNotCalled(t, "GetPosition")
	mocks.binance.AssertNotCalled(t, "CreateOrder")
}

func TestExitIgnoresOtherIntervals(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	kLine := confirmedCandle(2*hourMillis, 100.00, 110.00)
	kLine.Interval = "1m"

	exitStrategy.OnKline(kLine)

	mocks.exchangeRepository.AssertNotCalled(t, "GetPosition")
}

func TestExitSkipsFlatPosition(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	mocks.exchangeRepository.On("GetPosition", "BTCUSDT").Return(&model.Position{
		Symbol:       "BTCUSDT",
		SignedAmount: 0.00,
	})

	exitStrategy.OnKline(confirmedCandle(2*hourMillis, 100.00, 110.00))

	mocks.binance.AssertNotCalled(t, "CreateOrder")
}

func TestExitSkipsUnknownEntryTime(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	mocks.exchangeRepository.On("GetPosition", "BTCUSDT").Return(&model.Position{
		Symbol:       "BTCUSDT",
		SignedAmount: 0.50,
	})
	mocks.signalRecords.On("GetRecord", "BTCUSDT").Return(nil)
	mocks.entryTimeResolver.On("ResolveEntryTime", "BTCUSDT", mock.Anything).Return(model.TimestampMilli(0))

	exitStrategy.OnKline(confirmedCandle(2*hourMillis, 100.00, 110.00))

	mocks.binance.AssertNotCalled(t, "CreateOrder")
}

func TestExitTooEarly(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	mocks.exchangeRepository.On("GetPosition", "BTCUSDT").Return(&model.Position{
		Symbol:       "BTCUSDT",
		SignedAmount: 0.50,
	})
	mocks.signalRecords.On("GetRecord", "BTCUSDT").Return(&model.SignalRecord{
		Symbol:    "BTCUSDT",
		EntryTime: model.TimestampMilli(2*hourMillis - 30*60000),
	})

	// entry 30 minutes before candle open, less than one full hour
	exitStrategy.OnKline(confirmedCandle(2*hourMillis, 100.00, 110.00))

	mocks.binance.AssertNotCalled(t, "CreateOrder")
}

func TestExitClosesLongOnPositiveCandle(t *testing.T) {
	assertion := assert.New(t)

	exitStrategy, mocks := newExitStrategy()

	mocks.exchangeRepository.On("GetPosition", "BTCUSDT").Return(&model.Position{
		Symbol:       "BTCUSDT",
		SignedAmount: 0.50,
	})
	mocks.signalRecords.On("GetRecord", "BTCUSDT").Return(&model.SignalRecord{
		Symbol:    "BTCUSDT",
		EntryTime: model.TimestampMilli(1 * hourMillis),
	})
	mocks.binance.On("CreateOrder", "BTCUSDT", model.OrderSideSell, 0.50, true, mock.Anything).Return(model.Order{
		Symbol:     "BTCUSDT",
		Side:       model.OrderSideSell,
		ReduceOnly: true,
		Status:     model.OrderStatusNew,
	}, nil)
	mocks.orderRepository.On("Create", mock.Anything).Return(nil)
	mocks.orderTracker.On("Record", "BTCUSDT", mock.Anything).Return()
	mocks.signalRecords.On("Invalidate", "BTCUSDT").Return()

	// entry at hour 1, candle opens at hour 2, long and candle is positive
	exitStrategy.OnKline(confirmedCandle(2*hourMillis, 100.00, 110.00))

	mocks.binance.AssertNumberOfCalls(t, "CreateOrder", 1)
	mocks.signalRecords.AssertCalled(t, "Invalidate", "BTCUSDT")

	quantity := mocks.binance.Calls[0].Arguments.Get(2).(float64)
	assertion.Equal(0.50, quantity)
}

func TestExitClosesShortOnNegativeCandle(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	mocks.exchangeRepository.On("GetPosition", "BTCUSDT").Return(&model.Position{
		Symbol:       "BTCUSDT",
		SignedAmount: -0.75,
	})
	mocks.signalRecords.On("GetRecord", "BTCUSDT").Return(nil)
	mocks.entryTimeResolver.On("ResolveEntryTime", "BTCUSDT", mock.Anything).Return(model.TimestampMilli(1 * hourMillis))
	mocks.binance.On("CreateOrder", "BTCUSDT", model.OrderSideBuy, 0.75, true, mock.Anything).Return(model.Order{
		Symbol:     "BTCUSDT",
		Side:       model.OrderSideBuy,
		ReduceOnly: true,
		Status:     model.OrderStatusNew,
	}, nil)
	mocks.orderRepository.On("Create", mock.Anything).Return(nil)
	mocks.orderTracker.On("Record", "BTCUSDT", mock.Anything).Return()
	mocks.signalRecords.On("Invalidate", "BTCUSDT").Return()

	exitStrategy.OnKline(confirmedCandle(3*hourMillis, 110.00, 100.00))

	mocks.binance.AssertNumberOfCalls(t, "CreateOrder", 1)
}

func TestNoExitOnUnfavorableCandle(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	mocks.exchangeRepository.On("GetPosition", "BTCUSDT").Return(&model.Position{
		Symbol:       "BTCUSDT",
		SignedAmount: 0.50,
	})
	mocks.signalRecords.On("GetRecord", "BTCUSDT").Return(&model.SignalRecord{
		Symbol:    "BTCUSDT",
		EntryTime: model.TimestampMilli(1 * hourMillis),
	})

	// long position, falling candle, hold
	exitStrategy.OnKline(confirmedCandle(3*hourMillis, 110.00, 100.00))

	mocks.binance.AssertNotCalled(t, "CreateOrder")
}

func TestExitPrefersSignalRecordOverHistory(t *testing.T) {
	exitStrategy, mocks := newExitStrategy()

	mocks.exchangeRepository.On("GetPosition", "BTCUSDT").Return(&model.Position{
		Symbol:       "BTCUSDT",
		SignedAmount: 0.50,
	})
	mocks.signalRecords.On("GetRecord", "BTCUSDT").Return(&model.SignalRecord{
		Symbol:    "BTCUSDT",
		EntryTime: model.TimestampMilli(1 * hourMillis),
	})
	mocks.binance.On("CreateOrder", "BTCUSDT", model.OrderSideSell, 0.50, true, mock.Anything).Return(model.Order{
		Symbol: "BTCUSDT",
		Status: model.OrderStatusNew,
	}, nil)
	mocks.orderRepository.On("Create", mock.Anything).Return(nil)
	mocks.orderTracker.On("Record", "BTCUSDT", mock.Anything).Return()
	mocks.signalRecords.On("Invalidate", "BTCUSDT").Return()

	exitStrategy.OnKline(confirmedCandle(2*hourMillis, 100.00, 110.00))

	mocks.entryTimeResolver.AssertNotCalled(t, "ResolveEntryTime")
}
