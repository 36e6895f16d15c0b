package service

import (
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"testing"
)

type OrderTrackerMock struct {
	mock.Mock
}

func (m *OrderTrackerMock) Record(symbol string, uuid string) {
	m.Called(symbol, uuid)
}

func (m *OrderTrackerMock) Remove(symbol string, uuid string) {
	m.Called(symbol, uuid)
}

func (m *OrderTrackerMock) Get(symbol string) string {
	args := m.Called(symbol)
	return args.String(0)
}

func (m *OrderTrackerMock) Snapshot() map[string]string {
	args := m.Called()
	return args.Get(0).(map[string]string)
}

type OrderStorageMock struct {
	mock.Mock
}

func (m *OrderStorageMock) Create(order model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderStorageMock) Update(order model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderStorageMock) Save(order model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderStorageMock) Find(uuid string) (model.Order, error) {
	args := m.Called(uuid)
	return args.Get(0).(model.Order), args.Error(1)
}

func newEngine(orderTracker *OrderTrackerMock, orderRepository *OrderStorageMock) TradingEngine {
	return TradingEngine{
		OrderRepository: orderRepository,
		OrderTracker:    orderTracker,
	}
}

func TestEngineRecordsAcceptedOrder(t *testing.T) {
	orderTracker := new(OrderTrackerMock)
	orderRepository := new(OrderStorageMock)

	orderRepository.On("Save", mock.Anything).Return(nil)
	orderTracker.On("Record", "BTCUSDT", "uuid-1").Return()

	engine := newEngine(orderTracker, orderRepository)

	engine.OnOrderUpdate(model.Order{
		Uuid:   "uuid-1",
		Symbol: "BTCUSDT",
		Status: model.OrderStatusNew,
	})

	orderTracker.AssertCalled(t, "Record", "BTCUSDT", "uuid-1")
	orderRepository.AssertNumberOfCalls(t, "Save", 1)
}

func TestEngineRemovesFilledOrder(t *testing.T) {
	orderTracker := new(OrderTrackerMock)
	orderRepository := new(OrderStorageMock)

	orderRepository.On("Save", mock.Anything).Return(nil)
	orderTracker.On("Remove", "BTCUSDT", "uuid-1").Return()

	engine := newEngine(orderTracker, orderRepository)

	engine.OnOrderUpdate(model.Order{
		Uuid:   "uuid-1",
		Symbol: "BTCUSDT",
		Status: model.OrderStatusFilled,
	})

	orderTracker.AssertCalled(t, "Remove", "BTCUSDT", "uuid-1")
}

func TestEngineRemovesCanceledAndExpiredOrders(t *testing.T) {
	for _, status := range []string{model.OrderStatusCanceled, model.OrderStatusExpired} {
		orderTracker := new(OrderTrackerMock)
		orderRepository := new(OrderStorageMock)

		orderRepository.On("Save", mock.Anything).Return(nil)
		orderTracker.On("Remove", "BTCUSDT", "uuid-1").Return()

		engine := newEngine(orderTracker, orderRepository)

		engine.OnOrderUpdate(model.Order{
			Uuid:   "uuid-1",
			Symbol: "BTCUSDT",
			Status: status,
		})

		orderTracker.AssertCalled(t, "Remove", "BTCUSDT", "uuid-1")
	}
}

func TestEnginePartialFillKeepsTracking(t *testing.T) {
	orderTracker := new(OrderTrackerMock)
	orderRepository := new(OrderStorageMock)

	orderRepository.On("Save", mock.Anything).Return(nil)

	engine := newEngine(orderTracker, orderRepository)

	engine.OnOrderUpdate(model.Order{
		Uuid:   "uuid-1",
		Symbol: "BTCUSDT",
		Status: model.OrderStatusPartiallyFilled,
	})

	orderTracker.AssertNotCalled(t, "Remove")
	orderTracker.AssertNotCalled(t, "Record")
}
