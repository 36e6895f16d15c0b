package strategy

import (
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-signal-trader/src/model"
)

type ReadinessGateMock struct {
	mock.Mock
}

func (m *ReadinessGateMock) Input(symbol string) {
	m.Called(symbol)
}

func (m *ReadinessGateMock) IsReady() bool {
	args := m.Called()
	return args.Bool(0)
}

type PositionCalculatorMock struct {
	mock.Mock
}

func (m *PositionCalculatorMock) CalculateTarget(symbol string, signal model.Signal) (float64, error) {
	args := m.Called(symbol, signal)
	return args.Get(0).(float64), args.Error(1)
}

func (m *PositionCalculatorMock) CalculateDiff(symbol string, target float64) (model.PositionDiff, error) {
	args := m.Called(symbol, target)
	return args.Get(0).(model.PositionDiff), args.Error(1)
}

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

type ExchangeOrderAPIMock struct {
	mock.Mock
}

func (m *ExchangeOrderAPIMock) CreateOrder(symbol string, side string, quantity float64, reduceOnly bool, clientOrderId string) (model.Order, error) {
	args := m.Called(symbol, side, quantity, reduceOnly, clientOrderId)
	return args.Get(0).(model.Order), args.Error(1)
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

type SignalRecordStorageMock struct {
	mock.Mock
}

func (m *SignalRecordStorageMock) SaveRecord(record model.SignalRecord) {
	m.Called(record)
}

func (m *SignalRecordStorageMock) GetRecord(symbol string) *model.SignalRecord {
	args := m.Called(symbol)
	record := args.Get(0)
	if record == nil {
		return nil
	}
	return record.(*model.SignalRecord)
}

func (m *SignalRecordStorageMock) Invalidate(symbol string) {
	m.Called(symbol)
}

type TimeServiceMock struct {
	mock.Mock
}

func (m *TimeServiceMock) WaitSeconds(seconds int64) {
	m.Called(seconds)
}

func (m *TimeServiceMock) GetNowUnixMilli() int64 {
	args := m.Called()
	return int64(args.Int(0))
}

func (m *TimeServiceMock) GetNowDateTimeString() string {
	args := m.Called()
	return args.String(0)
}

type AccountCacheMock struct {
	mock.Mock
}

func (m *AccountCacheMock) GetBookTicker(symbol string) *model.BookTicker {
	args := m.Called(symbol)
	ticker := args.Get(0)
	if ticker == nil {
		return nil
	}
	return ticker.(*model.BookTicker)
}

func (m *AccountCacheMock) GetPosition(symbol string) *model.Position {
	args := m.Called(symbol)
	position := args.Get(0)
	if position == nil {
		return nil
	}
	return position.(*model.Position)
}

func (m *AccountCacheMock) GetBalance(asset string) *model.Balance {
	args := m.Called(asset)
	balance := args.Get(0)
	if balance == nil {
		return nil
	}
	return balance.(*model.Balance)
}

type EntryTimeResolverMock struct {
	mock.Mock
}

func (m *EntryTimeResolverMock) ResolveEntryTime(symbol string, position model.Position) model.TimestampMilli {
	args := m.Called(symbol, position)
	return args.Get(0).(model.TimestampMilli)
}
