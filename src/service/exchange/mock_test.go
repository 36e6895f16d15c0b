package exchange

import (
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-signal-trader/src/model"
)

type OrderHistoryMock struct {
	mock.Mock
}

func (m *OrderHistoryMock) GetOrderHistory(symbol string) []model.Order {
	args := m.Called(symbol)
	return args.Get(0).([]model.Order)
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

type SymbolRuleStorageMock struct {
	mock.Mock
}

func (m *SymbolRuleStorageMock) GetSymbolRules(symbol string) *model.SymbolRules {
	args := m.Called(symbol)
	rules := args.Get(0)
	if rules == nil {
		return nil
	}
	return rules.(*model.SymbolRules)
}
