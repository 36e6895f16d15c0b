package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"time"
)

type AccountCacheInterface interface {
	GetBookTicker(symbol string) *model.BookTicker
	GetPosition(symbol string) *model.Position
	GetBalance(asset string) *model.Balance
}

type SymbolRuleStorageInterface interface {
	GetSymbolRules(symbol string) *model.SymbolRules
}

// ExchangeRepository caches the live exchange state in Redis so that every
// component observes one snapshot per bot instance.
type ExchangeRepository struct {
	RDB        *redis.Client
	Ctx        *context.Context
	CurrentBot *model.Bot
}

func (e *ExchangeRepository) SetBookTicker(ticker model.BookTicker) {
	encoded, _ := json.Marshal(ticker)
	e.RDB.Set(*e.Ctx, fmt.Sprintf("book-ticker-%s-bot-%d", ticker.Symbol, e.CurrentBot.Id), string(encoded), time.Minute)
}

func (e *ExchangeRepository) GetBookTicker(symbol string) *model.BookTicker {
	res := e.RDB.Get(*e.Ctx, fmt.Sprintf("book-ticker-%s-bot-%d", symbol, e.CurrentBot.Id)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.BookTicker
	err := json.Unmarshal([]byte(res), &dto)

	if err == nil {
		return &dto
	}

	return nil
}

func (e *ExchangeRepository) SetPosition(position model.Position) {
	encoded, _ := json.Marshal(position)
	e.RDB.Set(*e.Ctx, fmt.Sprintf("position-%s-bot-%d", position.Symbol, e.CurrentBot.Id), string(encoded), 0)
}

func (e *ExchangeRepository) GetPosition(symbol string) *model.Position {
	res := e.RDB.Get(*e.Ctx, fmt.Sprintf("position-%s-bot-%d", symbol, e.CurrentBot.Id)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.Position
	err := json.Unmarshal([]byte(res), &dto)

	if err == nil {
		return &dto
	}

	return nil
}

func (e *ExchangeRepository) SetBalance(balance model.Balance) {
	encoded, _ := json.Marshal(balance)
	e.RDB.Set(*e.Ctx, fmt.Sprintf("balance-%s-bot-%d", balance.Asset, e.CurrentBot.Id), string(encoded), 0)
}

func (e *ExchangeRepository) GetBalance(asset string) *model.Balance {
	res := e.RDB.Get(*e.Ctx, fmt.Sprintf("balance-%s-bot-%d", asset, e.CurrentBot.Id)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.Balance
	err := json.Unmarshal([]byte(res), &dto)

	if err == nil {
		return &dto
	}

	return nil
}

func (e *ExchangeRepository) SetSymbolRules(rules model.SymbolRules) {
	encoded, _ := json.Marshal(rules)
	e.RDB.Set(*e.Ctx, fmt.Sprintf("symbol-rules-%s-bot-%d", rules.Symbol, e.CurrentBot.Id), string(encoded), 0)
}

func (e *ExchangeRepository) GetSymbolRules(symbol string) *model.SymbolRules {
	res := e.RDB.Get(*e.Ctx, fmt.Sprintf("symbol-rules-%s-bot-%d", symbol, e.CurrentBot.Id)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.SymbolRules
	err := json.Unmarshal([]byte(res), &dto)

	if err == nil {
		return &dto
	}

	return nil
}
