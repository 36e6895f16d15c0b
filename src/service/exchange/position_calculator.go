package exchange

import (
	"errors"
	"fmt"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"gitlab.com/open-soft/go-signal-trader/src/repository"
	"gitlab.com/open-soft/go-signal-trader/src/utils"
	"math"
)

type PositionCalculatorInterface interface {
	CalculateTarget(symbol string, signal model.Signal) (float64, error)
	CalculateDiff(symbol string, target float64) (model.PositionDiff, error)
}

// PositionCalculator sizes target positions from signal importance and
// computes the corrective trade against the cached live position.
type PositionCalculator struct {
	ExchangeRepository repository.AccountCacheInterface
	RuleStorage        repository.SymbolRuleStorageInterface
	Formatter          *utils.Formatter
	Leverage           float64
	QuoteAsset         string
}

func (p *PositionCalculator) CalculateTarget(symbol string, signal model.Signal) (float64, error) {
	balance := p.ExchangeRepository.GetBalance(p.QuoteAsset)
	if balance == nil {
		return 0.00, errors.New(fmt.Sprintf("[%s] %s balance is not cached yet", symbol, p.QuoteAsset))
	}

	ticker := p.ExchangeRepository.GetBookTicker(symbol)
	if ticker == nil || !ticker.HasPrice() {
		return 0.00, errors.New(fmt.Sprintf("[%s] book ticker is not available", symbol))
	}

	rules := p.RuleStorage.GetSymbolRules(symbol)
	if rules == nil {
		return 0.00, errors.New(fmt.Sprintf("[%s] symbol rules are not loaded", symbol))
	}

	usableBudget := balance.Available * signal.PositionRatio() * p.Leverage
	amount := p.Formatter.FormatAmount(*rules, usableBudget/ticker.GetMidPrice())

	if signal.IsBearish() {
		amount = -amount
	}

	return amount, nil
}

func (p *PositionCalculator) CalculateDiff(symbol string, target float64) (model.PositionDiff, error) {
	position := p.ExchangeRepository.GetPosition(symbol)
	if position == nil {
		return model.PositionDiff{}, errors.New(fmt.Sprintf("[%s] position is not cached yet", symbol))
	}

	current := position.SignedAmount
	amount := target - current

	diff := model.PositionDiff{
		Current: current,
		Target:  target,
		Amount:  amount,
	}

	// reduce-only only when the trade strictly shrinks the position without
	// crossing zero
	if math.Abs(current) > math.Abs(target) && current*target >= 0.00 {
		diff.ReduceOnly = true
	}

	return diff, nil
}
