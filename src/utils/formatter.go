package utils

import (
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"math"
	"strconv"
	"strings"
)

type Formatter struct {
}

// FormatAmount floors the raw amount to the symbol's lot step. Amounts that
// end up below the exchange minimum are reported as zero, a zero amount
// means "no order", never a forced minimum trade.
func (m *Formatter) FormatAmount(rules model.SymbolRules, amount float64) float64 {
	if rules.StepSize <= 0.00 {
		return amount
	}

	steps := math.Floor(amount/rules.StepSize + 1e-9)
	value := steps * rules.StepSize

	ratio := math.Pow(10, float64(m.stepPrecision(rules.StepSize)))
	value = math.Round(value*ratio) / ratio

	if value < rules.MinQuantity {
		return 0.00
	}

	return value
}

func (m *Formatter) stepPrecision(stepSize float64) int {
	split := strings.Split(strconv.FormatFloat(stepSize, 'f', -1, 64), ".")
	if len(split) > 1 {
		return len(split[1])
	}

	return 0
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}
