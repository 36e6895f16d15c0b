package controller

import (
	"encoding/json"
	"fmt"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"gitlab.com/open-soft/go-signal-trader/src/repository"
	"gitlab.com/open-soft/go-signal-trader/src/service/exchange"
	"net/http"
)

type BotController struct {
	CurrentBot         *model.Bot
	ExchangeRepository repository.AccountCacheInterface
	ReadinessGate      exchange.ReadinessGateInterface
	OrderTracker       exchange.OrderTrackerInterface
	TrackedSymbols     []string
}

func (b *BotController) GetStatusAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	positions := make([]model.Position, 0)
	for _, symbol := range b.TrackedSymbols {
		position := b.ExchangeRepository.GetPosition(symbol)
		if position != nil && position.IsOpened() {
			positions = append(positions, *position)
		}
	}

	status := model.BotStatus{
		BotUuid:        b.CurrentBot.BotUuid,
		Ready:          b.ReadinessGate.IsReady(),
		TrackedSymbols: b.TrackedSymbols,
		Positions:      positions,
		TrackedOrders:  b.OrderTracker.Snapshot(),
	}

	encoded, _ := json.Marshal(status)
	fmt.Fprintf(w, string(encoded))
}
