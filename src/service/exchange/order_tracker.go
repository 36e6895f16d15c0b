package exchange

import (
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"log"
	"slices"
	"sync"
)

type OrderTrackerInterface interface {
	Record(symbol string, uuid string)
	Remove(symbol string, uuid string)
	Get(symbol string) string
	Snapshot() map[string]string
}

// OrderTracker keeps the client order id of the in-flight order per symbol,
// at most one per symbol. Rehydrate restores the map from the open orders
// reported by the exchange after a restart.
type OrderTracker struct {
	TrackedSymbols []string

	mutex  sync.Mutex
	orders map[string]string
}

func NewOrderTracker(trackedSymbols []string) *OrderTracker {
	return &OrderTracker{
		TrackedSymbols: trackedSymbols,
		orders:         make(map[string]string),
	}
}

func (o *OrderTracker) Record(symbol string, uuid string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.orders[symbol] = uuid
}

// Remove clears the tracked order only when the uuid still matches, a
// terminal event for a superseded order must not drop the newer one.
func (o *OrderTracker) Remove(symbol string, uuid string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.orders[symbol] == uuid {
		delete(o.orders, symbol)
	}
}

func (o *OrderTracker) Get(symbol string) string {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	return o.orders[symbol]
}

func (o *OrderTracker) Rehydrate(orders []model.Order) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	for _, order := range orders {
		if !slices.Contains(o.TrackedSymbols, order.Symbol) {
			continue
		}

		o.orders[order.Symbol] = order.Uuid
		log.Printf("[%s] Rehydrated open order %s", order.Symbol, order.Uuid)
	}
}

func (o *OrderTracker) Snapshot() map[string]string {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	snapshot := make(map[string]string)
	for symbol, uuid := range o.orders {
		snapshot[symbol] = uuid
	}

	return snapshot
}
