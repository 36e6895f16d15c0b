package exchange

import (
	"log"
	"sync"
)

type ReadinessGateInterface interface {
	Input(symbol string)
	IsReady() bool
}

// ReadinessGate blocks trading until every tracked symbol has produced at
// least one market data update. Once open it stays open, a symbol going
// quiet later does not close the gate.
type ReadinessGate struct {
	Symbols []string

	mutex sync.Mutex
	seen  map[string]bool
	ready bool
}

func NewReadinessGate(symbols []string) *ReadinessGate {
	return &ReadinessGate{
		Symbols: symbols,
		seen:    make(map[string]bool),
	}
}

func (r *ReadinessGate) Input(symbol string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.ready {
		return
	}

	if !r.seen[symbol] {
		r.seen[symbol] = true
		log.Printf("[%s] Market data received, %d of %d symbols ready", symbol, len(r.seen), len(r.Symbols))
	}

	for _, tracked := range r.Symbols {
		if !r.seen[tracked] {
			return
		}
	}

	r.ready = true
	log.Printf("All %d symbols have market data, trading is enabled", len(r.Symbols))
}

func (r *ReadinessGate) IsReady() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.ready
}
