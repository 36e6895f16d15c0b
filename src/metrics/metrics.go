package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SignalBatches = promauto.NewCounter(prometheus.CounterOpts{
	Name: "signal_trader_signal_batches_total",
	Help: "Signal batches received from the signal channel",
})

var SignalsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "signal_trader_signals_skipped_total",
	Help: "Signals skipped before order submission",
}, []string{"reason"})

var OrdersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "signal_trader_orders_submitted_total",
	Help: "Market orders accepted by the exchange",
}, []string{"side"})

var OrdersFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "signal_trader_orders_failed_total",
	Help: "Market orders rejected by the exchange",
})

var ExitsTriggered = promauto.NewCounter(prometheus.CounterOpts{
	Name: "signal_trader_exits_triggered_total",
	Help: "Positions closed by the candle exit rule",
})

var DataReady = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "signal_trader_data_ready",
	Help: "1 when all tracked symbols have market data",
})
