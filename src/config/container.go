package config

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-signal-trader/src/client"
	"gitlab.com/open-soft/go-signal-trader/src/controller"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"gitlab.com/open-soft/go-signal-trader/src/repository"
	"gitlab.com/open-soft/go-signal-trader/src/service"
	"gitlab.com/open-soft/go-signal-trader/src/service/exchange"
	"gitlab.com/open-soft/go-signal-trader/src/service/strategy"
	"gitlab.com/open-soft/go-signal-trader/src/utils"
	"log"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

func InitServiceContainer() Container {
	db, err := sql.Open("mysql", os.Getenv("DATABASE_DSN"))

	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	db.SetMaxIdleConns(64)
	db.SetMaxOpenConns(64)
	db.SetConnMaxLifetime(time.Minute)

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_DSN"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	botRepository := repository.BotRepository{
		DB: db,
	}

	currentBot := botRepository.GetCurrentBot()
	if currentBot == nil {
		botUuid := os.Getenv("BOT_UUID")
		err := botRepository.Create(model.Bot{
			BotUuid: botUuid,
		})
		if err != nil {
			panic(err)
		}

		currentBot = botRepository.GetCurrentBot()
		if currentBot == nil {
			panic(fmt.Sprintf("Can't initialize bot: %s", botUuid))
		}
	}

	trackedSymbols := make([]string, 0)
	for _, symbol := range strings.Split(os.Getenv("TRACKED_SYMBOLS"), ",") {
		symbol = strings.TrimSpace(symbol)
		if len(symbol) > 0 && !slices.Contains(trackedSymbols, symbol) {
			trackedSymbols = append(trackedSymbols, symbol)
		}
	}

	if len(trackedSymbols) == 0 {
		panic("'TRACKED_SYMBOLS' variable must be set!")
	}

	leverage := 10.00
	if value, err := strconv.ParseFloat(os.Getenv("LEVERAGE"), 64); err == nil && value > 0.00 {
		leverage = value
	}

	quoteAsset := os.Getenv("QUOTE_ASSET")
	if len(quoteAsset) == 0 {
		quoteAsset = "USDT"
	}

	httpClient := client.HttpClient{}
	binance := client.BinanceFutures{
		ApiKey:     os.Getenv("BINANCE_API_KEY"),
		ApiSecret:  os.Getenv("BINANCE_API_SECRET"),
		DSN:        os.Getenv("BINANCE_FUTURES_API_DSN"),
		HttpClient: &httpClient,
	}

	exchangeRepository := repository.ExchangeRepository{
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
	}
	orderRepository := repository.OrderRepository{
		DB:         db,
		CurrentBot: currentBot,
	}
	signalRecordRepository := repository.SignalRecordRepository{
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
	}

	formatter := utils.Formatter{}
	timeService := utils.TimeHelper{}

	readinessGate := exchange.NewReadinessGate(trackedSymbols)
	orderTracker := exchange.NewOrderTracker(trackedSymbols)

	entryTimeResolver := exchange.EntryTimeResolver{
		OrderHistory: &orderRepository,
	}

	positionCalculator := exchange.PositionCalculator{
		ExchangeRepository: &exchangeRepository,
		RuleStorage:        &exchangeRepository,
		Formatter:          &formatter,
		Leverage:           leverage,
		QuoteAsset:         quoteAsset,
	}

	signalDispatcher := strategy.SignalDispatcher{
		ReadinessGate:      readinessGate,
		PositionCalculator: &positionCalculator,
		OrderTracker:       orderTracker,
		Binance:            &binance,
		OrderRepository:    &orderRepository,
		SignalRecords:      &signalRecordRepository,
		TimeHelper:         &timeService,
		TrackedSymbols:     trackedSymbols,
		InstrumentSuffix:   "USDT.BBP",
		SymbolSuffix:       "USDT",
	}

	exitStrategy := strategy.CandleExitStrategy{
		ExchangeRepository: &exchangeRepository,
		EntryTimeResolver:  &entryTimeResolver,
		SignalRecords:      &signalRecordRepository,
		OrderTracker:       orderTracker,
		Binance:            &binance,
		OrderRepository:    &orderRepository,
		Interval:           model.IntervalHour1,
	}

	tradingEngine := service.TradingEngine{
		MarketChannel:      make(chan []byte),
		UserDataChannel:    make(chan []byte),
		SignalChannel:      make(chan []byte),
		ExchangeRepository: &exchangeRepository,
		OrderRepository:    &orderRepository,
		ReadinessGate:      readinessGate,
		OrderTracker:       orderTracker,
		SignalDispatcher:   &signalDispatcher,
		ExitStrategy:       &exitStrategy,
	}

	signalListener := service.SignalListener{
		RDB:     rdb,
		Ctx:     &ctx,
		Channel: os.Getenv("SIGNAL_CHANNEL"),
	}

	botController := controller.BotController{
		CurrentBot:         currentBot,
		ExchangeRepository: &exchangeRepository,
		ReadinessGate:      readinessGate,
		OrderTracker:       orderTracker,
		TrackedSymbols:     trackedSymbols,
	}

	return Container{
		Db:                 db,
		CurrentBot:         currentBot,
		TrackedSymbols:     trackedSymbols,
		TimeService:        &timeService,
		Binance:            &binance,
		ExchangeRepository: &exchangeRepository,
		OrderRepository:    &orderRepository,
		SignalRecords:      &signalRecordRepository,
		ReadinessGate:      readinessGate,
		OrderTracker:       orderTracker,
		TradingEngine:      &tradingEngine,
		SignalListener:     &signalListener,
		BotController:      &botController,
	}
}

type Container struct {
	Db                 *sql.DB
	CurrentBot         *model.Bot
	TrackedSymbols     []string
	TimeService        *utils.TimeHelper
	Binance            *client.BinanceFutures
	ExchangeRepository *repository.ExchangeRepository
	OrderRepository    *repository.OrderRepository
	SignalRecords      *repository.SignalRecordRepository
	ReadinessGate      *exchange.ReadinessGate
	OrderTracker       *exchange.OrderTracker
	TradingEngine      *service.TradingEngine
	SignalListener     *service.SignalListener
	BotController      *controller.BotController
}

// PrimeCaches loads exchange rules, balances, positions and open orders
// before the event loop starts, so the first signal can be sized and the
// tracker never forgets in-flight work across restarts.
func (c *Container) PrimeCaches() {
	exchangeInfo, err := c.Binance.GetExchangeInfo()
	if err != nil {
		log.Fatal(fmt.Sprintf("Exchange info is not available: %s", err.Error()))
	}

	for _, symbol := range exchangeInfo.Symbols {
		if slices.Contains(c.TrackedSymbols, symbol.Symbol) {
			c.ExchangeRepository.SetSymbolRules(symbol.ToSymbolRules())
		}
	}

	balances, err := c.Binance.GetBalances()
	if err != nil {
		log.Fatal(fmt.Sprintf("Balances are not available: %s", err.Error()))
	}

	for _, balance := range balances {
		c.ExchangeRepository.SetBalance(balance)
	}

	positions, err := c.Binance.GetPositions()
	if err != nil {
		log.Fatal(fmt.Sprintf("Positions are not available: %s", err.Error()))
	}

	for _, position := range positions {
		if slices.Contains(c.TrackedSymbols, position.Symbol) {
			c.ExchangeRepository.SetPosition(position)
		}
	}

	// a tracked symbol the exchange never reported is flat, not unknown
	for _, symbol := range c.TrackedSymbols {
		if c.ExchangeRepository.GetPosition(symbol) == nil {
			c.ExchangeRepository.SetPosition(model.Position{
				Symbol: symbol,
			})
		}
	}

	openOrders, err := c.Binance.GetOpenOrders()
	if err != nil {
		log.Fatal(fmt.Sprintf("Open orders are not available: %s", err.Error()))
	}

	c.OrderTracker.Rehydrate(openOrders)

	log.Printf("Caches are primed for %d symbols", len(c.TrackedSymbols))
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/bot/status", c.BotController.GetStatusAction)
	http.Handle("/metrics", promhttp.Handler())

	err := http.ListenAndServe(":8080", nil)
	if err != nil {
		log.Fatal(err)
	}
}
