package main

import (
	"fmt"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-signal-trader/src/client"
	"gitlab.com/open-soft/go-signal-trader/src/config"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"log"
	"os"
	"strings"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	container := config.InitServiceContainer()
	defer container.Db.Close()

	container.PrimeCaches()

	container.SignalListener.Listen(container.TradingEngine.SignalChannel)
	defer container.SignalListener.Close()

	listenKey, err := container.Binance.CreateListenKey()
	if err != nil {
		log.Fatal(fmt.Sprintf("Listen key is not available: %s", err.Error()))
	}

	go func() {
		for {
			container.TimeService.WaitSeconds(1800)
			err := container.Binance.KeepAliveListenKey()
			if err != nil {
				log.Printf("Listen key keep alive: %s", err.Error())
			}
		}
	}()

	websockets := make([]*websocket.Conn, 0)

	userDataSocket := client.Listen(fmt.Sprintf(
		"%s/ws/%s",
		os.Getenv("BINANCE_FUTURES_WS_DSN"),
		listenKey,
	), container.TradingEngine.UserDataChannel, 0)
	defer userDataSocket.Close()

	symbolCollection := make([]model.SymbolInterface, 0)
	for _, symbol := range container.TrackedSymbols {
		symbolCollection = append(symbolCollection, model.DummySymbol{Symbol: symbol})
	}

	events := []string{"@bookTicker", fmt.Sprintf("@kline_%s", model.IntervalHour1)}

	for index, streamBatchItem := range client.GetStreamBatch(symbolCollection, events) {
		websockets = append(websockets, client.Listen(fmt.Sprintf(
			"%s/stream?streams=%s",
			os.Getenv("BINANCE_FUTURES_WS_DSN"),
			strings.Join(streamBatchItem, "/"),
		), container.TradingEngine.MarketChannel, int64(index)))

		log.Printf("Batch %d websocket: %s", index, strings.Join(streamBatchItem, ", "))

		defer websockets[index].Close()
	}

	go container.TradingEngine.Run()

	container.StartHttpServer()
}
