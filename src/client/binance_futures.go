package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"
)

type ExchangeOrderAPIInterface interface {
	CreateOrder(symbol string, side string, quantity float64, reduceOnly bool, clientOrderId string) (model.Order, error)
}

type ExchangeAccountAPIInterface interface {
	GetOpenOrders() ([]model.Order, error)
	GetPositions() ([]model.Position, error)
	GetBalances() ([]model.Balance, error)
	GetExchangeInfo() (*model.ExchangeInfo, error)
}

type ExchangeStreamAPIInterface interface {
	CreateListenKey() (string, error)
	KeepAliveListenKey() error
}

type BinanceFutures struct {
	ApiKey     string
	ApiSecret  string
	DSN        string
	HttpClient HttpClientInterface
}

func (b *BinanceFutures) CreateOrder(symbol string, side string, quantity float64, reduceOnly bool, clientOrderId string) (model.Order, error) {
	params := map[string]string{
		"symbol":           symbol,
		"side":             side,
		"type":             model.OrderTypeMarket,
		"quantity":         strconv.FormatFloat(quantity, 'f', -1, 64),
		"newClientOrderId": clientOrderId,
		"newOrderRespType": "RESULT",
	}

	if reduceOnly {
		params["reduceOnly"] = "true"
	}

	queryString := b.signedQuery(params)
	result, err := b.HttpClient.Post(fmt.Sprintf("%s/fapi/v1/order?%s", b.DSN, queryString), nil, b.GetHeaders())

	if err != nil {
		return model.Order{}, err
	}

	var response model.FuturesOrderResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		log.Printf("[%s] CreateOrder: %s", symbol, err.Error())
		return model.Order{}, err
	}

	return response.ToOrder(), nil
}

func (b *BinanceFutures) GetOpenOrders() ([]model.Order, error) {
	queryString := b.signedQuery(map[string]string{})
	result, err := b.HttpClient.Get(fmt.Sprintf("%s/fapi/v1/openOrders?%s", b.DSN, queryString), b.GetHeaders())

	if err != nil {
		return nil, err
	}

	var response []model.FuturesOrderResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		log.Printf("GetOpenOrders: %s", err.Error())
		return nil, err
	}

	orders := make([]model.Order, 0)
	for _, item := range response {
		orders = append(orders, item.ToOrder())
	}

	return orders, nil
}

func (b *BinanceFutures) GetPositions() ([]model.Position, error) {
	queryString := b.signedQuery(map[string]string{})
	result, err := b.HttpClient.Get(fmt.Sprintf("%s/fapi/v2/positionRisk?%s", b.DSN, queryString), b.GetHeaders())

	if err != nil {
		return nil, err
	}

	var response []model.FuturesPositionRisk
	err = json.Unmarshal(result, &response)
	if err != nil {
		log.Printf("GetPositions: %s", err.Error())
		return nil, err
	}

	// hedge mode reports LONG and SHORT rows separately, net them per symbol
	netted := make(map[string]model.Position)
	symbols := make([]string, 0)

	for _, risk := range response {
		position, ok := netted[risk.Symbol]
		if !ok {
			symbols = append(symbols, risk.Symbol)
			position = model.Position{
				Symbol: risk.Symbol,
			}
		}

		position.SignedAmount += risk.PositionAmt.Value()
		if risk.EntryPrice.Value() > 0.00 {
			position.EntryPrice = risk.EntryPrice.Value()
		}
		if risk.UpdateTime.Value() > position.UpdatedAt.Value() {
			position.UpdatedAt = risk.UpdateTime
		}

		netted[risk.Symbol] = position
	}

	positions := make([]model.Position, 0)
	for _, symbol := range symbols {
		positions = append(positions, netted[symbol])
	}

	return positions, nil
}

func (b *BinanceFutures) GetBalances() ([]model.Balance, error) {
	queryString := b.signedQuery(map[string]string{})
	result, err := b.HttpClient.Get(fmt.Sprintf("%s/fapi/v2/balance?%s", b.DSN, queryString), b.GetHeaders())

	if err != nil {
		return nil, err
	}

	var response []model.FuturesBalance
	err = json.Unmarshal(result, &response)
	if err != nil {
		log.Printf("GetBalances: %s", err.Error())
		return nil, err
	}

	balances := make([]model.Balance, 0)
	for _, item := range response {
		balances = append(balances, item.ToBalance())
	}

	return balances, nil
}

func (b *BinanceFutures) GetExchangeInfo() (*model.ExchangeInfo, error) {
	result, err := b.HttpClient.Get(fmt.Sprintf("%s/fapi/v1/exchangeInfo", b.DSN), b.GetHeaders())

	if err != nil {
		return nil, err
	}

	var response model.ExchangeInfo
	err = json.Unmarshal(result, &response)
	if err != nil {
		log.Printf("GetExchangeInfo: %s", err.Error())
		return nil, err
	}

	return &response, nil
}

func (b *BinanceFutures) CreateListenKey() (string, error) {
	result, err := b.HttpClient.Post(fmt.Sprintf("%s/fapi/v1/listenKey", b.DSN), nil, b.GetHeaders())

	if err != nil {
		return "", err
	}

	var response model.ListenKey
	err = json.Unmarshal(result, &response)
	if err != nil {
		log.Printf("CreateListenKey: %s", err.Error())
		return "", err
	}

	return response.ListenKey, nil
}

func (b *BinanceFutures) KeepAliveListenKey() error {
	_, err := b.HttpClient.Put(fmt.Sprintf("%s/fapi/v1/listenKey", b.DSN), nil, b.GetHeaders())

	return err
}

func (b *BinanceFutures) GetHeaders() map[string]string {
	return map[string]string{
		"X-MBX-APIKEY": b.ApiKey,
	}
}

func (b *BinanceFutures) signedQuery(params map[string]string) string {
	params["timestamp"] = strconv.FormatInt(time.Now().UnixMilli(), 10)
	params["recvWindow"] = "5000"

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, params[key]))
	}

	queryString := strings.Join(parts, "&")

	mac := hmac.New(sha256.New, []byte(b.ApiSecret))
	mac.Write([]byte(queryString))
	signature := fmt.Sprintf("%x", mac.Sum(nil))

	return fmt.Sprintf("%s&signature=%s", queryString, signature)
}
