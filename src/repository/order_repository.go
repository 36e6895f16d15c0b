package repository

import (
	"database/sql"
	"gitlab.com/open-soft/go-signal-trader/src/model"
	"log"
)

type OrderStorageInterface interface {
	Create(order model.Order) error
	Update(order model.Order) error
	Save(order model.Order) error
	Find(uuid string) (model.Order, error)
}

type OrderHistoryInterface interface {
	GetOrderHistory(symbol string) []model.Order
}

// OrderRepository persists every order the bot has seen. The history is the
// durable source of truth for entry time recovery after a restart.
type OrderRepository struct {
	DB         *sql.DB
	CurrentBot *model.Bot
}

func (repo *OrderRepository) Create(order model.Order) error {
	_, err := repo.DB.Exec(`
		INSERT INTO orders SET
			uuid = ?,
			external_id = ?,
			symbol = ?,
			side = ?,
			type = ?,
			quantity = ?,
			price = ?,
			reduce_only = ?,
			position_side = ?,
			status = ?,
			timestamp = ?,
			bot_id = ?
	`,
		order.Uuid,
		order.ExternalId,
		order.Symbol,
		order.Side,
		order.Type,
		order.Quantity,
		order.Price,
		order.ReduceOnly,
		order.PositionSide,
		order.Status,
		order.Timestamp.Value(),
		repo.CurrentBot.Id,
	)

	return err
}

func (repo *OrderRepository) Update(order model.Order) error {
	_, err := repo.DB.Exec(`
		UPDATE orders o SET
			o.external_id = ?,
			o.symbol = ?,
			o.side = ?,
			o.type = ?,
			o.quantity = ?,
			o.price = ?,
			o.reduce_only = ?,
			o.position_side = ?,
			o.status = ?,
			o.timestamp = ?
		WHERE o.uuid = ? AND o.bot_id = ?
	`,
		order.ExternalId,
		order.Symbol,
		order.Side,
		order.Type,
		order.Quantity,
		order.Price,
		order.ReduceOnly,
		order.PositionSide,
		order.Status,
		order.Timestamp.Value(),
		order.Uuid,
		repo.CurrentBot.Id,
	)

	return err
}

// Save updates an existing row or inserts a new one. Exchange events can
// arrive for orders the bot never wrote, for example after a crash between
// submit and insert.
func (repo *OrderRepository) Save(order model.Order) error {
	res, err := repo.DB.Exec(`
		UPDATE orders o SET
			o.external_id = ?,
			o.quantity = ?,
			o.price = ?,
			o.status = ?,
			o.timestamp = ?
		WHERE o.uuid = ? AND o.bot_id = ?
	`,
		order.ExternalId,
		order.Quantity,
		order.Price,
		order.Status,
		order.Timestamp.Value(),
		order.Uuid,
		repo.CurrentBot.Id,
	)

	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return repo.Create(order)
	}

	return nil
}

func (repo *OrderRepository) Find(uuid string) (model.Order, error) {
	var order model.Order
	var timestamp int64

	err := repo.DB.QueryRow(`
		SELECT
			o.uuid as Uuid,
			o.external_id as ExternalId,
			o.symbol as Symbol,
			o.side as Side,
			o.type as Type,
			o.quantity as Quantity,
			o.price as Price,
			o.reduce_only as ReduceOnly,
			o.position_side as PositionSide,
			o.status as Status,
			o.timestamp as Timestamp
		FROM orders o
		WHERE o.uuid = ? AND o.bot_id = ?
	`, uuid, repo.CurrentBot.Id).Scan(
		&order.Uuid,
		&order.ExternalId,
		&order.Symbol,
		&order.Side,
		&order.Type,
		&order.Quantity,
		&order.Price,
		&order.ReduceOnly,
		&order.PositionSide,
		&order.Status,
		&timestamp,
	)

	if err != nil {
		return order, err
	}

	order.Timestamp = model.TimestampMilli(timestamp)

	return order, nil
}

func (repo *OrderRepository) GetOrderHistory(symbol string) []model.Order {
	res, err := repo.DB.Query(`
		SELECT
			o.uuid as Uuid,
			o.external_id as ExternalId,
			o.symbol as Symbol,
			o.side as Side,
			o.type as Type,
			o.quantity as Quantity,
			o.price as Price,
			o.reduce_only as ReduceOnly,
			o.position_side as PositionSide,
			o.status as Status,
			o.timestamp as Timestamp
		FROM orders o
		WHERE o.symbol = ? AND o.status = ? AND o.bot_id = ?
		ORDER BY o.timestamp ASC
	`, symbol, model.OrderStatusFilled, repo.CurrentBot.Id)

	orders := make([]model.Order, 0)

	if err != nil {
		log.Printf("[%s] GetOrderHistory: %s", symbol, err.Error())
		return orders
	}

	defer res.Close()

	for res.Next() {
		var order model.Order
		var timestamp int64

		err := res.Scan(
			&order.Uuid,
			&order.ExternalId,
			&order.Symbol,
			&order.Side,
			&order.Type,
			&order.Quantity,
			&order.Price,
			&order.ReduceOnly,
			&order.PositionSide,
			&order.Status,
			&timestamp,
		)

		if err != nil {
			log.Printf("[%s] GetOrderHistory: %s", symbol, err.Error())
			continue
		}

		order.Timestamp = model.TimestampMilli(timestamp)
		orders = append(orders, order)
	}

	return orders
}
