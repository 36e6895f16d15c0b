package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-signal-trader/src/model"
)

type SignalRecordStorageInterface interface {
	SaveRecord(record model.SignalRecord)
	GetRecord(symbol string) *model.SignalRecord
	Invalidate(symbol string)
}

// SignalRecordRepository remembers the last acted-on signal per symbol. The
// record is a fast-path hint for entry time resolution, the order history
// stays authoritative.
type SignalRecordRepository struct {
	RDB        *redis.Client
	Ctx        *context.Context
	CurrentBot *model.Bot
}

func (s *SignalRecordRepository) SaveRecord(record model.SignalRecord) {
	encoded, _ := json.Marshal(record)
	s.RDB.Set(*s.Ctx, fmt.Sprintf("signal-record-%s-bot-%d", record.Symbol, s.CurrentBot.Id), string(encoded), 0)
}

func (s *SignalRecordRepository) GetRecord(symbol string) *model.SignalRecord {
	res := s.RDB.Get(*s.Ctx, fmt.Sprintf("signal-record-%s-bot-%d", symbol, s.CurrentBot.Id)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.SignalRecord
	err := json.Unmarshal([]byte(res), &dto)

	if err == nil {
		return &dto
	}

	return nil
}

func (s *SignalRecordRepository) Invalidate(symbol string) {
	s.RDB.Del(*s.Ctx, fmt.Sprintf("signal-record-%s-bot-%d", symbol, s.CurrentBot.Id))
}
