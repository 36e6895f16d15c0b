package service

import (
	"context"
	"github.com/redis/go-redis/v9"
	"log"
)

// SignalListener forwards every message published on the signal channel to
// the engine. Delivery is at most once, a missed batch self-heals on the
// next one.
type SignalListener struct {
	RDB     *redis.Client
	Ctx     *context.Context
	Channel string

	pubSub *redis.PubSub
}

func (s *SignalListener) Listen(target chan<- []byte) {
	s.pubSub = s.RDB.Subscribe(*s.Ctx, s.Channel)

	log.Printf("Subscribed to signal channel '%s'", s.Channel)

	go func() {
		for message := range s.pubSub.Channel() {
			target <- []byte(message.Payload)
		}
	}()
}

func (s *SignalListener) Close() {
	if s.pubSub != nil {
		_ = s.pubSub.Close()
	}
}
