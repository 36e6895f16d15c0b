package model

type Bot struct {
	Id      int64  `json:"id"`
	BotUuid string `json:"botUuid"`
}

type BotStatus struct {
	BotUuid        string            `json:"botUuid"`
	Ready          bool              `json:"ready"`
	TrackedSymbols []string          `json:"trackedSymbols"`
	Positions      []Position        `json:"positions"`
	TrackedOrders  map[string]string `json:"trackedOrders"`
}
