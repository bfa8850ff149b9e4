package service

import (
	"context"
	"time"
)

type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Rank orders priorities for sorting, most urgent first.
func (p Priority) Rank() int {
	switch p {
	case High:
		return 0
	case Medium:
		return 1
	}
	return 2
}

const (
	KindCheckColonization = "check_colonization"
	KindMoveToFruiting    = "move_to_fruiting"
	KindCheckPins         = "check_pins"
	KindRehydrate         = "rehydrate"
	KindLogObservation    = "log_observation"
	KindTransferCulture   = "transfer_culture"
	KindRestock           = "restock"
	KindUseOrReplace      = "use_or_replace"
)

type Task struct {
	Kind       string    `json:"kind"`
	Priority   Priority  `json:"priority"`
	Title      string    `json:"title"`
	Detail     string    `json:"detail"`
	EntityType string    `json:"entity_type"` // grow|culture|inventory
	EntityID   uint      `json:"entity_id"`
	DueDate    string    `json:"due_date"`
	Due        time.Time `json:"-"`
}

type Focus struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone"`
	Total    int    `json:"total"` // before truncation
	Tasks    []Task `json:"tasks"`
}

type FocusService interface {
	Today(ctx context.Context, uid string) (*Focus, error)
}
