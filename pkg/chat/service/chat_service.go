package service

import (
	"context"

	"mycolab/entities"
)

// HistoryLimit is how many past messages are sent to the model and listed.
const HistoryLimit = 20

type ChatService interface {
	Send(ctx context.Context, uid string, in ChatInput) (*entities.ChatMessage, error)
	History(uid string) ([]entities.ChatMessage, error)
	ClearHistory(uid string) (int64, error)
	SummarizeGrow(ctx context.Context, uid string, growID uint) (*GrowSummary, error)
}

type ChatInput struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type GrowSummary struct {
	GrowID  uint   `json:"grow_id"`
	Summary string `json:"summary_md"`
}
