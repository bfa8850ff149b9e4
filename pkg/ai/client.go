// pkg/ai/client.go

package ai

import "context"

type Message struct {
	Role    string `json:"role"` // system|user|assistant
	Content string `json:"content"`
}

// GrowDigest is the grow context handed to the model for a summary.
type GrowDigest struct {
	Name         string
	Strain       string
	Stage        string
	DaysActive   int
	DaysInStage  int
	Flushes      int
	TotalWetG    float64
	BEPercent    *float64
	Observations []string
}

type Client interface {
	Chat(ctx context.Context, msgs []Message) (string, error)

	// SummarizeGrow never fails: on model errors it returns FallbackSummary.
	SummarizeGrow(ctx context.Context, g GrowDigest) string
}
