// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
	"strings"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Chat(_ context.Context, msgs []Message) (string, error) {
	last := ""
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == "user" {
			last = msgs[i].Content
			break
		}
	}
	q := strings.ToLower(last)
	switch {
	case strings.Contains(q, "contam") || strings.Contains(q, "mold") || strings.Contains(q, "green"):
		return "Isolate the container, check for green or black patches and a sour smell. If confirmed, move the grow to contaminated and sterilise the area. (mock)", nil
	case strings.Contains(q, "pin"):
		return "Raise fresh air exchange, keep humidity around 90% and give indirect light to trigger pinning. (mock)", nil
	}
	return fmt.Sprintf("I can help with your grows. You asked: %q (mock)", strings.TrimSpace(last)), nil
}

func (m *mockClient) SummarizeGrow(_ context.Context, g GrowDigest) string {
	return FallbackSummary(g)
}
