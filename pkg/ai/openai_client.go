// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mycolab/pkg/apperr"
)

const systemPrompt = "You are MycoLab, an experienced mushroom cultivation assistant. Answer concisely with practical steps. Use metric units unless asked otherwise."

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *openAI) complete(ctx context.Context, msgs []Message, temperature float64) (string, error) {
	type chatReq struct {
		Model       string    `json:"model"`
		Messages    []Message `json:"messages"`
		Temperature float64   `json:"temperature"`
	}
	b, err := json.Marshal(chatReq{Model: c.model, Messages: msgs, Temperature: temperature})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: llm: %v", apperr.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: llm status %d: %s", apperr.ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: llm decode: %v", apperr.ErrUnavailable, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: llm returned no choices", apperr.ErrUnavailable)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: llm returned an empty reply", apperr.ErrUnavailable)
	}
	return content, nil
}

func (c *openAI) Chat(ctx context.Context, msgs []Message) (string, error) {
	return c.complete(ctx, append([]Message{{Role: "system", Content: systemPrompt}}, msgs...), 0.4)
}

func (c *openAI) SummarizeGrow(ctx context.Context, g GrowDigest) string {
	content, err := c.complete(ctx, []Message{
		{Role: "system", Content: systemPrompt + " Write Markdown bullet points, at most 6 lines."},
		{Role: "user", Content: renderGrowPrompt(g)},
	}, 0.2)
	if err != nil {
		slog.Warn("grow summary fell back", "grow", g.Name, "err", err)
		return FallbackSummary(g)
	}
	return content
}

func renderGrowPrompt(g GrowDigest) string {
	obs := "none"
	if len(g.Observations) > 0 {
		obs = "- " + strings.Join(g.Observations, "\n- ")
	}
	return fmt.Sprintf(`Summarise this grow and say what the grower should do next.

GROW: %s
STRAIN: %s
STAGE: %s (for %d days, %d days since inoculation)
FLUSHES: %d, total %.0f g wet

RECENT OBSERVATIONS:
%s
`, g.Name, orDash(g.Strain), g.Stage, g.DaysInStage, g.DaysActive, g.Flushes, g.TotalWetG, obs)
}

// FallbackSummary is the deterministic summary used without a model.
func FallbackSummary(g GrowDigest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", g.Name)
	fmt.Fprintf(&b, "- Strain: %s\n", orDash(g.Strain))
	fmt.Fprintf(&b, "- Stage: %s for %d days (%d days since inoculation)\n", g.Stage, g.DaysInStage, g.DaysActive)
	if g.Flushes > 0 {
		fmt.Fprintf(&b, "- Harvested %d flushes, %.0f g wet", g.Flushes, g.TotalWetG)
		if g.BEPercent != nil {
			fmt.Fprintf(&b, " (BE %.0f%%)", *g.BEPercent)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- Observations logged recently: %d", len(g.Observations))
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
