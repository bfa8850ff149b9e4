package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/pkg/apperr"
)

func llmServer(t *testing.T, status int, reply string) (*httptest.Server, *[]Message) {
	t.Helper()
	var got []Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		var body struct {
			Messages []Message `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		got = body.Messages
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": reply}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestOpenAIChat(t *testing.T) {
	t.Run("should prepend the system prompt", func(t *testing.T) {
		srv, got := llmServer(t, http.StatusOK, "  Keep humidity high.  ")
		out, err := NewOpenAI(srv.URL+"/", "k", "m").Chat(context.Background(), []Message{{Role: "user", Content: "pins?"}})
		require.NoError(t, err)
		assert.Equal(t, "Keep humidity high.", out)
		require.Len(t, *got, 2)
		assert.Equal(t, "system", (*got)[0].Role)
	})

	t.Run("should report upstream failures as unavailable", func(t *testing.T) {
		srv, _ := llmServer(t, http.StatusBadGateway, "")
		_, err := NewOpenAI(srv.URL, "k", "m").Chat(context.Background(), []Message{{Role: "user", Content: "x"}})
		assert.True(t, errors.Is(err, apperr.ErrUnavailable))
	})
}

func TestSummarizeGrow(t *testing.T) {
	g := GrowDigest{Name: "Tub 1", Stage: "fruiting", DaysInStage: 3, DaysActive: 24, Flushes: 1, TotalWetG: 320}

	t.Run("should fall back when the model fails", func(t *testing.T) {
		srv, _ := llmServer(t, http.StatusInternalServerError, "")
		out := NewOpenAI(srv.URL, "k", "m").SummarizeGrow(context.Background(), g)
		assert.Equal(t, FallbackSummary(g), out)
		assert.Contains(t, out, "Harvested 1 flushes, 320 g wet")
	})

	t.Run("should use the model reply", func(t *testing.T) {
		srv, got := llmServer(t, http.StatusOK, "- doing fine")
		out := NewOpenAI(srv.URL, "k", "m").SummarizeGrow(context.Background(), g)
		assert.Equal(t, "- doing fine", out)
		assert.Contains(t, (*got)[1].Content, "STAGE: fruiting")
	})
}

func TestMockChat(t *testing.T) {
	out, err := NewMock().Chat(context.Background(), []Message{{Role: "user", Content: "I see green mold"}})
	require.NoError(t, err)
	assert.Contains(t, out, "contaminated")
}
