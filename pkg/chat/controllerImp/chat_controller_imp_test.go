package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/chat/service"
)

type stubChat struct {
	sent string
	err  error
}

func (s *stubChat) Send(_ context.Context, uid string, in service.ChatInput) (*entities.ChatMessage, error) {
	s.sent = in.Message
	if s.err != nil {
		return nil, s.err
	}
	return &entities.ChatMessage{UserID: uid, Role: "assistant", Content: "hello"}, nil
}

func (s *stubChat) History(uid string) ([]entities.ChatMessage, error) {
	return []entities.ChatMessage{{UserID: uid, Role: "user", Content: "hi"}}, nil
}

func (s *stubChat) ClearHistory(string) (int64, error) { return 4, nil }

func (s *stubChat) SummarizeGrow(_ context.Context, _ string, id uint) (*service.GrowSummary, error) {
	if id != 1 {
		return nil, apperr.NotFound("grow")
	}
	return &service.GrowSummary{GrowID: 1, Summary: "- fine"}, nil
}

func TestChatCtrl(t *testing.T) {
	e := echo.New()
	ctx := func(method, body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("uid", "u1")
		return c, rec
	}

	t.Run("should return the assistant reply", func(t *testing.T) {
		s := &stubChat{}
		c, rec := ctx(http.MethodPost, `{"message":"pins?"}`)
		require.NoError(t, New(s).Send(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pins?", s.sent)
		var body struct {
			Reply entities.ChatMessage `json:"reply"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "hello", body.Reply.Content)
	})

	t.Run("should answer 429 when rate limited", func(t *testing.T) {
		c, rec := ctx(http.MethodPost, `{"message":"again"}`)
		require.NoError(t, New(&stubChat{err: apperr.ErrRateLimited}).Send(c))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("should report how many messages were cleared", func(t *testing.T) {
		c, rec := ctx(http.MethodDelete, "")
		require.NoError(t, New(&stubChat{}).ClearHistory(c))
		assert.JSONEq(t, `{"deleted":4}`, rec.Body.String())
	})

	t.Run("should summarise a grow", func(t *testing.T) {
		c, rec := ctx(http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues("1")
		require.NoError(t, New(&stubChat{}).GrowSummary(c))
		assert.JSONEq(t, `{"grow_id":1,"summary_md":"- fine"}`, rec.Body.String())

		c, rec = ctx(http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues("2")
		require.NoError(t, New(&stubChat{}).GrowSummary(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
