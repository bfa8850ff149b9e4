package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/pkg/apperr"
	"mycolab/pkg/focus/service"
)

type stubFocus struct {
	uid string
	err error
}

func (s *stubFocus) Today(_ context.Context, uid string) (*service.Focus, error) {
	s.uid = uid
	if s.err != nil {
		return nil, s.err
	}
	return &service.Focus{Date: "2025-06-20", Timezone: "UTC", Total: 1, Tasks: []service.Task{
		{Kind: service.KindRestock, Priority: service.Medium, Title: "Restock: Rye", EntityType: "inventory", EntityID: 3, DueDate: "2025-06-20"},
	}}, nil
}

func TestFocusCtrl(t *testing.T) {
	e := echo.New()

	t.Run("should render today's tasks for the caller", func(t *testing.T) {
		s := &stubFocus{}
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/focus/today", nil), rec)
		c.Set("uid", "u1")
		require.NoError(t, New(s).Today(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", s.uid)
		var body struct {
			Date  string           `json:"date"`
			Tasks []map[string]any `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Tasks, 1)
		assert.Equal(t, "restock", body.Tasks[0]["kind"])
		assert.Equal(t, "2025-06-20", body.Tasks[0]["due_date"])
		assert.NotContains(t, body.Tasks[0], "Due")
	})

	t.Run("should map service errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/focus/today", nil), rec)
		c.Set("uid", "u1")
		require.NoError(t, New(&stubFocus{err: apperr.ErrUnavailable}).Today(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
