package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/entities"
	"mycolab/pkg/grow/repositoryImp"
	"mycolab/pkg/grow/serviceImp"
	"mycolab/pkg/testutil"
)

func call(t *testing.T, handler echo.HandlerFunc, method, body string, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	require.NoError(t, handler(c))
	return rec
}

func TestGrowCtrl(t *testing.T) {
	h := New(serviceImp.NewGrowService(repositoryImp.New(testutil.OpenDB(t)), nil, nil, nil))

	rec := call(t, h.Create, http.MethodPost, `{"name":"Tub 1","substrate":"CVG","substrate_dry_weight_g":500}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var g entities.Grow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))

	t.Run("should answer 409 on an illegal move", func(t *testing.T) {
		rec := call(t, h.ChangeStage, http.MethodPost, `{"stage":"completed"}`, "1")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "spawning -> completed")
	})

	t.Run("should advance", func(t *testing.T) {
		rec := call(t, h.Advance, http.MethodPost, "", "1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"stage":"colonization"`)
	})

	t.Run("should answer 400 for a flush before fruiting", func(t *testing.T) {
		rec := call(t, h.AddFlush, http.MethodPost, `{"wet_weight_g":120}`, "1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should record a flush once fruiting", func(t *testing.T) {
		call(t, h.Advance, http.MethodPost, "", "1")
		rec := call(t, h.AddFlush, http.MethodPost, `{"wet_weight_g":250}`, "1")
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = call(t, h.Stats, http.MethodGet, "", "1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"biological_efficiency_pct":50`)
	})

	t.Run("should render every board column", func(t *testing.T) {
		rec := call(t, h.Board, http.MethodGet, "", "")
		var body struct {
			Columns []struct {
				Stage string          `json:"stage"`
				Grows []entities.Grow `json:"grows"`
			} `json:"columns"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Columns, 7)
		assert.Equal(t, "harvesting", body.Columns[3].Stage)
		assert.Len(t, body.Columns[3].Grows, 1)
	})

	t.Run("should reject a bad id", func(t *testing.T) {
		rec := call(t, h.Get, http.MethodGet, "", "abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
