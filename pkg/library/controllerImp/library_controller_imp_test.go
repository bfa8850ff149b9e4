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

	"mycolab/pkg/library/importer"
	"mycolab/pkg/library/repositoryImp"
	"mycolab/pkg/library/serviceImp"
	"mycolab/pkg/testutil"
)

func TestLibraryCtrl(t *testing.T) {
	e := echo.New()
	h := New(serviceImp.NewLibraryService(repositoryImp.New(testutil.OpenDB(t)), importer.New(nil, 0)))

	do := func(handler echo.HandlerFunc, method, target, body, id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if id != "" {
			c.SetParamNames("id")
			c.SetParamValues(id)
		}
		require.NoError(t, handler(c))
		return rec
	}

	t.Run("should create species and strains", func(t *testing.T) {
		rec := do(h.CreateSpecies, http.MethodPost, "/", `{"name":"Oyster","scientific_name":"Pleurotus ostreatus"}`, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		rec = do(h.CreateStrain, http.MethodPost, "/", `{"species_id":1,"name":"Blue Oyster"}`, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"blue-oyster"`)
	})

	t.Run("should embed strains in species detail", func(t *testing.T) {
		rec := do(h.GetSpecies, http.MethodGet, "/", "", "1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blue Oyster")
	})

	t.Run("should filter strains by species", func(t *testing.T) {
		rec := do(h.ListStrains, http.MethodGet, "/?species_id=2", "", "")
		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Empty(t, list)
	})

	t.Run("should answer 409 deleting a species in use", func(t *testing.T) {
		rec := do(h.DeleteSpecies, http.MethodDelete, "/", "", "1")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should answer 403 importing from a foreign domain", func(t *testing.T) {
		rec := do(h.Import, http.MethodPost, "/", `{"url":"https://example.com/oyster"}`, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
