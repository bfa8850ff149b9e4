package controllerImp

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/observation/repositoryImp"
	"mycolab/pkg/observation/serviceImp"
	"mycolab/pkg/storage"
	"mycolab/pkg/testutil"
)

type oneGrow struct{}

func (oneGrow) Get(uid string, id uint) (*entities.Grow, error) {
	if id != 1 {
		return nil, apperr.NotFound("grow")
	}
	return &entities.Grow{GrowID: 1, UserID: uid, Stage: "fruiting"}, nil
}

type noCultures struct{}

func (noCultures) Get(string, uint) (*entities.Culture, error) { return nil, apperr.NotFound("culture") }

func TestObservationCtrl(t *testing.T) {
	e := echo.New()
	svc := serviceImp.NewObservationService(repositoryImp.New(testutil.OpenDB(t)), oneGrow{}, noCultures{}, nil, storage.NewLocal(t.TempDir(), ""), nil)
	h := New(svc)

	ctx := func(req *http.Request, id string) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("uid", "u1")
		if id != "" {
			c.SetParamNames("id")
			c.SetParamValues(id)
		}
		return c, rec
	}
	jsonReq := func(method, target, body string) *http.Request {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return req
	}

	t.Run("should create and list by grow", func(t *testing.T) {
		c, rec := ctx(jsonReq(http.MethodPost, "/", `{"grow_id":1,"kind":"pinning","note":"pins!"}`), "")
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		c, rec = ctx(jsonReq(http.MethodGet, "/?grow_id=1", ""), "")
		require.NoError(t, h.List(c))
		assert.Contains(t, rec.Body.String(), "pins!")
	})

	t.Run("should answer 404 for a foreign culture", func(t *testing.T) {
		c, rec := ctx(jsonReq(http.MethodPost, "/", `{"culture_id":9}`), "")
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should require the photo field", func(t *testing.T) {
		c, rec := ctx(jsonReq(http.MethodPost, "/", `{}`), "1")
		require.NoError(t, h.UploadPhoto(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should accept a multipart image", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="photo"; filename="pins.jpg"`)
		hdr.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("\xff\xd8\xff\xe0 fake jpeg"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &body)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		c, rec := ctx(req, "1")
		require.NoError(t, h.UploadPhoto(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"photo_url":"/uploads/u1/`)
	})
}
