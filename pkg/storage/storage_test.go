package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	k := ObjectKey("u1", "Tub Photo.JPG")
	assert.True(t, strings.HasPrefix(k, "u1/"))
	assert.True(t, strings.HasSuffix(k, ".jpg"))
	assert.NotEqual(t, k, ObjectKey("u1", "Tub Photo.JPG"))
	assert.False(t, strings.Contains(ObjectKey("u1", "x.verylongext"), "."))

	k = ObjectKey("Ann Lee/../x", "p.png")
	assert.True(t, strings.HasPrefix(k, "ann-lee-x/"), k)
	assert.NotContains(t, k, "%")
	assert.True(t, strings.HasPrefix(ObjectKey("???", "p.png"), "u-"))
}

func TestLocalUploadIsServed(t *testing.T) {
	dir := t.TempDir()
	url, err := NewLocal(dir, "http://test").Put(context.Background(), ObjectKey("grower one", "tub.png"), "image/png", strings.NewReader("png"))
	require.NoError(t, err)

	e := echo.New()
	e.Static("/uploads", dir)
	req := httptest.NewRequest(http.MethodGet, strings.TrimPrefix(url, "http://test"), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())
}

func TestHTTPBucket(t *testing.T) {
	var path, auth, ct, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, auth, ct = r.URL.Path, r.Header.Get("Authorization"), r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	url, err := NewHTTP(srv.URL+"/", "secret", "photos").Put(context.Background(), "u1/a.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "/object/photos/u1/a.png", path)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, "png", body)
	assert.Equal(t, srv.URL+"/object/public/photos/u1/a.png", url)
}

func TestHTTPBucketError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()
	_, err := NewHTTP(srv.URL, "", "photos").Put(context.Background(), "k", "image/png", strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestLocalBucket(t *testing.T) {
	dir := t.TempDir()
	url, err := NewLocal(dir, "http://localhost:8080/").Put(context.Background(), "u1/../../x.png", "image/png", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/x.png", url)
	b, err := os.ReadFile(filepath.Join(dir, "x.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}
