package importer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/pkg/apperr"
)

const page = `<html><head><title>Lion's Mane | Fungi Wiki</title></head>
<body><nav><li>Home</li></nav>
<article><h1>Hericium erinaceus</h1>
<p>A toothed fungus growing on hardwood.</p>
<ul><li>Prefers cool fruiting temperatures</li></ul></article></body></html>`

func serve(t *testing.T, ct, body string) (*httptest.Server, string) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ct)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL)
	return srv, u.Hostname()
}

func TestFetch(t *testing.T) {
	t.Run("should extract the article text", func(t *testing.T) {
		srv, host := serve(t, "text/html; charset=utf-8", page)
		p, err := New([]string{host}, 0).Fetch(context.Background(), srv.URL+"/lions-mane")
		require.NoError(t, err)
		assert.Equal(t, "Hericium erinaceus", p.Title)
		assert.Contains(t, p.Text, "A toothed fungus growing on hardwood.")
		assert.Contains(t, p.Text, "Prefers cool fruiting temperatures")
		assert.NotContains(t, p.Text, "Home")
	})

	t.Run("should reject hosts outside the allow list", func(t *testing.T) {
		srv, _ := serve(t, "text/html", page)
		_, err := New([]string{"example.org"}, 0).Fetch(context.Background(), srv.URL)
		assert.True(t, errors.Is(err, apperr.ErrForbidden))
	})

	t.Run("should reject unsupported content", func(t *testing.T) {
		srv, host := serve(t, "application/pdf", "%PDF")
		_, err := New([]string{host}, 0).Fetch(context.Background(), srv.URL)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("should read plain text", func(t *testing.T) {
		srv, host := serve(t, "text/plain", "Oyster mushroom\r\nFast colonizer.")
		p, err := New([]string{host}, 0).Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "Oyster mushroom", p.Title)
		assert.Equal(t, "Oyster mushroom\nFast colonizer.", p.Text)
	})
}

func TestRedirects(t *testing.T) {
	var leaked bool
	inner := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		leaked = true
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Internal\nsecret"))
	}))
	t.Cleanup(inner.Close)
	innerURL, _ := url.Parse(inner.URL)
	// same listener reached under a name that is not allowed
	hidden := "http://localhost:" + innerURL.Port() + "/secret"

	outer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/start":
			http.Redirect(w, r, hidden, http.StatusFound)
		case "/moved":
			http.Redirect(w, r, "/final", http.StatusMovedPermanently)
		default:
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("Enoki\nLong stems."))
		}
	}))
	t.Cleanup(outer.Close)
	host := "127.0.0.1"

	t.Run("should refuse a redirect to a host outside the allow list", func(t *testing.T) {
		f := New([]string{host}, 0)
		require.False(t, f.Allowed(hidden))
		_, err := f.Fetch(context.Background(), outer.URL+"/start")
		assert.True(t, errors.Is(err, apperr.ErrForbidden))
		assert.False(t, leaked)
	})

	t.Run("should follow redirects that stay allowed", func(t *testing.T) {
		p, err := New([]string{host}, 0).Fetch(context.Background(), outer.URL+"/moved")
		require.NoError(t, err)
		assert.Equal(t, "Enoki", p.Title)
	})
}

func TestClip(t *testing.T) {
	s := "a" + strings.Repeat("é", 15000)
	out := Clip(s, 20000)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 19999, len(out))
	assert.Equal(t, "abc", Clip("abc", 10))
	assert.Equal(t, "", Clip("é", 1))

	long := strings.Repeat("ü", 100)
	assert.True(t, utf8.ValidString(titleFromText(long)))
	assert.Equal(t, 120, len(titleFromText(long)))
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Lion's Mane", cleanTitle(" Lion's Mane | Fungi Wiki "))
	assert.Equal(t, "Shiitake", cleanTitle("Shiitake - Growers Guide"))
}
