package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMailer(t *testing.T) {
	t.Run("should post json with bearer auth", func(t *testing.T) {
		var got map[string]string
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		m := New(srv.URL, "k1", "noreply@mycolab.local")
		require.NoError(t, m.Send(context.Background(), Message{To: "a@b.c", Subject: "Hi", Text: "body"}))
		assert.Equal(t, "Bearer k1", auth)
		assert.Equal(t, "a@b.c", got["to"])
		assert.Equal(t, "noreply@mycolab.local", got["from"])
	})

	t.Run("should fail on non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota", http.StatusTooManyRequests)
		}))
		defer srv.Close()
		err := New(srv.URL, "", "x").Send(context.Background(), Message{To: "a@b.c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("should fall back to logging when unconfigured", func(t *testing.T) {
		assert.IsType(t, logMailer{}, New("", "", ""))
		assert.NoError(t, New("", "", "").Send(context.Background(), Message{To: "a@b.c"}))
	})
}

type countingMailer struct{ n atomic.Int32 }

func (c *countingMailer) Send(ctx context.Context, _ Message) error {
	c.n.Add(1)
	return context.DeadlineExceeded
}

func TestDispatcher(t *testing.T) {
	m := &countingMailer{}
	d := NewDispatcher(m, time.Second)
	d.SendAsync(Message{To: "a@b.c"})
	d.SendAsync(Message{To: "d@e.f"})
	d.Wait()
	assert.EqualValues(t, 2, m.n.Load())
}
