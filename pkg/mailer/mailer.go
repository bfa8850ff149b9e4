// Package mailer sends transactional email through an HTTP function.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type httpMailer struct {
	endpoint string
	key      string
	from     string
	client   *http.Client
}

// New returns the HTTP mailer, or a mailer that only logs when no endpoint is
// configured.
func New(endpoint, key, from string) Mailer {
	if strings.TrimSpace(endpoint) == "" {
		return logMailer{}
	}
	return &httpMailer{endpoint: endpoint, key: key, from: from, client: &http.Client{Timeout: 15 * time.Second}}
}

func (m *httpMailer) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("mail: empty recipient")
	}
	body, err := json.Marshal(map[string]string{
		"from":    m.from,
		"to":      msg.To,
		"subject": msg.Subject,
		"text":    msg.Text,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.key != "" {
		req.Header.Set("Authorization", "Bearer "+m.key)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}

type logMailer struct{}

func (logMailer) Send(_ context.Context, msg Message) error {
	slog.Info("mail not configured, dropping message", "to", msg.To, "subject", msg.Subject)
	return nil
}

// Dispatcher sends mail in the background. Failures are logged and never
// reach the caller.
type Dispatcher struct {
	m       Mailer
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(m Mailer, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Dispatcher{m: m, timeout: timeout}
}

func (d *Dispatcher) SendAsync(msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.m.Send(ctx, msg); err != nil {
			slog.Warn("async mail failed", "to", msg.To, "subject", msg.Subject, "err", err)
		}
	}()
}

// Wait blocks until every queued send has finished.
func (d *Dispatcher) Wait() { d.wg.Wait() }
