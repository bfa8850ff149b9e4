// Package importer pulls a species description out of a reference web page.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"mycolab/pkg/apperr"
)

type Page struct {
	URL   string
	Title string
	Text  string
}

const maxRedirects = 5

var errRedirectBlocked = errors.New("redirect leaves the allow list")

type Fetcher struct {
	allow    map[string]bool
	maxBytes int64
	client   *http.Client
}

// New builds a fetcher limited to the given hosts. An empty allow list
// rejects every URL.
func New(allowed []string, maxBytes int) *Fetcher {
	allow := map[string]bool{}
	for _, h := range allowed {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	f := &Fetcher{allow: allow, maxBytes: int64(maxBytes)}
	f.client = &http.Client{Timeout: 20 * time.Second, CheckRedirect: f.checkRedirect}
	return f
}

// checkRedirect holds every hop to the same allow list as the first URL.
func (f *Fetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if !f.Allowed(req.URL.String()) {
		return fmt.Errorf("%w: %s", errRedirectBlocked, req.URL.Host)
	}
	return nil
}

func (f *Fetcher) Allowed(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	return f.allow[strings.ToLower(u.Hostname())]
}

func (f *Fetcher) Fetch(ctx context.Context, raw string) (*Page, error) {
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, apperr.Invalid("bad url %q", raw)
	}
	if !f.Allowed(raw) {
		return nil, fmt.Errorf("%w: domain not allowed", apperr.ErrForbidden)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, apperr.Invalid("bad url %q", raw)
	}
	resp, err := f.client.Do(req)
	if errors.Is(err, errRedirectBlocked) {
		return nil, fmt.Errorf("%w: %v", apperr.ErrForbidden, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", apperr.ErrUnavailable, raw, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: fetch %s: status %d", apperr.ErrUnavailable, raw, resp.StatusCode)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, apperr.Invalid("page too large")
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperr.ErrUnavailable, raw, err)
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "text/plain"):
		txt := strings.TrimSpace(cleanWhitespace(string(b)))
		return &Page{URL: raw, Title: titleFromText(txt), Text: txt}, nil
	case strings.Contains(ct, "text/html"):
	default:
		return nil, apperr.Invalid("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, apperr.Invalid("parse html: %v", err)
	}
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = cleanTitle(doc.Find("title").First().Text())
	}

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return &Page{URL: raw, Title: title, Text: cleanWhitespace(strings.Join(parts, "\n"))}, nil
}

var wsRX = regexp.MustCompile(`[ \t]*\n\s*`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

// cleanTitle drops the " - Site name" suffix most pages carry.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	for _, sep := range []string{" | ", " - "} {
		if i := strings.Index(s, sep); i > 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

func titleFromText(s string) string {
	return Clip(strings.SplitN(s, "\n", 2)[0], 120)
}

// Clip cuts s to at most n bytes without splitting a UTF-8 sequence.
func Clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
