// Package storage uploads user photos to an object bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type Bucket interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// ObjectKey builds "<user>/<uuid><ext>" keeping only a short lowercase
// extension of the original file name. The user segment needs no escaping
// on disk or in a URL.
func ObjectKey(uid, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 6 || strings.ContainsAny(ext, `/\ %?#`) {
		ext = ""
	}
	return userDir(uid) + "/" + uuid.NewString() + ext
}

func userDir(uid string) string {
	if s := slug.Make(uid); s != "" && len(s) <= 64 {
		return s
	}
	sum := sha256.Sum256([]byte(uid))
	return "u-" + hex.EncodeToString(sum[:8])
}

type httpBucket struct {
	endpoint string
	key      string
	bucket   string
	client   *http.Client
}

func NewHTTP(endpoint, key, bucket string) Bucket {
	return &httpBucket{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		bucket:   bucket,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (b *httpBucket) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	target := fmt.Sprintf("%s/object/%s/%s", b.endpoint, b.bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, r)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")
	if b.key != "" {
		req.Header.Set("Authorization", "Bearer "+b.key)
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload %s: status %d: %s", key, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return fmt.Sprintf("%s/object/public/%s/%s", b.endpoint, b.bucket, key), nil
}

type localBucket struct {
	dir     string
	baseURL string
}

// NewLocal stores objects under dir; they are served at baseURL + "/uploads/".
func NewLocal(dir, baseURL string) Bucket {
	return &localBucket{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (b *localBucket) Put(ctx context.Context, key, _ string, r io.Reader) (string, error) {
	clean := filepath.Clean("/" + key)
	dst := filepath.Join(b.dir, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return b.baseURL + "/uploads" + filepath.ToSlash(clean), nil
}
