package serviceImp

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/httpx"
	notifrepo "mycolab/pkg/notification/repositoryImp"
	notifsvc "mycolab/pkg/notification/service"
	notifimp "mycolab/pkg/notification/serviceImp"
	"mycolab/pkg/observation/repositoryImp"
	"mycolab/pkg/observation/service"
	"mycolab/pkg/storage"
	"mycolab/pkg/testutil"
)

type stubGrows map[uint]entities.Grow

func (s stubGrows) Get(uid string, id uint) (*entities.Grow, error) {
	g, ok := s[id]
	if !ok || g.UserID != uid {
		return nil, apperr.NotFound("grow")
	}
	return &g, nil
}

type stubCultures map[uint]entities.Culture

func (s stubCultures) Get(uid string, id uint) (*entities.Culture, error) {
	c, ok := s[id]
	if !ok || c.UserID != uid {
		return nil, apperr.NotFound("culture")
	}
	return &c, nil
}

// 1x1 transparent PNG
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89\x00\x00\x00\rIDATx\x9cc\x00\x01\x00\x00\x05\x00\x01\r\n-\xb4\x00\x00\x00\x00IEND\xaeB`\x82")

type fixture struct {
	svc   *observationSvc
	notes notifsvc.NotificationService
	dir   string
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	dir := t.TempDir()
	notes := notifimp.NewNotificationService(notifrepo.New(db))
	grows := stubGrows{
		1: {GrowID: 1, UserID: "u1", Name: "Tub 1", Stage: "colonization"},
		2: {GrowID: 2, UserID: "u1", Name: "Done tub", Stage: "completed"},
	}
	cultures := stubCultures{3: {CultureID: 3, UserID: "u1", Label: "LC-3", Status: entities.CultureActive}}
	s := NewObservationService(repositoryImp.New(db), grows, cultures, notes, storage.NewLocal(dir, "http://localhost:8080"), nil).(*observationSvc)
	s.now = func() time.Time { return time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC) }
	return fixture{svc: s, notes: notes, dir: dir}
}

func TestCreate(t *testing.T) {
	t.Run("should attach to exactly one parent", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.Create("u1", service.ObservationInput{})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		_, err = f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1)), CultureID: httpx.Ptr(uint(3))})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		_, err = f.svc.Create("u2", service.ObservationInput{GrowID: httpx.Ptr(uint(1))})
		assert.True(t, errors.Is(err, apperr.ErrNotFound))

		o, err := f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1)), HumidityPct: httpx.Ptr(92.0)})
		require.NoError(t, err)
		assert.Equal(t, "general", o.Kind)
		assert.Equal(t, 5, o.ObservedAt.Day())
	})

	t.Run("should notify on contamination of an active grow", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1)), Kind: "contamination", Note: "green spots"})
		require.NoError(t, err)
		list, err := f.notes.List("u1", true)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, notifsvc.TopicContamination, list[0].Topic)
		assert.Contains(t, list[0].Body, "green spots")
	})

	t.Run("should not notify for a finished grow", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(2)), Kind: "contamination"})
		require.NoError(t, err)
		n, err := f.notes.UnreadCount("u1")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("should notify for an active culture", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.Create("u1", service.ObservationInput{CultureID: httpx.Ptr(uint(3)), Kind: "contamination"})
		require.NoError(t, err)
		n, err := f.notes.UnreadCount("u1")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
}

func TestListUpdateDelete(t *testing.T) {
	f := setup(t)
	a, err := f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1)), ObservedAt: "2025-05-01"})
	require.NoError(t, err)
	_, err = f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1)), ObservedAt: "2025-05-03"})
	require.NoError(t, err)
	_, err = f.svc.Create("u1", service.ObservationInput{CultureID: httpx.Ptr(uint(3))})
	require.NoError(t, err)

	list, err := f.svc.List("u1", httpx.Ptr(uint(1)), nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].ObservedAt.Day())

	up, err := f.svc.Update("u1", a.ObservationID, service.ObservationPatch{Kind: httpx.Ptr("pinning"), Note: httpx.Ptr("first pins")})
	require.NoError(t, err)
	assert.Equal(t, "pinning", up.Kind)
	assert.Equal(t, "first pins", up.Note)

	latest, err := f.svc.r.LatestPerGrow("u1")
	require.NoError(t, err)
	assert.Equal(t, 3, latest[1].Day())

	require.NoError(t, f.svc.Delete("u1", a.ObservationID))
	assert.True(t, errors.Is(f.svc.Delete("u1", a.ObservationID), apperr.ErrNotFound))
}

func TestUploadPhoto(t *testing.T) {
	t.Run("should store an image and keep its url", func(t *testing.T) {
		f := setup(t)
		o, err := f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1))})
		require.NoError(t, err)

		got, err := f.svc.UploadPhoto(context.Background(), "u1", o.ObservationID, service.Photo{
			Filename: "pins.png", Size: int64(len(pngBytes)), Body: bytes.NewReader(pngBytes),
		})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(got.PhotoURL, "http://localhost:8080/uploads/u1/"))
		rel := strings.TrimPrefix(got.PhotoURL, "http://localhost:8080/uploads/")
		_, err = os.Stat(filepath.Join(f.dir, filepath.FromSlash(rel)))
		assert.NoError(t, err)
	})

	t.Run("should reject non images", func(t *testing.T) {
		f := setup(t)
		o, err := f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1))})
		require.NoError(t, err)
		_, err = f.svc.UploadPhoto(context.Background(), "u1", o.ObservationID, service.Photo{
			Filename: "notes.txt", ContentType: "text/plain", Body: strings.NewReader("hello"),
		})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("should reject oversized photos", func(t *testing.T) {
		f := setup(t)
		o, err := f.svc.Create("u1", service.ObservationInput{GrowID: httpx.Ptr(uint(1))})
		require.NoError(t, err)
		big := bytes.Repeat([]byte{0}, service.MaxPhotoBytes+1)
		_, err = f.svc.UploadPhoto(context.Background(), "u1", o.ObservationID, service.Photo{
			Filename: "big.png", ContentType: "image/png", Body: bytes.NewReader(big),
		})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}
