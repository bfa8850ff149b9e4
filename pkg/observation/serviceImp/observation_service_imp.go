package serviceImp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	"mycolab/pkg/dates"
	"mycolab/pkg/lifecycle"
	notifsvc "mycolab/pkg/notification/service"
	repo "mycolab/pkg/observation/repository"
	"mycolab/pkg/observation/service"
	"mycolab/pkg/storage"
	"mycolab/pkg/validate"
)

const kindContamination = "contamination"

type growLookup interface {
	Get(uid string, id uint) (*entities.Grow, error)
}

type cultureLookup interface {
	Get(uid string, id uint) (*entities.Culture, error)
}

type notifier interface {
	Notify(uid, topic, title, body string) (*entities.Notification, error)
}

type observationSvc struct {
	r        repo.ObservationRepository
	grows    growLookup
	cultures cultureLookup
	notify   notifier
	bucket   storage.Bucket
	zones    dates.Zones
	now      func() time.Time
}

func NewObservationService(r repo.ObservationRepository, grows growLookup, cultures cultureLookup, notify notifier, bucket storage.Bucket, zones dates.Zones) service.ObservationService {
	if zones == nil {
		zones = dates.Fixed(nil)
	}
	return &observationSvc{r: r, grows: grows, cultures: cultures, notify: notify, bucket: bucket, zones: zones, now: time.Now}
}

func (s *observationSvc) Create(uid string, in service.ObservationInput) (*entities.Observation, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if (in.GrowID == nil) == (in.CultureID == nil) {
		return nil, apperr.Invalid("an observation belongs to exactly one grow or culture")
	}
	var grow *entities.Grow
	var culture *entities.Culture
	var err error
	if in.GrowID != nil {
		if grow, err = s.grows.Get(uid, *in.GrowID); err != nil {
			return nil, err
		}
	} else if culture, err = s.cultures.Get(uid, *in.CultureID); err != nil {
		return nil, err
	}
	observed, err := dates.ParseOr(in.ObservedAt, s.now(), s.zones.Location(uid))
	if err != nil {
		return nil, err
	}
	kind := in.Kind
	if kind == "" {
		kind = "general"
	}
	o := &entities.Observation{
		UserID:       uid,
		GrowID:       in.GrowID,
		CultureID:    in.CultureID,
		ObservedAt:   observed,
		Kind:         kind,
		TemperatureC: in.TemperatureC,
		HumidityPct:  in.HumidityPct,
		Note:         strings.TrimSpace(in.Note),
	}
	if err := s.r.Create(o); err != nil {
		return nil, err
	}
	if kind == kindContamination {
		s.flagContamination(uid, o, grow, culture)
	}
	return o, nil
}

// flagContamination suggests the contaminated transition; the stage itself
// is left for the grower to change.
func (s *observationSvc) flagContamination(uid string, o *entities.Observation, grow *entities.Grow, culture *entities.Culture) {
	if s.notify == nil {
		return
	}
	var title, body string
	switch {
	case grow != nil && lifecycle.IsActive(lifecycle.Stage(grow.Stage)):
		title = fmt.Sprintf("Possible contamination on %s", grow.Name)
		body = fmt.Sprintf("You logged contamination on grow %q (stage %s). If confirmed, move it to contaminated.", grow.Name, grow.Stage)
	case culture != nil && culture.Status == entities.CultureActive:
		title = fmt.Sprintf("Possible contamination on %s", culture.Label)
		body = fmt.Sprintf("You logged contamination on culture %q. If confirmed, mark it contaminated before transferring from it.", culture.Label)
	default:
		return
	}
	if o.Note != "" {
		body += "\n\n" + o.Note
	}
	if _, err := s.notify.Notify(uid, notifsvc.TopicContamination, title, body); err != nil {
		slog.Warn("contamination notification failed", "observation_id", o.ObservationID, "err", err)
	}
}

func (s *observationSvc) List(uid string, growID, cultureID *uint) ([]entities.Observation, error) {
	return s.r.List(uid, repo.ObservationFilter{GrowID: growID, CultureID: cultureID})
}

func (s *observationSvc) Update(uid string, id uint, p service.ObservationPatch) (*entities.Observation, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	o, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if p.ObservedAt != nil {
		t, err := dates.Parse(*p.ObservedAt, s.zones.Location(uid))
		if err != nil {
			return nil, err
		}
		o.ObservedAt = t
	}
	if p.Kind != nil {
		o.Kind = *p.Kind
	}
	if p.TemperatureC != nil {
		o.TemperatureC = p.TemperatureC
	}
	if p.HumidityPct != nil {
		o.HumidityPct = p.HumidityPct
	}
	if p.Note != nil {
		o.Note = strings.TrimSpace(*p.Note)
	}
	if err := s.r.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *observationSvc) Delete(uid string, id uint) error { return s.r.Delete(id, uid) }

func (s *observationSvc) UploadPhoto(ctx context.Context, uid string, id uint, p service.Photo) (*entities.Observation, error) {
	if s.bucket == nil {
		return nil, fmt.Errorf("%w: photo storage not configured", apperr.ErrUnavailable)
	}
	o, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	if p.Size > service.MaxPhotoBytes {
		return nil, apperr.Invalid("photo exceeds %d MB", service.MaxPhotoBytes>>20)
	}
	data, err := io.ReadAll(io.LimitReader(p.Body, service.MaxPhotoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(data) > service.MaxPhotoBytes {
		return nil, apperr.Invalid("photo exceeds %d MB", service.MaxPhotoBytes>>20)
	}
	ct := strings.ToLower(strings.TrimSpace(p.ContentType))
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
	}
	if !strings.HasPrefix(ct, "image/") {
		return nil, apperr.Invalid("only images can be attached (got %s)", ct)
	}
	url, err := s.bucket.Put(ctx, storage.ObjectKey(uid, p.Filename), ct, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}
	o.PhotoURL = url
	if err := s.r.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}
