package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/ai"
	"mycolab/pkg/apperr"
	repo "mycolab/pkg/chat/repository"
	"mycolab/pkg/chat/service"
	"mycolab/pkg/dates"
	growsvc "mycolab/pkg/grow/service"
	"mycolab/pkg/lifecycle"
	"mycolab/pkg/validate"
)

type growSource interface {
	Get(uid string, id uint) (*entities.Grow, error)
	List(uid string, stage string, includeArchived bool) ([]entities.Grow, error)
	Stats(uid string, id uint) (*growsvc.GrowStats, error)
}

type observationSource interface {
	List(uid string, growID, cultureID *uint) ([]entities.Observation, error)
}

type strainSource interface {
	GetStrain(id uint) (*entities.Strain, error)
}

const summaryObservations = 10

type chatSvc struct {
	r       repo.ChatRepository
	llm     ai.Client
	grows   growSource
	obs     observationSource
	strains strainSource
	zones   dates.Zones
	limit   *userLimiter
	now     func() time.Time
}

func NewChatService(r repo.ChatRepository, llm ai.Client, grows growSource, obs observationSource, strains strainSource, zones dates.Zones, ratePerMin int) service.ChatService {
	if zones == nil {
		zones = dates.Fixed(nil)
	}
	return &chatSvc{r: r, llm: llm, grows: grows, obs: obs, strains: strains, zones: zones, limit: newUserLimiter(ratePerMin), now: time.Now}
}

func (s *chatSvc) Send(ctx context.Context, uid string, in service.ChatInput) (*entities.ChatMessage, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(in.Message)
	if text == "" {
		return nil, apperr.Invalid("message is empty")
	}
	if !s.limit.allow(uid) {
		return nil, fmt.Errorf("%w: too many chat messages, try again in a minute", apperr.ErrRateLimited)
	}

	history, err := s.r.Recent(uid, service.HistoryLimit)
	if err != nil {
		return nil, err
	}
	msgs := make([]ai.Message, 0, len(history)+2)
	if gc := s.growContext(uid); gc != "" {
		msgs = append(msgs, ai.Message{Role: "system", Content: gc})
	}
	for _, m := range history {
		msgs = append(msgs, ai.Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, ai.Message{Role: "user", Content: text})

	asked := s.now()
	reply, err := s.llm.Chat(ctx, msgs)
	if err != nil {
		return nil, err
	}
	user := &entities.ChatMessage{UserID: uid, Role: "user", Content: text, CreatedAt: asked}
	answer := &entities.ChatMessage{UserID: uid, Role: "assistant", Content: reply, CreatedAt: s.now()}
	if !answer.CreatedAt.After(asked) {
		answer.CreatedAt = asked.Add(time.Millisecond)
	}
	if err := s.r.Create(user, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// growContext lists the active grows so the model can refer to them.
func (s *chatSvc) growContext(uid string) string {
	if s.grows == nil {
		return ""
	}
	grows, err := s.grows.List(uid, "", false)
	if err != nil || len(grows) == 0 {
		return ""
	}
	now, loc := s.now(), s.zones.Location(uid)
	var b strings.Builder
	b.WriteString("The grower's current grows:\n")
	n := 0
	for _, g := range grows {
		if !lifecycle.IsActive(lifecycle.Stage(g.Stage)) {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s for %d days", g.Name, g.Stage, dates.DaysBetween(g.StageChangedAt, now, loc))
		if name := s.strainName(g.StrainID); name != "" {
			fmt.Fprintf(&b, " (%s)", name)
		}
		b.WriteString("\n")
		n++
	}
	if n == 0 {
		return ""
	}
	return b.String()
}

func (s *chatSvc) strainName(id *uint) string {
	if id == nil || s.strains == nil {
		return ""
	}
	st, err := s.strains.GetStrain(*id)
	if err != nil {
		return ""
	}
	return st.Name
}

func (s *chatSvc) History(uid string) ([]entities.ChatMessage, error) {
	out, err := s.r.Recent(uid, service.HistoryLimit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.ChatMessage{}
	}
	return out, nil
}

func (s *chatSvc) ClearHistory(uid string) (int64, error) { return s.r.DeleteAll(uid) }

func (s *chatSvc) SummarizeGrow(ctx context.Context, uid string, growID uint) (*service.GrowSummary, error) {
	g, err := s.grows.Get(uid, growID)
	if err != nil {
		return nil, err
	}
	st, err := s.grows.Stats(uid, growID)
	if err != nil {
		return nil, err
	}
	d := ai.GrowDigest{
		Name:        g.Name,
		Strain:      s.strainName(g.StrainID),
		Stage:       g.Stage,
		DaysActive:  st.DaysActive,
		DaysInStage: dates.DaysBetween(g.StageChangedAt, s.now(), s.zones.Location(uid)),
		Flushes:     st.FlushCount,
		TotalWetG:   st.TotalWetG,
		BEPercent:   st.BEPercent,
	}
	if s.obs != nil {
		obs, err := s.obs.List(uid, &growID, nil)
		if err != nil {
			return nil, err
		}
		for i, o := range obs {
			if i == summaryObservations {
				break
			}
			d.Observations = append(d.Observations, describeObservation(o))
		}
	}
	return &service.GrowSummary{GrowID: growID, Summary: s.llm.SummarizeGrow(ctx, d)}, nil
}

func describeObservation(o entities.Observation) string {
	parts := []string{o.ObservedAt.Format(dates.Layout), o.Kind}
	if o.TemperatureC != nil {
		parts = append(parts, fmt.Sprintf("%.1f°C", *o.TemperatureC))
	}
	if o.HumidityPct != nil {
		parts = append(parts, fmt.Sprintf("%.0f%% RH", *o.HumidityPct))
	}
	if n := strings.TrimSpace(o.Note); n != "" {
		parts = append(parts, n)
	}
	return strings.Join(parts, ", ")
}
