package serviceImp

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mycolab/entities"
	"mycolab/pkg/apperr"
	libsvc "mycolab/pkg/library/service"
	"mycolab/pkg/mailer"
	notifsvc "mycolab/pkg/notification/service"
	repo "mycolab/pkg/suggestion/repository"
	"mycolab/pkg/suggestion/service"
	"mycolab/pkg/validate"
)

// Library is the part of the library service approvals write through.
type Library interface {
	GetSpecies(id uint) (*entities.Species, error)
	CreateSpecies(in libsvc.SpeciesInput) (*entities.Species, error)
	UpdateSpecies(id uint, in libsvc.SpeciesInput) (*entities.Species, error)
	GetStrain(id uint) (*entities.Strain, error)
	CreateStrain(in libsvc.StrainInput) (*entities.Strain, error)
	UpdateStrain(id uint, in libsvc.StrainInput) (*entities.Strain, error)
}

type Notifier interface {
	Notify(uid, topic, title, body string) (*entities.Notification, error)
}

type Profiles interface {
	GetProfile(uid string) (*entities.UserProfile, error)
	GetSettings(uid string) (*entities.AppSettings, error)
}

type AsyncMailer interface {
	SendAsync(msg mailer.Message)
}

type suggestionSvc struct {
	r        repo.SuggestionRepository
	library  Library
	notify   Notifier
	profiles Profiles
	mail     AsyncMailer
	now      func() time.Time
}

func NewSuggestionService(r repo.SuggestionRepository, library Library, notify Notifier, profiles Profiles, mail AsyncMailer) service.SuggestionService {
	return &suggestionSvc{r: r, library: library, notify: notify, profiles: profiles, mail: mail, now: time.Now}
}

func (s *suggestionSvc) Submit(uid string, in service.SuggestionInput) (*entities.Suggestion, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.ProposedName)
	switch in.Kind {
	case entities.SuggestionNewSpecies:
		if name == "" {
			return nil, apperr.Invalid("a new species needs a proposed name")
		}
	case entities.SuggestionNewStrain:
		if in.SpeciesID == nil || name == "" {
			return nil, apperr.Invalid("a new strain needs a species and a proposed name")
		}
		if _, err := s.library.GetSpecies(*in.SpeciesID); err != nil {
			return nil, err
		}
	case entities.SuggestionCorrection:
		if in.SpeciesID == nil && in.StrainID == nil {
			return nil, apperr.Invalid("a correction needs a species or strain to correct")
		}
		if name == "" && strings.TrimSpace(in.ProposedScientificName) == "" && strings.TrimSpace(in.ProposedDescription) == "" {
			return nil, apperr.Invalid("a correction needs at least one proposed change")
		}
		if in.StrainID != nil {
			if _, err := s.library.GetStrain(*in.StrainID); err != nil {
				return nil, err
			}
		} else if _, err := s.library.GetSpecies(*in.SpeciesID); err != nil {
			return nil, err
		}
	}
	sg := &entities.Suggestion{
		SubmitterID:            uid,
		Kind:                   in.Kind,
		SpeciesID:              in.SpeciesID,
		StrainID:               in.StrainID,
		ProposedName:           name,
		ProposedScientificName: strings.TrimSpace(in.ProposedScientificName),
		ProposedDescription:    strings.TrimSpace(in.ProposedDescription),
		Rationale:              strings.TrimSpace(in.Rationale),
		Status:                 entities.SuggestionPending,
	}
	if err := s.r.Create(sg); err != nil {
		return nil, err
	}
	return sg, nil
}

func (s *suggestionSvc) Mine(uid string) ([]entities.Suggestion, error) {
	return s.r.ListBySubmitter(uid)
}

func (s *suggestionSvc) Withdraw(uid string, id uint) error {
	if err := s.r.DeletePending(id, uid); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return fmt.Errorf("%w: suggestion %d was already reviewed", apperr.ErrConflict, id)
		}
		return err
	}
	return nil
}

func (s *suggestionSvc) Queue(status string) ([]entities.Suggestion, error) {
	switch status {
	case "", entities.SuggestionPending, entities.SuggestionApproved, entities.SuggestionRejected:
	default:
		return nil, apperr.Invalid("unknown status %q", status)
	}
	return s.r.Queue(status)
}

// claim marks the suggestion reviewed; only one reviewer can win.
func (s *suggestionSvc) claim(reviewer string, id uint, status string, in service.ReviewInput) (*entities.Suggestion, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if _, err := s.r.FindByID(id); err != nil {
		return nil, err
	}
	ok, err := s.r.Claim(id, status, reviewer, strings.TrimSpace(in.Note), s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: suggestion %d is not pending", apperr.ErrConflict, id)
	}
	return s.r.FindByID(id)
}

func (s *suggestionSvc) Approve(reviewer string, id uint, in service.ReviewInput) (*entities.Suggestion, error) {
	sg, err := s.claim(reviewer, id, entities.SuggestionApproved, in)
	if err != nil {
		return nil, err
	}
	if err := s.apply(sg); err != nil {
		if rerr := s.r.Release(id); rerr != nil {
			slog.Error("release suggestion after failed approval", "suggestion_id", id, "err", rerr)
		}
		return nil, err
	}
	if err := s.r.Save(sg); err != nil {
		return nil, err
	}
	s.announce(sg)
	return sg, nil
}

func (s *suggestionSvc) Reject(reviewer string, id uint, in service.ReviewInput) (*entities.Suggestion, error) {
	sg, err := s.claim(reviewer, id, entities.SuggestionRejected, in)
	if err != nil {
		return nil, err
	}
	s.announce(sg)
	return sg, nil
}

// apply writes an approved suggestion into the library and links the
// created or corrected record.
func (s *suggestionSvc) apply(sg *entities.Suggestion) error {
	switch sg.Kind {
	case entities.SuggestionNewSpecies:
		sp, err := s.library.CreateSpecies(libsvc.SpeciesInput{
			Name:           sg.ProposedName,
			ScientificName: sg.ProposedScientificName,
			Description:    sg.ProposedDescription,
		})
		if err != nil {
			return err
		}
		sg.SpeciesID = &sp.SpeciesID
	case entities.SuggestionNewStrain:
		st, err := s.library.CreateStrain(libsvc.StrainInput{
			SpeciesID:   *sg.SpeciesID,
			Name:        sg.ProposedName,
			Description: sg.ProposedDescription,
		})
		if err != nil {
			return err
		}
		sg.StrainID = &st.StrainID
	case entities.SuggestionCorrection:
		if sg.StrainID != nil {
			st, err := s.library.GetStrain(*sg.StrainID)
			if err != nil {
				return err
			}
			in := libsvc.StrainInput{
				SpeciesID:        st.SpeciesID,
				Name:             pick(sg.ProposedName, st.Name),
				Description:      pick(sg.ProposedDescription, st.Description),
				ColonizationDays: st.ColonizationDays,
				FruitingDays:     st.FruitingDays,
			}
			_, err = s.library.UpdateStrain(st.StrainID, in)
			return err
		}
		sp, err := s.library.GetSpecies(*sg.SpeciesID)
		if err != nil {
			return err
		}
		_, err = s.library.UpdateSpecies(sp.SpeciesID, libsvc.SpeciesInput{
			Name:           pick(sg.ProposedName, sp.Name),
			ScientificName: pick(sg.ProposedScientificName, sp.ScientificName),
			Description:    pick(sg.ProposedDescription, sp.Description),
			SourceURL:      sp.SourceURL,
		})
		return err
	default:
		return apperr.Invalid("unknown suggestion kind %q", sg.Kind)
	}
	return nil
}

func pick(proposed, current string) string {
	if proposed != "" {
		return proposed
	}
	return current
}

// announce tells the submitter about the outcome. Failures are logged only.
func (s *suggestionSvc) announce(sg *entities.Suggestion) {
	subject := fmt.Sprintf("Your suggestion %q was %s", label(sg), sg.Status)
	body := subject + "."
	if sg.ReviewNote != "" {
		body += "\n\nReviewer note: " + sg.ReviewNote
	}
	if s.notify != nil {
		if _, err := s.notify.Notify(sg.SubmitterID, notifsvc.TopicSuggestion, subject, body); err != nil {
			slog.Warn("suggestion notification failed", "suggestion_id", sg.SuggestionID, "err", err)
		}
	}
	if s.mail == nil || s.profiles == nil {
		return
	}
	settings, err := s.profiles.GetSettings(sg.SubmitterID)
	if err != nil {
		slog.Warn("load settings for suggestion email", "uid", sg.SubmitterID, "err", err)
		return
	}
	if !settings.EmailNotifications {
		return
	}
	prof, err := s.profiles.GetProfile(sg.SubmitterID)
	if err != nil || prof.Email == "" {
		return
	}
	s.mail.SendAsync(mailer.Message{To: prof.Email, Subject: "MycoLab: " + subject, Text: body})
}

func label(sg *entities.Suggestion) string {
	if sg.ProposedName != "" {
		return sg.ProposedName
	}
	return strings.ReplaceAll(sg.Kind, "_", " ")
}
