package repository

import (
	"time"

	"mycolab/entities"
)

type SuggestionRepository interface {
	Create(s *entities.Suggestion) error
	Save(s *entities.Suggestion) error
	FindByID(id uint) (*entities.Suggestion, error)
	ListBySubmitter(uid string) ([]entities.Suggestion, error)
	// Queue lists suggestions pending first, oldest first; status filters when set.
	Queue(status string) ([]entities.Suggestion, error)
	// Claim moves a pending suggestion to status and reports whether it was
	// still pending.
	Claim(id uint, status, reviewer, note string, at time.Time) (bool, error)
	Release(id uint) error
	DeletePending(id uint, uid string) error
}
