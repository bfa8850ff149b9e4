package database

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"mycolab/pkg/apperr"
)

// Wrap turns gorm's record-not-found into apperr.ErrNotFound and annotates
// everything else with what was being done.
func Wrap(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what)
	}
	return pkgerrors.Wrap(err, what)
}
