package repository

import "mycolab/entities"

type CultureRepository interface {
	Create(c *entities.Culture) error
	Save(c *entities.Culture) error
	FindByID(id uint, uid string) (*entities.Culture, error)
	List(uid string, includeArchived bool) ([]entities.Culture, error)
	Delete(id uint, uid string) error
	// WithTx runs fn against a repository bound to one transaction.
	WithTx(fn func(CultureRepository) error) error
}
