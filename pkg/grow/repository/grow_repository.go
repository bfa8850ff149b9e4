package repository

import "mycolab/entities"

type GrowFilter struct {
	Stage           string
	IncludeArchived bool
}

type GrowRepository interface {
	Create(g *entities.Grow) error
	Save(g *entities.Grow) error
	FindByID(id uint, uid string) (*entities.Grow, error)
	List(uid string, f GrowFilter) ([]entities.Grow, error)
	Delete(id uint, uid string) error

	AddEvent(ev *entities.GrowStageEvent) error
	Events(growID uint) ([]entities.GrowStageEvent, error)

	CreateFlush(f *entities.Flush) error
	Flushes(growID uint) ([]entities.Flush, error)
	FlushesFor(growIDs []uint) ([]entities.Flush, error)
	MaxFlushNumber(growID uint) (int, error)
	FindFlush(flushID uint, uid string) (*entities.Flush, error)
	DeleteFlush(flushID uint) error

	// WithTx runs fn against a repository bound to one transaction.
	WithTx(fn func(GrowRepository) error) error
}
