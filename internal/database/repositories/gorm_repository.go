package repositories

import (
	"errors"

	"gorm.io/gorm"
)

type Tabler interface {
	TableName() string
}

// gormRepository implements the CRUD surface shared by every entity
// repository. It holds no validation logic - business constraints live in
// the service layer.
type gormRepository[T Tabler] struct {
	db *gorm.DB
}

func newGormRepository[T Tabler](db *gorm.DB) gormRepository[T] {
	return gormRepository[T]{db: db}
}

func (g *gormRepository[T]) All() ([]T, error) {
	var ts []T
	err := g.db.Find(&ts).Error
	return ts, err
}

// GetByID returns nil without an error when the id does not exist.
func (g *gormRepository[T]) GetByID(id uint) (*T, error) {
	var t T
	err := g.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *gormRepository[T]) Create(t *T) error {
	return g.db.Create(t).Error
}

func (g *gormRepository[T]) Save(t *T) error {
	return g.db.Save(t).Error
}

func (g *gormRepository[T]) Delete(t *T) error {
	return g.db.Delete(t).Error
}

func (g *gormRepository[T]) Count() (int64, error) {
	var t T
	var count int64
	err := g.db.Model(&t).Count(&count).Error
	return count, err
}
