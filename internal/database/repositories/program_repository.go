package repositories

import (
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
)

type programRepository struct {
	db shared.DB
	gormRepository[models.Program]
}

func NewProgramRepository(db shared.DB) *programRepository {
	if err := db.AutoMigrate(&models.Program{}); err != nil {
		panic(err)
	}
	return &programRepository{
		db:             db,
		gormRepository: newGormRepository[models.Program](db),
	}
}

// ExistsByName matches case-insensitively. excludeID skips the record being
// updated, zero means no exclusion.
func (g *programRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	q := g.db.Model(&models.Program{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (g *programRepository) SearchByName(query string) ([]models.Program, error) {
	var ts []models.Program
	err := g.db.Where("name ILIKE ?", "%"+query+"%").Find(&ts).Error
	return ts, err
}

func (g *programRepository) CountActive() (int64, error) {
	var count int64
	err := g.db.Model(&models.Program{}).Where("active = ?", true).Count(&count).Error
	return count, err
}
