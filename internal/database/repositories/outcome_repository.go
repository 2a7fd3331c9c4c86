package repositories

import (
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
)

type outcomeRepository struct {
	db shared.DB
	gormRepository[models.Outcome]
}

func NewOutcomeRepository(db shared.DB) *outcomeRepository {
	if err := db.AutoMigrate(&models.Outcome{}); err != nil {
		panic(err)
	}
	return &outcomeRepository{
		db:             db,
		gormRepository: newGormRepository[models.Outcome](db),
	}
}

func (g *outcomeRepository) FilterByProject(projectID uint) ([]models.Outcome, error) {
	var ts []models.Outcome
	err := g.db.Where("project_id = ?", projectID).Find(&ts).Error
	return ts, err
}

func (g *outcomeRepository) CountByProject(projectID uint) (int64, error) {
	var count int64
	err := g.db.Model(&models.Outcome{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
