package repositories

import (
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
)

type participantRepository struct {
	db shared.DB
	gormRepository[models.Participant]
}

func NewParticipantRepository(db shared.DB) *participantRepository {
	if err := db.AutoMigrate(&models.Participant{}); err != nil {
		panic(err)
	}
	return &participantRepository{
		db:             db,
		gormRepository: newGormRepository[models.Participant](db),
	}
}

func (g *participantRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	q := g.db.Model(&models.Participant{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (g *participantRepository) FilterByProject(projectID uint) ([]models.Participant, error) {
	var ts []models.Participant
	err := g.db.Where("project_id = ?", projectID).Find(&ts).Error
	return ts, err
}

func (g *participantRepository) FilterCrossSkillTrained() ([]models.Participant, error) {
	var ts []models.Participant
	err := g.db.Where("cross_skill_trained = ?", true).Find(&ts).Error
	return ts, err
}

func (g *participantRepository) CountCrossSkillTrained() (int64, error) {
	var count int64
	err := g.db.Model(&models.Participant{}).Where("cross_skill_trained = ?", true).Count(&count).Error
	return count, err
}
