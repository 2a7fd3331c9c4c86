package repositories

import (
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
)

type serviceRepository struct {
	db shared.DB
	gormRepository[models.Service]
}

func NewServiceRepository(db shared.DB) *serviceRepository {
	if err := db.AutoMigrate(&models.Service{}); err != nil {
		panic(err)
	}
	return &serviceRepository{
		db:             db,
		gormRepository: newGormRepository[models.Service](db),
	}
}

// ExistsByNameInFacility checks the scoped uniqueness of a service name
// within its facility, case-insensitively.
func (g *serviceRepository) ExistsByNameInFacility(name string, facilityID uint, excludeID uint) (bool, error) {
	var count int64
	q := g.db.Model(&models.Service{}).
		Where("LOWER(name) = LOWER(?) AND facility_id = ?", name, facilityID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (g *serviceRepository) FilterByFacility(facilityID uint) ([]models.Service, error) {
	var ts []models.Service
	err := g.db.Where("facility_id = ?", facilityID).Find(&ts).Error
	return ts, err
}

func (g *serviceRepository) FilterByCategory(category string) ([]models.Service, error) {
	var ts []models.Service
	err := g.db.Where("category = ?", category).Find(&ts).Error
	return ts, err
}

func (g *serviceRepository) FilterBySkillType(skillType string) ([]models.Service, error) {
	var ts []models.Service
	err := g.db.Where("skill_type = ?", skillType).Find(&ts).Error
	return ts, err
}

func (g *serviceRepository) CountByFacility(facilityID uint) (int64, error) {
	var count int64
	err := g.db.Model(&models.Service{}).Where("facility_id = ?", facilityID).Count(&count).Error
	return count, err
}
