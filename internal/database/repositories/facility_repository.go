package repositories

import (
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
)

type facilityRepository struct {
	db shared.DB
	gormRepository[models.Facility]
}

func NewFacilityRepository(db shared.DB) *facilityRepository {
	if err := db.AutoMigrate(&models.Facility{}); err != nil {
		panic(err)
	}
	return &facilityRepository{
		db:             db,
		gormRepository: newGormRepository[models.Facility](db),
	}
}

// ExistsByNameAndLocation checks the scoped uniqueness of the
// (name, location) pair, case-insensitively.
func (g *facilityRepository) ExistsByNameAndLocation(name, location string, excludeID uint) (bool, error) {
	var count int64
	q := g.db.Model(&models.Facility{}).
		Where("LOWER(name) = LOWER(?) AND LOWER(location) = LOWER(?)", name, location)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (g *facilityRepository) FilterByType(facilityType string) ([]models.Facility, error) {
	var ts []models.Facility
	err := g.db.Where("facility_type = ?", facilityType).Find(&ts).Error
	return ts, err
}

func (g *facilityRepository) FilterByPartner(partner string) ([]models.Facility, error) {
	var ts []models.Facility
	err := g.db.Where("partner = ?", partner).Find(&ts).Error
	return ts, err
}

func (g *facilityRepository) FilterByLocation(location string) ([]models.Facility, error) {
	var ts []models.Facility
	err := g.db.Where("location ILIKE ?", "%"+location+"%").Find(&ts).Error
	return ts, err
}

func (g *facilityRepository) SearchByName(query string) ([]models.Facility, error) {
	var ts []models.Facility
	err := g.db.Where("name ILIKE ?", "%"+query+"%").Find(&ts).Error
	return ts, err
}
