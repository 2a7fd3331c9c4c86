package repositories

import (
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
)

type equipmentRepository struct {
	db shared.DB
	gormRepository[models.Equipment]
}

func NewEquipmentRepository(db shared.DB) *equipmentRepository {
	if err := db.AutoMigrate(&models.Equipment{}); err != nil {
		panic(err)
	}
	return &equipmentRepository{
		db:             db,
		gormRepository: newGormRepository[models.Equipment](db),
	}
}

func (g *equipmentRepository) ExistsByInventoryCode(code string, excludeID uint) (bool, error) {
	var count int64
	q := g.db.Model(&models.Equipment{}).Where("LOWER(inventory_code) = LOWER(?)", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (g *equipmentRepository) FilterByFacility(facilityID uint) ([]models.Equipment, error) {
	var ts []models.Equipment
	err := g.db.Where("facility_id = ?", facilityID).Find(&ts).Error
	return ts, err
}

func (g *equipmentRepository) CountByFacility(facilityID uint) (int64, error) {
	var count int64
	err := g.db.Model(&models.Equipment{}).Where("facility_id = ?", facilityID).Count(&count).Error
	return count, err
}

func (g *equipmentRepository) Search(query string) ([]models.Equipment, error) {
	var ts []models.Equipment
	pattern := "%" + query + "%"
	err := g.db.
		Where("name ILIKE ? OR description ILIKE ? OR capabilities ILIKE ? OR usage_domain ILIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&ts).Error
	return ts, err
}
