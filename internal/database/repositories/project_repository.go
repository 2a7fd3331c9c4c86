package repositories

import (
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
)

type projectRepository struct {
	db shared.DB
	gormRepository[models.Project]
}

func NewProjectRepository(db shared.DB) *projectRepository {
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		panic(err)
	}
	return &projectRepository{
		db:             db,
		gormRepository: newGormRepository[models.Project](db),
	}
}

// ExistsByTitleInProgram checks the scoped uniqueness of a project title
// within its program, case-insensitively.
func (g *projectRepository) ExistsByTitleInProgram(title string, programID uint, excludeID uint) (bool, error) {
	var count int64
	q := g.db.Model(&models.Project{}).
		Where("LOWER(title) = LOWER(?) AND program_id = ?", title, programID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (g *projectRepository) FilterByProgram(programID uint) ([]models.Project, error) {
	var ts []models.Project
	err := g.db.Where("program_id = ?", programID).Find(&ts).Error
	return ts, err
}

func (g *projectRepository) FilterByFacility(facilityID uint) ([]models.Project, error) {
	var ts []models.Project
	err := g.db.Where("facility_id = ?", facilityID).Find(&ts).Error
	return ts, err
}

func (g *projectRepository) CountByProgram(programID uint) (int64, error) {
	var count int64
	err := g.db.Model(&models.Project{}).Where("program_id = ?", programID).Count(&count).Error
	return count, err
}

func (g *projectRepository) CountByFacility(facilityID uint) (int64, error) {
	var count int64
	err := g.db.Model(&models.Project{}).Where("facility_id = ?", facilityID).Count(&count).Error
	return count, err
}

// CountActiveByFacility counts the facility's projects that are not yet
// completed. Used by the equipment delete guard.
func (g *projectRepository) CountActiveByFacility(facilityID uint) (int64, error) {
	var count int64
	err := g.db.Model(&models.Project{}).
		Where("facility_id = ? AND status <> ?", facilityID, models.ProjectStatusCompleted).
		Count(&count).Error
	return count, err
}

// CountByFacilityWithTestingRequirement counts the facility's projects whose
// testing requirements mention the given token. Used by the service-category
// delete guard.
func (g *projectRepository) CountByFacilityWithTestingRequirement(facilityID uint, token string) (int64, error) {
	var count int64
	err := g.db.Model(&models.Project{}).
		Where("facility_id = ? AND testing_requirements ILIKE ?", facilityID, "%"+token+"%").
		Count(&count).Error
	return count, err
}
