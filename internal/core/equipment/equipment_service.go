package equipment

import (
	"log/slog"
	"strings"

	"github.com/innovate-hub/registry/internal/catalog"
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/rules"
	"github.com/innovate-hub/registry/internal/shared"
)

type repository interface {
	All() ([]models.Equipment, error)
	GetByID(id uint) (*models.Equipment, error)
	Create(t *models.Equipment) error
	Save(t *models.Equipment) error
	Delete(t *models.Equipment) error
	Count() (int64, error)
	ExistsByInventoryCode(code string, excludeID uint) (bool, error)
	FilterByFacility(facilityID uint) ([]models.Equipment, error)
	Search(query string) ([]models.Equipment, error)
}

type facilityResolver interface {
	GetByID(id uint) (*models.Facility, error)
}

type activeProjectCounter interface {
	CountActiveByFacility(facilityID uint) (int64, error)
}

type service struct {
	repository repository
	facilities facilityResolver
	projects   activeProjectCounter
	catalog    catalog.Catalog
}

func NewService(repository repository, facilities facilityResolver, projects activeProjectCounter, cat catalog.Catalog) *service {
	return &service{
		repository: repository,
		facilities: facilities,
		projects:   projects,
		catalog:    cat,
	}
}

func (s *service) List() ([]models.Equipment, error) {
	return s.repository.All()
}

func (s *service) GetByID(id uint) (*models.Equipment, error) {
	return s.repository.GetByID(id)
}

func (s *service) Create(req CreateRequest) (*models.Equipment, error) {
	equipment := req.ToModel()

	if err := s.validate(equipment, 0, true); err != nil {
		return nil, err
	}

	if err := s.repository.Create(&equipment); err != nil {
		return nil, err
	}
	slog.Info("equipment created", "equipmentID", equipment.ID, "inventoryCode", equipment.InventoryCode)
	return &equipment, nil
}

func (s *service) Update(id uint, patch PatchRequest) (*models.Equipment, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewNotFoundError("Equipment", id)
	}

	candidate := *existing
	patch.applyToModel(&candidate)

	codeChanged := !strings.EqualFold(candidate.InventoryCode, existing.InventoryCode)
	if err := s.validate(candidate, id, codeChanged); err != nil {
		return nil, err
	}

	if err := s.repository.Save(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(id uint) error {
	equipment, err := s.repository.GetByID(id)
	if err != nil {
		return err
	}
	if equipment == nil {
		return shared.NewNotFoundError("Equipment", id)
	}

	active, err := s.projects.CountActiveByFacility(equipment.FacilityID)
	if err != nil {
		return err
	}
	if active > 0 {
		return shared.NewValidationError("Equipment referenced by active Project.")
	}

	if err := s.repository.Delete(equipment); err != nil {
		return err
	}
	slog.Info("equipment deleted", "equipmentID", id, "inventoryCode", equipment.InventoryCode)
	return nil
}

func (s *service) FilterByFacility(facilityID uint) ([]models.Equipment, error) {
	return s.repository.FilterByFacility(facilityID)
}

// Search matches name, description, capabilities and usage domain. Queries
// shorter than two characters return nothing.
func (s *service) Search(query string) ([]models.Equipment, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []models.Equipment{}, nil
	}
	return s.repository.Search(query)
}

func (s *service) Statistics() (Stats, error) {
	total, err := s.repository.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalEquipment: total}, nil
}

func (s *service) validate(e models.Equipment, excludeID uint, checkCode bool) error {
	if err := rules.Required(
		rules.ID("Equipment.FacilityId", e.FacilityID),
		rules.Str("Equipment.Name", e.Name),
		rules.Str("Equipment.InventoryCode", e.InventoryCode),
	); err != nil {
		return err
	}

	facility, err := s.facilities.GetByID(e.FacilityID)
	if err != nil {
		return err
	}
	if facility == nil {
		return shared.NewValidationError("Facility with ID %d does not exist", e.FacilityID)
	}

	if checkCode {
		exists, err := s.repository.ExistsByInventoryCode(e.InventoryCode, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewValidationError("Equipment.InventoryCode already exists.")
		}
	}

	return rules.Evaluate(e, []rules.Rule[models.Equipment]{
		{
			Fails: func(e models.Equipment) bool {
				return e.UsageDomain == "Electronics" &&
					!catalog.Contains(s.catalog.ElectronicsSupportPhases, e.SupportPhase)
			},
			Message: "Electronics equipment must support Prototyping or Testing.",
		},
	})
}
