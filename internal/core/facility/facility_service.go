package facility

import (
	"log/slog"
	"strings"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/rules"
	"github.com/innovate-hub/registry/internal/shared"
)

type repository interface {
	All() ([]models.Facility, error)
	GetByID(id uint) (*models.Facility, error)
	Create(t *models.Facility) error
	Save(t *models.Facility) error
	Delete(t *models.Facility) error
	Count() (int64, error)
	ExistsByNameAndLocation(name, location string, excludeID uint) (bool, error)
	FilterByType(facilityType string) ([]models.Facility, error)
	FilterByPartner(partner string) ([]models.Facility, error)
	FilterByLocation(location string) ([]models.Facility, error)
	SearchByName(query string) ([]models.Facility, error)
}

type dependentCounter interface {
	CountByFacility(facilityID uint) (int64, error)
}

type service struct {
	repository repository
	services   dependentCounter
	equipment  dependentCounter
	projects   dependentCounter
}

func NewService(repository repository, services, equipment, projects dependentCounter) *service {
	return &service{
		repository: repository,
		services:   services,
		equipment:  equipment,
		projects:   projects,
	}
}

func (s *service) List() ([]models.Facility, error) {
	return s.repository.All()
}

func (s *service) GetByID(id uint) (*models.Facility, error) {
	return s.repository.GetByID(id)
}

func (s *service) Create(req CreateRequest) (*models.Facility, error) {
	facility := req.ToModel()

	if err := s.validate(facility, 0, true); err != nil {
		return nil, err
	}

	if err := s.repository.Create(&facility); err != nil {
		return nil, err
	}
	slog.Info("facility created", "facilityID", facility.ID, "name", facility.Name, "location", facility.Location)
	return &facility, nil
}

func (s *service) Update(id uint, patch PatchRequest) (*models.Facility, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewNotFoundError("Facility", id)
	}

	candidate := *existing
	patch.applyToModel(&candidate)

	pairChanged := !strings.EqualFold(candidate.Name, existing.Name) ||
		!strings.EqualFold(candidate.Location, existing.Location)
	if err := s.validate(candidate, id, pairChanged); err != nil {
		return nil, err
	}

	// capabilities may not be blanked once services or equipment rely on them
	if strings.TrimSpace(candidate.Capabilities) == "" {
		dependents, err := s.hasServicesOrEquipment(id)
		if err != nil {
			return nil, err
		}
		if dependents {
			return nil, shared.NewValidationError("Facility.Capabilities is required once Services or Equipment are assigned.")
		}
	}

	if err := s.repository.Save(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(id uint) error {
	facility, err := s.repository.GetByID(id)
	if err != nil {
		return err
	}
	if facility == nil {
		return shared.NewNotFoundError("Facility", id)
	}

	var dependents []string
	for _, check := range []struct {
		counter dependentCounter
		label   string
	}{
		{s.services, "Services"},
		{s.equipment, "Equipment"},
		{s.projects, "Projects"},
	} {
		count, err := check.counter.CountByFacility(id)
		if err != nil {
			return err
		}
		if count > 0 {
			dependents = append(dependents, check.label)
		}
	}
	if len(dependents) > 0 {
		return shared.NewValidationError("Facility '%s' still has dependent %s and cannot be deleted.",
			facility.Name, strings.Join(dependents, ", "))
	}

	if err := s.repository.Delete(facility); err != nil {
		return err
	}
	slog.Info("facility deleted", "facilityID", id, "name", facility.Name)
	return nil
}

// Search filters facilities by whichever criterion is set, in the order
// name, type, location; with no criteria it lists everything.
func (s *service) Search(name, facilityType, location string) ([]models.Facility, error) {
	switch {
	case name != "":
		return s.repository.SearchByName(name)
	case facilityType != "":
		return s.repository.FilterByType(facilityType)
	case location != "":
		return s.repository.FilterByLocation(location)
	default:
		return s.repository.All()
	}
}

func (s *service) FilterByPartner(partner string) ([]models.Facility, error) {
	return s.repository.FilterByPartner(partner)
}

func (s *service) Statistics() (Stats, error) {
	total, err := s.repository.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalFacilities: total}, nil
}

func (s *service) hasServicesOrEquipment(facilityID uint) (bool, error) {
	services, err := s.services.CountByFacility(facilityID)
	if err != nil {
		return false, err
	}
	if services > 0 {
		return true, nil
	}
	equipment, err := s.equipment.CountByFacility(facilityID)
	if err != nil {
		return false, err
	}
	return equipment > 0, nil
}

func (s *service) validate(f models.Facility, excludeID uint, checkPair bool) error {
	if err := rules.Required(
		rules.Str("Facility.Name", f.Name),
		rules.Str("Facility.Location", f.Location),
		rules.Str("Facility.FacilityType", f.FacilityType),
	); err != nil {
		return err
	}

	if checkPair {
		exists, err := s.repository.ExistsByNameAndLocation(f.Name, f.Location, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewValidationError("Facility '%s' already exists at this location", f.Name)
		}
	}

	return rules.Evaluate(f, []rules.Rule[models.Facility]{
		{
			Fails:   func(f models.Facility) bool { return len(strings.TrimSpace(f.Name)) < 3 },
			Message: "Facility name must be at least 3 characters",
		},
	})
}
