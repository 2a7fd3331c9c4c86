package service

import (
	"log/slog"
	"strings"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/rules"
	"github.com/innovate-hub/registry/internal/shared"
)

type repository interface {
	All() ([]models.Service, error)
	GetByID(id uint) (*models.Service, error)
	Create(t *models.Service) error
	Save(t *models.Service) error
	Delete(t *models.Service) error
	Count() (int64, error)
	ExistsByNameInFacility(name string, facilityID uint, excludeID uint) (bool, error)
	FilterByFacility(facilityID uint) ([]models.Service, error)
	FilterByCategory(category string) ([]models.Service, error)
	FilterBySkillType(skillType string) ([]models.Service, error)
}

type facilityResolver interface {
	GetByID(id uint) (*models.Facility, error)
}

type testingRequirementCounter interface {
	CountByFacilityWithTestingRequirement(facilityID uint, token string) (int64, error)
}

type service struct {
	repository repository
	facilities facilityResolver
	projects   testingRequirementCounter
}

func NewService(repository repository, facilities facilityResolver, projects testingRequirementCounter) *service {
	return &service{
		repository: repository,
		facilities: facilities,
		projects:   projects,
	}
}

func (s *service) List() ([]models.Service, error) {
	return s.repository.All()
}

func (s *service) GetByID(id uint) (*models.Service, error) {
	return s.repository.GetByID(id)
}

func (s *service) Create(req CreateRequest) (*models.Service, error) {
	svc := req.ToModel()

	if err := s.validate(svc, 0, true); err != nil {
		return nil, err
	}

	if err := s.repository.Create(&svc); err != nil {
		return nil, err
	}
	slog.Info("service created", "serviceID", svc.ID, "name", svc.Name, "facilityID", svc.FacilityID)
	return &svc, nil
}

func (s *service) Update(id uint, patch PatchRequest) (*models.Service, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewNotFoundError("Service", id)
	}

	candidate := *existing
	patch.applyToModel(&candidate)

	nameChanged := !strings.EqualFold(candidate.Name, existing.Name) ||
		candidate.FacilityID != existing.FacilityID
	if err := s.validate(candidate, id, nameChanged); err != nil {
		return nil, err
	}

	if err := s.repository.Save(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(id uint) error {
	svc, err := s.repository.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return shared.NewNotFoundError("Service", id)
	}

	referencing, err := s.projects.CountByFacilityWithTestingRequirement(svc.FacilityID, svc.Category)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return shared.NewValidationError("Service category '%s' is in use by Project testing requirements.", svc.Category)
	}

	if err := s.repository.Delete(svc); err != nil {
		return err
	}
	slog.Info("service deleted", "serviceID", id, "name", svc.Name)
	return nil
}

// Filter narrows services by whichever criterion is set, in the order
// category, skill type, facility; with no criteria it lists everything.
func (s *service) Filter(category, skillType string, facilityID uint) ([]models.Service, error) {
	switch {
	case category != "":
		return s.repository.FilterByCategory(category)
	case skillType != "":
		return s.repository.FilterBySkillType(skillType)
	case facilityID != 0:
		return s.repository.FilterByFacility(facilityID)
	default:
		return s.repository.All()
	}
}

func (s *service) Statistics() (Stats, error) {
	total, err := s.repository.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalServices: total}, nil
}

func (s *service) validate(svc models.Service, excludeID uint, checkName bool) error {
	if err := rules.Required(
		rules.ID("Service.FacilityId", svc.FacilityID),
		rules.Str("Service.Name", svc.Name),
		rules.Str("Service.Category", svc.Category),
		rules.Str("Service.SkillType", svc.SkillType),
	); err != nil {
		return err
	}

	facility, err := s.facilities.GetByID(svc.FacilityID)
	if err != nil {
		return err
	}
	if facility == nil {
		return shared.NewValidationError("Facility with ID %d does not exist", svc.FacilityID)
	}

	if checkName {
		exists, err := s.repository.ExistsByNameInFacility(svc.Name, svc.FacilityID, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewValidationError("Service '%s' already exists at this facility", svc.Name)
		}
	}

	return rules.Evaluate(svc, []rules.Rule[models.Service]{
		{
			Fails:   func(svc models.Service) bool { return len(strings.TrimSpace(svc.Name)) < 3 },
			Message: "Service name must be at least 3 characters",
		},
	})
}
