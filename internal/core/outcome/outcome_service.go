package outcome

import (
	"log/slog"
	"strings"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/rules"
	"github.com/innovate-hub/registry/internal/shared"
)

type repository interface {
	All() ([]models.Outcome, error)
	GetByID(id uint) (*models.Outcome, error)
	Create(t *models.Outcome) error
	Save(t *models.Outcome) error
	Delete(t *models.Outcome) error
	Count() (int64, error)
	FilterByProject(projectID uint) ([]models.Outcome, error)
}

type projectResolver interface {
	GetByID(id uint) (*models.Project, error)
}

type service struct {
	repository repository
	projects   projectResolver
}

func NewService(repository repository, projects projectResolver) *service {
	return &service{
		repository: repository,
		projects:   projects,
	}
}

func (s *service) List() ([]models.Outcome, error) {
	return s.repository.All()
}

func (s *service) FilterByProject(projectID uint) ([]models.Outcome, error) {
	return s.repository.FilterByProject(projectID)
}

func (s *service) GetByID(id uint) (*models.Outcome, error) {
	return s.repository.GetByID(id)
}

func (s *service) Create(req CreateRequest) (*models.Outcome, error) {
	outcome := req.ToModel()

	if err := s.validate(outcome); err != nil {
		return nil, err
	}

	if err := s.repository.Create(&outcome); err != nil {
		return nil, err
	}
	slog.Info("outcome created", "outcomeID", outcome.ID, "projectID", outcome.ProjectID)
	return &outcome, nil
}

func (s *service) Update(id uint, patch PatchRequest) (*models.Outcome, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewNotFoundError("Outcome", id)
	}

	candidate := *existing
	patch.applyToModel(&candidate)

	if err := s.validate(candidate); err != nil {
		return nil, err
	}

	if err := s.repository.Save(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(id uint) error {
	outcome, err := s.repository.GetByID(id)
	if err != nil {
		return err
	}
	if outcome == nil {
		return shared.NewNotFoundError("Outcome", id)
	}
	return s.repository.Delete(outcome)
}

func (s *service) Statistics() (Stats, error) {
	total, err := s.repository.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalOutcomes: total}, nil
}

func (s *service) validate(outcome models.Outcome) error {
	if err := rules.Required(
		rules.Str("Outcome.Title", outcome.Title),
		rules.ID("Outcome.ProjectId", outcome.ProjectID),
	); err != nil {
		return err
	}

	project, err := s.projects.GetByID(outcome.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return shared.NewValidationError("Project with ID %d does not exist", outcome.ProjectID)
	}

	return rules.Evaluate(outcome, []rules.Rule[models.Outcome]{
		{
			Fails:   func(o models.Outcome) bool { return len(strings.TrimSpace(o.Title)) < 3 },
			Message: "Outcome title must be at least 3 characters",
		},
	})
}
