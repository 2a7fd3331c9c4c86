package participant

import (
	"log/slog"
	"strings"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/rules"
	"github.com/innovate-hub/registry/internal/shared"
)

type repository interface {
	All() ([]models.Participant, error)
	GetByID(id uint) (*models.Participant, error)
	Create(t *models.Participant) error
	Save(t *models.Participant) error
	Delete(t *models.Participant) error
	Count() (int64, error)
	CountCrossSkillTrained() (int64, error)
	ExistsByEmail(email string, excludeID uint) (bool, error)
	FilterByProject(projectID uint) ([]models.Participant, error)
	FilterCrossSkillTrained() ([]models.Participant, error)
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

func (s *service) List() ([]models.Participant, error) {
	return s.repository.All()
}

func (s *service) GetByID(id uint) (*models.Participant, error) {
	return s.repository.GetByID(id)
}

func (s *service) Create(req CreateRequest) (*models.Participant, error) {
	participant := req.ToModel()

	if err := s.validate(participant, 0, true); err != nil {
		return nil, err
	}

	if err := s.repository.Create(&participant); err != nil {
		return nil, err
	}
	slog.Info("participant created", "participantID", participant.ID, "email", participant.Email)
	return &participant, nil
}

func (s *service) Update(id uint, patch PatchRequest) (*models.Participant, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewNotFoundError("Participant", id)
	}

	candidate := *existing
	patch.applyToModel(&candidate)

	emailChanged := !strings.EqualFold(candidate.Email, existing.Email)
	if err := s.validate(candidate, id, emailChanged); err != nil {
		return nil, err
	}

	if err := s.repository.Save(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(id uint) error {
	participant, err := s.repository.GetByID(id)
	if err != nil {
		return err
	}
	if participant == nil {
		return shared.NewNotFoundError("Participant", id)
	}

	if err := s.repository.Delete(participant); err != nil {
		return err
	}
	slog.Info("participant deleted", "participantID", id, "email", participant.Email)
	return nil
}

// AssignToProject sets the participant's project association.
func (s *service) AssignToProject(participantID, projectID uint) (*models.Participant, error) {
	participant, err := s.repository.GetByID(participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, shared.NewNotFoundError("Participant", participantID)
	}

	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, shared.NewValidationError("Project with ID %d does not exist", projectID)
	}

	participant.ProjectID = &projectID
	if err := s.repository.Save(participant); err != nil {
		return nil, err
	}
	return participant, nil
}

// RemoveFromProject clears the participant's project association.
func (s *service) RemoveFromProject(participantID uint) (*models.Participant, error) {
	participant, err := s.repository.GetByID(participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, shared.NewNotFoundError("Participant", participantID)
	}

	participant.ProjectID = nil
	if err := s.repository.Save(participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *service) FilterByProject(projectID uint) ([]models.Participant, error) {
	return s.repository.FilterByProject(projectID)
}

func (s *service) CrossSkillTrained() ([]models.Participant, error) {
	return s.repository.FilterCrossSkillTrained()
}

func (s *service) Statistics() (Stats, error) {
	total, err := s.repository.Count()
	if err != nil {
		return Stats{}, err
	}
	trained, err := s.repository.CountCrossSkillTrained()
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalParticipants: total, CrossSkillTrained: trained}, nil
}

func (s *service) validate(p models.Participant, excludeID uint, checkEmail bool) error {
	if err := rules.Required(
		rules.Str("Participant.FullName", p.FullName),
		rules.Str("Participant.Email", p.Email),
		rules.Str("Participant.Affiliation", p.Affiliation),
	); err != nil {
		return err
	}

	if checkEmail {
		exists, err := s.repository.ExistsByEmail(p.Email, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewValidationError("Participant with email '%s' already exists", p.Email)
		}
	}

	if err := rules.Evaluate(p, []rules.Rule[models.Participant]{
		{
			Fails: func(p models.Participant) bool {
				return p.CrossSkillTrained && strings.TrimSpace(p.Specialization) == ""
			},
			Message: "Cannot set CrossSkillTrained without Specialization",
		},
	}); err != nil {
		return err
	}

	if p.ProjectID != nil {
		project, err := s.projects.GetByID(*p.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return shared.NewValidationError("Project with ID %d does not exist", *p.ProjectID)
		}
	}

	return nil
}
