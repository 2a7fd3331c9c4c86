package project

import (
	"log/slog"
	"strings"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/rules"
	"github.com/innovate-hub/registry/internal/shared"
)

type repository interface {
	All() ([]models.Project, error)
	GetByID(id uint) (*models.Project, error)
	Create(t *models.Project) error
	Save(t *models.Project) error
	Delete(t *models.Project) error
	Count() (int64, error)
	ExistsByTitleInProgram(title string, programID uint, excludeID uint) (bool, error)
	FilterByProgram(programID uint) ([]models.Project, error)
	FilterByFacility(facilityID uint) ([]models.Project, error)
}

type programResolver interface {
	GetByID(id uint) (*models.Program, error)
}

type facilityResolver interface {
	GetByID(id uint) (*models.Facility, error)
}

type participantAssigner interface {
	GetByID(id uint) (*models.Participant, error)
	Save(t *models.Participant) error
}

type outcomeCounter interface {
	CountByProject(projectID uint) (int64, error)
}

type service struct {
	repository   repository
	programs     programResolver
	facilities   facilityResolver
	participants participantAssigner
	outcomes     outcomeCounter
}

func NewService(
	repository repository,
	programs programResolver,
	facilities facilityResolver,
	participants participantAssigner,
	outcomes outcomeCounter,
) *service {
	return &service{
		repository:   repository,
		programs:     programs,
		facilities:   facilities,
		participants: participants,
		outcomes:     outcomes,
	}
}

func (s *service) List() ([]models.Project, error) {
	return s.repository.All()
}

func (s *service) GetByID(id uint) (*models.Project, error) {
	return s.repository.GetByID(id)
}

func (s *service) Create(req CreateRequest) (*models.Project, error) {
	project := req.ToModel()

	if err := s.validate(project, 0, true); err != nil {
		return nil, err
	}

	// a project cannot start out completed - it has no outcomes yet
	if project.Status == models.ProjectStatusCompleted {
		return nil, shared.NewValidationError("Project cannot be marked Completed without at least one Outcome.")
	}

	if len(req.TeamMemberIDs) == 0 {
		return nil, shared.NewValidationError("Project requires at least one team member.")
	}
	team := make([]*models.Participant, 0, len(req.TeamMemberIDs))
	for _, participantID := range req.TeamMemberIDs {
		participant, err := s.participants.GetByID(participantID)
		if err != nil {
			return nil, err
		}
		if participant == nil {
			return nil, shared.NewValidationError("Participant with ID %d does not exist", participantID)
		}
		team = append(team, participant)
	}

	if err := s.repository.Create(&project); err != nil {
		return nil, err
	}

	for _, participant := range team {
		participant.ProjectID = &project.ID
		if err := s.participants.Save(participant); err != nil {
			return nil, err
		}
	}

	slog.Info("project created", "projectID", project.ID, "title", project.Title,
		"programID", project.ProgramID, "facilityID", project.FacilityID, "teamSize", len(team))
	return &project, nil
}

func (s *service) Update(id uint, patch PatchRequest) (*models.Project, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewNotFoundError("Project", id)
	}

	candidate := *existing
	patch.applyToModel(&candidate)

	titleChanged := !strings.EqualFold(candidate.Title, existing.Title) ||
		candidate.ProgramID != existing.ProgramID
	if err := s.validate(candidate, id, titleChanged); err != nil {
		return nil, err
	}

	if candidate.Status == models.ProjectStatusCompleted {
		outcomes, err := s.outcomes.CountByProject(id)
		if err != nil {
			return nil, err
		}
		if outcomes == 0 {
			return nil, shared.NewValidationError("Project cannot be marked Completed without at least one Outcome.")
		}
	}

	if err := s.repository.Save(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(id uint) error {
	project, err := s.repository.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return shared.NewNotFoundError("Project", id)
	}

	if err := s.repository.Delete(project); err != nil {
		return err
	}
	slog.Info("project deleted", "projectID", id, "title", project.Title)
	return nil
}

func (s *service) FilterByProgram(programID uint) ([]models.Project, error) {
	return s.repository.FilterByProgram(programID)
}

func (s *service) FilterByFacility(facilityID uint) ([]models.Project, error) {
	return s.repository.FilterByFacility(facilityID)
}

func (s *service) Statistics() (Stats, error) {
	total, err := s.repository.Count()
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalProjects: total}, nil
}

func (s *service) validate(p models.Project, excludeID uint, checkTitle bool) error {
	if err := rules.Required(
		rules.Str("Project.Title", p.Title),
		rules.ID("Project.ProgramId", p.ProgramID),
		rules.ID("Project.FacilityId", p.FacilityID),
	); err != nil {
		return err
	}

	if len(strings.TrimSpace(p.Title)) < 3 {
		return shared.NewValidationError("Project title must be at least 3 characters")
	}

	program, err := s.programs.GetByID(p.ProgramID)
	if err != nil {
		return err
	}
	if program == nil {
		return shared.NewValidationError("Program with ID %d does not exist", p.ProgramID)
	}

	facility, err := s.facilities.GetByID(p.FacilityID)
	if err != nil {
		return err
	}
	if facility == nil {
		return shared.NewValidationError("Facility with ID %d does not exist", p.FacilityID)
	}

	if checkTitle {
		exists, err := s.repository.ExistsByTitleInProgram(p.Title, p.ProgramID, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewValidationError("Project '%s' already exists in this program", p.Title)
		}
	}

	if uncovered := uncoveredRequirements(p.TestingRequirements, facility.Capabilities); len(uncovered) > 0 {
		return shared.NewValidationError("Project testing requirements (%s) are not covered by the facility capabilities.",
			strings.Join(uncovered, ", "))
	}

	return nil
}

// uncoveredRequirements returns the testing-requirement tokens that have no
// case-insensitive counterpart among the facility capability tokens.
func uncoveredRequirements(testingRequirements, capabilities string) []string {
	available := map[string]bool{}
	for _, c := range shared.SplitTokens(capabilities) {
		available[strings.ToLower(c)] = true
	}

	var uncovered []string
	for _, required := range shared.SplitTokens(testingRequirements) {
		if !available[strings.ToLower(required)] {
			uncovered = append(uncovered, required)
		}
	}
	return uncovered
}
