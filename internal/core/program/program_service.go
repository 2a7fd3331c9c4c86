package program

import (
	"log/slog"
	"strings"

	"github.com/innovate-hub/registry/internal/catalog"
	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/rules"
	"github.com/innovate-hub/registry/internal/shared"
)

type repository interface {
	All() ([]models.Program, error)
	GetByID(id uint) (*models.Program, error)
	Create(t *models.Program) error
	Save(t *models.Program) error
	Delete(t *models.Program) error
	Count() (int64, error)
	CountActive() (int64, error)
	ExistsByName(name string, excludeID uint) (bool, error)
	SearchByName(query string) ([]models.Program, error)
}

type projectCounter interface {
	CountByProgram(programID uint) (int64, error)
}

type service struct {
	repository repository
	projects   projectCounter
	catalog    catalog.Catalog
}

func NewService(repository repository, projects projectCounter, cat catalog.Catalog) *service {
	return &service{
		repository: repository,
		projects:   projects,
		catalog:    cat,
	}
}

func (s *service) List() ([]models.Program, error) {
	return s.repository.All()
}

func (s *service) GetByID(id uint) (*models.Program, error) {
	return s.repository.GetByID(id)
}

func (s *service) Create(req CreateRequest) (*models.Program, error) {
	program := req.ToModel()

	if err := s.validate(program, 0, true); err != nil {
		return nil, err
	}

	if err := s.repository.Create(&program); err != nil {
		return nil, err
	}
	slog.Info("program created", "programID", program.ID, "name", program.Name)
	return &program, nil
}

func (s *service) Update(id uint, patch PatchRequest) (*models.Program, error) {
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, shared.NewNotFoundError("Program", id)
	}

	candidate := *existing
	patch.applyToModel(&candidate)

	nameChanged := !strings.EqualFold(candidate.Name, existing.Name)
	if err := s.validate(candidate, id, nameChanged); err != nil {
		return nil, err
	}

	if err := s.repository.Save(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(id uint) error {
	program, err := s.repository.GetByID(id)
	if err != nil {
		return err
	}
	if program == nil {
		return shared.NewNotFoundError("Program", id)
	}

	dependents, err := s.projects.CountByProgram(id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return shared.NewValidationError("Program '%s' has associated Projects and cannot be deleted.", program.Name)
	}

	if err := s.repository.Delete(program); err != nil {
		return err
	}
	slog.Info("program deleted", "programID", id, "name", program.Name)
	return nil
}

// Search returns programs whose name contains the query. Queries shorter
// than two characters return nothing.
func (s *service) Search(query string) ([]models.Program, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []models.Program{}, nil
	}
	return s.repository.SearchByName(query)
}

func (s *service) Statistics() (Stats, error) {
	total, err := s.repository.Count()
	if err != nil {
		return Stats{}, err
	}
	active, err := s.repository.CountActive()
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalPrograms: total, ActivePrograms: active}, nil
}

// validate runs the program rule table: required fields, uniqueness (only
// when the name is new or changed), then cross-field coherence.
func (s *service) validate(p models.Program, excludeID uint, checkName bool) error {
	if err := rules.Required(rules.Str("Program.Name", p.Name)); err != nil {
		return err
	}

	if checkName {
		exists, err := s.repository.ExistsByName(p.Name, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewValidationError("Program with name '%s' already exists", p.Name)
		}
	}

	return rules.Evaluate(p, []rules.Rule[models.Program]{
		{
			Fails:   func(p models.Program) bool { return len(strings.TrimSpace(p.Name)) < 3 },
			Message: "Program name must be at least 3 characters",
		},
		{
			Fails: func(p models.Program) bool {
				return strings.TrimSpace(p.FocusAreas) != "" && !s.hasAlignmentToken(p.NationalAlignment)
			},
			Message: "Program.NationalAlignment must reference a recognized alignment (" +
				strings.Join(s.catalog.AlignmentTokens, ", ") + ") when FocusAreas is set.",
		},
		{
			Fails: func(p models.Program) bool {
				return p.StartDate != nil && p.EndDate != nil && !p.EndDate.After(*p.StartDate)
			},
			Message: "End date must be after start date",
		},
	})
}

func (s *service) hasAlignmentToken(nationalAlignment string) bool {
	alignment := strings.ToLower(nationalAlignment)
	for _, token := range s.catalog.AlignmentTokens {
		if strings.Contains(alignment, strings.ToLower(token)) {
			return true
		}
	}
	return false
}
