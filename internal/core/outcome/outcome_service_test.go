package outcome

import (
	"testing"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	outcomes map[uint]models.Outcome
	nextID   uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{outcomes: map[uint]models.Outcome{}, nextID: 1}
}

func (f *fakeRepository) All() ([]models.Outcome, error) {
	result := make([]models.Outcome, 0, len(f.outcomes))
	for _, o := range f.outcomes {
		result = append(result, o)
	}
	return result, nil
}

func (f *fakeRepository) GetByID(id uint) (*models.Outcome, error) {
	o, ok := f.outcomes[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeRepository) Create(t *models.Outcome) error {
	t.ID = f.nextID
	f.nextID++
	f.outcomes[t.ID] = *t
	return nil
}

func (f *fakeRepository) Save(t *models.Outcome) error {
	f.outcomes[t.ID] = *t
	return nil
}

func (f *fakeRepository) Delete(t *models.Outcome) error {
	delete(f.outcomes, t.ID)
	return nil
}

func (f *fakeRepository) Count() (int64, error) {
	return int64(len(f.outcomes)), nil
}

func (f *fakeRepository) FilterByProject(projectID uint) ([]models.Outcome, error) {
	var result []models.Outcome
	for _, o := range f.outcomes {
		if o.ProjectID == projectID {
			result = append(result, o)
		}
	}
	return result, nil
}

type fakeProjects struct {
	projects map[uint]models.Project
}

func (f *fakeProjects) GetByID(id uint) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func setupService() (*service, *fakeRepository) {
	repo := newFakeRepository()
	projects := &fakeProjects{projects: map[uint]models.Project{
		1: {Model: models.Model{ID: 1}, Title: "Solar Dryer", ProgramID: 1, FacilityID: 1},
	}}
	return NewService(repo, projects), repo
}

func TestCreateOutcome(t *testing.T) {
	svc, _ := setupService()

	created, err := svc.Create(CreateRequest{
		ProjectID:   1,
		Title:       "Working prototype",
		OutcomeType: "Prototype",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, uint(1), created.ProjectID)
}

func TestCreateOutcomeRequiresTitleAndProject(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(CreateRequest{})
	require.Error(t, err)
	assert.True(t, shared.IsValidationError(err))
	assert.Equal(t, "Outcome.Title and Outcome.ProjectId are required.", err.Error())
}

func TestCreateOutcomeRejectsShortTitle(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(CreateRequest{ProjectID: 1, Title: "ab"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Outcome title must be at least 3 characters")
}

func TestCreateOutcomeRejectsUnknownProject(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(CreateRequest{ProjectID: 7, Title: "Field report"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Project with ID 7 does not exist")
}

func TestUpdateOutcome(t *testing.T) {
	svc, _ := setupService()

	created, err := svc.Create(CreateRequest{ProjectID: 1, Title: "Working prototype"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, PatchRequest{
		CommercializationStatus: shared.Ptr("Piloted"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Working prototype", updated.Title)
	assert.Equal(t, "Piloted", updated.CommercializationStatus)
}

func TestUpdateUnknownOutcomeReturnsNotFound(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Update(4, PatchRequest{Title: shared.Ptr("Renamed")})
	require.Error(t, err)
	assert.True(t, shared.IsNotFoundError(err))
}

func TestDeleteOutcome(t *testing.T) {
	svc, repo := setupService()

	created, err := svc.Create(CreateRequest{ProjectID: 1, Title: "Working prototype"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	remaining, _ := repo.All()
	assert.Empty(t, remaining)

	assert.True(t, shared.IsNotFoundError(svc.Delete(created.ID)))
}

func TestFilterOutcomesByProject(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(CreateRequest{ProjectID: 1, Title: "Working prototype"})
	require.NoError(t, err)

	outcomes, err := svc.FilterByProject(1)
	require.NoError(t, err)
	assert.Len(t, outcomes, 1)

	none, err := svc.FilterByProject(2)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOutcomeStatistics(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Create(CreateRequest{ProjectID: 1, Title: "Working prototype"})
	require.NoError(t, err)

	stats, err := svc.Statistics()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOutcomes)
}
