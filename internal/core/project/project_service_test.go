package project

import (
	"strings"
	"testing"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	projects []models.Project
	nextID   uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) All() ([]models.Project, error) {
	return append([]models.Project{}, f.projects...), nil
}

func (f *fakeRepository) GetByID(id uint) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Create(t *models.Project) error {
	t.ID = f.nextID
	f.nextID++
	f.projects = append(f.projects, *t)
	return nil
}

func (f *fakeRepository) Save(t *models.Project) error {
	for i := range f.projects {
		if f.projects[i].ID == t.ID {
			f.projects[i] = *t
			return nil
		}
	}
	return nil
}

func (f *fakeRepository) Delete(t *models.Project) error {
	for i := range f.projects {
		if f.projects[i].ID == t.ID {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepository) Count() (int64, error) {
	return int64(len(f.projects)), nil
}

func (f *fakeRepository) ExistsByTitleInProgram(title string, programID uint, excludeID uint) (bool, error) {
	for _, p := range f.projects {
		if p.ID != excludeID && p.ProgramID == programID && strings.EqualFold(p.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) FilterByProgram(programID uint) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		if p.ProgramID == programID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepository) FilterByFacility(facilityID uint) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		if p.FacilityID == facilityID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePrograms struct {
	programs map[uint]models.Program
}

func (f *fakePrograms) GetByID(id uint) (*models.Program, error) {
	if p, ok := f.programs[id]; ok {
		return &p, nil
	}
	return nil, nil
}

type fakeFacilities struct {
	facilities map[uint]models.Facility
}

func (f *fakeFacilities) GetByID(id uint) (*models.Facility, error) {
	if fac, ok := f.facilities[id]; ok {
		return &fac, nil
	}
	return nil, nil
}

type fakeParticipants struct {
	participants map[uint]*models.Participant
}

func (f *fakeParticipants) GetByID(id uint) (*models.Participant, error) {
	if p, ok := f.participants[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeParticipants) Save(t *models.Participant) error {
	f.participants[t.ID] = t
	return nil
}

type fakeOutcomes struct {
	counts map[uint]int64
}

func (f *fakeOutcomes) CountByProject(projectID uint) (int64, error) {
	return f.counts[projectID], nil
}

type testDeps struct {
	repo         *fakeRepository
	programs     *fakePrograms
	facilities   *fakeFacilities
	participants *fakeParticipants
	outcomes     *fakeOutcomes
}

func newTestService() (*service, testDeps) {
	deps := testDeps{
		repo: newFakeRepository(),
		programs: &fakePrograms{programs: map[uint]models.Program{
			1: {Model: models.Model{ID: 1}, Name: "Innovation Program", Active: true},
		}},
		facilities: &fakeFacilities{facilities: map[uint]models.Facility{
			1: {Model: models.Model{ID: 1}, Name: "Lab A", Location: "Kampala",
				FacilityType: "Laboratory", Capabilities: "CNC, PCB Fabrication, Materials Testing"},
		}},
		participants: &fakeParticipants{participants: map[uint]*models.Participant{
			1: {Model: models.Model{ID: 1}, FullName: "Jane Doe", Email: "jane@scit.ac.ug", Affiliation: "CS"},
			2: {Model: models.Model{ID: 2}, FullName: "John Okello", Email: "john@cedat.ac.ug", Affiliation: "Engineering"},
		}},
		outcomes: &fakeOutcomes{counts: map[uint]int64{}},
	}
	svc := NewService(deps.repo, deps.programs, deps.facilities, deps.participants, deps.outcomes)
	return svc, deps
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		ProgramID:           1,
		FacilityID:          1,
		Title:               "Smart Irrigation Controller",
		NatureOfProject:     "Prototype",
		InnovationFocus:     "IoT devices",
		PrototypeStage:      "Concept",
		TestingRequirements: "PCB Fabrication",
		TeamMemberIDs:       []uint{1},
	}
}

func TestCreateProjectAssignsTeam(t *testing.T) {
	svc, deps := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.ProjectStatusConcept, created.Status)

	member := deps.participants.participants[1]
	require.NotNil(t, member.ProjectID)
	assert.Equal(t, created.ID, *member.ProjectID)
}

func TestCreateProjectRequiredFields(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.ProgramID = 0
	_, err := svc.Create(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Project.Title, Project.ProgramId, and Project.FacilityId are required.")
}

func TestCreateProjectRequiresExistingProgramAndFacility(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.ProgramID = 99
	_, err := svc.Create(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Program with ID 99 does not exist")

	req = validCreateRequest()
	req.FacilityID = 42
	_, err = svc.Create(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Facility with ID 42 does not exist")
}

func TestCreateProjectTitleUniqueWithinProgram(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	duplicate := validCreateRequest()
	duplicate.Title = "smart irrigation controller"
	duplicate.TeamMemberIDs = []uint{2}
	_, err = svc.Create(duplicate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists in this program")
}

func TestCreateProjectRequiresTeamMember(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.TeamMemberIDs = nil
	_, err := svc.Create(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one team member")
}

func TestCreateProjectUnknownTeamMember(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.TeamMemberIDs = []uint{77}
	_, err := svc.Create(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Participant with ID 77 does not exist")
}

func TestCreateProjectTestingRequirementsMustBeCovered(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.TestingRequirements = "PCB Fabrication, Wind Tunnel"
	_, err := svc.Create(req)
	require.Error(t, err)
	assert.True(t, shared.IsValidationError(err))
	assert.Contains(t, err.Error(), "Wind Tunnel")
	assert.Contains(t, err.Error(), "not covered by the facility capabilities")
}

func TestCreateProjectCannotStartCompleted(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.Status = models.ProjectStatusCompleted
	_, err := svc.Create(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without at least one Outcome")
}

func TestUpdateProjectEmptyPatchIsIdempotent(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, PatchRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Status, updated.Status)
}

func TestUpdateProjectCompletionRequiresOutcome(t *testing.T) {
	svc, deps := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Update(created.ID, PatchRequest{Status: shared.Ptr(models.ProjectStatusCompleted)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without at least one Outcome")

	deps.outcomes.counts[created.ID] = 1
	updated, err := svc.Update(created.ID, PatchRequest{Status: shared.Ptr(models.ProjectStatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
}

func TestUpdateProjectMoveToFacilityWithoutCapabilityFails(t *testing.T) {
	svc, deps := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	deps.facilities.facilities[2] = models.Facility{
		Model: models.Model{ID: 2}, Name: "Wood Workshop", Location: "Mbarara",
		FacilityType: "Workshop", Capabilities: "CNC",
	}

	_, err = svc.Update(created.ID, PatchRequest{FacilityID: shared.Ptr(uint(2))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not covered by the facility capabilities")
}

func TestUpdateProjectNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(123, PatchRequest{})
	require.Error(t, err)
	assert.True(t, shared.IsNotFoundError(err))
}

func TestDeleteProject(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	gone, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	err = svc.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, shared.IsNotFoundError(err))
}

func TestFilterProjects(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	byProgram, err := svc.FilterByProgram(1)
	require.NoError(t, err)
	assert.Len(t, byProgram, 1)

	byFacility, err := svc.FilterByFacility(1)
	require.NoError(t, err)
	assert.Len(t, byFacility, 1)

	empty, err := svc.FilterByProgram(9)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
