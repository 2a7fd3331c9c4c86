package facility

import (
	"strings"
	"testing"

	"github.com/innovate-hub/registry/internal/database/models"
	"github.com/innovate-hub/registry/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	facilities []models.Facility
	nextID     uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) All() ([]models.Facility, error) {
	return append([]models.Facility{}, f.facilities...), nil
}

func (f *fakeRepository) GetByID(id uint) (*models.Facility, error) {
	for i := range f.facilities {
		if f.facilities[i].ID == id {
			fac := f.facilities[i]
			return &fac, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Create(t *models.Facility) error {
	t.ID = f.nextID
	f.nextID++
	f.facilities = append(f.facilities, *t)
	return nil
}

func (f *fakeRepository) Save(t *models.Facility) error {
	for i := range f.facilities {
		if f.facilities[i].ID == t.ID {
			f.facilities[i] = *t
			return nil
		}
	}
	return nil
}

func (f *fakeRepository) Delete(t *models.Facility) error {
	for i := range f.facilities {
		if f.facilities[i].ID == t.ID {
			f.facilities = append(f.facilities[:i], f.facilities[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepository) Count() (int64, error) {
	return int64(len(f.facilities)), nil
}

func (f *fakeRepository) ExistsByNameAndLocation(name, location string, excludeID uint) (bool, error) {
	for _, fac := range f.facilities {
		if fac.ID != excludeID && strings.EqualFold(fac.Name, name) && strings.EqualFold(fac.Location, location) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) FilterByType(facilityType string) ([]models.Facility, error) {
	var out []models.Facility
	for _, fac := range f.facilities {
		if fac.FacilityType == facilityType {
			out = append(out, fac)
		}
	}
	return out, nil
}

func (f *fakeRepository) FilterByPartner(partner string) ([]models.Facility, error) {
	var out []models.Facility
	for _, fac := range f.facilities {
		if fac.Partner == partner {
			out = append(out, fac)
		}
	}
	return out, nil
}

func (f *fakeRepository) FilterByLocation(location string) ([]models.Facility, error) {
	var out []models.Facility
	for _, fac := range f.facilities {
		if strings.Contains(strings.ToLower(fac.Location), strings.ToLower(location)) {
			out = append(out, fac)
		}
	}
	return out, nil
}

func (f *fakeRepository) SearchByName(query string) ([]models.Facility, error) {
	var out []models.Facility
	for _, fac := range f.facilities {
		if strings.Contains(strings.ToLower(fac.Name), strings.ToLower(query)) {
			out = append(out, fac)
		}
	}
	return out, nil
}

type fakeCounter struct {
	counts map[uint]int64
}

func (f *fakeCounter) CountByFacility(facilityID uint) (int64, error) {
	return f.counts[facilityID], nil
}

type testDeps struct {
	repo      *fakeRepository
	services  *fakeCounter
	equipment *fakeCounter
	projects  *fakeCounter
}

func newTestService() (*service, testDeps) {
	deps := testDeps{
		repo:      newFakeRepository(),
		services:  &fakeCounter{counts: map[uint]int64{}},
		equipment: &fakeCounter{counts: map[uint]int64{}},
		projects:  &fakeCounter{counts: map[uint]int64{}},
	}
	return NewService(deps.repo, deps.services, deps.equipment, deps.projects), deps
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:         "Lab A",
		Location:     "Kampala",
		Description:  "Electronics laboratory",
		Partner:      "UniPod",
		FacilityType: "Laboratory",
		Capabilities: "CNC, PCB Fabrication",
	}
}

func TestCreateFacility(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreateFacilityNameLocationPairUnique(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(validCreateRequest())
	require.Error(t, err)
	assert.True(t, shared.IsValidationError(err))
	assert.Contains(t, err.Error(), "already exists at this location")
}

func TestCreateFacilitySameNameDifferentLocationSucceeds(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.Location = "Jinja"
	_, err = svc.Create(other)
	assert.NoError(t, err)
}

func TestCreateFacilityRequiredFields(t *testing.T) {
	svc, _ := newTestService()

	for _, blank := range []func(*CreateRequest){
		func(r *CreateRequest) { r.Name = "" },
		func(r *CreateRequest) { r.Location = " " },
		func(r *CreateRequest) { r.FacilityType = "" },
	} {
		req := validCreateRequest()
		blank(&req)
		_, err := svc.Create(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Facility.Name, Facility.Location, and Facility.FacilityType are required.")
	}
}

func TestUpdateFacilityEmptyPatchIsIdempotent(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, PatchRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Capabilities, updated.Capabilities)
}

func TestUpdateFacilityCannotBlankCapabilitiesWithDependents(t *testing.T) {
	svc, deps := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	deps.equipment.counts[created.ID] = 1
	_, err = svc.Update(created.ID, PatchRequest{Capabilities: shared.Ptr("")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Facility.Capabilities")

	deps.equipment.counts[created.ID] = 0
	_, err = svc.Update(created.ID, PatchRequest{Capabilities: shared.Ptr("")})
	assert.NoError(t, err)
}

func TestUpdateFacilityRelocationConflicts(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.Location = "Jinja"
	moved, err := svc.Create(other)
	require.NoError(t, err)

	_, err = svc.Update(moved.ID, PatchRequest{Location: shared.Ptr("kampala")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists at this location")
}

func TestDeleteFacilityGuardedByDependents(t *testing.T) {
	svc, deps := newTestService()

	created, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	deps.services.counts[created.ID] = 1
	deps.projects.counts[created.ID] = 3
	err = svc.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, shared.IsValidationError(err))
	assert.Contains(t, err.Error(), "Services")
	assert.Contains(t, err.Error(), "Projects")

	deps.services.counts[created.ID] = 0
	deps.projects.counts[created.ID] = 0
	require.NoError(t, svc.Delete(created.ID))

	gone, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteFacilityNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(7)
	require.Error(t, err)
	assert.True(t, shared.IsNotFoundError(err))
}

func TestSearchFacilitiesByCriteria(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	workshop := validCreateRequest()
	workshop.Name = "Wood Workshop"
	workshop.Location = "Mbarara"
	workshop.FacilityType = "Workshop"
	_, err = svc.Create(workshop)
	require.NoError(t, err)

	byName, err := svc.Search("Lab", "", "")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byType, err := svc.Search("", "Workshop", "")
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	byLocation, err := svc.Search("", "", "Mbarara")
	require.NoError(t, err)
	assert.Len(t, byLocation, 1)

	all, err := svc.Search("", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
