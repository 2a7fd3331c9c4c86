package facility

import (
	"github.com/innovate-hub/registry/internal/database/models"
)

type CreateRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Partner      string `json:"partner"`
	FacilityType string `json:"facilityType"`
	Capabilities string `json:"capabilities"`
}

func (r CreateRequest) ToModel() models.Facility {
	return models.Facility{
		Name:         r.Name,
		Location:     r.Location,
		Description:  r.Description,
		Partner:      r.Partner,
		FacilityType: r.FacilityType,
		Capabilities: r.Capabilities,
	}
}

type PatchRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Partner      *string `json:"partner"`
	FacilityType *string `json:"facilityType"`
	Capabilities *string `json:"capabilities"`
}

func (p PatchRequest) applyToModel(facility *models.Facility) bool {
	updated := false
	if p.Name != nil {
		facility.Name = *p.Name
		updated = true
	}
	if p.Location != nil {
		facility.Location = *p.Location
		updated = true
	}
	if p.Description != nil {
		facility.Description = *p.Description
		updated = true
	}
	if p.Partner != nil {
		facility.Partner = *p.Partner
		updated = true
	}
	if p.FacilityType != nil {
		facility.FacilityType = *p.FacilityType
		updated = true
	}
	if p.Capabilities != nil {
		facility.Capabilities = *p.Capabilities
		updated = true
	}
	return updated
}

type Stats struct {
	TotalFacilities int64 `json:"totalFacilities"`
}
