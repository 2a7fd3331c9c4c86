package equipment

import (
	"github.com/innovate-hub/registry/internal/database/models"
)

type CreateRequest struct {
	FacilityID    uint   `json:"facilityId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Capabilities  string `json:"capabilities"`
	InventoryCode string `json:"inventoryCode"`
	UsageDomain   string `json:"usageDomain"`
	SupportPhase  string `json:"supportPhase"`
}

func (r CreateRequest) ToModel() models.Equipment {
	return models.Equipment{
		FacilityID:    r.FacilityID,
		Name:          r.Name,
		Description:   r.Description,
		Capabilities:  r.Capabilities,
		InventoryCode: r.InventoryCode,
		UsageDomain:   r.UsageDomain,
		SupportPhase:  r.SupportPhase,
	}
}

type PatchRequest struct {
	FacilityID    *uint   `json:"facilityId"`
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Capabilities  *string `json:"capabilities"`
	InventoryCode *string `json:"inventoryCode"`
	UsageDomain   *string `json:"usageDomain"`
	SupportPhase  *string `json:"supportPhase"`
}

func (p PatchRequest) applyToModel(equipment *models.Equipment) bool {
	updated := false
	if p.FacilityID != nil {
		equipment.FacilityID = *p.FacilityID
		updated = true
	}
	if p.Name != nil {
		equipment.Name = *p.Name
		updated = true
	}
	if p.Description != nil {
		equipment.Description = *p.Description
		updated = true
	}
	if p.Capabilities != nil {
		equipment.Capabilities = *p.Capabilities
		updated = true
	}
	if p.InventoryCode != nil {
		equipment.InventoryCode = *p.InventoryCode
		updated = true
	}
	if p.UsageDomain != nil {
		equipment.UsageDomain = *p.UsageDomain
		updated = true
	}
	if p.SupportPhase != nil {
		equipment.SupportPhase = *p.SupportPhase
		updated = true
	}
	return updated
}

type Stats struct {
	TotalEquipment int64 `json:"totalEquipment"`
}
