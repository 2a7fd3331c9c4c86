package service

import (
	"github.com/innovate-hub/registry/internal/database/models"
)

type CreateRequest struct {
	FacilityID  uint   `json:"facilityId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SkillType   string `json:"skillType"`
}

func (r CreateRequest) ToModel() models.Service {
	return models.Service{
		FacilityID:  r.FacilityID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		SkillType:   r.SkillType,
	}
}

type PatchRequest struct {
	FacilityID  *uint   `json:"facilityId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	SkillType   *string `json:"skillType"`
}

func (p PatchRequest) applyToModel(svc *models.Service) bool {
	updated := false
	if p.FacilityID != nil {
		svc.FacilityID = *p.FacilityID
		updated = true
	}
	if p.Name != nil {
		svc.Name = *p.Name
		updated = true
	}
	if p.Description != nil {
		svc.Description = *p.Description
		updated = true
	}
	if p.Category != nil {
		svc.Category = *p.Category
		updated = true
	}
	if p.SkillType != nil {
		svc.SkillType = *p.SkillType
		updated = true
	}
	return updated
}

type Stats struct {
	TotalServices int64 `json:"totalServices"`
}
