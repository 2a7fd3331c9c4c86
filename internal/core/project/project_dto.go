package project

import (
	"github.com/innovate-hub/registry/internal/database/models"
)

type CreateRequest struct {
	ProgramID  uint `json:"programId"`
	FacilityID uint `json:"facilityId"`

	Title                 string `json:"title"`
	NatureOfProject       string `json:"natureOfProject"`
	Description           string `json:"description"`
	InnovationFocus       string `json:"innovationFocus"`
	PrototypeStage        string `json:"prototypeStage"`
	TestingRequirements   string `json:"testingRequirements"`
	CommercializationPlan string `json:"commercializationPlan"`
	Status                string `json:"status"`

	// TeamMemberIDs are assigned to the project after creation. At least
	// one is required.
	TeamMemberIDs []uint `json:"teamMemberIds"`
}

func (r CreateRequest) ToModel() models.Project {
	status := r.Status
	if status == "" {
		status = models.ProjectStatusConcept
	}
	return models.Project{
		ProgramID:             r.ProgramID,
		FacilityID:            r.FacilityID,
		Title:                 r.Title,
		NatureOfProject:       r.NatureOfProject,
		Description:           r.Description,
		InnovationFocus:       r.InnovationFocus,
		PrototypeStage:        r.PrototypeStage,
		TestingRequirements:   r.TestingRequirements,
		CommercializationPlan: r.CommercializationPlan,
		Status:                status,
	}
}

type PatchRequest struct {
	ProgramID  *uint `json:"programId"`
	FacilityID *uint `json:"facilityId"`

	Title                 *string `json:"title"`
	NatureOfProject       *string `json:"natureOfProject"`
	Description           *string `json:"description"`
	InnovationFocus       *string `json:"innovationFocus"`
	PrototypeStage        *string `json:"prototypeStage"`
	TestingRequirements   *string `json:"testingRequirements"`
	CommercializationPlan *string `json:"commercializationPlan"`
	Status                *string `json:"status"`
}

func (p PatchRequest) applyToModel(project *models.Project) bool {
	updated := false
	if p.ProgramID != nil {
		project.ProgramID = *p.ProgramID
		updated = true
	}
	if p.FacilityID != nil {
		project.FacilityID = *p.FacilityID
		updated = true
	}
	if p.Title != nil {
		project.Title = *p.Title
		updated = true
	}
	if p.NatureOfProject != nil {
		project.NatureOfProject = *p.NatureOfProject
		updated = true
	}
	if p.Description != nil {
		project.Description = *p.Description
		updated = true
	}
	if p.InnovationFocus != nil {
		project.InnovationFocus = *p.InnovationFocus
		updated = true
	}
	if p.PrototypeStage != nil {
		project.PrototypeStage = *p.PrototypeStage
		updated = true
	}
	if p.TestingRequirements != nil {
		project.TestingRequirements = *p.TestingRequirements
		updated = true
	}
	if p.CommercializationPlan != nil {
		project.CommercializationPlan = *p.CommercializationPlan
		updated = true
	}
	if p.Status != nil {
		project.Status = *p.Status
		updated = true
	}
	return updated
}

type Stats struct {
	TotalProjects int64 `json:"totalProjects"`
}
