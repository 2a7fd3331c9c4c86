package program

import (
	"time"

	"github.com/innovate-hub/registry/internal/database/models"
)

type CreateRequest struct {
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	NationalAlignment string     `json:"nationalAlignment"`
	FocusAreas        string     `json:"focusAreas"`
	Phases            string     `json:"phases"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	Active            *bool      `json:"active"`
}

func (r CreateRequest) ToModel() models.Program {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return models.Program{
		Name:              r.Name,
		Description:       r.Description,
		NationalAlignment: r.NationalAlignment,
		FocusAreas:        r.FocusAreas,
		Phases:            r.Phases,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Active:            active,
	}
}

type PatchRequest struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	NationalAlignment *string    `json:"nationalAlignment"`
	FocusAreas        *string    `json:"focusAreas"`
	Phases            *string    `json:"phases"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	Active            *bool      `json:"active"`
}

func (p PatchRequest) applyToModel(program *models.Program) bool {
	updated := false
	if p.Name != nil {
		program.Name = *p.Name
		updated = true
	}
	if p.Description != nil {
		program.Description = *p.Description
		updated = true
	}
	if p.NationalAlignment != nil {
		program.NationalAlignment = *p.NationalAlignment
		updated = true
	}
	if p.FocusAreas != nil {
		program.FocusAreas = *p.FocusAreas
		updated = true
	}
	if p.Phases != nil {
		program.Phases = *p.Phases
		updated = true
	}
	if p.StartDate != nil {
		program.StartDate = p.StartDate
		updated = true
	}
	if p.EndDate != nil {
		program.EndDate = p.EndDate
		updated = true
	}
	if p.Active != nil {
		program.Active = *p.Active
		updated = true
	}
	return updated
}

type Stats struct {
	TotalPrograms  int64 `json:"totalPrograms"`
	ActivePrograms int64 `json:"activePrograms"`
}
