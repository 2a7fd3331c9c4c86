package outcome

import (
	"github.com/innovate-hub/registry/internal/database/models"
)

type CreateRequest struct {
	ProjectID               uint   `json:"projectId"`
	Title                   string `json:"title"`
	Description             string `json:"description"`
	ArtifactLink            string `json:"artifactLink" validate:"omitempty,url"`
	OutcomeType             string `json:"outcomeType"`
	QualityCertification    string `json:"qualityCertification"`
	CommercializationStatus string `json:"commercializationStatus"`
}

func (r CreateRequest) ToModel() models.Outcome {
	return models.Outcome{
		ProjectID:               r.ProjectID,
		Title:                   r.Title,
		Description:             r.Description,
		ArtifactLink:            r.ArtifactLink,
		OutcomeType:             r.OutcomeType,
		QualityCertification:    r.QualityCertification,
		CommercializationStatus: r.CommercializationStatus,
	}
}

type PatchRequest struct {
	ProjectID               *uint   `json:"projectId"`
	Title                   *string `json:"title"`
	Description             *string `json:"description"`
	ArtifactLink            *string `json:"artifactLink"`
	OutcomeType             *string `json:"outcomeType"`
	QualityCertification    *string `json:"qualityCertification"`
	CommercializationStatus *string `json:"commercializationStatus"`
}

func (p PatchRequest) applyToModel(outcome *models.Outcome) bool {
	updated := false
	if p.ProjectID != nil {
		outcome.ProjectID = *p.ProjectID
		updated = true
	}
	if p.Title != nil {
		outcome.Title = *p.Title
		updated = true
	}
	if p.Description != nil {
		outcome.Description = *p.Description
		updated = true
	}
	if p.ArtifactLink != nil {
		outcome.ArtifactLink = *p.ArtifactLink
		updated = true
	}
	if p.OutcomeType != nil {
		outcome.OutcomeType = *p.OutcomeType
		updated = true
	}
	if p.QualityCertification != nil {
		outcome.QualityCertification = *p.QualityCertification
		updated = true
	}
	if p.CommercializationStatus != nil {
		outcome.CommercializationStatus = *p.CommercializationStatus
		updated = true
	}
	return updated
}

type Stats struct {
	TotalOutcomes int64 `json:"totalOutcomes"`
}
