package participant

import (
	"github.com/innovate-hub/registry/internal/database/models"
)

type CreateRequest struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email" validate:"omitempty,email"`
	Affiliation       string `json:"affiliation"`
	Specialization    string `json:"specialization"`
	CrossSkillTrained bool   `json:"crossSkillTrained"`
	Institution       string `json:"institution"`
	ProjectID         *uint  `json:"projectId"`
}

func (r CreateRequest) ToModel() models.Participant {
	return models.Participant{
		FullName:          r.FullName,
		Email:             r.Email,
		Affiliation:       r.Affiliation,
		Specialization:    r.Specialization,
		CrossSkillTrained: r.CrossSkillTrained,
		Institution:       r.Institution,
		ProjectID:         r.ProjectID,
	}
}

type PatchRequest struct {
	FullName          *string `json:"fullName"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Affiliation       *string `json:"affiliation"`
	Specialization    *string `json:"specialization"`
	CrossSkillTrained *bool   `json:"crossSkillTrained"`
	Institution       *string `json:"institution"`
}

func (p PatchRequest) applyToModel(participant *models.Participant) bool {
	updated := false
	if p.FullName != nil {
		participant.FullName = *p.FullName
		updated = true
	}
	if p.Email != nil {
		participant.Email = *p.Email
		updated = true
	}
	if p.Affiliation != nil {
		participant.Affiliation = *p.Affiliation
		updated = true
	}
	if p.Specialization != nil {
		participant.Specialization = *p.Specialization
		updated = true
	}
	if p.CrossSkillTrained != nil {
		participant.CrossSkillTrained = *p.CrossSkillTrained
		updated = true
	}
	if p.Institution != nil {
		participant.Institution = *p.Institution
		updated = true
	}
	return updated
}

type assignRequest struct {
	ProjectID uint `json:"projectId" validate:"required"`
}

type Stats struct {
	TotalParticipants int64 `json:"totalParticipants"`
	CrossSkillTrained int64 `json:"crossSkillTrainedCount"`
}
