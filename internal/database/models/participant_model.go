package models

type Participant struct {
	Model
	FullName          string `json:"fullName" gorm:"type:varchar(255);not null"`
	Email             string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Affiliation       string `json:"affiliation" gorm:"type:varchar(64);not null"`
	Specialization    string `json:"specialization" gorm:"type:varchar(64)"`
	CrossSkillTrained bool   `json:"crossSkillTrained" gorm:"default:false"`
	Institution       string `json:"institution" gorm:"type:varchar(64)"`

	// A participant is optionally assigned to one project.
	ProjectID *uint `json:"projectId" gorm:"index"`
}

func (p Participant) TableName() string {
	return "participants"
}
