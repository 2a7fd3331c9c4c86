package models

type Outcome struct {
	Model
	ProjectID uint `json:"projectId" gorm:"not null;index"`

	Title                   string `json:"title" gorm:"type:varchar(255);not null"`
	Description             string `json:"description" gorm:"type:text"`
	ArtifactLink            string `json:"artifactLink" gorm:"type:varchar(512)"`
	OutcomeType             string `json:"outcomeType" gorm:"type:varchar(64)"`
	QualityCertification    string `json:"qualityCertification" gorm:"type:varchar(255)"`
	CommercializationStatus string `json:"commercializationStatus" gorm:"type:varchar(64)"`
}

func (o Outcome) TableName() string {
	return "outcomes"
}
