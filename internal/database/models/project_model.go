package models

const (
	ProjectStatusConcept   = "Concept"
	ProjectStatusActive    = "Active"
	ProjectStatusCompleted = "Completed"
)

type Project struct {
	Model
	ProgramID  uint `json:"programId" gorm:"not null;index"`
	FacilityID uint `json:"facilityId" gorm:"not null;index"`

	Title                string `json:"title" gorm:"type:varchar(255);not null"`
	NatureOfProject      string `json:"natureOfProject" gorm:"type:varchar(128)"`
	Description          string `json:"description" gorm:"type:text"`
	InnovationFocus      string `json:"innovationFocus" gorm:"type:varchar(255)"`
	PrototypeStage       string `json:"prototypeStage" gorm:"type:varchar(128)"`
	TestingRequirements  string `json:"testingRequirements" gorm:"type:text"`
	CommercializationPlan string `json:"commercializationPlan" gorm:"type:text"`
	Status               string `json:"status" gorm:"type:varchar(32);default:'Concept'"`

	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:ProjectID"`
	Outcomes     []Outcome     `json:"outcomes,omitempty" gorm:"foreignKey:ProjectID"`
}

func (p Project) TableName() string {
	return "projects"
}
