package models

import "time"

type Program struct {
	Model
	Name              string     `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description       string     `json:"description" gorm:"type:text"`
	NationalAlignment string     `json:"nationalAlignment" gorm:"type:varchar(255)"`
	FocusAreas        string     `json:"focusAreas" gorm:"type:text"`
	Phases            string     `json:"phases" gorm:"type:text"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	Active            bool       `json:"active" gorm:"default:true"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ProgramID"`
}

func (p Program) TableName() string {
	return "programs"
}
