package models

type Facility struct {
	Model
	Name         string `json:"name" gorm:"type:varchar(255);uniqueIndex:idx_facility_name_location;not null"`
	Location     string `json:"location" gorm:"type:varchar(255);uniqueIndex:idx_facility_name_location;not null"`
	Description  string `json:"description" gorm:"type:text"`
	Partner      string `json:"partner" gorm:"type:varchar(64)"`
	FacilityType string `json:"facilityType" gorm:"type:varchar(64);not null"`
	// Capabilities is a comma-separated token list (e.g. "CNC, PCB Fabrication").
	Capabilities string `json:"capabilities" gorm:"type:varchar(255)"`

	Projects  []Project   `json:"projects,omitempty" gorm:"foreignKey:FacilityID"`
	Services  []Service   `json:"services,omitempty" gorm:"foreignKey:FacilityID"`
	Equipment []Equipment `json:"equipment,omitempty" gorm:"foreignKey:FacilityID"`
}

func (f Facility) TableName() string {
	return "facilities"
}
