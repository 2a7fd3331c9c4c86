package models

type Service struct {
	Model
	FacilityID uint `json:"facilityId" gorm:"not null;uniqueIndex:idx_service_facility_name"`

	Name        string `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_service_facility_name"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"type:varchar(64);not null"`
	SkillType   string `json:"skillType" gorm:"type:varchar(64);not null"`
}

func (s Service) TableName() string {
	return "services"
}
