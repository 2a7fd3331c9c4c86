package models

type Equipment struct {
	Model
	FacilityID uint `json:"facilityId" gorm:"not null;index"`

	Name          string `json:"name" gorm:"type:varchar(255);not null"`
	Description   string `json:"description" gorm:"type:text"`
	Capabilities  string `json:"capabilities" gorm:"type:text"`
	InventoryCode string `json:"inventoryCode" gorm:"type:varchar(64);uniqueIndex;not null"`
	UsageDomain   string `json:"usageDomain" gorm:"type:varchar(64)"`
	SupportPhase  string `json:"supportPhase" gorm:"type:varchar(64)"`
}

func (e Equipment) TableName() string {
	return "equipment"
}
