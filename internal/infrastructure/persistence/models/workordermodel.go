package models

type WorkOrderModel struct {
	ID        uint `gorm:"primaryKey"`
	// The unique index makes "one current work order per pothole" a
	// structural invariant; the repository upserts against it.
	PotholeID          uint    `gorm:"not null;uniqueIndex"`
	CrewID             uint    `gorm:"not null;index"`
	NumberOfPeople     int     `gorm:"not null"`
	EquipmentAssigned  string  `gorm:"type:text"`
	HoursApplied       float64 `gorm:"not null"`
	HoleStatus         string  `gorm:"size:20;not null;index"`
	FillerMaterialUsed float64 `gorm:"not null"`
	RepairCost         float64 `gorm:"not null"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (WorkOrderModel) TableName() string {
	return "work_orders"
}
