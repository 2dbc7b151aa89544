package models

type RepairCrewModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RepairCrewModel) TableName() string {
	return "repair_crews"
}
