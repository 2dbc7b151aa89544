package models

type PotholeModel struct {
	ID             uint   `gorm:"primaryKey"`
	StreetAddress  string `gorm:"size:255;not null"`
	Size           int    `gorm:"not null"`
	Location       string `gorm:"size:20;not null"`
	District       string `gorm:"size:100;not null;index"`
	RepairPriority int    `gorm:"not null;index"`
	ReportedAt     int64  `gorm:"not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PotholeModel) TableName() string {
	return "potholes"
}

type DamageModel struct {
	ID           uint    `gorm:"primaryKey"`
	PotholeID    uint    `gorm:"not null;index"`
	CitizenName  string  `gorm:"size:100;not null"`
	Address      string  `gorm:"size:255;not null"`
	PhoneNumber  string  `gorm:"size:30;not null"`
	TypeOfDamage string  `gorm:"size:100;not null"`
	DamageAmount float64 `gorm:"not null"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
}

func (DamageModel) TableName() string {
	return "damages"
}
