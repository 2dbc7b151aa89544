package pothole

import "fmt"

// Damage is a citizen-filed claim of harm attributed to a pothole. Records
// are immutable once created; a pothole may accumulate any number of them.
type Damage struct {
	id           uint
	potholeID    uint
	citizenName  string
	address      string
	phoneNumber  string
	typeOfDamage string
	damageAmount float64
}

// NewDamage builds a damage claim. The pothole ID may be zero when the claim
// is filed together with a new report; the repository fills it in once the
// pothole row exists.
func NewDamage(potholeID uint, citizenName, address, phoneNumber, typeOfDamage string, damageAmount float64) (*Damage, error) {
	if citizenName == "" {
		return nil, fmt.Errorf("citizen name is required")
	}
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if typeOfDamage == "" {
		return nil, fmt.Errorf("type of damage is required")
	}
	if damageAmount < 0 {
		return nil, fmt.Errorf("damage amount cannot be negative")
	}

	return &Damage{
		potholeID:    potholeID,
		citizenName:  citizenName,
		address:      address,
		phoneNumber:  phoneNumber,
		typeOfDamage: typeOfDamage,
		damageAmount: damageAmount,
	}, nil
}

// ReconstructDamage rebuilds a damage claim from persisted state.
func ReconstructDamage(
	id uint,
	potholeID uint,
	citizenName, address, phoneNumber, typeOfDamage string,
	damageAmount float64,
) (*Damage, error) {
	if id == 0 {
		return nil, fmt.Errorf("damage ID cannot be zero")
	}
	if potholeID == 0 {
		return nil, fmt.Errorf("pothole ID is required")
	}

	return &Damage{
		id:           id,
		potholeID:    potholeID,
		citizenName:  citizenName,
		address:      address,
		phoneNumber:  phoneNumber,
		typeOfDamage: typeOfDamage,
		damageAmount: damageAmount,
	}, nil
}

func (d *Damage) ID() uint {
	return d.id
}

func (d *Damage) PotholeID() uint {
	return d.potholeID
}

func (d *Damage) CitizenName() string {
	return d.citizenName
}

func (d *Damage) Address() string {
	return d.address
}

func (d *Damage) PhoneNumber() string {
	return d.phoneNumber
}

func (d *Damage) TypeOfDamage() string {
	return d.typeOfDamage
}

func (d *Damage) DamageAmount() float64 {
	return d.damageAmount
}

func (d *Damage) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("damage ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("damage ID cannot be zero")
	}
	d.id = id
	return nil
}

// AttachTo binds a claim created alongside a new report to the pothole row
// the transaction just inserted.
func (d *Damage) AttachTo(potholeID uint) error {
	if d.potholeID != 0 {
		return fmt.Errorf("damage is already attached to pothole %d", d.potholeID)
	}
	if potholeID == 0 {
		return fmt.Errorf("pothole ID cannot be zero")
	}
	d.potholeID = potholeID
	return nil
}
