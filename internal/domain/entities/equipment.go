package entities

import "strings"

// EquipmentType is the closed set of appliance categories handled by the shop.
type EquipmentType string

const (
	EquipmentTV          EquipmentType = "TV"
	EquipmentMicrowave   EquipmentType = "Micro-ondas"
	EquipmentHairDryer   EquipmentType = "Secador"
	EquipmentFan         EquipmentType = "Ventilador"
	EquipmentSoundSystem EquipmentType = "Som"
	EquipmentDrill       EquipmentType = "Furadeira"
	EquipmentOther       EquipmentType = "Outros"
)

var EquipmentOptions = []EquipmentType{
	EquipmentTV,
	EquipmentMicrowave,
	EquipmentHairDryer,
	EquipmentFan,
	EquipmentSoundSystem,
	EquipmentDrill,
	EquipmentOther,
}

var equipmentAliases = map[string]EquipmentType{
	"tv":          EquipmentTV,
	"microwave":   EquipmentMicrowave,
	"micro-ondas": EquipmentMicrowave,
	"hairdryer":   EquipmentHairDryer,
	"secador":     EquipmentHairDryer,
	"fan":         EquipmentFan,
	"ventilador":  EquipmentFan,
	"soundsystem": EquipmentSoundSystem,
	"som":         EquipmentSoundSystem,
	"drill":       EquipmentDrill,
	"furadeira":   EquipmentDrill,
	"other":       EquipmentOther,
	"outros":      EquipmentOther,
}

func (e EquipmentType) IsValid() bool {
	for _, opt := range EquipmentOptions {
		if e == opt {
			return true
		}
	}
	return false
}

// Label returns the display label, using custom when the type is Other.
// Unknown types are displayed as-is.
func (e EquipmentType) Label(custom string) string {
	if e == EquipmentOther {
		if c := strings.TrimSpace(custom); c != "" {
			return c
		}
	}
	return string(e)
}

func ParseEquipmentType(v string) (EquipmentType, bool) {
	e, ok := equipmentAliases[strings.ToLower(strings.TrimSpace(v))]
	return e, ok
}
