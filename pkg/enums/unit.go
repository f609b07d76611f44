package enums

import "fmt"

// QuantityUnit is the measurement unit attached to donation and request
// quantities. Anything outside the canonical set is rejected at create time
// rather than silently assumed to be kilograms.
type QuantityUnit string

const (
	UnitKilogram QuantityUnit = "kg"
	UnitGram     QuantityUnit = "g"
	UnitPound    QuantityUnit = "lbs"
)

var validQuantityUnits = []QuantityUnit{
	UnitKilogram,
	UnitGram,
	UnitPound,
}

// IsValid checks whether the given unit matches the canonical enum.
func (u QuantityUnit) IsValid() bool {
	for _, candidate := range validQuantityUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseQuantityUnit converts raw strings into QuantityUnit.
func ParseQuantityUnit(value string) (QuantityUnit, error) {
	for _, candidate := range validQuantityUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quantity unit %q", value)
}
