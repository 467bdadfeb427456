package models

import (
	"fmt"
	"strings"
)

// Record is implemented by every stored entity. Ids come from one shared
// allocator, so they are unique across all record kinds.
type Record interface {
	RecordID() uint64
}

// EggType enumerates the egg varieties the farm sells.
type EggType string

const (
	EggKienyeji EggType = "Kienyeji"
	EggGrade    EggType = "Grade"
)

// EggTypes lists the supported egg types in declaration order.
var EggTypes = []EggType{EggKienyeji, EggGrade}

// Valid reports whether t is one of the supported egg types.
func (t EggType) Valid() bool {
	return t == EggKienyeji || t == EggGrade
}

func (t EggType) String() string {
	return string(t)
}

// ParseEggType resolves free-form input (case-insensitive) to an EggType.
func ParseEggType(value string) (EggType, error) {
	normalized := strings.TrimSpace(value)
	for _, t := range EggTypes {
		if strings.EqualFold(normalized, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown egg type %q", value)
}
