package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusOnTrip    VehicleStatus = "OnTrip"
	VehicleStatusInShop    VehicleStatus = "InShop"
	VehicleStatusRetired   VehicleStatus = "Retired"
)

// ParseVehicleStatus maps a wire value to the canonical status. The wire
// accepts both the canonical form and the legacy upper-snake form
// ("ON_TRIP"); core code only ever sees the canonical constants.
func ParseVehicleStatus(raw string) (VehicleStatus, error) {
	switch normalizeStatus(raw) {
	case "available":
		return VehicleStatusAvailable, nil
	case "ontrip":
		return VehicleStatusOnTrip, nil
	case "inshop":
		return VehicleStatusInShop, nil
	case "retired":
		return VehicleStatusRetired, nil
	default:
		return "", fmt.Errorf("unknown vehicle status %q", raw)
	}
}

func normalizeStatus(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "_", "")
	raw = strings.ReplaceAll(raw, "-", "")
	return strings.ToLower(raw)
}

type Vehicle struct {
	ID              uuid.UUID
	Name            string
	LicensePlate    string
	Category        string
	MaxCapacityKg   float64
	Odometer        float64
	AcquisitionCost float64
	Status          VehicleStatus
	CreatedAt       time.Time
}
