package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type DriverStatus string

const (
	DriverStatusOnDuty    DriverStatus = "OnDuty"
	DriverStatusOffDuty   DriverStatus = "OffDuty"
	DriverStatusOnTrip    DriverStatus = "OnTrip"
	DriverStatusSuspended DriverStatus = "Suspended"
)

func ParseDriverStatus(raw string) (DriverStatus, error) {
	switch normalizeStatus(raw) {
	case "onduty":
		return DriverStatusOnDuty, nil
	case "offduty":
		return DriverStatusOffDuty, nil
	case "ontrip":
		return DriverStatusOnTrip, nil
	case "suspended":
		return DriverStatusSuspended, nil
	default:
		return "", fmt.Errorf("unknown driver status %q", raw)
	}
}

type Driver struct {
	ID            uuid.UUID
	Name          string
	LicenseNumber string
	LicenseExpiry time.Time
	Phone         string
	Status        DriverStatus
	SafetyScore   float64

	// Counters are mutated only by trip completion and cancellation;
	// they never decrease.
	TotalTrips     int
	CompletedTrips int
	OnTimeTrips    int
	Violations     int

	CreatedAt time.Time
}
