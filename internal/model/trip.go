package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripStatusDraft      TripStatus = "Draft"
	TripStatusDispatched TripStatus = "Dispatched"
	TripStatusCompleted  TripStatus = "Completed"
	TripStatusCancelled  TripStatus = "Cancelled"
)

// tripTransitions is the allowed status graph. Completed and Cancelled are
// terminal.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusDraft:      {TripStatusDispatched, TripStatusCancelled},
	TripStatusDispatched: {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted:  {},
	TripStatusCancelled:  {},
}

func (s TripStatus) CanTransition(to TripStatus) bool {
	for _, next := range tripTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s TripStatus) Terminal() bool {
	return len(tripTransitions[s]) == 0
}

func ParseTripStatus(raw string) (TripStatus, error) {
	switch normalizeStatus(raw) {
	case "draft":
		return TripStatusDraft, nil
	case "dispatched":
		return TripStatusDispatched, nil
	case "completed":
		return TripStatusCompleted, nil
	case "cancelled", "canceled":
		return TripStatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown trip status %q", raw)
	}
}

// Trip references Vehicle and Driver by id; it does not own them.
type Trip struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	DriverID      uuid.UUID
	CargoWeightKg float64
	DistanceKm    float64
	Revenue       float64
	Origin        string
	Destination   string
	Notes         string
	StartOdometer float64
	EndOdometer   *float64
	Status        TripStatus
	ScheduledAt   *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
}
