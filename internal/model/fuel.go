package model

import (
	"time"

	"github.com/google/uuid"
)

// FuelLog is append-only; rows are never mutated after creation.
type FuelLog struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	Liters        float64
	Cost          float64
	PricePerLiter float64 // derived: Cost / Liters
	Date          time.Time
	Odometer      float64
	CreatedAt     time.Time
}
