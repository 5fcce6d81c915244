package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen   MaintenanceStatus = "Open"
	MaintenanceStatusClosed MaintenanceStatus = "Closed"
)

func ParseMaintenanceStatus(raw string) (MaintenanceStatus, error) {
	switch normalizeStatus(raw) {
	case "open":
		return MaintenanceStatusOpen, nil
	case "closed":
		return MaintenanceStatusClosed, nil
	default:
		return "", fmt.Errorf("unknown maintenance status %q", raw)
	}
}

// MaintenanceLog opens against a vehicle and closes at most once; it is
// never reopened.
type MaintenanceLog struct {
	ID          uuid.UUID
	VehicleID   uuid.UUID
	Description string
	Cost        float64
	Date        time.Time
	Status      MaintenanceStatus
	ClosedAt    *time.Time
	CreatedAt   time.Time
}

// ServicedAt is the moment the log counts as a finished service: the
// close time when recorded, the work date otherwise.
func (m MaintenanceLog) ServicedAt() time.Time {
	if m.ClosedAt != nil {
		return *m.ClosedAt
	}
	return m.Date
}
