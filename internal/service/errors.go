package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDispatchBlocked    = errors.New("dispatch blocked")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrMaintenanceBlocked = errors.New("maintenance blocked")
	ErrNoEligibleVehicle  = errors.New("no eligible vehicle")
)

type DispatchReason string

const (
	ReasonVehicleUnavailable DispatchReason = "vehicle not available"
	ReasonDriverUnavailable  DispatchReason = "driver not available"
	ReasonOverloaded         DispatchReason = "overloaded"
	ReasonLicenseExpired     DispatchReason = "license expired"
)

// DispatchBlockedError reports which dispatch precondition failed. For an
// overload it also carries the excess weight. errors.Is matches it against
// ErrDispatchBlocked.
type DispatchBlockedError struct {
	Reason   DispatchReason
	OverByKg float64
}

func (e *DispatchBlockedError) Error() string {
	if e.Reason == ReasonOverloaded {
		return fmt.Sprintf("dispatch blocked: %s by %.0f kg", e.Reason, e.OverByKg)
	}
	return fmt.Sprintf("dispatch blocked: %s", e.Reason)
}

func (e *DispatchBlockedError) Is(target error) bool {
	return target == ErrDispatchBlocked
}

func dispatchBlocked(reason DispatchReason) error {
	return &DispatchBlockedError{Reason: reason}
}
