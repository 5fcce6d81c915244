package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetflow/internal/model"
)

// DispatchService is the trip state machine: it owns every transition that
// binds or frees a vehicle and a driver. Each operation validates and
// mutates inside a single store transaction so that two concurrent
// dispatches against the same vehicle cannot both commit.
type DispatchService struct {
	store Store
	now   func() time.Time
}

func NewDispatchService(store Store) *DispatchService {
	return &DispatchService{store: store, now: time.Now}
}

type CreateTripInput struct {
	VehicleID     uuid.UUID
	DriverID      uuid.UUID
	CargoWeightKg float64
	DistanceKm    float64
	Revenue       float64
	Origin        string
	Destination   string
	Notes         string
	ScheduledAt   *time.Time
	// AsDraft records the trip without binding the vehicle and driver.
	AsDraft bool
}

// TripResult carries the trip plus the vehicle/driver snapshot read in the
// same transaction.
type TripResult struct {
	Trip    model.Trip
	Vehicle model.Vehicle
	Driver  model.Driver
}

// CreateTrip validates the five dispatch preconditions in order (first
// failure wins) and, on success, atomically inserts the trip and marks the
// vehicle and driver OnTrip.
func (s *DispatchService) CreateTrip(ctx context.Context, in CreateTripInput) (*TripResult, error) {
	if in.VehicleID == uuid.Nil || in.DriverID == uuid.Nil {
		return nil, fmt.Errorf("%w: vehicle_id and driver_id are required", ErrInvalidInput)
	}
	if in.CargoWeightKg < 0 {
		return nil, fmt.Errorf("%w: cargo_weight_kg must not be negative", ErrInvalidInput)
	}

	var result *TripResult
	err := s.store.Transact(ctx, func(tx Store) error {
		vehicle, err := tx.GetVehicle(ctx, in.VehicleID)
		if err != nil {
			return notFoundOr(err, "vehicle")
		}
		driver, err := tx.GetDriver(ctx, in.DriverID)
		if err != nil {
			return notFoundOr(err, "driver")
		}

		if vehicle.Status != model.VehicleStatusAvailable {
			return dispatchBlocked(ReasonVehicleUnavailable)
		}
		if driver.Status != model.DriverStatusOnDuty {
			return dispatchBlocked(ReasonDriverUnavailable)
		}
		if in.CargoWeightKg > vehicle.MaxCapacityKg {
			return &DispatchBlockedError{
				Reason:   ReasonOverloaded,
				OverByKg: in.CargoWeightKg - vehicle.MaxCapacityKg,
			}
		}
		if driver.LicenseExpiry.Before(s.now()) {
			return dispatchBlocked(ReasonLicenseExpired)
		}

		trip := model.Trip{
			ID:            uuid.New(),
			VehicleID:     vehicle.ID,
			DriverID:      driver.ID,
			CargoWeightKg: in.CargoWeightKg,
			DistanceKm:    in.DistanceKm,
			Revenue:       in.Revenue,
			Origin:        in.Origin,
			Destination:   in.Destination,
			Notes:         in.Notes,
			StartOdometer: vehicle.Odometer,
			Status:        model.TripStatusDispatched,
			ScheduledAt:   in.ScheduledAt,
			CreatedAt:     s.now(),
		}
		if in.AsDraft {
			trip.Status = model.TripStatusDraft
		}
		if err := tx.InsertTrip(ctx, &trip); err != nil {
			return err
		}

		if !in.AsDraft {
			if err := tx.MoveVehicle(ctx, vehicle.ID, model.VehicleStatusAvailable, model.VehicleStatusOnTrip); err != nil {
				return staleOr(err, dispatchBlocked(ReasonVehicleUnavailable))
			}
			if err := tx.MoveDriver(ctx, driver.ID, model.DriverStatusOnDuty, model.DriverStatusOnTrip); err != nil {
				return staleOr(err, dispatchBlocked(ReasonDriverUnavailable))
			}
			vehicle.Status = model.VehicleStatusOnTrip
			driver.Status = model.DriverStatusOnTrip
		}

		result = &TripResult{Trip: trip, Vehicle: *vehicle, Driver: *driver}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type CompleteTripInput struct {
	EndOdometer float64
	Revenue     *float64
	DistanceKm  *float64
}

// CompleteTrip closes a Dispatched trip: the vehicle returns to Available
// with its odometer advanced, the driver returns to OnDuty, and the
// driver's total/completed/on-time counters each grow by one. Every
// completion counts as on-time.
func (s *DispatchService) CompleteTrip(ctx context.Context, tripID uuid.UUID, in CompleteTripInput) (*model.Trip, error) {
	var completed *model.Trip
	err := s.store.Transact(ctx, func(tx Store) error {
		trip, err := tx.GetTrip(ctx, tripID)
		if err != nil {
			return notFoundOr(err, "trip")
		}
		if trip.Status != model.TripStatusDispatched {
			return fmt.Errorf("%w: cannot complete %s trip", ErrInvalidTransition, trip.Status)
		}
		if in.EndOdometer < trip.StartOdometer {
			return fmt.Errorf("%w: end odometer %.1f below start odometer %.1f",
				ErrInvalidInput, in.EndOdometer, trip.StartOdometer)
		}

		now := s.now()
		trip.Status = model.TripStatusCompleted
		trip.EndOdometer = &in.EndOdometer
		trip.CompletedAt = &now
		if in.Revenue != nil {
			trip.Revenue = *in.Revenue
		}
		if in.DistanceKm != nil {
			trip.DistanceKm = *in.DistanceKm
		}

		if err := tx.UpdateTrip(ctx, trip, model.TripStatusDispatched); err != nil {
			return staleOr(err, fmt.Errorf("%w: trip already finalized", ErrInvalidTransition))
		}
		if err := tx.ReleaseVehicle(ctx, trip.VehicleID, in.EndOdometer); err != nil {
			return err
		}
		if err := tx.MoveDriver(ctx, trip.DriverID, model.DriverStatusOnTrip, model.DriverStatusOnDuty); err != nil {
			return err
		}
		if err := tx.BumpDriverCounters(ctx, trip.DriverID, 1, 1, 1); err != nil {
			return err
		}

		completed = trip
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// CancelTrip cancels a Draft or Dispatched trip. Cancelling a Dispatched
// trip frees the vehicle and driver and counts one attempted trip against
// the driver; a Draft cancellation touches nothing else.
func (s *DispatchService) CancelTrip(ctx context.Context, tripID uuid.UUID) (*model.Trip, error) {
	var cancelled *model.Trip
	err := s.store.Transact(ctx, func(tx Store) error {
		trip, err := tx.GetTrip(ctx, tripID)
		if err != nil {
			return notFoundOr(err, "trip")
		}
		if !trip.Status.CanTransition(model.TripStatusCancelled) {
			return fmt.Errorf("%w: cannot cancel %s trip", ErrInvalidTransition, trip.Status)
		}

		prior := trip.Status
		trip.Status = model.TripStatusCancelled
		if err := tx.UpdateTrip(ctx, trip, prior); err != nil {
			return staleOr(err, fmt.Errorf("%w: trip already finalized", ErrInvalidTransition))
		}

		if prior == model.TripStatusDispatched {
			if err := tx.MoveVehicle(ctx, trip.VehicleID, model.VehicleStatusOnTrip, model.VehicleStatusAvailable); err != nil {
				return err
			}
			if err := tx.MoveDriver(ctx, trip.DriverID, model.DriverStatusOnTrip, model.DriverStatusOnDuty); err != nil {
				return err
			}
			if err := tx.BumpDriverCounters(ctx, trip.DriverID, 1, 0, 0); err != nil {
				return err
			}
		}

		cancelled = trip
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return err
}

// staleOr maps a conditional update that matched no row (a lost race) to
// the given domain error.
func staleOr(err error, stale error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stale
	}
	return err
}
