package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/fleetflow/internal/model"
)

// FleetService covers the plain data-access side of the fleet: vehicle and
// driver registration, fuel logging, and filtered reads. State transitions
// driven by trips live in DispatchService.
type FleetService struct {
	store Store
	now   func() time.Time
}

func NewFleetService(store Store) *FleetService {
	return &FleetService{store: store, now: time.Now}
}

type CreateVehicleInput struct {
	Name            string
	LicensePlate    string
	Category        string
	MaxCapacityKg   float64
	Odometer        float64
	AcquisitionCost float64
}

func (s *FleetService) CreateVehicle(ctx context.Context, in CreateVehicleInput) (*model.Vehicle, error) {
	if in.Name == "" || in.LicensePlate == "" {
		return nil, fmt.Errorf("%w: name and license_plate are required", ErrInvalidInput)
	}
	if in.MaxCapacityKg <= 0 {
		return nil, fmt.Errorf("%w: max_capacity_kg must be positive", ErrInvalidInput)
	}
	if in.Odometer < 0 || in.AcquisitionCost < 0 {
		return nil, fmt.Errorf("%w: odometer and acquisition_cost must not be negative", ErrInvalidInput)
	}

	vehicle := model.Vehicle{
		ID:              uuid.New(),
		Name:            in.Name,
		LicensePlate:    in.LicensePlate,
		Category:        in.Category,
		MaxCapacityKg:   in.MaxCapacityKg,
		Odometer:        in.Odometer,
		AcquisitionCost: in.AcquisitionCost,
		Status:          model.VehicleStatusAvailable,
		CreatedAt:       s.now(),
	}
	if err := s.store.InsertVehicle(ctx, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *FleetService) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.store.GetVehicle(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "vehicle")
	}
	return vehicle, nil
}

func (s *FleetService) ListVehicles(ctx context.Context, status *model.VehicleStatus) ([]model.Vehicle, error) {
	if status != nil {
		return s.store.ListVehiclesByStatus(ctx, *status)
	}
	return s.store.ListVehicles(ctx)
}

// RetireVehicle is terminal; retired vehicles are never hard-deleted. A
// vehicle cannot retire mid-trip.
func (s *FleetService) RetireVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var retired *model.Vehicle
	err := s.store.Transact(ctx, func(tx Store) error {
		vehicle, err := tx.GetVehicle(ctx, id)
		if err != nil {
			return notFoundOr(err, "vehicle")
		}
		switch vehicle.Status {
		case model.VehicleStatusRetired:
			return fmt.Errorf("%w: vehicle already retired", ErrInvalidTransition)
		case model.VehicleStatusOnTrip:
			return fmt.Errorf("%w: vehicle on trip", ErrInvalidTransition)
		}
		if err := tx.MoveVehicle(ctx, vehicle.ID, vehicle.Status, model.VehicleStatusRetired); err != nil {
			return staleOr(err, fmt.Errorf("%w: vehicle state changed", ErrInvalidTransition))
		}
		vehicle.Status = model.VehicleStatusRetired
		retired = vehicle
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retired, nil
}

type CreateDriverInput struct {
	Name          string
	LicenseNumber string
	LicenseExpiry time.Time
	Phone         string
	SafetyScore   float64
}

func (s *FleetService) CreateDriver(ctx context.Context, in CreateDriverInput) (*model.Driver, error) {
	if in.Name == "" || in.LicenseNumber == "" {
		return nil, fmt.Errorf("%w: name and license_number are required", ErrInvalidInput)
	}
	if in.LicenseExpiry.IsZero() {
		return nil, fmt.Errorf("%w: license_expiry is required", ErrInvalidInput)
	}
	if in.SafetyScore < 0 || in.SafetyScore > 100 {
		return nil, fmt.Errorf("%w: safety_score must be within 0-100", ErrInvalidInput)
	}

	driver := model.Driver{
		ID:            uuid.New(),
		Name:          in.Name,
		LicenseNumber: in.LicenseNumber,
		LicenseExpiry: in.LicenseExpiry,
		Phone:         in.Phone,
		Status:        model.DriverStatusOffDuty,
		SafetyScore:   in.SafetyScore,
		CreatedAt:     s.now(),
	}
	if err := s.store.InsertDriver(ctx, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *FleetService) GetDriver(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.store.GetDriver(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "driver")
	}
	return driver, nil
}

func (s *FleetService) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	return s.store.ListDrivers(ctx)
}

// SetDriverStatus handles the manual duty roster: on duty, off duty,
// suspended. OnTrip is owned by the dispatch state machine and cannot be
// set or left by hand.
func (s *FleetService) SetDriverStatus(ctx context.Context, id uuid.UUID, status model.DriverStatus) (*model.Driver, error) {
	if status == model.DriverStatusOnTrip {
		return nil, fmt.Errorf("%w: OnTrip is set by dispatch only", ErrInvalidTransition)
	}

	var updated *model.Driver
	err := s.store.Transact(ctx, func(tx Store) error {
		driver, err := tx.GetDriver(ctx, id)
		if err != nil {
			return notFoundOr(err, "driver")
		}
		if driver.Status == model.DriverStatusOnTrip {
			return fmt.Errorf("%w: driver on trip", ErrInvalidTransition)
		}
		if err := tx.MoveDriver(ctx, driver.ID, driver.Status, status); err != nil {
			return staleOr(err, fmt.Errorf("%w: driver state changed", ErrInvalidTransition))
		}
		driver.Status = status
		updated = driver
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

type AddFuelLogInput struct {
	VehicleID uuid.UUID
	Liters    float64
	Cost      float64
	Date      time.Time
	Odometer  float64
}

// AddFuelLog appends a fuel record; price per liter is derived here once.
func (s *FleetService) AddFuelLog(ctx context.Context, in AddFuelLogInput) (*model.FuelLog, error) {
	if in.Liters <= 0 {
		return nil, fmt.Errorf("%w: liters must be positive", ErrInvalidInput)
	}
	if in.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must not be negative", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		in.Date = s.now()
	}

	if _, err := s.store.GetVehicle(ctx, in.VehicleID); err != nil {
		return nil, notFoundOr(err, "vehicle")
	}

	log := model.FuelLog{
		ID:            uuid.New(),
		VehicleID:     in.VehicleID,
		Liters:        in.Liters,
		Cost:          in.Cost,
		PricePerLiter: in.Cost / in.Liters,
		Date:          in.Date,
		Odometer:      in.Odometer,
		CreatedAt:     s.now(),
	}
	if err := s.store.InsertFuelLog(ctx, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *FleetService) ListFuelLogs(ctx context.Context, vehicleID uuid.UUID) ([]model.FuelLog, error) {
	if _, err := s.store.GetVehicle(ctx, vehicleID); err != nil {
		return nil, notFoundOr(err, "vehicle")
	}
	return s.store.ListFuelLogsByVehicle(ctx, vehicleID)
}

func (s *FleetService) ListMaintenanceLogs(ctx context.Context, vehicleID uuid.UUID) ([]model.MaintenanceLog, error) {
	if _, err := s.store.GetVehicle(ctx, vehicleID); err != nil {
		return nil, notFoundOr(err, "vehicle")
	}
	return s.store.ListMaintenanceLogsByVehicle(ctx, vehicleID)
}

func (s *FleetService) ListTrips(ctx context.Context, status *model.TripStatus) ([]model.Trip, error) {
	if status != nil {
		return s.store.ListTripsByStatus(ctx, *status)
	}
	return s.store.ListTrips(ctx)
}

func (s *FleetService) GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.store.GetTrip(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "trip")
	}
	return trip, nil
}
