package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/fleetflow/internal/model"
)

// Store is the persistence capability set the core depends on: get, list,
// insert, and a handful of conditional mutations, all composable inside a
// transaction via Transact. Missing rows surface as gorm.ErrRecordNotFound;
// a conditional mutation that matched no row surfaces the same way, which
// is how a lost optimistic race is detected.
type Store interface {
	// Transact runs fn against a transactional view of the store. All
	// mutations inside fn commit or roll back as one unit.
	Transact(ctx context.Context, fn func(tx Store) error) error

	GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	GetMaintenanceLog(ctx context.Context, id uuid.UUID) (*model.MaintenanceLog, error)

	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListVehiclesByStatus(ctx context.Context, status model.VehicleStatus) ([]model.Vehicle, error)
	ListDrivers(ctx context.Context) ([]model.Driver, error)
	ListTrips(ctx context.Context) ([]model.Trip, error)
	ListTripsByStatus(ctx context.Context, status model.TripStatus) ([]model.Trip, error)
	ListTripsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Trip, error)
	ListFuelLogs(ctx context.Context) ([]model.FuelLog, error)
	ListFuelLogsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.FuelLog, error)
	ListMaintenanceLogs(ctx context.Context) ([]model.MaintenanceLog, error)
	ListMaintenanceLogsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.MaintenanceLog, error)

	InsertVehicle(ctx context.Context, v *model.Vehicle) error
	InsertDriver(ctx context.Context, d *model.Driver) error
	InsertTrip(ctx context.Context, t *model.Trip) error
	InsertFuelLog(ctx context.Context, f *model.FuelLog) error
	InsertMaintenanceLog(ctx context.Context, m *model.MaintenanceLog) error

	// UpdateTrip persists t's mutable fields, conditional on the row still
	// holding status expect.
	UpdateTrip(ctx context.Context, t *model.Trip, expect model.TripStatus) error

	// MoveVehicle flips a vehicle's status, conditional on the current one.
	MoveVehicle(ctx context.Context, id uuid.UUID, from, to model.VehicleStatus) error
	// ReleaseVehicle returns an OnTrip vehicle to Available and advances
	// its odometer.
	ReleaseVehicle(ctx context.Context, id uuid.UUID, odometer float64) error
	// ForceVehicleStatus sets a vehicle's status unconditionally.
	ForceVehicleStatus(ctx context.Context, id uuid.UUID, to model.VehicleStatus) error

	MoveDriver(ctx context.Context, id uuid.UUID, from, to model.DriverStatus) error
	ForceDriverStatus(ctx context.Context, id uuid.UUID, to model.DriverStatus) error
	// BumpDriverCounters increments the trip counters; counters only grow.
	BumpDriverCounters(ctx context.Context, id uuid.UUID, total, completed, onTime int) error

	CloseMaintenanceLog(ctx context.Context, id uuid.UUID, closedAt time.Time) error
}
