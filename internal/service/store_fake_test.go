package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetflow/internal/model"
)

// fakeStore is an in-memory Store for service tests. Lists preserve
// insertion order, which is what the recommendation tie-break depends on.
// Conditional mutations enforce the same status guards as the SQL
// implementation and report a miss as gorm.ErrRecordNotFound.
type fakeStore struct {
	vehicles     map[uuid.UUID]*model.Vehicle
	drivers      map[uuid.UUID]*model.Driver
	trips        map[uuid.UUID]*model.Trip
	maintLogs    map[uuid.UUID]*model.MaintenanceLog
	fuelLogs     []model.FuelLog
	vehicleOrder []uuid.UUID
	driverOrder  []uuid.UUID
	tripOrder    []uuid.UUID
	maintOrder   []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		vehicles:  map[uuid.UUID]*model.Vehicle{},
		drivers:   map[uuid.UUID]*model.Driver{},
		trips:     map[uuid.UUID]*model.Trip{},
		maintLogs: map[uuid.UUID]*model.MaintenanceLog{},
	}
}

func (s *fakeStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	return fn(s)
}

func (s *fakeStore) GetVehicle(_ context.Context, id uuid.UUID) (*model.Vehicle, error) {
	v, ok := s.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *v
	return &copied, nil
}

func (s *fakeStore) GetDriver(_ context.Context, id uuid.UUID) (*model.Driver, error) {
	d, ok := s.drivers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *d
	return &copied, nil
}

func (s *fakeStore) GetTrip(_ context.Context, id uuid.UUID) (*model.Trip, error) {
	t, ok := s.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *fakeStore) GetMaintenanceLog(_ context.Context, id uuid.UUID) (*model.MaintenanceLog, error) {
	m, ok := s.maintLogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (s *fakeStore) ListVehicles(_ context.Context) ([]model.Vehicle, error) {
	out := make([]model.Vehicle, 0, len(s.vehicleOrder))
	for _, id := range s.vehicleOrder {
		out = append(out, *s.vehicles[id])
	}
	return out, nil
}

func (s *fakeStore) ListVehiclesByStatus(ctx context.Context, status model.VehicleStatus) ([]model.Vehicle, error) {
	all, _ := s.ListVehicles(ctx)
	out := make([]model.Vehicle, 0, len(all))
	for _, v := range all {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *fakeStore) ListDrivers(_ context.Context) ([]model.Driver, error) {
	out := make([]model.Driver, 0, len(s.driverOrder))
	for _, id := range s.driverOrder {
		out = append(out, *s.drivers[id])
	}
	return out, nil
}

func (s *fakeStore) ListTrips(_ context.Context) ([]model.Trip, error) {
	out := make([]model.Trip, 0, len(s.tripOrder))
	for _, id := range s.tripOrder {
		out = append(out, *s.trips[id])
	}
	return out, nil
}

func (s *fakeStore) ListTripsByStatus(ctx context.Context, status model.TripStatus) ([]model.Trip, error) {
	all, _ := s.ListTrips(ctx)
	out := make([]model.Trip, 0, len(all))
	for _, t := range all {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) ListTripsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Trip, error) {
	all, _ := s.ListTrips(ctx)
	out := make([]model.Trip, 0, len(all))
	for _, t := range all {
		if t.VehicleID == vehicleID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) ListFuelLogs(_ context.Context) ([]model.FuelLog, error) {
	return append([]model.FuelLog(nil), s.fuelLogs...), nil
}

func (s *fakeStore) ListFuelLogsByVehicle(_ context.Context, vehicleID uuid.UUID) ([]model.FuelLog, error) {
	out := make([]model.FuelLog, 0, len(s.fuelLogs))
	for _, f := range s.fuelLogs {
		if f.VehicleID == vehicleID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *fakeStore) ListMaintenanceLogs(_ context.Context) ([]model.MaintenanceLog, error) {
	out := make([]model.MaintenanceLog, 0, len(s.maintOrder))
	for _, id := range s.maintOrder {
		out = append(out, *s.maintLogs[id])
	}
	return out, nil
}

func (s *fakeStore) ListMaintenanceLogsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.MaintenanceLog, error) {
	all, _ := s.ListMaintenanceLogs(ctx)
	out := make([]model.MaintenanceLog, 0, len(all))
	for _, m := range all {
		if m.VehicleID == vehicleID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeStore) InsertVehicle(_ context.Context, v *model.Vehicle) error {
	copied := *v
	s.vehicles[v.ID] = &copied
	s.vehicleOrder = append(s.vehicleOrder, v.ID)
	return nil
}

func (s *fakeStore) InsertDriver(_ context.Context, d *model.Driver) error {
	copied := *d
	s.drivers[d.ID] = &copied
	s.driverOrder = append(s.driverOrder, d.ID)
	return nil
}

func (s *fakeStore) InsertTrip(_ context.Context, t *model.Trip) error {
	copied := *t
	s.trips[t.ID] = &copied
	s.tripOrder = append(s.tripOrder, t.ID)
	return nil
}

func (s *fakeStore) InsertFuelLog(_ context.Context, f *model.FuelLog) error {
	s.fuelLogs = append(s.fuelLogs, *f)
	return nil
}

func (s *fakeStore) InsertMaintenanceLog(_ context.Context, m *model.MaintenanceLog) error {
	copied := *m
	s.maintLogs[m.ID] = &copied
	s.maintOrder = append(s.maintOrder, m.ID)
	return nil
}

func (s *fakeStore) UpdateTrip(_ context.Context, t *model.Trip, expect model.TripStatus) error {
	existing, ok := s.trips[t.ID]
	if !ok || existing.Status != expect {
		return gorm.ErrRecordNotFound
	}
	existing.Status = t.Status
	existing.Revenue = t.Revenue
	existing.DistanceKm = t.DistanceKm
	existing.EndOdometer = t.EndOdometer
	existing.CompletedAt = t.CompletedAt
	existing.Notes = t.Notes
	return nil
}

func (s *fakeStore) MoveVehicle(_ context.Context, id uuid.UUID, from, to model.VehicleStatus) error {
	v, ok := s.vehicles[id]
	if !ok || v.Status != from {
		return gorm.ErrRecordNotFound
	}
	v.Status = to
	return nil
}

func (s *fakeStore) ReleaseVehicle(_ context.Context, id uuid.UUID, odometer float64) error {
	v, ok := s.vehicles[id]
	if !ok || v.Status != model.VehicleStatusOnTrip {
		return gorm.ErrRecordNotFound
	}
	v.Status = model.VehicleStatusAvailable
	v.Odometer = odometer
	return nil
}

func (s *fakeStore) ForceVehicleStatus(_ context.Context, id uuid.UUID, to model.VehicleStatus) error {
	v, ok := s.vehicles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Status = to
	return nil
}

func (s *fakeStore) MoveDriver(_ context.Context, id uuid.UUID, from, to model.DriverStatus) error {
	d, ok := s.drivers[id]
	if !ok || d.Status != from {
		return gorm.ErrRecordNotFound
	}
	d.Status = to
	return nil
}

func (s *fakeStore) ForceDriverStatus(_ context.Context, id uuid.UUID, to model.DriverStatus) error {
	d, ok := s.drivers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Status = to
	return nil
}

func (s *fakeStore) BumpDriverCounters(_ context.Context, id uuid.UUID, total, completed, onTime int) error {
	d, ok := s.drivers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.TotalTrips += total
	d.CompletedTrips += completed
	d.OnTimeTrips += onTime
	return nil
}

func (s *fakeStore) CloseMaintenanceLog(_ context.Context, id uuid.UUID, closedAt time.Time) error {
	m, ok := s.maintLogs[id]
	if !ok || m.Status != model.MaintenanceStatusOpen {
		return gorm.ErrRecordNotFound
	}
	m.Status = model.MaintenanceStatusClosed
	at := closedAt
	m.ClosedAt = &at
	return nil
}

var _ Store = (*fakeStore)(nil)
