package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetflow/internal/model"
	"github.com/nurpe/fleetflow/internal/service"
)

// FleetRepository implements service.Store on top of gorm/postgres.
// Conditional mutations use a status guard in the WHERE clause and report
// zero affected rows as gorm.ErrRecordNotFound, which is what makes the
// read-validate-write sequence in the services safe against races.
type FleetRepository struct {
	db *gorm.DB
}

func NewFleetRepository(db *gorm.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

func (r *FleetRepository) Transact(ctx context.Context, fn func(tx service.Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&FleetRepository{db: tx})
	})
}

func (r *FleetRepository) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *FleetRepository) GetDriver(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *FleetRepository) GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *FleetRepository) GetMaintenanceLog(ctx context.Context, id uuid.UUID) (*model.MaintenanceLog, error) {
	var log model.MaintenanceLog
	if err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *FleetRepository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *FleetRepository) ListVehiclesByStatus(ctx context.Context, status model.VehicleStatus) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *FleetRepository) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&drivers).Error
	return drivers, err
}

func (r *FleetRepository) ListTrips(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&trips).Error
	return trips, err
}

func (r *FleetRepository) ListTripsByStatus(ctx context.Context, status model.TripStatus) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&trips).Error
	return trips, err
}

func (r *FleetRepository) ListTripsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at ASC, id ASC").
		Find(&trips).Error
	return trips, err
}

func (r *FleetRepository) ListFuelLogs(ctx context.Context) ([]model.FuelLog, error) {
	var logs []model.FuelLog
	err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&logs).Error
	return logs, err
}

func (r *FleetRepository) ListFuelLogsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.FuelLog, error) {
	var logs []model.FuelLog
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date ASC, id ASC").
		Find(&logs).Error
	return logs, err
}

func (r *FleetRepository) ListMaintenanceLogs(ctx context.Context) ([]model.MaintenanceLog, error) {
	var logs []model.MaintenanceLog
	err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&logs).Error
	return logs, err
}

func (r *FleetRepository) ListMaintenanceLogsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.MaintenanceLog, error) {
	var logs []model.MaintenanceLog
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date ASC, id ASC").
		Find(&logs).Error
	return logs, err
}

func (r *FleetRepository) InsertVehicle(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *FleetRepository) InsertDriver(ctx context.Context, d *model.Driver) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *FleetRepository) InsertTrip(ctx context.Context, t *model.Trip) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *FleetRepository) InsertFuelLog(ctx context.Context, f *model.FuelLog) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FleetRepository) InsertMaintenanceLog(ctx context.Context, m *model.MaintenanceLog) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *FleetRepository) UpdateTrip(ctx context.Context, t *model.Trip, expect model.TripStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("id = ? AND status = ?", t.ID, expect).
		Updates(map[string]interface{}{
			"status":       t.Status,
			"revenue":      t.Revenue,
			"distance_km":  t.DistanceKm,
			"end_odometer": t.EndOdometer,
			"completed_at": t.CompletedAt,
			"notes":        t.Notes,
		})
	return affected(res)
}

func (r *FleetRepository) MoveVehicle(ctx context.Context, id uuid.UUID, from, to model.VehicleStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return affected(res)
}

func (r *FleetRepository) ReleaseVehicle(ctx context.Context, id uuid.UUID, odometer float64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ? AND status = ?", id, model.VehicleStatusOnTrip).
		Updates(map[string]interface{}{
			"status":   model.VehicleStatusAvailable,
			"odometer": odometer,
		})
	return affected(res)
}

func (r *FleetRepository) ForceVehicleStatus(ctx context.Context, id uuid.UUID, to model.VehicleStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("status", to)
	return affected(res)
}

func (r *FleetRepository) MoveDriver(ctx context.Context, id uuid.UUID, from, to model.DriverStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return affected(res)
}

func (r *FleetRepository) ForceDriverStatus(ctx context.Context, id uuid.UUID, to model.DriverStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ?", id).
		Update("status", to)
	return affected(res)
}

func (r *FleetRepository) BumpDriverCounters(ctx context.Context, id uuid.UUID, total, completed, onTime int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Driver{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_trips":     gorm.Expr("total_trips + ?", total),
			"completed_trips": gorm.Expr("completed_trips + ?", completed),
			"on_time_trips":   gorm.Expr("on_time_trips + ?", onTime),
		})
	return affected(res)
}

func (r *FleetRepository) CloseMaintenanceLog(ctx context.Context, id uuid.UUID, closedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.MaintenanceLog{}).
		Where("id = ? AND status = ?", id, model.MaintenanceStatusOpen).
		Updates(map[string]interface{}{
			"status":    model.MaintenanceStatusClosed,
			"closed_at": closedAt,
		})
	return affected(res)
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
