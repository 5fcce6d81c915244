package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/fleetflow/internal/model"
)

type MaintenanceService struct {
	store Store
	now   func() time.Time
}

func NewMaintenanceService(store Store) *MaintenanceService {
	return &MaintenanceService{store: store, now: time.Now}
}

type OpenMaintenanceInput struct {
	VehicleID   uuid.UUID
	Description string
	Cost        float64
	Date        time.Time
}

// Open records a new maintenance log and pulls the vehicle into the shop.
// A vehicle on a trip cannot be pulled in.
func (s *MaintenanceService) Open(ctx context.Context, in OpenMaintenanceInput) (*model.MaintenanceLog, error) {
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if in.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must not be negative", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		in.Date = s.now()
	}

	var opened *model.MaintenanceLog
	err := s.store.Transact(ctx, func(tx Store) error {
		vehicle, err := tx.GetVehicle(ctx, in.VehicleID)
		if err != nil {
			return notFoundOr(err, "vehicle")
		}
		if vehicle.Status == model.VehicleStatusOnTrip {
			return fmt.Errorf("%w: vehicle on trip", ErrMaintenanceBlocked)
		}

		log := model.MaintenanceLog{
			ID:          uuid.New(),
			VehicleID:   vehicle.ID,
			Description: in.Description,
			Cost:        in.Cost,
			Date:        in.Date,
			Status:      model.MaintenanceStatusOpen,
			CreatedAt:   s.now(),
		}
		if err := tx.InsertMaintenanceLog(ctx, &log); err != nil {
			return err
		}
		if err := tx.MoveVehicle(ctx, vehicle.ID, vehicle.Status, model.VehicleStatusInShop); err != nil {
			return staleOr(err, fmt.Errorf("%w: vehicle on trip", ErrMaintenanceBlocked))
		}

		opened = &log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return opened, nil
}

// Close finishes an open maintenance log and forces the vehicle back to
// Available. The vehicle's prior status is deliberately not checked;
// closing always releases it.
func (s *MaintenanceService) Close(ctx context.Context, logID uuid.UUID) (*model.MaintenanceLog, error) {
	var closed *model.MaintenanceLog
	err := s.store.Transact(ctx, func(tx Store) error {
		log, err := tx.GetMaintenanceLog(ctx, logID)
		if err != nil {
			return notFoundOr(err, "maintenance log")
		}
		if log.Status == model.MaintenanceStatusClosed {
			return fmt.Errorf("%w: maintenance log already closed", ErrInvalidTransition)
		}

		now := s.now()
		if err := tx.CloseMaintenanceLog(ctx, log.ID, now); err != nil {
			return staleOr(err, fmt.Errorf("%w: maintenance log already closed", ErrInvalidTransition))
		}
		if err := tx.ForceVehicleStatus(ctx, log.VehicleID, model.VehicleStatusAvailable); err != nil {
			return err
		}

		log.Status = model.MaintenanceStatusClosed
		log.ClosedAt = &now
		closed = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}
