package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetflow/internal/model"
)

func newMaintenance(store *fakeStore) *MaintenanceService {
	svc := NewMaintenanceService(store)
	svc.now = fixedClock
	return svc
}

func TestOpenMaintenancePullsVehicleIntoShop(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newMaintenance(store)

	log, err := svc.Open(context.Background(), OpenMaintenanceInput{
		VehicleID:   vehicle.ID,
		Description: "brake pads",
		Cost:        450,
	})
	require.NoError(t, err)

	require.Equal(t, model.MaintenanceStatusOpen, log.Status)
	require.Equal(t, vehicle.ID, log.VehicleID)
	require.Equal(t, testNow, log.Date)
	require.Nil(t, log.ClosedAt)
	require.Equal(t, model.VehicleStatusInShop, store.vehicles[vehicle.ID].Status)
}

func TestOpenMaintenanceBlockedWhileOnTrip(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusOnTrip, 500, 1000)
	svc := newMaintenance(store)

	_, err := svc.Open(context.Background(), OpenMaintenanceInput{
		VehicleID:   vehicle.ID,
		Description: "oil change",
	})
	require.ErrorIs(t, err, ErrMaintenanceBlocked)
	require.Equal(t, model.VehicleStatusOnTrip, store.vehicles[vehicle.ID].Status)
	require.Empty(t, store.maintLogs)
}

func TestOpenMaintenanceVehicleNotFound(t *testing.T) {
	svc := newMaintenance(newFakeStore())
	_, err := svc.Open(context.Background(), OpenMaintenanceInput{
		VehicleID:   uuid.New(),
		Description: "inspection",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpenMaintenanceValidation(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newMaintenance(store)

	_, err := svc.Open(context.Background(), OpenMaintenanceInput{VehicleID: vehicle.ID})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Open(context.Background(), OpenMaintenanceInput{
		VehicleID:   vehicle.ID,
		Description: "tires",
		Cost:        -1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCloseMaintenanceReleasesVehicle(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newMaintenance(store)

	log, err := svc.Open(context.Background(), OpenMaintenanceInput{
		VehicleID:   vehicle.ID,
		Description: "suspension",
		Cost:        1200,
	})
	require.NoError(t, err)
	require.Equal(t, model.VehicleStatusInShop, store.vehicles[vehicle.ID].Status)

	closed, err := svc.Close(context.Background(), log.ID)
	require.NoError(t, err)

	require.Equal(t, model.MaintenanceStatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)
	require.Equal(t, testNow, *closed.ClosedAt)
	require.Equal(t, model.VehicleStatusAvailable, store.vehicles[vehicle.ID].Status)
}

// Closing always releases the vehicle, whatever its current status.
func TestCloseMaintenanceForcesAvailable(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newMaintenance(store)

	log, err := svc.Open(context.Background(), OpenMaintenanceInput{
		VehicleID:   vehicle.ID,
		Description: "recall",
	})
	require.NoError(t, err)

	store.vehicles[vehicle.ID].Status = model.VehicleStatusRetired

	_, err = svc.Close(context.Background(), log.ID)
	require.NoError(t, err)
	require.Equal(t, model.VehicleStatusAvailable, store.vehicles[vehicle.ID].Status)
}

func TestCloseMaintenanceTwice(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newMaintenance(store)

	log, err := svc.Open(context.Background(), OpenMaintenanceInput{
		VehicleID:   vehicle.ID,
		Description: "battery",
	})
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), log.ID)
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), log.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCloseMaintenanceNotFound(t *testing.T) {
	svc := newMaintenance(newFakeStore())
	_, err := svc.Close(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
