package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetflow/internal/model"
)

func newFleet(store *fakeStore) *FleetService {
	svc := NewFleetService(store)
	svc.now = fixedClock
	return svc
}

func TestCreateVehicle(t *testing.T) {
	store := newFakeStore()
	svc := newFleet(store)

	vehicle, err := svc.CreateVehicle(context.Background(), CreateVehicleInput{
		Name:            "Volvo FH16",
		LicensePlate:    "KZ 777 ABC",
		Category:        "heavy",
		MaxCapacityKg:   20000,
		Odometer:        125000,
		AcquisitionCost: 42000000,
	})
	require.NoError(t, err)

	require.Equal(t, model.VehicleStatusAvailable, vehicle.Status)
	require.Equal(t, testNow, vehicle.CreatedAt)
	require.NotNil(t, store.vehicles[vehicle.ID])
}

func TestCreateVehicleValidation(t *testing.T) {
	svc := newFleet(newFakeStore())

	cases := []CreateVehicleInput{
		{LicensePlate: "A1", MaxCapacityKg: 100},
		{Name: "Truck", MaxCapacityKg: 100},
		{Name: "Truck", LicensePlate: "A1"},
		{Name: "Truck", LicensePlate: "A1", MaxCapacityKg: -5},
		{Name: "Truck", LicensePlate: "A1", MaxCapacityKg: 100, Odometer: -1},
		{Name: "Truck", LicensePlate: "A1", MaxCapacityKg: 100, AcquisitionCost: -1},
	}
	for _, in := range cases {
		_, err := svc.CreateVehicle(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestRetireVehicle(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newFleet(store)

	retired, err := svc.RetireVehicle(context.Background(), vehicle.ID)
	require.NoError(t, err)
	require.Equal(t, model.VehicleStatusRetired, retired.Status)
	require.Equal(t, model.VehicleStatusRetired, store.vehicles[vehicle.ID].Status)

	_, err = svc.RetireVehicle(context.Background(), vehicle.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRetireVehicleBlockedOnTrip(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusOnTrip, 500, 1000)
	svc := newFleet(store)

	_, err := svc.RetireVehicle(context.Background(), vehicle.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, model.VehicleStatusOnTrip, store.vehicles[vehicle.ID].Status)
}

func TestCreateDriver(t *testing.T) {
	store := newFakeStore()
	svc := newFleet(store)

	driver, err := svc.CreateDriver(context.Background(), CreateDriverInput{
		Name:          "Aidos",
		LicenseNumber: "DL-1042",
		LicenseExpiry: testNow.AddDate(2, 0, 0),
		SafetyScore:   85,
	})
	require.NoError(t, err)

	require.Equal(t, model.DriverStatusOffDuty, driver.Status)
	require.Zero(t, driver.TotalTrips)
	require.NotNil(t, store.drivers[driver.ID])
}

func TestCreateDriverValidation(t *testing.T) {
	svc := newFleet(newFakeStore())
	expiry := testNow.AddDate(1, 0, 0)

	cases := []CreateDriverInput{
		{LicenseNumber: "DL-1", LicenseExpiry: expiry},
		{Name: "Aidos", LicenseExpiry: expiry},
		{Name: "Aidos", LicenseNumber: "DL-1"},
		{Name: "Aidos", LicenseNumber: "DL-1", LicenseExpiry: expiry, SafetyScore: -1},
		{Name: "Aidos", LicenseNumber: "DL-1", LicenseExpiry: expiry, SafetyScore: 101},
	}
	for _, in := range cases {
		_, err := svc.CreateDriver(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestSetDriverStatus(t *testing.T) {
	store := newFakeStore()
	driver := seedDriver(t, store, model.DriverStatusOffDuty, testNow.AddDate(1, 0, 0))
	svc := newFleet(store)

	updated, err := svc.SetDriverStatus(context.Background(), driver.ID, model.DriverStatusOnDuty)
	require.NoError(t, err)
	require.Equal(t, model.DriverStatusOnDuty, updated.Status)
	require.Equal(t, model.DriverStatusOnDuty, store.drivers[driver.ID].Status)
}

func TestSetDriverStatusGuardsOnTrip(t *testing.T) {
	store := newFakeStore()
	driver := seedDriver(t, store, model.DriverStatusOnDuty, testNow.AddDate(1, 0, 0))
	svc := newFleet(store)

	_, err := svc.SetDriverStatus(context.Background(), driver.ID, model.DriverStatusOnTrip)
	require.ErrorIs(t, err, ErrInvalidTransition)

	store.drivers[driver.ID].Status = model.DriverStatusOnTrip
	_, err = svc.SetDriverStatus(context.Background(), driver.ID, model.DriverStatusOffDuty)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAddFuelLogDerivesPrice(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newFleet(store)

	log, err := svc.AddFuelLog(context.Background(), AddFuelLogInput{
		VehicleID: vehicle.ID,
		Liters:    40,
		Cost:      10000,
		Odometer:  1050,
	})
	require.NoError(t, err)

	require.Equal(t, 250.0, log.PricePerLiter)
	require.Equal(t, testNow, log.Date)
	require.Len(t, store.fuelLogs, 1)
}

func TestAddFuelLogValidation(t *testing.T) {
	store := newFakeStore()
	vehicle := seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	svc := newFleet(store)

	_, err := svc.AddFuelLog(context.Background(), AddFuelLogInput{VehicleID: vehicle.ID, Liters: 0, Cost: 100})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddFuelLog(context.Background(), AddFuelLogInput{VehicleID: vehicle.ID, Liters: 10, Cost: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddFuelLog(context.Background(), AddFuelLogInput{VehicleID: uuid.New(), Liters: 10, Cost: 100})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListVehiclesFiltersByStatus(t *testing.T) {
	store := newFakeStore()
	seedVehicle(t, store, model.VehicleStatusAvailable, 500, 1000)
	seedVehicle(t, store, model.VehicleStatusInShop, 800, 2000)
	svc := newFleet(store)

	all, err := svc.ListVehicles(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	status := model.VehicleStatusInShop
	inShop, err := svc.ListVehicles(context.Background(), &status)
	require.NoError(t, err)
	require.Len(t, inShop, 1)
	require.Equal(t, model.VehicleStatusInShop, inShop[0].Status)
}

func TestListLogsRequireExistingVehicle(t *testing.T) {
	svc := newFleet(newFakeStore())

	_, err := svc.ListFuelLogs(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListMaintenanceLogs(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
