package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVehicleStatus(t *testing.T) {
	cases := map[string]VehicleStatus{
		"Available": VehicleStatusAvailable,
		"available": VehicleStatusAvailable,
		"OnTrip":    VehicleStatusOnTrip,
		"ON_TRIP":   VehicleStatusOnTrip,
		"on-trip":   VehicleStatusOnTrip,
		"IN_SHOP":   VehicleStatusInShop,
		" Retired ": VehicleStatusRetired,
	}
	for raw, want := range cases {
		got, err := ParseVehicleStatus(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := ParseVehicleStatus("parked")
	require.Error(t, err)
}

func TestParseDriverStatus(t *testing.T) {
	cases := map[string]DriverStatus{
		"OnDuty":    DriverStatusOnDuty,
		"ON_DUTY":   DriverStatusOnDuty,
		"off_duty":  DriverStatusOffDuty,
		"ON_TRIP":   DriverStatusOnTrip,
		"Suspended": DriverStatusSuspended,
	}
	for raw, want := range cases {
		got, err := ParseDriverStatus(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := ParseDriverStatus("resting")
	require.Error(t, err)
}

func TestParseTripStatus(t *testing.T) {
	cases := map[string]TripStatus{
		"Draft":      TripStatusDraft,
		"DISPATCHED": TripStatusDispatched,
		"completed":  TripStatusCompleted,
		"Cancelled":  TripStatusCancelled,
		"canceled":   TripStatusCancelled,
		"CANCELED":   TripStatusCancelled,
	}
	for raw, want := range cases {
		got, err := ParseTripStatus(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := ParseTripStatus("enroute")
	require.Error(t, err)
}

func TestTripTransitions(t *testing.T) {
	require.True(t, TripStatusDraft.CanTransition(TripStatusDispatched))
	require.True(t, TripStatusDraft.CanTransition(TripStatusCancelled))
	require.False(t, TripStatusDraft.CanTransition(TripStatusCompleted))

	require.True(t, TripStatusDispatched.CanTransition(TripStatusCompleted))
	require.True(t, TripStatusDispatched.CanTransition(TripStatusCancelled))
	require.False(t, TripStatusDispatched.CanTransition(TripStatusDraft))

	for _, terminal := range []TripStatus{TripStatusCompleted, TripStatusCancelled} {
		require.True(t, terminal.Terminal())
		for _, to := range []TripStatus{TripStatusDraft, TripStatusDispatched, TripStatusCompleted, TripStatusCancelled} {
			require.False(t, terminal.CanTransition(to))
		}
	}
}
