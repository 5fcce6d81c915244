package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/fleetflow/internal/model"
	"github.com/nurpe/fleetflow/internal/service"
)

// Wire shapes. Status enums cross the boundary as their canonical strings;
// parsing back happens only here, never in core code.

type vehicleResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	LicensePlate    string    `json:"license_plate"`
	Category        string    `json:"category"`
	MaxCapacityKg   float64   `json:"max_capacity_kg"`
	Odometer        float64   `json:"odometer"`
	AcquisitionCost float64   `json:"acquisition_cost"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func toVehicleResponse(v model.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:              v.ID,
		Name:            v.Name,
		LicensePlate:    v.LicensePlate,
		Category:        v.Category,
		MaxCapacityKg:   v.MaxCapacityKg,
		Odometer:        v.Odometer,
		AcquisitionCost: v.AcquisitionCost,
		Status:          string(v.Status),
		CreatedAt:       v.CreatedAt,
	}
}

func toVehicleResponses(vehicles []model.Vehicle) []vehicleResponse {
	out := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, toVehicleResponse(v))
	}
	return out
}

type driverResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	LicenseNumber  string    `json:"license_number"`
	LicenseExpiry  time.Time `json:"license_expiry"`
	Phone          string    `json:"phone"`
	Status         string    `json:"status"`
	SafetyScore    float64   `json:"safety_score"`
	TotalTrips     int       `json:"total_trips"`
	CompletedTrips int       `json:"completed_trips"`
	OnTimeTrips    int       `json:"on_time_trips"`
	Violations     int       `json:"violations"`
	CreatedAt      time.Time `json:"created_at"`
}

func toDriverResponse(d model.Driver) driverResponse {
	return driverResponse{
		ID:             d.ID,
		Name:           d.Name,
		LicenseNumber:  d.LicenseNumber,
		LicenseExpiry:  d.LicenseExpiry,
		Phone:          d.Phone,
		Status:         string(d.Status),
		SafetyScore:    d.SafetyScore,
		TotalTrips:     d.TotalTrips,
		CompletedTrips: d.CompletedTrips,
		OnTimeTrips:    d.OnTimeTrips,
		Violations:     d.Violations,
		CreatedAt:      d.CreatedAt,
	}
}

func toDriverResponses(drivers []model.Driver) []driverResponse {
	out := make([]driverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, toDriverResponse(d))
	}
	return out
}

type tripResponse struct {
	ID            uuid.UUID  `json:"id"`
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	DriverID      uuid.UUID  `json:"driver_id"`
	CargoWeightKg float64    `json:"cargo_weight_kg"`
	DistanceKm    float64    `json:"distance_km"`
	Revenue       float64    `json:"revenue"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	Notes         string     `json:"notes"`
	StartOdometer float64    `json:"start_odometer"`
	EndOdometer   *float64   `json:"end_odometer,omitempty"`
	Status        string     `json:"status"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toTripResponse(t model.Trip) tripResponse {
	return tripResponse{
		ID:            t.ID,
		VehicleID:     t.VehicleID,
		DriverID:      t.DriverID,
		CargoWeightKg: t.CargoWeightKg,
		DistanceKm:    t.DistanceKm,
		Revenue:       t.Revenue,
		Origin:        t.Origin,
		Destination:   t.Destination,
		Notes:         t.Notes,
		StartOdometer: t.StartOdometer,
		EndOdometer:   t.EndOdometer,
		Status:        string(t.Status),
		ScheduledAt:   t.ScheduledAt,
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
	}
}

func toTripResponses(trips []model.Trip) []tripResponse {
	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	return out
}

type tripResultResponse struct {
	Trip    tripResponse    `json:"trip"`
	Vehicle vehicleResponse `json:"vehicle"`
	Driver  driverResponse  `json:"driver"`
}

func toTripResultResponse(r service.TripResult) tripResultResponse {
	return tripResultResponse{
		Trip:    toTripResponse(r.Trip),
		Vehicle: toVehicleResponse(r.Vehicle),
		Driver:  toDriverResponse(r.Driver),
	}
}

type fuelLogResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	Liters        float64   `json:"liters"`
	Cost          float64   `json:"cost"`
	PricePerLiter float64   `json:"price_per_liter"`
	Date          time.Time `json:"date"`
	Odometer      float64   `json:"odometer"`
}

func toFuelLogResponse(f model.FuelLog) fuelLogResponse {
	return fuelLogResponse{
		ID:            f.ID,
		VehicleID:     f.VehicleID,
		Liters:        f.Liters,
		Cost:          f.Cost,
		PricePerLiter: f.PricePerLiter,
		Date:          f.Date,
		Odometer:      f.Odometer,
	}
}

type maintenanceLogResponse struct {
	ID          uuid.UUID  `json:"id"`
	VehicleID   uuid.UUID  `json:"vehicle_id"`
	Description string     `json:"description"`
	Cost        float64    `json:"cost"`
	Date        time.Time  `json:"date"`
	Status      string     `json:"status"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

func toMaintenanceLogResponse(m model.MaintenanceLog) maintenanceLogResponse {
	return maintenanceLogResponse{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		Description: m.Description,
		Cost:        m.Cost,
		Date:        m.Date,
		Status:      string(m.Status),
		ClosedAt:    m.ClosedAt,
	}
}

type scoredVehicleResponse struct {
	Vehicle       vehicleResponse `json:"vehicle"`
	Score         int             `json:"score"`
	CapacityMatch float64         `json:"capacity_match"`
	CostScore     float64         `json:"cost_score"`
	MaintScore    float64         `json:"maint_score"`
}

func toScoredVehicleResponse(sv model.ScoredVehicle) scoredVehicleResponse {
	return scoredVehicleResponse{
		Vehicle:       toVehicleResponse(sv.Vehicle),
		Score:         sv.Score,
		CapacityMatch: sv.CapacityMatch,
		CostScore:     sv.CostScore,
		MaintScore:    sv.MaintScore,
	}
}

type recommendationResponse struct {
	Best      scoredVehicleResponse   `json:"best"`
	RunnersUp []scoredVehicleResponse `json:"runners_up"`
}

func toRecommendationResponse(rec model.VehicleRecommendation) recommendationResponse {
	out := recommendationResponse{
		Best:      toScoredVehicleResponse(rec.Best),
		RunnersUp: make([]scoredVehicleResponse, 0, len(rec.RunnersUp)),
	}
	for _, sv := range rec.RunnersUp {
		out.RunnersUp = append(out.RunnersUp, toScoredVehicleResponse(sv))
	}
	return out
}

type driverRankingResponse struct {
	Driver         driverResponse `json:"driver"`
	Rank           int            `json:"rank"`
	CompletionRate float64        `json:"completion_rate"`
	OnTimeRate     float64        `json:"on_time_rate"`
	RankingScore   int            `json:"ranking_score"`
}

func toDriverRankingResponses(rankings []model.DriverRanking) []driverRankingResponse {
	out := make([]driverRankingResponse, 0, len(rankings))
	for _, r := range rankings {
		out = append(out, driverRankingResponse{
			Driver:         toDriverResponse(r.Driver),
			Rank:           r.Rank,
			CompletionRate: r.CompletionRate,
			OnTimeRate:     r.OnTimeRate,
			RankingScore:   r.RankingScore,
		})
	}
	return out
}
