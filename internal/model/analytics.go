package model

import "github.com/google/uuid"

// FleetSummary is a read-side snapshot across the whole fleet.
type FleetSummary struct {
	TotalVehicles        int                   `json:"total_vehicles"`
	VehiclesByStatus     map[VehicleStatus]int `json:"vehicles_by_status"`
	TotalDrivers         int                   `json:"total_drivers"`
	DriversByStatus      map[DriverStatus]int  `json:"drivers_by_status"`
	TripsByStatus        map[TripStatus]int    `json:"trips_by_status"`
	UtilizationPct       int                   `json:"utilization_pct"`
	TotalRevenue         float64               `json:"total_revenue"`
	TotalFuelCost        float64               `json:"total_fuel_cost"`
	TotalMaintenanceCost float64               `json:"total_maintenance_cost"`
	AvgCostPerKm         float64               `json:"avg_cost_per_km"`
}

type VehicleROI struct {
	VehicleID            uuid.UUID `json:"vehicle_id"`
	VehicleName          string    `json:"vehicle_name"`
	TotalRevenue         float64   `json:"total_revenue"`
	TotalFuelCost        float64   `json:"total_fuel_cost"`
	TotalMaintenanceCost float64   `json:"total_maintenance_cost"`
	Profit               float64   `json:"profit"`
	ROIPct               float64   `json:"roi_pct"`
	TotalKm              float64   `json:"total_km"`
	TotalLiters          float64   `json:"total_liters"`
	KmPerLiter           float64   `json:"km_per_liter"`
}

type FuelEfficiency struct {
	VehicleID    uuid.UUID `json:"vehicle_id"`
	VehicleName  string    `json:"vehicle_name"`
	LicensePlate string    `json:"license_plate"`
	TotalKm      float64   `json:"total_km"`
	TotalLiters  float64   `json:"total_liters"`
	KmPerLiter   float64   `json:"km_per_liter"`
	FuelSpend    float64   `json:"fuel_spend"`
}

// MonthlySummary groups completed trips, fuel logs and maintenance logs by
// calendar month ("YYYY-MM").
type MonthlySummary struct {
	Month           string  `json:"month"`
	TripCount       int     `json:"trip_count"`
	Revenue         float64 `json:"revenue"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
}

// ScoredVehicle is one recommendation candidate with its score breakdown.
type ScoredVehicle struct {
	Vehicle       Vehicle `json:"vehicle"`
	Score         int     `json:"score"`
	CapacityMatch float64 `json:"capacity_match"`
	CostScore     float64 `json:"cost_score"`
	MaintScore    float64 `json:"maint_score"`
}

type VehicleRecommendation struct {
	Best      ScoredVehicle   `json:"best"`
	RunnersUp []ScoredVehicle `json:"runners_up"`
}

type DriverRanking struct {
	Driver         Driver  `json:"driver"`
	Rank           int     `json:"rank"`
	CompletionRate float64 `json:"completion_rate"`
	OnTimeRate     float64 `json:"on_time_rate"`
	RankingScore   int     `json:"ranking_score"`
}
