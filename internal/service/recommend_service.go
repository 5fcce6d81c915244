package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/nurpe/fleetflow/internal/model"
)

// Scoring weights and sentinels for the vehicle recommendation.
const (
	capacityWeight = 0.4
	costWeight     = 0.3
	maintWeight    = 0.3

	// Sentinel cost-per-km for vehicles with no odometer history; drives
	// the cost score to zero.
	unknownCostPerKm = 999
	// Sentinel age in days for vehicles with no closed service on record.
	unknownServiceAgeDays = 999

	maxRunnersUp = 2
)

type RecommendService struct {
	store Store
	now   func() time.Time
}

func NewRecommendService(store Store) *RecommendService {
	return &RecommendService{store: store, now: time.Now}
}

type RecommendInput struct {
	CargoWeightKg float64
	// DistanceKm is accepted but does not factor into the score yet.
	DistanceKm float64
}

// Recommend ranks Available vehicles that can carry the cargo. Ties keep
// input order, so the first candidate with the top score wins.
func (s *RecommendService) Recommend(ctx context.Context, in RecommendInput) (*model.VehicleRecommendation, error) {
	vehicles, err := s.store.ListVehiclesByStatus(ctx, model.VehicleStatusAvailable)
	if err != nil {
		return nil, err
	}

	scored := make([]model.ScoredVehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if vehicle.MaxCapacityKg < in.CargoWeightKg {
			continue
		}
		sv, err := s.score(ctx, vehicle, in.CargoWeightKg)
		if err != nil {
			return nil, err
		}
		scored = append(scored, sv)
	}
	if len(scored) == 0 {
		return nil, ErrNoEligibleVehicle
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	rec := &model.VehicleRecommendation{Best: scored[0]}
	for _, runner := range scored[1:] {
		if len(rec.RunnersUp) == maxRunnersUp {
			break
		}
		rec.RunnersUp = append(rec.RunnersUp, runner)
	}
	return rec, nil
}

func (s *RecommendService) score(ctx context.Context, vehicle model.Vehicle, cargoKg float64) (model.ScoredVehicle, error) {
	capacityMatch := clampScore(100 - ((vehicle.MaxCapacityKg-cargoKg)/vehicle.MaxCapacityKg)*100)

	fuelLogs, err := s.store.ListFuelLogsByVehicle(ctx, vehicle.ID)
	if err != nil {
		return model.ScoredVehicle{}, err
	}
	maintLogs, err := s.store.ListMaintenanceLogsByVehicle(ctx, vehicle.ID)
	if err != nil {
		return model.ScoredVehicle{}, err
	}

	var fuelCost, closedMaintCost float64
	for _, f := range fuelLogs {
		fuelCost += f.Cost
	}
	var lastService *time.Time
	for _, m := range maintLogs {
		if m.Status != model.MaintenanceStatusClosed {
			continue
		}
		closedMaintCost += m.Cost
		at := m.ServicedAt()
		if lastService == nil || at.After(*lastService) {
			lastService = &at
		}
	}

	costPerKm := float64(unknownCostPerKm)
	if vehicle.Odometer > 0 {
		costPerKm = (fuelCost + closedMaintCost) / vehicle.Odometer
	}
	costScore := clampScore(100 - costPerKm*10)

	serviceAgeDays := float64(unknownServiceAgeDays)
	if lastService != nil {
		serviceAgeDays = s.now().Sub(*lastService).Hours() / 24
	}
	maintScore := clampScore(100 - serviceAgeDays*0.5)

	final := math.Round(capacityMatch*capacityWeight + costScore*costWeight + maintScore*maintWeight)

	return model.ScoredVehicle{
		Vehicle:       vehicle,
		Score:         int(final),
		CapacityMatch: capacityMatch,
		CostScore:     costScore,
		MaintScore:    maintScore,
	}, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
