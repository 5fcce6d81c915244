package service

import (
	"context"
	"math"
	"sort"

	"github.com/nurpe/fleetflow/internal/model"
)

// Driver ranking weights.
const (
	completionRateWeight   = 0.4
	safetyScoreWeight      = 0.3
	onTimeRateWeight       = 0.2
	violationPenaltyWeight = 0.1
	violationPenaltyPer    = 5
)

type RankingService struct {
	store Store
}

func NewRankingService(store Store) *RankingService {
	return &RankingService{store: store}
}

// Rank scores every driver with at least one attempted trip and returns
// them in descending score order. Ranks are strictly sequential starting
// at 1; tied scores keep input order and still receive distinct ranks.
func (s *RankingService) Rank(ctx context.Context) ([]model.DriverRanking, error) {
	drivers, err := s.store.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}

	rankings := make([]model.DriverRanking, 0, len(drivers))
	for _, driver := range drivers {
		if driver.TotalTrips == 0 {
			continue
		}
		rankings = append(rankings, scoreDriver(driver))
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].RankingScore > rankings[j].RankingScore
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings, nil
}

func scoreDriver(driver model.Driver) model.DriverRanking {
	completionRate := float64(driver.CompletedTrips) / float64(driver.TotalTrips) * 100

	onTimeRate := 0.0
	if driver.CompletedTrips > 0 {
		onTimeRate = float64(driver.OnTimeTrips) / float64(driver.CompletedTrips) * 100
	}

	penalty := float64(driver.Violations) * violationPenaltyPer

	score := math.Round(completionRate*completionRateWeight +
		driver.SafetyScore*safetyScoreWeight +
		onTimeRate*onTimeRateWeight -
		penalty*violationPenaltyWeight)

	return model.DriverRanking{
		Driver:         driver,
		CompletionRate: completionRate,
		OnTimeRate:     onTimeRate,
		RankingScore:   int(score),
	}
}
