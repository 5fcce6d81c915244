package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/fleetflow/internal/model"
)

type ExcelGenerator interface {
	MonthlyReport(rows []model.MonthlySummary) ([]byte, error)
}

type PDFGenerator interface {
	FleetSummary(summary model.FleetSummary) ([]byte, error)
}

// AnalyticsService folds over trips, fuel logs and maintenance logs. All
// methods are pure reads; repeated calls with no intervening writes return
// identical results.
type AnalyticsService struct {
	store Store
	excel ExcelGenerator
	pdf   PDFGenerator
	now   func() time.Time
}

func NewAnalyticsService(store Store, excel ExcelGenerator, pdf PDFGenerator) *AnalyticsService {
	return &AnalyticsService{store: store, excel: excel, pdf: pdf, now: time.Now}
}

func (s *AnalyticsService) FleetSummary(ctx context.Context) (*model.FleetSummary, error) {
	vehicles, err := s.store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.store.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	fuelLogs, err := s.store.ListFuelLogs(ctx)
	if err != nil {
		return nil, err
	}
	maintLogs, err := s.store.ListMaintenanceLogs(ctx)
	if err != nil {
		return nil, err
	}

	summary := model.FleetSummary{
		TotalVehicles:    len(vehicles),
		VehiclesByStatus: map[model.VehicleStatus]int{},
		TotalDrivers:     len(drivers),
		DriversByStatus:  map[model.DriverStatus]int{},
		TripsByStatus:    map[model.TripStatus]int{},
	}

	onTrip := 0
	for _, v := range vehicles {
		summary.VehiclesByStatus[v.Status]++
		if v.Status == model.VehicleStatusOnTrip {
			onTrip++
		}
	}
	for _, d := range drivers {
		summary.DriversByStatus[d.Status]++
	}

	var totalKm float64
	for _, t := range trips {
		summary.TripsByStatus[t.Status]++
		if t.Status == model.TripStatusCompleted {
			summary.TotalRevenue += t.Revenue
			totalKm += t.DistanceKm
		}
	}
	for _, f := range fuelLogs {
		summary.TotalFuelCost += f.Cost
	}
	for _, m := range maintLogs {
		summary.TotalMaintenanceCost += m.Cost
	}

	if len(vehicles) > 0 {
		summary.UtilizationPct = int(math.Round(float64(onTrip) / float64(len(vehicles)) * 100))
	}
	if totalKm > 0 {
		summary.AvgCostPerKm = round2((summary.TotalFuelCost + summary.TotalMaintenanceCost) / totalKm)
	}
	return &summary, nil
}

func (s *AnalyticsService) VehicleROI(ctx context.Context, vehicleID uuid.UUID) (*model.VehicleROI, error) {
	vehicle, err := s.store.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, notFoundOr(err, "vehicle")
	}
	trips, err := s.store.ListTripsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	fuelLogs, err := s.store.ListFuelLogsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	maintLogs, err := s.store.ListMaintenanceLogsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	roi := model.VehicleROI{VehicleID: vehicle.ID, VehicleName: vehicle.Name}
	for _, t := range trips {
		if t.Status != model.TripStatusCompleted {
			continue
		}
		roi.TotalRevenue += t.Revenue
		roi.TotalKm += t.DistanceKm
	}
	for _, f := range fuelLogs {
		roi.TotalFuelCost += f.Cost
		roi.TotalLiters += f.Liters
	}
	for _, m := range maintLogs {
		roi.TotalMaintenanceCost += m.Cost
	}

	roi.Profit = roi.TotalRevenue - (roi.TotalFuelCost + roi.TotalMaintenanceCost)
	if vehicle.AcquisitionCost > 0 {
		roi.ROIPct = round1(roi.Profit / vehicle.AcquisitionCost * 100)
	}
	if roi.TotalLiters > 0 {
		roi.KmPerLiter = round1(roi.TotalKm / roi.TotalLiters)
	}
	return &roi, nil
}

func (s *AnalyticsService) FuelEfficiency(ctx context.Context) ([]model.FuelEfficiency, error) {
	vehicles, err := s.store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.FuelEfficiency, 0, len(vehicles))
	for _, vehicle := range vehicles {
		trips, err := s.store.ListTripsByVehicle(ctx, vehicle.ID)
		if err != nil {
			return nil, err
		}
		fuelLogs, err := s.store.ListFuelLogsByVehicle(ctx, vehicle.ID)
		if err != nil {
			return nil, err
		}

		eff := model.FuelEfficiency{
			VehicleID:    vehicle.ID,
			VehicleName:  vehicle.Name,
			LicensePlate: vehicle.LicensePlate,
		}
		for _, t := range trips {
			if t.Status == model.TripStatusCompleted {
				eff.TotalKm += t.DistanceKm
			}
		}
		for _, f := range fuelLogs {
			eff.TotalLiters += f.Liters
			eff.FuelSpend += f.Cost
		}
		if eff.TotalLiters > 0 {
			eff.KmPerLiter = round1(eff.TotalKm / eff.TotalLiters)
		}
		result = append(result, eff)
	}
	return result, nil
}

// MonthlySummary buckets completed trips, fuel logs and maintenance logs
// by calendar month, ascending.
func (s *AnalyticsService) MonthlySummary(ctx context.Context) ([]model.MonthlySummary, error) {
	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	fuelLogs, err := s.store.ListFuelLogs(ctx)
	if err != nil {
		return nil, err
	}
	maintLogs, err := s.store.ListMaintenanceLogs(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*model.MonthlySummary{}
	bucket := func(month string) *model.MonthlySummary {
		if b, ok := buckets[month]; ok {
			return b
		}
		b := &model.MonthlySummary{Month: month}
		buckets[month] = b
		return b
	}

	for _, t := range trips {
		if t.Status != model.TripStatusCompleted || t.CompletedAt == nil {
			continue
		}
		b := bucket(monthKey(*t.CompletedAt))
		b.TripCount++
		b.Revenue += t.Revenue
	}
	for _, f := range fuelLogs {
		bucket(monthKey(f.Date)).FuelCost += f.Cost
	}
	for _, m := range maintLogs {
		bucket(monthKey(m.Date)).MaintenanceCost += m.Cost
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	result := make([]model.MonthlySummary, 0, len(months))
	for _, month := range months {
		result = append(result, *buckets[month])
	}
	return result, nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *AnalyticsService) ExportMonthly(ctx context.Context) (*ExportResult, error) {
	rows, err := s.MonthlySummary(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.MonthlyReport(rows)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("fleet-monthly-%s.xlsx", s.now().Format("20060102")),
		Content:  content,
	}, nil
}

func (s *AnalyticsService) ExportSummary(ctx context.Context) (*ExportResult, error) {
	summary, err := s.FleetSummary(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.FleetSummary(*summary)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("fleet-summary-%s.pdf", s.now().Format("20060102")),
		Content:  content,
	}, nil
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
