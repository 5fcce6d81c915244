package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/fleetflow/internal/model"
)

func TestMonthlyReport(t *testing.T) {
	rows := []model.MonthlySummary{
		{Month: "2025-01", TripCount: 3, Revenue: 12000, FuelCost: 1500, MaintenanceCost: 400},
		{Month: "2025-02", TripCount: 5, Revenue: 20000, FuelCost: 2500, MaintenanceCost: 0},
	}

	content, err := NewGenerator().MonthlyReport(rows)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	header, err := file.GetCellValue("Monthly", "A1")
	require.NoError(t, err)
	require.Equal(t, "Month", header)

	month, err := file.GetCellValue("Monthly", "A2")
	require.NoError(t, err)
	require.Equal(t, "2025-01", month)

	trips, err := file.GetCellValue("Monthly", "B3")
	require.NoError(t, err)
	require.Equal(t, "5", trips)

	totalLabel, err := file.GetCellValue("Monthly", "A4")
	require.NoError(t, err)
	require.Equal(t, "Total", totalLabel)

	totalRevenue, err := file.GetCellValue("Monthly", "C4")
	require.NoError(t, err)
	require.Equal(t, "32000", totalRevenue)
}

func TestMonthlyReportEmpty(t *testing.T) {
	content, err := NewGenerator().MonthlyReport(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	totalLabel, err := file.GetCellValue("Monthly", "A2")
	require.NoError(t, err)
	require.Equal(t, "Total", totalLabel)
}
