package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/fleetflow/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// MonthlyReport renders the monthly fleet summary as a single-sheet
// workbook, one row per calendar month plus a totals row.
func (g *Generator) MonthlyReport(rows []model.MonthlySummary) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Monthly"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Month", "Trips", "Revenue", "Fuel cost", "Maintenance cost"}
	for i, header := range headers {
		col := string(rune('A' + i))
		set(fmt.Sprintf("%s1", col), header)
	}

	var totalTrips int
	var totalRevenue, totalFuel, totalMaint float64
	for i, row := range rows {
		line := i + 2
		set(fmt.Sprintf("A%d", line), row.Month)
		set(fmt.Sprintf("B%d", line), row.TripCount)
		set(fmt.Sprintf("C%d", line), row.Revenue)
		set(fmt.Sprintf("D%d", line), row.FuelCost)
		set(fmt.Sprintf("E%d", line), row.MaintenanceCost)

		totalTrips += row.TripCount
		totalRevenue += row.Revenue
		totalFuel += row.FuelCost
		totalMaint += row.MaintenanceCost
	}

	totalLine := len(rows) + 2
	set(fmt.Sprintf("A%d", totalLine), "Total")
	set(fmt.Sprintf("B%d", totalLine), totalTrips)
	set(fmt.Sprintf("C%d", totalLine), totalRevenue)
	set(fmt.Sprintf("D%d", totalLine), totalFuel)
	set(fmt.Sprintf("E%d", totalLine), totalMaint)

	if err := file.SetColWidth(sheet, "A", "E", 18); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
