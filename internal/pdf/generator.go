package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/fleetflow/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// FleetSummary renders the fleet-wide snapshot as a one-page report.
func (g *Generator) FleetSummary(summary model.FleetSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Fleet Summary", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Fleet", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	g.keyValue(pdf, "Vehicles", fmt.Sprintf("%d", summary.TotalVehicles))
	for _, status := range []model.VehicleStatus{
		model.VehicleStatusAvailable,
		model.VehicleStatusOnTrip,
		model.VehicleStatusInShop,
		model.VehicleStatusRetired,
	} {
		if count := summary.VehiclesByStatus[status]; count > 0 {
			g.keyValue(pdf, "  "+string(status), fmt.Sprintf("%d", count))
		}
	}
	g.keyValue(pdf, "Drivers", fmt.Sprintf("%d", summary.TotalDrivers))
	g.keyValue(pdf, "Utilization", fmt.Sprintf("%d%%", summary.UtilizationPct))
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Trips", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	for _, status := range []model.TripStatus{
		model.TripStatusDraft,
		model.TripStatusDispatched,
		model.TripStatusCompleted,
		model.TripStatusCancelled,
	} {
		if count := summary.TripsByStatus[status]; count > 0 {
			g.keyValue(pdf, string(status), fmt.Sprintf("%d", count))
		}
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Economics", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	g.keyValue(pdf, "Revenue (completed trips)", fmt.Sprintf("%.2f", summary.TotalRevenue))
	g.keyValue(pdf, "Fuel cost", fmt.Sprintf("%.2f", summary.TotalFuelCost))
	g.keyValue(pdf, "Maintenance cost", fmt.Sprintf("%.2f", summary.TotalMaintenanceCost))
	g.keyValue(pdf, "Avg cost per km", fmt.Sprintf("%.2f", summary.AvgCostPerKm))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) keyValue(pdf *gofpdf.Fpdf, key, value string) {
	pdf.CellFormat(90, 6, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
