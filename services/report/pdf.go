package report

import (
	"bytes"
	"fmt"
	"time"

	"fueltrack-backend/lib/timezone"
	"fueltrack-backend/services/fuel/db"

	"codeberg.org/go-pdf/fpdf"
)

// BuildDailyReportPDF renders one branch's refuel records for a day as
// a landscape A4 table.
func BuildDailyReportPDF(branchName string, date time.Time, records []db.RefuelRecord) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Daily Refuel Report - %s", branchName))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, timezone.FormatRCMDate(date))
	pdf.Ln(12)

	headers := []string{"Time", "Rego", "Res No", "Customer", "Vehicle", "Litres", "Cost"}
	widths := []float64{22, 26, 24, 60, 70, 25, 25}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	var totalLitres, totalCost float64
	for _, r := range records {
		at := time.Unix(r.RefueledAt, 0).In(timezone.Location)
		cols := []string{
			at.Format("15:04"),
			r.Rego,
			r.ReservationNumber,
			r.CustomerName,
			r.VehicleDescription,
			fmt.Sprintf("%.1f", r.Litres),
			fmt.Sprintf("$%.2f", r.Cost),
		}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		totalLitres += r.Litres
		totalCost += r.Cost
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 8, fmt.Sprintf("%.1f", totalLitres), "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[6], 8, fmt.Sprintf("$%.2f", totalCost), "1", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
