package report

import (
	"bytes"
	"testing"
	"time"

	"fueltrack-backend/lib/telemetry"
	"fueltrack-backend/lib/timezone"
	"fueltrack-backend/services/fuel/db"

	"github.com/stretchr/testify/require"
)

func TestBuildDailyReportPDF(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/report")
	defer cleanup()

	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, timezone.Location)
	records := []db.RefuelRecord{
		{
			Rego:               "KPT472",
			ReservationNumber:  "104231",
			CustomerName:       "SMITH, John",
			VehicleDescription: "Toyota Corolla 1.8 Auto",
			Litres:             42.7,
			Cost:               98.21,
			RefueledAt:         date.Add(9 * time.Hour).Unix(),
		},
		{
			Rego:               "MHX201",
			ReservationNumber:  "104248",
			CustomerName:       "NGATA, Mere",
			VehicleDescription: "Suzuki Swift 1.4",
			Litres:             31.2,
			Cost:               71.45,
			RefueledAt:         date.Add(14 * time.Hour).Unix(),
		},
	}

	data, err := BuildDailyReportPDF("Auckland Airport", date, records)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	require.Greater(t, len(data), 1000)
}

func TestBuildDailyReportPDFEmptyDay(t *testing.T) {
	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, timezone.Location)
	data, err := BuildDailyReportPDF("Wellington", date, nil)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildEmail(t *testing.T) {
	mail, err := buildEmail(
		"reports@example.co.nz",
		[]string{"akl@example.co.nz"},
		[]string{"ops@example.co.nz"},
		"Refuel Report",
		"Attached.",
		[]Attachment{{
			Filename:    "refuel-report-2025-03-14.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4 fake"),
		}},
	)
	require.NoError(t, err)

	require.Equal(t, "FuelTrack <reports@example.co.nz>", mail.From)
	require.Equal(t, []string{"akl@example.co.nz"}, mail.To)
	require.Equal(t, []string{"ops@example.co.nz"}, mail.Cc)
	require.Len(t, mail.Attachments, 1)
	require.Equal(t, "refuel-report-2025-03-14.pdf", mail.Attachments[0].Filename)

	raw, err := mail.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(raw), "Refuel Report")
}
