// Package fuel stores refuel records keyed by branch, alongside the
// branch, staff and profile rows the UI needs to render its forms.
package fuel

import (
	"context"
	"database/sql"
	"time"

	"fueltrack-backend/lib/telemetry"
	"fueltrack-backend/lib/timezone"
	"fueltrack-backend/services/fuel/db"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("services/fuel")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

func (s Service) ListBranches(ctx context.Context) ([]db.Branch, error) {
	ctx, span := tracer.Start(ctx, "ListBranches")
	defer span.End()

	branches, err := s.qry.ListBranches(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return branches, nil
}

func (s Service) CreateBranch(ctx context.Context, name, reportEmail string) (db.Branch, error) {
	ctx, span := tracer.Start(ctx, "CreateBranch")
	defer span.End()

	branch := db.Branch{
		ID:          uuid.NewString(),
		Name:        name,
		ReportEmail: reportEmail,
		CreatedAt:   timezone.Now().Unix(),
	}
	err := s.qry.CreateBranch(ctx, db.CreateBranchParams(branch))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Branch{}, err
	}
	return branch, nil
}

func (s Service) ListStaff(ctx context.Context, branchID string) ([]db.Staff, error) {
	ctx, span := tracer.Start(ctx, "ListStaff")
	defer span.End()
	span.SetAttributes(attribute.String("branch", branchID))

	staff, err := s.qry.ListStaffForBranch(ctx, branchID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return staff, nil
}

func (s Service) CreateStaff(ctx context.Context, branchID, name string) (db.Staff, error) {
	ctx, span := tracer.Start(ctx, "CreateStaff")
	defer span.End()

	staff := db.Staff{
		ID:       uuid.NewString(),
		BranchID: branchID,
		Name:     name,
		Active:   1,
	}
	err := s.qry.CreateStaff(ctx, db.CreateStaffParams(staff))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Staff{}, err
	}
	return staff, nil
}

// RefuelRecordInput is the caller-supplied portion of a refuel record.
// RefueledAt is a unix timestamp; the UI records it when the staff
// member submits the form.
type RefuelRecordInput struct {
	BranchID           string  `json:"branchId"`
	StaffID            string  `json:"staffId"`
	Rego               string  `json:"rego"`
	ReservationNumber  string  `json:"reservationNumber"`
	CustomerName       string  `json:"customerName"`
	VehicleDescription string  `json:"vehicleDescription"`
	Litres             float64 `json:"litres"`
	Cost               float64 `json:"cost"`
	Odometer           int64   `json:"odometer"`
	Notes              string  `json:"notes"`
	RefueledAt         int64   `json:"refueledAt"`
}

func (s Service) CreateRefuelRecord(ctx context.Context, input RefuelRecordInput) (db.RefuelRecord, error) {
	ctx, span := tracer.Start(ctx, "CreateRefuelRecord")
	defer span.End()
	span.SetAttributes(
		attribute.String("branch", input.BranchID),
		attribute.String("rego", input.Rego),
	)

	record := db.RefuelRecord{
		ID:                 uuid.NewString(),
		BranchID:           input.BranchID,
		StaffID:            input.StaffID,
		Rego:               input.Rego,
		ReservationNumber:  input.ReservationNumber,
		CustomerName:       input.CustomerName,
		VehicleDescription: input.VehicleDescription,
		Litres:             input.Litres,
		Cost:               input.Cost,
		Odometer:           input.Odometer,
		Notes:              input.Notes,
		RefueledAt:         input.RefueledAt,
		CreatedAt:          timezone.Now().Unix(),
	}
	err := s.qry.CreateRefuelRecord(ctx, db.CreateRefuelRecordParams(record))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.RefuelRecord{}, err
	}
	return record, nil
}

// ListRefuelRecords returns a branch's records for the calendar day
// containing the given time, in branch-local time.
func (s Service) ListRefuelRecords(ctx context.Context, branchID string, day time.Time) ([]db.RefuelRecord, error) {
	ctx, span := tracer.Start(ctx, "ListRefuelRecords")
	defer span.End()
	span.SetAttributes(attribute.String("branch", branchID))

	local := day.In(timezone.Location)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, timezone.Location)
	startOfNextDay := startOfDay.AddDate(0, 0, 1)

	records, err := s.qry.ListRefuelRecords(ctx, db.ListRefuelRecordsParams{
		BranchID:     branchID,
		RefueledAt:   startOfDay.Unix(),
		RefueledAt_2: startOfNextDay.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return records, nil
}

func (s Service) UpdateRefuelRecord(ctx context.Context, id string, input RefuelRecordInput) (db.RefuelRecord, error) {
	ctx, span := tracer.Start(ctx, "UpdateRefuelRecord")
	defer span.End()
	span.SetAttributes(attribute.String("record", id))

	err := s.qry.UpdateRefuelRecord(ctx, db.UpdateRefuelRecordParams{
		Rego:               input.Rego,
		ReservationNumber:  input.ReservationNumber,
		CustomerName:       input.CustomerName,
		VehicleDescription: input.VehicleDescription,
		Litres:             input.Litres,
		Cost:               input.Cost,
		Odometer:           input.Odometer,
		Notes:              input.Notes,
		RefueledAt:         input.RefueledAt,
		ID:                 id,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.RefuelRecord{}, err
	}
	return s.qry.GetRefuelRecord(ctx, id)
}

func (s Service) DeleteRefuelRecord(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteRefuelRecord")
	defer span.End()
	span.SetAttributes(attribute.String("record", id))

	err := s.qry.DeleteRefuelRecord(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// UpsertProfile keys on email: the auth layer knows users by email
// before a profile row exists for them.
func (s Service) UpsertProfile(ctx context.Context, profile db.Profile) (db.Profile, error) {
	ctx, span := tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	err := s.qry.UpsertProfile(ctx, db.UpsertProfileParams(profile))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Profile{}, err
	}
	return s.qry.GetProfileByEmail(ctx, profile.Email)
}
