// Package report builds and emails per-branch daily refuel reports,
// either on demand or on a cron schedule.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"fueltrack-backend/lib/telemetry"
	"fueltrack-backend/lib/timezone"
	"fueltrack-backend/services/fuel"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("services/report")

type Config struct {
	Smtp SmtpConfig `json:"smtp"`
	// AutoSendCron is a standard 5-field cron expression evaluated in
	// branch-local time; empty disables the daemon.
	AutoSendCron string `json:"auto_send_cron"`
}

type Service struct {
	fuel   fuel.Service
	config Config
	auth   smtp.Auth
}

func NewService(fuelService fuel.Service, config Config) Service {
	return Service{
		fuel:   fuelService,
		config: config,
		auth: smtp.PlainAuth(
			"",
			config.Smtp.EmailAddress,
			config.Smtp.Password,
			config.Smtp.Server,
		),
	}
}

type SendReportInput struct {
	To       []string `json:"to"`
	Cc       []string `json:"cc"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
	BranchID string   `json:"branchId"`
	// DateStr is dd/MM/yyyy like everywhere else in the app.
	DateStr string `json:"dateStr"`
}

// SendBranchReport renders the branch's records for the given day into
// a PDF and emails it.
func (s Service) SendBranchReport(ctx context.Context, input SendReportInput) error {
	ctx, span := tracer.Start(ctx, "SendBranchReport")
	defer span.End()
	span.SetAttributes(
		attribute.String("branch", input.BranchID),
		attribute.String("date", input.DateStr),
	)

	day, err := time.ParseInLocation(timezone.RCMDateLayout, input.DateStr, timezone.Location)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid report date")
		return err
	}

	branchName := input.BranchID
	branches, err := s.fuel.ListBranches(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	for _, b := range branches {
		if b.ID == input.BranchID {
			branchName = b.Name
			break
		}
	}

	records, err := s.fuel.ListRefuelRecords(ctx, input.BranchID, day)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	pdfData, err := BuildDailyReportPDF(branchName, day, records)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build report pdf")
		return err
	}

	subject := input.Subject
	if subject == "" {
		subject = fmt.Sprintf("Refuel Report %s - %s", branchName, input.DateStr)
	}
	message := input.Message
	if message == "" {
		message = fmt.Sprintf("Attached is the refuel report for %s on %s (%d records).",
			branchName, input.DateStr, len(records))
	}

	mail, err := buildEmail(s.config.Smtp.EmailAddress, input.To, input.Cc, subject, message, []Attachment{{
		Filename:    fmt.Sprintf("refuel-report-%s.pdf", day.Format("2006-01-02")),
		ContentType: "application/pdf",
		Data:        pdfData,
	}})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build email")
		return err
	}

	err = s.sendEmail(mail)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}
	return nil
}

// StartAutoSendDaemon emails every branch's report for the previous
// day on the configured cron schedule. Failures are logged and skipped,
// the next tick starts fresh.
func (s Service) StartAutoSendDaemon(ctx context.Context) error {
	if s.config.AutoSendCron == "" {
		return nil
	}

	c := cron.New(cron.WithLocation(timezone.Location))
	_, err := c.AddFunc(s.config.AutoSendCron, func() {
		s.autoSend(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	go func() {
		<-ctx.Done()
		c.Stop()
	}()

	slog.Info("report auto-send daemon started", "schedule", s.config.AutoSendCron)
	return nil
}

func (s Service) autoSend(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "autoSend")
	defer span.End()

	yesterday := timezone.FormatRCMDate(timezone.Now().AddDate(0, 0, -1))

	branches, err := s.fuel.ListBranches(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("auto-send could not list branches", "err", err)
		return
	}

	for _, branch := range branches {
		if branch.ReportEmail == "" {
			continue
		}
		err := s.SendBranchReport(ctx, SendReportInput{
			To:       []string{branch.ReportEmail},
			BranchID: branch.ID,
			DateStr:  yesterday,
		})
		if err != nil {
			slog.Error("auto-send failed for branch",
				"branch", branch.Name, "date", yesterday, "err", err)
			continue
		}
		slog.Info("auto-sent branch report", "branch", branch.Name, "date", yesterday)
	}
}
