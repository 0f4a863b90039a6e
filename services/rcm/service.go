// Package rcm exposes the Rental Car Manager scraper over plain JSON
// endpoints for the fuel-tracking UI.
package rcm

import (
	"context"

	"fueltrack-backend/lib/scrapers/rcm"
	"fueltrack-backend/lib/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("services/rcm")

type Config struct {
	// Host overrides the production portal host, mostly for tests.
	Host     string `json:"host"`
	Scheme   string `json:"scheme"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Service struct {
	client *rcm.Client
	creds  rcm.Credentials
}

func NewService(config Config) Service {
	return Service{
		client: rcm.NewClient(rcm.ClientOptions{
			Host:   config.Host,
			Scheme: config.Scheme,
		}),
		creds: rcm.Credentials{
			Username: config.Username,
			Password: config.Password,
		},
	}
}

// TestLogin runs the full login handshake with the configured
// credentials and reports the outcome without persisting anything.
func (s Service) TestLogin(ctx context.Context) (rcm.LoginOutcome, error) {
	ctx, span := tracer.Start(ctx, "TestLogin")
	defer span.End()

	outcome, err := s.client.AcquireSession(ctx, s.creds)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return rcm.LoginOutcome{}, err
	}
	span.SetAttributes(attribute.Bool("success", outcome.Success))
	return outcome, nil
}

// SearchReservations runs the reservation report for a rego on one day
// using a session the caller obtained earlier.
func (s Service) SearchReservations(ctx context.Context, rego, cookies, dateStr string) ([]rcm.Reservation, error) {
	ctx, span := tracer.Start(ctx, "SearchReservations")
	defer span.End()

	results, err := s.client.SearchReservations(ctx, rego, cookies, dateStr)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return results, nil
}
