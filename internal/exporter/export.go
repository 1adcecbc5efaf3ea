package exporter

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
)

// Service renders the store into the fixed-schema CSV files.
type Service struct {
	aircraft *repositories.AircraftRepository
	flights  *repositories.FlightRepository
}

// NewService creates an export service over the repository set.
func NewService(repos *repositories.Set) *Service {
	return &Service{
		aircraft: repos.Aircraft,
		flights:  repos.Flight,
	}
}

// ExportAll writes both CSV files concurrently. The first failure cancels
// the sibling export and is returned.
func (s *Service) ExportAll(ctx context.Context, aircraftPath, flightPath string) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.ExportAircraftCSV(ctx, aircraftPath)
	})
	g.Go(func() error {
		return s.ExportFlightsCSV(ctx, flightPath)
	})

	return g.Wait()
}

// ExportAircraftCSV writes the aircraft table to path.
func (s *Service) ExportAircraftCSV(ctx context.Context, path string) error {
	aircraft, err := s.aircraft.ListAll(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create aircraft export file: %w", err)
	}
	defer f.Close()

	if err := WriteAircraftCSV(f, aircraft); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to finalize aircraft export file: %w", err)
	}

	logging.Info("Exported aircraft CSV", "count", len(aircraft), "path", path)
	return nil
}

// ExportFlightsCSV writes the flights table to path, with linked aircraft
// preloaded so the AircraftID column resolves.
func (s *Service) ExportFlightsCSV(ctx context.Context, path string) error {
	flights, err := s.flights.ListAllWithAircraft(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create flight export file: %w", err)
	}
	defer f.Close()

	if err := WriteFlightCSV(f, flights); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to finalize flight export file: %w", err)
	}

	logging.Info("Exported flight CSV", "count", len(flights), "path", path)
	return nil
}
