package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

// aggregateSource is the read side the Aggregator needs.
type aggregateSource interface {
	ListGearViews(ctx context.Context) ([]models.GearView, error)
	GetGearView(ctx context.Context, id int64) (*models.GearView, error)
	NextMaintenanceDate(ctx context.Context, gearID int64) (*models.Date, error)
}

var _ aggregateSource = (repository.Store)(nil)

// Aggregator derives next_maintenance_date = MIN(scheduled_date) over all
// schedules of a gear, historical ones included. Nothing is cached: every
// call recomputes from the schedule rows.
type Aggregator struct {
	src    aggregateSource
	logger *slog.Logger
}

func NewAggregator(src aggregateSource, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Aggregator{src: src, logger: logger}
}

// Annotated returns every gear with its next maintenance date, ordered by id.
func (a *Aggregator) Annotated(ctx context.Context) ([]models.GearView, error) {
	out, err := a.src.ListGearViews(ctx)
	if err != nil {
		return nil, classifyStoreErr(a.logger, "aggregate next maintenance", err)
	}
	return out, nil
}

// AnnotatedGear returns one annotated gear, or nil when it does not exist.
func (a *Aggregator) AnnotatedGear(ctx context.Context, id int64) (*models.GearView, error) {
	out, err := a.src.GetGearView(ctx, id)
	if err != nil {
		return nil, classifyStoreErr(a.logger, "aggregate next maintenance", err)
	}
	return out, nil
}

// NextMaintenanceDate returns the earliest scheduled date for gearID, or nil.
func (a *Aggregator) NextMaintenanceDate(ctx context.Context, gearID int64) (*models.Date, error) {
	out, err := a.src.NextMaintenanceDate(ctx, gearID)
	if err != nil {
		return nil, classifyStoreErr(a.logger, "next maintenance date", err)
	}
	return out, nil
}
