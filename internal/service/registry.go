package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

// Registry holds the single-insert creation paths and the plain listings.
// Each create validates input, resolves foreign keys through the Checker and
// only then writes one row.
type Registry struct {
	store   repository.Store
	checker *Checker
	logger  *slog.Logger
}

func NewRegistry(store repository.Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Registry{store: store, checker: NewChecker(store), logger: logger}
}

func (r *Registry) CreateDepartment(ctx context.Context, d *models.Department) (*models.Department, error) {
	if d == nil {
		return nil, ValidationError("department is required")
	}
	if err := requireName(&d.Name, "department_name"); err != nil {
		return nil, err
	}

	id, err := r.store.CreateDepartment(ctx, d)
	if err != nil {
		return nil, r.storeErr("create department", err)
	}
	d.ID = id

	return d, nil
}

func (r *Registry) CreateStation(ctx context.Context, s *models.Station) (*models.Station, error) {
	if s == nil {
		return nil, ValidationError("station is required")
	}
	if err := requireName(&s.Name, "name"); err != nil {
		return nil, err
	}
	if err := r.checker.Optional(ctx, models.EntityDepartment, s.DepartmentID); err != nil {
		return nil, r.logReject(err)
	}

	id, err := r.store.CreateStation(ctx, s)
	if err != nil {
		return nil, r.storeErr("create station", err)
	}
	s.ID = id

	return s, nil
}

func (r *Registry) CreateFirefighter(ctx context.Context, f *models.Firefighter) (*models.Firefighter, error) {
	if f == nil {
		return nil, ValidationError("firefighter is required")
	}
	if err := requireName(&f.Name, "name"); err != nil {
		return nil, err
	}
	if err := r.checker.Optional(ctx, models.EntityStation, f.StationID); err != nil {
		return nil, r.logReject(err)
	}
	if err := r.checker.Optional(ctx, models.EntityDepartment, f.DepartmentID); err != nil {
		return nil, r.logReject(err)
	}

	id, err := r.store.CreateFirefighter(ctx, f)
	if err != nil {
		return nil, r.storeErr("create firefighter", err)
	}
	f.ID = id

	return f, nil
}

func (r *Registry) CreateGear(ctx context.Context, g *models.Gear) (*models.Gear, error) {
	if g == nil {
		return nil, ValidationError("gear is required")
	}
	if err := requireName(&g.Name, "gear_name"); err != nil {
		return nil, err
	}
	if err := r.checker.Required(ctx, models.EntityStation, g.StationID, "station_id"); err != nil {
		return nil, r.logReject(err)
	}

	if g.SerialNumber != nil {
		taken, err := r.store.SerialNumberExists(ctx, *g.SerialNumber)
		if err != nil {
			return nil, r.storeErr("check serial number", err)
		}
		if taken {
			return nil, r.logReject(ConflictError("serial number %q is already in use", *g.SerialNumber))
		}
	}

	id, err := r.store.CreateGear(ctx, g)
	if err != nil {
		return nil, r.storeErr("create gear", err)
	}
	g.ID = id

	return g, nil
}

func (r *Registry) CreateInspection(ctx context.Context, i *models.Inspection) (*models.Inspection, error) {
	if i == nil {
		return nil, ValidationError("inspection is required")
	}
	if err := r.checker.Required(ctx, models.EntityGear, i.GearID, "gear_id"); err != nil {
		return nil, r.logReject(err)
	}
	if err := r.checker.Optional(ctx, models.EntityFirefighter, i.InspectorID); err != nil {
		return nil, r.logReject(err)
	}

	id, err := r.store.CreateInspection(ctx, i)
	if err != nil {
		return nil, r.storeErr("create inspection", err)
	}
	i.ID = id

	return i, nil
}

// CreateDamageReport resolves reporterName to a firefighter id by exact match.
// An unmatched name leaves the reporter unset rather than failing. When no
// name is given, an explicit ReporterID is validated as a foreign key.
func (r *Registry) CreateDamageReport(ctx context.Context, d *models.DamageReport, reporterName *string) (*models.DamageReport, error) {
	if d == nil {
		return nil, ValidationError("damage report is required")
	}
	if err := r.checker.Required(ctx, models.EntityGear, d.GearID, "gear_id"); err != nil {
		return nil, r.logReject(err)
	}

	if reporterName != nil && strings.TrimSpace(*reporterName) != "" {
		name := strings.TrimSpace(*reporterName)
		id, err := r.store.FindFirefighterIDByName(ctx, name)
		if err != nil {
			return nil, r.storeErr("resolve reporter", err)
		}
		if id == nil {
			r.logger.Info("damage report reporter not found", "reporter_name", name, "gear_id", d.GearID)
		}
		d.ReporterID = id
	} else if err := r.checker.Optional(ctx, models.EntityFirefighter, d.ReporterID); err != nil {
		return nil, r.logReject(err)
	}

	id, err := r.store.CreateDamageReport(ctx, d)
	if err != nil {
		return nil, r.storeErr("create damage report", err)
	}
	d.ID = id

	return d, nil
}

// CreateReminder stores a stand-alone reminder; schedule-derived reminders are
// written by the Scheduler.
func (r *Registry) CreateReminder(ctx context.Context, m *models.MaintenanceReminder) (*models.MaintenanceReminder, error) {
	if m == nil {
		return nil, ValidationError("reminder is required")
	}
	if err := r.checker.Required(ctx, models.EntityGear, m.GearID, "gear_id"); err != nil {
		return nil, r.logReject(err)
	}
	if err := r.checker.Optional(ctx, models.EntitySchedule, m.ScheduleID); err != nil {
		return nil, r.logReject(err)
	}

	id, err := r.store.CreateReminder(ctx, m)
	if err != nil {
		return nil, r.storeErr("create reminder", err)
	}
	m.ID = id

	return m, nil
}

func (r *Registry) ListDepartments(ctx context.Context) ([]models.Department, error) {
	out, err := r.store.ListDepartments(ctx)
	if err != nil {
		return nil, r.storeErr("list departments", err)
	}
	return out, nil
}

func (r *Registry) ListStations(ctx context.Context) ([]models.Station, error) {
	out, err := r.store.ListStations(ctx)
	if err != nil {
		return nil, r.storeErr("list stations", err)
	}
	return out, nil
}

func (r *Registry) ListFirefighters(ctx context.Context) ([]models.Firefighter, error) {
	out, err := r.store.ListFirefighters(ctx)
	if err != nil {
		return nil, r.storeErr("list firefighters", err)
	}
	return out, nil
}

func (r *Registry) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	out, err := r.store.ListInspections(ctx)
	if err != nil {
		return nil, r.storeErr("list inspections", err)
	}
	return out, nil
}

func (r *Registry) ListDamageReports(ctx context.Context) ([]models.DamageReport, error) {
	out, err := r.store.ListDamageReports(ctx)
	if err != nil {
		return nil, r.storeErr("list damage reports", err)
	}
	return out, nil
}

func (r *Registry) ListReminders(ctx context.Context) ([]models.MaintenanceReminder, error) {
	out, err := r.store.ListReminders(ctx)
	if err != nil {
		return nil, r.storeErr("list reminders", err)
	}
	return out, nil
}

func (r *Registry) logReject(err error) error {
	r.logger.Warn("write rejected", "kind", KindOf(err), "err", err)
	return err
}

func (r *Registry) storeErr(op string, err error) error {
	return classifyStoreErr(r.logger, op, err)
}

// classifyStoreErr turns storage-level constraint failures into the matching
// service kinds; everything else becomes a StorageError.
func classifyStoreErr(logger *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		logger.Warn(op, "kind", KindConflict, "err", err)
		return &Error{Kind: KindConflict, Message: op + ": duplicate value", Err: err}
	case errors.Is(err, repository.ErrDanglingReference):
		logger.Warn(op, "kind", KindReference, "err", err)
		return &Error{Kind: KindReference, Message: op + ": referenced row does not exist", Err: err}
	}

	logger.Error(op, "err", err)
	return StorageError(op, err)
}

// requireName trims *name in place and rejects an empty result.
func requireName(name *string, field string) error {
	*name = strings.TrimSpace(*name)
	if *name == "" {
		return ValidationError("%s must not be empty", field)
	}
	return nil
}
