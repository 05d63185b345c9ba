package sqlite_test

import (
	"context"
	"embed"
	"errors"
	"strings"
	"testing"
	"time"

	dbfs "github.com/PONGPONGz/GearMate/db"
	"github.com/PONGPONGz/GearMate/internal/config"
	dbpkg "github.com/PONGPONGz/GearMate/internal/db"
	"github.com/PONGPONGz/GearMate/internal/models"
	sqlite "github.com/PONGPONGz/GearMate/internal/repository/sqlite"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

func setupRepo(t *testing.T) (*sqlite.SQLiteRepo, func()) {
	t.Helper()
	ctx := context.Background()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	d, err := dbpkg.New(ctx, config.WithPragmas("file:"+name+"?mode=memory&cache=shared"), nil)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations, embed.FS{}); err != nil {
		d.Close()
		t.Fatalf("failed to migrate: %v", err)
	}

	repo := sqlite.New(d, nil)
	return repo, func() { d.Close() }
}

func ptr[T any](v T) *T { return &v }

// seedGear creates a department, station and gear and returns the gear id.
func seedGear(t *testing.T, repo *sqlite.SQLiteRepo, name string) int64 {
	t.Helper()
	ctx := context.Background()
	stationID, err := repo.CreateStation(ctx, &models.Station{Name: "Station " + name})
	if err != nil {
		t.Fatalf("CreateStation: %v", err)
	}
	id, err := repo.CreateGear(ctx, &models.Gear{StationID: stationID, Name: name})
	if err != nil {
		t.Fatalf("CreateGear: %v", err)
	}
	return id
}

func TestExists(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repo.CreateDepartment(ctx, &models.Department{Name: "North"})
	if err != nil {
		t.Fatalf("CreateDepartment error: %v", err)
	}

	ok, err := repo.Exists(ctx, models.EntityDepartment, id)
	if err != nil || !ok {
		t.Fatalf("expected department %d to exist: %v", id, err)
	}
	ok, err = repo.Exists(ctx, models.EntityDepartment, 9999)
	if err != nil || ok {
		t.Fatalf("expected department 9999 to be missing: %v", err)
	}
	if _, err := repo.Exists(ctx, models.Entity("engineers"), 1); err == nil {
		t.Fatalf("expected error for unknown entity")
	}
}

func TestDepartmentStationFirefighter(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	// nil rows should error
	if _, err := repo.CreateDepartment(ctx, nil); err == nil {
		t.Fatalf("expected error when creating nil department")
	}

	depID, err := repo.CreateDepartment(ctx, &models.Department{Name: "Central", Location: ptr("Downtown")})
	if err != nil {
		t.Fatalf("CreateDepartment error: %v", err)
	}
	stID, err := repo.CreateStation(ctx, &models.Station{Name: "Station 7", DepartmentID: &depID})
	if err != nil {
		t.Fatalf("CreateStation error: %v", err)
	}
	if _, err := repo.CreateFirefighter(ctx, &models.Firefighter{Name: "Somchai", StationID: &stID, Rank: ptr("Captain")}); err != nil {
		t.Fatalf("CreateFirefighter error: %v", err)
	}

	deps, err := repo.ListDepartments(ctx)
	if err != nil || len(deps) != 1 || deps[0].Location == nil || *deps[0].Location != "Downtown" {
		t.Fatalf("unexpected departments %#v err=%v", deps, err)
	}
	sts, err := repo.ListStations(ctx)
	if err != nil || len(sts) != 1 || sts[0].DepartmentID == nil || *sts[0].DepartmentID != depID || sts[0].Location != nil {
		t.Fatalf("unexpected stations %#v err=%v", sts, err)
	}
	ffs, err := repo.ListFirefighters(ctx)
	if err != nil || len(ffs) != 1 || ffs[0].Email != nil || ffs[0].DepartmentID != nil {
		t.Fatalf("unexpected firefighters %#v err=%v", ffs, err)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	gears, err := repo.ListGearViews(ctx)
	if err != nil {
		t.Fatalf("ListGearViews: %v", err)
	}
	if gears == nil || len(gears) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", gears)
	}
}

func TestFindFirefighterIDByName(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	first, _ := repo.CreateFirefighter(ctx, &models.Firefighter{Name: "Niran"})
	if _, err := repo.CreateFirefighter(ctx, &models.Firefighter{Name: "Niran"}); err != nil {
		t.Fatalf("CreateFirefighter: %v", err)
	}

	id, err := repo.FindFirefighterIDByName(ctx, "Niran")
	if err != nil || id == nil || *id != first {
		t.Fatalf("expected lowest id %d, got %v err=%v", first, id, err)
	}
	id, err = repo.FindFirefighterIDByName(ctx, "niran")
	if err != nil || id != nil {
		t.Fatalf("expected case-sensitive miss, got %v err=%v", id, err)
	}
}

func TestGearConstraints(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	gearID := seedGear(t, repo, "Helmet")
	if _, err := repo.CreateGear(ctx, &models.Gear{StationID: 9999, Name: "Orphan"}); !errors.Is(err, repository.ErrDanglingReference) {
		t.Fatalf("expected ErrDanglingReference, got %v", err)
	}

	g, err := repo.GetGearView(ctx, gearID)
	if err != nil || g == nil {
		t.Fatalf("GetGearView: %v", err)
	}
	serial := "SN-1"
	if _, err := repo.CreateGear(ctx, &models.Gear{StationID: g.StationID, Name: "A", SerialNumber: &serial}); err != nil {
		t.Fatalf("CreateGear: %v", err)
	}
	if _, err := repo.CreateGear(ctx, &models.Gear{StationID: g.StationID, Name: "B", SerialNumber: &serial}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	taken, err := repo.SerialNumberExists(ctx, serial)
	if err != nil || !taken {
		t.Fatalf("expected serial to be taken: %v", err)
	}

	missing, err := repo.GetGearView(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing gear, got %#v %v", missing, err)
	}
}

func TestGearViewRoundTripsNulls(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	stID, _ := repo.CreateStation(ctx, &models.Station{Name: "S"})
	purchase := models.NewDate(2024, time.February, 29)
	id, err := repo.CreateGear(ctx, &models.Gear{StationID: stID, Name: "SCBA", PurchaseDate: &purchase, EquipmentType: ptr("Breathing")})
	if err != nil {
		t.Fatalf("CreateGear: %v", err)
	}

	g, err := repo.GetGearView(ctx, id)
	if err != nil || g == nil {
		t.Fatalf("GetGearView: %v", err)
	}
	if g.PurchaseDate == nil || g.PurchaseDate.String() != "2024-02-29" {
		t.Fatalf("unexpected purchase date %v", g.PurchaseDate)
	}
	if g.ExpiryDate != nil || g.SerialNumber != nil || g.PhotoURL != nil || g.Status != nil {
		t.Fatalf("expected absent columns to stay nil: %#v", g)
	}
	if g.NextMaintenanceDate != nil {
		t.Fatalf("expected no next maintenance date, got %v", g.NextMaintenanceDate)
	}
}

func TestNextMaintenanceDateIsMinimum(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	gearID := seedGear(t, repo, "Hose")
	other := seedGear(t, repo, "Axe")

	dates := []models.Date{
		models.NewDate(2025, time.December, 1),
		models.NewDate(2025, time.October, 1),
	}
	err := repo.InScheduleTx(ctx, func(tx repository.ScheduleTx) error {
		for _, d := range dates {
			if _, err := tx.InsertSchedule(ctx, &models.MaintenanceSchedule{GearID: gearID, ScheduledDate: d}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InScheduleTx: %v", err)
	}

	next, err := repo.NextMaintenanceDate(ctx, gearID)
	if err != nil || next == nil || next.String() != "2025-10-01" {
		t.Fatalf("expected 2025-10-01, got %v err=%v", next, err)
	}
	none, err := repo.NextMaintenanceDate(ctx, other)
	if err != nil || none != nil {
		t.Fatalf("expected nil for gear without schedules, got %v err=%v", none, err)
	}

	views, err := repo.ListGearViews(ctx)
	if err != nil || len(views) != 2 {
		t.Fatalf("ListGearViews: %v %#v", err, views)
	}
	if views[0].NextMaintenanceDate == nil || views[0].NextMaintenanceDate.String() != "2025-10-01" || views[1].NextMaintenanceDate != nil {
		t.Fatalf("unexpected annotations %#v", views)
	}
}

func TestScheduleTx(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	gearID := seedGear(t, repo, "Boots")
	today := models.NewDate(2025, time.June, 15)

	// a past schedule does not count as active
	err := repo.InScheduleTx(ctx, func(tx repository.ScheduleTx) error {
		_, err := tx.InsertSchedule(ctx, &models.MaintenanceSchedule{GearID: gearID, ScheduledDate: today.AddDays(-1)})
		return err
	})
	if err != nil {
		t.Fatalf("insert past schedule: %v", err)
	}

	boom := errors.New("boom")
	err = repo.InScheduleTx(ctx, func(tx repository.ScheduleTx) error {
		active, err := tx.HasActiveSchedule(ctx, gearID, today)
		if err != nil {
			return err
		}
		if active {
			t.Errorf("past schedule reported as active")
		}
		id, err := tx.InsertSchedule(ctx, &models.MaintenanceSchedule{GearID: gearID, ScheduledDate: today, ScheduledTime: models.Clock{Hour: 9}})
		if err != nil {
			return err
		}
		if active, _ := tx.HasActiveSchedule(ctx, gearID, today); !active {
			t.Errorf("schedule dated today not reported as active")
		}
		if _, err := tx.InsertReminder(ctx, &models.MaintenanceReminder{GearID: gearID, ScheduleID: &id}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	schedules, err := repo.ListSchedules(ctx)
	if err != nil || len(schedules) != 1 {
		t.Fatalf("expected only the committed past schedule, got %#v err=%v", schedules, err)
	}
	reminders, err := repo.ListReminders(ctx)
	if err != nil || len(reminders) != 0 {
		t.Fatalf("expected rolled back reminder, got %#v err=%v", reminders, err)
	}
}

func TestReminderRoundTrip(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	gearID := seedGear(t, repo, "Gloves")
	date := models.NewDate(2025, time.July, 1)
	at := models.Clock{Hour: 14, Minute: 30}
	if _, err := repo.CreateReminder(ctx, &models.MaintenanceReminder{GearID: gearID, ReminderDate: &date, ReminderTime: &at, Message: ptr("check"), Sent: true}); err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	if _, err := repo.CreateReminder(ctx, &models.MaintenanceReminder{GearID: gearID, ScheduleID: ptr(int64(42))}); !errors.Is(err, repository.ErrDanglingReference) {
		t.Fatalf("expected dangling schedule reference, got %v", err)
	}

	got, err := repo.ListReminders(ctx)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListReminders: %v %#v", err, got)
	}
	r := got[0]
	if !r.Sent || r.ScheduleID != nil || r.ReminderTime == nil || r.ReminderTime.String() != "14:30:00" || r.ReminderDate.String() != "2025-07-01" {
		t.Fatalf("unexpected reminder %#v", r)
	}
}

func TestInspectionAndDamageReport(t *testing.T) {
	repo, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	gearID := seedGear(t, repo, "Jacket")
	if _, err := repo.CreateInspection(ctx, &models.Inspection{GearID: gearID, Result: ptr("pass")}); err != nil {
		t.Fatalf("CreateInspection: %v", err)
	}
	if _, err := repo.CreateDamageReport(ctx, &models.DamageReport{GearID: gearID, Notes: ptr("torn sleeve")}); err != nil {
		t.Fatalf("CreateDamageReport: %v", err)
	}

	ins, err := repo.ListInspections(ctx)
	if err != nil || len(ins) != 1 || ins[0].InspectorID != nil || *ins[0].Result != "pass" {
		t.Fatalf("unexpected inspections %#v err=%v", ins, err)
	}
	drs, err := repo.ListDamageReports(ctx)
	if err != nil || len(drs) != 1 || drs[0].ReporterID != nil || *drs[0].Notes != "torn sleeve" {
		t.Fatalf("unexpected damage reports %#v err=%v", drs, err)
	}
}
