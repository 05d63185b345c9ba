package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/internal/service"
	"github.com/PONGPONGz/GearMate/pkg/repository"
	"github.com/PONGPONGz/GearMate/pkg/repository/mock"
)

func TestCreateDepartment_TrimsAndRejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	reg := service.NewRegistry(newStore(t), nil)

	_, err := reg.CreateDepartment(ctx, &models.Department{Name: "   "})
	assert.True(t, service.IsKind(err, service.KindValidation), "got %v", err)

	d, err := reg.CreateDepartment(ctx, &models.Department{Name: "  Central  "})
	require.NoError(t, err)
	assert.Equal(t, "Central", d.Name)
	assert.NotZero(t, d.ID)
}

func TestCreateFirefighter_UnknownStation(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	reg := service.NewRegistry(store, nil)

	_, err := reg.CreateFirefighter(ctx, &models.Firefighter{Name: "Anan", StationID: ptr(int64(9999))})
	require.Error(t, err)

	var se *service.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, service.KindReference, se.Kind)
	assert.Equal(t, models.EntityStation, se.Entity)
	assert.Equal(t, int64(9999), se.ID)

	all, err := store.ListFirefighters(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateFirefighter_NegativeDepartment(t *testing.T) {
	reg := service.NewRegistry(newStore(t), nil)

	_, err := reg.CreateFirefighter(context.Background(), &models.Firefighter{Name: "Anan", DepartmentID: ptr(int64(-1))})
	assert.True(t, service.IsKind(err, service.KindReference), "got %v", err)
}

func TestCreateStation_OptionalDepartment(t *testing.T) {
	ctx := context.Background()
	reg := service.NewRegistry(newStore(t), nil)

	s, err := reg.CreateStation(ctx, &models.Station{Name: "Station 3"})
	require.NoError(t, err)
	assert.Nil(t, s.DepartmentID)

	_, err = reg.CreateStation(ctx, &models.Station{Name: "Station 4", DepartmentID: ptr(int64(42))})
	assert.True(t, service.IsKind(err, service.KindReference), "got %v", err)
}

func TestCreateInspection_MissingGear(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	reg := service.NewRegistry(store, nil)

	_, err := reg.CreateInspection(ctx, &models.Inspection{GearID: 0})
	assert.True(t, service.IsKind(err, service.KindValidation), "got %v", err)

	gearID := newGear(t, store, "Helmet")
	_, err = reg.CreateInspection(ctx, &models.Inspection{GearID: gearID, InspectorID: ptr(int64(77))})
	assert.True(t, service.IsKind(err, service.KindReference), "got %v", err)

	i, err := reg.CreateInspection(ctx, &models.Inspection{GearID: gearID, Result: ptr("pass")})
	require.NoError(t, err)
	assert.NotZero(t, i.ID)
}

func TestCreateGear_NullsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	reg := service.NewRegistry(store, nil)
	catalog := service.NewGearCatalog(service.NewAggregator(store, nil))

	st, err := reg.CreateStation(ctx, &models.Station{Name: "Station 1"})
	require.NoError(t, err)
	g, err := reg.CreateGear(ctx, &models.Gear{StationID: st.ID, Name: "Helmet"})
	require.NoError(t, err)

	got, err := catalog.GetGear(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.SerialNumber)
	assert.Nil(t, got.PhotoURL)
	assert.Nil(t, got.EquipmentType)
	assert.Nil(t, got.PurchaseDate)
	assert.Nil(t, got.ExpiryDate)
	assert.Nil(t, got.Status)
	assert.Nil(t, got.NextMaintenanceDate)
}

func TestCreateGear_StationRequired(t *testing.T) {
	reg := service.NewRegistry(newStore(t), nil)

	_, err := reg.CreateGear(context.Background(), &models.Gear{Name: "Helmet"})
	assert.True(t, service.IsKind(err, service.KindValidation), "got %v", err)

	_, err = reg.CreateGear(context.Background(), &models.Gear{Name: "Helmet", StationID: 5})
	assert.True(t, service.IsKind(err, service.KindReference), "got %v", err)
}

func TestCreateGear_DuplicateSerial(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	reg := service.NewRegistry(store, nil)

	st, err := reg.CreateStation(ctx, &models.Station{Name: "Station 1"})
	require.NoError(t, err)
	_, err = reg.CreateGear(ctx, &models.Gear{StationID: st.ID, Name: "A", SerialNumber: ptr("SN-9")})
	require.NoError(t, err)

	_, err = reg.CreateGear(ctx, &models.Gear{StationID: st.ID, Name: "B", SerialNumber: ptr("SN-9")})
	assert.True(t, service.IsKind(err, service.KindConflict), "got %v", err)
}

func TestCreateGear_StorageConstraintBecomesConflict(t *testing.T) {
	store := mock.NewStore()
	store.Stations = append(store.Stations, models.Station{ID: 1, Name: "S"})
	// the serial pre-check passes but the insert loses a race on the unique index
	store.CreateErr = fmt.Errorf("insert gear: %w", repository.ErrDuplicate)

	_, err := service.NewRegistry(store, nil).CreateGear(context.Background(), &models.Gear{StationID: 1, Name: "A", SerialNumber: ptr("SN-1")})
	assert.True(t, service.IsKind(err, service.KindConflict), "got %v", err)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestRegistry_StorageFailures(t *testing.T) {
	ctx := context.Background()
	store := mock.NewStore()
	store.ExistsErr = errors.New("database is locked")
	reg := service.NewRegistry(store, nil)

	_, err := reg.CreateStation(ctx, &models.Station{Name: "S", DepartmentID: ptr(int64(1))})
	assert.True(t, service.IsKind(err, service.KindStorage), "got %v", err)

	store.ExistsErr = nil
	store.ListErr = errors.New("disk I/O error")
	_, err = reg.ListDepartments(ctx)
	assert.True(t, service.IsKind(err, service.KindStorage), "got %v", err)
	assert.Equal(t, service.KindStorage, service.KindOf(errors.New("plain")))
}

func TestCreateDamageReport_ReporterResolution(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	reg := service.NewRegistry(store, nil)
	gearID := newGear(t, store, "Jacket")

	ff, err := reg.CreateFirefighter(ctx, &models.Firefighter{Name: "Malee"})
	require.NoError(t, err)

	matched, err := reg.CreateDamageReport(ctx, &models.DamageReport{GearID: gearID}, ptr("  Malee "))
	require.NoError(t, err)
	require.NotNil(t, matched.ReporterID)
	assert.Equal(t, ff.ID, *matched.ReporterID)

	unmatched, err := reg.CreateDamageReport(ctx, &models.DamageReport{GearID: gearID, Notes: ptr("burn mark")}, ptr("Nobody"))
	require.NoError(t, err)
	assert.Nil(t, unmatched.ReporterID)

	_, err = reg.CreateDamageReport(ctx, &models.DamageReport{GearID: gearID, ReporterID: ptr(int64(555))}, nil)
	assert.True(t, service.IsKind(err, service.KindReference), "got %v", err)

	_, err = reg.CreateDamageReport(ctx, &models.DamageReport{GearID: 404}, nil)
	assert.True(t, service.IsKind(err, service.KindReference), "got %v", err)

	all, err := reg.ListDamageReports(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateReminder(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	reg := service.NewRegistry(store, nil)
	gearID := newGear(t, store, "Rope")

	_, err := reg.CreateReminder(ctx, &models.MaintenanceReminder{GearID: gearID, ScheduleID: ptr(int64(3))})
	assert.True(t, service.IsKind(err, service.KindReference), "got %v", err)

	m, err := reg.CreateReminder(ctx, &models.MaintenanceReminder{GearID: gearID, Message: ptr("inspect rope")})
	require.NoError(t, err)
	assert.False(t, m.Sent)

	all, err := reg.ListReminders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "inspect rope", *all[0].Message)
}
