package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/PONGPONGz/GearMate/internal/models"
)

// SortKey selects the order of ListGears.
type SortKey string

const (
	SortByID              SortKey = ""
	SortByName            SortKey = "Name"
	SortByType            SortKey = "Type"
	SortByMaintenanceDate SortKey = "Maintenance Date"
)

// ParseSortKey accepts exactly "Name", "Type" or "Maintenance Date" (case
// sensitive). An empty string keeps insertion order.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByID, SortByName, SortByType, SortByMaintenanceDate:
		return k, nil
	}
	return "", ValidationError("sort must be one of Name, Type, Maintenance Date; got %q", s)
}

// GearCatalog lists gears annotated with their next maintenance date.
type GearCatalog struct {
	agg *Aggregator
}

func NewGearCatalog(agg *Aggregator) *GearCatalog {
	return &GearCatalog{agg: agg}
}

// ListGears returns all gears ordered by key. Ties, and SortByID, fall back to
// ascending id.
//
//   - Name: ascending byte-wise gear name.
//   - Type: ascending equipment type, gears without a type first.
//   - Maintenance Date: ascending next maintenance date, gears without any
//     schedule last.
func (c *GearCatalog) ListGears(ctx context.Context, key SortKey) ([]models.GearView, error) {
	gears, err := c.agg.Annotated(ctx)
	if err != nil {
		return nil, err
	}

	var by func(a, b models.GearView) int
	switch key {
	case SortByID:
		return gears, nil
	case SortByName:
		by = func(a, b models.GearView) int { return strings.Compare(a.Name, b.Name) }
	case SortByType:
		by = func(a, b models.GearView) int { return compareNullsFirst(a.EquipmentType, b.EquipmentType) }
	case SortByMaintenanceDate:
		by = func(a, b models.GearView) int { return compareDatesNullsLast(a.NextMaintenanceDate, b.NextMaintenanceDate) }
	default:
		return nil, ValidationError("unknown sort key %q", string(key))
	}

	slices.SortStableFunc(gears, func(a, b models.GearView) int {
		if n := by(a, b); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return gears, nil
}

// GetGear returns the annotated gear or nil when it does not exist.
func (c *GearCatalog) GetGear(ctx context.Context, id int64) (*models.GearView, error) {
	if id <= 0 {
		return nil, nil
	}
	return c.agg.AnnotatedGear(ctx, id)
}

func compareNullsFirst(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(*a, *b)
}

func compareDatesNullsLast(a, b *models.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}
