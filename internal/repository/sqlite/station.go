package sqlite

import (
	"context"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

func (r *SQLiteRepo) CreateStation(ctx context.Context, s *models.Station) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("station is nil")
	}

	return insert(ctx, r.conn.GetConn(), `INSERT INTO station (name, location, department_id) VALUES (?, ?, ?)`, s.Name, s.Location, s.DepartmentID)
}

func (r *SQLiteRepo) ListStations(ctx context.Context) ([]models.Station, error) {
	out := []models.Station{}
	if err := r.conn.Select(ctx, &out, `SELECT id, name, location, department_id FROM station ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}

	return out, nil
}
