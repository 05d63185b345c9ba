package sqlite

import (
	"context"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

func (r *SQLiteRepo) CreateDamageReport(ctx context.Context, d *models.DamageReport) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("damage report is nil")
	}

	return insert(ctx, r.conn.GetConn(),
		`INSERT INTO damage_report (gear_id, reporter_id, report_date, notes, photo_url, status) VALUES (?, ?, ?, ?, ?, ?)`,
		d.GearID, d.ReporterID, d.ReportDate, d.Notes, d.PhotoURL, d.Status)
}

func (r *SQLiteRepo) ListDamageReports(ctx context.Context) ([]models.DamageReport, error) {
	out := []models.DamageReport{}
	if err := r.conn.Select(ctx, &out, `SELECT id, gear_id, reporter_id, report_date, notes, photo_url, status FROM damage_report ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list damage reports: %w", err)
	}

	return out, nil
}
