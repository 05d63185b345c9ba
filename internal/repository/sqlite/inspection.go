package sqlite

import (
	"context"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

func (r *SQLiteRepo) CreateInspection(ctx context.Context, i *models.Inspection) (int64, error) {
	if i == nil {
		return 0, fmt.Errorf("inspection is nil")
	}

	return insert(ctx, r.conn.GetConn(),
		`INSERT INTO inspection (gear_id, inspection_date, inspector_id, inspection_type, condition_notes, result) VALUES (?, ?, ?, ?, ?, ?)`,
		i.GearID, i.InspectionDate, i.InspectorID, i.InspectionType, i.ConditionNotes, i.Result)
}

func (r *SQLiteRepo) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	out := []models.Inspection{}
	if err := r.conn.Select(ctx, &out, `SELECT id, gear_id, inspection_date, inspector_id, inspection_type, condition_notes, result FROM inspection ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}

	return out, nil
}
