package store

import (
	"context"
	"fmt"

	"user-admin/internal/database"
	"user-admin/internal/model"
)

func InsertAuditEvent(ctx context.Context, db database.DB, e *model.AuditEvent) error {
	_, err := db.Exec(ctx,
		`INSERT INTO audit_events (id, actor_id, action, subject_id)
		 VALUES ($1, $2, $3, $4)`,
		e.ID,
		e.ActorID,
		e.Action,
		e.SubjectID,
	)
	if err != nil {
		return fmt.Errorf("InsertAuditEvent: %w", err)
	}
	return nil
}
