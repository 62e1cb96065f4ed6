package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateExport records a stored archive and returns its ID
func (db *DB) CreateExport(ctx context.Context, e Export) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO exports (session_id, owner_id, template_id, file_name, object_key, size_bytes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		e.SessionID, e.OwnerID, e.TemplateID, e.FileName, e.ObjectKey, e.SizeBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create export: %w", err)
	}
	return id, nil
}

// GetExport retrieves an export record by ID. Returns nil if not found.
func (db *DB) GetExport(ctx context.Context, id uuid.UUID) (*Export, error) {
	var e Export
	err := db.pool.QueryRow(ctx,
		`SELECT id, session_id, owner_id, template_id, file_name, object_key, size_bytes, created_at
		 FROM exports WHERE id = $1`, id,
	).Scan(&e.ID, &e.SessionID, &e.OwnerID, &e.TemplateID, &e.FileName, &e.ObjectKey, &e.SizeBytes, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get export: %w", err)
	}
	return &e, nil
}

// ListExports returns the export records of a session, newest first
func (db *DB) ListExports(ctx context.Context, sessionID string) ([]Export, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, owner_id, template_id, file_name, object_key, size_bytes, created_at
		 FROM exports WHERE session_id = $1 ORDER BY created_at DESC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var out []Export
	for rows.Next() {
		var e Export
		if err := rows.Scan(&e.ID, &e.SessionID, &e.OwnerID, &e.TemplateID, &e.FileName, &e.ObjectKey, &e.SizeBytes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
