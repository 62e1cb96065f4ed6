package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/portfolio-builder/internal/session"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var (
	_ session.Repository = (*DB)(nil)
	_ session.Lister     = (*DB)(nil)
)

// SavePortfolio upserts the state of a session
func (db *DB) SavePortfolio(ctx context.Context, sessionID, ownerID string, st types.PortfolioState) error {
	stateJSON, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO portfolios (session_id, owner_id, template_id, state)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (session_id) DO UPDATE
		 SET owner_id = $2, template_id = $3, state = $4, updated_at = NOW()`,
		sessionID, ownerID, st.SelectedTemplate, stateJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	return nil
}

// LoadPortfolio retrieves a persisted session. Returns session.ErrNotFound if
// the session was never saved.
func (db *DB) LoadPortfolio(ctx context.Context, sessionID string) (*session.Record, error) {
	rec := session.Record{SessionID: sessionID}
	var stateJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT owner_id, state, updated_at FROM portfolios WHERE session_id = $1`,
		sessionID,
	).Scan(&rec.OwnerID, &stateJSON, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	if err := json.Unmarshal(stateJSON, &rec.State); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio: %w", err)
	}
	return &rec, nil
}

// DeletePortfolio removes a persisted session and its export records
func (db *DB) DeletePortfolio(ctx context.Context, sessionID string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM exports WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to delete exports: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM portfolios WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	return tx.Commit(ctx)
}

// ListPortfolios returns the saved portfolios of an owner, most recently
// updated first. limit <= 0 means 50.
func (db *DB) ListPortfolios(ctx context.Context, ownerID string, limit int) ([]session.Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT session_id, template_id, updated_at
		 FROM portfolios WHERE owner_id = $1 ORDER BY updated_at DESC, session_id LIMIT $2`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	out := make([]session.Summary, 0)
	for rows.Next() {
		var p session.Summary
		if err := rows.Scan(&p.SessionID, &p.TemplateID, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
