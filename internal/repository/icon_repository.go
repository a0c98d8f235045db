package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lewtec/iconchanger/internal/domain"
)

const iconColumns = `sha256, filename, position, active, served, loaded_at`

// IconRepository implements domain.IconRepository on sqlite
type IconRepository struct {
	db *sql.DB
}

// NewIconRepository creates a new IconRepository
func NewIconRepository(db *sql.DB) *IconRepository {
	return &IconRepository{db: db}
}

// Sync marks every icon inactive and then upserts the given ones as active
func (r *IconRepository) Sync(ctx context.Context, icons []*domain.Icon) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("while starting catalog sync: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE icons SET active = FALSE, position = -1`); err != nil {
		return fmt.Errorf("while resetting catalog: %w", err)
	}
	now := time.Now().UTC()
	for i, icon := range icons {
		loadedAt := icon.LoadedAt
		if loadedAt.IsZero() {
			loadedAt = now
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO icons (sha256, filename, position, active, loaded_at) VALUES (?, ?, ?, TRUE, ?)
ON CONFLICT(filename, sha256) DO UPDATE SET
  position = excluded.position,
  active = TRUE,
  loaded_at = excluded.loaded_at
`, icon.SHA256, icon.Filename, i, loadedAt)
		if err != nil {
			return fmt.Errorf("while cataloging icon '%s': %w", icon.Filename, err)
		}
	}
	return tx.Commit()
}

// Get retrieves an icon by filename and hash, nil if it was never cataloged
func (r *IconRepository) Get(ctx context.Context, filename, sha256 string) (*domain.Icon, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+iconColumns+` FROM icons WHERE filename = ? AND sha256 = ?`, filename, sha256)
	icon, err := scanIcon(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return icon, nil
}

// List retrieves all icons, active ones first in rotation order
func (r *IconRepository) List(ctx context.Context) ([]*domain.Icon, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+iconColumns+` FROM icons ORDER BY active DESC, position, filename, sha256`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*domain.Icon{}
	for rows.Next() {
		icon, err := scanIcon(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, icon)
	}
	return result, rows.Err()
}

// RecordServed increments the served counter of an icon
func (r *IconRepository) RecordServed(ctx context.Context, filename, sha256 string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE icons SET served = served + 1 WHERE filename = ? AND sha256 = ?`, filename, sha256)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("icon %s (%s) is not in the catalog", filename, sha256)
	}
	return nil
}

// Count returns the number of active icons
func (r *IconRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM icons WHERE active`).Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIcon(s scanner) (*domain.Icon, error) {
	var icon domain.Icon
	err := s.Scan(&icon.SHA256, &icon.Filename, &icon.Position, &icon.Active, &icon.Served, &icon.LoadedAt)
	if err != nil {
		return nil, err
	}
	return &icon, nil
}

// Verify that IconRepository implements domain.IconRepository
var _ domain.IconRepository = (*IconRepository)(nil)
