package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/cavegen/internal/caveinfo"
)

// ErrOrderingNotFound is returned when no ordering has been recorded for a sublevel.
var ErrOrderingNotFound = errors.New("ordering not found")

// Ordering is a recorded unit ordering for one sublevel.
type Ordering struct {
	ID         uuid.UUID
	Sublevel   string
	RecordedAt time.Time
	Units      []caveinfo.UnitKey
}

// OrderingRepository stores reference unit orderings, typically captured from
// the game, so prepared floors can be checked against them.
type OrderingRepository struct {
	db *pgxpool.Pool
}

// NewOrderingRepository creates an OrderingRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewOrderingRepository(db *pgxpool.Pool) *OrderingRepository {
	return &OrderingRepository{db: db}
}

// Save records units as the newest ordering for sublevel.
//
// Precondition: sublevel must be a normalized sublevel key.
// Postcondition: Returns the new ordering's ID, or a non-nil error with nothing written.
func (r *OrderingRepository) Save(ctx context.Context, sublevel string, units []caveinfo.UnitKey) (uuid.UUID, error) {
	id := uuid.New()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO unit_orderings (id, sublevel) VALUES ($1, $2)`,
		id, sublevel,
	); err != nil {
		return uuid.Nil, fmt.Errorf("inserting ordering: %w", err)
	}

	rows := make([][]any, len(units))
	for i, k := range units {
		rows[i] = []any{id, i, k.UnitFolderName, int16(k.Rotation)}
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"unit_ordering_entries"},
		[]string{"ordering_id", "position", "unit_folder_name", "rotation"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return uuid.Nil, fmt.Errorf("inserting ordering entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("committing ordering: %w", err)
	}
	return id, nil
}

// Latest returns the most recently recorded ordering for sublevel.
//
// Postcondition: Returns ErrOrderingNotFound if none has been recorded.
func (r *OrderingRepository) Latest(ctx context.Context, sublevel string) (*Ordering, error) {
	var o Ordering
	err := r.db.QueryRow(ctx, `
		SELECT id, sublevel, recorded_at FROM unit_orderings
		WHERE sublevel = $1
		ORDER BY recorded_at DESC, id
		LIMIT 1`,
		sublevel,
	).Scan(&o.ID, &o.Sublevel, &o.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderingNotFound
		}
		return nil, fmt.Errorf("querying ordering: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT unit_folder_name, rotation FROM unit_ordering_entries
		WHERE ordering_id = $1 ORDER BY position ASC`,
		o.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying ordering entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name     string
			rotation int16
		)
		if err := rows.Scan(&name, &rotation); err != nil {
			return nil, fmt.Errorf("scanning ordering entry: %w", err)
		}
		o.Units = append(o.Units, caveinfo.UnitKey{UnitFolderName: name, Rotation: uint16(rotation)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ordering entries: %w", err)
	}
	return &o, nil
}
