// Package sqlstore persists entities in one table per kind through sqlx.
// The queries stay within the SQL shared by MySQL and SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vibe-gaming/hbnb/internal/db"
	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

const Name = "db"

var baseColumns = []string{"id", "created_at", "updated_at"}

// columns beyond the base ones, in table order
var kindColumns = map[domain.Kind][]string{
	domain.KindAmenity: {"name"},
	domain.KindCity:    {"state_id", "name"},
	domain.KindPlace: {
		"city_id", "user_id", "name", "description", "number_rooms", "number_bathrooms",
		"max_guest", "price_by_night", "latitude", "longitude", "amenity_ids",
	},
	domain.KindReview: {"place_id", "user_id", "text"},
	domain.KindState:  {"name"},
	domain.KindUser:   {"email", "password", "first_name", "last_name"},
}

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) Name() string {
	return Name
}

func (s *Store) Load(ctx context.Context, kind domain.Kind, id string) (domain.Entity, bool, error) {
	t, err := tableOf(kind)
	if err != nil {
		return nil, false, err
	}

	e, err := domain.Empty(kind)
	if err != nil {
		return nil, false, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?;`, t.columnList(), t.name)
	if err := s.db.GetContext(ctx, e, s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select from %s by id failed: %w", t.name, err)
	}
	normalize(e)
	return e, true, nil
}

func (s *Store) List(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	var out []domain.Entity
	for _, k := range kindsOf(kind) {
		list, err := s.list(ctx, k)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	return out, nil
}

func (s *Store) list(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	t, err := tableOf(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at, id;`, t.columnList(), t.name)
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select from %s failed: %w", t.name, err)
	}
	defer rows.Close()

	var out []domain.Entity
	for rows.Next() {
		e, err := domain.Empty(kind)
		if err != nil {
			return nil, err
		}
		if err := rows.StructScan(e); err != nil {
			return nil, fmt.Errorf("scan %s row failed: %w", t.name, err)
		}
		normalize(e)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows failed: %w", t.name, err)
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, kind domain.Kind) (int, error) {
	total := 0
	for _, k := range kindsOf(kind) {
		t, err := tableOf(k)
		if err != nil {
			return 0, err
		}
		var n int
		if err := s.db.GetContext(ctx, &n, fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, t.name)); err != nil {
			return 0, fmt.Errorf("count %s failed: %w", t.name, err)
		}
		total += n
	}
	return total, nil
}

// Apply runs the batch in one transaction. Versioned updates and deletes
// match on updated_at; no matched row means someone else committed first.
func (s *Store) Apply(ctx context.Context, changes []storage.Change) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, c := range changes {
		if err = s.apply(ctx, tx, c); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx failed: %w", err)
	}
	return nil
}

func (s *Store) apply(ctx context.Context, tx *sqlx.Tx, c storage.Change) error {
	t, err := tableOf(c.Entity.Kind())
	if err != nil {
		return err
	}
	key := c.Key()

	switch c.Op {
	case storage.OpInsert:
		if _, err := tx.NamedExecContext(ctx, t.insertQuery(), c.Entity); err != nil {
			if db.IsDuplicateEntry(err) {
				return fmt.Errorf("insert %s: %w", key, domain.ErrDuplicateEntry)
			}
			return fmt.Errorf("db insert %s: %w", key, err)
		}
		return nil

	case storage.OpUpdate:
		query, args, err := sqlx.Named(t.updateQuery(!c.Version.IsZero()), c.Entity)
		if err != nil {
			return fmt.Errorf("bind update %s: %w", key, err)
		}
		if !c.Version.IsZero() {
			args = append(args, c.Version)
		}
		return exec(ctx, tx, tx.Rebind(query), args, key, true)

	case storage.OpDelete:
		query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.name)
		args := []any{c.Entity.Base().ID}
		if !c.Version.IsZero() {
			query += ` AND updated_at = ?`
			args = append(args, c.Version)
		}
		return exec(ctx, tx, tx.Rebind(query), args, key, !c.Version.IsZero())
	}
	return fmt.Errorf("unsupported storage op %d", c.Op)
}

func exec(ctx context.Context, tx *sqlx.Tx, query string, args []any, key string, mustMatch bool) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db exec %s: %w", key, err)
	}
	if !mustMatch {
		return nil
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", key, domain.ErrConflict)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type table struct {
	name    string
	columns []string
}

func tableOf(kind domain.Kind) (table, error) {
	cols, ok := kindColumns[kind]
	if !ok {
		return table{}, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	return table{
		name:    kind.Collection(),
		columns: append(append([]string{}, baseColumns...), cols...),
	}, nil
}

func (t table) columnList() string {
	return strings.Join(t.columns, ", ")
}

func (t table) insertQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (:%s);`,
		t.name, t.columnList(), strings.Join(t.columns, ", :"))
}

// updateQuery never rewrites id or created_at. A versioned query ends with
// a positional placeholder for the expected updated_at.
func (t table) updateQuery(versioned bool) string {
	sets := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		if col == "id" || col == "created_at" {
			continue
		}
		sets = append(sets, col+" = :"+col)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = :id`, t.name, strings.Join(sets, ", "))
	if versioned {
		query += ` AND updated_at = ?`
	}
	return query
}

func kindsOf(kind domain.Kind) []domain.Kind {
	if kind == "" {
		return domain.Kinds()
	}
	return []domain.Kind{kind}
}

// normalize puts scanned timestamps in UTC, whatever location the driver
// picked.
func normalize(e domain.Entity) {
	b := e.Base()
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
}
