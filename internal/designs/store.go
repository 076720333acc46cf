// Package designs persists named shopper configurations in an embedded
// DuckDB database. Configurations are stored in their serialized JSON form,
// exactly as validated at save time.
package designs

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marcboeker/go-duckdb"

	"github.com/keypad-studio/backend/internal/models"
)

// ErrNotFound is returned when a design id has no row.
var ErrNotFound = errors.New("design not found")

// Store is a DuckDB-backed saved-design store. Safe for concurrent use; all
// access goes through database/sql.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (or creates) the design database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	connector, err := duckdb.NewConnector(dbPath, func(execer driver.ExecerContext) error {
		pragmas := []string{
			"PRAGMA memory_limit='256MB'",
			"PRAGMA threads=2",
			"PRAGMA enable_progress_bar=false",
		}
		for _, pragma := range pragmas {
			if _, err := execer.ExecContext(context.Background(), pragma, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating design store connector: %w", err)
	}

	db := sql.OpenDB(connector)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS designs (
			id            VARCHAR PRIMARY KEY,
			customer_id   VARCHAR NOT NULL,
			name          VARCHAR NOT NULL,
			model_code    VARCHAR NOT NULL,
			configuration VARCHAR NOT NULL,
			created_at    BIGINT NOT NULL,
			updated_at    BIGINT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating designs table: %w", err)
	}

	fmt.Printf("[DesignStore] Database ready at: %s\n", dbPath)
	return &Store{db: db, dbPath: dbPath}, nil
}

// Create inserts a new design and returns it with id and timestamps set.
func (s *Store) Create(ctx context.Context, customerID, name, modelCode, configuration string) (*models.SavedDesign, error) {
	now := time.Now().UTC()
	design := &models.SavedDesign{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		Name:          name,
		ModelCode:     modelCode,
		Configuration: configuration,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO designs (id, customer_id, name, model_code, configuration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, design.ID, design.CustomerID, design.Name, design.ModelCode, design.Configuration,
		now.UnixMilli(), now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("inserting design: %w", err)
	}
	return design, nil
}

// Get fetches one design by id.
func (s *Store) Get(ctx context.Context, id string) (*models.SavedDesign, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, customer_id, name, model_code, configuration, created_at, updated_at
		FROM designs WHERE id = ?
	`, id)
	return scanDesign(row)
}

// ListByCustomer returns a customer's designs, most recently updated first.
func (s *Store) ListByCustomer(ctx context.Context, customerID string, limit int) ([]models.SavedDesign, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_id, name, model_code, configuration, created_at, updated_at
		FROM designs WHERE customer_id = ?
		ORDER BY updated_at DESC
		LIMIT ?
	`, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing designs: %w", err)
	}
	defer rows.Close()

	var designs []models.SavedDesign
	for rows.Next() {
		design, err := scanDesignRow(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, *design)
	}
	return designs, rows.Err()
}

// Update replaces the mutable fields of an existing design.
func (s *Store) Update(ctx context.Context, id, name, modelCode, configuration string) (*models.SavedDesign, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE designs
		SET name = ?, model_code = ?, configuration = ?, updated_at = ?
		WHERE id = ?
	`, name, modelCode, configuration, now.UnixMilli(), id)
	if err != nil {
		return nil, fmt.Errorf("updating design: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes a design by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting design: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDesign(row *sql.Row) (*models.SavedDesign, error) {
	design, err := scanDesignRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return design, err
}

func scanDesignRow(scanner rowScanner) (*models.SavedDesign, error) {
	var design models.SavedDesign
	var createdAt, updatedAt int64
	if err := scanner.Scan(
		&design.ID, &design.CustomerID, &design.Name, &design.ModelCode,
		&design.Configuration, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	design.CreatedAt = time.UnixMilli(createdAt).UTC()
	design.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &design, nil
}
