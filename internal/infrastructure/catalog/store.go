package catalog

import (
	"context"
	"database/sql"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// Store is the PostgreSQL drug catalog.  It implements the triage service's
// CatalogStore contract.
type Store struct {
	conn   *Connection
	logger logging.Logger
}

// NewStore creates a catalog store over an established connection.
func NewStore(conn *Connection, log logging.Logger) (*Store, error) {
	if conn == nil {
		return nil, errors.InvalidParam("connection is required")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{conn: conn, logger: log}, nil
}

// ListDrugs returns the full catalog in insertion order.
func (s *Store) ListDrugs(ctx context.Context) ([]candidate.Candidate, error) {
	rows, err := s.conn.DB().QueryContext(ctx,
		`SELECT name, smiles FROM drugs ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list drugs")
	}
	defer rows.Close()

	var drugs []candidate.Candidate
	for rows.Next() {
		var c candidate.Candidate
		if err := rows.Scan(&c.Name, &c.SMILES); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan drug row")
		}
		drugs = append(drugs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "drug row iteration failed")
	}
	return drugs, nil
}

// CountDrugs returns the catalog size.
func (s *Store) CountDrugs(ctx context.Context) (int, error) {
	var n int
	err := s.conn.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to count drugs")
	}
	return n, nil
}

// UpsertDrug inserts a drug or updates its structure when the name exists.
func (s *Store) UpsertDrug(ctx context.Context, c candidate.Candidate) error {
	_, err := s.conn.DB().ExecContext(ctx,
		`INSERT INTO drugs (name, smiles) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET smiles = EXCLUDED.smiles`,
		c.Name, c.SMILES)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to upsert drug")
	}
	return nil
}

// GetDrugByName fetches a single catalog entry.
func (s *Store) GetDrugByName(ctx context.Context, name string) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := s.conn.DB().QueryRowContext(ctx,
		`SELECT name, smiles FROM drugs WHERE name = $1`, name).
		Scan(&c.Name, &c.SMILES)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("drug not found").WithDetail(name)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to get drug")
	}
	return &c, nil
}
