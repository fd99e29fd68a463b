package directory

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"

	"github.com/onereply/onereply/pkg/logger"
)

const sqlLookupTimeout = 5 * time.Second

// SQLSource resolves names from the contacts table of the operator's
// database. This is the preferred source; the HTTP directory is only
// consulted when it misses.
type SQLSource struct {
	db *sql.DB
}

// OpenSQLSource opens the Postgres connection for the contacts table.
func OpenSQLSource(dsn string) (*SQLSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return &SQLSource{db: db}, nil
}

func (s *SQLSource) Close() error {
	return s.db.Close()
}

func (s *SQLSource) ResolveName(ctx context.Context, number string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, sqlLookupTimeout)
	defer cancel()

	// Match on the normalized form so stored numbers with or without the
	// leading + both resolve.
	query := `SELECT name FROM contacts
		WHERE replace(replace(number, '+', ''), ' ', '') = $1
		LIMIT 1`

	var name string
	err := s.db.QueryRowContext(ctx, query, NormalizeNumber(number)).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		logger.WarnCF("directory", "SQL lookup failed", map[string]interface{}{
			"number": number,
			"error":  err.Error(),
		})
		return "", false
	}
	if name == "" {
		return "", false
	}
	return name, true
}
