package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/localscan/explorer/db"
	"github.com/localscan/explorer/internal/common"
)

// SQLConnector stores metadata in the contract_metadata table. Queries are written with ?
// placeholders and rebound for postgres.
type SQLConnector struct {
	db      *sql.DB
	dialect string
}

const (
	selectMetadataQuery = `SELECT address, abi, name, verified, stored_at FROM contract_metadata WHERE address = ?`
	listMetadataQuery   = `SELECT address, abi, name, verified, stored_at FROM contract_metadata ORDER BY address`
	upsertMetadataQuery = `INSERT INTO contract_metadata (address, abi, name, verified, stored_at)
	          VALUES (?, ?, ?, ?, ?)
	          ON CONFLICT (address)
	          DO UPDATE SET abi = excluded.abi, name = excluded.name, verified = excluded.verified, stored_at = excluded.stored_at, updated_at = CURRENT_TIMESTAMP`
	clearMetadataQuery = `DELETE FROM contract_metadata`
)

func newSQLConnector(dialect string, dsn string) (*SQLConnector, error) {
	if err := db.RunMigrations(dialect, dsn); err != nil {
		return nil, err
	}
	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dialect, err)
	}
	return &SQLConnector{db: conn, dialect: dialect}, nil
}

func (c *SQLConnector) rebind(query string) string {
	if c.dialect != db.DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (c *SQLConnector) GetMetadata(ctx context.Context, address string) (*common.ContractMetadata, error) {
	row := c.db.QueryRowContext(ctx, c.rebind(selectMetadataQuery), address)
	record, err := scanMetadata(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *SQLConnector) PutMetadata(ctx context.Context, record *common.ContractMetadata) error {
	_, err := c.db.ExecContext(ctx, c.rebind(upsertMetadataQuery),
		record.Address,
		string(record.ABI),
		record.Name,
		record.Verified,
		record.Timestamp,
	)
	return err
}

func (c *SQLConnector) ListMetadata(ctx context.Context) ([]common.ContractMetadata, error) {
	rows, err := c.db.QueryContext(ctx, c.rebind(listMetadataQuery))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []common.ContractMetadata{}
	for rows.Next() {
		record, err := scanMetadata(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (c *SQLConnector) ClearMetadata(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, clearMetadataQuery)
	return err
}

func (c *SQLConnector) Close() error {
	return c.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMetadata(row rowScanner) (*common.ContractMetadata, error) {
	var record common.ContractMetadata
	var abi string
	if err := row.Scan(&record.Address, &abi, &record.Name, &record.Verified, &record.Timestamp); err != nil {
		return nil, err
	}
	record.ABI = []byte(abi)
	return &record, nil
}
