package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"jobmatch/internal/database"
)

// DB adapts a *sql.DB to database.DB.
type DB struct {
	db *sql.DB
}

func New(db *sql.DB) *DB {
	return &DB{db: db}
}

var errNilDB = errors.New("nil db")

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.db == nil {
		return errNilDB
	}
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if d == nil || d.db == nil {
		return 0, errNilDB
	}
	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if d == nil || d.db == nil {
		return nil, errNilDB
	}
	r, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows{r}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if d == nil || d.db == nil {
		return errRow{errNilDB}
	}
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) SQLDB() *sql.DB {
	if d == nil {
		return nil
	}
	return d.db
}

type rows struct {
	*sql.Rows
}

func (r rows) Close() {
	_ = r.Rows.Close()
}

type errRow struct {
	err error
}

func (r errRow) Scan(_ ...any) error {
	return r.err
}
