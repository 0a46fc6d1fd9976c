package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pet-preventive-care/internal/domain/animals"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = animals.ErrNotFound
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS animals (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	species     TEXT NOT NULL,
	birth_date  DATE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS administered_items (
	id              BIGSERIAL PRIMARY KEY,
	animal_id       TEXT NOT NULL REFERENCES animals(id) ON DELETE CASCADE,
	name            TEXT NOT NULL,
	priority        TEXT NOT NULL DEFAULT '',
	administered_at DATE
);

CREATE INDEX IF NOT EXISTS administered_items_animal_idx ON administered_items (animal_id);
`

// EnsureSchema crea las tablas si no existen (dev/handoff; no hay migraciones aún).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
