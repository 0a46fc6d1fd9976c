package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-preventive-care/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO animals (
			id, name, species, birth_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		a.ID,
		a.Name,
		a.Species,
		toNullDate(a.BirthDate),
		a.CreatedAt,
		a.UpdatedAt,
	); err != nil {
		return err
	}

	for _, it := range a.Administered {
		if err := insertAdministered(ctx, tx, a.ID, it); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, birth_date, created_at, updated_at
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, ErrNotFound
		}
		return animals.Animal{}, err
	}

	items, err := r.listAdministered(ctx, a.ID)
	if err != nil {
		return animals.Animal{}, err
	}
	a.Administered = items
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species, birth_date, created_at, updated_at
		FROM animals
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// N+1 aceptable para MVP (listas chicas)
	for i := range out {
		items, err := r.listAdministered(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Administered = items
	}
	return out, nil
}

func (r *AnimalsRepo) AddAdministered(ctx context.Context, animalID string, item animals.Administered) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `UPDATE animals SET updated_at = $2 WHERE id = $1`, animalID, time.Now().UTC())
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}

	if err := insertAdministered(ctx, tx, animalID, item); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *AnimalsRepo) listAdministered(ctx context.Context, animalID string) ([]animals.Administered, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, priority, administered_at
		FROM administered_items
		WHERE animal_id = $1
		ORDER BY id ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Administered, 0)
	for rows.Next() {
		var it animals.Administered
		var at sql.NullTime
		if err := rows.Scan(&it.Name, &it.Priority, &at); err != nil {
			return nil, err
		}
		if at.Valid {
			t := at.Time
			it.AdministeredAt = &t
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var a animals.Animal
	var bd sql.NullTime
	if err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&bd,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}
	if bd.Valid {
		// ojo: birth_date es date, pgx lo mapea a time.Time midnight UTC
		t := bd.Time
		a.BirthDate = &t
	}
	return a, nil
}

func insertAdministered(ctx context.Context, tx *sql.Tx, animalID string, it animals.Administered) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO administered_items (animal_id, name, priority, administered_at)
		VALUES ($1,$2,$3,$4)
	`, animalID, it.Name, it.Priority, toNullDate(it.AdministeredAt))
	return err
}

// birth_date / administered_at son DATE, los pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
