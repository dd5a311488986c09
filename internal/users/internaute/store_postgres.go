// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package internaute

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmarchal/filmotheque/internal/platform/database/schema"
	"github.com/lmarchal/filmotheque/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// internauteColumns is the shared SELECT column list, ordered to match scanInternaute.
var internauteColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.UsersInternaute.ID, schema.UsersInternaute.Email, schema.UsersInternaute.Nom,
	schema.UsersInternaute.Prenom, schema.UsersInternaute.MotDePasse,
	schema.UsersInternaute.AnneeNaissance, schema.UsersInternaute.Actif,
	schema.UsersInternaute.CreatedAt, schema.UsersInternaute.UpdatedAt,
)

func (repository *PostgresRepository) ListInternautes(context context.Context, limit, offset int) ([]*Internaute, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.UsersInternaute.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_internautes")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, internauteColumns, schema.UsersInternaute.Table, schema.UsersInternaute.Nom, schema.UsersInternaute.Prenom)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_internautes")
	}
	defer rows.Close()

	var internautes []*Internaute
	for rows.Next() {
		i := &Internaute{}
		if err := scanInternaute(rows.Scan, i); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_internaute")
		}
		internautes = append(internautes, i)
	}

	return internautes, total, nil
}

func (repository *PostgresRepository) GetInternaute(context context.Context, id string) (*Internaute, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, internauteColumns, schema.UsersInternaute.Table, schema.UsersInternaute.ID)

	i := &Internaute{}
	err := scanInternaute(repository.db.QueryRow(context, query, id).Scan, i)
	if err != nil {
		return nil, dberr.Wrap(err, "get_internaute")
	}
	return i, nil
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Internaute, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, internauteColumns, schema.UsersInternaute.Table, schema.UsersInternaute.Email)

	i := &Internaute{}
	err := scanInternaute(repository.db.QueryRow(context, query, email).Scan, i)
	if err != nil {
		return nil, dberr.Wrap(err, "find_internaute_by_email")
	}
	return i, nil
}

func (repository *PostgresRepository) CreateInternaute(context context.Context, i *Internaute) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.UsersInternaute.Table,
		schema.UsersInternaute.ID, schema.UsersInternaute.Email, schema.UsersInternaute.Nom,
		schema.UsersInternaute.Prenom, schema.UsersInternaute.MotDePasse,
		schema.UsersInternaute.AnneeNaissance, schema.UsersInternaute.Actif,
		schema.UsersInternaute.CreatedAt, schema.UsersInternaute.UpdatedAt,
		schema.UsersInternaute.CreatedAt, schema.UsersInternaute.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		i.ID, i.Email, i.Nom, i.Prenom, i.MotDePasse, i.AnneeNaissance, i.Actif,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
	return dberr.Wrap(err, "create_internaute")
}

func (repository *PostgresRepository) UpdateInternaute(context context.Context, i *Internaute) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UsersInternaute.Table,
		schema.UsersInternaute.Email, schema.UsersInternaute.Nom, schema.UsersInternaute.Prenom,
		schema.UsersInternaute.MotDePasse, schema.UsersInternaute.AnneeNaissance,
		schema.UsersInternaute.Actif, schema.UsersInternaute.UpdatedAt,
		schema.UsersInternaute.ID,
		schema.UsersInternaute.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		i.ID, i.Email, i.Nom, i.Prenom, i.MotDePasse, i.AnneeNaissance, i.Actif,
	).Scan(&i.UpdatedAt)
	return dberr.Wrap(err, "update_internaute")
}

func (repository *PostgresRepository) DeleteInternaute(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UsersInternaute.Table, schema.UsersInternaute.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_internaute")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanInternaute reads one row in internauteColumns order.
func scanInternaute(scan func(dest ...any) error, i *Internaute) error {
	return scan(
		&i.ID, &i.Email, &i.Nom, &i.Prenom, &i.MotDePasse,
		&i.AnneeNaissance, &i.Actif, &i.CreatedAt, &i.UpdatedAt,
	)
}
