// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package artiste

import (
	"context"
	"fmt"
	"strconv"

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

var artisteColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s",
	schema.CatalogArtiste.ID, schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom,
	schema.CatalogArtiste.AnneeNaissance, schema.CatalogArtiste.CreatedAt, schema.CatalogArtiste.UpdatedAt,
)

func (repository *PostgresRepository) ListArtistes(context context.Context, f Filter, limit, offset int) ([]*Artiste, int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, artisteColumns, schema.CatalogArtiste.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogArtiste.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		condition := fmt.Sprintf(" WHERE (%s ILIKE $1 OR %s ILIKE $1)",
			schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom)
		query += condition
		countQuery += condition
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC LIMIT $", schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom) +
		strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artistes")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artistes")
	}
	defer rows.Close()

	var artistes []*Artiste
	for rows.Next() {
		a := &Artiste{}
		if err := rows.Scan(&a.ID, &a.Nom, &a.Prenom, &a.AnneeNaissance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artiste")
		}
		artistes = append(artistes, a)
	}

	return artistes, total, nil
}

func (repository *PostgresRepository) GetArtiste(context context.Context, id string) (*Artiste, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, artisteColumns, schema.CatalogArtiste.Table, schema.CatalogArtiste.ID)

	a := &Artiste{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Nom, &a.Prenom, &a.AnneeNaissance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_artiste")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateArtiste(context context.Context, a *Artiste) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogArtiste.Table,
		schema.CatalogArtiste.ID, schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom,
		schema.CatalogArtiste.AnneeNaissance, schema.CatalogArtiste.CreatedAt, schema.CatalogArtiste.UpdatedAt,
		schema.CatalogArtiste.CreatedAt, schema.CatalogArtiste.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.Nom, a.Prenom, a.AnneeNaissance).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_artiste")
}

func (repository *PostgresRepository) UpdateArtiste(context context.Context, a *Artiste) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogArtiste.Table,
		schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom, schema.CatalogArtiste.AnneeNaissance,
		schema.CatalogArtiste.UpdatedAt,
		schema.CatalogArtiste.ID,
		schema.CatalogArtiste.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.Nom, a.Prenom, a.AnneeNaissance).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_artiste")
}

func (repository *PostgresRepository) DeleteArtiste(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogArtiste.Table, schema.CatalogArtiste.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artiste")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
