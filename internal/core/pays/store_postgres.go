// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package pays

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

var paysColumns = fmt.Sprintf("%s, %s, %s, %s, %s",
	schema.CatalogPays.Code, schema.CatalogPays.Nom, schema.CatalogPays.Langue,
	schema.CatalogPays.CreatedAt, schema.CatalogPays.UpdatedAt,
)

func (repository *PostgresRepository) ListPays(context context.Context, limit, offset int) ([]*Pays, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogPays.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_pays")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`, paysColumns, schema.CatalogPays.Table, schema.CatalogPays.Nom)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_pays")
	}
	defer rows.Close()

	var countries []*Pays
	for rows.Next() {
		p := &Pays{}
		if err := rows.Scan(&p.Code, &p.Nom, &p.Langue, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_pays")
		}
		countries = append(countries, p)
	}

	return countries, total, nil
}

func (repository *PostgresRepository) GetPays(context context.Context, code string) (*Pays, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, paysColumns, schema.CatalogPays.Table, schema.CatalogPays.Code)

	p := &Pays{}
	err := repository.db.QueryRow(context, query, code).Scan(&p.Code, &p.Nom, &p.Langue, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_pays")
	}
	return p, nil
}

func (repository *PostgresRepository) CreatePays(context context.Context, p *Pays) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogPays.Table,
		schema.CatalogPays.Code, schema.CatalogPays.Nom, schema.CatalogPays.Langue,
		schema.CatalogPays.CreatedAt, schema.CatalogPays.UpdatedAt,
		schema.CatalogPays.CreatedAt, schema.CatalogPays.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.Code, p.Nom, p.Langue).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_pays")
}

func (repository *PostgresRepository) UpdatePays(context context.Context, p *Pays) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogPays.Table,
		schema.CatalogPays.Nom, schema.CatalogPays.Langue, schema.CatalogPays.UpdatedAt,
		schema.CatalogPays.Code,
		schema.CatalogPays.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.Code, p.Nom, p.Langue).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_pays")
}

func (repository *PostgresRepository) DeletePays(context context.Context, code string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogPays.Table, schema.CatalogPays.Code)

	cmd, err := repository.db.Exec(context, query, code)
	if err != nil {
		return dberr.Wrap(err, "delete_pays")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
