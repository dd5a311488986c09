// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package film

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

// filmSelect is the SELECT clause shared by every film read, joining the
// director and the country so list rows come back fully populated.
var filmSelect = fmt.Sprintf(`
	SELECT f.%s, f.%s, f.%s, f.%s, f.%s, f.%s, f.%s, f.%s, f.%s, f.%s,
	       a.%s, a.%s, a.%s, a.%s,
	       p.%s, p.%s, p.%s
	FROM %s f
	LEFT JOIN %s a ON f.%s = a.%s
	JOIN %s p ON f.%s = p.%s
`,
	schema.CatalogFilm.ID, schema.CatalogFilm.Titre, schema.CatalogFilm.Annee,
	schema.CatalogFilm.Genre, schema.CatalogFilm.Resume, schema.CatalogFilm.DocumentChemin,
	schema.CatalogFilm.RealisateurID, schema.CatalogFilm.PaysCode,
	schema.CatalogFilm.CreatedAt, schema.CatalogFilm.UpdatedAt,
	schema.CatalogArtiste.ID, schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom,
	schema.CatalogArtiste.AnneeNaissance,
	schema.CatalogPays.Code, schema.CatalogPays.Nom, schema.CatalogPays.Langue,
	schema.CatalogFilm.Table,
	schema.CatalogArtiste.Table, schema.CatalogFilm.RealisateurID, schema.CatalogArtiste.ID,
	schema.CatalogPays.Table, schema.CatalogFilm.PaysCode, schema.CatalogPays.Code,
)

func (repository *PostgresRepository) ListFilms(context context.Context, f Filter, limit, offset int) ([]*Film, int, error) {
	where, args := buildFilmFilter(f)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s f`, schema.CatalogFilm.Table) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_films")
	}

	query := filmSelect + where +
		fmt.Sprintf(" ORDER BY f.%s DESC, f.%s ASC", schema.CatalogFilm.Annee, schema.CatalogFilm.Titre) +
		" LIMIT $" + itos(len(args)+1) + " OFFSET $" + itos(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_films")
	}
	defer rows.Close()

	var films []*Film
	for rows.Next() {
		film, err := scanFilm(rows.Scan)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_film")
		}
		films = append(films, film)
	}

	return films, total, nil
}

func (repository *PostgresRepository) GetFilm(context context.Context, id string) (*Film, error) {
	query := filmSelect + fmt.Sprintf(" WHERE f.%s = $1", schema.CatalogFilm.ID)

	film, err := scanFilm(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_film")
	}

	roles, err := repository.listRolesByFilm(context, film.ID)
	if err != nil {
		return nil, err
	}
	film.Roles = roles

	return film, nil
}

func (repository *PostgresRepository) CreateFilm(context context.Context, film *Film) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogFilm.Table,
		schema.CatalogFilm.ID, schema.CatalogFilm.Titre, schema.CatalogFilm.Annee,
		schema.CatalogFilm.Genre, schema.CatalogFilm.Resume, schema.CatalogFilm.RealisateurID,
		schema.CatalogFilm.PaysCode, schema.CatalogFilm.CreatedAt, schema.CatalogFilm.UpdatedAt,
		schema.CatalogFilm.CreatedAt, schema.CatalogFilm.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		film.ID, film.Titre, film.Annee, film.Genre, film.Resume, film.RealisateurID, film.PaysCode,
	).Scan(&film.CreatedAt, &film.UpdatedAt)
	return dberr.Wrap(err, "create_film")
}

func (repository *PostgresRepository) UpdateFilm(context context.Context, film *Film) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogFilm.Table,
		schema.CatalogFilm.Titre, schema.CatalogFilm.Annee, schema.CatalogFilm.Genre,
		schema.CatalogFilm.Resume, schema.CatalogFilm.RealisateurID, schema.CatalogFilm.PaysCode,
		schema.CatalogFilm.UpdatedAt,
		schema.CatalogFilm.ID,
		schema.CatalogFilm.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		film.ID, film.Titre, film.Annee, film.Genre, film.Resume, film.RealisateurID, film.PaysCode,
	).Scan(&film.UpdatedAt)
	return dberr.Wrap(err, "update_film")
}

func (repository *PostgresRepository) DeleteFilm(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogFilm.Table, schema.CatalogFilm.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_film")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetDocumentChemin(context context.Context, id, path string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.CatalogFilm.Table, schema.CatalogFilm.DocumentChemin,
		schema.CatalogFilm.UpdatedAt, schema.CatalogFilm.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, path)
	if err != nil {
		return dberr.Wrap(err, "set_document_chemin")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListFilmsByPays(context context.Context, code string) ([]*Film, error) {
	query := filmSelect +
		fmt.Sprintf(" WHERE f.%s = $1 ORDER BY f.%s DESC, f.%s ASC",
			schema.CatalogFilm.PaysCode, schema.CatalogFilm.Annee, schema.CatalogFilm.Titre)

	return repository.queryFilms(context, query, "list_films_by_pays", code)
}

func (repository *PostgresRepository) ListFilmsByRealisateur(context context.Context, artisteID string) ([]*Film, error) {
	query := filmSelect +
		fmt.Sprintf(" WHERE f.%s = $1 ORDER BY f.%s DESC, f.%s ASC",
			schema.CatalogFilm.RealisateurID, schema.CatalogFilm.Annee, schema.CatalogFilm.Titre)

	return repository.queryFilms(context, query, "list_films_by_realisateur", artisteID)
}

func (repository *PostgresRepository) ListRolesByArtiste(context context.Context, artisteID string) ([]Role, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s,
		       f.%s, f.%s, f.%s, f.%s
		FROM %s r
		JOIN %s f ON r.%s = f.%s
		WHERE r.%s = $1
		ORDER BY f.%s DESC
	`,
		schema.CatalogRole.ID, schema.CatalogRole.Libelle,
		schema.CatalogFilm.ID, schema.CatalogFilm.Titre, schema.CatalogFilm.Annee, schema.CatalogFilm.Genre,
		schema.CatalogRole.Table,
		schema.CatalogFilm.Table, schema.CatalogRole.FilmID, schema.CatalogFilm.ID,
		schema.CatalogRole.ArtisteID,
		schema.CatalogFilm.Annee,
	)

	rows, err := repository.db.Query(context, query, artisteID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_roles_by_artiste")
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		film := &Film{}
		if err := rows.Scan(&role.ID, &role.Libelle, &film.ID, &film.Titre, &film.Annee, &film.Genre); err != nil {
			return nil, dberr.Wrap(err, "scan_role")
		}
		role.Film = film
		roles = append(roles, role)
	}

	return roles, nil
}

// listRolesByFilm loads a film's cast credits with their artiste populated.
func (repository *PostgresRepository) listRolesByFilm(context context.Context, filmID string) ([]Role, error) {
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s,
		       a.%s, a.%s, a.%s, a.%s
		FROM %s r
		JOIN %s a ON r.%s = a.%s
		WHERE r.%s = $1
		ORDER BY a.%s ASC, a.%s ASC
	`,
		schema.CatalogRole.ID, schema.CatalogRole.Libelle,
		schema.CatalogArtiste.ID, schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom,
		schema.CatalogArtiste.AnneeNaissance,
		schema.CatalogRole.Table,
		schema.CatalogArtiste.Table, schema.CatalogRole.ArtisteID, schema.CatalogArtiste.ID,
		schema.CatalogRole.FilmID,
		schema.CatalogArtiste.Nom, schema.CatalogArtiste.Prenom,
	)

	rows, err := repository.db.Query(context, query, filmID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_roles_by_film")
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		artiste := &Artiste{}
		if err := rows.Scan(&role.ID, &role.Libelle,
			&artiste.ID, &artiste.Nom, &artiste.Prenom, &artiste.AnneeNaissance); err != nil {
			return nil, dberr.Wrap(err, "scan_role")
		}
		role.Artiste = artiste
		roles = append(roles, role)
	}

	return roles, nil
}

// queryFilms runs a filmSelect-based query and scans every row.
func (repository *PostgresRepository) queryFilms(context context.Context, query, action string, args ...any) ([]*Film, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var films []*Film
	for rows.Next() {
		film, err := scanFilm(rows.Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_film")
		}
		films = append(films, film)
	}

	return films, nil
}

// buildFilmFilter renders the WHERE clause for a [Filter] with positional args.
func buildFilmFilter(f Filter) (string, []any) {
	var conditions []string
	var args []any

	next := func() string { return "$" + itos(len(args)) }

	if f.Titre != "" {
		args = append(args, "%"+f.Titre+"%")
		conditions = append(conditions, fmt.Sprintf("f.%s ILIKE %s", schema.CatalogFilm.Titre, next()))
	}
	if f.Genre != "" {
		args = append(args, f.Genre)
		conditions = append(conditions, fmt.Sprintf("f.%s = %s", schema.CatalogFilm.Genre, next()))
	}
	if f.Annee != nil {
		args = append(args, *f.Annee)
		conditions = append(conditions, fmt.Sprintf("f.%s = %s", schema.CatalogFilm.Annee, next()))
	}
	if f.Realisateur != "" {
		args = append(args, f.Realisateur)
		conditions = append(conditions, fmt.Sprintf("f.%s = %s", schema.CatalogFilm.RealisateurID, next()))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanFilm reads one filmSelect row, materializing the joined director and
// country views. The director side of the join is nullable.
func scanFilm(scan func(dest ...any) error) (*Film, error) {
	film := &Film{}
	pays := &Pays{}

	var artisteID, artisteNom, artistePrenom *string
	var artisteAnnee *int

	err := scan(
		&film.ID, &film.Titre, &film.Annee, &film.Genre, &film.Resume, &film.DocumentChemin,
		&film.RealisateurID, &film.PaysCode, &film.CreatedAt, &film.UpdatedAt,
		&artisteID, &artisteNom, &artistePrenom, &artisteAnnee,
		&pays.Code, &pays.Nom, &pays.Langue,
	)
	if err != nil {
		return nil, err
	}

	if artisteID != nil {
		film.Realisateur = &Artiste{
			ID:             *artisteID,
			Nom:            *artisteNom,
			Prenom:         *artistePrenom,
			AnneeNaissance: *artisteAnnee,
		}
	}
	film.Pays = pays

	return film, nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
