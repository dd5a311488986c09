// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package note

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

// noteSelect joins the author and the film so list rows come back populated.
var noteSelect = fmt.Sprintf(`
	SELECT n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s,
	       i.%s, i.%s, i.%s,
	       f.%s, f.%s, f.%s
	FROM %s n
	JOIN %s i ON n.%s = i.%s
	JOIN %s f ON n.%s = f.%s
`,
	schema.SocialNote.ID, schema.SocialNote.InternauteID, schema.SocialNote.FilmID,
	schema.SocialNote.Note, schema.SocialNote.Commentaire,
	schema.SocialNote.CreatedAt, schema.SocialNote.UpdatedAt,
	schema.UsersInternaute.ID, schema.UsersInternaute.Nom, schema.UsersInternaute.Prenom,
	schema.CatalogFilm.ID, schema.CatalogFilm.Titre, schema.CatalogFilm.Annee,
	schema.SocialNote.Table,
	schema.UsersInternaute.Table, schema.SocialNote.InternauteID, schema.UsersInternaute.ID,
	schema.CatalogFilm.Table, schema.SocialNote.FilmID, schema.CatalogFilm.ID,
)

func (repository *PostgresRepository) ListNotes(context context.Context, f Filter, limit, offset int) ([]*Note, int, error) {
	where, args := buildNoteFilter(f)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s n`, schema.SocialNote.Table) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_notes")
	}

	query := noteSelect + where +
		fmt.Sprintf(" ORDER BY n.%s DESC", schema.SocialNote.CreatedAt) +
		" LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	notes, err := repository.queryNotes(context, query, "list_notes", args...)
	if err != nil {
		return nil, 0, err
	}

	return notes, total, nil
}

func (repository *PostgresRepository) GetNote(context context.Context, id string) (*Note, error) {
	query := noteSelect + fmt.Sprintf(" WHERE n.%s = $1", schema.SocialNote.ID)

	note, err := scanNote(repository.db.QueryRow(context, query, id).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "get_note")
	}
	return note, nil
}

func (repository *PostgresRepository) ListNotesByFilm(context context.Context, filmID string) ([]*Note, error) {
	query := noteSelect +
		fmt.Sprintf(" WHERE n.%s = $1 ORDER BY n.%s DESC", schema.SocialNote.FilmID, schema.SocialNote.CreatedAt)

	return repository.queryNotes(context, query, "list_notes_by_film", filmID)
}

func (repository *PostgresRepository) ListNotesByInternaute(context context.Context, internauteID string) ([]*Note, error) {
	query := noteSelect +
		fmt.Sprintf(" WHERE n.%s = $1 ORDER BY n.%s DESC", schema.SocialNote.InternauteID, schema.SocialNote.CreatedAt)

	return repository.queryNotes(context, query, "list_notes_by_internaute", internauteID)
}

func (repository *PostgresRepository) FindByInternauteAndFilm(context context.Context, internauteID, filmID string) (*Note, error) {
	query := noteSelect +
		fmt.Sprintf(" WHERE n.%s = $1 AND n.%s = $2", schema.SocialNote.InternauteID, schema.SocialNote.FilmID)

	note, err := scanNote(repository.db.QueryRow(context, query, internauteID, filmID).Scan)
	if err != nil {
		return nil, dberr.Wrap(err, "find_note_by_internaute_and_film")
	}
	return note, nil
}

func (repository *PostgresRepository) CreateNote(context context.Context, n *Note) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.SocialNote.Table,
		schema.SocialNote.ID, schema.SocialNote.InternauteID, schema.SocialNote.FilmID,
		schema.SocialNote.Note, schema.SocialNote.Commentaire,
		schema.SocialNote.CreatedAt, schema.SocialNote.UpdatedAt,
		schema.SocialNote.CreatedAt, schema.SocialNote.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		n.ID, n.InternauteID, n.FilmID, n.Note, n.Commentaire,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	return dberr.Wrap(err, "create_note")
}

func (repository *PostgresRepository) UpdateNote(context context.Context, n *Note) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.SocialNote.Table,
		schema.SocialNote.Note, schema.SocialNote.Commentaire, schema.SocialNote.UpdatedAt,
		schema.SocialNote.ID,
		schema.SocialNote.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, n.ID, n.Note, n.Commentaire).Scan(&n.UpdatedAt)
	return dberr.Wrap(err, "update_note")
}

func (repository *PostgresRepository) DeleteNote(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SocialNote.Table, schema.SocialNote.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_note")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) queryNotes(context context.Context, query, action string, args ...any) ([]*Note, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_note")
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func buildNoteFilter(f Filter) (string, []any) {
	var conditions []string
	var args []any

	if f.FilmID != "" {
		args = append(args, f.FilmID)
		conditions = append(conditions, fmt.Sprintf("n.%s = $%d", schema.SocialNote.FilmID, len(args)))
	}
	if f.InternauteID != "" {
		args = append(args, f.InternauteID)
		conditions = append(conditions, fmt.Sprintf("n.%s = $%d", schema.SocialNote.InternauteID, len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanNote reads one noteSelect row.
func scanNote(scan func(dest ...any) error) (*Note, error) {
	note := &Note{}
	author := &Internaute{}
	film := &Film{}

	err := scan(
		&note.ID, &note.InternauteID, &note.FilmID, &note.Note, &note.Commentaire,
		&note.CreatedAt, &note.UpdatedAt,
		&author.ID, &author.Nom, &author.Prenom,
		&film.ID, &film.Titre, &film.Annee,
	)
	if err != nil {
		return nil, err
	}

	note.Internaute = author
	note.Film = film
	return note, nil
}
