package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// PostgreSQLNoteRepository implements Note persistence for PostgreSQL.
type PostgreSQLNoteRepository struct {
	db *sql.DB
}

const pgNoteColumns = `id, user_id, title, text, created_at, updated_at`

// Create inserts a new Note with its tags and populates the generated ID.
// Must run inside a transaction so the note and its tag links are written together.
func (p *PostgreSQLNoteRepository) Create(ctx context.Context, note *noteDomain.Note) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO notes (user_id, title, text, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		note.UserID,
		note.Title,
		note.Text,
		note.CreatedAt,
		note.UpdatedAt,
	).Scan(&note.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}

	return p.attachTags(ctx, note.ID, note.Tags)
}

// Get retrieves a Note with its tags. Returns ErrNoteNotFound if it does not exist.
func (p *PostgreSQLNoteRepository) Get(ctx context.Context, noteID int64) (*noteDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx, `SELECT `+pgNoteColumns+` FROM notes WHERE id = $1`, noteID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get note")
	}

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, noteDomain.ErrNoteNotFound
	}

	if err := p.loadTags(ctx, notes); err != nil {
		return nil, err
	}
	return notes[0], nil
}

// ListByUser retrieves the notes owned by userID, newest first.
func (p *PostgreSQLNoteRepository) ListByUser(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*noteDomain.Note, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + pgNoteColumns + ` FROM notes
			  WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, err
	}

	if err := p.loadTags(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateText replaces the text of a Note. Returns ErrNoteNotFound if it does not exist.
func (p *PostgreSQLNoteRepository) UpdateText(
	ctx context.Context,
	noteID int64,
	text string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(
		ctx,
		`UPDATE notes SET text = $1, updated_at = $2 WHERE id = $3`,
		text,
		updatedAt,
		noteID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update note")
	}
	return requireAffected(result, noteDomain.ErrNoteNotFound)
}

// ReplaceTags replaces the tag set of a Note, creating missing tags by title.
func (p *PostgreSQLNoteRepository) ReplaceTags(
	ctx context.Context,
	noteID int64,
	tags []string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM notes_tags WHERE note_id = $1`, noteID); err != nil {
		return apperrors.Wrap(err, "failed to clear note tags")
	}

	if _, err := querier.ExecContext(ctx, `UPDATE notes SET updated_at = $1 WHERE id = $2`, updatedAt, noteID); err != nil {
		return apperrors.Wrap(err, "failed to touch note")
	}

	return p.attachTags(ctx, noteID, tags)
}

// Delete removes a Note; its tag links are removed by ON DELETE CASCADE.
// Returns ErrNoteNotFound if it does not exist.
func (p *PostgreSQLNoteRepository) Delete(ctx context.Context, noteID int64) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, noteID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}
	return requireAffected(result, noteDomain.ErrNoteNotFound)
}

// attachTags links tags to a note in order, creating tags that do not exist yet.
func (p *PostgreSQLNoteRepository) attachTags(ctx context.Context, noteID int64, tags []string) error {
	querier := database.GetTx(ctx, p.db)

	for position, title := range tags {
		var tagID int64
		err := querier.QueryRowContext(
			ctx,
			`INSERT INTO tags (title, created_at, updated_at) VALUES ($1, NOW(), NOW())
			 ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
			 RETURNING id`,
			title,
		).Scan(&tagID)
		if err != nil {
			return apperrors.Wrap(err, "failed to get or create tag")
		}

		_, err = querier.ExecContext(
			ctx,
			`INSERT INTO notes_tags (note_id, tag_id, position) VALUES ($1, $2, $3)`,
			noteID,
			tagID,
			position,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to link tag to note")
		}
	}
	return nil
}

// loadTags fills the Tags of each note with a single query.
func (p *PostgreSQLNoteRepository) loadTags(ctx context.Context, notes []*noteDomain.Note) error {
	if len(notes) == 0 {
		return nil
	}

	querier := database.GetTx(ctx, p.db)

	query := `SELECT nt.note_id, t.title
			  FROM notes_tags nt
			  JOIN tags t ON t.id = nt.tag_id
			  WHERE nt.note_id = ANY($1)
			  ORDER BY nt.note_id, nt.position`

	rows, err := querier.QueryContext(ctx, query, pq.Array(noteIDs(notes)))
	if err != nil {
		return apperrors.Wrap(err, "failed to load note tags")
	}
	return assignTags(rows, notes)
}

// requireAffected returns notFound when result reports zero affected rows.
func requireAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

// NewPostgreSQLNoteRepository creates a new PostgreSQL Note repository.
func NewPostgreSQLNoteRepository(db *sql.DB) *PostgreSQLNoteRepository {
	return &PostgreSQLNoteRepository{db: db}
}
