package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// MySQLNoteRepository implements Note persistence for MySQL.
type MySQLNoteRepository struct {
	db *sql.DB
}

const mysqlNoteColumns = `id, user_id, title, text, created_at, updated_at`

// Create inserts a new Note with its tags and populates the generated ID.
// Must run inside a transaction so the note and its tag links are written together.
func (m *MySQLNoteRepository) Create(ctx context.Context, note *noteDomain.Note) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO notes (user_id, title, text, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		note.UserID,
		note.Title,
		note.Text,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get note id")
	}
	note.ID = id

	return m.attachTags(ctx, note.ID, note.Tags)
}

// Get retrieves a Note with its tags. Returns ErrNoteNotFound if it does not exist.
func (m *MySQLNoteRepository) Get(ctx context.Context, noteID int64) (*noteDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, `SELECT `+mysqlNoteColumns+` FROM notes WHERE id = ?`, noteID)
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

	if err := m.loadTags(ctx, notes); err != nil {
		return nil, err
	}
	return notes[0], nil
}

// ListByUser retrieves the notes owned by userID, newest first.
func (m *MySQLNoteRepository) ListByUser(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*noteDomain.Note, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlNoteColumns + ` FROM notes
			  WHERE user_id = ?
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, err
	}

	if err := m.loadTags(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateText replaces the text of a Note.
//
// MySQL reports zero affected rows when the new text equals the old one, so callers
// must establish existence beforehand (the use case loads the note in the same transaction).
func (m *MySQLNoteRepository) UpdateText(
	ctx context.Context,
	noteID int64,
	text string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	_, err := querier.ExecContext(
		ctx,
		`UPDATE notes SET text = ?, updated_at = ? WHERE id = ?`,
		text,
		updatedAt,
		noteID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update note")
	}
	return nil
}

// ReplaceTags replaces the tag set of a Note, creating missing tags by title.
func (m *MySQLNoteRepository) ReplaceTags(
	ctx context.Context,
	noteID int64,
	tags []string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM notes_tags WHERE note_id = ?`, noteID); err != nil {
		return apperrors.Wrap(err, "failed to clear note tags")
	}

	if _, err := querier.ExecContext(ctx, `UPDATE notes SET updated_at = ? WHERE id = ?`, updatedAt, noteID); err != nil {
		return apperrors.Wrap(err, "failed to touch note")
	}

	return m.attachTags(ctx, noteID, tags)
}

// Delete removes a Note; its tag links are removed by ON DELETE CASCADE.
// Returns ErrNoteNotFound if it does not exist.
func (m *MySQLNoteRepository) Delete(ctx context.Context, noteID int64) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, noteID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}
	return requireAffected(result, noteDomain.ErrNoteNotFound)
}

// attachTags links tags to a note in order, creating tags that do not exist yet.
// LAST_INSERT_ID(id) makes the existing row's id visible through LastInsertId on duplicates.
func (m *MySQLNoteRepository) attachTags(ctx context.Context, noteID int64, tags []string) error {
	querier := database.GetTx(ctx, m.db)

	for position, title := range tags {
		result, err := querier.ExecContext(
			ctx,
			`INSERT INTO tags (title, created_at, updated_at) VALUES (?, NOW(), NOW())
			 ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`,
			title,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to get or create tag")
		}

		tagID, err := result.LastInsertId()
		if err != nil {
			return apperrors.Wrap(err, "failed to get tag id")
		}

		_, err = querier.ExecContext(
			ctx,
			`INSERT INTO notes_tags (note_id, tag_id, position) VALUES (?, ?, ?)`,
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
func (m *MySQLNoteRepository) loadTags(ctx context.Context, notes []*noteDomain.Note) error {
	if len(notes) == 0 {
		return nil
	}

	querier := database.GetTx(ctx, m.db)

	ids := noteIDs(notes)
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")

	query := `SELECT nt.note_id, t.title
			  FROM notes_tags nt
			  JOIN tags t ON t.id = nt.tag_id
			  WHERE nt.note_id IN (` + placeholders + `)
			  ORDER BY nt.note_id, nt.position`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to load note tags")
	}
	return assignTags(rows, notes)
}

// NewMySQLNoteRepository creates a new MySQL Note repository.
func NewMySQLNoteRepository(db *sql.DB) *MySQLNoteRepository {
	return &MySQLNoteRepository{db: db}
}
