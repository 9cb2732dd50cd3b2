// Package repository implements note and tag persistence.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// Tags are stored once per title and linked to notes through notes_tags, which keeps
// the position of each tag so that a note's tags come back in the order they were set.
package repository

import (
	"database/sql"

	apperrors "github.com/allisson/notes/internal/errors"
	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// scanNotes reads note rows selected as (id, user_id, title, text, created_at, updated_at).
func scanNotes(rows *sql.Rows) ([]*noteDomain.Note, error) {
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]*noteDomain.Note, 0)
	for rows.Next() {
		var note noteDomain.Note
		if err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Text,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note")
		}
		note.Tags = []string{}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate notes")
	}
	return notes, nil
}

// assignTags reads (note_id, title) rows and appends each title to its note.
func assignTags(rows *sql.Rows, notes []*noteDomain.Note) error {
	defer func() {
		_ = rows.Close()
	}()

	byID := make(map[int64]*noteDomain.Note, len(notes))
	for _, note := range notes {
		byID[note.ID] = note
	}

	for rows.Next() {
		var noteID int64
		var title string
		if err := rows.Scan(&noteID, &title); err != nil {
			return apperrors.Wrap(err, "failed to scan note tag")
		}
		if note, ok := byID[noteID]; ok {
			note.Tags = append(note.Tags, title)
		}
	}

	if err := rows.Err(); err != nil {
		return apperrors.Wrap(err, "failed to iterate note tags")
	}
	return nil
}

func noteIDs(notes []*noteDomain.Note) []int64 {
	ids := make([]int64, 0, len(notes))
	for _, note := range notes {
		ids = append(ids, note.ID)
	}
	return ids
}
