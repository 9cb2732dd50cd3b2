// Package usecase implements note business logic. Every operation acts on behalf
// of an authenticated identity and refuses to touch notes owned by someone else.
package usecase

import (
	"context"
	"time"

	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// NoteRepository defines the interface for note persistence.
type NoteRepository interface {
	Create(ctx context.Context, note *noteDomain.Note) error
	Get(ctx context.Context, noteID int64) (*noteDomain.Note, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*noteDomain.Note, error)
	UpdateText(ctx context.Context, noteID int64, text string, updatedAt time.Time) error
	ReplaceTags(ctx context.Context, noteID int64, tags []string, updatedAt time.Time) error
	Delete(ctx context.Context, noteID int64) error
}

// NoteUseCase defines the note operations available to an authenticated identity.
// ownerID is always the identity attached by the authentication middleware.
type NoteUseCase interface {
	// List returns the owner's notes, newest first.
	List(ctx context.Context, ownerID int64, offset, limit int) ([]*noteDomain.Note, error)

	// Get returns a note. Returns ErrNoteNotFound or ErrNotOwner.
	Get(ctx context.Context, ownerID, noteID int64) (*noteDomain.Note, error)

	// Create stores a new note owned by ownerID. Tags are created on first use.
	Create(ctx context.Context, ownerID int64, input *noteDomain.CreateNoteInput) (*noteDomain.Note, error)

	// EditText replaces the text of a note. Returns ErrNoteNotFound or ErrNotOwner.
	EditText(ctx context.Context, ownerID, noteID int64, text string) (*noteDomain.Note, error)

	// EditTags replaces the tags of a note. Returns ErrNoteNotFound or ErrNotOwner.
	EditTags(ctx context.Context, ownerID, noteID int64, tags []string) (*noteDomain.Note, error)

	// Delete removes a note. Returns ErrNoteNotFound or ErrNotOwner.
	Delete(ctx context.Context, ownerID, noteID int64) error
}
