// Package testing provides shared test utilities for note module tests.
package testing

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// InMemoryNoteRepository is a goroutine-safe NoteRepository backed by a map.
type InMemoryNoteRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*noteDomain.Note
}

// NewInMemoryNoteRepository creates an empty repository.
func NewInMemoryNoteRepository() *InMemoryNoteRepository {
	return &InMemoryNoteRepository{byID: make(map[int64]*noteDomain.Note)}
}

func clone(note *noteDomain.Note) *noteDomain.Note {
	c := *note
	c.Tags = slices.Clone(note.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c
}

// Create stores a copy of note and assigns its ID.
func (r *InMemoryNoteRepository) Create(_ context.Context, note *noteDomain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	note.ID = r.nextID
	r.byID[note.ID] = clone(note)
	return nil
}

// Get returns a copy of the stored note.
func (r *InMemoryNoteRepository) Get(_ context.Context, noteID int64) (*noteDomain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[noteID]
	if !ok {
		return nil, noteDomain.ErrNoteNotFound
	}
	return clone(note), nil
}

// ListByUser returns copies of the user's notes, newest first.
func (r *InMemoryNoteRepository) ListByUser(
	_ context.Context,
	userID int64,
	offset, limit int,
) ([]*noteDomain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]*noteDomain.Note, 0)
	for _, note := range r.byID {
		if note.UserID == userID {
			notes = append(notes, clone(note))
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].ID > notes[j].ID
	})

	if offset >= len(notes) {
		return []*noteDomain.Note{}, nil
	}
	end := min(offset+limit, len(notes))
	return notes[offset:end], nil
}

// UpdateText replaces the stored text.
func (r *InMemoryNoteRepository) UpdateText(
	_ context.Context,
	noteID int64,
	text string,
	updatedAt time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[noteID]
	if !ok {
		return noteDomain.ErrNoteNotFound
	}
	note.Text = text
	note.UpdatedAt = updatedAt
	return nil
}

// ReplaceTags replaces the stored tags.
func (r *InMemoryNoteRepository) ReplaceTags(
	_ context.Context,
	noteID int64,
	tags []string,
	updatedAt time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.byID[noteID]
	if !ok {
		return noteDomain.ErrNoteNotFound
	}
	note.Tags = slices.Clone(tags)
	note.UpdatedAt = updatedAt
	return nil
}

// Delete removes the note.
func (r *InMemoryNoteRepository) Delete(_ context.Context, noteID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[noteID]; !ok {
		return noteDomain.ErrNoteNotFound
	}
	delete(r.byID, noteID)
	return nil
}

// Snapshot returns copies of every stored note keyed by ID.
func (r *InMemoryNoteRepository) Snapshot() map[int64]noteDomain.Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[int64]noteDomain.Note, len(r.byID))
	for id, note := range r.byID {
		out[id] = *clone(note)
	}
	return out
}
