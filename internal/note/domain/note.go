// Package domain defines notes, the resources owned by identities. Every note
// belongs to exactly one owner and carries a set of tag titles.
package domain

import (
	"strings"
	"time"

	"github.com/allisson/notes/internal/errors"
)

// Note is a titled text owned by an identity.
type Note struct {
	// ID is the note identifier.
	ID int64
	// UserID is the owning identity.
	UserID int64
	Title  string
	Text   string
	// Tags are tag titles, deduplicated, in the order they were given.
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether identityID owns the note.
func (n *Note) OwnedBy(identityID int64) bool {
	return n.UserID == identityID
}

// CreateNoteInput contains the fields for a new note.
type CreateNoteInput struct {
	Title string
	Text  string
	Tags  []string
}

// NormalizeTags trims tag titles, drops empty ones and removes duplicates while
// keeping the first occurrence order. The result is never nil.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Note errors.
var (
	// ErrNoteNotFound indicates the note does not exist.
	ErrNoteNotFound = errors.Wrap(errors.ErrNotFound, "note not found")

	// ErrNotOwner indicates the caller is authenticated but does not own the note.
	ErrNotOwner = errors.Wrap(errors.ErrForbidden, "not owner")
)
