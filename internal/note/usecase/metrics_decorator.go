package usecase

import (
	"context"
	"time"

	"github.com/allisson/notes/internal/metrics"
	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// noteUseCaseWithMetrics decorates NoteUseCase with metrics instrumentation.
type noteUseCaseWithMetrics struct {
	next    NoteUseCase
	metrics metrics.BusinessMetrics
}

// NewNoteUseCaseWithMetrics wraps a NoteUseCase with metrics recording.
func NewNoteUseCaseWithMetrics(useCase NoteUseCase, m metrics.BusinessMetrics) NoteUseCase {
	return &noteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (n *noteUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	n.metrics.RecordOperation(ctx, "notes", operation, status)
	n.metrics.RecordDuration(ctx, "notes", operation, time.Since(start), status)
}

// List records metrics for note listing.
func (n *noteUseCaseWithMetrics) List(
	ctx context.Context,
	ownerID int64,
	offset, limit int,
) ([]*noteDomain.Note, error) {
	start := time.Now()
	notes, err := n.next.List(ctx, ownerID, offset, limit)
	n.record(ctx, "note_list", start, err)
	return notes, err
}

// Get records metrics for note retrieval.
func (n *noteUseCaseWithMetrics) Get(ctx context.Context, ownerID, noteID int64) (*noteDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Get(ctx, ownerID, noteID)
	n.record(ctx, "note_get", start, err)
	return note, err
}

// Create records metrics for note creation.
func (n *noteUseCaseWithMetrics) Create(
	ctx context.Context,
	ownerID int64,
	input *noteDomain.CreateNoteInput,
) (*noteDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Create(ctx, ownerID, input)
	n.record(ctx, "note_create", start, err)
	return note, err
}

// EditText records metrics for text edits.
func (n *noteUseCaseWithMetrics) EditText(
	ctx context.Context,
	ownerID, noteID int64,
	text string,
) (*noteDomain.Note, error) {
	start := time.Now()
	note, err := n.next.EditText(ctx, ownerID, noteID, text)
	n.record(ctx, "note_edit", start, err)
	return note, err
}

// EditTags records metrics for tag edits.
func (n *noteUseCaseWithMetrics) EditTags(
	ctx context.Context,
	ownerID, noteID int64,
	tags []string,
) (*noteDomain.Note, error) {
	start := time.Now()
	note, err := n.next.EditTags(ctx, ownerID, noteID, tags)
	n.record(ctx, "note_edit_tags", start, err)
	return note, err
}

// Delete records metrics for note deletion.
func (n *noteUseCaseWithMetrics) Delete(ctx context.Context, ownerID, noteID int64) error {
	start := time.Now()
	err := n.next.Delete(ctx, ownerID, noteID)
	n.record(ctx, "note_delete", start, err)
	return err
}
