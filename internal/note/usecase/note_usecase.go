package usecase

import (
	"context"
	"time"

	"github.com/allisson/notes/internal/database"
	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// noteUseCase implements NoteUseCase.
type noteUseCase struct {
	txManager database.TxManager
	noteRepo  NoteRepository
}

// List returns the owner's notes, newest first.
func (n *noteUseCase) List(
	ctx context.Context,
	ownerID int64,
	offset, limit int,
) ([]*noteDomain.Note, error) {
	return n.noteRepo.ListByUser(ctx, ownerID, offset, limit)
}

// Get returns a note owned by ownerID.
func (n *noteUseCase) Get(ctx context.Context, ownerID, noteID int64) (*noteDomain.Note, error) {
	var note *noteDomain.Note
	err := n.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		note, err = n.getOwned(ctx, ownerID, noteID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Create stores the note and its tags in one transaction.
func (n *noteUseCase) Create(
	ctx context.Context,
	ownerID int64,
	input *noteDomain.CreateNoteInput,
) (*noteDomain.Note, error) {
	now := time.Now().UTC()
	note := &noteDomain.Note{
		UserID:    ownerID,
		Title:     input.Title,
		Text:      input.Text,
		Tags:      noteDomain.NormalizeTags(input.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := n.txManager.WithTx(ctx, func(ctx context.Context) error {
		return n.noteRepo.Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// EditText checks ownership and replaces the text in one transaction.
func (n *noteUseCase) EditText(
	ctx context.Context,
	ownerID, noteID int64,
	text string,
) (*noteDomain.Note, error) {
	var note *noteDomain.Note
	err := n.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		note, err = n.getOwned(ctx, ownerID, noteID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := n.noteRepo.UpdateText(ctx, noteID, text, now); err != nil {
			return err
		}
		note.Text = text
		note.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// EditTags checks ownership and replaces the tag set in one transaction.
func (n *noteUseCase) EditTags(
	ctx context.Context,
	ownerID, noteID int64,
	tags []string,
) (*noteDomain.Note, error) {
	tags = noteDomain.NormalizeTags(tags)

	var note *noteDomain.Note
	err := n.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		note, err = n.getOwned(ctx, ownerID, noteID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := n.noteRepo.ReplaceTags(ctx, noteID, tags, now); err != nil {
			return err
		}
		note.Tags = tags
		note.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Delete checks ownership and removes the note in one transaction.
func (n *noteUseCase) Delete(ctx context.Context, ownerID, noteID int64) error {
	return n.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := n.getOwned(ctx, ownerID, noteID); err != nil {
			return err
		}
		return n.noteRepo.Delete(ctx, noteID)
	})
}

// getOwned loads a note and rejects it when ownerID is not its owner.
func (n *noteUseCase) getOwned(ctx context.Context, ownerID, noteID int64) (*noteDomain.Note, error) {
	note, err := n.noteRepo.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !note.OwnedBy(ownerID) {
		return nil, noteDomain.ErrNotOwner
	}
	return note, nil
}

// NewNoteUseCase creates a new NoteUseCase.
func NewNoteUseCase(txManager database.TxManager, noteRepo NoteRepository) NoteUseCase {
	return &noteUseCase{
		txManager: txManager,
		noteRepo:  noteRepo,
	}
}
