// Package mocks provides mock implementations of the note use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// MockNoteUseCase is a mock implementation of NoteUseCase for testing.
type MockNoteUseCase struct {
	mock.Mock
}

// List mocks the List method of NoteUseCase.
func (m *MockNoteUseCase) List(
	ctx context.Context,
	ownerID int64,
	offset, limit int,
) ([]*noteDomain.Note, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*noteDomain.Note), args.Error(1)
}

// Get mocks the Get method of NoteUseCase.
func (m *MockNoteUseCase) Get(ctx context.Context, ownerID, noteID int64) (*noteDomain.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteDomain.Note), args.Error(1)
}

// Create mocks the Create method of NoteUseCase.
func (m *MockNoteUseCase) Create(
	ctx context.Context,
	ownerID int64,
	input *noteDomain.CreateNoteInput,
) (*noteDomain.Note, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteDomain.Note), args.Error(1)
}

// EditText mocks the EditText method of NoteUseCase.
func (m *MockNoteUseCase) EditText(
	ctx context.Context,
	ownerID, noteID int64,
	text string,
) (*noteDomain.Note, error) {
	args := m.Called(ctx, ownerID, noteID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteDomain.Note), args.Error(1)
}

// EditTags mocks the EditTags method of NoteUseCase.
func (m *MockNoteUseCase) EditTags(
	ctx context.Context,
	ownerID, noteID int64,
	tags []string,
) (*noteDomain.Note, error) {
	args := m.Called(ctx, ownerID, noteID, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteDomain.Note), args.Error(1)
}

// Delete mocks the Delete method of NoteUseCase.
func (m *MockNoteUseCase) Delete(ctx context.Context, ownerID, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}
