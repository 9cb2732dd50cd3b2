package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	noteDomain "github.com/allisson/notes/internal/note/domain"
	"github.com/allisson/notes/internal/note/usecase"
	usecaseMocks "github.com/allisson/notes/internal/note/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "notes", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "notes", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNoteUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	note := &noteDomain.Note{ID: 5, UserID: 1}

	tests := []struct {
		name      string
		operation string
		status    string
		setup     func(next *usecaseMocks.MockNoteUseCase)
		call      func(uc usecase.NoteUseCase) error
	}{
		{
			name:      "List success",
			operation: "note_list",
			status:    "success",
			setup: func(next *usecaseMocks.MockNoteUseCase) {
				next.On("List", ctx, int64(1), 0, 50).Return([]*noteDomain.Note{note}, nil).Once()
			},
			call: func(uc usecase.NoteUseCase) error {
				_, err := uc.List(ctx, 1, 0, 50)
				return err
			},
		},
		{
			name:      "Get error",
			operation: "note_get",
			status:    "error",
			setup: func(next *usecaseMocks.MockNoteUseCase) {
				next.On("Get", ctx, int64(1), int64(5)).Return(nil, noteDomain.ErrNotOwner).Once()
			},
			call: func(uc usecase.NoteUseCase) error {
				_, err := uc.Get(ctx, 1, 5)
				return err
			},
		},
		{
			name:      "Create success",
			operation: "note_create",
			status:    "success",
			setup: func(next *usecaseMocks.MockNoteUseCase) {
				next.On("Create", ctx, int64(1), mock.Anything).Return(note, nil).Once()
			},
			call: func(uc usecase.NoteUseCase) error {
				_, err := uc.Create(ctx, 1, &noteDomain.CreateNoteInput{Title: "t"})
				return err
			},
		},
		{
			name:      "EditText success",
			operation: "note_edit",
			status:    "success",
			setup: func(next *usecaseMocks.MockNoteUseCase) {
				next.On("EditText", ctx, int64(1), int64(5), "x").Return(note, nil).Once()
			},
			call: func(uc usecase.NoteUseCase) error {
				_, err := uc.EditText(ctx, 1, 5, "x")
				return err
			},
		},
		{
			name:      "EditTags error",
			operation: "note_edit_tags",
			status:    "error",
			setup: func(next *usecaseMocks.MockNoteUseCase) {
				next.On("EditTags", ctx, int64(1), int64(5), []string{"a"}).
					Return(nil, errors.New("db down")).
					Once()
			},
			call: func(uc usecase.NoteUseCase) error {
				_, err := uc.EditTags(ctx, 1, 5, []string{"a"})
				return err
			},
		},
		{
			name:      "Delete success",
			operation: "note_delete",
			status:    "success",
			setup: func(next *usecaseMocks.MockNoteUseCase) {
				next.On("Delete", ctx, int64(1), int64(5)).Return(nil).Once()
			},
			call: func(uc usecase.NoteUseCase) error {
				return uc.Delete(ctx, 1, 5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNext := &usecaseMocks.MockNoteUseCase{}
			mockMetrics := &mockBusinessMetrics{}
			uc := usecase.NewNoteUseCaseWithMetrics(mockNext, mockMetrics)

			tt.setup(mockNext)
			expectMetrics(mockMetrics, ctx, tt.operation, tt.status)

			err := tt.call(uc)
			if tt.status == "success" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			mockNext.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}
