package dto

import (
	"time"

	noteDomain "github.com/allisson/notes/internal/note/domain"
)

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapNoteToResponse converts a domain note to an API response.
func MapNoteToResponse(note *noteDomain.Note) NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Text:      note.Text,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ListNotesResponse represents a page of notes.
type ListNotesResponse struct {
	Data []NoteResponse `json:"data"`
}

// MapNotesToListResponse converts domain notes to a list response.
func MapNotesToListResponse(notes []*noteDomain.Note) ListNotesResponse {
	data := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		data = append(data, MapNoteToResponse(note))
	}
	return ListNotesResponse{Data: data}
}
