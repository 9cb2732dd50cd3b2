// Package dto provides data transfer objects for note HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"

	noteDomain "github.com/allisson/notes/internal/note/domain"
	customValidation "github.com/allisson/notes/internal/validation"
)

// MaxTagLength is the longest accepted tag title.
const MaxTagLength = 255

// CreateNoteRequest contains the fields of a new note.
type CreateNoteRequest struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
}

// Validate checks if the create request is valid.
func (r *CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Tags,
			validation.Each(validation.Length(0, MaxTagLength)),
		),
	)
}

// ToDomain converts the request into use case input.
func (r *CreateNoteRequest) ToDomain() *noteDomain.CreateNoteInput {
	return &noteDomain.CreateNoteInput{
		Title: r.Title,
		Text:  r.Text,
		Tags:  r.Tags,
	}
}

// EditNoteRequest contains the replacement text of a note.
type EditNoteRequest struct {
	Text *string `json:"text"`
}

// Validate checks that the text field is present. An empty string is allowed.
func (r *EditNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.NotNil),
	)
}

// EditTagsRequest is the replacement tag list, sent as a bare JSON array.
type EditTagsRequest []string

// Validate checks every tag title length.
func (r EditTagsRequest) Validate() error {
	return validation.Validate([]string(r), validation.Each(validation.Length(0, MaxTagLength)))
}
