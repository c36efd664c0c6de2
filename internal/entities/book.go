package entities

import (
	"strings"
	"time"
)

// Book is a single tracked book. Optional fields are pointers so that the
// stored encoding keeps "never set" distinct from "set to empty".
type Book struct {
	Title       string  `json:"title"`
	Series      *string `json:"series,omitempty"`
	Author      string  `json:"author"`
	ReleaseDate string  `json:"releaseDate"`
	Rating      *int    `json:"rating,omitempty"`
	Review      *string `json:"review,omitempty"`
	AddedDate   string  `json:"addedDate"`
}

// NewBook builds a Book with AddedDate stamped at creation time.
func NewBook(title, author, releaseDate string) Book {
	return Book{
		Title:       title,
		Author:      author,
		ReleaseDate: releaseDate,
		AddedDate:   time.Now().UTC().Format(time.RFC3339),
	}
}

// HasTitle reports whether the title is non-empty after trimming.
func (b Book) HasTitle() bool {
	return strings.TrimSpace(b.Title) != ""
}
