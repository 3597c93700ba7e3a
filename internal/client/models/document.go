// Package models defines client-side data models used by the dockeep console.
package models

import "time"

// Document is the canonical client-side projection of a backend document.
// The API layer normalizes all known payload aliases into this shape once,
// so business logic never deals with loosely-shaped server fields.
type Document struct {
	// ID is the backend identifier, kept as a string regardless of the
	// wire representation (string or number).
	ID string

	// Title is the display title; may equal the file name.
	Title string

	// Path locates the document within the virtual folder hierarchy,
	// slash-delimited. Empty means unlocated: such documents are excluded
	// from tree materialization.
	Path string

	// Size is the byte count; 0 when the backend omits it.
	Size int64

	// Department, Nature, Site and Perimeter are classification fields.
	Department string
	Nature     string
	Site       string
	Perimeter  string

	Description string

	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// DisplayName returns the last path segment, or the title when the
// document is unlocated.
func (d Document) DisplayName() string {
	if d.Path == "" {
		return d.Title
	}
	for i := len(d.Path) - 1; i >= 0; i-- {
		if d.Path[i] == '/' {
			return d.Path[i+1:]
		}
	}
	return d.Path
}

// User is the authenticated account profile returned at login.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
