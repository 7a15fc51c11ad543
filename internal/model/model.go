// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// SessionStatus is the lifecycle state of a puzzle session.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in-progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Valid reports whether s is one of the known statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

// Terminal reports whether s ends a session.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// PuzzleTemplate is a reusable puzzle definition. A nil UserID marks a
// system/global template; IsSystem templates are readable by everyone and
// immutable through user actions. DataJSON and SolutionJSON are opaque
// serialized payloads the server never parses.
type PuzzleTemplate struct {
	ID           string
	UserID       *uuid.UUID // nil for system/global templates
	Name         string
	PuzzleType   string
	Difficulty   string
	Description  string
	DataJSON     string
	SolutionJSON string
	IsSystem     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time // refreshed on every mutation
}

// TemplateDraft carries caller-provided fields for a new template.
type TemplateDraft struct {
	Name         string
	PuzzleType   string
	Difficulty   string
	Description  string
	DataJSON     string
	SolutionJSON string
}

// TemplatePatch carries an update to an existing template. Empty strings
// mean "leave unchanged": a field cannot be cleared through an update.
type TemplatePatch struct {
	ID           string
	Name         string
	PuzzleType   string
	Difficulty   string
	Description  string
	DataJSON     string
	SolutionJSON string
}

// PuzzleSession is one play-through of a template by a user.
type PuzzleSession struct {
	ID               string
	PuzzleTemplateID string
	UserID           uuid.UUID
	Status           SessionStatus
	Score            *int
	TimeTakenSeconds *int
	StartedAt        time.Time
	CompletedAt      *time.Time // nil until the session reaches a terminal status
}

// SessionResult carries the outcome reported when a session finishes.
type SessionResult struct {
	SessionID        string
	Status           SessionStatus // completed or abandoned
	Score            *int
	TimeTakenSeconds *int
}

// PuzzleAttempt is one recorded guess within a session. Attempts are
// immutable once created.
type PuzzleAttempt struct {
	ID              string
	SessionID       string
	AttemptIndex    int // caller-supplied; uniqueness and ordering are not enforced
	AttemptDataJSON string
	IsCorrect       bool
	CreatedAt       time.Time
}

// AttemptDraft carries caller-provided fields for a new attempt.
type AttemptDraft struct {
	SessionID       string
	AttemptIndex    int
	AttemptDataJSON string
	IsCorrect       bool
}

// SessionFilter narrows session listings; zero values mean "no filter".
type SessionFilter struct {
	PuzzleTemplateID string
	Status           SessionStatus
}

// Page bounds a paginated listing with a 1-based page number.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
