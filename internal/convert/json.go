// Package convert maps domain entities onto their wire representations.
package convert

import (
	"time"

	"github.com/avolkovs/puzzletrack/internal/model"
)

// TemplateJSON is the wire form of a puzzle template.
type TemplateJSON struct {
	ID           string    `json:"id"`
	UserID       *string   `json:"userId,omitempty"`
	Name         string    `json:"name"`
	PuzzleType   string    `json:"puzzleType,omitempty"`
	Difficulty   string    `json:"difficulty,omitempty"`
	Description  string    `json:"description,omitempty"`
	DataJSON     string    `json:"dataJson,omitempty"`
	SolutionJSON string    `json:"solutionJson,omitempty"`
	IsSystem     bool      `json:"isSystem"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SessionJSON is the wire form of a puzzle session.
type SessionJSON struct {
	ID               string     `json:"id"`
	PuzzleTemplateID string     `json:"puzzleTemplateId"`
	UserID           string     `json:"userId"`
	Status           string     `json:"status"`
	Score            *int       `json:"score,omitempty"`
	TimeTakenSeconds *int       `json:"timeTakenSeconds,omitempty"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// ToTemplateJSON converts a domain template to its wire form.
func ToTemplateJSON(t model.PuzzleTemplate) TemplateJSON {
	out := TemplateJSON{
		ID:           t.ID,
		Name:         t.Name,
		PuzzleType:   t.PuzzleType,
		Difficulty:   t.Difficulty,
		Description:  t.Description,
		DataJSON:     t.DataJSON,
		SolutionJSON: t.SolutionJSON,
		IsSystem:     t.IsSystem,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.UserID != nil {
		s := t.UserID.String()
		out.UserID = &s
	}
	return out
}

// ToTemplateJSONs converts a slice, never returning nil so that list
// payloads serialize as [] rather than null.
func ToTemplateJSONs(ts []model.PuzzleTemplate) []TemplateJSON {
	out := make([]TemplateJSON, 0, len(ts))
	for _, t := range ts {
		out = append(out, ToTemplateJSON(t))
	}
	return out
}

// ToSessionJSON converts a domain session to its wire form.
func ToSessionJSON(s model.PuzzleSession) SessionJSON {
	return SessionJSON{
		ID:               s.ID,
		PuzzleTemplateID: s.PuzzleTemplateID,
		UserID:           s.UserID.String(),
		Status:           string(s.Status),
		Score:            s.Score,
		TimeTakenSeconds: s.TimeTakenSeconds,
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
	}
}

// ToSessionJSONs converts a slice, never returning nil.
func ToSessionJSONs(ss []model.PuzzleSession) []SessionJSON {
	out := make([]SessionJSON, 0, len(ss))
	for _, s := range ss {
		out = append(out, ToSessionJSON(s))
	}
	return out
}
