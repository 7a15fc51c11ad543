// Package httpapi exposes the puzzle tracker actions as an HTTP JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/avolkovs/puzzletrack/internal/convert"
	"github.com/avolkovs/puzzletrack/internal/model"
	"github.com/avolkovs/puzzletrack/internal/pagination"
	"github.com/avolkovs/puzzletrack/internal/service"
)

var sessionPageSize = pagination.SizeConfig{Default: 20, Max: 100}

// Handlers wires services into the HTTP action endpoints.
type Handlers struct {
	templates service.TemplateService
	sessions  service.SessionService
	log       *zap.Logger
}

// NewHandlers constructs Handlers with injected services.
func NewHandlers(templates service.TemplateService, sessions service.SessionService, log *zap.Logger) *Handlers {
	return &Handlers{templates: templates, sessions: sessions, log: log}
}

// callerID resolves the acting user. This gate runs identically at the
// start of every action, before validation or any storage call.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := UserIDFromCtx(r.Context())
	if !ok || id == uuid.Nil {
		writeError(w, codeUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return id, true
}

// decodeInput parses the action input object. An empty body reads as the
// zero input.
func decodeInput(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, codeInvalidArgument, "malformed input")
		return false
	}
	return true
}

// CreatePuzzleTemplate inserts a user-owned template and returns its id.
func (h *Handlers) CreatePuzzleTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req struct {
		Name         string `json:"name"`
		PuzzleType   string `json:"puzzleType"`
		Difficulty   string `json:"difficulty"`
		Description  string `json:"description"`
		DataJSON     string `json:"dataJson"`
		SolutionJSON string `json:"solutionJson"`
	}
	if !decodeInput(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, codeInvalidArgument, "name is required")
		return
	}
	id, err := h.templates.Create(r.Context(), userID, model.TemplateDraft{
		Name:         req.Name,
		PuzzleType:   req.PuzzleType,
		Difficulty:   req.Difficulty,
		Description:  req.Description,
		DataJSON:     req.DataJSON,
		SolutionJSON: req.SolutionJSON,
	})
	if err != nil {
		writeServiceError(w, h.log, "createPuzzleTemplate", err)
		return
	}
	writeData(w, struct {
		ID string `json:"id"`
	}{ID: id})
}

// UpdatePuzzleTemplate applies the provided fields to an owned template.
func (h *Handlers) UpdatePuzzleTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		PuzzleType   string `json:"puzzleType"`
		Difficulty   string `json:"difficulty"`
		Description  string `json:"description"`
		DataJSON     string `json:"dataJson"`
		SolutionJSON string `json:"solutionJson"`
	}
	if !decodeInput(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, codeInvalidArgument, "id is required")
		return
	}
	err := h.templates.Update(r.Context(), userID, model.TemplatePatch{
		ID:           req.ID,
		Name:         req.Name,
		PuzzleType:   req.PuzzleType,
		Difficulty:   req.Difficulty,
		Description:  req.Description,
		DataJSON:     req.DataJSON,
		SolutionJSON: req.SolutionJSON,
	})
	if err != nil {
		writeServiceError(w, h.log, "updatePuzzleTemplate", err)
		return
	}
	writeData(w, struct {
		ID string `json:"id"`
	}{ID: req.ID})
}

// ListPuzzleTemplates returns the caller's templates, including system
// ones unless includeSystem is explicitly false.
func (h *Handlers) ListPuzzleTemplates(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req struct {
		IncludeSystem *bool `json:"includeSystem"`
	}
	if !decodeInput(w, r, &req) {
		return
	}
	includeSystem := req.IncludeSystem == nil || *req.IncludeSystem

	items, err := h.templates.List(r.Context(), userID, includeSystem)
	if err != nil {
		writeServiceError(w, h.log, "listPuzzleTemplates", err)
		return
	}
	wire := convert.ToTemplateJSONs(items)
	writeData(w, struct {
		Items []convert.TemplateJSON `json:"items"`
		Total int                    `json:"total"` // count of returned items, not a full-set total
	}{Items: wire, Total: len(wire)})
}

// StartPuzzleSession creates an in-progress session against a visible template.
func (h *Handlers) StartPuzzleSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req struct {
		PuzzleTemplateID string `json:"puzzleTemplateId"`
	}
	if !decodeInput(w, r, &req) {
		return
	}
	if req.PuzzleTemplateID == "" {
		writeError(w, codeInvalidArgument, "puzzleTemplateId is required")
		return
	}
	sess, err := h.sessions.Start(r.Context(), userID, req.PuzzleTemplateID)
	if err != nil {
		writeServiceError(w, h.log, "startPuzzleSession", err)
		return
	}
	writeData(w, struct {
		ID               string `json:"id"`
		PuzzleTemplateID string `json:"puzzleTemplateId"`
	}{ID: sess.ID, PuzzleTemplateID: sess.PuzzleTemplateID})
}

// CompletePuzzleSession writes a terminal status for an owned session.
func (h *Handlers) CompletePuzzleSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req struct {
		SessionID        string `json:"sessionId"`
		Status           string `json:"status"`
		Score            *int   `json:"score"`
		TimeTakenSeconds *int   `json:"timeTakenSeconds"`
	}
	if !decodeInput(w, r, &req) {
		return
	}
	if req.SessionID == "" {
		writeError(w, codeInvalidArgument, "sessionId is required")
		return
	}
	status := model.SessionStatus(req.Status)
	if req.Status == "" {
		status = model.StatusCompleted
	}
	if !status.Terminal() {
		writeError(w, codeInvalidArgument, "status must be completed or abandoned")
		return
	}
	if req.TimeTakenSeconds != nil && *req.TimeTakenSeconds <= 0 {
		writeError(w, codeInvalidArgument, "timeTakenSeconds must be positive")
		return
	}
	err := h.sessions.Complete(r.Context(), userID, model.SessionResult{
		SessionID:        req.SessionID,
		Status:           status,
		Score:            req.Score,
		TimeTakenSeconds: req.TimeTakenSeconds,
	})
	if err != nil {
		writeServiceError(w, h.log, "completePuzzleSession", err)
		return
	}
	writeData(w, struct {
		ID string `json:"id"`
	}{ID: req.SessionID})
}

// RecordPuzzleAttempt stores one guess against an owned session.
func (h *Handlers) RecordPuzzleAttempt(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req struct {
		SessionID       string `json:"sessionId"`
		AttemptIndex    int    `json:"attemptIndex"`
		AttemptDataJSON string `json:"attemptDataJson"`
		IsCorrect       bool   `json:"isCorrect"`
	}
	if !decodeInput(w, r, &req) {
		return
	}
	if req.SessionID == "" {
		writeError(w, codeInvalidArgument, "sessionId is required")
		return
	}
	if req.AttemptIndex <= 0 {
		writeError(w, codeInvalidArgument, "attemptIndex must be positive")
		return
	}
	id, err := h.sessions.RecordAttempt(r.Context(), userID, model.AttemptDraft{
		SessionID:       req.SessionID,
		AttemptIndex:    req.AttemptIndex,
		AttemptDataJSON: req.AttemptDataJSON,
		IsCorrect:       req.IsCorrect,
	})
	if err != nil {
		writeServiceError(w, h.log, "recordPuzzleAttempt", err)
		return
	}
	writeData(w, struct {
		ID string `json:"id"`
	}{ID: id})
}

// ListPuzzleSessions pages through the caller's sessions.
func (h *Handlers) ListPuzzleSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req struct {
		PuzzleTemplateID string `json:"puzzleTemplateId"`
		Status           string `json:"status"`
		Page             int    `json:"page"`
		PageSize         int    `json:"pageSize"`
	}
	if !decodeInput(w, r, &req) {
		return
	}
	if req.Status != "" && !model.SessionStatus(req.Status).Valid() {
		writeError(w, codeInvalidArgument, "unknown status")
		return
	}
	page := model.Page{
		Number: pagination.DefaultPage(req.Page),
		Size:   pagination.DefaultSize(req.PageSize, sessionPageSize),
	}
	if !pagination.ValidPage(page.Number) {
		writeError(w, codeInvalidArgument, "page must be positive")
		return
	}
	if !pagination.ValidSize(page.Size, sessionPageSize) {
		writeError(w, codeInvalidArgument, "pageSize must be between 1 and 100")
		return
	}
	items, err := h.sessions.List(r.Context(), userID, model.SessionFilter{
		PuzzleTemplateID: req.PuzzleTemplateID,
		Status:           model.SessionStatus(req.Status),
	}, page)
	if err != nil {
		writeServiceError(w, h.log, "listPuzzleSessions", err)
		return
	}
	wire := convert.ToSessionJSONs(items)
	writeData(w, struct {
		Items []convert.SessionJSON `json:"items"`
		Total int                   `json:"total"` // count of returned items, not a full-set total
		Page  int                   `json:"page"`
	}{Items: wire, Total: len(wire), Page: page.Number})
}
