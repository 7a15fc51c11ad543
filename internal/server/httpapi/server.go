package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter assembles the HTTP API with logging, recovery and auth
// middleware. ready is an optional storage liveness probe for /healthz.
func NewRouter(h *Handlers, auth *Authenticator, log *zap.Logger, ready func(context.Context) error) *mux.Router {
	r := mux.NewRouter()
	r.Use(Recover(log), RequestLogger(log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if ready != nil {
			if err := ready(req.Context()); err != nil {
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware)
	api.HandleFunc("/createPuzzleTemplate", h.CreatePuzzleTemplate).Methods(http.MethodPost)
	api.HandleFunc("/updatePuzzleTemplate", h.UpdatePuzzleTemplate).Methods(http.MethodPost)
	api.HandleFunc("/listPuzzleTemplates", h.ListPuzzleTemplates).Methods(http.MethodPost)
	api.HandleFunc("/startPuzzleSession", h.StartPuzzleSession).Methods(http.MethodPost)
	api.HandleFunc("/completePuzzleSession", h.CompletePuzzleSession).Methods(http.MethodPost)
	api.HandleFunc("/recordPuzzleAttempt", h.RecordPuzzleAttempt).Methods(http.MethodPost)
	api.HandleFunc("/listPuzzleSessions", h.ListPuzzleSessions).Methods(http.MethodPost)

	// Unknown API paths get a JSON error, not a bare 404 page.
	r.PathPrefix("/api/").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, codeNotFound, "unknown action")
	})

	return r
}
