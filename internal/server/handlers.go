package server

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	tcerrors "github.com/teamcut/teamcut/pkg/errors"
	"github.com/teamcut/teamcut/pkg/graph"
	"github.com/teamcut/teamcut/pkg/partition"
	"github.com/teamcut/teamcut/pkg/store"
)

// solveResponse is the API representation of a solved instance.
type solveResponse struct {
	ID          string  `json:"id"`
	Instance    string  `json:"instance"`
	Score       float64 `json:"score"`
	Conflict    float64 `json:"conflict"`
	TeamPenalty float64 `json:"team_penalty"`
	Balance     float64 `json:"balance"`
	TeamCount   int     `json:"team_count"`
	Teams       []int   `json:"teams"`
	Seed        int64   `json:"seed"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSolve accepts a node-link instance, solves it, persists the result,
// and returns the assignment with its score components.
//
// Query parameters:
//   - seed: int64 random seed (defaults to the current time)
//   - name: instance name recorded with the result (defaults to "adhoc")
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, graph.InputSizeLimit)
	g, err := graph.ReadInstance(body)
	if err != nil {
		writeError(w, err)
		return
	}

	seed := time.Now().UnixNano()
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, tcerrors.New(tcerrors.ErrCodeInvalidInput, "invalid seed %q", v))
			return
		}
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "adhoc"
	}
	if err := tcerrors.ValidateInstanceName(name); err != nil {
		writeError(w, err)
		return
	}

	solver := partition.New(s.config, rand.New(rand.NewSource(seed)), s.logger)
	best, err := solver.Solve(r.Context(), g)
	if err != nil {
		writeError(w, err)
		return
	}

	rec := store.NewRecord(name, best, partition.ScoreParts(g, best.Teams), seed)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.logger.Error("persist result", "err", err)
		// The solve succeeded; still return it.
	}

	writeJSON(w, http.StatusOK, recordToResponse(rec))
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]solveResponse, len(records))
	for i, rec := range records {
		out[i] = recordToResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToResponse(rec))
}

func (s *Server) handleDeleteResult(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func recordToResponse(rec store.Record) solveResponse {
	return solveResponse{
		ID:          rec.ID,
		Instance:    rec.Instance,
		Score:       rec.Score,
		Conflict:    rec.Conflict,
		TeamPenalty: rec.TeamPenalty,
		Balance:     rec.Balance,
		TeamCount:   rec.TeamCount,
		Teams:       rec.Teams,
		Seed:        rec.Seed,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := tcerrors.GetCode(err)

	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
		code = tcerrors.ErrCodeResultNotFound
	case code == tcerrors.ErrCodeInvalidGraph,
		code == tcerrors.ErrCodeInvalidAssignment,
		code == tcerrors.ErrCodeInvalidInput,
		code == tcerrors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case code == tcerrors.ErrCodeFileTooBig:
		status = http.StatusRequestEntityTooLarge
	}

	if code == "" {
		code = tcerrors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: tcerrors.UserMessage(err),
	})
}
