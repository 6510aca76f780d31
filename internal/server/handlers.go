package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/summary"
	"github.com/meltforce/fittrack/internal/training"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleCreateTraining(w http.ResponseWriter, r *http.Request) {
	var req models.TrainingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	sum, err := s.summaries.Compute(r.Context(), req)
	if err != nil {
		if kind := training.ErrorKind(err); kind != "" {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), Kind: kind})
			return
		}
		// JSON has no encoding for Inf/NaN, which zero durations produce
		if errors.Is(err, summary.ErrNonFinite) {
			writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error(), Kind: summary.ReasonNonFinite})
			return
		}
		s.log.Error("compute summary", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.summaries.WorkoutTypes(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
