package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(apiKey string) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(summary.NewService(log), apiKey, log)
}

func postTraining(t *testing.T, s *Server, body, apiKey string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trainings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestCreateTraining verifies a valid sensor package yields its summary line.
func TestCreateTraining(t *testing.T) {
	s := newTestServer("k")
	rec := postTraining(t, s, `{"workout_type":"WLK","data":[9000,1,75,180]}`, "k")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sum models.Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sum))
	assert.Equal(t, "WLK", sum.WorkoutType)
	assert.Equal(t, "SportsWalking", sum.TrainingType)
	assert.InDelta(t, 157.5, sum.Calories, 1e-9)
	assert.Equal(t, "Workout type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories burned: 157.500.", sum.Message)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

// TestCreateTrainingRejected verifies factory errors map to 400 with a kind.
func TestCreateTrainingRejected(t *testing.T) {
	s := newTestServer("")
	tests := []struct {
		name string
		body string
		kind string
	}{
		{"unknown code", `{"workout_type":"XYZ","data":[1,2,3]}`, "invalid_workout_type"},
		{"too short", `{"workout_type":"SWM","data":[720,1,80,25]}`, "arity_mismatch"},
		{"too long", `{"workout_type":"RUN","data":[15000,1,75,1]}`, "arity_mismatch"},
		{"malformed", `{"workout_type":`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postTraining(t, s, tt.body, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp models.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.kind, resp.Kind)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

// TestCreateTrainingZeroDuration verifies non-finite results are reported
// instead of producing an unencodable body.
func TestCreateTrainingZeroDuration(t *testing.T) {
	s := newTestServer("")
	rec := postTraining(t, s, `{"workout_type":"RUN","data":[15000,0,75]}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "non_finite", resp.Kind)
	assert.Contains(t, resp.Error, "Inf")
}

func TestCreateTrainingRequiresAPIKey(t *testing.T) {
	s := newTestServer("secret")
	body := `{"workout_type":"RUN","data":[15000,1,75]}`

	assert.Equal(t, http.StatusUnauthorized, postTraining(t, s, body, "").Code)
	assert.Equal(t, http.StatusForbidden, postTraining(t, s, body, "wrong").Code)
	assert.Equal(t, http.StatusOK, postTraining(t, s, body, "secret").Code)
}

func TestWorkoutTypes(t *testing.T) {
	s := newTestServer("secret")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workout-types", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var types []models.WorkoutType
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&types))
	require.Len(t, types, 3)
	assert.Equal(t, "SWM", types[0].Code)
	assert.Equal(t, 5, types[0].Arity)
}

// TestHandleMeDefault verifies /api/v1/me returns the dev user when no
// Tailscale client is configured.
func TestHandleMeDefault(t *testing.T) {
	s := newTestServer("")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var info UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if info.Login != "local" {
		t.Errorf("login = %q, want %q", info.Login, "local")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer("")
	postTraining(t, s, `{"workout_type":"RUN","data":[15000,1,75]}`, "")

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fittrack_training_summaries_computed_total{workout_type="RUN"}`)
}

func TestHealth(t *testing.T) {
	s := newTestServer("")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetMCPRequiresAPIKey(t *testing.T) {
	s := newTestServer("secret")
	s.SetMCP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
