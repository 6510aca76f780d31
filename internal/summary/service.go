// Package summary turns sensor packages into training summaries for the
// service surfaces (HTTP API and MCP).
package summary

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/observability"
	"github.com/meltforce/fittrack/internal/training"
)

// ErrNonFinite matches summaries whose distance, speed or calories are Inf or
// NaN, as produced by a zero duration.
var ErrNonFinite = errors.New("non-finite result")

// NonFiniteError carries the summary line of a non-finite result.
type NonFiniteError struct {
	Message string
}

func (e *NonFiniteError) Error() string {
	return ErrNonFinite.Error() + ": " + e.Message
}

func (e *NonFiniteError) Unwrap() error { return ErrNonFinite }

// Service computes summaries and records metrics for them.
type Service struct {
	log *slog.Logger
}

// NewService creates a new summary service.
func NewService(log *slog.Logger) *Service {
	return &Service{log: log}
}

// Compute reads one sensor package and returns its summary. Factory errors are
// returned unwrapped so callers can classify them with training.ErrorKind;
// non-finite results return a *NonFiniteError and are not recorded as summaries.
func (s *Service) Compute(ctx context.Context, req models.TrainingRequest) (*models.Summary, error) {
	t, err := training.ReadPackage(req.WorkoutType, req.Data)
	if err != nil {
		kind := training.ErrorKind(err)
		observability.RecordRejected(kind)
		s.log.DebugContext(ctx, "sensor package rejected", "workout_type", req.WorkoutType, "values", len(req.Data), "reason", kind, "error", err)
		return nil, err
	}

	info := training.ShowTrainingInfo(t)
	if !finite(info.Distance, info.Speed, info.Calories) {
		observability.RecordRejected(ReasonNonFinite)
		s.log.DebugContext(ctx, "non-finite summary", "workout_type", req.WorkoutType, "message", info.Message())
		return nil, &NonFiniteError{Message: info.Message()}
	}

	sum := &models.Summary{
		ID:           uuid.New(),
		WorkoutType:  t.Kind().Code(),
		TrainingType: info.TrainingType,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
		Message:      info.Message(),
	}
	observability.RecordSummary(sum.WorkoutType, sum.Calories)
	s.log.DebugContext(ctx, "summary computed", "id", sum.ID, "workout_type", sum.WorkoutType, "calories", sum.Calories)
	return sum, nil
}

// WorkoutTypes lists the accepted workout codes in catalog order. The catalog
// is static; ctx and the error exist to satisfy mcp.Calculator, whose remote
// implementation needs both.
func (s *Service) WorkoutTypes(ctx context.Context) ([]models.WorkoutType, error) {
	return Catalog(), nil
}

// ReasonNonFinite is the rejection reason recorded for non-finite results.
const ReasonNonFinite = "non_finite"

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Catalog describes every workout type the factory accepts.
func Catalog() []models.WorkoutType {
	kinds := training.Kinds()
	out := make([]models.WorkoutType, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, models.WorkoutType{
			Code:   k.Code(),
			Name:   k.Name(),
			Arity:  k.Arity(),
			Fields: k.FieldNames(),
		})
	}
	return out
}
