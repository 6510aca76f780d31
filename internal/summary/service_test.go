package summary

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/training"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestComputeRunning(t *testing.T) {
	s := newTestService()
	sum, err := s.Compute(context.Background(), models.TrainingRequest{WorkoutType: "RUN", Data: []float64{15000, 1, 75}})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sum.ID)
	assert.Equal(t, "RUN", sum.WorkoutType)
	assert.Equal(t, "Running", sum.TrainingType)
	assert.InDelta(t, 9.75, sum.Distance, 1e-9)
	assert.InDelta(t, 699.75, sum.Calories, 1e-9)
	assert.Equal(t, "Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750.", sum.Message)
}

func TestComputeUniqueIDs(t *testing.T) {
	s := newTestService()
	req := models.TrainingRequest{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}}
	a, err := s.Compute(context.Background(), req)
	require.NoError(t, err)
	b, err := s.Compute(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Message, b.Message)
}

func TestComputeRejects(t *testing.T) {
	s := newTestService()

	_, err := s.Compute(context.Background(), models.TrainingRequest{WorkoutType: "XYZ", Data: []float64{1, 2, 3}})
	assert.ErrorIs(t, err, training.ErrInvalidWorkoutType)

	_, err = s.Compute(context.Background(), models.TrainingRequest{WorkoutType: "WLK", Data: []float64{1, 2, 3}})
	assert.ErrorIs(t, err, training.ErrArityMismatch)
}

func TestCatalog(t *testing.T) {
	got := Catalog()
	require.Len(t, got, 3)
	assert.Equal(t, models.WorkoutType{
		Code:   "SWM",
		Name:   "Swimming",
		Arity:  5,
		Fields: []string{"action", "duration", "weight", "length_pool", "count_pool"},
	}, got[0])
	assert.Equal(t, "RUN", got[1].Code)
	assert.Equal(t, "WLK", got[2].Code)
}

// gathered returns the series of a registered metric family matching one label.
func gathered(t *testing.T, name, label, value string) *dto.Metric {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m
				}
			}
		}
	}
	return nil
}

func counterValue(t *testing.T, name, label, value string) float64 {
	t.Helper()
	if m := gathered(t, name, label, value); m != nil {
		return m.GetCounter().GetValue()
	}
	return 0
}

// TestComputeNonFinite verifies zero-duration packages are rejected without
// touching the summary counter or the calories histogram.
func TestComputeNonFinite(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	// Seed the RUN histogram with a finite observation.
	_, err := s.Compute(ctx, models.TrainingRequest{WorkoutType: "RUN", Data: []float64{15000, 1, 75}})
	require.NoError(t, err)

	computedBefore := counterValue(t, "fittrack_training_summaries_computed_total", "workout_type", "RUN")
	rejectedBefore := counterValue(t, "fittrack_training_packages_rejected_total", "reason", ReasonNonFinite)

	for _, data := range [][]float64{{0, 0, 70}, {15000, 0, 75}} {
		sum, err := s.Compute(ctx, models.TrainingRequest{WorkoutType: "RUN", Data: data})
		require.Error(t, err)
		assert.Nil(t, sum)
		assert.ErrorIs(t, err, ErrNonFinite)
	}

	assert.Equal(t, computedBefore, counterValue(t, "fittrack_training_summaries_computed_total", "workout_type", "RUN"))
	assert.Equal(t, rejectedBefore+2, counterValue(t, "fittrack_training_packages_rejected_total", "reason", ReasonNonFinite))

	hist := gathered(t, "fittrack_training_calories_burned", "workout_type", "RUN")
	require.NotNil(t, hist)
	sampleSum := hist.GetHistogram().GetSampleSum()
	assert.False(t, math.IsNaN(sampleSum) || math.IsInf(sampleSum, 0), "calories sum = %v", sampleSum)
}
