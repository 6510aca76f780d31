package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/fittrack/internal/models"
)

var toolShowTrainingInfo = mcp.NewTool("show_training_info",
	mcp.WithDescription("Compute the training summary (duration, distance, mean speed, calories) for one sensor package. Returns the summary fields and the formatted summary line."),
	mcp.WithString("workout_type", mcp.Required(), mcp.Description("Workout code"), mcp.Enum("SWM", "RUN", "WLK")),
	mcp.WithArray("data", mcp.Required(),
		mcp.Description("Sensor readings in positional order. RUN: action, duration, weight. WLK: action, duration, weight, height. SWM: action, duration, weight, length_pool, count_pool."),
		mcp.Items(map[string]any{"type": "number"}),
	),
)

func (h *handlers) showTrainingInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("workout_type")
	if err != nil {
		return mcp.NewToolResultError("workout_type parameter is required"), nil
	}

	data, err := floatSlice(req.GetArguments()["data"])
	if err != nil {
		return mcp.NewToolResultError("data: " + err.Error()), nil
	}

	sum, err := h.calc.Compute(ctx, models.TrainingRequest{WorkoutType: code, Data: data})
	if err != nil {
		h.log.Debug("mcp show_training_info", "workout_type", code, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sum)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// floatSlice converts a decoded JSON array argument to readings.
func floatSlice(v any) ([]float64, error) {
	if v == nil {
		return nil, fmt.Errorf("parameter is required")
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of numbers, got %T", v)
	}
	out := make([]float64, 0, len(items))
	for i, item := range items {
		switch n := item.(type) {
		case float64:
			out = append(out, n)
		case int:
			out = append(out, float64(n))
		default:
			return nil, fmt.Errorf("item %d: expected a number, got %T", i, item)
		}
	}
	return out, nil
}
