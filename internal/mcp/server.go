package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/fittrack/internal/client"
	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/summary"
)

// Calculator abstracts where summaries are computed. Both *summary.Service
// (local) and *client.Client (remote via REST API) satisfy this interface.
type Calculator interface {
	Compute(ctx context.Context, req models.TrainingRequest) (*models.Summary, error)
	WorkoutTypes(ctx context.Context) ([]models.WorkoutType, error)
}

var (
	_ Calculator = (*summary.Service)(nil)
	_ Calculator = (*client.Client)(nil)
)

// New creates an MCP server with all tools and resources registered.
func New(calc Calculator, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("fittrack", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("fittrack computes distance, mean speed and calories for running (RUN), sports walking (WLK) and swimming (SWM) sensor packages. Read fittrack://workout_types for the expected readings per code."),
	)

	h := &handlers{calc: calc, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolShowTrainingInfo, Handler: h.showTrainingInfo},
	)

	s.AddResources(
		server.ServerResource{Resource: resWorkoutTypes, Handler: h.workoutTypes},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	calc Calculator
	log  *slog.Logger
}

var resWorkoutTypes = mcp.NewResource(
	"fittrack://workout_types",
	"Workout Types",
	mcp.WithResourceDescription("Accepted workout codes with display name, arity and reading names in positional order"),
	mcp.WithMIMEType("application/json"),
)
