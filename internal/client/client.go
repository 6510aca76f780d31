// Package client calls the fittrack HTTP API.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/summary"
	"github.com/meltforce/fittrack/internal/training"
)

// Client computes summaries on a remote fittrack server.
type Client struct {
	http *resty.Client
}

// New creates a Client targeting baseURL. apiKey may be empty when the server
// runs without one.
func New(baseURL, apiKey string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		c.SetHeader("X-API-Key", apiKey)
	}
	return &Client{http: c}
}

// RemoteError is a non-2xx answer from the server. It unwraps to the matching
// training sentinel when the server rejected the sensor package.
type RemoteError struct {
	Status  int
	Kind    string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	switch e.Kind {
	case "invalid_workout_type":
		return training.ErrInvalidWorkoutType
	case "arity_mismatch":
		return training.ErrArityMismatch
	case summary.ReasonNonFinite:
		return summary.ErrNonFinite
	}
	return nil
}

// Compute posts a sensor package and returns the computed summary.
func (c *Client) Compute(ctx context.Context, req models.TrainingRequest) (*models.Summary, error) {
	var sum models.Summary
	var apiErr models.ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&sum).
		SetError(&apiErr).
		Post("/api/v1/trainings")
	if err != nil {
		return nil, fmt.Errorf("client: post training: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp, apiErr)
	}
	return &sum, nil
}

// WorkoutTypes fetches the workout type catalog.
func (c *Client) WorkoutTypes(ctx context.Context) ([]models.WorkoutType, error) {
	var types []models.WorkoutType
	var apiErr models.ErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&types).
		SetError(&apiErr).
		Get("/api/v1/workout-types")
	if err != nil {
		return nil, fmt.Errorf("client: get workout types: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp, apiErr)
	}
	return types, nil
}

func remoteError(resp *resty.Response, apiErr models.ErrorResponse) error {
	msg := apiErr.Error
	if msg == "" {
		msg = strings.TrimSpace(resp.String())
	}
	return &RemoteError{Status: resp.StatusCode(), Kind: apiErr.Kind, Message: msg}
}
