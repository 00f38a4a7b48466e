/*
PURPOSE:
  Client for the Hevy REST API.
  Fetches the latest workouts page and the total workout count.

REQUIREMENTS:
  User-specified:
  - Single authenticated GET per command, header `api-key`.
  - Fail on missing key, non-2xx status, malformed payload.

  Implementation-discovered:
  - Needs http.Client with a timeout; the request is also bound to ctx so
    Ctrl-C aborts it.
  - Error bodies are short JSON documents worth surfacing verbatim.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (runner), internal/cli
  - Uses: internal/config, internal/model, internal/output

ERROR HANDLING:
  - No retries. One attempt per invocation; schedulers re-run on failure.
  - Returns ErrMissingCredential, *HTTPError or wrapped ErrMalformedResponse.

IMPLEMENTATION RULES:
  - Use net/http.
  - Decode into internal/model types; validate before returning.

USAGE:
  e, err := engine.New(cfg)
  w, err := e.LatestWorkout(ctx)
  n, err := e.WorkoutCount(ctx)

RELATED FILES:
  - internal/config/config.go
  - internal/model/types.go
  - internal/engine/errors.go

MAINTENANCE:
  - Update endpoints if the API version changes (/v1/...).
*/

package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/daryltucker/hevy-metrics/internal/config"
	"github.com/daryltucker/hevy-metrics/internal/model"
	"github.com/daryltucker/hevy-metrics/internal/output"
)

const (
	workoutsPath     = "/v1/workouts"
	workoutCountPath = "/v1/workouts/count"

	// maxErrorBody bounds how much of an error response ends up in messages.
	maxErrorBody = 4096
)

// Engine handles Hevy API interactions.
type Engine struct {
	Config *config.Config
	Client *http.Client
}

// New creates a new Engine. It fails with ErrMissingCredential when no API
// key is configured, before any network activity.
func New(cfg *config.Config) (*Engine, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingCredential
	}
	return &Engine{
		Config: cfg,
		Client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (e *Engine) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := strings.TrimRight(e.Config.BaseURL, "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", e.Config.APIKey)

	output.Logger.Debug("Network: GET", "path", path, "query", params.Encode())
	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", path, err)
	}
	output.Logger.Debug("Network: response", "path", path, "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}

// Workouts fetches one page of workouts, most recent first.
func (e *Engine) Workouts(ctx context.Context, page, pageSize int) ([]model.Workout, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	body, err := e.get(ctx, workoutsPath, params)
	if err != nil {
		return nil, err
	}

	var payload model.WorkoutsPage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, malformed("decode workouts: %v", err)
	}
	return payload.Workouts, nil
}

// LatestWorkout returns the most recent workout. An empty list is an error.
func (e *Engine) LatestWorkout(ctx context.Context) (model.Workout, error) {
	workouts, err := e.Workouts(ctx, 1, 1)
	if err != nil {
		return model.Workout{}, err
	}
	if len(workouts) == 0 {
		return model.Workout{}, malformed("no workouts found in response")
	}

	w := workouts[0]
	if err := validateWorkout(w); err != nil {
		return model.Workout{}, err
	}
	return w, nil
}

func validateWorkout(w model.Workout) error {
	if w.StartTime == nil {
		return malformed("workout %q has no start_time", w.Title)
	}
	if w.EndTime == nil {
		return malformed("workout %q has no end_time", w.Title)
	}
	return nil
}

// WorkoutCount returns the total number of workouts on the account.
func (e *Engine) WorkoutCount(ctx context.Context) (int64, error) {
	body, err := e.get(ctx, workoutCountPath, nil)
	if err != nil {
		return 0, err
	}

	var payload model.WorkoutCount
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, malformed("%s: %v", truncate(body), err)
	}
	if payload.WorkoutCount == nil {
		return 0, malformed("%s", truncate(body))
	}

	n := *payload.WorkoutCount
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 || n != math.Trunc(n) {
		return 0, malformed("workout_count %v is not a non-negative integer", n)
	}
	// int64(n) is undefined past this point.
	if n >= 1<<63 {
		return 0, malformed("workout_count %v is out of range", n)
	}
	return int64(n), nil
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
