/*
PURPOSE:
  High-level runners for the two commands.
  Each one is fetch -> format -> write, in that order.

REQUIREMENTS:
  User-specified:
  - Append the latest workout block to the workout log.
  - Overwrite the count file with the workout count.
  - Nothing is written unless the fetch and formatting succeeded.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine (client), internal/output

ERROR HANDLING:
  - Returns the first error; callers exit non-zero.

USAGE:
  res, err := engine.AppendLatestWorkout(ctx, cfg, time.Now)
  res, err := engine.SaveWorkoutCount(ctx, cfg)

RELATED FILES:
  - internal/engine/client.go
  - internal/output/writer.go
*/

package engine

import (
	"context"
	"strconv"
	"time"

	"github.com/daryltucker/hevy-metrics/internal/config"
	"github.com/daryltucker/hevy-metrics/internal/model"
	"github.com/daryltucker/hevy-metrics/internal/output"
)

// AppendResult describes a successful append.
type AppendResult struct {
	Workout model.Workout
	Path    string
	Block   string
}

// CountResult describes a successful count snapshot.
type CountResult struct {
	Count int64
	Path  string
}

// AppendLatestWorkout fetches the most recent workout and appends its
// rendered block to the workout log. now supplies the logged_at time.
func AppendLatestWorkout(ctx context.Context, cfg *config.Config, now func() time.Time) (*AppendResult, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}

	output.Logger.Info("Fetching latest workout...", "url", cfg.BaseURL)
	w, err := e.LatestWorkout(ctx)
	if err != nil {
		return nil, err
	}

	block := output.FormatWorkout(w, now(), loc)
	path := cfg.WorkoutsPath()
	if err := output.AppendBlock(path, block); err != nil {
		return nil, err
	}

	output.Logger.Debug("Appended block", "file", path, "bytes", len(block), "exercises", len(w.Exercises))
	return &AppendResult{Workout: w, Path: path, Block: block}, nil
}

// SaveWorkoutCount fetches the workout count and overwrites the count file.
func SaveWorkoutCount(ctx context.Context, cfg *config.Config) (*CountResult, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}

	output.Logger.Info("Fetching workout count...", "url", cfg.BaseURL)
	n, err := e.WorkoutCount(ctx)
	if err != nil {
		return nil, err
	}

	path := cfg.CountPath()
	if err := output.WriteSnapshot(path, strconv.FormatInt(n, 10)); err != nil {
		return nil, err
	}
	return &CountResult{Count: n, Path: path}, nil
}
