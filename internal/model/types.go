/*
PURPOSE:
  Defines the data structures decoded from the Hevy API.
  These models represent workouts, exercises and sets as the API returns them.

REQUIREMENTS:
  User-specified:
  - Workout: title, start/end time, exercises.
  - Exercise: title, optional notes, sets.
  - Set: optional weight, reps, RPE, distance, duration.

  Implementation-discovered:
  - Every set field is independently nullable; a zero value is a real value
    (0 reps, 0 kg) and must not be confused with "absent".
  - Timestamps may be missing on malformed payloads, so they are pointers.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs). Validation lives in internal/engine.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - JSON tags must match the API's snake_case names.

USAGE:
  var page model.WorkoutsPage
  json.Unmarshal(body, &page)

RELATED FILES:
  - internal/engine/client.go
  - internal/output/format.go

MAINTENANCE:
  - Update when the API adds set types we want to render.
*/

package model

import (
	"time"
)

// Workout is a logged session.
type Workout struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Exercises   []Exercise `json:"exercises"`
}

// Exercise is a single movement within a workout.
type Exercise struct {
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
	Sets  []Set  `json:"sets"`
}

// Set is one performed unit of an exercise. Nil means the field was absent or null.
type Set struct {
	WeightKg        *float64 `json:"weight_kg"`
	Reps            *float64 `json:"reps"`
	RPE             *float64 `json:"rpe"`
	DistanceMeters  *float64 `json:"distance_meters"`
	DurationSeconds *float64 `json:"duration_seconds"`
}

// WorkoutsPage is the envelope of GET /v1/workouts.
type WorkoutsPage struct {
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Workouts  []Workout `json:"workouts"`
}

// WorkoutCount is the envelope of GET /v1/workouts/count.
// The count is a pointer so a missing or null field can be told apart from zero.
type WorkoutCount struct {
	WorkoutCount *float64 `json:"workout_count"`
}

// Float returns a pointer to v. Handy for building sets in tests and fixtures.
func Float(v float64) *float64 {
	return &v
}
