package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkoutSession is one live training session of a user.
type WorkoutSession struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ProgramID *uuid.UUID `json:"program_id,omitempty"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// Open reports whether the session has not been ended.
func (s WorkoutSession) Open() bool { return s.EndedAt == nil }

// SessionSummary is a session row with its program name and set count.
type SessionSummary struct {
	WorkoutSession
	ProgramName string `json:"program_name,omitempty"`
	SetCount    int    `json:"set_count"`
}

// SessionDetail is a session with its logged sets.
type SessionDetail struct {
	SessionSummary
	Sets []WorkoutSet `json:"sets"`
}

// WeightsEntry is a logged strength set.
type WeightsEntry struct {
	Load *float64 `json:"load,omitempty" validate:"omitempty,gte=0,lte=2000"`
	Reps *int     `json:"reps,omitempty" validate:"omitempty,gte=0,lte=1000"`
	RPE  *float64 `json:"rpe,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// CardioEntry is a logged cardio bout.
type CardioEntry struct {
	Minutes    *float64 `json:"minutes,omitempty" validate:"omitempty,gte=0,lte=1440"`
	DistanceKm *float64 `json:"distance_km,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Intensity  *string  `json:"intensity,omitempty" validate:"omitempty,max=100"`
}

// SetEntry is the logged payload of a workout set: weights or cardio.
type SetEntry struct {
	Weights *WeightsEntry `json:"weights,omitempty"`
	Cardio  *CardioEntry  `json:"cardio,omitempty"`
}

// Mode returns which kind of entry is set, or an error if both or neither are.
func (e SetEntry) Mode() (Mode, error) {
	switch {
	case e.Weights != nil && e.Cardio != nil:
		return "", fmt.Errorf("a set is either weights or cardio, not both")
	case e.Weights != nil:
		return ModeStrength, nil
	case e.Cardio != nil:
		return ModeCardio, nil
	}
	return "", fmt.Errorf("a set needs weights or cardio values")
}

// WorkoutSet is one logged set.
type WorkoutSet struct {
	ID                uuid.UUID  `json:"id"`
	SessionID         uuid.UUID  `json:"session_id"`
	UserID            uuid.UUID  `json:"user_id"`
	ProgramID         *uuid.UUID `json:"program_id,omitempty"`
	ProgramExerciseID *uuid.UUID `json:"program_exercise_id,omitempty"`
	ExerciseID        uuid.UUID  `json:"exercise_id"`
	ExerciseName      string     `json:"exercise_name,omitempty"`
	PerformedAt       time.Time  `json:"performed_at"`
	SetEntry
}

// LastEntry is the most recent logged set of one exercise.
type LastEntry struct {
	ExerciseID  uuid.UUID `json:"exercise_id"`
	PerformedAt time.Time `json:"performed_at"`
	SetEntry
}

// ProgressPoint is one weights set in an exercise history.
type ProgressPoint struct {
	PerformedAt time.Time `json:"performed_at"`
	Load        *float64  `json:"load,omitempty"`
	Reps        *int      `json:"reps,omitempty"`
	RPE         *float64  `json:"rpe,omitempty"`
}
