package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit is the load unit of a catalog exercise.
type Unit string

const (
	UnitKg         Unit = "kg"
	UnitLb         Unit = "lb"
	UnitBodyweight Unit = "bodyweight"
)

// Exercise is a catalog exercise.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup *string   `json:"muscle_group,omitempty"`
	Unit        Unit      `json:"unit"`
	Notes       *string   `json:"notes,omitempty"`
	VideoURL    *string   `json:"video_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExerciseInput holds the editable fields of a catalog exercise.
type ExerciseInput struct {
	Name        string  `json:"name" validate:"required,max=120"`
	MuscleGroup *string `json:"muscle_group" validate:"omitempty,max=60"`
	Unit        Unit    `json:"unit" validate:"omitempty,oneof=kg lb bodyweight"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
}

// Machine is a piece of gym equipment.
type Machine struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Label formats the machine as "Name #N (Location)".
func (m Machine) Label() string {
	label := fmt.Sprintf("%s #%d", m.Name, m.Number)
	if m.Location != nil && *m.Location != "" {
		label += " (" + *m.Location + ")"
	}
	return label
}

// MachineInput holds the editable fields of a machine.
type MachineInput struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Number   int     `json:"number" validate:"gte=0,lte=10000"`
	Location *string `json:"location" validate:"omitempty,max=120"`
}
