package models

import (
	"encoding/json"
	"fmt"
)

// Mode selects which target fields of a program exercise are active.
type Mode string

const (
	ModeStrength Mode = "strength"
	ModeCardio   Mode = "cardio"
)

// Target is the prescription of a program exercise: either a StrengthTarget
// or a CardioTarget, never both.
type Target interface {
	Mode() Mode
	isTarget()
}

// StrengthTarget prescribes sets of repetitions with a load.
type StrengthTarget struct {
	Sets        *int     `json:"sets,omitempty" validate:"omitempty,gte=1,lte=100"`
	Reps        *int     `json:"reps,omitempty" validate:"omitempty,gte=1,lte=1000"`
	Load        *float64 `json:"load,omitempty" validate:"omitempty,gte=0,lte=2000"`
	RestSeconds *int     `json:"rest_seconds,omitempty" validate:"omitempty,gte=0,lte=3600"`
	RPE         *float64 `json:"rpe,omitempty" validate:"omitempty,gte=1,lte=10"`
}

func (StrengthTarget) Mode() Mode { return ModeStrength }
func (StrengthTarget) isTarget()  {}

// CardioTarget prescribes a duration and/or distance at a free-text intensity.
type CardioTarget struct {
	Minutes    *float64 `json:"minutes,omitempty" validate:"omitempty,gte=0,lte=1440"`
	DistanceKm *float64 `json:"distance_km,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Intensity  *string  `json:"intensity,omitempty" validate:"omitempty,max=100"`
}

func (CardioTarget) Mode() Mode { return ModeCardio }
func (CardioTarget) isTarget()  {}

// ForProgram drops the RPE target when the program does not track RPE.
func ForProgram(t Target, useRPE bool) Target {
	if s, ok := t.(StrengthTarget); ok && !useRPE {
		s.RPE = nil
		return s
	}
	return t
}

// TargetColumns is the flat storage representation of a Target.
// Exactly one group of fields is non-nil, selected by IsCardio.
type TargetColumns struct {
	IsCardio         bool
	TargetSets       *int
	TargetReps       *int
	TargetLoad       *float64
	RestSeconds      *int
	RPETarget        *float64
	CardioMinutes    *float64
	CardioDistanceKm *float64
	CardioIntensity  *string
}

// ColumnsOf flattens a Target. The fields of the inactive mode stay nil.
func ColumnsOf(t Target) TargetColumns {
	switch v := t.(type) {
	case CardioTarget:
		return TargetColumns{
			IsCardio:         true,
			CardioMinutes:    copyPtr(v.Minutes),
			CardioDistanceKm: copyPtr(v.DistanceKm),
			CardioIntensity:  copyPtr(v.Intensity),
		}
	case StrengthTarget:
		return TargetColumns{
			TargetSets:  copyPtr(v.Sets),
			TargetReps:  copyPtr(v.Reps),
			TargetLoad:  copyPtr(v.Load),
			RestSeconds: copyPtr(v.RestSeconds),
			RPETarget:   copyPtr(v.RPE),
		}
	}
	return TargetColumns{}
}

// Target rebuilds the variant from its stored columns.
func (c TargetColumns) Target() Target {
	if c.IsCardio {
		return CardioTarget{
			Minutes:    copyPtr(c.CardioMinutes),
			DistanceKm: copyPtr(c.CardioDistanceKm),
			Intensity:  copyPtr(c.CardioIntensity),
		}
	}
	return StrengthTarget{
		Sets:        copyPtr(c.TargetSets),
		Reps:        copyPtr(c.TargetReps),
		Load:        copyPtr(c.TargetLoad),
		RestSeconds: copyPtr(c.RestSeconds),
		RPE:         copyPtr(c.RPETarget),
	}
}

// CopyTarget returns a deep copy of t.
func CopyTarget(t Target) Target {
	if t == nil {
		return nil
	}
	return ColumnsOf(t).Target()
}

// TargetInput is the wire form of a Target:
//
//	{"mode": "strength", "strength": {"sets": 3, "reps": 10}}
//	{"mode": "cardio", "cardio": {"minutes": 20}}
type TargetInput struct {
	Mode     Mode            `json:"mode"`
	Strength *StrengthTarget `json:"strength,omitempty"`
	Cardio   *CardioTarget   `json:"cardio,omitempty"`
}

// Target converts the wire form into the variant.
func (in TargetInput) Target() (Target, error) {
	switch in.Mode {
	case ModeStrength, "":
		if in.Cardio != nil {
			return nil, fmt.Errorf("cardio fields given for a strength target")
		}
		if in.Strength == nil {
			return StrengthTarget{}, nil
		}
		return *in.Strength, nil
	case ModeCardio:
		if in.Strength != nil {
			return nil, fmt.Errorf("strength fields given for a cardio target")
		}
		if in.Cardio == nil {
			return CardioTarget{}, nil
		}
		return *in.Cardio, nil
	}
	return nil, fmt.Errorf("unknown target mode %q", in.Mode)
}

// InputOf returns the wire form of t.
func InputOf(t Target) TargetInput {
	switch v := t.(type) {
	case StrengthTarget:
		return TargetInput{Mode: ModeStrength, Strength: &v}
	case CardioTarget:
		return TargetInput{Mode: ModeCardio, Cardio: &v}
	}
	return TargetInput{}
}

func marshalTarget(t Target) (json.RawMessage, error) {
	return json.Marshal(InputOf(t))
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
