// Package ordering keeps 1-based sibling positions contiguous.
//
// Days under a program and exercises under a day each form a sibling scope
// whose positions must equal {1..N}. Normalize repairs gaps and duplicates,
// and Move swaps a record with its neighbor after normalizing. Both return
// only the writes needed; persisting them is the caller's job.
package ordering

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Sibling is one record of a scope.
type Sibling struct {
	ID        uuid.UUID
	Position  int
	CreatedAt time.Time
}

// Write assigns a new position to a record.
type Write struct {
	ID       uuid.UUID `json:"id"`
	Position int       `json:"position"`
}

// Direction is the direction of a move.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// ParseDirection accepts "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("invalid direction %q: want up or down", s)
}

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Sorted returns a copy of siblings ordered by position, then creation
// time, then id.
func Sorted(siblings []Sibling) []Sibling {
	out := make([]Sibling, len(siblings))
	copy(out, siblings)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})
	return out
}

// NeedsNormalize reports whether the positions differ from {1..N}.
func NeedsNormalize(siblings []Sibling) bool {
	for i, s := range Sorted(siblings) {
		if s.Position != i+1 {
			return true
		}
	}
	return false
}

// Normalize returns the writes that make positions equal to each record's
// 1-based rank. Records already at their rank are left out, so a
// normalized scope yields no writes.
func Normalize(siblings []Sibling) []Write {
	var writes []Write
	for i, s := range Sorted(siblings) {
		if s.Position != i+1 {
			writes = append(writes, Write{ID: s.ID, Position: i + 1})
		}
	}
	return writes
}

// Apply returns a copy of siblings with writes applied.
func Apply(siblings []Sibling, writes []Write) []Sibling {
	pos := make(map[uuid.UUID]int, len(writes))
	for _, w := range writes {
		pos[w.ID] = w.Position
	}
	out := make([]Sibling, len(siblings))
	for i, s := range siblings {
		if p, ok := pos[s.ID]; ok {
			s.Position = p
		}
		out[i] = s
	}
	return out
}

// Move normalizes the scope, then swaps the record with its neighbor in
// the given direction. The returned writes combine both steps relative to
// the input positions. moved is false when id is absent or already at the
// boundary; the normalization writes are still returned in that case.
func Move(siblings []Sibling, id uuid.UUID, dir Direction) (writes []Write, moved bool) {
	norm := Normalize(siblings)
	ranked := Sorted(Apply(siblings, norm))

	idx := -1
	for i, s := range ranked {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return norm, false
	}
	other := idx + int(dir)
	if other < 0 || other >= len(ranked) {
		return norm, false
	}

	ranked[idx].Position, ranked[other].Position = ranked[other].Position, ranked[idx].Position
	return diff(siblings, ranked), true
}

// NextPosition returns the position for a record appended to the scope.
func NextPosition(siblings []Sibling) int {
	highest := 0
	for _, s := range siblings {
		if s.Position > highest {
			highest = s.Position
		}
	}
	return highest + 1
}

// diff returns writes for every record of after whose position differs
// from before, ordered by new position.
func diff(before, after []Sibling) []Write {
	old := make(map[uuid.UUID]int, len(before))
	for _, s := range before {
		old[s.ID] = s.Position
	}
	var writes []Write
	for _, s := range after {
		if old[s.ID] != s.Position {
			writes = append(writes, Write{ID: s.ID, Position: s.Position})
		}
	}
	sort.Slice(writes, func(i, j int) bool { return writes[i].Position < writes[j].Position })
	return writes
}
