// Package sheets renders printable program sheets and exports them to a
// directory, skipping programs whose sheet has not changed since the last
// export.
package sheets

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
)

const dateLayout = "2006-01-02"

// Render writes the plain-text sheet of a program: a header, then one
// table per day with a row per exercise and indented method and notes
// lines.
func Render(w io.Writer, tree models.ProgramTree) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "PROGRAM: %s\n", tree.Name)
	if tree.MemberName != "" {
		fmt.Fprintf(&buf, "Member:  %s\n", tree.MemberName)
	}
	if tree.AuthorName != "" {
		fmt.Fprintf(&buf, "Author:  %s\n", tree.AuthorName)
	}
	if period := period(tree.Program); period != "" {
		fmt.Fprintf(&buf, "Period:  %s\n", period)
	}
	if tree.IsTemplate {
		buf.WriteString("Template\n")
	}

	for _, day := range tree.Days {
		buf.WriteString("\n")
		title := fmt.Sprintf("DAY %d", day.Position)
		if day.Name != nil && *day.Name != "" {
			title += " - " + *day.Name
		}
		buf.WriteString(title + "\n")

		if len(day.Exercises) == 0 {
			buf.WriteString("  (no exercises)\n")
			continue
		}

		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		header := "#\tExercise\tMachine\tSets x Reps\tLoad\tRest"
		if tree.UseRPE {
			header += "\tRPE"
		}
		fmt.Fprintln(tw, header)
		for _, e := range day.Exercises {
			fmt.Fprintln(tw, row(e, tree.UseRPE))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("rendering day %d: %w", day.Position, err)
		}

		for _, e := range day.Exercises {
			if extra := details(e); extra != "" {
				buf.WriteString(extra)
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Hash returns the hex SHA-256 of a rendered sheet.
func Hash(sheet []byte) string {
	sum := sha256.Sum256(sheet)
	return hex.EncodeToString(sum[:])
}

func period(p models.Program) string {
	switch {
	case p.StartDate != nil && p.EndDate != nil:
		return p.StartDate.Format(dateLayout) + " to " + p.EndDate.Format(dateLayout)
	case p.StartDate != nil:
		return "from " + p.StartDate.Format(dateLayout)
	case p.EndDate != nil:
		return "until " + p.EndDate.Format(dateLayout)
	}
	return ""
}

func row(e models.ProgramExercise, useRPE bool) string {
	machine := "-"
	if e.MachineLabel != nil {
		machine = *e.MachineLabel
	}
	cols := []string{strconv.Itoa(e.Position), e.ExerciseName, machine}

	switch t := e.Target.(type) {
	case models.CardioTarget:
		cols = append(cols, cardioLine(t), "", "")
		if useRPE {
			cols = append(cols, "")
		}
	case models.StrengthTarget:
		cols = append(cols, setsReps(t), orDash(formatFloat(t.Load)), rest(t.RestSeconds))
		if useRPE {
			cols = append(cols, orDash(formatFloat(t.RPE)))
		}
	}
	return strings.Join(cols, "\t")
}

func details(e models.ProgramExercise) string {
	var b strings.Builder
	if e.Method != nil {
		method := *e.Method
		if e.MethodDetails != nil {
			method += " (" + *e.MethodDetails + ")"
		}
		fmt.Fprintf(&b, "  %d. Method: %s\n", e.Position, method)
	}
	if e.Notes != nil {
		fmt.Fprintf(&b, "  %d. Notes: %s\n", e.Position, *e.Notes)
	}
	return b.String()
}

func setsReps(t models.StrengthTarget) string {
	sets, reps := "-", "-"
	if t.Sets != nil {
		sets = strconv.Itoa(*t.Sets)
	}
	if t.Reps != nil {
		reps = strconv.Itoa(*t.Reps)
	}
	if t.Sets == nil && t.Reps == nil {
		return "-"
	}
	return sets + " x " + reps
}

func cardioLine(t models.CardioTarget) string {
	var parts []string
	if t.Minutes != nil {
		parts = append(parts, formatFloat(t.Minutes)+" min")
	}
	if t.DistanceKm != nil {
		parts = append(parts, formatFloat(t.DistanceKm)+" km")
	}
	if t.Intensity != nil && *t.Intensity != "" {
		parts = append(parts, *t.Intensity)
	}
	if len(parts) == 0 {
		return "cardio"
	}
	return "cardio: " + strings.Join(parts, ", ")
}

func rest(seconds *int) string {
	if seconds == nil {
		return "-"
	}
	return strconv.Itoa(*seconds) + "s"
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
