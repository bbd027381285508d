package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/sheets"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List the training programs visible to the user. Owners see every program, trainers their own programs, templates and their members' programs, members the programs assigned to them."),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Get one program with its ordered days and exercises, including targets (sets, reps, load, rest, RPE or cardio minutes/distance/intensity), machines, methods and notes."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program ID (UUID) as returned by list_programs")),
)

var toolGetProgramSheet = mcp.NewTool("get_program_sheet",
	mcp.WithDescription("Render the printable plain-text sheet of a program: one table per day with a row per exercise."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program ID (UUID)")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Strength progress of the user. Without an exercise, lists the exercises that have logged sets. With one, returns the chronological load/reps/RPE history of that exercise."),
	mcp.WithString("exercise", mcp.Description("Exercise ID, or a name (exact or partial match among logged exercises)")),
	mcp.WithString("since", mcp.Description("Only return sets performed on or after this date (ISO 8601 or YYYY-MM-DD)")),
)

// --- Tool handlers ---

func (h *handlers) listPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := h.ds.ListPrograms(ctx)
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(list)
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireID(req)
	if errResult != nil {
		return errResult, nil
	}
	view, err := h.ds.GetProgram(ctx, id)
	if err != nil {
		h.log.Error("mcp get_program", "program_id", id, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(view)
}

func (h *handlers) getProgramSheet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireID(req)
	if errResult != nil {
		return errResult, nil
	}
	view, err := h.ds.GetProgram(ctx, id)
	if err != nil {
		h.log.Error("mcp get_program_sheet", "program_id", id, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	var buf bytes.Buffer
	if err := sheets.Render(&buf, view.ProgramTree); err != nil {
		return mcp.NewToolResultError("rendering failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (h *handlers) getProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise := strings.TrimSpace(req.GetString("exercise", ""))
	if exercise == "" {
		list, err := h.ds.ProgressExercises(ctx)
		if err != nil {
			h.log.Error("mcp get_progress exercises", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		return jsonResult(list)
	}

	var since time.Time
	if s := req.GetString("since", ""); s != "" {
		t, err := parseFlexTime(s)
		if err != nil {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
		since = t
	}

	ex, err := h.resolveExercise(ctx, exercise)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	points, err := h.ds.Progress(ctx, ex.ID)
	if err != nil {
		h.log.Error("mcp get_progress", "exercise_id", ex.ID, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	filtered := make([]models.ProgressPoint, 0, len(points))
	for _, p := range points {
		if !p.PerformedAt.Before(since) {
			filtered = append(filtered, p)
		}
	}
	return jsonResult(map[string]any{
		"exercise": ex,
		"points":   filtered,
	})
}

// resolveExercise accepts an exercise ID or a name. Names match logged
// exercises exactly (ignoring case) or, failing that, by a unique partial
// match.
func (h *handlers) resolveExercise(ctx context.Context, ref string) (models.Exercise, error) {
	list, err := h.ds.ProgressExercises(ctx)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("query failed: %w", err)
	}
	if id, err := uuid.Parse(ref); err == nil {
		for _, e := range list {
			if e.ID == id {
				return e, nil
			}
		}
		return models.Exercise{ID: id}, nil
	}

	var partial []models.Exercise
	needle := strings.ToLower(ref)
	for _, e := range list {
		name := strings.ToLower(e.Name)
		if name == needle {
			return e, nil
		}
		if strings.Contains(name, needle) {
			partial = append(partial, e)
		}
	}
	switch len(partial) {
	case 0:
		return models.Exercise{}, fmt.Errorf("no logged exercise matches %q", ref)
	case 1:
		return partial[0], nil
	}
	names := make([]string, 0, len(partial))
	for _, e := range partial {
		names = append(names, e.Name)
	}
	return models.Exercise{}, fmt.Errorf("%q matches several exercises: %s", ref, strings.Join(names, ", "))
}

func requireID(req mcp.CallToolRequest) (uuid.UUID, *mcp.CallToolResult) {
	raw, err := req.RequireString("id")
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError("id parameter is required")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError("id must be a program UUID")
	}
	return id, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
