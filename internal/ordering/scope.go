package ordering

// Scope describes where a kind of sibling lives in the database.
type Scope struct {
	Name           string
	Table          string
	ParentTable    string
	ParentColumn   string
	PositionColumn string
}

var (
	// DayScope orders the days of a program.
	DayScope = Scope{
		Name:           "day",
		Table:          "program_days",
		ParentTable:    "programs",
		ParentColumn:   "program_id",
		PositionColumn: "day_index",
	}
	// ExerciseScope orders the exercises of a day.
	ExerciseScope = Scope{
		Name:           "exercise",
		Table:          "program_exercises",
		ParentTable:    "program_days",
		ParentColumn:   "program_day_id",
		PositionColumn: "order_index",
	}
)
