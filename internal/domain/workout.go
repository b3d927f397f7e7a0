package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for all date keys.
const DateLayout = "2006-01-02"

// RoutineCategory classifies a workout routine.
type RoutineCategory string

const (
	CategoryStrength     RoutineCategory = "strength"
	CategoryCrossfit     RoutineCategory = "crossfit"
	CategoryCardio       RoutineCategory = "cardio"
	CategoryCalisthenics RoutineCategory = "calisthenics"
	CategoryOther        RoutineCategory = "other"
)

// RoutineDifficulty is an optional difficulty rating.
type RoutineDifficulty string

const (
	DifficultyBeginner     RoutineDifficulty = "beginner"
	DifficultyIntermediate RoutineDifficulty = "intermediate"
	DifficultyAdvanced     RoutineDifficulty = "advanced"
)

// ExerciseDefinition describes one exercise inside a routine: how many sets
// to do and a free-text rep scheme ("8-12", "21-15-9", "5x5", ...).
type ExerciseDefinition struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Sets  int    `bson:"sets" json:"sets"`
	Reps  string `bson:"reps" json:"reps"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutRoutine is a reusable workout template, either authored by the user
// (or imported from the AI service) or one of the built-in presets.
// Preset routines are read-only seed data and are never persisted.
type WorkoutRoutine struct {
	ID                string               `bson:"id" json:"id"`
	Name              string               `bson:"name" json:"name"`
	Description       string               `bson:"description,omitempty" json:"description,omitempty"`
	Category          RoutineCategory      `bson:"category,omitempty" json:"category,omitempty"`
	Difficulty        RoutineDifficulty    `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	EstimatedDuration int                  `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"` // minutes
	IsPreset          bool                 `bson:"isPreset,omitempty" json:"isPreset,omitempty"`
	Exercises         []ExerciseDefinition `bson:"exercises" json:"exercises"`
}

// LoggedSet is one performed set. A nil entry in LoggedExercise.Sets means
// the set slot exists but has not been filled in yet.
type LoggedSet struct {
	Weight float64 `bson:"weight" json:"weight"`
	Reps   int     `bson:"reps" json:"reps"`
}

// LoggedExercise is one exercise within a session, carrying the targets
// copied from the routine at session start plus whatever was actually done.
type LoggedExercise struct {
	ExerciseID string       `bson:"exerciseId" json:"exerciseId"`
	Name       string       `bson:"name" json:"name"`
	TargetSets int          `bson:"targetSets" json:"targetSets"`
	TargetReps string       `bson:"targetReps" json:"targetReps"`
	Sets       []*LoggedSet `bson:"sets" json:"sets"`
	Notes      string       `bson:"notes,omitempty" json:"notes,omitempty"`
	Completed  bool         `bson:"completed,omitempty" json:"completed,omitempty"`
}

// WorkoutSession is one performed (or in-progress) workout. At most one
// session is active at a time; on finish it moves into history.
type WorkoutSession struct {
	ID          string           `bson:"id" json:"id"`
	Date        string           `bson:"date" json:"date"` // YYYY-MM-DD
	RoutineID   string           `bson:"routineId" json:"routineId"`
	RoutineName string           `bson:"routineName" json:"routineName"`
	Exercises   []LoggedExercise `bson:"exercises" json:"exercises"`
	Duration    int              `bson:"duration" json:"duration"` // seconds
	Notes       string           `bson:"notes,omitempty" json:"notes,omitempty"`
}

// NewSessionFromRoutine starts a session from a routine, copying the targets
// and sizing every exercise's set list to its target set count.
func NewSessionFromRoutine(r WorkoutRoutine, date time.Time) *WorkoutSession {
	session := &WorkoutSession{
		ID:          uuid.NewString(),
		Date:        date.Format(DateLayout),
		RoutineID:   r.ID,
		RoutineName: r.Name,
		Exercises:   make([]LoggedExercise, 0, len(r.Exercises)),
	}
	for _, ex := range r.Exercises {
		session.Exercises = append(session.Exercises, LoggedExercise{
			ExerciseID: ex.ID,
			Name:       ex.Name,
			TargetSets: ex.Sets,
			TargetReps: ex.Reps,
			Sets:       make([]*LoggedSet, ex.Sets),
		})
	}
	return session
}
