package remote

import (
	"diario/wellness-app/internal/domain"
)

// Wire types mirror the domain types but tolerate what a schema-less remote
// store can actually contain: null array entries, absent arrays, absent
// fields. Everything decoded through them is repaired before it crosses into
// the rest of the application.

type wireExercise struct {
	ExerciseID string              `bson:"exerciseId"`
	Name       string              `bson:"name"`
	TargetSets int                 `bson:"targetSets"`
	TargetReps string              `bson:"targetReps"`
	Sets       []*domain.LoggedSet `bson:"sets"`
	Notes      string              `bson:"notes"`
	Completed  bool                `bson:"completed"`
}

type wireSession struct {
	ID          string          `bson:"id"`
	Date        string          `bson:"date"`
	RoutineID   string          `bson:"routineId"`
	RoutineName string          `bson:"routineName"`
	Exercises   []*wireExercise `bson:"exercises"`
	Duration    int             `bson:"duration"`
	Notes       string          `bson:"notes"`
}

type wireRoutine struct {
	ID                string                       `bson:"id"`
	Name              string                       `bson:"name"`
	Description       string                       `bson:"description"`
	Category          domain.RoutineCategory       `bson:"category"`
	Difficulty        domain.RoutineDifficulty     `bson:"difficulty"`
	EstimatedDuration int                          `bson:"estimatedDuration"`
	IsPreset          bool                         `bson:"isPreset"`
	Exercises         []*domain.ExerciseDefinition `bson:"exercises"`
}

type wireDocument struct {
	Goals           *domain.NutritionGoals     `bson:"goals"`
	WorkoutRoutines []*wireRoutine             `bson:"workoutRoutines"`
	WorkoutHistory  []*wireSession             `bson:"workoutHistory"`
	ActiveSession   *wireSession               `bson:"activeSession"`
	DailyLogs       map[string]domain.DailyLog `bson:"dailyLogs"`
}

// sanitizeUserDocument repairs a decoded remote document into the shapes the
// rest of the app may index into: exercises arrays free of null entries,
// every exercise with a sets array, absent collections replaced by empty
// ones, absent goals replaced by defaults.
func sanitizeUserDocument(wire *wireDocument) *UserDocument {
	doc := &UserDocument{
		Goals:           domain.DefaultGoals(),
		WorkoutRoutines: make([]domain.WorkoutRoutine, 0, len(wire.WorkoutRoutines)),
		WorkoutHistory:  make([]domain.WorkoutSession, 0, len(wire.WorkoutHistory)),
		DailyLogs:       map[string]domain.DailyLog{},
	}
	if wire.Goals != nil {
		doc.Goals = *wire.Goals
	}
	if wire.DailyLogs != nil {
		doc.DailyLogs = wire.DailyLogs
	}
	for _, r := range wire.WorkoutRoutines {
		if r == nil {
			continue
		}
		doc.WorkoutRoutines = append(doc.WorkoutRoutines, sanitizeRoutine(r))
	}
	for _, session := range wire.WorkoutHistory {
		if session == nil {
			continue
		}
		doc.WorkoutHistory = append(doc.WorkoutHistory, sanitizeSession(session))
	}
	if wire.ActiveSession != nil {
		active := sanitizeSession(wire.ActiveSession)
		doc.ActiveSession = &active
	}
	return doc
}

// sanitizeSession drops null exercise entries and guarantees every remaining
// exercise has a sets array, possibly empty.
func sanitizeSession(wire *wireSession) domain.WorkoutSession {
	session := domain.WorkoutSession{
		ID:          wire.ID,
		Date:        wire.Date,
		RoutineID:   wire.RoutineID,
		RoutineName: wire.RoutineName,
		Exercises:   make([]domain.LoggedExercise, 0, len(wire.Exercises)),
		Duration:    wire.Duration,
		Notes:       wire.Notes,
	}
	for _, ex := range wire.Exercises {
		if ex == nil {
			continue
		}
		sets := ex.Sets
		if sets == nil {
			sets = []*domain.LoggedSet{}
		}
		session.Exercises = append(session.Exercises, domain.LoggedExercise{
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			TargetSets: ex.TargetSets,
			TargetReps: ex.TargetReps,
			Sets:       sets,
			Notes:      ex.Notes,
			Completed:  ex.Completed,
		})
	}
	return session
}

// sanitizeRoutine coerces the exercise list to a null-free array.
func sanitizeRoutine(wire *wireRoutine) domain.WorkoutRoutine {
	routine := domain.WorkoutRoutine{
		ID:                wire.ID,
		Name:              wire.Name,
		Description:       wire.Description,
		Category:          wire.Category,
		Difficulty:        wire.Difficulty,
		EstimatedDuration: wire.EstimatedDuration,
		IsPreset:          wire.IsPreset,
		Exercises:         make([]domain.ExerciseDefinition, 0, len(wire.Exercises)),
	}
	for _, ex := range wire.Exercises {
		if ex == nil {
			continue
		}
		routine.Exercises = append(routine.Exercises, *ex)
	}
	return routine
}
