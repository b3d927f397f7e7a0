package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diario/wellness-app/internal/domain"
)

func TestSanitizeEmptyDocument(t *testing.T) {
	doc := sanitizeUserDocument(&wireDocument{})

	assert.Equal(t, domain.DefaultGoals(), doc.Goals)
	assert.NotNil(t, doc.WorkoutRoutines)
	assert.Empty(t, doc.WorkoutRoutines)
	assert.NotNil(t, doc.WorkoutHistory)
	assert.Empty(t, doc.WorkoutHistory)
	assert.Nil(t, doc.ActiveSession)
	assert.NotNil(t, doc.DailyLogs)
	assert.Empty(t, doc.DailyLogs)
}

func TestSanitizeHistoryDropsNullExercisesAndEnsuresSets(t *testing.T) {
	wire := &wireDocument{
		WorkoutHistory: []*wireSession{
			{
				ID:   "s1",
				Date: "2024-05-20",
				Exercises: []*wireExercise{
					nil,
					{ExerciseID: "e1", Name: "Bench", TargetSets: 3, TargetReps: "8"},
				},
			},
		},
	}

	doc := sanitizeUserDocument(wire)

	require.Len(t, doc.WorkoutHistory, 1)
	session := doc.WorkoutHistory[0]
	require.Len(t, session.Exercises, 1)
	assert.Equal(t, "e1", session.Exercises[0].ExerciseID)
	require.NotNil(t, session.Exercises[0].Sets)
	assert.Empty(t, session.Exercises[0].Sets)
}

func TestSanitizeDropsNullHistorySessions(t *testing.T) {
	wire := &wireDocument{
		WorkoutHistory: []*wireSession{nil, {ID: "s1"}, nil},
	}

	doc := sanitizeUserDocument(wire)

	require.Len(t, doc.WorkoutHistory, 1)
	assert.Equal(t, "s1", doc.WorkoutHistory[0].ID)
}

func TestSanitizeActiveSession(t *testing.T) {
	wire := &wireDocument{
		ActiveSession: &wireSession{
			ID: "active",
			Exercises: []*wireExercise{
				{ExerciseID: "e1", Sets: []*domain.LoggedSet{{Weight: 60, Reps: 10}}},
				nil,
				{ExerciseID: "e2"}, // missing sets array
			},
		},
	}

	doc := sanitizeUserDocument(wire)

	require.NotNil(t, doc.ActiveSession)
	require.Len(t, doc.ActiveSession.Exercises, 2)
	assert.Len(t, doc.ActiveSession.Exercises[0].Sets, 1)
	require.NotNil(t, doc.ActiveSession.Exercises[1].Sets)
	assert.Empty(t, doc.ActiveSession.Exercises[1].Sets)
}

func TestSanitizeRoutineExerciseList(t *testing.T) {
	wire := &wireDocument{
		WorkoutRoutines: []*wireRoutine{
			nil,
			{
				ID:   "r1",
				Name: "Push",
				Exercises: []*domain.ExerciseDefinition{
					nil,
					{ID: "e1", Name: "Bench", Sets: 3, Reps: "8"},
				},
			},
			{ID: "r2", Name: "No exercises"}, // nil exercise list
		},
	}

	doc := sanitizeUserDocument(wire)

	require.Len(t, doc.WorkoutRoutines, 2)
	require.Len(t, doc.WorkoutRoutines[0].Exercises, 1)
	assert.Equal(t, "e1", doc.WorkoutRoutines[0].Exercises[0].ID)
	require.NotNil(t, doc.WorkoutRoutines[1].Exercises)
	assert.Empty(t, doc.WorkoutRoutines[1].Exercises)
}

func TestSanitizeKeepsGoalsAndLogs(t *testing.T) {
	goals := domain.DefaultGoals()
	goals.Kcal.Value = 1500
	logs := map[string]domain.DailyLog{
		"2024-05-01": {domain.MealLunch: {{Name: "Rice", Kcal: 400}}},
	}
	wire := &wireDocument{Goals: &goals, DailyLogs: logs}

	doc := sanitizeUserDocument(wire)

	assert.Equal(t, goals, doc.Goals)
	assert.Equal(t, logs, doc.DailyLogs)
}
