package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLogTotals(t *testing.T) {
	dayLog := DailyLog{
		MealBreakfast: {
			{Name: "Oats", Kcal: 350, Carbs: 60, Protein: 12, Fats: 6, Fiber: 8},
		},
		MealLunch: {
			{Name: "Rice", Kcal: 400, Carbs: 80, Protein: 8, Fats: 2, Fiber: 2},
			{Name: "Chicken", Kcal: 250, Carbs: 0, Protein: 40, Fats: 9, Fiber: 0},
		},
	}

	totals := dayLog.Totals()
	assert.Equal(t, 1000.0, totals.Kcal)
	assert.Equal(t, 140.0, totals.Carbs)
	assert.Equal(t, 60.0, totals.Protein)
	assert.Equal(t, 17.0, totals.Fats)
	assert.Equal(t, 10.0, totals.Fiber)
}

func TestEmptyLogTotals(t *testing.T) {
	assert.Zero(t, DailyLog{}.Totals())
}

func TestNewSessionFromRoutine(t *testing.T) {
	routine := WorkoutRoutine{
		ID:   "r1",
		Name: "Push",
		Exercises: []ExerciseDefinition{
			{ID: "e1", Name: "Bench", Sets: 3, Reps: "8-12", Notes: "pause reps"},
			{ID: "e2", Name: "Dips", Sets: 2, Reps: "AMRAP"},
		},
	}

	date := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	session := NewSessionFromRoutine(routine, date)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "2024-06-01", session.Date)
	assert.Equal(t, "r1", session.RoutineID)
	assert.Equal(t, "Push", session.RoutineName)
	require.Len(t, session.Exercises, 2)

	first := session.Exercises[0]
	assert.Equal(t, "e1", first.ExerciseID)
	assert.Equal(t, 3, first.TargetSets)
	assert.Equal(t, "8-12", first.TargetReps)
	require.Len(t, first.Sets, 3)
	for _, set := range first.Sets {
		assert.Nil(t, set)
	}
	assert.Len(t, session.Exercises[1].Sets, 2)
}

func TestSessionIDsAreUnique(t *testing.T) {
	routine := WorkoutRoutine{ID: "r1", Name: "Push"}
	a := NewSessionFromRoutine(routine, time.Now())
	b := NewSessionFromRoutine(routine, time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPresetRoutines(t *testing.T) {
	presets := PresetRoutines()
	require.NotEmpty(t, presets)

	seen := map[string]bool{}
	for _, p := range presets {
		assert.True(t, p.IsPreset, "%s must be marked preset", p.Name)
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate preset id %s", p.ID)
		seen[p.ID] = true
		for _, ex := range p.Exercises {
			assert.NotEmpty(t, ex.ID)
			assert.Greater(t, ex.Sets, 0)
		}
	}
}
