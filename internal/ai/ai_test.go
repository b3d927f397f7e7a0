package ai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diario/wellness-app/internal/domain"
)

func TestSanitizeFoodItems(t *testing.T) {
	items := SanitizeFoodItems([]domain.FoodItem{
		{Name: "", Kcal: -50, Carbs: 10, Protein: -1, Fats: 3, Fiber: 2},
		{Name: "Apple", Kcal: 52, Carbs: 14, Protein: 0.3, Fats: 0.2, Fiber: 2.4},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "Unknown food", items[0].Name)
	assert.Zero(t, items[0].Kcal)
	assert.Zero(t, items[0].Protein)
	assert.Equal(t, 10.0, items[0].Carbs)
	assert.Equal(t, "Apple", items[1].Name)
	assert.Equal(t, 52.0, items[1].Kcal)
}

func TestSanitizeRoutines(t *testing.T) {
	var n int
	newID := func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}

	routines := SanitizeRoutines([]domain.WorkoutRoutine{
		{Name: ""}, // dropped: unusable without a name
		{
			Name:     "Generated Push",
			IsPreset: true, // generated routines are never presets
			Exercises: []domain.ExerciseDefinition{
				{Name: "Bench", Sets: 0, Reps: "8"},
			},
		},
		{Name: "No exercise list"},
	}, newID)

	require.Len(t, routines, 2)

	push := routines[0]
	assert.Equal(t, "gen-1", push.ID)
	assert.False(t, push.IsPreset)
	require.Len(t, push.Exercises, 1)
	assert.Equal(t, "gen-2", push.Exercises[0].ID)
	assert.Equal(t, 1, push.Exercises[0].Sets)

	require.NotNil(t, routines[1].Exercises)
	assert.Empty(t, routines[1].Exercises)
}
