package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diario/wellness-app/internal/domain"
	"diario/wellness-app/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "wellness.db"), Collections())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewService(s)
}

func TestLoadAllFreshInstallDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeDark, state.Theme)
	assert.Equal(t, domain.ViewHome, state.View)
	assert.Equal(t, domain.DefaultGoals(), state.Goals)
	assert.Nil(t, state.ActiveSession)
	assert.Empty(t, state.DailyLogs)
	assert.Empty(t, state.WorkoutRoutines)
	assert.Empty(t, state.WorkoutHistory)
	assert.Empty(t, state.BodyMeasurements)
}

func TestLoadAllRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	goals := domain.DefaultGoals()
	goals.Kcal.Value = 1800
	goals.WorkoutGoalDescription = "get stronger"
	routine := domain.WorkoutRoutine{
		ID:       "r1",
		Name:     "Push Day",
		Category: domain.CategoryStrength,
		Exercises: []domain.ExerciseDefinition{
			{ID: "e1", Name: "Bench Press", Sets: 3, Reps: "8-12"},
		},
	}
	session := domain.WorkoutSession{
		ID: "s1", Date: "2024-06-02", RoutineID: "r1", RoutineName: "Push Day",
		Exercises: []domain.LoggedExercise{{
			ExerciseID: "e1", Name: "Bench Press", TargetSets: 3, TargetReps: "8-12",
			Sets: []*domain.LoggedSet{{Weight: 60, Reps: 10}, nil, nil},
		}},
		Duration: 3600,
	}
	active := domain.WorkoutSession{ID: "s2", Date: "2024-06-03", RoutineID: "r1", RoutineName: "Push Day"}
	bodyFat := 18.5
	measurement := domain.BodyMeasurement{Date: "2024-06-02", Weight: 80.5, BodyFat: &bodyFat}
	dayLog := domain.DailyLog{
		domain.MealBreakfast: {{Name: "Oats", Kcal: 350, Carbs: 60, Protein: 12, Fats: 6, Fiber: 8}},
	}

	require.NoError(t, svc.SaveTheme(ctx, domain.ThemeLight))
	require.NoError(t, svc.SaveView(ctx, domain.ViewMeals))
	require.NoError(t, svc.SaveGoals(ctx, goals))
	require.NoError(t, svc.SaveActiveSession(ctx, &active))
	require.NoError(t, svc.SaveDailyLog(ctx, "2024-06-02", dayLog))
	require.NoError(t, svc.SaveRoutines(ctx, []domain.WorkoutRoutine{routine}))
	require.NoError(t, svc.UpsertHistorySession(ctx, session))
	require.NoError(t, svc.UpsertMeasurement(ctx, measurement))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeLight, state.Theme)
	assert.Equal(t, domain.ViewMeals, state.View)
	assert.Equal(t, goals, state.Goals)
	require.NotNil(t, state.ActiveSession)
	assert.Equal(t, active.ID, state.ActiveSession.ID)
	assert.Equal(t, dayLog, state.DailyLogs["2024-06-02"])
	assert.Equal(t, []domain.WorkoutRoutine{routine}, state.WorkoutRoutines)
	assert.Equal(t, []domain.WorkoutSession{session}, state.WorkoutHistory)
	assert.Equal(t, []domain.BodyMeasurement{measurement}, state.BodyMeasurements)
}

func TestSaveDailyLogUpserts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first := domain.DailyLog{
		domain.MealBreakfast: {{Name: "Toast", Kcal: 200}},
	}
	require.NoError(t, svc.SaveDailyLog(ctx, "2024-06-01", first))

	second := domain.DailyLog{
		domain.MealBreakfast: {{Name: "Toast", Kcal: 200}},
		domain.MealLunch:     {{Name: "Pasta", Kcal: 500}},
	}
	require.NoError(t, svc.SaveDailyLog(ctx, "2024-06-01", second))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, state.DailyLogs, 1)
	assert.Equal(t, second, state.DailyLogs["2024-06-01"])
	assert.Equal(t, 700.0, state.DailyLogs["2024-06-01"].Totals().Kcal)
}

func TestMeasurementAtMostOnePerDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.UpsertMeasurement(ctx, domain.BodyMeasurement{Date: "2024-06-01", Weight: 82}))
	require.NoError(t, svc.UpsertMeasurement(ctx, domain.BodyMeasurement{Date: "2024-06-01", Weight: 81.5}))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, state.BodyMeasurements, 1)
	assert.Equal(t, 81.5, state.BodyMeasurements[0].Weight)
}

func TestDeleteMeasurementAbsentDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.UpsertMeasurement(ctx, domain.BodyMeasurement{Date: "2024-06-01", Weight: 82}))
	require.NoError(t, svc.DeleteMeasurement(ctx, "2024-07-15"))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, state.BodyMeasurements, 1)
}

func TestSaveRoutinesReplacesCollection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.SaveRoutines(ctx, []domain.WorkoutRoutine{
		{ID: "r1", Name: "Old A"},
		{ID: "r2", Name: "Old B"},
	}))
	require.NoError(t, svc.SaveRoutines(ctx, []domain.WorkoutRoutine{
		{ID: "r3", Name: "New"},
	}))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, state.WorkoutRoutines, 1)
	assert.Equal(t, "r3", state.WorkoutRoutines[0].ID)
}

func TestDeleteHistorySession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.UpsertHistorySession(ctx, domain.WorkoutSession{ID: "s1", Date: "2024-06-01"}))
	require.NoError(t, svc.UpsertHistorySession(ctx, domain.WorkoutSession{ID: "s2", Date: "2024-06-02"}))
	require.NoError(t, svc.DeleteHistorySession(ctx, "s1"))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, state.WorkoutHistory, 1)
	assert.Equal(t, "s2", state.WorkoutHistory[0].ID)
}

func TestSaveActiveSessionNilClearsSlot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.SaveActiveSession(ctx, &domain.WorkoutSession{ID: "s1"}))
	require.NoError(t, svc.SaveActiveSession(ctx, nil))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.ActiveSession)
}

func TestRestoreStateReplacesCollections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.SaveTheme(ctx, domain.ThemeLight))
	require.NoError(t, svc.SaveDailyLog(ctx, "2024-05-01", domain.DailyLog{
		domain.MealBreakfast: {{Name: "Oats", Kcal: 300}},
	}))
	require.NoError(t, svc.SaveRoutines(ctx, []domain.WorkoutRoutine{{ID: "old", Name: "Old Plan"}}))
	require.NoError(t, svc.UpsertHistorySession(ctx, domain.WorkoutSession{ID: "old-s", Date: "2024-05-01"}))
	require.NoError(t, svc.UpsertMeasurement(ctx, domain.BodyMeasurement{Date: "2024-05-01", Weight: 82}))

	goals := domain.DefaultGoals()
	goals.Protein.Value = 150
	snapshot := &domain.AppState{
		Theme: domain.ThemeDark,
		View:  domain.ViewAnalysis,
		Goals: goals,
		DailyLogs: map[string]domain.DailyLog{
			"2024-06-01": {domain.MealLunch: {{Name: "Salad", Kcal: 100}}},
		},
		WorkoutRoutines:  []domain.WorkoutRoutine{{ID: "new", Name: "New Plan"}},
		WorkoutHistory:   []domain.WorkoutSession{{ID: "new-s", Date: "2024-06-01"}},
		BodyMeasurements: []domain.BodyMeasurement{{Date: "2024-06-01", Weight: 80}},
	}
	require.NoError(t, svc.RestoreState(ctx, snapshot))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, state.Theme)
	assert.Equal(t, domain.ViewAnalysis, state.View)
	assert.Equal(t, 150.0, state.Goals.Protein.Value)
	assert.Nil(t, state.ActiveSession)

	// Pre-restore records are gone, not merged.
	require.Len(t, state.DailyLogs, 1)
	assert.Contains(t, state.DailyLogs, "2024-06-01")
	require.Len(t, state.WorkoutRoutines, 1)
	assert.Equal(t, "new", state.WorkoutRoutines[0].ID)
	require.Len(t, state.WorkoutHistory, 1)
	assert.Equal(t, "new-s", state.WorkoutHistory[0].ID)
	require.Len(t, state.BodyMeasurements, 1)
	assert.Equal(t, "2024-06-01", state.BodyMeasurements[0].Date)
}
