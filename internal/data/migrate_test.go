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

func newTestServiceWithStore(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "wellness.db"), Collections())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewService(s), s
}

func TestMigrateAllLegacyKeys(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestServiceWithStore(t)
	legacy := st.Legacy()

	require.NoError(t, legacy.Set(ctx, "theme", `"light"`))
	require.NoError(t, legacy.Set(ctx, "view", `"workout"`))
	require.NoError(t, legacy.Set(ctx, "goals",
		`{"kcal":{"value":1800,"enabled":true},"carbs":{"value":200,"enabled":true},"protein":{"value":120,"enabled":true},"fats":{"value":60,"enabled":false},"fiber":{"value":25,"enabled":true},"weeklyWorkouts":{"value":4,"enabled":true}}`))
	require.NoError(t, legacy.Set(ctx, "activeSession",
		`{"id":"s-active","date":"2024-05-30","routineId":"r1","routineName":"Push","exercises":[],"duration":0}`))
	require.NoError(t, legacy.Set(ctx, "dailyLogs",
		`{"2024-05-01":{"breakfast":[{"name":"Oats","kcal":350,"carbs":60,"protein":12,"fats":6,"fiber":8}]},"2024-05-02":{"lunch":[{"name":"Rice","kcal":400,"carbs":80,"protein":8,"fats":2,"fiber":2}]}}`))
	require.NoError(t, legacy.Set(ctx, "workoutRoutines",
		`[{"id":"r1","name":"Push","exercises":[{"id":"e1","name":"Bench","sets":3,"reps":"8"}]}]`))
	require.NoError(t, legacy.Set(ctx, "workoutHistory",
		`[{"id":"s1","date":"2024-05-20","routineId":"r1","routineName":"Push","exercises":[],"duration":1800}]`))
	require.NoError(t, legacy.Set(ctx, "bodyMeasurements",
		`[{"date":"2024-05-20","weight":80.5}]`))

	require.NoError(t, svc.Migrate(ctx))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeLight, state.Theme)
	assert.Equal(t, domain.ViewWorkout, state.View)
	assert.Equal(t, 1800.0, state.Goals.Kcal.Value)
	assert.False(t, state.Goals.Fats.Enabled)
	require.NotNil(t, state.ActiveSession)
	assert.Equal(t, "s-active", state.ActiveSession.ID)
	assert.Len(t, state.DailyLogs, 2)
	assert.Equal(t, "Oats", state.DailyLogs["2024-05-01"][domain.MealBreakfast][0].Name)
	require.Len(t, state.WorkoutRoutines, 1)
	assert.Equal(t, "r1", state.WorkoutRoutines[0].ID)
	require.Len(t, state.WorkoutHistory, 1)
	assert.Equal(t, "s1", state.WorkoutHistory[0].ID)
	require.Len(t, state.BodyMeasurements, 1)
	assert.Equal(t, 80.5, state.BodyMeasurements[0].Weight)

	// Completion flag is set in the legacy namespace.
	_, done, err := legacy.Get(ctx, "migration-to-db-complete")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestServiceWithStore(t)
	legacy := st.Legacy()

	require.NoError(t, legacy.Set(ctx, "theme", `"light"`))
	require.NoError(t, svc.Migrate(ctx))

	// Legacy data written after the first run must be ignored: the
	// completion flag short-circuits the second run entirely.
	require.NoError(t, legacy.Set(ctx, "theme", `"dark"`))
	require.NoError(t, legacy.Set(ctx, "bodyMeasurements", `[{"date":"2024-05-20","weight":99}]`))
	require.NoError(t, svc.Migrate(ctx))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, state.Theme)
	assert.Empty(t, state.BodyMeasurements)
}

func TestMigrateSkipsMissingKeys(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestServiceWithStore(t)
	legacy := st.Legacy()

	// Only one legacy key present; the rest are simply absent.
	require.NoError(t, legacy.Set(ctx, "theme", `"light"`))
	require.NoError(t, svc.Migrate(ctx))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, state.Theme)
	assert.Equal(t, domain.DefaultGoals(), state.Goals)
	assert.Empty(t, state.WorkoutRoutines)
}

func TestMigrateSkipsCorruptKeyAndContinues(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestServiceWithStore(t)
	legacy := st.Legacy()

	require.NoError(t, legacy.Set(ctx, "dailyLogs", `{not valid json`))
	require.NoError(t, legacy.Set(ctx, "bodyMeasurements", `[{"date":"2024-05-20","weight":80.5}]`))

	require.NoError(t, svc.Migrate(ctx))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.DailyLogs)
	require.Len(t, state.BodyMeasurements, 1)

	// The corrupt key does not block completion.
	_, done, err := legacy.Get(ctx, "migration-to-db-complete")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestMigrateToleratesPartialPriorRun(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestServiceWithStore(t)
	legacy := st.Legacy()

	// Simulate a crash after some collections were migrated but before the
	// flag was set: structured data exists, flag absent, legacy intact.
	require.NoError(t, legacy.Set(ctx, "bodyMeasurements", `[{"date":"2024-05-20","weight":80.5}]`))
	require.NoError(t, svc.UpsertMeasurement(ctx, domain.BodyMeasurement{Date: "2024-05-20", Weight: 80.5}))

	require.NoError(t, svc.Migrate(ctx))

	state, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	// Re-applying the upsert produced no duplicate.
	assert.Len(t, state.BodyMeasurements, 1)
}
