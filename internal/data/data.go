// Package data is the typed access layer over the local store: one
// entity-shaped operation per user action, plus the aggregate load used at
// startup and the one-time legacy migration.
package data

import (
	"context"
	"encoding/json"
	"fmt"

	"diario/wellness-app/internal/domain"
	"diario/wellness-app/internal/store"
)

// Collection names and the fixed keys of the keyval collection. These are
// private to the data layer; nothing above it addresses collections directly.
const (
	colKeyval       = "keyval"
	colDailyLogs    = "dailyLogs"
	colRoutines     = "workoutRoutines"
	colHistory      = "workoutHistory"
	colMeasurements = "bodyMeasurements"

	keyTheme         = "theme"
	keyView          = "view"
	keyGoals         = "goals"
	keyActiveSession = "activeSession"
)

// Collections declares the structured store layout. The composition root
// passes this to store.Open.
func Collections() []store.Collection {
	return []store.Collection{
		{Name: colKeyval, KeyField: "key"},
		{Name: colDailyLogs, KeyField: "date"},
		{Name: colRoutines, KeyField: "id"},
		{Name: colHistory, KeyField: "id"},
		{Name: colMeasurements, KeyField: "date"},
	}
}

// Service wraps the local store with entity-shaped reads and writes.
type Service struct {
	store *store.Store
}

// NewService creates the local data access layer over an opened store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// settingRecord is the envelope for scalar settings in the keyval collection.
type settingRecord struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// dailyLogRecord tags one day's log with its date key.
type dailyLogRecord struct {
	Date string          `json:"date"`
	Log  domain.DailyLog `json:"log"`
}

// LoadAll fetches the complete aggregate state: settings out of the keyval
// collection plus every entity collection. Missing settings fall back to
// defaults (theme=dark, view=home, default goals, no active session). This
// is the sole bulk-read entry point, called once at startup.
func (s *Service) LoadAll(ctx context.Context) (*domain.AppState, error) {
	state := &domain.AppState{
		Theme:            domain.DefaultTheme,
		View:             domain.DefaultView,
		Goals:            domain.DefaultGoals(),
		DailyLogs:        map[string]domain.DailyLog{},
		WorkoutRoutines:  []domain.WorkoutRoutine{},
		WorkoutHistory:   []domain.WorkoutSession{},
		BodyMeasurements: []domain.BodyMeasurement{},
	}

	var theme struct {
		Value domain.Theme `json:"value"`
	}
	if found, err := s.store.Get(ctx, colKeyval, keyTheme, &theme); err != nil {
		return nil, err
	} else if found && theme.Value != "" {
		state.Theme = theme.Value
	}

	var view struct {
		Value domain.View `json:"value"`
	}
	if found, err := s.store.Get(ctx, colKeyval, keyView, &view); err != nil {
		return nil, err
	} else if found && view.Value != "" {
		state.View = view.Value
	}

	var goals struct {
		Value *domain.NutritionGoals `json:"value"`
	}
	if found, err := s.store.Get(ctx, colKeyval, keyGoals, &goals); err != nil {
		return nil, err
	} else if found && goals.Value != nil {
		state.Goals = *goals.Value
	}

	var active struct {
		Value *domain.WorkoutSession `json:"value"`
	}
	if found, err := s.store.Get(ctx, colKeyval, keyActiveSession, &active); err != nil {
		return nil, err
	} else if found {
		state.ActiveSession = active.Value
	}

	logs, err := s.store.GetAll(ctx, colDailyLogs)
	if err != nil {
		return nil, err
	}
	for _, raw := range logs {
		var rec dailyLogRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode daily log record: %w", err)
		}
		state.DailyLogs[rec.Date] = rec.Log
	}

	if err := decodeAll(ctx, s.store, colRoutines, &state.WorkoutRoutines); err != nil {
		return nil, err
	}
	if err := decodeAll(ctx, s.store, colHistory, &state.WorkoutHistory); err != nil {
		return nil, err
	}
	if err := decodeAll(ctx, s.store, colMeasurements, &state.BodyMeasurements); err != nil {
		return nil, err
	}
	return state, nil
}

// decodeAll unmarshals every record of a collection into the slice at dest.
func decodeAll[T any](ctx context.Context, s *store.Store, collection string, dest *[]T) error {
	raws, err := s.GetAll(ctx, collection)
	if err != nil {
		return err
	}
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode %s record: %w", collection, err)
		}
		*dest = append(*dest, v)
	}
	return nil
}

// SaveTheme persists the display theme preference.
func (s *Service) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.store.Put(ctx, colKeyval, settingRecord{Key: keyTheme, Value: theme})
}

// SaveView persists the last-active view.
func (s *Service) SaveView(ctx context.Context, view domain.View) error {
	return s.store.Put(ctx, colKeyval, settingRecord{Key: keyView, Value: view})
}

// SaveGoals persists the full goal set.
func (s *Service) SaveGoals(ctx context.Context, goals domain.NutritionGoals) error {
	return s.store.Put(ctx, colKeyval, settingRecord{Key: keyGoals, Value: goals})
}

// SaveActiveSession persists the in-progress session slot. Passing nil
// clears the slot.
func (s *Service) SaveActiveSession(ctx context.Context, session *domain.WorkoutSession) error {
	return s.store.Put(ctx, colKeyval, settingRecord{Key: keyActiveSession, Value: session})
}

// SaveDailyLog replaces the full meal-slot map for one date. Callers pass
// the complete new log; this is a record replace, not a field patch.
func (s *Service) SaveDailyLog(ctx context.Context, date string, log domain.DailyLog) error {
	return s.store.Put(ctx, colDailyLogs, dailyLogRecord{Date: date, Log: log})
}

// SaveRoutines replaces the entire routines collection with the given list.
// Routine edits are computed client-side over the full list, so the simple
// contract is clear-then-insert.
func (s *Service) SaveRoutines(ctx context.Context, routines []domain.WorkoutRoutine) error {
	if err := s.store.Clear(ctx, colRoutines); err != nil {
		return err
	}
	for _, r := range routines {
		if err := s.store.Put(ctx, colRoutines, r); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRoutine removes a single routine by id.
func (s *Service) DeleteRoutine(ctx context.Context, id string) error {
	return s.store.Delete(ctx, colRoutines, id)
}

// UpsertHistorySession inserts or overwrites one session in history.
func (s *Service) UpsertHistorySession(ctx context.Context, session domain.WorkoutSession) error {
	return s.store.Put(ctx, colHistory, session)
}

// DeleteHistorySession removes one session from history by id.
func (s *Service) DeleteHistorySession(ctx context.Context, id string) error {
	return s.store.Delete(ctx, colHistory, id)
}

// UpsertMeasurement saves a body measurement, overwriting any measurement
// already recorded for the same date.
func (s *Service) UpsertMeasurement(ctx context.Context, m domain.BodyMeasurement) error {
	return s.store.Put(ctx, colMeasurements, m)
}

// DeleteMeasurement removes the measurement for a date; absent dates are a
// no-op.
func (s *Service) DeleteMeasurement(ctx context.Context, date string) error {
	return s.store.Delete(ctx, colMeasurements, date)
}

// RestoreState replaces the entire local contents with a snapshot: settings
// are overwritten and every entity collection is cleared and refilled, so
// records absent from the snapshot do not survive the restore.
func (s *Service) RestoreState(ctx context.Context, state *domain.AppState) error {
	if err := s.SaveTheme(ctx, state.Theme); err != nil {
		return err
	}
	if err := s.SaveView(ctx, state.View); err != nil {
		return err
	}
	if err := s.SaveGoals(ctx, state.Goals); err != nil {
		return err
	}
	if err := s.SaveActiveSession(ctx, state.ActiveSession); err != nil {
		return err
	}

	if err := s.store.Clear(ctx, colDailyLogs); err != nil {
		return err
	}
	for date, dayLog := range state.DailyLogs {
		if err := s.SaveDailyLog(ctx, date, dayLog); err != nil {
			return err
		}
	}

	if err := s.SaveRoutines(ctx, state.WorkoutRoutines); err != nil {
		return err
	}

	if err := s.store.Clear(ctx, colHistory); err != nil {
		return err
	}
	for _, session := range state.WorkoutHistory {
		if err := s.UpsertHistorySession(ctx, session); err != nil {
			return err
		}
	}

	if err := s.store.Clear(ctx, colMeasurements); err != nil {
		return err
	}
	for _, m := range state.BodyMeasurements {
		if err := s.UpsertMeasurement(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
