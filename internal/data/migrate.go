package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"diario/wellness-app/internal/domain"
)

// ErrParse marks a legacy value that could not be decoded. The migration
// skips the offending key and carries on; one corrupt blob must not abort
// the rest.
var ErrParse = errors.New("legacy value parse failed")

// migrationDoneKey is the completion flag, stored in the legacy namespace
// itself so its presence survives independently of the structured
// collections.
const migrationDoneKey = "migration-to-db-complete"

// legacyKeys lists the flat namespace of pre-migration app versions, in the
// order they are migrated.
var legacyKeys = []string{
	"theme",
	"view",
	"goals",
	"activeSession",
	"dailyLogs",
	"workoutRoutines",
	"workoutHistory",
	"bodyMeasurements",
}

// Migrate performs the one-time transfer of legacy flat-namespace state into
// the structured collections. It is idempotent: once the completion flag is
// set, Migrate returns immediately. A crash before the flag is set simply
// re-runs the migration on the next launch; every write is an upsert, so
// partial prior progress is harmless.
func (s *Service) Migrate(ctx context.Context) error {
	legacy := s.store.Legacy()

	if _, done, err := legacy.Get(ctx, migrationDoneKey); err != nil {
		return err
	} else if done {
		return nil
	}

	log.Println("Starting migration from legacy namespace to structured collections...")

	for _, key := range legacyKeys {
		raw, found, err := legacy.Get(ctx, key)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		if err := s.migrateKey(ctx, key, raw); err != nil {
			if errors.Is(err, ErrParse) {
				log.Printf("ERROR: Skipping legacy key %q: %v", key, err)
				continue
			}
			// Storage failure: leave the flag unset so the next launch retries.
			return err
		}
	}

	if err := legacy.Set(ctx, migrationDoneKey, "true"); err != nil {
		return err
	}
	log.Println("Migration completed.")
	return nil
}

// migrateKey decodes one legacy blob and writes it into its structured home:
// scalar settings land in the keyval collection, the daily-logs map expands
// into one record per date, and the three array-valued keys expand into one
// record per element.
func (s *Service) migrateKey(ctx context.Context, key, raw string) error {
	switch key {
	case "theme":
		var theme domain.Theme
		if err := json.Unmarshal([]byte(raw), &theme); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		return s.SaveTheme(ctx, theme)

	case "view":
		var view domain.View
		if err := json.Unmarshal([]byte(raw), &view); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		return s.SaveView(ctx, view)

	case "goals":
		var goals domain.NutritionGoals
		if err := json.Unmarshal([]byte(raw), &goals); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		return s.SaveGoals(ctx, goals)

	case "activeSession":
		var session *domain.WorkoutSession
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		return s.SaveActiveSession(ctx, session)

	case "dailyLogs":
		var logs map[string]domain.DailyLog
		if err := json.Unmarshal([]byte(raw), &logs); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		for date, dayLog := range logs {
			if err := s.SaveDailyLog(ctx, date, dayLog); err != nil {
				return err
			}
		}
		return nil

	case "workoutRoutines":
		var routines []domain.WorkoutRoutine
		if err := json.Unmarshal([]byte(raw), &routines); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		for _, r := range routines {
			if err := s.store.Put(ctx, colRoutines, r); err != nil {
				return err
			}
		}
		return nil

	case "workoutHistory":
		var sessions []domain.WorkoutSession
		if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		for _, session := range sessions {
			if err := s.UpsertHistorySession(ctx, session); err != nil {
				return err
			}
		}
		return nil

	case "bodyMeasurements":
		var measurements []domain.BodyMeasurement
		if err := json.Unmarshal([]byte(raw), &measurements); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		for _, m := range measurements {
			if err := s.UpsertMeasurement(ctx, m); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}
