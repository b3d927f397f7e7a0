package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"diario/wellness-app/internal/ai"
	"diario/wellness-app/internal/data"
	"diario/wellness-app/internal/domain"
	"diario/wellness-app/internal/remote"
	"diario/wellness-app/internal/storage"
)

// --- Error Definitions ---
var (
	ErrSyncDisabled    = errors.New("remote sync is not configured")
	ErrBackupDisabled  = errors.New("snapshot backup is not configured")
	ErrAnalysisFailed  = errors.New("ai analysis failed")
	ErrRoutineNotFound = errors.New("routine not found")
	ErrNoActiveSession = errors.New("no active workout session")
)

// WellnessService orchestrates the durable local layer, the best-effort
// remote sync layer, snapshot backups, and the AI analysis boundary.
// Every write goes to the local store first; remote failures degrade to
// local-only operation and never fail the caller.
type WellnessService interface {
	// Bootstrap runs the one-time migration, loads the aggregate state, and
	// reconciles a stale active session left behind by a crash mid-finish.
	Bootstrap(ctx context.Context) (*domain.AppState, error)

	SaveTheme(ctx context.Context, theme domain.Theme) error
	SaveView(ctx context.Context, view domain.View) error
	SaveGoals(ctx context.Context, goals domain.NutritionGoals) error

	SaveDailyLog(ctx context.Context, date string, dayLog domain.DailyLog) error

	SaveRoutines(ctx context.Context, routines []domain.WorkoutRoutine) error
	DeleteRoutine(ctx context.Context, id string) error

	StartWorkout(ctx context.Context, routine domain.WorkoutRoutine) (*domain.WorkoutSession, error)
	UpdateActiveSession(ctx context.Context, session *domain.WorkoutSession) error
	FinishWorkout(ctx context.Context, session domain.WorkoutSession) error
	UpdateHistorySession(ctx context.Context, session domain.WorkoutSession) error
	DeleteHistorySession(ctx context.Context, id string) error

	SaveMeasurement(ctx context.Context, m domain.BodyMeasurement) error
	DeleteMeasurement(ctx context.Context, date string) error

	// Engage turns on remote sync for the given user and returns the
	// sanitized remote document for the caller to merge.
	Engage(ctx context.Context, userID string) (*remote.UserDocument, error)
	Disengage()

	// Backup uploads a JSON snapshot of the aggregate state and returns the
	// object key it was stored under.
	Backup(ctx context.Context) (string, error)
	// RestoreBackup downloads the snapshot stored under objectKey, replaces
	// the local state with its contents, and returns the restored state.
	RestoreBackup(ctx context.Context, objectKey string) (*domain.AppState, error)
	// DeleteBackup removes one snapshot object.
	DeleteBackup(ctx context.Context, objectKey string) error

	// AnalyzeMeal asks the AI service to break a meal description into food
	// items, sanitizes the result, and appends it to the given day's slot.
	AnalyzeMeal(ctx context.Context, date string, meal domain.MealType, description string) ([]domain.FoodItem, error)
	// ImportRoutines asks the AI service for routines matching a goal,
	// sanitizes them, and appends them to the user's routine list.
	ImportRoutines(ctx context.Context, goal string) ([]domain.WorkoutRoutine, error)
	// AnalyzeProgress asks the AI service for a free-text summary of the
	// user's recent training and nutrition data.
	AnalyzeProgress(ctx context.Context) (string, error)
}

// wellnessService implements the WellnessService interface.
type wellnessService struct {
	local     *data.Service
	remote    *remote.Service // nil when sync is not configured
	snapshots storage.SnapshotStorage
	analyzer  ai.Analyzer

	// userID is written by Engage/Disengage while concurrent request
	// handlers read it through pushRemote and Backup.
	mu     sync.RWMutex
	userID string // non-empty while sync is engaged
}

// NewWellnessService creates the orchestration layer. remoteSvc, snapshots
// and analyzer may each be nil; the corresponding features report their
// disabled state instead of failing at construction.
func NewWellnessService(local *data.Service, remoteSvc *remote.Service, snapshots storage.SnapshotStorage, analyzer ai.Analyzer) WellnessService {
	return &wellnessService{
		local:     local,
		remote:    remoteSvc,
		snapshots: snapshots,
		analyzer:  analyzer,
	}
}

func (s *wellnessService) Bootstrap(ctx context.Context) (*domain.AppState, error) {
	if err := s.local.Migrate(ctx); err != nil {
		// Migration failures are not surfaced to the user; the app proceeds
		// with whatever was migrated and retries on the next launch.
		log.Printf("ERROR: Migration did not complete: %v", err)
	}
	state, err := s.local.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	// A crash between "write history" and "clear active slot" leaves the
	// finished session in both places. History is authoritative: discard an
	// active session whose id already appears there.
	if state.ActiveSession != nil {
		for _, done := range state.WorkoutHistory {
			if done.ID == state.ActiveSession.ID {
				log.Printf("Discarding stale active session %s already present in history", done.ID)
				if err := s.local.SaveActiveSession(ctx, nil); err != nil {
					return nil, err
				}
				state.ActiveSession = nil
				break
			}
		}
	}
	return state, nil
}

func (s *wellnessService) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.local.SaveTheme(ctx, theme)
}

func (s *wellnessService) SaveView(ctx context.Context, view domain.View) error {
	return s.local.SaveView(ctx, view)
}

func (s *wellnessService) SaveGoals(ctx context.Context, goals domain.NutritionGoals) error {
	if err := s.local.SaveGoals(ctx, goals); err != nil {
		return err
	}
	s.pushRemote(ctx, "goals", func(userID string) error {
		return s.remote.UpdateGoals(ctx, userID, goals)
	})
	return nil
}

func (s *wellnessService) SaveDailyLog(ctx context.Context, date string, dayLog domain.DailyLog) error {
	if err := s.local.SaveDailyLog(ctx, date, dayLog); err != nil {
		return err
	}
	s.pushRemote(ctx, "dailyLogs", func(userID string) error {
		state, err := s.local.LoadAll(ctx)
		if err != nil {
			return err
		}
		return s.remote.UpdateDailyLogs(ctx, userID, state.DailyLogs)
	})
	return nil
}

func (s *wellnessService) SaveRoutines(ctx context.Context, routines []domain.WorkoutRoutine) error {
	// Presets are seed data shown alongside user routines; they are never
	// written to the store.
	own := make([]domain.WorkoutRoutine, 0, len(routines))
	for _, r := range routines {
		if !r.IsPreset {
			own = append(own, r)
		}
	}
	if err := s.local.SaveRoutines(ctx, own); err != nil {
		return err
	}
	s.pushRemote(ctx, "routines", func(userID string) error {
		return s.remote.UpdateRoutines(ctx, userID, own)
	})
	return nil
}

func (s *wellnessService) DeleteRoutine(ctx context.Context, id string) error {
	if err := s.local.DeleteRoutine(ctx, id); err != nil {
		return err
	}
	s.pushRemote(ctx, "routines", func(userID string) error {
		state, err := s.local.LoadAll(ctx)
		if err != nil {
			return err
		}
		return s.remote.UpdateRoutines(ctx, userID, state.WorkoutRoutines)
	})
	return nil
}

func (s *wellnessService) StartWorkout(ctx context.Context, routine domain.WorkoutRoutine) (*domain.WorkoutSession, error) {
	session := domain.NewSessionFromRoutine(routine, time.Now())
	if err := s.local.SaveActiveSession(ctx, session); err != nil {
		return nil, err
	}
	s.pushRemote(ctx, "activeSession", func(userID string) error {
		return s.remote.UpdateActiveSession(ctx, userID, session)
	})
	return session, nil
}

func (s *wellnessService) UpdateActiveSession(ctx context.Context, session *domain.WorkoutSession) error {
	if err := s.local.SaveActiveSession(ctx, session); err != nil {
		return err
	}
	s.pushRemote(ctx, "activeSession", func(userID string) error {
		return s.remote.UpdateActiveSession(ctx, userID, session)
	})
	return nil
}

// FinishWorkout moves the active session into history. Locally this is two
// sequential durable writes, history first; Bootstrap reconciles the
// window between them. Remotely it is a single atomic transition.
func (s *wellnessService) FinishWorkout(ctx context.Context, session domain.WorkoutSession) error {
	if err := s.local.UpsertHistorySession(ctx, session); err != nil {
		return err
	}
	if err := s.local.SaveActiveSession(ctx, nil); err != nil {
		return err
	}
	s.pushRemote(ctx, "history", func(userID string) error {
		return s.remote.AppendHistorySession(ctx, userID, session)
	})
	return nil
}

func (s *wellnessService) UpdateHistorySession(ctx context.Context, session domain.WorkoutSession) error {
	return s.local.UpsertHistorySession(ctx, session)
}

func (s *wellnessService) DeleteHistorySession(ctx context.Context, id string) error {
	return s.local.DeleteHistorySession(ctx, id)
}

func (s *wellnessService) SaveMeasurement(ctx context.Context, m domain.BodyMeasurement) error {
	return s.local.UpsertMeasurement(ctx, m)
}

func (s *wellnessService) DeleteMeasurement(ctx context.Context, date string) error {
	return s.local.DeleteMeasurement(ctx, date)
}

func (s *wellnessService) Engage(ctx context.Context, userID string) (*remote.UserDocument, error) {
	if s.remote == nil {
		return nil, ErrSyncDisabled
	}
	doc, err := s.remote.FetchOrInitialize(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
	log.Printf("Remote sync engaged for user %s", userID)
	return doc, nil
}

func (s *wellnessService) Disengage() {
	s.mu.Lock()
	s.userID = ""
	s.mu.Unlock()
}

// engagedUser returns the engaged user id, or "" when sync is off.
func (s *wellnessService) engagedUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *wellnessService) Backup(ctx context.Context) (string, error) {
	if s.snapshots == nil {
		return "", ErrBackupDisabled
	}
	state, err := s.local.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	blob, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	owner := s.engagedUser()
	if owner == "" {
		owner = "local"
	}
	key := fmt.Sprintf("snapshots/%s/%s.json", owner, time.Now().UTC().Format("2006-01-02T15-04-05"))
	if err := s.snapshots.UploadSnapshot(ctx, key, blob); err != nil {
		return "", err
	}
	return key, nil
}

// RestoreBackup is the inverse of Backup: the snapshot wholly replaces the
// local state, including records written since it was taken.
func (s *wellnessService) RestoreBackup(ctx context.Context, objectKey string) (*domain.AppState, error) {
	if s.snapshots == nil {
		return nil, ErrBackupDisabled
	}
	blob, err := s.snapshots.DownloadSnapshot(ctx, objectKey)
	if err != nil {
		return nil, err
	}
	var state domain.AppState
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", objectKey, err)
	}
	if err := s.local.RestoreState(ctx, &state); err != nil {
		return nil, err
	}
	log.Printf("Restored snapshot %s", objectKey)
	return &state, nil
}

func (s *wellnessService) DeleteBackup(ctx context.Context, objectKey string) error {
	if s.snapshots == nil {
		return ErrBackupDisabled
	}
	return s.snapshots.DeleteSnapshot(ctx, objectKey)
}

func (s *wellnessService) AnalyzeMeal(ctx context.Context, date string, meal domain.MealType, description string) ([]domain.FoodItem, error) {
	if s.analyzer == nil {
		return nil, ErrAnalysisFailed
	}
	items, err := s.analyzer.AnalyzeMeal(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	items = ai.SanitizeFoodItems(items)

	state, err := s.local.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	dayLog := state.DailyLogs[date]
	if dayLog == nil {
		dayLog = domain.DailyLog{}
	}
	dayLog[meal] = append(dayLog[meal], items...)
	if err := s.SaveDailyLog(ctx, date, dayLog); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *wellnessService) ImportRoutines(ctx context.Context, goal string) ([]domain.WorkoutRoutine, error) {
	if s.analyzer == nil {
		return nil, ErrAnalysisFailed
	}
	generated, err := s.analyzer.GenerateRoutines(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	generated = ai.SanitizeRoutines(generated, uuid.NewString)

	state, err := s.local.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.SaveRoutines(ctx, append(state.WorkoutRoutines, generated...)); err != nil {
		return nil, err
	}
	return generated, nil
}

func (s *wellnessService) AnalyzeProgress(ctx context.Context) (string, error) {
	if s.analyzer == nil {
		return "", ErrAnalysisFailed
	}
	state, err := s.local.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	summary, err := s.analyzer.AnalyzeProgress(ctx, state)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	return summary, nil
}

// pushRemote runs one remote update when sync is engaged. Remote sync is
// best effort: failures are logged and swallowed so local operation is
// never interrupted.
func (s *wellnessService) pushRemote(ctx context.Context, what string, op func(userID string) error) {
	if s.remote == nil {
		return
	}
	userID := s.engagedUser()
	if userID == "" {
		return
	}
	if err := op(userID); err != nil {
		log.Printf("ERROR: Remote sync of %s failed, continuing local-only: %v", what, err)
	}
}
