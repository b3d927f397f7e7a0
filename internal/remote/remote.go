// Package remote synchronizes the aggregate state with a per-user document
// in MongoDB. Sync is best effort: local persistence stays the source of
// truth and every caller degrades gracefully when these operations fail.
package remote

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"diario/wellness-app/internal/domain"
)

// Error constants for the remote sync layer.
var (
	ErrUnavailable = errors.New("remote store unreachable")
	ErrRejected    = errors.New("remote store rejected the write")
)

const userCollectionName = "users"

// UserDocument is the full per-user remote document. Field names match the
// remote schema written by every client of the account.
type UserDocument struct {
	Goals           domain.NutritionGoals      `bson:"goals" json:"goals"`
	WorkoutRoutines []domain.WorkoutRoutine    `bson:"workoutRoutines" json:"workoutRoutines"`
	WorkoutHistory  []domain.WorkoutSession    `bson:"workoutHistory" json:"workoutHistory"`
	ActiveSession   *domain.WorkoutSession     `bson:"activeSession" json:"activeSession"`
	DailyLogs       map[string]domain.DailyLog `bson:"dailyLogs" json:"dailyLogs"`
}

// initialUserDocument is the document created for a brand-new user.
func initialUserDocument() *UserDocument {
	return &UserDocument{
		Goals:           domain.DefaultGoals(),
		WorkoutRoutines: []domain.WorkoutRoutine{},
		WorkoutHistory:  []domain.WorkoutSession{},
		DailyLogs:       map[string]domain.DailyLog{},
	}
}

// Service implements the remote synchronization operations over the users
// collection.
type Service struct {
	collection *mongo.Collection
}

// NewService creates the remote sync layer over the given database.
func NewService(db *mongo.Database) *Service {
	return &Service{collection: db.Collection(userCollectionName)}
}

// FetchOrInitialize returns the user's document, creating it with defaults
// if it does not exist yet. Existing documents pass through sanitization:
// the remote store is schema-less and other writers may have left
// partially-written data, so nothing is trusted before it is repaired.
func (s *Service) FetchOrInitialize(ctx context.Context, userID string) (*UserDocument, error) {
	var wire wireDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&wire)
	if err == nil {
		return sanitizeUserDocument(&wire), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, classify(err)
	}

	doc := initialUserDocument()
	insert := bson.M{
		"_id":             userID,
		"goals":           doc.Goals,
		"workoutRoutines": doc.WorkoutRoutines,
		"workoutHistory":  doc.WorkoutHistory,
		"activeSession":   nil,
		"dailyLogs":       doc.DailyLogs,
	}
	if _, err := s.collection.InsertOne(ctx, insert); err != nil {
		return nil, classify(err)
	}
	return doc, nil
}

// UpdateGoals replaces only the goals field of the user document.
func (s *Service) UpdateGoals(ctx context.Context, userID string, goals domain.NutritionGoals) error {
	return s.setField(ctx, userID, "goals", goals)
}

// UpdateRoutines replaces only the routines array.
func (s *Service) UpdateRoutines(ctx context.Context, userID string, routines []domain.WorkoutRoutine) error {
	if routines == nil {
		routines = []domain.WorkoutRoutine{}
	}
	return s.setField(ctx, userID, "workoutRoutines", routines)
}

// UpdateActiveSession replaces only the active-session field; nil clears it.
func (s *Service) UpdateActiveSession(ctx context.Context, userID string, session *domain.WorkoutSession) error {
	return s.setField(ctx, userID, "activeSession", session)
}

// UpdateDailyLogs replaces only the date-keyed daily-logs map.
func (s *Service) UpdateDailyLogs(ctx context.Context, userID string, logs map[string]domain.DailyLog) error {
	if logs == nil {
		logs = map[string]domain.DailyLog{}
	}
	return s.setField(ctx, userID, "dailyLogs", logs)
}

// AppendHistorySession records a finished workout as a single remote state
// transition: one update appends the session to history and clears the
// active-session field, so no observer sees the workout both active and
// historical.
func (s *Service) AppendHistorySession(ctx context.Context, userID string, session domain.WorkoutSession) error {
	update := bson.M{
		"$push": bson.M{"workoutHistory": session},
		"$set":  bson.M{"activeSession": nil},
	}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return classify(err)
	}
	if result.MatchedCount == 0 {
		return ErrRejected
	}
	return nil
}

// setField performs a field-granular $set on the user document.
func (s *Service) setField(ctx context.Context, userID, field string, value any) error {
	update := bson.M{"$set": bson.M{field: value}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return classify(err)
	}
	if result.MatchedCount == 0 {
		return ErrRejected
	}
	return nil
}

// classify maps driver errors onto the two failure kinds callers care
// about: the server refused the write, or the server could not be reached.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && !cmdErr.HasErrorLabel("NetworkError") {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
