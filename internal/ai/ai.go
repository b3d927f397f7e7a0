// Package ai defines the boundary to the external meal/routine analysis
// service. The service itself is an external collaborator; this package owns
// only the interface and the defensive repair of whatever it returns, since
// generated records arrive with no schema guarantee.
package ai

import (
	"context"

	"diario/wellness-app/internal/domain"
)

// Analyzer is the external text/JSON generation service. Implementations
// call out over the network; tests substitute fakes.
type Analyzer interface {
	// AnalyzeMeal turns a natural-language meal description into food items.
	AnalyzeMeal(ctx context.Context, description string) ([]domain.FoodItem, error)
	// GenerateRoutines turns a natural-language training goal into routines.
	GenerateRoutines(ctx context.Context, goal string) ([]domain.WorkoutRoutine, error)
	// AnalyzeProgress returns a free-text analysis of the user's recent data.
	AnalyzeProgress(ctx context.Context, state *domain.AppState) (string, error)
}

// SanitizeFoodItems coerces generated food records to safe values before
// they are merged into local state: empty names get a placeholder and
// negative nutrition values are clamped to zero.
func SanitizeFoodItems(items []domain.FoodItem) []domain.FoodItem {
	out := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if item.Name == "" {
			item.Name = "Unknown food"
		}
		item.Kcal = clamp(item.Kcal)
		item.Carbs = clamp(item.Carbs)
		item.Protein = clamp(item.Protein)
		item.Fats = clamp(item.Fats)
		item.Fiber = clamp(item.Fiber)
		out = append(out, item)
	}
	return out
}

// SanitizeRoutines assigns missing ids, clamps set counts, and guarantees a
// non-nil exercise list on every generated routine. Generated routines are
// never presets.
func SanitizeRoutines(routines []domain.WorkoutRoutine, newID func() string) []domain.WorkoutRoutine {
	out := make([]domain.WorkoutRoutine, 0, len(routines))
	for _, r := range routines {
		if r.Name == "" {
			continue
		}
		if r.ID == "" {
			r.ID = newID()
		}
		r.IsPreset = false
		if r.Exercises == nil {
			r.Exercises = []domain.ExerciseDefinition{}
		}
		for i := range r.Exercises {
			if r.Exercises[i].ID == "" {
				r.Exercises[i].ID = newID()
			}
			if r.Exercises[i].Sets < 1 {
				r.Exercises[i].Sets = 1
			}
		}
		out = append(out, r)
	}
	return out
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
