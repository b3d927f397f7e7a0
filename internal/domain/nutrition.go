package domain

// FoodItem is a single food entry inside a meal. It is a value type: items
// are addressed by their position in the meal slice, not by an id.
type FoodItem struct {
	Name    string  `bson:"name" json:"name"`
	Kcal    float64 `bson:"kcal" json:"kcal"`
	Carbs   float64 `bson:"carbs" json:"carbs"`
	Protein float64 `bson:"protein" json:"protein"`
	Fats    float64 `bson:"fats" json:"fats"`
	Fiber   float64 `bson:"fiber" json:"fiber"`
}

// Goal is one per-metric target with an on/off switch.
type Goal struct {
	Value   float64 `bson:"value" json:"value"`
	Enabled bool    `bson:"enabled" json:"enabled"`
}

// NutritionGoals holds every tracked target plus the optional free-text
// workout goal the user can describe in natural language.
type NutritionGoals struct {
	Kcal                   Goal   `bson:"kcal" json:"kcal"`
	Carbs                  Goal   `bson:"carbs" json:"carbs"`
	Protein                Goal   `bson:"protein" json:"protein"`
	Fats                   Goal   `bson:"fats" json:"fats"`
	Fiber                  Goal   `bson:"fiber" json:"fiber"`
	WeeklyWorkouts         Goal   `bson:"weeklyWorkouts" json:"weeklyWorkouts"`
	WorkoutGoalDescription string `bson:"workoutGoalDescription,omitempty" json:"workoutGoalDescription,omitempty"`
}

// DefaultGoals returns the goal set used for a fresh installation or a new
// remote user document.
func DefaultGoals() NutritionGoals {
	return NutritionGoals{
		Kcal:           Goal{Value: 2000, Enabled: true},
		Carbs:          Goal{Value: 250, Enabled: true},
		Protein:        Goal{Value: 125, Enabled: true},
		Fats:           Goal{Value: 67, Enabled: true},
		Fiber:          Goal{Value: 30, Enabled: true},
		WeeklyWorkouts: Goal{Value: 3, Enabled: true},
	}
}

// MealType names one of the four fixed meal slots of a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealSnack     MealType = "snack"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes lists the slots in display order.
var MealTypes = []MealType{MealBreakfast, MealSnack, MealLunch, MealDinner}

// DailyLog maps meal slots to the foods eaten in them. Order within a slot
// is insertion order and is significant (entries are edited by index).
type DailyLog map[MealType][]FoodItem

// DailyTotals is the nutrition sum over every meal of one day.
type DailyTotals struct {
	Kcal    float64 `json:"kcal"`
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fiber"`
}

// Totals sums the nutrition fields across all meal slots.
func (l DailyLog) Totals() DailyTotals {
	var t DailyTotals
	for _, items := range l {
		for _, item := range items {
			t.Kcal += item.Kcal
			t.Carbs += item.Carbs
			t.Protein += item.Protein
			t.Fats += item.Fats
			t.Fiber += item.Fiber
		}
	}
	return t
}
