package domain

// AppState is the aggregate snapshot loaded at application startup: settings
// plus every entity collection. The UI shell holds one of these in memory and
// writes mutations through the data layer before reflecting them here.
type AppState struct {
	Theme            Theme               `json:"theme"`
	View             View                `json:"view"`
	Goals            NutritionGoals      `json:"goals"`
	ActiveSession    *WorkoutSession     `json:"activeSession"`
	DailyLogs        map[string]DailyLog `json:"dailyLogs"`
	WorkoutRoutines  []WorkoutRoutine    `json:"workoutRoutines"`
	WorkoutHistory   []WorkoutSession    `json:"workoutHistory"`
	BodyMeasurements []BodyMeasurement   `json:"bodyMeasurements"`
}
