package domain

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// View names the screen the user last had open. Persisted so the app can
// restore it on the next launch.
type View string

const (
	ViewHome     View = "home"
	ViewMeals    View = "meals"
	ViewWorkout  View = "workout"
	ViewMeasures View = "measures"
	ViewAnalysis View = "analysis"
	ViewProfile  View = "profile"
)

// DefaultTheme and DefaultView are used when no setting has ever been saved.
const (
	DefaultTheme = ThemeDark
	DefaultView  = ViewHome
)
