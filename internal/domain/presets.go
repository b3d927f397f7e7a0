package domain

// PresetRoutines returns the built-in workout templates offered alongside the
// user's own routines. They are seed data: IsPreset is set, ids are stable,
// and the data layer never persists them as user mutations.
func PresetRoutines() []WorkoutRoutine {
	return []WorkoutRoutine{
		{
			ID:                "preset_fran",
			Name:              "Fran",
			Description:       "Classic CrossFit benchmark WOD: 21-15-9 thrusters and pull-ups",
			Category:          CategoryCrossfit,
			Difficulty:        DifficultyIntermediate,
			EstimatedDuration: 15,
			IsPreset:          true,
			Exercises: []ExerciseDefinition{
				{ID: "ex_thruster", Name: "Thruster", Sets: 3, Reps: "21-15-9", Notes: "42.5kg men / 30kg women, alternate with pull-ups"},
				{ID: "ex_pullup", Name: "Pull-up", Sets: 3, Reps: "21-15-9", Notes: "Same rep scheme as the thrusters"},
			},
		},
		{
			ID:                "preset_murph",
			Name:              "Murph",
			Description:       "Hero WOD in memory of Navy SEAL Michael Murphy",
			Category:          CategoryCrossfit,
			Difficulty:        DifficultyAdvanced,
			EstimatedDuration: 45,
			IsPreset:          true,
			Exercises: []ExerciseDefinition{
				{ID: "ex_run1", Name: "Run", Sets: 1, Reps: "1 mile", Notes: "Opening run"},
				{ID: "ex_pullup_murph", Name: "Pull-up", Sets: 20, Reps: "5", Notes: "100 pull-ups total, partition as needed"},
				{ID: "ex_pushup_murph", Name: "Push-up", Sets: 20, Reps: "10", Notes: "200 push-ups total, partition as needed"},
				{ID: "ex_squat_murph", Name: "Air Squat", Sets: 20, Reps: "15", Notes: "300 squats total, partition as needed"},
				{ID: "ex_run2", Name: "Run", Sets: 1, Reps: "1 mile", Notes: "Closing run"},
			},
		},
		{
			ID:                "preset_cindy",
			Name:              "Cindy",
			Description:       "AMRAP 20 minutes: 5 pull-ups, 10 push-ups, 15 squats",
			Category:          CategoryCrossfit,
			Difficulty:        DifficultyBeginner,
			EstimatedDuration: 20,
			IsPreset:          true,
			Exercises: []ExerciseDefinition{
				{ID: "ex_pullup_cindy", Name: "Pull-up", Sets: 1, Reps: "5 per round", Notes: "As many rounds as possible in 20 minutes"},
				{ID: "ex_pushup_cindy", Name: "Push-up", Sets: 1, Reps: "10 per round"},
				{ID: "ex_squat_cindy", Name: "Air Squat", Sets: 1, Reps: "15 per round"},
			},
		},
		{
			ID:                "preset_starting_strength",
			Name:              "Starting Strength A",
			Description:       "Barbell basics: squat, bench press, deadlift",
			Category:          CategoryStrength,
			Difficulty:        DifficultyBeginner,
			EstimatedDuration: 60,
			IsPreset:          true,
			Exercises: []ExerciseDefinition{
				{ID: "ex_squat_ss", Name: "Back Squat", Sets: 3, Reps: "5", Notes: "Warm up thoroughly before the work sets"},
				{ID: "ex_bench_ss", Name: "Bench Press", Sets: 3, Reps: "5"},
				{ID: "ex_deadlift_ss", Name: "Deadlift", Sets: 1, Reps: "5", Notes: "Single heavy work set"},
			},
		},
	}
}
