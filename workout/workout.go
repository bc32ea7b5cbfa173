// Package workout holds the static exercise catalog and the linear
// calorie-burn model. Burn is a per-exercise multiplier times total units;
// for Cardio and Combat the set's reps field is read as minutes.
package workout

import (
	"errors"
	"math"

	"github.com/arsh077/Khurak-new-application/models"
)

var ErrUnknownExercise = errors.New("workout: unknown exercise")

// Exercise is one catalog entry. CalPerUnit is kcal per rep, or kcal per
// minute for the minute-based categories.
type Exercise struct {
	Name       string  `json:"name"`
	CalPerUnit float64 `json:"cal_per_unit"`
}

// Catalog maps each category to its exercises. Set weight is recorded on
// logged sets but does not feed this model.
var Catalog = map[models.WorkoutCategory][]Exercise{
	models.CategoryPush: {
		{Name: "Bench Press", CalPerUnit: 0.4},
		{Name: "Overhead Press", CalPerUnit: 0.35},
		{Name: "Pushups", CalPerUnit: 0.3},
		{Name: "Tricep Dips", CalPerUnit: 0.25},
	},
	models.CategoryPull: {
		{Name: "Deadlift", CalPerUnit: 0.6},
		{Name: "Pull Ups", CalPerUnit: 0.5},
		{Name: "Barbell Rows", CalPerUnit: 0.4},
		{Name: "Bicep Curls", CalPerUnit: 0.15},
	},
	models.CategoryLegs: {
		{Name: "Squats", CalPerUnit: 0.5},
		{Name: "Leg Press", CalPerUnit: 0.4},
		{Name: "Lunges", CalPerUnit: 0.3},
		{Name: "Calf Raises", CalPerUnit: 0.1},
	},
	models.CategoryCombat: {
		{Name: "Heavy Bag Rounds", CalPerUnit: 10},
		{Name: "Sparring", CalPerUnit: 12},
		{Name: "Shadow Boxing", CalPerUnit: 8},
	},
	models.CategoryHome: {
		{Name: "Burpees", CalPerUnit: 0.5},
		{Name: "Situps", CalPerUnit: 0.2},
		{Name: "Jumping Jacks", CalPerUnit: 0.1},
	},
	models.CategoryCardio: {
		{Name: "Running", CalPerUnit: 10},
		{Name: "Cycling", CalPerUnit: 8},
	},
	models.CategoryOther: {},
}

// MinuteBased reports whether the category logs minutes in the reps field.
func MinuteBased(category models.WorkoutCategory) bool {
	return category == models.CategoryCardio || category == models.CategoryCombat
}

// Find looks an exercise up by category and name.
func Find(category models.WorkoutCategory, name string) (Exercise, error) {
	for _, ex := range Catalog[category] {
		if ex.Name == name {
			return ex, nil
		}
	}
	return Exercise{}, ErrUnknownExercise
}

// Burn computes the rounded calorie estimate for a completed exercise:
// round(Σ reps × calPerUnit), reps meaning minutes for minute-based
// categories. Negative rep counts contribute nothing.
func Burn(category models.WorkoutCategory, calPerUnit float64, sets []models.WorkoutSet) int {
	var units int
	for _, s := range sets {
		if s.Reps > 0 {
			units += s.Reps
		}
	}
	return int(math.Round(float64(units) * calPerUnit))
}
