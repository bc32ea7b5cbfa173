// Package tracker holds the pure rollup functions over a day's logged
// food and energy events, plus the day/week boundary helpers that drive
// log rollover. Mutations (appends, water adjustment) happen in the
// controllers; everything here is a read.
package tracker

import (
	"math"
	"time"

	"github.com/arsh077/Khurak-new-application/models"
)

// Macros is the summed macro breakdown of a day's food entries.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// TotalCaloriesEaten sums calories over all items in all four meal slots.
func TotalCaloriesEaten(foods []models.FoodEntry) float64 {
	var total float64
	for _, f := range foods {
		total += f.Calories
	}
	return total
}

// MacroTotals sums protein, carbs and fats the same way.
func MacroTotals(foods []models.FoodEntry) Macros {
	var m Macros
	for _, f := range foods {
		m.Protein += f.Protein
		m.Carbs += f.Carbs
		m.Fats += f.Fats
	}
	return m
}

// BurnedCalories sums the unified energy-event ledger (exercise burns and
// mission micro-burns alike).
func BurnedCalories(events []models.EnergyEvent) int {
	var total int
	for _, e := range events {
		total += e.Delta
	}
	return total
}

// RemainingCalories = target − eaten + burned. Can be negative
// (over-budget) or exceed the target; no clamping.
func RemainingCalories(dailyTarget int, foods []models.FoodEntry, events []models.EnergyEvent) float64 {
	return float64(dailyTarget) - TotalCaloriesEaten(foods) + float64(BurnedCalories(events))
}

// EatenPercentage is the clamped display metric. It never clamps the
// underlying remaining-calorie value.
func EatenPercentage(foods []models.FoodEntry, dailyTarget int) float64 {
	if dailyTarget <= 0 {
		return 0
	}
	return math.Min(TotalCaloriesEaten(foods)/float64(dailyTarget)*100, 100)
}

// GlassOz is one glass of water; water moves in whole glasses.
const GlassOz = 8

// AdjustWater applies a ±delta oz change floored at zero. Repeated
// decrements from zero stay at zero.
func AdjustWater(currentOz, deltaOz int) int {
	next := currentOz + deltaOz
	if next < 0 {
		return 0
	}
	return next
}

// DateKey formats t as the ISO date string used to key daily logs.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeekStart returns the Monday of t's week at midnight UTC. AddDate is
// used so month/year boundaries behave.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday()) // 0=Sun
	if weekday == 0 {
		weekday = 7
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// SameWeek reports whether a and b fall in the same Monday-anchored week.
// Weekly XP carries over within a week and resets across this boundary.
func SameWeek(a, b time.Time) bool {
	return WeekStart(a).Equal(WeekStart(b))
}
