package tracker

import (
	"math"
	"testing"
	"time"

	"github.com/arsh077/Khurak-new-application/models"
)

func food(slot models.MealSlot, cal, protein, carbs, fats float64) models.FoodEntry {
	return models.FoodEntry{Slot: slot, Name: "test", Calories: cal, Protein: protein, Carbs: carbs, Fats: fats}
}

func TestTotalCaloriesEaten_AllSlots(t *testing.T) {
	foods := []models.FoodEntry{
		food(models.SlotBreakfast, 300, 20, 30, 10),
		food(models.SlotLunch, 550, 35, 60, 15),
		food(models.SlotDinner, 450, 30, 40, 12),
		food(models.SlotSnacks, 200, 5, 25, 8),
	}
	if got := TotalCaloriesEaten(foods); got != 1500 {
		t.Errorf("TotalCaloriesEaten = %v, want 1500", got)
	}
	m := MacroTotals(foods)
	if m.Protein != 90 || m.Carbs != 155 || m.Fats != 45 {
		t.Errorf("MacroTotals = %+v, want {90 155 45}", m)
	}
}

// TestRemainingCalories_Additive verifies the ledger arithmetic: logging C
// food calories decreases remaining by exactly C, logging Δ exercise
// calories increases it by exactly Δ, and order does not matter.
func TestRemainingCalories_Additive(t *testing.T) {
	const target = 2000

	base := RemainingCalories(target, nil, nil)
	if base != 2000 {
		t.Fatalf("empty remaining = %v, want 2000", base)
	}

	foods := []models.FoodEntry{food(models.SlotLunch, 650, 0, 0, 0)}
	afterFood := RemainingCalories(target, foods, nil)
	if base-afterFood != 650 {
		t.Errorf("food of 650 changed remaining by %v, want 650", base-afterFood)
	}

	events := []models.EnergyEvent{{Source: models.SourceExercise, Delta: 120}}
	afterBoth := RemainingCalories(target, foods, events)
	if afterBoth-afterFood != 120 {
		t.Errorf("exercise of 120 changed remaining by %v, want 120", afterBoth-afterFood)
	}

	// Commutative: events first, then food, same result.
	if got := RemainingCalories(target, foods, events); got != afterBoth {
		t.Errorf("order-dependent result: %v vs %v", got, afterBoth)
	}

	// No clamping: going far over budget yields a negative remainder.
	big := []models.FoodEntry{food(models.SlotDinner, 5000, 0, 0, 0)}
	if got := RemainingCalories(target, big, nil); got != -3000 {
		t.Errorf("over-budget remaining = %v, want -3000", got)
	}
}

func TestEatenPercentage_Clamped(t *testing.T) {
	target := 2000
	half := []models.FoodEntry{food(models.SlotLunch, 1000, 0, 0, 0)}
	if got := EatenPercentage(half, target); math.Abs(got-50) > 1e-9 {
		t.Errorf("EatenPercentage = %v, want 50", got)
	}
	over := []models.FoodEntry{food(models.SlotLunch, 4000, 0, 0, 0)}
	if got := EatenPercentage(over, target); got != 100 {
		t.Errorf("EatenPercentage over budget = %v, want clamp to 100", got)
	}
	if got := EatenPercentage(half, 0); got != 0 {
		t.Errorf("EatenPercentage with zero target = %v, want 0", got)
	}
}

// TestAdjustWater_FlooredAtZero: repeated decrements from 0 always yield
// 0, never negative.
func TestAdjustWater_FlooredAtZero(t *testing.T) {
	oz := 0
	for i := 0; i < 5; i++ {
		oz = AdjustWater(oz, -GlassOz)
		if oz != 0 {
			t.Fatalf("after %d decrements water = %d, want 0", i+1, oz)
		}
	}
	oz = AdjustWater(oz, GlassOz)
	if oz != 8 {
		t.Errorf("after increment water = %d, want 8", oz)
	}
	oz = AdjustWater(oz, -GlassOz)
	oz = AdjustWater(oz, -GlassOz)
	if oz != 0 {
		t.Errorf("over-decrement water = %d, want 0", oz)
	}
}

func TestWeekStart_IsMondayMidnightUTC(t *testing.T) {
	// 2026-08-29 is a Saturday; its week starts Monday 2026-08-24.
	sat := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	ws := WeekStart(sat)
	if ws.Weekday() != time.Monday {
		t.Errorf("WeekStart weekday = %s, want Monday", ws.Weekday())
	}
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !ws.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", ws, want)
	}

	// Sunday belongs to the week that started six days earlier.
	sun := time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)
	if !WeekStart(sun).Equal(want) {
		t.Errorf("Sunday WeekStart = %v, want %v", WeekStart(sun), want)
	}
}

func TestSameWeek_Boundary(t *testing.T) {
	sun := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if SameWeek(sun, mon) {
		t.Error("Sunday and following Monday reported as same week")
	}
	if !SameWeek(mon, mon.AddDate(0, 0, 6)) {
		t.Error("Monday and its Sunday reported as different weeks")
	}
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC)
	if got := DateKey(ts); got != "2026-01-05" {
		t.Errorf("DateKey = %q, want 2026-01-05", got)
	}
}
