// Package metabolic computes basal metabolic rate, total daily energy
// expenditure and the derived calorie/protein targets from body metrics.
// Mifflin-St Jeor is the canonical formula; Harris-Benedict survives only
// as the explicitly separate QuickEstimate used by the public calculator.
package metabolic

import (
	"errors"
	"math"

	"github.com/arsh077/Khurak-new-application/models"
)

// ErrInvalidInput is returned for zero/negative numeric inputs or
// unrecognised enum values. Nothing is computed in that case.
var ErrInvalidInput = errors.New("metabolic: invalid input")

// activityMultipliers is the single source of truth for valid activity
// levels; an unknown level fails instead of falling through to a default.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.Sedentary:        1.2,
	models.LightlyActive:    1.375,
	models.ModeratelyActive: 1.55,
	models.VeryActive:       1.725,
	models.ExtraActive:      1.9,
}

// goalAdjustments maps the goal to its fixed daily-calorie delta.
var goalAdjustments = map[models.Goal]float64{
	models.GoalLose:     -500,
	models.GoalMaintain: 0,
	models.GoalGain:     +500,
}

// hormonalPenalty applies to Thyroid and PCOS only: a flat 5% BMR cut.
const hormonalPenalty = 0.95

type Input struct {
	WeightKg float64
	HeightCm float64
	AgeYears int
	Gender   models.Gender
	Activity models.ActivityLevel
	Goal     models.Goal
	Hormonal models.HormonalIssue
}

type Result struct {
	BMR                int `json:"bmr"`
	TDEE               int `json:"tdee"`
	DailyCalorieTarget int `json:"daily_calorie_target"`
	ProteinTargetGrams int `json:"protein_target"`
}

// Compute derives BMR (Mifflin-St Jeor), TDEE, the daily calorie target
// and the protein target. All outputs are rounded to the nearest integer.
func Compute(in Input) (Result, error) {
	if in.WeightKg <= 0 || in.HeightCm <= 0 || in.AgeYears <= 0 {
		return Result{}, ErrInvalidInput
	}

	var bmr float64
	switch in.Gender {
	case models.GenderMale:
		bmr = 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.AgeYears) + 5
	case models.GenderFemale:
		bmr = 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.AgeYears) - 161
	default:
		return Result{}, ErrInvalidInput
	}

	if in.Hormonal == models.HormonalThyroid || in.Hormonal == models.HormonalPCOS {
		bmr *= hormonalPenalty
	}

	mult, ok := activityMultipliers[in.Activity]
	if !ok {
		return Result{}, ErrInvalidInput
	}
	tdee := bmr * mult

	adj, ok := goalAdjustments[in.Goal]
	if !ok {
		return Result{}, ErrInvalidInput
	}

	return Result{
		BMR:                int(math.Round(bmr)),
		TDEE:               int(math.Round(tdee)),
		DailyCalorieTarget: int(math.Round(tdee + adj)),
		ProteinTargetGrams: int(math.Round(in.WeightKg * 1.5)),
	}, nil
}

// QuickEstimate is the Harris-Benedict variant offered on the public
// calculator. It intentionally disagrees with Compute by a few percent and
// returns only BMR and TDEE; never mix the two in one profile.
func QuickEstimate(weightKg, heightCm float64, ageYears int, gender models.Gender, activity models.ActivityLevel) (bmr, tdee int, err error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, 0, ErrInvalidInput
	}

	var b float64
	switch gender {
	case models.GenderMale:
		b = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(ageYears)
	case models.GenderFemale:
		b = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(ageYears)
	default:
		return 0, 0, ErrInvalidInput
	}

	mult, ok := activityMultipliers[activity]
	if !ok {
		return 0, 0, ErrInvalidInput
	}
	return int(math.Round(b)), int(math.Round(b * mult)), nil
}
