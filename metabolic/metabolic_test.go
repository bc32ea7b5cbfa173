package metabolic

import (
	"errors"
	"testing"

	"github.com/arsh077/Khurak-new-application/models"
)

// baseInput is the profile used by the end-to-end scenario:
// 70kg, 170cm, 30y male, sedentary, losing, no hormonal issues.
func baseInput() Input {
	return Input{
		WeightKg: 70,
		HeightCm: 170,
		AgeYears: 30,
		Gender:   models.GenderMale,
		Activity: models.Sedentary,
		Goal:     models.GoalLose,
		Hormonal: models.HormonalNone,
	}
}

func TestCompute_EndToEndScenario(t *testing.T) {
	res, err := Compute(baseInput())
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	// BMR = 10*70 + 6.25*170 - 5*30 + 5 = 1617.5, rounds to 1618.
	// TDEE = 1617.5 * 1.2 = 1941, target = 1941 - 500 = 1441.
	if res.BMR != 1618 {
		t.Errorf("BMR = %d, want 1618", res.BMR)
	}
	if res.TDEE != 1941 {
		t.Errorf("TDEE = %d, want 1941", res.TDEE)
	}
	if res.DailyCalorieTarget != 1441 {
		t.Errorf("DailyCalorieTarget = %d, want 1441", res.DailyCalorieTarget)
	}
	if res.ProteinTargetGrams != 105 {
		t.Errorf("ProteinTargetGrams = %d, want 105", res.ProteinTargetGrams)
	}
}

// TestCompute_GoalShifts verifies the target moves by exactly ±500 when
// only the goal changes.
func TestCompute_GoalShifts(t *testing.T) {
	in := baseInput()

	in.Goal = models.GoalMaintain
	maintain, err := Compute(in)
	if err != nil {
		t.Fatalf("maintain: %v", err)
	}

	in.Goal = models.GoalLose
	lose, err := Compute(in)
	if err != nil {
		t.Fatalf("lose: %v", err)
	}

	in.Goal = models.GoalGain
	gain, err := Compute(in)
	if err != nil {
		t.Fatalf("gain: %v", err)
	}

	if maintain.DailyCalorieTarget-lose.DailyCalorieTarget != 500 {
		t.Errorf("maintain-lose delta = %d, want 500", maintain.DailyCalorieTarget-lose.DailyCalorieTarget)
	}
	if gain.DailyCalorieTarget-maintain.DailyCalorieTarget != 500 {
		t.Errorf("gain-maintain delta = %d, want 500", gain.DailyCalorieTarget-maintain.DailyCalorieTarget)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a, _ := Compute(baseInput())
	b, _ := Compute(baseInput())
	if a != b {
		t.Errorf("Compute not deterministic: %+v vs %+v", a, b)
	}
}

func TestCompute_FemaleConstant(t *testing.T) {
	in := baseInput()
	in.Gender = models.GenderFemale
	male, _ := Compute(baseInput())
	female, err := Compute(in)
	if err != nil {
		t.Fatalf("female: %v", err)
	}
	// Mifflin male/female constants differ by 166 (+5 vs -161).
	if male.BMR-female.BMR != 166 {
		t.Errorf("male-female BMR delta = %d, want 166", male.BMR-female.BMR)
	}
}

func TestCompute_HormonalPenalty(t *testing.T) {
	cases := []struct {
		issue     models.HormonalIssue
		penalised bool
	}{
		{models.HormonalNone, false},
		{models.HormonalDiabetes, false},
		{models.HormonalOther, false},
		{models.HormonalThyroid, true},
		{models.HormonalPCOS, true},
	}
	base, _ := Compute(baseInput())
	for _, tc := range cases {
		in := baseInput()
		in.Hormonal = tc.issue
		res, err := Compute(in)
		if err != nil {
			t.Fatalf("%s: %v", tc.issue, err)
		}
		if tc.penalised && res.BMR >= base.BMR {
			t.Errorf("%s: BMR %d not reduced from %d", tc.issue, res.BMR, base.BMR)
		}
		if !tc.penalised && res.BMR != base.BMR {
			t.Errorf("%s: BMR %d changed from %d", tc.issue, res.BMR, base.BMR)
		}
	}
}

func TestCompute_InvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Input)
	}{
		{"zero weight", func(in *Input) { in.WeightKg = 0 }},
		{"negative weight", func(in *Input) { in.WeightKg = -60 }},
		{"zero height", func(in *Input) { in.HeightCm = 0 }},
		{"zero age", func(in *Input) { in.AgeYears = 0 }},
		{"unknown gender", func(in *Input) { in.Gender = "Unknown" }},
		{"unknown activity", func(in *Input) { in.Activity = "Hyperactive" }},
		{"unknown goal", func(in *Input) { in.Goal = "Bulk" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mut(&in)
			if _, err := Compute(in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got err=%v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestQuickEstimate_DisagreesWithCanonical(t *testing.T) {
	bmr, tdee, err := QuickEstimate(70, 170, 30, models.GenderMale, models.Sedentary)
	if err != nil {
		t.Fatalf("QuickEstimate: %v", err)
	}
	// Harris-Benedict: 88.362 + 13.397*70 + 4.799*170 - 5.677*30 = 1674.91
	if bmr != 1675 {
		t.Errorf("HB BMR = %d, want 1675", bmr)
	}
	if tdee != 2010 {
		t.Errorf("HB TDEE = %d, want 2010", tdee)
	}
	canonical, _ := Compute(baseInput())
	if bmr == canonical.BMR {
		t.Error("QuickEstimate should not coincide with the canonical formula for these inputs")
	}
}

func TestQuickEstimate_InvalidInput(t *testing.T) {
	if _, _, err := QuickEstimate(0, 170, 30, models.GenderMale, models.Sedentary); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got err=%v, want ErrInvalidInput", err)
	}
}
