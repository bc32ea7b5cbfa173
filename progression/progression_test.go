package progression

import (
	"errors"
	"testing"

	"github.com/arsh077/Khurak-new-application/models"
)

func TestAward_FlagshipOnce(t *testing.T) {
	s := State{}
	next, info, err := Award(s, FlagshipProgramID, false)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if next.TotalXP != 50 {
		t.Errorf("TotalXP = %d, want 50", next.TotalXP)
	}
	if next.WeeklyXP != 50 {
		t.Errorf("WeeklyXP = %d, want 50", next.WeeklyXP)
	}
	if next.CompletedWeeks != 1 {
		t.Errorf("CompletedWeeks = %d, want 1", next.CompletedWeeks)
	}
	if !info.WeeksAdvanced {
		t.Error("WeeksAdvanced = false, want true")
	}
	if info.Rank != models.RankCopper {
		t.Errorf("Rank = %s, want Copper", info.Rank)
	}
}

// TestAward_DuplicateIsNoOp asserts the dedup rule: the second completion
// of the same program-day is rejected and the state unchanged.
func TestAward_DuplicateIsNoOp(t *testing.T) {
	s := State{}
	s, _, err := Award(s, FlagshipProgramID, false)
	if err != nil {
		t.Fatalf("first award: %v", err)
	}
	after, _, err := Award(s, FlagshipProgramID, true)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second award err = %v, want ErrAlreadyCompleted", err)
	}
	if after != s {
		t.Errorf("state mutated on duplicate: %+v vs %+v", after, s)
	}
	if after.TotalXP != 50 {
		t.Errorf("TotalXP = %d after duplicate, want 50", after.TotalXP)
	}
}

func TestAward_WeeksClampedAtFifteen(t *testing.T) {
	s := State{CompletedWeeks: 15, TotalXP: 750}
	next, info, err := Award(s, FlagshipProgramID, false)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if next.CompletedWeeks != 15 {
		t.Errorf("CompletedWeeks = %d, want clamp at 15", next.CompletedWeeks)
	}
	if info.WeeksAdvanced {
		t.Error("WeeksAdvanced past clamp")
	}
	if next.TotalXP != 800 {
		t.Errorf("TotalXP = %d, want 800 (XP still accrues)", next.TotalXP)
	}
}

func TestAward_NonFlagshipDoesNotAdvanceWeeks(t *testing.T) {
	s := State{CompletedWeeks: 15}
	next, _, err := Award(s, 2, false)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if next.CompletedWeeks != 15 {
		t.Errorf("CompletedWeeks = %d, want 15", next.CompletedWeeks)
	}
	if next.TotalXP != 60 {
		t.Errorf("TotalXP = %d, want 60", next.TotalXP)
	}
}

func TestAward_LockedProgram(t *testing.T) {
	s := State{CompletedWeeks: 3}
	if _, _, err := Award(s, 3, false); !errors.Is(err, ErrProgramLocked) {
		t.Errorf("err = %v, want ErrProgramLocked", err)
	}
	if _, _, err := Award(s, 99, false); !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("err = %v, want ErrUnknownProgram", err)
	}
}

func TestIsUnlocked_Gate(t *testing.T) {
	cases := []struct {
		level, weeks int
		want         bool
	}{
		{1, 0, true},
		{1, 100, true},
		{2, 14, false},
		{2, 15, true},
		{3, 16, false},
		{3, 17, true},
		{4, 100, false},
		{5, 100, false},
	}
	for _, tc := range cases {
		if got := IsUnlocked(tc.level, tc.weeks); got != tc.want {
			t.Errorf("IsUnlocked(%d, %d) = %v, want %v", tc.level, tc.weeks, got, tc.want)
		}
	}
}

func TestUnlockable(t *testing.T) {
	for level, want := range map[int]bool{1: true, 2: true, 3: true, 4: false, 5: false} {
		if got := Unlockable(level); got != want {
			t.Errorf("Unlockable(%d) = %v, want %v", level, got, want)
		}
	}
}

func TestRankForXP_Thresholds(t *testing.T) {
	cases := []struct {
		xp   int
		want models.Rank
	}{
		{0, models.RankCopper},
		{499, models.RankCopper},
		{500, models.RankSilver},
		{1499, models.RankSilver},
		{1500, models.RankGold},
		{3000, models.RankDiamond},
		{5000, models.RankPlatinum},
		{8000, models.RankTitanium},
		{12000, models.RankAntimatter},
		{50000, models.RankAntimatter},
	}
	for _, tc := range cases {
		if got := RankForXP(tc.xp); got != tc.want {
			t.Errorf("RankForXP(%d) = %s, want %s", tc.xp, got, tc.want)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	cases := []struct{ xp, want int }{
		{-10, 1}, {0, 1}, {249, 1}, {250, 2}, {1000, 5},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestDayTasks(t *testing.T) {
	tasks, err := DayTasks(1, "Monday", 0)
	if err != nil {
		t.Fatalf("DayTasks: %v", err)
	}
	if len(tasks) != 4 {
		t.Errorf("Monday tasks = %d, want 4", len(tasks))
	}

	if _, err := DayTasks(3, "Monday", 5); !errors.Is(err, ErrLevelLocked) {
		t.Errorf("locked program err = %v, want ErrLevelLocked", err)
	}
	if _, err := DayTasks(1, "Funday", 0); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("bad day err = %v, want ErrUnknownDay", err)
	}
}

func TestPrograms_DayCoverage(t *testing.T) {
	// Programs 1-3 must cover all seven weekdays; 4-5 are placeholders.
	for _, id := range []int{1, 2, 3} {
		p := Programs[id]
		for _, day := range DayOrder {
			if len(p.Days[day]) == 0 {
				t.Errorf("program %d missing tasks for %s", id, day)
			}
		}
	}
	for _, id := range []int{4, 5} {
		if len(Programs[id].Days) != 0 {
			t.Errorf("placeholder program %d has day plans", id)
		}
	}
}
