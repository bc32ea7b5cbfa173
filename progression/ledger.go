// Package progression owns the gamification ledger: XP accumulation,
// rank/level derivation and the weekly-unlock gating of the quest
// program catalog. All functions are pure; callers persist the returned
// state and enforce the dedup gate from storage.
package progression

import (
	"errors"

	"github.com/arsh077/Khurak-new-application/models"
)

var (
	// ErrAlreadyCompleted gates duplicate day completions: at most one
	// credit per program per calendar date.
	ErrAlreadyCompleted = errors.New("progression: day already completed for this program")
	ErrProgramLocked    = errors.New("progression: program not unlocked")
)

// State is the mutable slice of the profile the ledger operates on.
type State struct {
	TotalXP        int
	WeeklyXP       int
	CompletedWeeks int
}

// AwardInfo describes the outcome of a single day completion.
type AwardInfo struct {
	XP             int         `json:"xp"`
	WeeksAdvanced  bool        `json:"weeks_advanced"`
	ProgramDone    bool        `json:"program_done"`
	Rank           models.Rank `json:"rank"`
	Level          int         `json:"level"`
	TotalXP        int         `json:"total_xp"`
	WeeklyXP       int         `json:"weekly_xp"`
	CompletedWeeks int         `json:"completed_weeks"`
}

// rankThresholds is the explicit XP-per-rank table (ascending). The
// original never promoted rank; this table is the documented extension.
var rankThresholds = []struct {
	XP   int
	Rank models.Rank
}{
	{0, models.RankCopper},
	{500, models.RankSilver},
	{1500, models.RankGold},
	{3000, models.RankDiamond},
	{5000, models.RankPlatinum},
	{8000, models.RankTitanium},
	{12000, models.RankAntimatter},
}

// xpPerLevel defines the derived level: 1 + totalXP/xpPerLevel.
const xpPerLevel = 250

// RankForXP returns the highest rank whose threshold totalXP meets.
func RankForXP(totalXP int) models.Rank {
	rank := models.RankCopper
	for _, t := range rankThresholds {
		if totalXP >= t.XP {
			rank = t.Rank
		}
	}
	return rank
}

// LevelForXP derives the level from total XP. Levels start at 1.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return 1 + totalXP/xpPerLevel
}

// Award credits one completed training day of programID against s.
// alreadyCredited is the storage-backed dedup answer for (user, program,
// date); when true the call is a no-op returning ErrAlreadyCompleted.
//
// Flagship-program completions advance CompletedWeeks, clamped at the
// program's TotalWeeks; past the clamp XP still accrues but weeks do not.
func Award(s State, programID int, alreadyCredited bool) (State, AwardInfo, error) {
	program, err := ProgramByID(programID)
	if err != nil {
		return s, AwardInfo{}, err
	}
	if !IsUnlocked(programID, s.CompletedWeeks) {
		return s, AwardInfo{}, ErrProgramLocked
	}
	if alreadyCredited {
		return s, AwardInfo{}, ErrAlreadyCompleted
	}

	next := s
	next.TotalXP += program.XP
	next.WeeklyXP += program.XP

	weeksAdvanced := false
	if programID == FlagshipProgramID && next.CompletedWeeks < program.TotalWeeks {
		next.CompletedWeeks++
		weeksAdvanced = true
	}

	info := AwardInfo{
		XP:             program.XP,
		WeeksAdvanced:  weeksAdvanced,
		ProgramDone:    programID == FlagshipProgramID && next.CompletedWeeks >= program.TotalWeeks,
		Rank:           RankForXP(next.TotalXP),
		Level:          LevelForXP(next.TotalXP),
		TotalXP:        next.TotalXP,
		WeeklyXP:       next.WeeklyXP,
		CompletedWeeks: next.CompletedWeeks,
	}
	return next, info, nil
}
