package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/models"
	"github.com/arsh077/Khurak-new-application/tracker"
)

// DayLog returns the user's log row for the given instant, creating an
// empty row on the first touch of a new calendar day. Child collections
// are preloaded so callers can roll up totals immediately.
func DayLog(userID uint, now time.Time) (*models.DailyLog, error) {
	date := tracker.DateKey(now)

	var log models.DailyLog
	err := database.DB.
		Preload("Foods").
		Preload("Events").
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log = models.DailyLog{UserID: userID, Date: date}
	if err := database.DB.Create(&log).Error; err != nil {
		// A concurrent request may have created the row first.
		var again models.DailyLog
		if e := database.DB.
			Preload("Foods").
			Preload("Events").
			Where("user_id = ? AND date = ?", userID, date).
			First(&again).Error; e == nil {
			return &again, nil
		}
		return nil, err
	}
	return &log, nil
}

// WeeklyXP returns the XP earned since the start of the current week
// (Monday 00:00 UTC). Old rows need no reset pass because the sum is
// recomputed from completions each time.
func WeeklyXP(userID uint, now time.Time) (int, error) {
	weekStart := tracker.WeekStart(now)

	var total int64
	err := database.DB.Model(&models.QuestCompletion{}).
		Where("user_id = ? AND created_at >= ?", userID, weekStart).
		Select("COALESCE(SUM(xp), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
