package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender is a closed enum; every multiplier table that switches on it
// must cover both values explicitly.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ActivityLevel drives the TDEE multiplier table in the metabolic package.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "Sedentary"
	LightlyActive    ActivityLevel = "Lightly Active"
	ModeratelyActive ActivityLevel = "Moderately Active"
	VeryActive       ActivityLevel = "Very Active"
	ExtraActive      ActivityLevel = "Extra Active"
)

// Goal adjusts the daily calorie target by a fixed ±500 kcal.
type Goal string

const (
	GoalLose     Goal = "Lose Weight"
	GoalMaintain Goal = "Maintain Weight"
	GoalGain     Goal = "Gain Weight"
)

// HormonalIssue flags conditions that apply a flat 5% BMR penalty
// (Thyroid and PCOS only; the others are recorded but do not change math).
type HormonalIssue string

const (
	HormonalNone     HormonalIssue = "None"
	HormonalPCOS     HormonalIssue = "PCOS/PCOD"
	HormonalThyroid  HormonalIssue = "Thyroid"
	HormonalDiabetes HormonalIssue = "Diabetes/Insulin Resistance"
	HormonalOther    HormonalIssue = "Other"
)

type WorkoutPreference string

const (
	PrefHome         WorkoutPreference = "Home Workout"
	PrefBodyweight   WorkoutPreference = "Bodyweight Only"
	PrefHomeDumbbell WorkoutPreference = "Home + Dumbbells"
	PrefGym          WorkoutPreference = "Gym / Iron Temple"
	PrefWalk         WorkoutPreference = "Walking Only"
	PrefYoga         WorkoutPreference = "Yoga Only"
)

// Rank is the 7-tier ordered ladder. Promotion is driven by the XP
// threshold table in the progression package.
type Rank string

const (
	RankCopper     Rank = "Copper"
	RankSilver     Rank = "Silver"
	RankGold       Rank = "Gold"
	RankDiamond    Rank = "Diamond"
	RankPlatinum   Rank = "Platinum"
	RankTitanium   Rank = "Titanium"
	RankAntimatter Rank = "Antimatter"
)

// WorkoutCategory selects the burn-model unit: Cardio and Combat are
// logged in minutes, everything else in repetitions.
type WorkoutCategory string

const (
	CategoryPush   WorkoutCategory = "Push"
	CategoryPull   WorkoutCategory = "Pull"
	CategoryLegs   WorkoutCategory = "Legs"
	CategoryCombat WorkoutCategory = "Combat"
	CategoryHome   WorkoutCategory = "Home"
	CategoryCardio WorkoutCategory = "Cardio"
	CategoryOther  WorkoutCategory = "Other"
)

// MealSlot names the four per-day meal sequences.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

// ValidSlot reports whether s is one of the four meal slots.
func ValidSlot(s MealSlot) bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks:
		return true
	}
	return false
}

// EnergySource tags entries in the unified energy-event ledger. Exercise
// burns and mission micro-burns land in the same table so burned-calorie
// totals have a single source of truth.
type EnergySource string

const (
	SourceExercise  EnergySource = "exercise"
	SourceMicroburn EnergySource = "microburn"
)

type Plan string

const (
	PlanMonthly  Plan = "monthly"
	PlanLifetime Plan = "lifetime"
)

type PaymentMethod string

const (
	MethodRazorpay PaymentMethod = "razorpay"
	MethodPhonePe  PaymentMethod = "phonepe"
	MethodGPay     PaymentMethod = "gpay"
)

// User represents an authenticated account.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string         `gorm:"size:255" json:"name"`
	Password  []byte         `gorm:"type:bytea;not null" json:"-"`
	Phone     string         `gorm:"size:20" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Profile holds body metrics, derived targets and the progression ledger
// counters. Created with placeholder zeros at signup, finalized at
// onboarding, mutated by quest completions and calculator re-runs.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	Name              string            `gorm:"size:255" json:"name"`
	Age               int               `json:"age"`
	Gender            Gender            `gorm:"size:10" json:"gender"`
	HeightCm          float64           `json:"height"`
	WeightKg          float64           `json:"weight"`
	TargetWeightKg    float64           `json:"target_weight"`
	StartDate         time.Time         `json:"start_date"`
	StartWeightKg     float64           `json:"start_weight"`
	ActivityLevel     ActivityLevel     `gorm:"size:30" json:"activity_level"`
	Goal              Goal              `gorm:"size:30" json:"goal"`
	IsVegetarian      bool              `json:"is_vegetarian"`
	HormonalIssues    HormonalIssue     `gorm:"size:40" json:"hormonal_issues"`
	WorkoutPreference WorkoutPreference `gorm:"size:30" json:"workout_preference"`

	// Derived at onboarding / recalculation only, never incrementally.
	BMR                int `json:"bmr"`
	DailyCalorieTarget int `json:"daily_calorie_target"`
	ProteinTarget      int `json:"protein_target"`

	// Progression ledger.
	Rank            Rank `gorm:"size:15;default:'Copper'" json:"rank"`
	Level           int  `gorm:"default:1" json:"level"`
	TotalXP         int  `gorm:"default:0" json:"total_xp"`
	CurrentStreak   int  `gorm:"default:0" json:"current_streak"`
	BodyweightLevel int  `gorm:"default:1" json:"bodyweight_level"`
	CompletedWeeks  int  `gorm:"default:0" json:"completed_weeks"`

	Onboarded bool `gorm:"default:false" json:"onboarded"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DailyLog is one row per user per calendar day. Aggregates (calories
// eaten, macros, burned) are computed from the child tables, not stored.
type DailyLog struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_date" json:"user_id"`
	Date   string `gorm:"size:10;not null;uniqueIndex:idx_user_date" json:"date"` // ISO date

	WaterOz         int     `gorm:"default:0" json:"water_oz"`
	SleepHours      float64 `gorm:"default:0" json:"sleep_hours"`
	QuestsCompleted int     `gorm:"default:0" json:"quests_completed"`
	WeeklyXP        int     `gorm:"default:0" json:"weekly_xp"`

	Foods  []FoodEntry   `json:"foods,omitempty"`
	Events []EnergyEvent `json:"events,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FoodEntry is one logged food item in a meal slot. Append-only within a
// slot; the ID exists so duplicates are removable, which the original
// client could not do.
type FoodEntry struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	DailyLogID uint     `gorm:"not null;index" json:"daily_log_id"`
	Slot       MealSlot `gorm:"size:12;not null" json:"slot"`

	Name           string   `gorm:"size:255;not null" json:"name"`
	Calories       float64  `json:"calories"`
	Protein        float64  `json:"protein"`
	Carbs          float64  `json:"carbs"`
	Fats           float64  `json:"fats"`
	Fiber          *float64 `json:"fiber,omitempty"`
	Micronutrients string   `gorm:"type:text" json:"micronutrients,omitempty"`
	Quantity       string   `gorm:"size:100" json:"quantity"`
	Grams          *float64 `json:"grams,omitempty"`

	// Set when the entry was logged by grams only and macros are still
	// being estimated by the background worker.
	MacrosPending bool `gorm:"default:false" json:"macros_pending"`

	CreatedAt time.Time `json:"created_at"`
}

// ExerciseEntry records a logged workout. CaloriesBurned is derived once
// at creation and immutable; the matching EnergyEvent carries it into the
// daily rollup.
type ExerciseEntry struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"` // uuid
	DailyLogID uint            `gorm:"not null;index" json:"daily_log_id"`
	Category   WorkoutCategory `gorm:"size:10;not null" json:"category"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	SetsJSON   string          `gorm:"type:text" json:"-"` // ordered []WorkoutSet

	CaloriesBurned int       `json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}

// WorkoutSet is one set within an exercise. Reps doubles as minutes for
// Cardio and Combat categories. WeightKg is recorded but does not affect
// the burn estimate.
type WorkoutSet struct {
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight"`
}

// EnergyEvent is the unified burned-energy ledger entry.
type EnergyEvent struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	DailyLogID uint         `gorm:"not null;index" json:"daily_log_id"`
	Source     EnergySource `gorm:"size:12;not null" json:"source"`
	Delta      int          `gorm:"not null" json:"delta"` // kcal burned, positive
	Ref        string       `gorm:"size:64" json:"ref"`    // exercise id or mission id
	CreatedAt  time.Time    `json:"created_at"`
}

// MissionSlot persists one of the three active side-op window positions.
type MissionSlot struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_slot" json:"user_id"`
	Slot      int    `gorm:"not null;uniqueIndex:idx_user_slot" json:"slot"` // 0..2
	MissionID string `gorm:"size:40;not null" json:"mission_id"`
	UpdatedAt time.Time
}

// QuestCompletion is the dedup gate: at most one row per user, program and
// calendar date, so re-submitting a day's completion is a no-op.
type QuestCompletion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_program_date" json:"user_id"`
	ProgramID int       `gorm:"not null;uniqueIndex:idx_user_program_date" json:"program_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_user_program_date" json:"date"`
	Day       string    `gorm:"size:10" json:"day"` // weekday name the user trained
	XP        int       `json:"xp"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentRecord stores the outcome of the simulated subscription flow.
// IsRefunded never transitions to true: refund requests are informational.
type PaymentRecord struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	TransactionID string        `gorm:"size:64;uniqueIndex;not null" json:"transaction_id"`
	LoginID       string        `gorm:"size:40" json:"login_id"`
	PaymentDate   int64         `gorm:"not null" json:"payment_date"` // epoch ms
	AmountPaid    int           `json:"amount_paid"`
	Method        PaymentMethod `gorm:"size:10" json:"method"`
	Plan          Plan          `gorm:"size:10" json:"plan"`
	IsRefunded    bool          `gorm:"default:false" json:"is_refunded"`
	CreatedAt     time.Time     `json:"created_at"`
}
