package progression

import "errors"

var (
	ErrUnknownProgram = errors.New("progression: unknown program")
	ErrLevelLocked    = errors.New("progression: program level locked")
	ErrUnknownDay     = errors.New("progression: unknown training day")
)

// Task is one exercise prescription within a training day.
type Task struct {
	Title   string   `json:"title"`
	Reps    string   `json:"reps"`
	Details []string `json:"details"`
}

// Program is a multi-week training curriculum. XP is the flat award per
// completed day. Programs without day plans are placeholders that never
// unlock.
type Program struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	TotalWeeks int               `json:"total_weeks"`
	Desc       string            `json:"description"`
	XP         int               `json:"xp"`
	Difficulty string            `json:"difficulty"`
	Duration   string            `json:"duration"`
	Days       map[string][]Task `json:"-"`
}

// FlagshipProgramID is the 15-week plan whose day completions advance the
// completed-week counter.
const FlagshipProgramID = 1

// DayOrder fixes the weekday iteration order for program views.
var DayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Programs is the static catalog, keyed by level id.
var Programs = map[int]Program{
	1: {
		ID: 1, Name: "BODYWEIGHT WARRIOR", TotalWeeks: 15,
		Desc: "Master your own weight.", XP: 50, Difficulty: "2/5", Duration: "30 min",
		Days: map[string][]Task{
			"Monday": {
				{Title: "Push-ups Training", Reps: "3 Sets x 10-15 Reps", Details: []string{"Standard push-ups", "Chest and shoulder strength", "Rest: 60s"}},
				{Title: "Bodyweight Squats", Reps: "3 Sets x 15-20 Reps", Details: []string{"Standard squats", "Leg and glute work", "Rest: 60s"}},
				{Title: "Plank Hold", Reps: "3 Sets x 20-30 seconds", Details: []string{"Core stability position", "Back posture work", "Rest: 45s"}},
				{Title: "Stretching", Reps: "5-10 minutes", Details: []string{"Light stretching", "Flexibility and soreness control"}},
			},
			"Tuesday": {
				{Title: "Pull-ups / Rows", Reps: "3 Sets x 5-10 Reps", Details: []string{"Back strength", "Posture improvement", "Rest: 90s"}},
				{Title: "Dips / Diamond Push-ups", Reps: "3 Sets x 8-12 Reps", Details: []string{"Tricep focus", "Arm definition", "Rest: 60s"}},
				{Title: "Lunges", Reps: "3 Sets x 12 Reps/leg", Details: []string{"Leg strength", "Balance", "Rest: 60s"}},
			},
			"Wednesday": {
				{Title: "Light Cardio", Reps: "15-20 minutes", Details: []string{"Walking, jogging", "Cardiovascular health", "Fat burning"}},
				{Title: "Burpees", Reps: "3 Sets x 5-10 Reps", Details: []string{"Full body work", "Stamina", "Rest: 90s"}},
				{Title: "Calf Raises", Reps: "3 Sets x 15-20 Reps", Details: []string{"Lower leg strength", "Ankle stability", "Rest: 45s"}},
			},
			"Thursday": {
				{Title: "Explosive Push-ups", Reps: "3 Sets x 8-10 Reps", Details: []string{"Explosive strength", "Fast twitch fibers", "Rest: 90s"}},
				{Title: "Mountain Climbers", Reps: "3 Sets x 30 seconds", Details: []string{"Core focus", "Cardio intense", "Rest: 60s"}},
				{Title: "Single Leg Squats", Reps: "3 Sets x 5-8 Reps", Details: []string{"Advanced leg strength", "Balance", "Rest: 90s"}},
			},
			"Friday": {
				{Title: "Pike Push-ups", Reps: "3 Sets x 8-12 Reps", Details: []string{"Shoulder strength", "Upper body power", "Rest: 75s"}},
				{Title: "Hollow Body Hold", Reps: "3 Sets x 15-20 seconds", Details: []string{"Core strength", "Body awareness", "Rest: 60s"}},
				{Title: "Jump Squats", Reps: "3 Sets x 10-15 Reps", Details: []string{"Leg power", "High intensity", "Rest: 75s"}},
			},
			"Saturday": {
				{Title: "Push-up Pyramid", Reps: "1-5-1 Reps", Details: []string{"Endurance build", "Heart rate boost", "Rest: 30s"}},
				{Title: "Handstand Wall Hold", Reps: "3 Sets x 10-20s", Details: []string{"Balance", "Shoulder strength", "Rest: 90s"}},
				{Title: "Wall Sits", Reps: "3 Sets x 20-30s", Details: []string{"Leg endurance", "Quad strength", "Rest: 60s"}},
			},
			"Sunday": {
				{Title: "Active Recovery", Reps: "30 minutes", Details: []string{"Light walking", "Blood flow", "Recovery"}},
				{Title: "Meditation", Reps: "10-15 minutes", Details: []string{"Deep breathing", "Mental reset"}},
				{Title: "Plan Next Week", Reps: "20 minutes", Details: []string{"Meal prep", "Goal setting"}},
			},
		},
	},
	2: {
		ID: 2, Name: "STRENGTH BUILDER", TotalWeeks: 2,
		Desc: "Forge steel muscles.", XP: 60, Difficulty: "3/5", Duration: "40 min",
		Days: map[string][]Task{
			"Monday":    {{Title: "Weighted Push-ups", Reps: "4 Sets x 8-12 Reps", Details: []string{"Add backpack weight", "Muscle mass build"}}},
			"Tuesday":   {{Title: "Weighted Squats", Reps: "4 Sets x 10-15 Reps", Details: []string{"Heavy load", "Leg strength"}}},
			"Wednesday": {{Title: "HIIT Training", Reps: "20 minutes", Details: []string{"30s on / 30s off", "Endurance"}}},
			"Thursday":  {{Title: "Explosive Training", Reps: "3 Sets x 8 Reps", Details: []string{"Power development"}}},
			"Friday":    {{Title: "Strength Circuits", Reps: "3 Rounds", Details: []string{"Full body circuit"}}},
			"Saturday":  {{Title: "Heavy Training", Reps: "Max Effort", Details: []string{"Peak strength"}}},
			"Sunday":    {{Title: "Rest", Reps: "Full Recovery", Details: []string{"Sleep and eat"}}},
		},
	},
	3: {
		ID: 3, Name: "IRON MASTER", TotalWeeks: 5,
		Desc: "Worship at the altar of gains.", XP: 100, Difficulty: "4/5", Duration: "50 min",
		Days: map[string][]Task{
			"Monday":    {{Title: "Advanced Push-ups", Reps: "5 Sets x 10 Reps", Details: []string{"Pseudo planche", "Elite strength"}}},
			"Tuesday":   {{Title: "Weighted Pull-ups", Reps: "5 Sets x 5 Reps", Details: []string{"Maximum back width"}}},
			"Wednesday": {{Title: "Pistol Squats", Reps: "4 Sets x 5 Reps", Details: []string{"Single leg mastery"}}},
			"Thursday":  {{Title: "Power Day", Reps: "4 Sets x 8 Reps", Details: []string{"Explosive movement"}}},
			"Friday":    {{Title: "Skill Day", Reps: "30 mins", Details: []string{"Muscle ups / handstands"}}},
			"Saturday":  {{Title: "1RM Testing", Reps: "Test Max", Details: []string{"Find your limits"}}},
			"Sunday":    {{Title: "Deep Recovery", Reps: "45 mins", Details: []string{"Yoga and massage"}}},
		},
	},
	4: {ID: 4, Name: "ZEN MASTER", TotalWeeks: 4, Desc: "Weeks 23-26.", XP: 0, Difficulty: "3/5"},
	5: {ID: 5, Name: "PATH WALKER", TotalWeeks: 4, Desc: "Weeks 27-30.", XP: 0, Difficulty: "2/5"},
}

// unlockThresholds maps a program level to the completed-week count that
// opens it. Levels absent from this table (and level 1, always open)
// cannot be unlocked by progression.
var unlockThresholds = map[int]int{
	2: 15,
	3: 17,
}

// Unlockable reports whether the level can ever open through progression.
// Levels 4+ ship in the catalog but are deliberately unreachable.
func Unlockable(levelID int) bool {
	if levelID == 1 {
		return true
	}
	_, ok := unlockThresholds[levelID]
	return ok
}

// IsUnlocked is the unlock gate: level 1 is the initial state, the rest
// open strictly by completed-week count.
func IsUnlocked(levelID, completedWeeks int) bool {
	if levelID == 1 {
		return true
	}
	threshold, ok := unlockThresholds[levelID]
	return ok && completedWeeks >= threshold
}

// ProgramByID returns the catalog entry for id.
func ProgramByID(id int) (Program, error) {
	p, ok := Programs[id]
	if !ok {
		return Program{}, ErrUnknownProgram
	}
	return p, nil
}

// DayTasks returns the task list for a weekday of an unlocked program.
func DayTasks(programID int, day string, completedWeeks int) ([]Task, error) {
	p, err := ProgramByID(programID)
	if err != nil {
		return nil, err
	}
	if !IsUnlocked(programID, completedWeeks) {
		return nil, ErrLevelLocked
	}
	tasks, ok := p.Days[day]
	if !ok {
		return nil, ErrUnknownDay
	}
	return tasks, nil
}
