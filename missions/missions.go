// Package missions manages the rotating "side op" micro-task window: a
// fixed-size working set of three ops drawn without replacement from a
// static 16-entry catalog. Completing an op vacates its slot and a random
// unused catalog entry takes its place.
package missions

import (
	"errors"
	"math/rand"
)

var (
	ErrUnknownMission = errors.New("missions: unknown mission id")
	ErrNotActive      = errors.New("missions: mission not in active window")
)

// OpType drives the completion side effect: water ops add a glass, photo
// ops need an upload reference first, wait ops just pass time.
type OpType string

const (
	TypeAction OpType = "action"
	TypeWater  OpType = "water"
	TypePhoto  OpType = "photo"
	TypeWait   OpType = "wait"
)

// WindowSize is the number of simultaneously active side ops.
const WindowSize = 3

// SideOp is one catalog entry. Burn is the kcal credited as a microburn
// energy event on completion; it may be zero.
type SideOp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Type        OpType `json:"type"`
	Burn        int    `json:"burn"`
}

// Catalog is the full side-op pool. With 16 entries and a window of 3 the
// candidate pool can never empty, but Replace still defines the fallback.
var Catalog = []SideOp{
	{ID: "hydration-check", Title: "Hydration Check", Description: "Drink 1 glass of water now.", Action: "Drink", Type: TypeWater, Burn: 0},
	{ID: "drop-give-10", Title: "Drop & Give 10", Description: "10 pushups immediately.", Action: "Done", Type: TypeAction, Burn: 3},
	{ID: "mobility", Title: "Mobility", Description: "Touch your toes for 30s.", Action: "Done", Type: TypeAction, Burn: 2},
	{ID: "stair-sprint", Title: "Stair Sprint", Description: "Climb two flights of stairs.", Action: "Done", Type: TypeAction, Burn: 8},
	{ID: "wall-sit", Title: "Wall Sit", Description: "Hold a wall sit for 45 seconds.", Action: "Done", Type: TypeAction, Burn: 5},
	{ID: "meal-photo", Title: "Evidence Locker", Description: "Photograph your next meal before eating.", Action: "Upload", Type: TypePhoto, Burn: 0},
	{ID: "posture-reset", Title: "Posture Reset", Description: "Stand tall, shoulders back, 60 seconds.", Action: "Done", Type: TypeAction, Burn: 1},
	{ID: "second-glass", Title: "Double Hydration", Description: "One more glass of water.", Action: "Drink", Type: TypeWater, Burn: 0},
	{ID: "walk-break", Title: "Walk Break", Description: "Walk for 5 minutes, no phone.", Action: "Done", Type: TypeAction, Burn: 20},
	{ID: "plank-minute", Title: "Plank Minute", Description: "Hold a plank for 60 seconds.", Action: "Done", Type: TypeAction, Burn: 4},
	{ID: "deep-breath", Title: "Deep Breathing", Description: "10 slow breaths, eyes closed.", Action: "Done", Type: TypeWait, Burn: 0},
	{ID: "squat-20", Title: "Twenty Squats", Description: "20 bodyweight squats, right now.", Action: "Done", Type: TypeAction, Burn: 10},
	{ID: "no-snack-hour", Title: "Snack Blackout", Description: "No snacks for the next hour.", Action: "Commit", Type: TypeWait, Burn: 0},
	{ID: "fridge-photo", Title: "Supply Audit", Description: "Photograph the inside of your fridge.", Action: "Upload", Type: TypePhoto, Burn: 0},
	{ID: "calf-raises", Title: "Calf Raises", Description: "30 calf raises at your desk.", Action: "Done", Type: TypeAction, Burn: 3},
	{ID: "stretch-neck", Title: "Neck Release", Description: "Stretch your neck, 30s each side.", Action: "Done", Type: TypeAction, Burn: 1},
}

// ByID looks a catalog entry up.
func ByID(id string) (SideOp, bool) {
	for _, op := range Catalog {
		if op.ID == id {
			return op, true
		}
	}
	return SideOp{}, false
}

// InitialWindow draws the starting active set: WindowSize distinct ids,
// uniformly at random from the catalog.
func InitialWindow(rng *rand.Rand) []string {
	perm := rng.Perm(len(Catalog))
	ids := make([]string, 0, WindowSize)
	for _, idx := range perm[:WindowSize] {
		ids = append(ids, Catalog[idx].ID)
	}
	return ids
}

// Replace removes completedID from the active window and fills the
// vacated slot with a uniformly random catalog entry that is neither
// still active nor the one just completed. If no such candidate exists
// (possible only with a catalog no bigger than the window) the exclusion
// of the completed op is dropped and repeats are allowed.
//
// The returned window preserves slot order and always has exactly
// WindowSize distinct members.
func Replace(active []string, completedID string, rng *rand.Rand) ([]string, error) {
	if _, ok := ByID(completedID); !ok {
		return nil, ErrUnknownMission
	}
	slot := -1
	for i, id := range active {
		if id == completedID {
			slot = i
			break
		}
	}
	if slot == -1 {
		return nil, ErrNotActive
	}

	inUse := func(id string, allowCompleted bool) bool {
		if !allowCompleted && id == completedID {
			return true
		}
		for i, a := range active {
			if i != slot && a == id {
				return true
			}
		}
		return false
	}

	var candidates []string
	for _, op := range Catalog {
		if !inUse(op.ID, false) {
			candidates = append(candidates, op.ID)
		}
	}
	if len(candidates) == 0 {
		for _, op := range Catalog {
			if !inUse(op.ID, true) {
				candidates = append(candidates, op.ID)
			}
		}
	}

	next := make([]string, len(active))
	copy(next, active)
	next[slot] = candidates[rng.Intn(len(candidates))]
	return next, nil
}
