package missions

import (
	"errors"
	"math/rand"
	"testing"
)

func distinct(ids []string) bool {
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

func TestCatalog_Shape(t *testing.T) {
	if len(Catalog) != 16 {
		t.Fatalf("catalog has %d entries, want 16", len(Catalog))
	}
	ids := make([]string, 0, len(Catalog))
	for _, op := range Catalog {
		ids = append(ids, op.ID)
		switch op.Type {
		case TypeAction, TypeWater, TypePhoto, TypeWait:
		default:
			t.Errorf("op %q has unknown type %q", op.ID, op.Type)
		}
		if op.Burn < 0 {
			t.Errorf("op %q has negative burn", op.ID)
		}
	}
	if !distinct(ids) {
		t.Error("catalog ids are not distinct")
	}
}

func TestInitialWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	win := InitialWindow(rng)
	if len(win) != WindowSize {
		t.Fatalf("window size = %d, want %d", len(win), WindowSize)
	}
	if !distinct(win) {
		t.Errorf("initial window has duplicates: %v", win)
	}
	for _, id := range win {
		if _, ok := ByID(id); !ok {
			t.Errorf("window id %q not in catalog", id)
		}
	}
}

// TestReplace_Invariant drives many completion cycles and checks the
// window invariant after every one: exactly three distinct active ids and
// the completed id absent from the new window.
func TestReplace_Invariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	active := InitialWindow(rng)
	for i := 0; i < 500; i++ {
		completed := active[rng.Intn(WindowSize)]
		next, err := Replace(active, completed, rng)
		if err != nil {
			t.Fatalf("cycle %d: Replace: %v", i, err)
		}
		if len(next) != WindowSize {
			t.Fatalf("cycle %d: window size %d", i, len(next))
		}
		if !distinct(next) {
			t.Fatalf("cycle %d: duplicate ids %v", i, next)
		}
		for _, id := range next {
			if id == completed {
				t.Fatalf("cycle %d: completed id %q redrawn immediately", i, completed)
			}
		}
		// Untouched slots keep their ops in place.
		for s := range active {
			if active[s] != completed && next[s] != active[s] {
				t.Fatalf("cycle %d: slot %d changed without completion", i, s)
			}
		}
		active = next
	}
}

func TestReplace_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	active := InitialWindow(rng)

	if _, err := Replace(active, "no-such-op", rng); !errors.Is(err, ErrUnknownMission) {
		t.Errorf("unknown id: err=%v, want ErrUnknownMission", err)
	}

	var inactive string
	for _, op := range Catalog {
		found := false
		for _, id := range active {
			if id == op.ID {
				found = true
			}
		}
		if !found {
			inactive = op.ID
			break
		}
	}
	if _, err := Replace(active, inactive, rng); !errors.Is(err, ErrNotActive) {
		t.Errorf("inactive id: err=%v, want ErrNotActive", err)
	}
}

func TestByID(t *testing.T) {
	op, ok := ByID("hydration-check")
	if !ok || op.Type != TypeWater {
		t.Errorf("ByID(hydration-check) = %+v, %v", op, ok)
	}
	if _, ok := ByID("missing"); ok {
		t.Error("ByID(missing) reported found")
	}
}
