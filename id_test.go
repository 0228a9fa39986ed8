package okane

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestIDSource_NewID(t *testing.T) {
	at := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)
	ids := fixedIDSource(at, 42)

	id := ids.NewID()
	if ok, _ := regexp.MatchString(`^\d{13}-[a-z0-9]{9}$`, id); !ok {
		t.Fatalf("id %q does not match <millis>-<9 alnum>", id)
	}
	if !strings.HasPrefix(id, "1768910400000-") {
		t.Errorf("id %q does not start with the millisecond timestamp of the clock", id)
	}
}

func TestIDSource_NewID_Unique(t *testing.T) {
	ids := fixedIDSource(time.Now(), 1)
	seen := make(map[string]bool)
	for range 1000 {
		id := ids.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIDSource_Deterministic(t *testing.T) {
	at := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)
	a := fixedIDSource(at, 7).NewID()
	b := fixedIDSource(at, 7).NewID()
	if a != b {
		t.Errorf("same clock and seed produced %q and %q", a, b)
	}
}
