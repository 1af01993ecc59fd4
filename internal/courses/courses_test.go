package courses_test

import (
	"errors"
	"testing"

	"trialcode/internal/courses"
)

func TestResolveKnownIDs(t *testing.T) {
	tests := []struct {
		raw     int
		ordinal int
		cup     int
		slot    int
		name    string
	}{
		{20, 0, 0, 0, "Figure-8 Circuit"},
		{22, 1, 0, 1, "Yoshi Falls"},
		{24, 7, 1, 3, "Shroom Ridge"},
		{9, 23, 5, 3, "GCN Baby Park"},
		{1, 31, 7, 3, "GCN Yoshi Circuit"},
	}
	for _, tt := range tests {
		c, err := courses.Resolve(tt.raw)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", tt.raw, err)
		}
		if c.Ordinal != tt.ordinal || c.Cup != tt.cup || c.Slot != tt.slot {
			t.Fatalf("Resolve(%d) = ordinal %d cup %d slot %d, want %d/%d/%d", tt.raw, c.Ordinal, c.Cup, c.Slot, tt.ordinal, tt.cup, tt.slot)
		}
		if c.Name != tt.name {
			t.Fatalf("Resolve(%d) name = %q, want %q", tt.raw, c.Name, tt.name)
		}
	}
}

func TestResolveUnknownID(t *testing.T) {
	for _, raw := range []int{0, 2, 8, 21, 41, -1} {
		if _, err := courses.Resolve(raw); !errors.Is(err, courses.ErrNotFound) {
			t.Fatalf("Resolve(%d) error = %v, want ErrNotFound", raw, err)
		}
	}
}

func TestAllIsOrdinalOrderedAndRoundTrips(t *testing.T) {
	all := courses.All()
	if len(all) != courses.NumCourses {
		t.Fatalf("All() returned %d courses, want %d", len(all), courses.NumCourses)
	}
	seen := make(map[int]bool, len(all))
	for i, c := range all {
		if c.Ordinal != i {
			t.Fatalf("entry %d has ordinal %d", i, c.Ordinal)
		}
		if seen[c.RawID] {
			t.Fatalf("raw id %d listed twice", c.RawID)
		}
		seen[c.RawID] = true

		resolved, err := courses.Resolve(c.RawID)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", c.RawID, err)
		}
		if resolved != c {
			t.Fatalf("Resolve(%d) = %+v, want %+v", c.RawID, resolved, c)
		}
		byOrdinal, err := courses.ByOrdinal(i)
		if err != nil {
			t.Fatalf("ByOrdinal(%d): %v", i, err)
		}
		if byOrdinal != c {
			t.Fatalf("ByOrdinal(%d) = %+v, want %+v", i, byOrdinal, c)
		}
	}
}

func TestByOrdinalOutOfRange(t *testing.T) {
	for _, ordinal := range []int{-1, 32, 100} {
		if _, err := courses.ByOrdinal(ordinal); !errors.Is(err, courses.ErrNotFound) {
			t.Fatalf("ByOrdinal(%d) error = %v, want ErrNotFound", ordinal, err)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		query string
		raw   int
	}{
		{"22", 22},
		{" 1 ", 1},
		{"Yoshi Falls", 22},
		{"yoshi-falls", 22},
		{"LUIGIS MANSION", 18},
		{"tick tock clock", 17},
		{"gba bowser castle 2", 12},
	}
	for _, tt := range tests {
		c, err := courses.Lookup(tt.query)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.query, err)
		}
		if c.RawID != tt.raw {
			t.Fatalf("Lookup(%q) raw = %d, want %d", tt.query, c.RawID, tt.raw)
		}
	}

	for _, query := range []string{"", "0", "Rainbow Roads", "moon"} {
		if _, err := courses.Lookup(query); !errors.Is(err, courses.ErrNotFound) {
			t.Fatalf("Lookup(%q) error = %v, want ErrNotFound", query, err)
		}
	}
}
