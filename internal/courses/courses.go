package courses

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"trialcode/internal/textutil"
)

const (
	NumCups       = 8
	CoursesPerCup = 4
	NumCourses    = NumCups * CoursesPerCup
)

// ErrNotFound reports a raw id, ordinal, or name absent from the table.
var ErrNotFound = errors.New("course not found")

// rawIDs lists raw course ids in ordinal order, one row per cup.
var rawIDs = [NumCups][CoursesPerCup]int{
	{20, 22, 31, 18},
	{27, 28, 33, 24},
	{30, 17, 25, 19},
	{34, 26, 32, 29},
	{10, 11, 13, 14},
	{35, 16, 12, 9},
	{15, 36, 37, 38},
	{39, 23, 40, 1},
}

var cupNames = [NumCups]string{
	"Mushroom Cup", "Flower Cup", "Star Cup", "Special Cup",
	"Shell Cup", "Banana Cup", "Leaf Cup", "Lightning Cup",
}

var courseNames = [NumCups][CoursesPerCup]string{
	{"Figure-8 Circuit", "Yoshi Falls", "Cheep Cheep Beach", "Luigi's Mansion"},
	{"Desert Hills", "Delfino Square", "Waluigi Pinball", "Shroom Ridge"},
	{"DK Pass", "Tick-Tock Clock", "Mario Circuit", "Airship Fortress"},
	{"Wario Stadium", "Peach Gardens", "Bowser Castle", "Rainbow Road"},
	{"SNES Mario Circuit 1", "N64 Moo Moo Farm", "GBA Peach Circuit", "GCN Luigi Circuit"},
	{"SNES Donut Plains 1", "N64 Frappe Snowland", "GBA Bowser Castle 2", "GCN Baby Park"},
	{"SNES Koopa Beach 2", "N64 Choco Mountain", "GBA Luigi Circuit", "GCN Mushroom Bridge"},
	{"SNES Choco Island 2", "N64 Banshee Boardwalk", "GBA Sky Garden", "GCN Yoshi Circuit"},
}

// Course describes one table entry.
type Course struct {
	RawID   int    `json:"raw_id"`
	Ordinal int    `json:"ordinal"`
	Cup     int    `json:"cup"`
	Slot    int    `json:"slot"`
	Name    string `json:"name"`
	CupName string `json:"cup_name"`
}

func at(cup, slot int) Course {
	return Course{
		RawID:   rawIDs[cup][slot],
		Ordinal: cup*CoursesPerCup + slot,
		Cup:     cup,
		Slot:    slot,
		Name:    courseNames[cup][slot],
		CupName: cupNames[cup],
	}
}

// Resolve returns the course whose raw id is raw.
func Resolve(raw int) (Course, error) {
	for cup := range NumCups {
		for slot := range CoursesPerCup {
			if rawIDs[cup][slot] == raw {
				return at(cup, slot), nil
			}
		}
	}
	return Course{}, fmt.Errorf("raw id %d: %w", raw, ErrNotFound)
}

// ByOrdinal returns the course at ordinal position ordinal.
func ByOrdinal(ordinal int) (Course, error) {
	if ordinal < 0 || ordinal >= NumCourses {
		return Course{}, fmt.Errorf("ordinal %d: %w", ordinal, ErrNotFound)
	}
	return at(ordinal/CoursesPerCup, ordinal%CoursesPerCup), nil
}

// All returns every course in ordinal order.
func All() []Course {
	out := make([]Course, 0, NumCourses)
	for cup := range NumCups {
		for slot := range CoursesPerCup {
			out = append(out, at(cup, slot))
		}
	}
	return out
}

// Lookup resolves query as a decimal raw id or, failing that, a course name.
// Name matching ignores case, spacing, and punctuation.
func Lookup(query string) (Course, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Course{}, fmt.Errorf("empty course: %w", ErrNotFound)
	}
	if raw, err := strconv.Atoi(query); err == nil {
		return Resolve(raw)
	}
	key := textutil.FoldKey(query)
	for cup := range NumCups {
		for slot := range CoursesPerCup {
			if textutil.FoldKey(courseNames[cup][slot]) == key {
				return at(cup, slot), nil
			}
		}
	}
	return Course{}, fmt.Errorf("course %q: %w", query, ErrNotFound)
}
