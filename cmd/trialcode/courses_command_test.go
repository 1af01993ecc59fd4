package main

import (
	"encoding/json"
	"strings"
	"testing"

	"trialcode/internal/courses"
)

func TestCoursesCommandTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"courses"}, env.configPath)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	requireContains(t, out, "Figure-8 Circuit")
	requireContains(t, out, "Lightning Cup")
	requireContains(t, out, "GCN Yoshi Circuit")
	requireContains(t, out, "32 COURSES")
	if n := strings.Count(out, "Mushroom Cup"); n != 1 {
		t.Fatalf("expected cup name merged into one cell, found %d", n)
	}
}

func TestCoursesCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"courses", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("courses --json: %v", err)
	}
	var all []courses.Course
	if err := json.Unmarshal([]byte(out), &all); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(all) != courses.NumCourses {
		t.Fatalf("expected %d courses, got %d", courses.NumCourses, len(all))
	}
	if all[1].RawID != 22 || all[1].Name != "Yoshi Falls" {
		t.Fatalf("unexpected ordinal 1 entry %+v", all[1])
	}
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check", "7xxr-yrl4", "SXSY", "Y5NN"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "[OK] 7XXR YRL4 SXSY Y5NN")

	out, _, err = runCLI(t, []string{"check", "7XXR YRL4 SXSY Y5N0"}, env.configPath)
	if err == nil {
		t.Fatal("expected invalid symbol to fail")
	}
	requireContains(t, out, "[ERROR]")

	if _, _, err := runCLI(t, []string{"check", "7XXR"}, env.configPath); err == nil {
		t.Fatal("expected short code to fail")
	}
}
