package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"trialcode/internal/courses"
	"trialcode/internal/record"
)

// recordInput is a race result as typed by a user, before validation.
type recordInput struct {
	Time      string
	Course    string
	Character uint8
	Kart      uint8
	Player    string
}

func (in *recordInput) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.Time, "time", "t", "", "Finishing time as M:SS.mmm (e.g. 0:45.994)")
	cmd.Flags().StringVar(&in.Course, "course", "", "Raw course id or course name")
	cmd.Flags().Uint8Var(&in.Character, "character", 0, "Character id")
	cmd.Flags().Uint8Var(&in.Kart, "kart", 0, "Kart id")
	cmd.Flags().StringVarP(&in.Player, "player", "p", "", "Player name (only the first two characters are encoded)")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("course")
}

// toRecord converts the input into a RaceRecord. Numeric courses are passed
// through untouched so unknown ids are rejected by the packer; names must
// match the course table.
func (in recordInput) toRecord() (record.RaceRecord, error) {
	elapsed, err := parseLapTime(in.Time)
	if err != nil {
		return record.RaceRecord{}, err
	}
	raw, err := resolveCourseArg(in.Course)
	if err != nil {
		return record.RaceRecord{}, err
	}
	return record.RaceRecord{
		Elapsed:    elapsed,
		Character:  in.Character,
		Vehicle:    in.Kart,
		PlayerName: record.NamePrefix(in.Player),
		Course:     raw,
	}, nil
}

func resolveCourseArg(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("course is required")
	}
	if raw, err := strconv.Atoi(value); err == nil {
		return raw, nil
	}
	course, err := courses.Lookup(value)
	if err != nil {
		return 0, fmt.Errorf("course %q: %w", value, record.ErrUnknownCourse)
	}
	return course.RawID, nil
}

// maxClockMinutes is the largest minute field below record.MaxElapsed.
const maxClockMinutes = 3

// parseLapTime accepts M:SS.mmm, M:SS:mmm (as the game displays it),
// SS.mmm, or a Go duration such as 45.994s. Clock forms need seconds in
// 0-59; a minute field past maxClockMinutes is reported as
// record.ErrDurationTooLong.
func parseLapTime(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("time is required")
	}
	if !strings.Contains(value, ":") {
		if d, err := time.ParseDuration(value); err == nil {
			if d < 0 {
				return 0, fmt.Errorf("time %q must not be negative", value)
			}
			return d, nil
		}
		return parseSeconds(value, 0, false)
	}

	parts := strings.Split(value, ":")
	var secondsText string
	switch len(parts) {
	case 2:
		secondsText = parts[1]
	case 3:
		if strings.Contains(parts[1], ".") || strings.Contains(parts[2], ".") {
			return 0, fmt.Errorf("time %q: unexpected '.'", value)
		}
		secondsText = parts[1] + "." + parts[2]
	default:
		return 0, fmt.Errorf("time %q: expected M:SS.mmm", value)
	}
	minutes, err := parseField(parts[0], "minutes")
	if err != nil {
		return 0, err
	}
	if minutes > maxClockMinutes {
		return 0, fmt.Errorf("time %q: %w", value, record.ErrDurationTooLong)
	}
	return parseSeconds(secondsText, minutes, true)
}

func parseSeconds(value string, minutes int, clock bool) (time.Duration, error) {
	whole, frac, _ := strings.Cut(value, ".")
	seconds, err := parseField(whole, "seconds")
	if err != nil {
		return 0, err
	}
	if clock && seconds > 59 {
		return 0, fmt.Errorf("seconds %d out of range 0-59", seconds)
	}
	millis := 0
	if frac != "" {
		if len(frac) > 3 {
			return 0, fmt.Errorf("fraction %q has more than millisecond precision", frac)
		}
		padded := frac + strings.Repeat("0", 3-len(frac))
		if millis, err = parseField(padded, "milliseconds"); err != nil {
			return 0, err
		}
	}
	return record.LapTime(minutes, seconds, millis), nil
}

func parseField(value, name string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%s missing", name)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || strings.HasPrefix(value, "+") {
		return 0, fmt.Errorf("%s %q is not a non-negative number", name, value)
	}
	return n, nil
}

func formatLapTime(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}
