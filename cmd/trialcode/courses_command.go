package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"trialcode/internal/courses"
)

func newCoursesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List courses with their raw ids and code ordinals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := courses.All()
			if wantJSON(cmd, ctx) {
				return writeJSON(cmd, all)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCourseTable(all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// renderCourseTable prints one block per cup with the cup name merged over
// its courses.
func renderCourseTable(all []courses.Course) string {
	rows := make([][]string, 0, len(all))
	for _, c := range all {
		rows = append(rows, []string{
			c.CupName,
			strconv.Itoa(c.Slot + 1),
			strconv.Itoa(c.Ordinal),
			strconv.Itoa(c.RawID),
			c.Name,
		})
	}
	return renderTable(tableLayout{
		Headers:    []string{"Cup", "Slot", "Ordinal", "Raw ID", "Course"},
		Aligns:     []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
		Footer:     []string{"", "", "", "", fmt.Sprintf("%d courses", len(all))},
		Merge:      []int{0},
		GroupEvery: courses.CoursesPerCup,
	}, rows)
}
