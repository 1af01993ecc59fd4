package main

import (
	"fmt"
	"unicode/utf16"

	"github.com/spf13/cobra"

	"trialcode/internal/courses"
	"trialcode/internal/logging"
	"trialcode/internal/record"
	"trialcode/internal/textcode"
	"trialcode/internal/trialcode"
)

type encodeOutput struct {
	Code      textcode.Code  `json:"code"`
	Grouped   string         `json:"grouped"`
	Time      string         `json:"time"`
	ElapsedMs int64          `json:"elapsed_ms"`
	Course    courses.Course `json:"course"`
	Character uint8          `json:"character"`
	Kart      uint8          `json:"kart"`
	Player    string         `json:"player"`
}

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var in recordInput
	var jsonOut bool
	var raw bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Generate the code for one time trial result",
		Example: `  trialcode encode --time 0:45.994 --course "Yoshi Falls" --character 6 --kart 34 --player MKDasher
  trialcode encode -t 1:02.345 --course 22 --player MK --raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := in.toRecord()
			if err != nil {
				return err
			}
			logger := ctx.loggerFor("encode")
			stages, err := trialcode.Trace(rec)
			if err != nil {
				logger.Warn("record rejected", logging.Args(
					logging.Int(logging.FieldCourse, rec.Course),
					logging.Error(err),
				)...)
				return fmt.Errorf("encode: %w", err)
			}
			logger.Info("code generated", logging.Args(
				logging.Int(logging.FieldCourse, rec.Course),
				logging.String(logging.FieldCode, stages.Code.String()),
			)...)

			out := newEncodeOutput(ctx, rec, stages)
			if wantJSON(cmd, ctx) {
				return writeJSON(cmd, out)
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), out.Code)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Grouped)
			return nil
		},
	}

	in.registerFlags(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the code without grouping")
	return cmd
}

func newEncodeOutput(ctx *commandContext, rec record.RaceRecord, stages trialcode.Stages) encodeOutput {
	course, _ := courses.ByOrdinal(stages.Ordinal)
	return encodeOutput{
		Code:      stages.Code,
		Grouped:   groupCode(ctx, stages.Code),
		Time:      formatLapTime(rec.Elapsed),
		ElapsedMs: rec.ElapsedMillis(),
		Course:    course,
		Character: rec.Character,
		Kart:      rec.Vehicle,
		Player:    prefixString(rec.PlayerName),
	}
}

// groupCode formats code per output.group_size and output.separator.
func groupCode(ctx *commandContext, code textcode.Code) string {
	cfg := ctx.configValue()
	return code.Grouped(cfg.Output.GroupSize, cfg.Output.Separator)
}

// prefixString renders the encoded name units, stopping at the first zero
// unit.
func prefixString(units [2]uint16) string {
	n := 0
	for n < len(units) && units[n] != 0 {
		n++
	}
	return string(utf16.Decode(units[:n]))
}
