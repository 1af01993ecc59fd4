package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"trialcode/internal/logging"
	"trialcode/internal/record"
	"trialcode/internal/trialcode"
)

// batchFile is the TOML layout read by `trialcode batch`:
//
//	[[record]]
//	player = "MK"
//	course = "Yoshi Falls" # or a raw id such as 22
//	time = "0:45.994"
//	character = 6
//	kart = 34
type batchFile struct {
	Records []batchEntry `toml:"record"`
}

type batchEntry struct {
	Player    string `toml:"player"`
	Course    any    `toml:"course"`
	Time      string `toml:"time"`
	Character int    `toml:"character"`
	Kart      int    `toml:"kart"`
}

type batchRow struct {
	Record int    `json:"record"`
	Player string `json:"player"`
	Course string `json:"course"`
	Time   string `json:"time"`
	Char   int    `json:"character"`
	Kart   int    `json:"kart"`
	Code   string `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Generate codes for every record in a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readBatchFile(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = ctx.configValue().Batch.Workers
			}
			if workers < 0 {
				return fmt.Errorf("--workers must be >= 0 (got %d)", workers)
			}

			runID := uuid.NewString()
			runCtx := logging.WithRunID(cmd.Context(), runID)
			logger := logging.WithContext(runCtx, ctx.loggerFor("batch"))
			logger.Info("batch started",
				logging.String("file", args[0]),
				logging.Int("records", len(entries)),
				logging.Int("workers", workers),
			)

			rows := make([]batchRow, len(entries))
			recs := make([]record.RaceRecord, 0, len(entries))
			slots := make([]int, 0, len(entries))
			for i, entry := range entries {
				rows[i] = entry.row(i + 1)
				rec, err := entry.toRecord()
				if err != nil {
					rows[i].Error = err.Error()
					continue
				}
				recs = append(recs, rec)
				slots = append(slots, i)
			}

			results, err := trialcode.EncodeBatch(runCtx, recs, workers)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}
			for _, res := range results {
				row := &rows[slots[res.Index]]
				if res.Err != nil {
					row.Error = res.Err.Error()
					continue
				}
				row.Code = groupCode(ctx, res.Code)
			}

			failed := 0
			for _, row := range rows {
				if row.Error == "" {
					logger.Debug("code generated",
						logging.Int(logging.FieldRecord, row.Record),
						logging.String(logging.FieldCode, row.Code),
					)
					continue
				}
				failed++
				logger.Warn("record rejected",
					logging.Int(logging.FieldRecord, row.Record),
					logging.String(logging.FieldReason, row.Error),
				)
			}
			logger.Info("batch finished",
				logging.Int("encoded", len(rows)-failed),
				logging.Int("rejected", failed),
			)

			if wantJSON(cmd, ctx) {
				if err := writeJSON(cmd, rows); err != nil {
					return err
				}
			} else {
				renderBatch(cmd, ctx, rows, failed)
			}
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d records rejected", failed, len(rows))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent encoders (default batch.workers; 0 uses every CPU)")
	return cmd
}

func readBatchFile(path string) ([]batchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	var file batchFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	if len(file.Records) == 0 {
		return nil, fmt.Errorf("batch file %s has no [[record]] entries", path)
	}
	return file.Records, nil
}

func (e batchEntry) row(index int) batchRow {
	return batchRow{
		Record: index,
		Player: e.Player,
		Course: e.courseString(),
		Time:   e.Time,
		Char:   e.Character,
		Kart:   e.Kart,
	}
}

func (e batchEntry) courseString() string {
	switch v := e.Course.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func (e batchEntry) toRecord() (record.RaceRecord, error) {
	switch e.Course.(type) {
	case nil:
		return record.RaceRecord{}, errors.New("course is required")
	case string, int64:
	default:
		return record.RaceRecord{}, fmt.Errorf("course %v must be an id or a name", e.Course)
	}
	character, err := byteField("character", e.Character)
	if err != nil {
		return record.RaceRecord{}, err
	}
	kart, err := byteField("kart", e.Kart)
	if err != nil {
		return record.RaceRecord{}, err
	}
	in := recordInput{
		Time:      e.Time,
		Course:    e.courseString(),
		Character: character,
		Kart:      kart,
		Player:    e.Player,
	}
	return in.toRecord()
}

func byteField(name string, value int) (uint8, error) {
	if value < 0 || value > 255 {
		return 0, fmt.Errorf("%s %d out of range 0-255", name, value)
	}
	return uint8(value), nil
}

func renderBatch(cmd *cobra.Command, ctx *commandContext, rows []batchRow, failed int) {
	out := cmd.OutOrStdout()
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		result := row.Code
		if row.Error != "" {
			result = "error: " + row.Error
		}
		tableRows = append(tableRows, []string{
			strconv.Itoa(row.Record),
			row.Player,
			row.Course,
			row.Time,
			strconv.Itoa(row.Char),
			strconv.Itoa(row.Kart),
			result,
		})
	}
	fmt.Fprintln(out, renderTable(tableLayout{
		Headers: []string{"#", "Player", "Course", "Time", "Character", "Kart", "Code"},
		Aligns:  []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
		Footer:  []string{"", "", "", "", "", "", fmt.Sprintf("%d of %d encoded", len(rows)-failed, len(rows))},
	}, tableRows))

	colorize := shouldColorize(out, ctx.configValue().Output.Color)
	fmt.Fprintln(out, renderStatusLine("Encoded", statusOK, strconv.Itoa(len(rows)-failed), colorize))
	if failed > 0 {
		fmt.Fprintln(out, renderStatusLine("Rejected", statusError, strconv.Itoa(failed), colorize))
	}
}
