package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"trialcode/internal/record"
	"trialcode/internal/trialcode"
)

type inspectOutput struct {
	encodeOutput
	KartCharacter uint32 `json:"kart_character"`
	NameUnits     string `json:"name_units"`
	Packed        string `json:"packed"`
	Checksum      string `json:"checksum"`
	Obfuscated    string `json:"obfuscated"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var in recordInput
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show every intermediate stage of encoding a result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := in.toRecord()
			if err != nil {
				return err
			}
			stages, err := trialcode.Trace(rec)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			ctx.loggerFor("inspect").Debug("stages computed", "packed", hex.EncodeToString(stages.Packed[:]))

			out := inspectOutput{
				encodeOutput:  newEncodeOutput(ctx, rec, stages),
				KartCharacter: rec.KartCharacter(),
				NameUnits:     fmt.Sprintf("%04x %04x", rec.PlayerName[0], rec.PlayerName[1]),
				Packed:        hexBytes(stages.Packed),
				Checksum:      fmt.Sprintf("%04x", stages.Checksum),
				Obfuscated:    hexBytes(stages.Obfuscated),
			}
			if wantJSON(cmd, ctx) {
				return writeJSON(cmd, out)
			}

			rows := [][]string{
				{"Course", fmt.Sprintf("%s (raw %d, ordinal %d)", out.Course.Name, out.Course.RawID, out.Course.Ordinal)},
				{"Time", fmt.Sprintf("%s (%d ms)", out.Time, out.ElapsedMs)},
				{"Kart/character", strconv.FormatUint(uint64(out.KartCharacter), 10)},
				{"Name units", out.NameUnits},
				{"Packed", out.Packed},
				{"Checksum", out.Checksum},
				{"Obfuscated", out.Obfuscated},
				{"Code", out.Grouped},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(tableLayout{Headers: []string{"Stage", "Value"}}, rows))
			return nil
		},
	}

	in.registerFlags(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func hexBytes(buf [record.Size]byte) string {
	out := make([]byte, 0, record.Size*3)
	for i, b := range buf {
		if i > 0 {
			out = append(out, ' ')
		}
		out = hex.AppendEncode(out, []byte{b})
	}
	return string(out)
}
