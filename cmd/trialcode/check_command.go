package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trialcode/internal/textcode"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check CODE",
		Short: "Check that a code is well formed",
		Long: "Check that a code has sixteen symbols from the code alphabet.\n" +
			"Grouping spaces and hyphens are ignored, so the code may be passed as several arguments.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out, ctx.configValue().Output.Color)
			code, err := textcode.Parse(strings.Join(args, ""))
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Code", statusError, err.Error(), colorize))
				return fmt.Errorf("check: %w", err)
			}
			fmt.Fprintln(out, renderStatusLine("Code", statusOK, groupCode(ctx, code), colorize))
			return nil
		},
	}
}
