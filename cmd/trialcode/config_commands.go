package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"trialcode/internal/config"
	"trialcode/internal/textcode"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintf(out, "Check it with: trialcode config validate --config %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, path, exists, err := config.Load(flagValue(ctx.configFlag))
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Config", statusError, err.Error(), false))
				return fmt.Errorf("load config: %w", err)
			}
			colorize := shouldColorize(out, cfg.Output.Color)
			source := path
			kind := statusOK
			if !exists {
				source = "defaults (no file at " + path + ")"
				kind = statusInfo
			}
			fmt.Fprintln(out, renderStatusLine("Config", kind, source, colorize))
			fmt.Fprintln(out, renderStatusLine("Logging", statusOK,
				fmt.Sprintf("%s, %s", cfg.Logging.Level, cfg.Logging.Format), colorize))
			fmt.Fprintln(out, renderStatusLine("Output", statusOK,
				fmt.Sprintf("%s, sample %s", cfg.Output.Format, sampleCode.Grouped(cfg.Output.GroupSize, cfg.Output.Separator)), colorize))
			fmt.Fprintln(out, renderStatusLine("Batch", statusOK, workersLabel(cfg.Batch.Workers), colorize))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long:  "Print the configuration after file loading, environment overrides, and --log-level/--log-format flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := toml.Marshal(ctx.configValue())
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// sampleCode previews output.group_size and output.separator.
const sampleCode textcode.Code = "7XXRYRL4SXSYY5NN"

func workersLabel(workers int) string {
	if workers == 0 {
		return "workers: all CPUs"
	}
	return fmt.Sprintf("workers: %d", workers)
}
