package config

const (
	defaultConfigPath = "~/.config/trialcode/config.toml"
	projectConfigName = "trialcode.toml"
	defaultLogLevel   = "warn"
	defaultLogFormat  = "console"
	defaultOutput     = "text"
	defaultGroupSize  = 4
	defaultSeparator  = " "
	defaultColor      = "auto"
	defaultWorkers    = 0
	maxGroupSize      = 16
	envLogLevel       = "TRIALCODE_LOG_LEVEL"
	envLogFormat      = "TRIALCODE_LOG_FORMAT"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: Output{
			Format:    defaultOutput,
			GroupSize: defaultGroupSize,
			Separator: defaultSeparator,
			Color:     defaultColor,
		},
		Batch: Batch{
			Workers: defaultWorkers,
		},
	}
}
