package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return errors.New("batch.workers must not be negative (0 uses every CPU)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if err := ensureOneOf("logging.level", c.Logging.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	return ensureOneOf("logging.format", c.Logging.Format, "console", "json")
}

func (c *Config) validateOutput() error {
	if err := ensureOneOf("output.format", c.Output.Format, "text", "json"); err != nil {
		return err
	}
	if err := ensureOneOf("output.color", c.Output.Color, "auto", "always", "never"); err != nil {
		return err
	}
	if c.Output.GroupSize < 0 || c.Output.GroupSize > maxGroupSize {
		return fmt.Errorf("output.group_size must be between 0 and %d", maxGroupSize)
	}
	if strings.ContainsAny(c.Output.Separator, "\r\n") {
		return errors.New("output.separator must not contain line breaks")
	}
	return nil
}

func ensureOneOf(key, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q (expected one of %s)", key, value, strings.Join(allowed, ", "))
}
