// Package config loads the demo app's settings from a KEY=VALUE rc file
// with environment overrides. Nothing here is required for the library
// itself; the core takes its configuration programmatically.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the tunables of the demo app.
type Config struct {
	// DistanceToKeyboard is the breathing room (in cells) kept between the
	// focused input and the keyboard panel.
	DistanceToKeyboard int
	// DismissOnOutsideTap resigns focus when a click lands outside inputs.
	DismissOnOutsideTap bool
	// KeyboardHeight is the height (in cells) of the open keyboard panel.
	// Panels shorter than 20 cells count as floating keyboards and are
	// ignored by the inset session.
	KeyboardHeight int
	// AnimationMs is the duration of the keyboard slide animation.
	AnimationMs int
	// AnimationCurve is one of linear, ease-in, ease-out, ease-in-out, spring.
	AnimationCurve string
	// LogLevel filters the debug log (debug, info, warn, error).
	LogLevel string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DistanceToKeyboard:  1,
		DismissOnOutsideTap: true,
		KeyboardHeight:      20,
		AnimationMs:         250,
		AnimationCurve:      "spring",
		LogLevel:            "warn",
	}
}

// DefaultPath returns the rc file location, ~/.scrollguardrc.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scrollguardrc"
	}
	return filepath.Join(home, ".scrollguardrc")
}

// Load reads the rc file at path and applies SCROLLGUARD_* environment
// overrides on top. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				return cfg, fmt.Errorf("invalid line in %s: %q", path, line)
			}
			if err := cfg.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
				return cfg, err
			}
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	for _, key := range keys {
		if v, ok := os.LookupEnv("SCROLLGUARD_" + key); ok {
			if err := cfg.set(key, v); err != nil {
				return cfg, err
			}
		}
	}
	return cfg, nil
}

// Save writes the config as KEY=VALUE lines.
func Save(path string, cfg Config) error {
	var b strings.Builder
	b.WriteString("DISTANCE_TO_KEYBOARD=" + strconv.Itoa(cfg.DistanceToKeyboard) + "\n")
	b.WriteString("DISMISS_ON_OUTSIDE_TAP=" + strconv.FormatBool(cfg.DismissOnOutsideTap) + "\n")
	b.WriteString("KEYBOARD_HEIGHT=" + strconv.Itoa(cfg.KeyboardHeight) + "\n")
	b.WriteString("ANIMATION_MS=" + strconv.Itoa(cfg.AnimationMs) + "\n")
	b.WriteString("ANIMATION_CURVE=" + cfg.AnimationCurve + "\n")
	b.WriteString("LOG_LEVEL=" + cfg.LogLevel + "\n")
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

var keys = []string{
	"DISTANCE_TO_KEYBOARD",
	"DISMISS_ON_OUTSIDE_TAP",
	"KEYBOARD_HEIGHT",
	"ANIMATION_MS",
	"ANIMATION_CURVE",
	"LOG_LEVEL",
}

func (c *Config) set(key, value string) error {
	switch key {
	case "DISTANCE_TO_KEYBOARD":
		return setInt(&c.DistanceToKeyboard, key, value)
	case "DISMISS_ON_OUTSIDE_TAP":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config %s: %w", key, err)
		}
		c.DismissOnOutsideTap = b
	case "KEYBOARD_HEIGHT":
		return setInt(&c.KeyboardHeight, key, value)
	case "ANIMATION_MS":
		return setInt(&c.AnimationMs, key, value)
	case "ANIMATION_CURVE":
		c.AnimationCurve = value
	case "LOG_LEVEL":
		c.LogLevel = value
	default:
		// Unknown keys are ignored so older rc files keep working.
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}
	*dst = n
	return nil
}
