package config

import (
	"fmt"
	"strings"

	"github.com/bogen85/xrandr-utils/internal/errors"
)

// reservedNames are built-in command names a layout may not shadow.
var reservedNames = map[string]bool{
	"display_connected":     true,
	"display_connected_map": true,
	"display_section":       true,
	"display_section_map":   true,
	"display_edid":          true,
	"display_edid_decoded":  true,
	"display_serial":        true,
	"display_serial_map":    true,
	"display_connector":     true,
	"display_connector_map": true,
	"display_names":         true,
	"display_geometry":      true,
	"display_geometry_map":  true,
	"display_label_line":    true,
	"display_monitor":       true,
	"display_monitor_map":   true,
	"single_display_output": true,
	"dual_display_output":   true,
	"init":                  true,
	"watch":                 true,
	"version":               true,
	"completion":            true,
	"help":                  true,
}

// IsReservedName reports whether a layout name collides with a built-in
// command.
func IsReservedName(name string) bool {
	return reservedNames[name]
}

// Validate checks a loaded config for consistency.
func Validate(cfg *Config) error {
	for name, layout := range cfg.Layouts {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \t\n") {
			return errors.New(errors.ErrValidate,
				fmt.Sprintf("Invalid layout name: %q", name),
				"Layout names must be non-empty and contain no whitespace")
		}
		if IsReservedName(name) {
			return errors.New(errors.ErrValidate,
				fmt.Sprintf("Layout name '%s' shadows a built-in command", name),
				"Rename the layout in your config file")
		}
		if strings.TrimSpace(layout.Primary) == "" {
			return errors.New(errors.ErrValidate,
				fmt.Sprintf("Layout '%s' has no primary display", name),
				"Set 'primary' to one of the names from 'xrandr-utils display_names'")
		}
		if layout.Secondary != "" && layout.Secondary == layout.Primary {
			return errors.New(errors.ErrValidate,
				fmt.Sprintf("Layout '%s' uses the same display for primary and secondary", name),
				"Pick two different displays for a dual layout")
		}
	}

	return nil
}
