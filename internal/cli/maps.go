package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bogen85/xrandr-utils/internal/config"
	"github.com/bogen85/xrandr-utils/internal/display"
	"github.com/bogen85/xrandr-utils/internal/output"
)

// Map commands walk every section in source order and emit name=value
// lines through a MapWriter, which applies the --filtered/--keys/--values
// projection. The emit* helpers are pure over parsed sections so the
// policy can be tested without xrandr.

func addMapFlags(cmd *cobra.Command, flags *output.MapFlags) {
	cmd.Flags().BoolVar(&flags.Filtered, "filtered", false,
		"omit entries with an empty value")
	cmd.Flags().BoolVar(&flags.Keys, "keys", false,
		"print keys only, one per line")
	cmd.Flags().BoolVar(&flags.Values, "values", false,
		"print distinct values only, in first-occurrence order")
}

// newMapCommand builds one *_map command. Flag validation happens before
// any input is acquired, so a bad flag combination never invokes xrandr.
func newMapCommand(use, short string, emit func(cfg *config.Config, sections []display.Section, w *output.MapWriter) error) *cobra.Command {
	var flags output.MapFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.Validate(); err != nil {
				return err
			}
			cfg, sections, err := loadAll()
			if err != nil {
				return err
			}
			return emit(cfg, sections, output.NewMapWriter(os.Stdout, flags))
		},
	}
	addMapFlags(cmd, &flags)
	return cmd
}

func init() {
	rootCmd.AddCommand(
		newMapCommand("display_connected_map",
			"Map every display name to its connection state",
			func(cfg *config.Config, sections []display.Section, w *output.MapWriter) error {
				emitConnectedMap(w, sections)
				return nil
			}),
		newMapCommand("display_section_map",
			"Map every display name to its escaped verbose section",
			func(cfg *config.Config, sections []display.Section, w *output.MapWriter) error {
				emitSectionMap(w, sections)
				return nil
			}),
		newMapCommand("display_serial_map",
			"Map every display name to its EDID serial number",
			func(cfg *config.Config, sections []display.Section, w *output.MapWriter) error {
				emitSerialMap(w, sections, func(section *display.Section) string {
					serial, err := sectionSerial(cfg, section)
					if err != nil {
						return ""
					}
					return serial
				})
				return nil
			}),
		newMapCommand("display_connector_map",
			"Map every display name to its CONNECTOR_ID",
			func(cfg *config.Config, sections []display.Section, w *output.MapWriter) error {
				emitConnectorMap(w, sections)
				return nil
			}),
		newMapCommand("display_geometry_map",
			"Map connected displays with a mode to their geometry",
			func(cfg *config.Config, sections []display.Section, w *output.MapWriter) error {
				emitGeometryMap(w, sections)
				return nil
			}),
		newMapCommand("display_monitor_map",
			"Map every display name to its monitor index",
			func(cfg *config.Config, sections []display.Section, w *output.MapWriter) error {
				monitors, err := loadMonitorMap(cfg)
				if err != nil {
					return err
				}
				emitMonitorMap(w, sections, monitors)
				return nil
			}),
	)
}

func emitConnectedMap(w *output.MapWriter, sections []display.Section) {
	for i := range sections {
		w.Emit(sections[i].Name, sections[i].State.String())
	}
}

func emitSectionMap(w *output.MapWriter, sections []display.Section) {
	for i := range sections {
		text := strings.Join(sections[i].Lines, "\n")
		w.Emit(sections[i].Name, output.EscapeMultiline(text))
	}
}

// emitSerialMap is best-effort per display: a display without a
// resolvable serial gets an empty value instead of failing the whole map.
func emitSerialMap(w *output.MapWriter, sections []display.Section, serial func(*display.Section) string) {
	for i := range sections {
		w.Emit(sections[i].Name, serial(&sections[i]))
	}
}

func emitConnectorMap(w *output.MapWriter, sections []display.Section) {
	for i := range sections {
		id, _ := display.ExtractConnectorID(&sections[i])
		w.Emit(sections[i].Name, id)
	}
}

// emitGeometryMap skips disconnected displays and connected displays
// without an active mode entirely, rather than emitting empty values.
// Primary displays get a "primary," prefix on the geometry.
func emitGeometryMap(w *output.MapWriter, sections []display.Section) {
	for i := range sections {
		section := &sections[i]
		if section.State != display.Connected || section.Geometry == "" {
			continue
		}
		value := section.Geometry
		if section.Primary {
			value = "primary," + value
		}
		w.Emit(section.Name, value)
	}
}

func emitMonitorMap(w *output.MapWriter, sections []display.Section, monitors map[string]string) {
	for i := range sections {
		w.Emit(sections[i].Name, monitors[sections[i].Name])
	}
}
