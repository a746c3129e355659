package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bogen85/xrandr-utils/internal/config"
	"github.com/bogen85/xrandr-utils/internal/display"
	"github.com/bogen85/xrandr-utils/internal/errors"
)

// Single-value query commands. Each one acquires the topology, looks up
// a display, and prints one field. The printing logic lives in small
// helpers that take an io.Writer so it can be tested against fixture
// sections without touching xrandr.

var displayConnectedCmd = &cobra.Command{
	Use:   "display_connected <display>",
	Short: "Print the connection state of a display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sections, err := loadAll()
		if err != nil {
			return err
		}
		return printConnected(os.Stdout, sections, args[0])
	},
}

var displaySectionCmd = &cobra.Command{
	Use:   "display_section <display>",
	Short: "Print a display's full verbose section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sections, err := loadAll()
		if err != nil {
			return err
		}
		return printSection(os.Stdout, sections, args[0])
	},
}

var displayEDIDCmd = &cobra.Command{
	Use:   "display_edid <display>",
	Short: "Print a display's EDID as a hex string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sections, err := loadAll()
		if err != nil {
			return err
		}
		return printEDID(os.Stdout, sections, args[0])
	},
}

var displayEDIDDecodedCmd = &cobra.Command{
	Use:   "display_edid_decoded <display>",
	Short: "Print a display's EDID decoded by edid-decode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sections, err := loadAll()
		if err != nil {
			return err
		}
		section, err := findSection(sections, args[0])
		if err != nil {
			return err
		}
		hex, err := sectionEDID(section)
		if err != nil {
			return err
		}
		report, err := decodeEDID(cfg, hex)
		if err != nil {
			return err
		}
		fmt.Print(report)
		if !strings.HasSuffix(report, "\n") {
			fmt.Println()
		}
		return nil
	},
}

var displaySerialCmd = &cobra.Command{
	Use:   "display_serial <display>",
	Short: "Print a display's serial number from its EDID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sections, err := loadAll()
		if err != nil {
			return err
		}
		section, err := findSection(sections, args[0])
		if err != nil {
			return err
		}
		serial, err := sectionSerial(cfg, section)
		if err != nil {
			return err
		}
		fmt.Println(serial)
		return nil
	},
}

var displayConnectorCmd = &cobra.Command{
	Use:   "display_connector <display>",
	Short: "Print a display's CONNECTOR_ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sections, err := loadAll()
		if err != nil {
			return err
		}
		return printConnector(os.Stdout, sections, args[0])
	},
}

var namesConnectedOnly bool

var displayNamesCmd = &cobra.Command{
	Use:   "display_names",
	Short: "List display names, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sections, err := loadAll()
		if err != nil {
			return err
		}
		printNames(os.Stdout, sections, namesConnectedOnly)
		return nil
	},
}

var displayGeometryCmd = &cobra.Command{
	Use:   "display_geometry <display>",
	Short: "Print the geometry of a connected display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sections, err := loadAll()
		if err != nil {
			return err
		}
		return printGeometry(os.Stdout, sections, args[0])
	},
}

var displayLabelLineCmd = &cobra.Command{
	Use:   "display_label_line <display>",
	Short: "Print a display's header line verbatim",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sections, err := loadAll()
		if err != nil {
			return err
		}
		return printLabelLine(os.Stdout, sections, args[0])
	},
}

var displayMonitorCmd = &cobra.Command{
	Use:   "display_monitor <display>",
	Short: "Print the monitor index of a display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		monitors, err := loadMonitorMap(cfg)
		if err != nil {
			return err
		}
		return printMonitor(os.Stdout, monitors, args[0])
	},
}

func init() {
	displayNamesCmd.Flags().BoolVar(&namesConnectedOnly, "connected", false,
		"list only connected displays")

	rootCmd.AddCommand(
		displayConnectedCmd,
		displaySectionCmd,
		displayEDIDCmd,
		displayEDIDDecodedCmd,
		displaySerialCmd,
		displayConnectorCmd,
		displayNamesCmd,
		displayGeometryCmd,
		displayLabelLineCmd,
		displayMonitorCmd,
	)
}

// loadAll loads the config and the parsed topology in one step, since
// most commands need both.
func loadAll() (*config.Config, []display.Section, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	sections, err := loadSections(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, sections, nil
}

func printConnected(w io.Writer, sections []display.Section, name string) error {
	section, err := findSection(sections, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, section.State.String())
	return nil
}

func printSection(w io.Writer, sections []display.Section, name string) error {
	section, err := findSection(sections, name)
	if err != nil {
		return err
	}
	text := strings.Join(section.Lines, "\n")
	if text == "" {
		return errors.New(errors.ErrLookup,
			fmt.Sprintf("section is empty for display: %s", name), "")
	}
	fmt.Fprintln(w, text)
	return nil
}

func printEDID(w io.Writer, sections []display.Section, name string) error {
	section, err := findSection(sections, name)
	if err != nil {
		return err
	}
	hex, err := sectionEDID(section)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, hex)
	return nil
}

func printConnector(w io.Writer, sections []display.Section, name string) error {
	section, err := findSection(sections, name)
	if err != nil {
		return err
	}
	id, ok := display.ExtractConnectorID(section)
	if !ok {
		return errors.New(errors.ErrLookup,
			fmt.Sprintf("connector id not found for display: %s", name),
			"The driver did not report a CONNECTOR_ID property for this output")
	}
	fmt.Fprintln(w, id)
	return nil
}

func printNames(w io.Writer, sections []display.Section, connectedOnly bool) {
	for _, name := range display.Names(sections, connectedOnly) {
		fmt.Fprintln(w, name)
	}
}

func printGeometry(w io.Writer, sections []display.Section, name string) error {
	section, err := findSection(sections, name)
	if err != nil {
		return err
	}
	if section.State != display.Connected {
		return errors.New(errors.ErrLookup,
			fmt.Sprintf("display not connected: %s", name),
			"Geometry is only reported for connected displays")
	}
	if section.Geometry == "" {
		return errors.New(errors.ErrLookup,
			fmt.Sprintf("geometry not available for display: %s", name),
			"The display is connected but xrandr reported no active mode")
	}
	fmt.Fprintln(w, section.Geometry)
	return nil
}

func printLabelLine(w io.Writer, sections []display.Section, name string) error {
	section, err := findSection(sections, name)
	if err != nil {
		return err
	}
	if len(section.Lines) == 0 {
		return errors.New(errors.ErrLookup,
			fmt.Sprintf("label line not found for display: %s", name), "")
	}
	fmt.Fprintln(w, section.Lines[0])
	return nil
}

func printMonitor(w io.Writer, monitors map[string]string, name string) error {
	index, ok := monitors[name]
	if !ok {
		return errors.New(errors.ErrLookup,
			fmt.Sprintf("monitor entry not found for display: %s", name),
			"Only active outputs appear in 'xrandr --listmonitors'")
	}
	fmt.Fprintln(w, index)
	return nil
}
