package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/bogen85/xrandr-utils/internal/config"
	"github.com/bogen85/xrandr-utils/internal/display"
	"github.com/bogen85/xrandr-utils/internal/errors"
	"github.com/bogen85/xrandr-utils/internal/exec"
	"github.com/bogen85/xrandr-utils/internal/logger"
	"github.com/bogen85/xrandr-utils/internal/util"
)

var log = logger.NewEnvLogger("[cli]")

// loadConfig resolves and loads the configuration, honoring the global
// --config flag.
func loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(Config())
}

// stdinPiped reports whether stdin is a pipe or file rather than a
// terminal.
func stdinPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// loadVerbose returns the raw verbose topology text. A piped stdin takes
// precedence over invoking xrandr, so saved dumps can be replayed through
// any command.
func loadVerbose(cfg *config.Config) (string, error) {
	if stdinPiped() {
		log.Debug("reading topology from stdin")
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.WrapWithCode(err, errors.ErrInput,
				"Failed to read stdin", "")
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", errors.New(errors.ErrInput,
				"stdin supplied but empty",
				"Pipe 'xrandr --verbose' output, or run from a terminal to invoke xrandr directly")
		}
		return string(data), nil
	}

	log.Debug("invoking %s --verbose", cfg.Xrandr)
	out, err := exec.CaptureOutput(cfg.Xrandr, "--verbose")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// loadSections acquires the verbose topology text and segments it into
// per-display sections.
func loadSections(cfg *config.Config) ([]display.Section, error) {
	verbose, err := loadVerbose(cfg)
	if err != nil {
		return nil, err
	}
	return display.ParseSections(verbose), nil
}

// findSection looks up a display by name, turning a miss into a lookup
// error that lists the known names.
func findSection(sections []display.Section, name string) (*display.Section, error) {
	section, ok := display.Find(sections, name)
	if !ok {
		return nil, errors.New(errors.ErrLookup,
			fmt.Sprintf("display not found: %s", name),
			fmt.Sprintf("Known displays: %s", util.JoinOrNone(display.Names(sections, false))))
	}
	return section, nil
}

// sectionEDID extracts the EDID hex blob from a section or reports that
// the display does not expose one.
func sectionEDID(section *display.Section) (string, error) {
	hex, ok := display.ExtractEDIDHex(section)
	if !ok {
		return "", errors.New(errors.ErrLookup,
			fmt.Sprintf("edid data not available for display: %s", section.Name),
			"Not every output exposes an EDID property; try a connected display")
	}
	return hex, nil
}

// decodeEDID turns an EDID hex blob into the human-readable edid-decode
// report.
func decodeEDID(cfg *config.Config, hex string) (string, error) {
	raw, err := util.DecodeHex(hex)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrDecode,
			"Invalid EDID hex payload",
			"The EDID property in the xrandr output appears corrupted")
	}

	out, err := exec.CaptureWithInput(cfg.EdidDecode, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// sectionSerial resolves a display's serial number by decoding its EDID.
func sectionSerial(cfg *config.Config, section *display.Section) (string, error) {
	hex, err := sectionEDID(section)
	if err != nil {
		return "", err
	}
	report, err := decodeEDID(cfg, hex)
	if err != nil {
		return "", err
	}
	serial, ok := display.ExtractSerial(report)
	if !ok {
		return "", errors.New(errors.ErrLookup,
			fmt.Sprintf("serial not found in edid for: %s", section.Name),
			"The monitor's EDID carries no recognizable serial field")
	}
	return serial, nil
}

// loadMonitorMap invokes "xrandr --listmonitors" and parses the result
// into a display name to monitor index map.
func loadMonitorMap(cfg *config.Config) (map[string]string, error) {
	log.Debug("invoking %s --listmonitors", cfg.Xrandr)
	out, err := exec.CaptureOutput(cfg.Xrandr, "--listmonitors")
	if err != nil {
		return nil, err
	}
	return display.ParseMonitorMap(string(out)), nil
}
