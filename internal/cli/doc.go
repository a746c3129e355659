// Package cli implements the xrandr-utils command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to small workflow functions for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Input acquisition (stdin or the external xrandr command)
//   - Parsing and field extraction (internal/display)
//   - Output policy for the *_map commands (internal/output)
//
// # Command Structure
//
// The root command is "xrandr-utils" with one subcommand per operation:
//
//	display_connected <display>      - connection state of one display
//	display_names [--connected]      - list display names
//	display_edid <display>           - captured EDID hex blob
//	display_serial <display>         - serial number via edid-decode
//	display_geometry <display>       - geometry of a connected display
//	...and a *_map variant for most of the above
//	single_display_output <display>  - keep one output, all others off
//	dual_display_output <l> <r>      - side-by-side layout
//
// # Input Acquisition
//
// Every query command reads the verbose topology text the same way: a
// piped stdin is consumed in full, otherwise "xrandr --verbose" is
// invoked and its stdout captured. This lets saved dumps be replayed
// through any command.
//
// # Layout Registration
//
// Named layouts from the config file are registered as first-class
// commands during startup, so "xrandr-utils work" applies the "work"
// layout. Layouts are registered before Cobra parses flags, using a
// pre-scan of os.Args for --config.
package cli
