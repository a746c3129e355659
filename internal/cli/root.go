package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bogen85/xrandr-utils/internal/errors"
	"github.com/bogen85/xrandr-utils/internal/ui"
)

// Global flags available to all subcommands.
var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "xrandr-utils",
	Short: "Query and reconfigure xrandr display outputs",
	Long: `xrandr-utils wraps xrandr and edid-decode for scripting.

It parses 'xrandr --verbose' output into per-display sections and exposes
the interesting fields (connection state, geometry, EDID, connector id,
serial number) as single-value and name=value map commands, plus simple
single/dual output layout switching.

Any command also accepts the verbose text on stdin:

  xrandr --verbose | xrandr-utils display_names --connected`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || ui.ColorsDisabledByEnv() {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No arguments prints usage and exits successfully.
		return cmd.Help()
	},
}

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion script",
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrValidate,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default searches .xrandr-utils.yaml upward, then ~/.config/xrandr-utils)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(completionCmd)
}

// Config returns the value of the global --config flag.
func Config() string {
	return cfgFile
}

// preScanConfig extracts --config from os.Args before Cobra parses flags,
// so layout presets can be registered as commands during startup.
func preScanConfig() string {
	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if rest, ok := strings.CutPrefix(arg, "--config="); ok {
			return rest
		}
	}
	return ""
}

// Execute runs the root command. On failure the error is printed to
// stderr and the process exits non-zero, propagating an external
// command's exit status when one is in the error chain.
func Execute() {
	registerLayoutCommands()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimRight(err.Error(), "\n"))
		if code, ok := errors.GetExitCode(err); ok && code > 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
