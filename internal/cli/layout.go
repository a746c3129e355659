package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bogen85/xrandr-utils/internal/config"
	"github.com/bogen85/xrandr-utils/internal/display"
	"github.com/bogen85/xrandr-utils/internal/errors"
	"github.com/bogen85/xrandr-utils/internal/exec"
)

var singleDisplayOutputCmd = &cobra.Command{
	Use:   "single_display_output <display>",
	Short: "Keep one display on, turn every other output off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sections, err := loadAll()
		if err != nil {
			return err
		}
		return runSingleLayout(cfg, sections, args[0])
	},
}

var dualDisplayOutputCmd = &cobra.Command{
	Use:   "dual_display_output <left> <right>",
	Short: "Arrange two displays side by side, others off",
	Long: `Arrange two displays side by side with the left one primary.
Every other output is turned off.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sections, err := loadAll()
		if err != nil {
			return err
		}
		return runDualLayout(cfg, sections, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(singleDisplayOutputCmd, dualDisplayOutputCmd)
}

func runSingleLayout(cfg *config.Config, sections []display.Section, keep string) error {
	if _, err := findSection(sections, keep); err != nil {
		return err
	}
	return exec.RunStatus(cfg.Xrandr, display.SingleLayoutArgs(sections, keep)...)
}

func runDualLayout(cfg *config.Config, sections []display.Section, left, right string) error {
	if left == right {
		return errors.New(errors.ErrValidate,
			"left and right displays must be different",
			"Pass two distinct display names")
	}
	if _, err := findSection(sections, left); err != nil {
		return err
	}
	if _, err := findSection(sections, right); err != nil {
		return err
	}
	return exec.RunStatus(cfg.Xrandr, display.DualLayoutArgs(sections, left, right)...)
}

// registerLayoutCommands adds one command per named layout in the config
// file. Config problems are ignored here so a broken config never masks
// the built-in commands; the layout command itself reloads and reports
// the error when run.
func registerLayoutCommands() {
	cfg, err := config.LoadOrDefault(preScanConfig())
	if err != nil {
		log.Debug("skipping layout registration: %v", err)
		return
	}
	for name, layout := range cfg.Layouts {
		if config.IsReservedName(name) {
			continue
		}
		rootCmd.AddCommand(newLayoutCommand(name, layout))
	}
}

func newLayoutCommand(name string, layout config.Layout) *cobra.Command {
	short := layout.Description
	if short == "" {
		short = fmt.Sprintf("Apply the '%s' layout from the config file", name)
	}
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sections, err := loadAll()
			if err != nil {
				return err
			}
			if layout.Secondary == "" {
				return runSingleLayout(cfg, sections, layout.Primary)
			}
			return runDualLayout(cfg, sections, layout.Primary, layout.Secondary)
		},
	}
}
