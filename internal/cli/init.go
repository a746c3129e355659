package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bogen85/xrandr-utils/internal/config"
	"github.com/bogen85/xrandr-utils/internal/display"
	"github.com/bogen85/xrandr-utils/internal/errors"
	"github.com/bogen85/xrandr-utils/internal/ui"
)

const configHeader = `# xrandr-utils configuration
# 'xrandr-utils <layout>' applies a named layout from this file.

`

// noneOption is the select entry for skipping the secondary display.
const noneOption = "(none)"

var (
	initForce          bool
	initNonInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .xrandr-utils.yaml config in the current directory",
	Long: `Create a .xrandr-utils.yaml config in the current directory.

When the display topology is readable, an interactive prompt offers the
connected displays for a starter layout. Otherwise a default config is
written as-is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(initOptions{
			Force:          initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite an existing config file")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false,
		"write the default config without prompting")
	rootCmd.AddCommand(initCmd)
}

type initOptions struct {
	Force          bool
	NonInteractive bool
}

func runInit(opts initOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		if opts.NonInteractive {
			return errors.New(errors.ErrValidate,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}
		var overwrite bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite?", configPath)).
				Value(&overwrite),
		))
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrInput,
				"Failed to read the prompt response",
				"Run with --force to overwrite without prompting")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		if layout, name, ok := promptLayout(cfg); ok {
			cfg.Layouts = map[string]config.Layout{name: layout}
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "Failed to serialize the config")
	}
	if err := os.WriteFile(configPath, append([]byte(configHeader), data...), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrValidate,
			fmt.Sprintf("Failed to write %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n", ui.SymbolSuccess, configPath)
	return nil
}

// promptLayout offers the connected displays for a starter layout. It
// returns ok=false when the topology is unreadable, no display is
// connected, or the user backs out; init then writes the defaults only.
func promptLayout(cfg *config.Config) (config.Layout, string, bool) {
	sections, err := loadSections(cfg)
	if err != nil {
		log.Debug("skipping layout prompt: %v", err)
		return config.Layout{}, "", false
	}
	names := display.Names(sections, true)
	if len(names) == 0 {
		return config.Layout{}, "", false
	}

	layoutName := "main"
	primary := names[0]
	secondary := noneOption

	secondaryOptions := append([]string{noneOption}, names...)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Layout name").
			Description("Registered as a subcommand, e.g. 'xrandr-utils main'").
			Value(&layoutName).
			Validate(validateLayoutName),
		huh.NewSelect[string]().
			Title("Primary display").
			Options(huh.NewOptions(names...)...).
			Value(&primary),
		huh.NewSelect[string]().
			Title("Secondary display (right of primary)").
			Options(huh.NewOptions(secondaryOptions...)...).
			Value(&secondary),
	))
	if err := form.Run(); err != nil {
		return config.Layout{}, "", false
	}

	layout := config.Layout{Primary: primary}
	if secondary != noneOption && secondary != primary {
		layout.Secondary = secondary
	}
	return layout, layoutName, true
}

func validateLayoutName(name string) error {
	if name == "" {
		return fmt.Errorf("layout name is required")
	}
	if config.IsReservedName(name) {
		return fmt.Errorf("'%s' shadows a built-in command", name)
	}
	return nil
}
