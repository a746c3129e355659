package config

// ConfigFileName is the default config file name.
const ConfigFileName = ".xrandr-utils.yaml"

// GlobalConfigDir is the directory for global config, under the home dir.
const GlobalConfigDir = ".config/xrandr-utils"

// GlobalConfigFile is the global config file name.
const GlobalConfigFile = "config.yaml"

// Config represents the complete .xrandr-utils.yaml configuration file.
// Everything is optional; the zero config runs against the stock tools.
type Config struct {
	// Xrandr is the display configuration command to invoke.
	Xrandr string `yaml:"xrandr" mapstructure:"xrandr"`

	// EdidDecode is the EDID decoder command to pipe raw EDID bytes to.
	EdidDecode string `yaml:"edid_decode" mapstructure:"edid_decode"`

	// Layouts are named output arrangements registered as subcommands,
	// so "xrandr-utils work" applies the "work" layout.
	Layouts map[string]Layout `yaml:"layouts,omitempty" mapstructure:"layouts"`
}

// Layout is a named output arrangement.
type Layout struct {
	// Description shown in xrandr-utils --help.
	Description string `yaml:"description,omitempty" mapstructure:"description"`

	// Primary is the display kept primary and auto-configured.
	Primary string `yaml:"primary" mapstructure:"primary"`

	// Secondary, when set, is placed to the right of Primary.
	// Empty means a single-display layout: all other outputs go off.
	Secondary string `yaml:"secondary,omitempty" mapstructure:"secondary"`
}

// DefaultConfig returns a config pointing at the stock external tools.
func DefaultConfig() *Config {
	return &Config{
		Xrandr:     "xrandr",
		EdidDecode: "edid-decode",
	}
}
