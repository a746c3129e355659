package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bogen85/xrandr-utils/internal/config"
	"github.com/bogen85/xrandr-utils/internal/display"
	"github.com/bogen85/xrandr-utils/internal/errors"
	"github.com/bogen85/xrandr-utils/internal/exec"
	"github.com/bogen85/xrandr-utils/internal/ui"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the display topology",
	Long: `Live view of the display topology, refreshed periodically.

Keys: q quits, r refreshes immediately.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchInterval < 500*time.Millisecond {
			return errors.New(errors.ErrValidate,
				"watch interval must be at least 500ms",
				"Pass something like --interval 2s")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		program := tea.NewProgram(newWatchModel(cfg, watchInterval), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return errors.Wrap(err, "Watch view failed")
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second,
		"refresh interval")
	rootCmd.AddCommand(watchCmd)
}

// Styles for the watch view.
var (
	watchTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorInfo)
	watchPrimaryStyle   = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	watchConnectedStyle = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	watchOfflineStyle   = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	watchErrorStyle     = lipgloss.NewStyle().Foreground(ui.ColorError)
	watchFooterStyle    = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)

// watchModel is the Bubble Tea model for the live topology view.
type watchModel struct {
	cfg      *config.Config
	interval time.Duration
	spin     spinner.Model

	sections []display.Section
	err      error
	last     time.Time

	width    int
	loaded   bool
	quitting bool
}

// topologyMsg carries the result of one topology read.
type topologyMsg struct {
	sections []display.Section
	err      error
	at       time.Time
}

// watchTickMsg signals a periodic refresh.
type watchTickMsg time.Time

func newWatchModel(cfg *config.Config, interval time.Duration) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.ColorInfo)

	return watchModel{
		cfg:      cfg,
		interval: interval,
		spin:     s,
	}
}

// Init starts the spinner and triggers the first topology read.
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, fetchTopology(m.cfg))
}

// fetchTopology reads and parses the topology in a command, off the
// update loop.
func fetchTopology(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		out, err := exec.CaptureOutput(cfg.Xrandr, "--verbose")
		if err != nil {
			return topologyMsg{err: err, at: time.Now()}
		}
		return topologyMsg{sections: display.ParseSections(string(out)), at: time.Now()}
	}
}

func watchTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, fetchTopology(m.cfg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case topologyMsg:
		m.loaded = true
		m.sections = msg.sections
		m.err = msg.err
		m.last = msg.at
		return m, watchTick(m.interval)

	case watchTickMsg:
		return m, fetchTopology(m.cfg)

	default:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.loaded {
		return fmt.Sprintf("\n %s Reading display topology...\n", m.spin.View())
	}

	var b strings.Builder
	b.WriteString(watchTitleStyle.Render("Display Topology"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(watchErrorStyle.Render(firstLine(m.err.Error())))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSections())
	}

	b.WriteString("\n")
	b.WriteString(watchFooterStyle.Render(fmt.Sprintf(
		"updated %s · refresh %s · q quit · r refresh",
		m.last.Format("15:04:05"), m.interval)))
	b.WriteString("\n")
	return b.String()
}

func (m watchModel) renderSections() string {
	if len(m.sections) == 0 {
		return watchOfflineStyle.Render("no displays reported") + "\n"
	}

	nameWidth := 0
	for i := range m.sections {
		if len(m.sections[i].Name) > nameWidth {
			nameWidth = len(m.sections[i].Name)
		}
	}

	var b strings.Builder
	for i := range m.sections {
		section := &m.sections[i]

		symbol := watchOfflineStyle.Render(ui.SymbolDisconnected)
		if section.State == display.Connected {
			symbol = watchConnectedStyle.Render(ui.SymbolConnected)
		}

		name := fmt.Sprintf("%-*s", nameWidth, section.Name)
		if section.Primary {
			name = watchPrimaryStyle.Render(name)
		}

		geometry := section.Geometry
		if geometry == "" {
			geometry = "-"
		}

		tag := ""
		if section.Primary {
			tag = watchFooterStyle.Render("  primary")
		}

		fmt.Fprintf(&b, " %s %s  %-12s %s%s\n",
			symbol, name, section.State.String(), geometry, tag)
	}
	return b.String()
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
