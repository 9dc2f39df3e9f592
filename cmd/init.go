package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pjcli/pj/internal/config"
	"github.com/pjcli/pj/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up pj config interactively",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

type initStep int

const (
	stepWelcome   initStep = iota
	stepOverwrite          // only if config exists
	stepRoot
	stepEditor
	stepConfirm
	stepDone
)

var (
	styleInitTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("73"))
	styleInitSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	styleInitWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	styleInitDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type initModel struct {
	step         initStep
	input        textinput.Model
	editors      []string
	editorCursor int

	root         string
	rootWarning  string
	configPath   string
	configExists bool
	err          error
	cancelled    bool
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	_, err := os.Stat(configPath)
	configExists := err == nil

	home, _ := os.UserHomeDir()
	ti := textinput.New()
	ti.Placeholder = "~/projects"
	ti.SetValue(home + "/projects")
	ti.CharLimit = 256
	ti.Width = 50

	editors := make([]string, 0, len(config.DefaultEditors()))
	for name := range config.DefaultEditors() {
		editors = append(editors, name)
	}
	sort.Strings(editors)

	m := &initModel{
		step:         stepWelcome,
		input:        ti,
		editors:      editors,
		configPath:   configPath,
		configExists: configExists,
	}

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := result.(*initModel); ok {
		if final.err != nil {
			return final.err
		}
		if final.cancelled {
			ui.Dimf("Setup cancelled")
		}
	}

	return nil
}

func (m *initModel) Init() tea.Cmd {
	return nil
}

func (m *initModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		// Global quit
		if key == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.step {
		case stepWelcome:
			if key == "enter" {
				if m.configExists {
					m.step = stepOverwrite
				} else {
					m.step = stepRoot
					m.input.Focus()
					return m, textinput.Blink
				}
			}
			if key == "q" || key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}

		case stepOverwrite:
			if key == "y" || key == "Y" {
				m.step = stepRoot
				m.input.Focus()
				return m, textinput.Blink
			}
			m.cancelled = true
			return m, tea.Quit

		case stepRoot:
			if key == "enter" {
				val := strings.TrimSpace(m.input.Value())
				if val == "" {
					return m, nil
				}
				m.root = val
				m.rootWarning = ""
				if expanded := config.ExpandHome(val); !dirExists(expanded) {
					m.rootWarning = fmt.Sprintf("  %s does not exist yet", expanded)
				}
				m.step = stepEditor
				return m, nil
			}
			if key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case stepEditor:
			switch key {
			case "up", "k":
				if m.editorCursor > 0 {
					m.editorCursor--
				}
			case "down", "j":
				if m.editorCursor < len(m.editors)-1 {
					m.editorCursor++
				}
			case "enter":
				m.step = stepConfirm
			case "esc":
				m.step = stepRoot
				m.input.Focus()
				return m, textinput.Blink
			}

		case stepConfirm:
			if key == "enter" {
				cfg := config.NewConfig()
				cfg.ProjectsRoot = config.ExpandHome(m.root)
				cfg.DefaultEditor = m.editors[m.editorCursor]
				if err := config.Save(cfg, m.configPath); err != nil {
					m.err = err
				}
				m.step = stepDone
				return m, tea.Quit
			}
			if key == "esc" {
				m.step = stepEditor
			}

		case stepDone:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *initModel) View() string {
	var b strings.Builder

	switch m.step {
	case stepWelcome:
		b.WriteString(styleInitTitle.Render("Welcome to pj!"))
		b.WriteString("\n\n")
		b.WriteString("Config will be saved to ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString(styleInitDim.Render("Press Enter to continue, Esc to cancel"))
		b.WriteString("\n")

	case stepOverwrite:
		b.WriteString(styleInitWarn.Render("Config already exists"))
		b.WriteString(" at ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString("Overwrite? ")
		b.WriteString(styleInitDim.Render("[y/N]"))
		b.WriteString("\n")

	case stepRoot:
		b.WriteString(styleInitTitle.Render("Projects root"))
		b.WriteString("\n\n")
		b.WriteString("Enter the directory that contains your projects:\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case stepEditor:
		b.WriteString(styleInitTitle.Render("Default editor"))
		b.WriteString("\n\n")
		if m.rootWarning != "" {
			b.WriteString(styleInitWarn.Render(m.rootWarning))
			b.WriteString("\n\n")
		}
		for i, name := range m.editors {
			if i == m.editorCursor {
				b.WriteString(styleInitSuccess.Render("> " + name))
			} else {
				b.WriteString("  " + name)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styleInitDim.Render("↑/↓ move · enter select · esc back"))
		b.WriteString("\n")

	case stepConfirm:
		b.WriteString(styleInitTitle.Render("Ready to write config"))
		b.WriteString("\n\n")
		b.WriteString("  Projects root: " + m.root + "\n")
		b.WriteString("  Editor:        " + m.editors[m.editorCursor] + "\n")
		b.WriteString("\n")
		b.WriteString(styleInitDim.Render("[Enter] Write config  [Esc] Go back"))
		b.WriteString("\n")

	case stepDone:
		if m.err != nil {
			b.WriteString(styleInitWarn.Render("Error: " + m.err.Error()))
			b.WriteString("\n")
		} else {
			b.WriteString(styleInitSuccess.Render("Config saved to " + m.configPath))
			b.WriteString("\n\n")
			b.WriteString("Run ")
			b.WriteString(styleInitTitle.Render("pj scan"))
			b.WriteString(" to discover your projects!\n")
		}
	}

	return b.String()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
