package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"launchlist/internal/ui/views"
)

// RenderHelpContent generates the help text shown in the pager
func RenderHelpContent(styles *views.Styles, keys KeyMap) string {
	var help strings.Builder

	help.WriteString(styles.HelpTitle.Render("launchlist help"))
	help.WriteString("\n")

	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{keys.Previous, keys.Next}},
		{"Actions", []key.Binding{keys.Execute, keys.Copy}},
		{"Other", []key.Binding{keys.Help, keys.Quit}},
	}
	for _, section := range sections {
		help.WriteString(styles.HelpSection.Render(section.name))
		help.WriteString("\n")
		for _, b := range section.bindings {
			keyText := fmt.Sprintf("%-18s", strings.Join(b.Keys(), ", "))
			help.WriteString(fmt.Sprintf("  %s %s\n", styles.HelpKey.Render(keyText), styles.HelpDesc.Render(b.Help().Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(styles.Status.Render("The launcher drives the list over its socket too; see `launchlist send --help`."))
	help.WriteString("\n")
	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Let ov finish tearing down before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the pager contents to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
