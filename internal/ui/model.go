package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"launchlist/internal/config"
	"launchlist/internal/domain"
	"launchlist/internal/eventbus"
	"launchlist/internal/ui/controller"
	"launchlist/internal/ui/state"
	"launchlist/internal/ui/views"
)

// Model is the bubbletea model hosting the result list
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	log    logrus.FieldLogger

	store  *state.Store
	ctrl   *controller.Controller
	list   *views.ResultList
	styles *views.Styles
	keys   KeyMap
	help   help.Model

	width  int
	height int
	paused bool // rendering paused while the pager owns the terminal

	unsubs []func()

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates a new UI model. Outbound messages are published on bus.
func NewModel(bus eventbus.EventBus, cfg *config.Config, log logrus.FieldLogger) *Model {
	if log == nil {
		log = logrus.StandardLogger()
	}

	store := state.NewStore()
	list := views.NewResultList(cfg.Layout, cfg.Theme)

	m := &Model{
		bus:    bus,
		config: cfg,
		log:    log,
		store:  store,
		ctrl:   controller.New(store, bus, cfg.Layout, log),
		list:   list,
		styles: views.NewStyles(cfg.Theme),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}

	// The list re-renders from the store; the controller scrolls it directly
	m.unsubs = append(m.unsubs, store.Subscribe(func(st state.AppState) {
		list.SetProps(st.Results, st.SelectedIndex)
	}))
	m.ctrl.SetScroller(list)

	return m
}

// SetProgram sets the program reference and starts listening on the bus.
// Bus events are handed to the program, so handlers run on the update loop
// one at a time.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)

	forward := func(e domain.DomainEvent) { p.Send(EventMsg{Event: e}) }
	m.ctrl.Mount(m.bus, forward)
	m.unsubs = append(m.unsubs, m.bus.Subscribe(domain.EventConfigChanged, forward))
}

// Close drops every subscription the model holds
func (m *Model) Close() {
	m.ctrl.Dispose()
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
}

// State returns the current list state
func (m *Model) State() state.AppState {
	return m.store.State()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pauseRenderingMsg:
		m.paused = true
		return m, nil

	case resumeRenderingMsg:
		m.paused = false
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("help pager failed")
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Previous):
		return m, emit(domain.SelectPreviousItemEvent{})
	case key.Matches(msg, m.keys.Next):
		return m, emit(domain.SelectNextItemEvent{})
	case key.Matches(msg, m.keys.Execute):
		return m, emit(domain.ExecuteCurrentItemEvent{})
	case key.Matches(msg, m.keys.Copy):
		return m, emit(domain.CopyCurrentItemKeyEvent{})
	case key.Matches(msg, m.keys.Help):
		if m.program == nil {
			return m, nil
		}
		return m, m.showHelpPager(RenderHelpContent(m.styles, m.keys))
	}
	return m, nil
}

func (m *Model) handleEvent(event domain.DomainEvent) {
	switch e := event.(type) {
	case domain.ConfigChangedEvent:
		m.config.Theme = e.Theme
		m.styles = views.NewStyles(e.Theme)
		m.list.SetTheme(e.Theme)
	default:
		m.ctrl.Handle(event)
	}
}

// emit returns a command delivering event to the update loop the same way
// messages from the backing process arrive
func emit(event domain.DomainEvent) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: event}
	}
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.paused {
		return ""
	}

	st := m.store.State()
	styles := m.styles

	var b strings.Builder
	if st.HasResults() {
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(styles.Status.Render(fmt.Sprintf(" %d/%d", st.SelectedIndex+1, len(st.Results))))
	} else {
		b.WriteString(styles.Status.Render(" waiting for results"))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
