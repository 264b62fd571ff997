// Package bubbletea provides a terminal pager for classified output using
// the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lipglosslib "github.com/charmbracelet/lipgloss"

	"github.com/eranif/lexilla"
	"github.com/eranif/lexilla/buffer"
	"github.com/eranif/lexilla/lipgloss"
	"github.com/eranif/lexilla/terminal"
)

// statusBarHeight is the number of rows the status bar takes from the
// viewport.
const statusBarHeight = 1

// ModelConfig configures the pager model.
type ModelConfig struct {
	Title    string
	Theme    lexilla.Theme         // nil means the default dark theme
	Renderer *lipglosslib.Renderer // nil means the default renderer
	Escapes  bool                  // start with escape decoding on
	Values   bool                  // start with value splitting on
}

// Model is the Bubble Tea model for paging classified output.
type Model struct {
	text       string
	title      string
	renderer   *lipgloss.Renderer
	uiRenderer *lipglosslib.Renderer
	viewport   viewport.Model
	keymap     KeyMap
	ready      bool
	width      int
	escapes    bool
	values     bool
	pendingKey string
}

// NewModel creates a new Model for the given text.
func NewModel(text string, cfg ModelConfig) Model {
	theme := cfg.Theme
	if theme == nil {
		theme = lipgloss.DefaultTheme()
	}
	return Model{
		text:       text,
		title:      cfg.Title,
		renderer:   lipgloss.NewRenderer(theme, cfg.Renderer),
		uiRenderer: cfg.Renderer,
		keymap:     DefaultKeyMap(),
		escapes:    cfg.Escapes,
		values:     cfg.Values,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}

		// Check for start of multi-key sequence
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}

		// Clear pending key on any other key press
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.ToggleEscapes):
			m.escapes = !m.escapes
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleValues):
			m.values = !m.values
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipglosslib.JoinVertical(lipglosslib.Left, m.viewport.View(), m.statusBarView())
}

// renderContent lexes the document with the current options and styles it.
func (m Model) renderContent() string {
	doc := buffer.NewString(m.text)
	doc.SetOption(lexilla.OptionEscapeSequences, m.escapes)
	doc.SetOption(lexilla.OptionValueSeparate, m.values)
	terminal.New().StyleRange(doc, 0, doc.Len())
	return m.renderer.Render(m.text, doc.Ranges())
}

// refresh re-lexes the document, keeping the scroll position.
func (m *Model) refresh() {
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(offset)
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipglosslib.Style {
	if m.uiRenderer != nil {
		return m.uiRenderer.NewStyle()
	}
	return lipglosslib.NewStyle()
}

// statusBarView renders the status bar with the option and scroll state.
func (m Model) statusBarView() string {
	barStyle := m.newStyle().Reverse(true)

	title := m.title
	if title == "" {
		title = "output"
	}

	content := fmt.Sprintf(" %s │ esc:%s val:%s │ %s │ j/k:scroll  e:escapes  v:values  q:quit ",
		title, onOff(m.escapes), onOff(m.values), m.scrollPosition())

	// Pad to full width so the bar spans the row.
	if pad := m.width - lipglosslib.Width(content); pad > 0 {
		content += fmt.Sprintf("%*s", pad, "")
	}

	return barStyle.Render(content)
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	return fmt.Sprintf("%2d%%", int(m.viewport.ScrollPercent()*100))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Compile-time interface verification.
var _ lexilla.Viewer = (*Viewer)(nil)

// Viewer implements lexilla.Viewer with a Bubble Tea TUI.
type Viewer struct {
	cfg ModelConfig
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithTitle sets the document name shown in the status bar.
func WithTitle(title string) ViewerOption {
	return func(v *Viewer) { v.cfg.Title = title }
}

// WithTheme sets the color theme.
func WithTheme(theme lexilla.Theme) ViewerOption {
	return func(v *Viewer) { v.cfg.Theme = theme }
}

// WithEscapeSequences starts the pager with escape decoding enabled.
func WithEscapeSequences() ViewerOption {
	return func(v *Viewer) { v.cfg.Escapes = true }
}

// WithValueSeparate starts the pager with value splitting enabled.
func WithValueSeparate() ViewerOption {
	return func(v *Viewer) { v.cfg.Values = true }
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the text and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, text string) error {
	m := NewModel(text, v.cfg)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
