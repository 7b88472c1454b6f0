package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving one snake game.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	fps      int
	width    int
	height   int
	now      func() time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *snake.Game, fps int) Model {
	cfg := core.DefaultConfig()
	if fps <= 0 {
		fps = cfg.TickRate
	}
	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		fps:    fps,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		now:    time.Now,
	}
	m.screen = core.NewScreen(m.width, m.height-m.helpHeight())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.game.Tap(core.Pt(msg.X, msg.Y), m.now())
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		m.game.Update(time.Time(msg))
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// helpHeight is the number of rows the help footer takes.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// resize fits the game screen above the help footer.
func (m Model) resize() {
	m.screen.Resize(m.width, max(0, m.height-m.helpHeight()))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		// A game in progress is parked and saved so it can be resumed.
		m.game.Pause()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.game.HandleAction(action, m.now())
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the game driven by this model.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program for the given game in the local terminal.
func Run(game *snake.Game, fps int) error {
	p := tea.NewProgram(
		NewModel(game, fps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
