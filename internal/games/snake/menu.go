package snake

import "github.com/vovakirdan/tui-snake/internal/config"

// MenuKind identifies which overlay a Menu is.
type MenuKind int

const (
	MenuStart MenuKind = iota
	MenuPause
	MenuGameOver
)

func (k MenuKind) String() string {
	switch k {
	case MenuStart:
		return "start"
	case MenuPause:
		return "pause"
	case MenuGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ChoiceKind is what confirming a menu item does.
type ChoiceKind int

const (
	ChoiceDifficulty ChoiceKind = iota // start a new game at Difficulty
	ChoiceResume
	ChoiceStartOver
)

// MenuItem is one button of a menu.
type MenuItem struct {
	Label      string
	Choice     ChoiceKind
	Difficulty config.Difficulty
}

// Menu is a vertical list of buttons with a cursor. A cursor of -1 means
// nothing is selected.
type Menu struct {
	Kind   MenuKind
	Title  string
	Items  []MenuItem
	Cursor int
}

// NewStartMenu lists every difficulty with the cursor on def.
func NewStartMenu(def config.Difficulty) *Menu {
	m := &Menu{Kind: MenuStart, Title: "SNAKE"}
	for i, d := range config.Difficulties() {
		m.Items = append(m.Items, MenuItem{Label: d.Label(), Choice: ChoiceDifficulty, Difficulty: d})
		if d == def {
			m.Cursor = i
		}
	}
	return m
}

// NewPauseMenu offers to resume the parked game or abandon it.
func NewPauseMenu() *Menu {
	return &Menu{
		Kind:  MenuPause,
		Title: "PAUSED",
		Items: []MenuItem{
			{Label: "Resume", Choice: ChoiceResume},
			{Label: "Start Over", Choice: ChoiceStartOver},
		},
	}
}

// NewGameOverMenu is shown after the snake dies.
func NewGameOverMenu() *Menu {
	return &Menu{
		Kind:  MenuGameOver,
		Title: "GAME OVER",
		Items: []MenuItem{
			{Label: "Start Over", Choice: ChoiceStartOver},
		},
	}
}

// Move shifts the cursor by delta with wraparound. From an empty selection
// a forward move lands on the first item and a backward move on the last.
func (m *Menu) Move(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	if m.Cursor < 0 {
		if delta > 0 {
			m.Cursor = 0
		} else {
			m.Cursor = n - 1
		}
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// Deselect clears the selection.
func (m *Menu) Deselect() {
	m.Cursor = -1
}

// Selected returns the item under the cursor.
func (m *Menu) Selected() (MenuItem, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Cursor], true
}
