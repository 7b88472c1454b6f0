package snake

import (
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the controller's top-level mode.
type State int

const (
	StateStartMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStartMenu:
		return "start_menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DefaultDoubleTap is the window in which a second tap on the same cell pauses.
const DefaultDoubleTap = 300 * time.Millisecond

// Saver persists the game in progress.
type Saver interface {
	Save(rec Record) error
	// Load returns nil without error when nothing is saved.
	Load() (*Record, error)
	Remove() error
}

// Metrics receives gameplay events.
type Metrics interface {
	GameStarted(d config.Difficulty)
	AppleEaten()
	GameOver(score int)
}

type noopMetrics struct{}

func (noopMetrics) GameStarted(config.Difficulty) {}
func (noopMetrics) AppleEaten()                   {}
func (noopMetrics) GameOver(int)                  {}

// GameOptions configures a Game. Zero values fall back to defaults.
type GameOptions struct {
	Saver      Saver
	Logger     *log.Logger
	Metrics    Metrics
	BoardSize  int
	Difficulty config.Difficulty
	Seed       int64
	DoubleTap  time.Duration
}

// Game wraps a Sim with menus, pause handling and save records.
type Game struct {
	saver     Saver
	log       *log.Logger
	metrics   Metrics
	size      int
	doubleTap time.Duration
	rng       *rand.Rand

	state      State
	difficulty config.Difficulty
	sim        *Sim
	menu       *Menu

	layout  layout
	lastTap *tap
}

type tap struct {
	cell core.Point
	at   time.Time
}

// NewGame creates a game. A record held by the Saver is restored and the
// game starts paused; otherwise it opens on the start menu.
func NewGame(opts GameOptions) *Game {
	g := &Game{
		saver:      opts.Saver,
		log:        opts.Logger,
		metrics:    opts.Metrics,
		size:       opts.BoardSize,
		doubleTap:  opts.DoubleTap,
		difficulty: opts.Difficulty,
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.metrics == nil {
		g.metrics = noopMetrics{}
	}
	if g.size < config.MinBoardSize || g.size > config.MaxBoardSize {
		g.size = core.DefaultBoardSize
	}
	if g.doubleTap <= 0 {
		g.doubleTap = DefaultDoubleTap
	}
	if !g.difficulty.Valid() {
		g.difficulty = config.DefaultDifficulty
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	if err := g.reset(InitialRecordFor(g.difficulty, g.size)); err != nil {
		g.log.Error("failed to build new game", "error", err)
	}
	g.state = StateStartMenu
	g.menu = NewStartMenu(g.difficulty)

	if g.restore() {
		g.state = StatePaused
		g.menu = NewPauseMenu()
	}
	return g
}

// restore loads the saved record, if any.
func (g *Game) restore() bool {
	if g.saver == nil {
		return false
	}
	rec, err := g.saver.Load()
	if err != nil {
		g.log.Warn("failed to load save", "error", err)
		return false
	}
	if rec == nil {
		return false
	}
	if err := g.reset(*rec); err != nil {
		g.log.Warn("discarding unusable save", "error", err)
		g.removeSave()
		return false
	}
	g.log.Info("restored saved game", "score", rec.Score, "difficulty", g.difficulty)
	return true
}

// reset rebuilds the simulation from a record.
func (g *Game) reset(rec Record) error {
	sim, d, err := NewSimFromRecord(rec, g.size, g.rng)
	if err != nil {
		return err
	}
	g.sim = sim
	g.difficulty = d
	g.lastTap = nil
	return nil
}

func (g *Game) State() State                  { return g.state }
func (g *Game) Sim() *Sim                     { return g.sim }
func (g *Game) Menu() *Menu                   { return g.menu }
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }
func (g *Game) Score() int                    { return g.sim.Score() }
func (g *Game) BoardSize() int                { return g.size }

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.log.Debug("state change", "from", g.state, "to", s)
	g.state = s
	switch s {
	case StateStartMenu:
		g.menu = NewStartMenu(g.difficulty)
	case StatePaused:
		g.menu = NewPauseMenu()
	case StateGameOver:
		g.menu = NewGameOverMenu()
	default:
		g.menu = nil
	}
}

// HandleAction applies one input intent.
func (g *Game) HandleAction(a core.Action, now time.Time) {
	if g.state == StatePlaying {
		if d := a.Direction(); d != core.DirNone {
			g.sim.Snake().TryQueueDirection(d)
			return
		}
		switch a {
		case core.ActionPause, core.ActionConfirm, core.ActionBack:
			g.Pause()
		}
		return
	}

	if g.menu == nil {
		return
	}
	switch a {
	case core.ActionUp, core.ActionLeft:
		g.menu.Move(-1)
	case core.ActionDown, core.ActionRight:
		g.menu.Move(1)
	case core.ActionConfirm:
		if item, ok := g.menu.Selected(); ok {
			g.choose(item)
		}
	case core.ActionBack:
		g.menu.Deselect()
	case core.ActionPause:
		if g.state == StatePaused {
			g.Resume()
		}
	}
}

func (g *Game) choose(item MenuItem) {
	switch item.Choice {
	case ChoiceDifficulty:
		g.Start(item.Difficulty)
	case ChoiceResume:
		g.Resume()
	case ChoiceStartOver:
		g.removeSave()
		g.setState(StateStartMenu)
	}
}

// Start begins a new game at difficulty d.
func (g *Game) Start(d config.Difficulty) {
	if err := g.reset(InitialRecordFor(d, g.size)); err != nil {
		g.log.Error("failed to start game", "error", err)
		return
	}
	g.metrics.GameStarted(d)
	g.log.Info("game started", "difficulty", d)
	g.setState(StatePlaying)
}

// Resume continues a paused game. The save is dropped since the game is live again.
func (g *Game) Resume() {
	if g.state != StatePaused {
		return
	}
	g.removeSave()
	g.sim.Rearm()
	g.setState(StatePlaying)
}

// Pause parks the snake and writes a save record.
func (g *Game) Pause() {
	if g.state != StatePlaying {
		return
	}
	g.sim.Snake().Stop()
	g.setState(StatePaused)
	if g.saver == nil {
		return
	}
	if err := g.saver.Save(g.sim.Record(g.difficulty)); err != nil {
		g.log.Warn("failed to save game", "error", err)
	}
}

func (g *Game) removeSave() {
	if g.saver == nil {
		return
	}
	if err := g.saver.Remove(); err != nil {
		g.log.Warn("failed to remove save", "error", err)
	}
}

// Update advances the simulation while playing.
func (g *Game) Update(now time.Time) Outcome {
	if g.state != StatePlaying {
		return OutcomeIdle
	}
	out := g.sim.Update(now)
	switch out {
	case OutcomeAte:
		g.metrics.AppleEaten()
	case OutcomeCollided:
		g.log.Debug("collision, grace tick", "head", g.sim.Snake().Head())
	case OutcomeDied:
		g.metrics.GameOver(g.sim.Score())
		g.log.Info("game over", "score", g.sim.Score(), "difficulty", g.difficulty)
		g.removeSave()
		g.setState(StateGameOver)
	}
	return out
}

// Tap handles a pointer press at a screen position from the last Render.
func (g *Game) Tap(pos core.Point, now time.Time) {
	if g.state == StatePlaying {
		g.tapBoard(pos, now)
		return
	}
	if g.menu == nil {
		return
	}
	for i, r := range g.layout.buttons {
		if i >= len(g.menu.Items) {
			break
		}
		if !r.Contains(pos) {
			continue
		}
		if i == g.menu.Cursor {
			g.choose(g.menu.Items[i])
		} else {
			g.menu.Cursor = i
		}
		return
	}
}

func (g *Game) tapBoard(pos core.Point, now time.Time) {
	cell := g.layout.cellAt(pos)
	if last := g.lastTap; last != nil && last.cell == cell && now.Sub(last.at) <= g.doubleTap {
		g.lastTap = nil
		g.Pause()
		return
	}
	g.lastTap = &tap{cell: cell, at: now}

	sn := g.sim.Snake()
	head := sn.Head()

	dirs := core.Cardinals
	sort.SliceStable(dirs[:], func(i, j int) bool {
		return cell.DistSq(head.Add(dirs[i].Vector())) < cell.DistSq(head.Add(dirs[j].Vector()))
	})
	for _, d := range dirs {
		if sn.TryQueueDirection(d) {
			return
		}
	}
}
