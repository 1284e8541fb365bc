package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmfed/skirmish/internal/sim"
	"github.com/dmfed/skirmish/internal/storage"
)

// DefaultFPS is the host frame rate. The simulation tick rate is
// independent; the world converts elapsed frame time into fixed steps.
const DefaultFPS = 30

// maxFrameGap caps the elapsed time fed into the simulation so a
// suspended terminal does not fast-forward the battle on resume.
const maxFrameGap = 250 * time.Millisecond

// Model is the Bubble Tea model for an interactive skirmish session.
type Model struct {
	world    *sim.World
	screen   *Screen
	cam      Camera
	store    *storage.Store
	scenario string
	fps      int

	pending  sim.CommandBatch
	leftHeld bool

	lastFrame time.Time
	started   time.Time
	paused    bool
	showHUD   bool
	frameDT   float64

	quitting bool
	saved    bool
}

// NewModel creates a session model around an already constructed world.
func NewModel(world *sim.World, store *storage.Store, scenario string) Model {
	return Model{
		world:    world,
		screen:   NewScreen(80, 24),
		cam:      NewCamera(world.BoardSize(), 80, 24),
		store:    store,
		scenario: scenario,
		fps:      DefaultFPS,
		showHUD:  true,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.cam.Resize(msg.Width, msg.Height)
		return m, nil
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.saveMatch()
		m.quitting = true
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "tab":
		m.showHUD = !m.showHUD
	}
	return m, nil
}

// handleMouse accumulates pointer state into the next command batch.
// Presses and releases are one-shot events; the held state and cursor
// persist across frames.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	world := m.cam.ToWorld(msg.X, msg.Y)
	m.pending.Cursor = &world

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.pending.LeftPressed = true
			m.leftHeld = true
		case tea.MouseButtonRight:
			m.pending.RightPressed = true
		}
	case tea.MouseActionRelease:
		if m.leftHeld {
			m.pending.LeftReleased = true
			m.leftHeld = false
		}
	}
	return m, nil
}

// handleFrame advances the simulation by the real elapsed frame time.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.started.IsZero() {
		m.started = now
	}

	elapsed := time.Duration(0)
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
		if elapsed > maxFrameGap {
			elapsed = maxFrameGap
		}
	}
	m.lastFrame = now
	m.frameDT = elapsed.Seconds()

	if !m.paused {
		batch := m.pending
		batch.LeftDown = m.leftHeld
		m.world.Advance(elapsed, batch)

		// One-shot events are consumed; cursor and held state carry over.
		m.pending.LeftPressed = false
		m.pending.LeftReleased = false
		m.pending.RightPressed = false
	}

	return m, frameCmd(m.fps)
}

// saveMatch records the final standings. Best effort: an interactive
// session without a store simply skips persistence.
func (m *Model) saveMatch() {
	if m.store == nil || m.saved {
		return
	}
	m.saved = true

	rec := matchRecord(m.world, m.scenario, time.Since(m.started), "aborted")
	//nolint:errcheck // Best-effort save, quitting proceeds regardless
	m.store.SaveMatch(rec)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawWorld(m.screen, m.world, m.cam, m.showHUD, m.frameDT)
	return RenderScreen(m.screen)
}

// matchRecord snapshots a world into a storable result. The winner is
// the sole surviving player, or -1 while several remain.
func matchRecord(w *sim.World, scenario string, duration time.Duration, reason string) storage.MatchRecord {
	centroids := w.PlayerCentroids()

	winner := -1
	survivors := 0
	for _, c := range centroids {
		if c.Alive > 0 {
			survivors++
			winner = int(c.Player)
		}
	}
	if survivors != 1 {
		winner = -1
	} else {
		reason = "completed"
	}

	standings := make([]storage.PlayerStanding, len(centroids))
	for i, c := range centroids {
		standings[i] = storage.PlayerStanding{
			Player: int(c.Player),
			Alive:  c.Alive,
			X:      c.X,
			Y:      c.Y,
		}
	}

	return storage.MatchRecord{
		Scenario:      scenario,
		Seed:          w.Seed(),
		Players:       w.Players(),
		BoardSize:     w.BoardSize(),
		SpawnInterval: w.SpawnInterval(),
		Ticks:         w.Tick(),
		Duration:      int(duration.Seconds()),
		Digest:        w.Digest(),
		Winner:        winner,
		EndReason:     reason,
		Standings:     standings,
	}
}

// Run starts the Bubble Tea program for an interactive session.
func Run(world *sim.World, store *storage.Store, scenario string) error {
	model := NewModel(world, store, scenario)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags drive selection
	)

	_, err := p.Run()
	return err
}
