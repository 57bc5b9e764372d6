package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/voskhod/minofall/internal/core"
	"github.com/voskhod/minofall/internal/registry"
	"github.com/voskhod/minofall/internal/storage"
)

var (
	logoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the top-level Bubble Tea model: a stage machine that moves
// between the title screen, the informational screens, and the game
// session. Three rapid escape presses from any stage quit the program.
type Model struct {
	store  *storage.Store
	logger *log.Logger
	keys   KeyMap

	config core.RuntimeConfig
	gameID string

	stage  Stage
	cursor TitleCursor
	escape *EscapeTracker

	game       registry.Game
	screen     *core.Screen
	input      core.InputFrame
	gameState  core.GameState
	scoreSaved bool

	tickDt     time.Duration
	playedOnce bool
	quitting   bool
}

// NewModel creates the shell model. The store may be nil; scores are
// then not persisted.
func NewModel(store *storage.Store, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		store:  store,
		logger: logger,
		keys:   keys,
		config: cfg,
		gameID: "minofall",
		stage:  StageInitial,
		cursor: NewTitleCursor(),
		escape: NewEscapeTracker(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		input:  core.NewInputFrame(),
		tickDt: time.Second / time.Duration(cfg.TickRate),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey routes keyboard input by stage.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		if m.escape.Press() {
			return m.quit()
		}
		// A single escape also backs out of the pushed screens.
		if m.stage == StageSettings || m.stage == StageInfos {
			m.setStage(StageTitle)
		}
		return m, nil
	}

	switch m.stage {
	case StageInitial:
		m.setStage(StageTitle)
	case StageTitle:
		return m.handleTitleKey(msg)
	case StageSettings, StageInfos:
		if m.keys.MapTitleKey(msg) == core.ActionConfirm {
			m.setStage(StageTitle)
		}
	case StageGame:
		m.keys.MapGameKey(msg, &m.input)
	}

	return m, nil
}

// handleTitleKey moves the menu cursor and activates entries.
func (m Model) handleTitleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapTitleKey(msg) {
	case core.ActionUp:
		m.cursor.Prev()
	case core.ActionDown:
		m.cursor.Next()
	case core.ActionConfirm:
		switch m.cursor.Current() {
		case TitleStart:
			return m.startGame()
		case TitleSettings:
			m.setStage(StageSettings)
		case TitleInfos:
			m.setStage(StageInfos)
		case TitleExit:
			return m.quit()
		}
	}
	return m, nil
}

// handleResize tracks the new terminal dimensions. A running session
// restarts with the new geometry.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.stage == StageGame && m.game != nil && !m.gameState.Done {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the escape tracker and, during play, the
// simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.escape.Advance(m.tickDt)

	switch m.stage {
	case StageInitial:
		m.setStage(StageTitle)
	case StageGame:
		if m.game != nil {
			result := m.game.Step(m.input)
			m.gameState = result.State
			m.saveScoreOnce()
			m.input.Clear()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// startGame creates a fresh session and enters the game stage.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("cannot create game", "id", m.gameID, "error", err)
		return m, nil
	}

	// The first session honors the configured seed; later ones reseed.
	if m.playedOnce {
		m.config.Seed = time.Now().UnixNano()
	}
	m.playedOnce = true

	m.game = game
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.input.Clear()
	m.setStage(StageGame)
	return m, nil
}

// quit tears down any running session and exits through the end stage.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.game != nil {
		m.saveScoreOnce()
		if ender, ok := m.game.(interface{ EndSession() }); ok {
			ender.EndSession()
		}
		m.game = nil
	}
	m.setStage(StageEnd)
	m.quitting = true
	return m, tea.Quit
}

// saveScoreOnce persists a finished session's score, at most once.
func (m *Model) saveScoreOnce() {
	if m.scoreSaved || m.store == nil || m.game == nil {
		return
	}
	if m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	m.scoreSaved = true
}

// setStage transitions the stage machine and logs the change.
func (m *Model) setStage(next Stage) {
	if m.stage == next {
		return
	}
	if m.logger != nil {
		m.logger.Info("changed stage", "from", m.stage.String(), "to", next.String())
	}
	m.stage = next
}

// Stage exposes the current stage for tests.
func (m Model) Stage() Stage {
	return m.stage
}

// View renders the current stage.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case StageInitial:
		return m.viewCentered(logoStyle.Render("MINOFALL"))
	case StageTitle:
		return m.viewTitle()
	case StageSettings:
		return m.viewSettings()
	case StageInfos:
		return m.viewInfos()
	case StageGame:
		if m.game == nil {
			return ""
		}
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}
	return ""
}

// viewTitle draws the logo and the menu with the cursor marker.
func (m Model) viewTitle() string {
	var sb strings.Builder
	sb.WriteString(logoStyle.Render("M I N O F A L L"))
	sb.WriteString("\n\n")

	for _, e := range Entries() {
		if e == m.cursor.Current() {
			sb.WriteString(selectedStyle.Render("> " + e.Label()))
		} else {
			sb.WriteString(entryStyle.Render("  " + e.Label()))
		}
		sb.WriteRune('\n')
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("k/j move · enter select · esc esc esc quit"))

	return m.viewCentered(sb.String())
}

// viewSettings shows the active bindings. Editing them happens in the
// YAML config, not here.
func (m Model) viewSettings() string {
	var sb strings.Builder
	sb.WriteString(logoStyle.Render("Settings"))
	sb.WriteString("\n\n")
	sb.WriteString(entryStyle.Render("Bindings are read from the YAML config."))
	sb.WriteString("\n")
	sb.WriteString(entryStyle.Render("See ~/.minofall/configs/minofall.yaml"))
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("enter/esc back"))
	return m.viewCentered(sb.String())
}

// viewInfos shows the controls.
func (m Model) viewInfos() string {
	var sb strings.Builder
	sb.WriteString(logoStyle.Render("Infos"))
	sb.WriteString("\n\n")
	sb.WriteString(entryStyle.Render("h / l    move left / right"))
	sb.WriteString("\n")
	sb.WriteString(entryStyle.Render("g / s    spin cw / ccw"))
	sb.WriteString("\n")
	sb.WriteString(entryStyle.Render("j        hard drop"))
	sb.WriteString("\n")
	sb.WriteString(entryStyle.Render("esc x3   quit"))
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("enter/esc back"))
	return m.viewCentered(sb.String())
}

// viewCentered places content in the middle of the terminal.
func (m Model) viewCentered(content string) string {
	return lipgloss.Place(
		m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(store *storage.Store, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(store, keys, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
