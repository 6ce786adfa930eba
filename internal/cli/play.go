package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Play with the cube interactively. Face turns animate over the configured
turn duration; a new turn cannot start until the current one settles.

Keyboard:
  r l u d f b  - turn a face clockwise
  R L U D F B  - turn a face counter-clockwise
  z            - undo the last move
  s            - scramble
  n            - reset to solved
  q/Esc        - quit`,
	RunE: runPlay,
}

var playRecord bool

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record the session to the database")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type frameMsg time.Time

// Model
type playModel struct {
	eng         *cubesim.Engine
	scrambleLen int

	// Session recording (nil when not recording)
	repo      *storage.SessionRepository
	sessionID string
	moveIndex int
	recordErr error

	lastFrame time.Time
	scramble  []cubesim.Move
	quitting  bool
}

func newPlayModel(eng *cubesim.Engine, scrambleLen int, repo *storage.SessionRepository, sessionID string) *playModel {
	m := &playModel{
		eng:         eng,
		scrambleLen: scrambleLen,
		repo:        repo,
		sessionID:   sessionID,
		lastFrame:   time.Now(),
	}

	// Completed moves go to the session as they settle.
	eng.OnMove(func(move cubesim.Move) {
		if m.repo == nil || m.recordErr != nil {
			return
		}
		if err := m.repo.AppendMove(m.sessionID, m.moveIndex, move.Notation()); err != nil {
			m.recordErr = err
			return
		}
		m.moveIndex++
	})

	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.frameCmd()
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.repo != nil {
				_ = m.repo.End(m.sessionID, m.eng.Lattice().IsSolved())
			}
			return m, tea.Quit

		case "z":
			m.eng.Undo()

		case "s":
			// The scramble becomes the session's new starting state, so
			// the cube resets first and any recorded moves are discarded.
			if !m.eng.Reset() {
				break
			}
			moves, err := m.eng.Scramble(m.scrambleLen)
			if err != nil {
				break
			}
			m.scramble = moves
			m.restartRecording(cubesim.FormatMoves(moves))

		case "n":
			if m.eng.Reset() {
				m.scramble = nil
				m.restartRecording("")
			}

		default:
			if move, ok := keyToMove(key); ok {
				m.eng.Request(move)
			}
		}

	case frameMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastFrame).Seconds()
		m.lastFrame = now
		m.eng.Tick(dt)
		return m, m.frameCmd()
	}

	return m, nil
}

// restartRecording rewrites the session's starting state after a scramble
// or reset: the stored scramble is replaced, prior moves are dropped, and
// move indices restart from zero.
func (m *playModel) restartRecording(scramble string) {
	m.moveIndex = 0
	if m.repo == nil || m.recordErr != nil {
		return
	}
	if err := m.repo.SetScramble(m.sessionID, scramble); err != nil {
		m.recordErr = err
	}
}

// keyToMove maps a key press to a move: lowercase letters are clockwise,
// uppercase counter-clockwise.
func keyToMove(key string) (cubesim.Move, bool) {
	if len(key) != 1 {
		return cubesim.Move{}, false
	}

	moves := map[string]cubesim.Move{
		"r": cubesim.R, "R": cubesim.RPrime,
		"l": cubesim.L, "L": cubesim.LPrime,
		"u": cubesim.U, "U": cubesim.UPrime,
		"d": cubesim.D, "D": cubesim.DPrime,
		"f": cubesim.F, "F": cubesim.FPrime,
		"b": cubesim.B, "B": cubesim.BPrime,
	}
	m, ok := moves[key]
	return m, ok
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.eng.Lattice()))
	b.WriteString("\n")

	if err := m.eng.Err(); err != nil {
		b.WriteString(fmt.Sprintf("FATAL: %v\n", err))
		return b.String()
	}

	status := fmt.Sprintf("state: %s", m.eng.State())
	if pending := m.eng.Pending(); pending > 0 {
		status += fmt.Sprintf("  queued: %d", pending)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.eng.Lattice().IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	if history := m.eng.History(); len(history) > 0 {
		tail := history
		if len(tail) > 12 {
			tail = tail[len(tail)-12:]
		}
		b.WriteString(historyStyle.Render("moves: " + cubesim.FormatMoves(tail)))
		b.WriteString("\n")
	}

	if m.recordErr != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("recording stopped: %v", m.recordErr)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r/l/u/d/f/b turn  shift: reverse  z undo  s scramble  n reset  q quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng := cubesim.NewEngine(cfg.EngineOptions()...)

	var repo *storage.SessionRepository
	var sessionID string
	if playRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo = storage.NewSessionRepository(db)
		sessionID, err = repo.Create("")
		if err != nil {
			return err
		}
	}

	model := newPlayModel(eng, cfg.ScrambleLen, repo, sessionID)
	_, err = tea.NewProgram(model).Run()
	return err
}
