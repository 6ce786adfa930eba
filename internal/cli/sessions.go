package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List and replay recorded sessions",
	RunE:  runSessions,
}

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Replay a recorded session",
	Long: `Replay a recorded session against a fresh cube: apply the scramble, then
every recorded move, and print the resulting net. Replaying the same
session always reproduces the same final state.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var sessionsLimit int

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(replayCmd)
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum sessions to list")
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	for _, s := range sessions {
		status := "in progress"
		if s.EndedAt != nil {
			status = fmt.Sprintf("%.1fs", float64(*s.DurationMs)/1000)
		}
		solved := ""
		if s.Solved {
			solved = "  solved"
		}
		fmt.Printf("%s  %s  %3d moves  %s%s\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04"), s.MoveCount, status, solved)
	}
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	session, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	notations, err := repo.Moves(session.SessionID)
	if err != nil {
		return err
	}

	lat := cubesim.NewLattice()
	if session.Scramble != nil {
		if err := lat.ApplyNotation(*session.Scramble); err != nil {
			return fmt.Errorf("stored scramble is invalid: %w", err)
		}
		fmt.Printf("scramble: %s\n", *session.Scramble)
	}

	moves, err := cubesim.ParseMoves(strings.Join(notations, " "))
	if err != nil {
		return fmt.Errorf("stored moves are invalid: %w", err)
	}
	if err := lat.Apply(moves...); err != nil {
		return err
	}

	fmt.Printf("replayed %d moves\n\n", len(moves))
	fmt.Print(renderNet(lat))
	if lat.IsSolved() {
		fmt.Println("\nSolved.")
	}
	return nil
}
