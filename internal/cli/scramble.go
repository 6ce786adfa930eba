package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and print it with the resulting net.
Use --seed for a reproducible scramble.`,
	RunE: runScramble,
}

var (
	scrambleLen  int
	scrambleSeed int64
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLen, "length", "n", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 for time-based)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n := scrambleLen
	if n <= 0 {
		n = cfg.ScrambleLen
	}
	seed := scrambleSeed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	moves := cubesim.ScrambleMoves(rand.New(rand.NewSource(seed)), n)

	lat := cubesim.NewLattice()
	if err := lat.Apply(moves...); err != nil {
		return err
	}

	fmt.Printf("%s\n\n", cubesim.FormatMoves(moves))
	fmt.Print(renderNet(lat))
	return nil
}
