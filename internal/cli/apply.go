package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a sequence of moves in standard notation to a fresh solved cube
and print the resulting net.

Example:
  cubesim apply "R U R' U'"
  cubesim apply R U2 F'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubesim.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	lat := cubesim.NewLattice()
	if err := lat.Apply(moves...); err != nil {
		return err
	}

	fmt.Printf("%s (%d quarter turns)\n\n", cubesim.FormatMoves(moves), len(moves))
	fmt.Print(renderNet(lat))
	if lat.IsSolved() {
		fmt.Println("\nSolved.")
	}
	return nil
}
