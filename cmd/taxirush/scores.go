package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/taxi-rush/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the leaderboard",
	Long: `Display the top 10 scores from the leaderboard file.

Examples:
  taxirush scores
  taxirush scores --leaderboard ./scores.dat`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, _ []string) error {
	board, err := leaderboard.NewFile(flagBoardPath).Load()
	if err != nil {
		return err
	}
	printBoard(cmd.OutOrStdout(), board)
	return nil
}

func printBoard(w io.Writer, board leaderboard.Board) {
	if board.Len() == 0 {
		fmt.Fprintln(w, "No high scores yet!")
		return
	}
	for i, e := range board.Entries() {
		fmt.Fprintf(w, "%d. %s - %d\n", i+1, e.Name, e.Score)
	}
}
