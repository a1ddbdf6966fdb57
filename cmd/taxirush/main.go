// taxirush is a terminal taxi and delivery arcade game.
//
// Usage:
//
//	taxirush play [role]   - Drive one shift as taxi, delivery or random
//	taxirush menu          - Start screen with leaderboard and role choice
//	taxirush scores        - Print the top ten leaderboard
//	taxirush history       - Print finished runs and per-role totals
//	taxirush roles         - List the playable roles
//	taxirush serve         - Start SSH server for remote play
//
// Global flags:
//
//	--tick <ms>           - Tick period in milliseconds (default from config)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Run history database (default: ~/.taxirush/history.db)
//	--leaderboard <path>  - Leaderboard file (default: ~/.taxirush/scores.dat)
//	--config <path>       - Custom rules YAML
//	--difficulty <name>   - easy, normal or hard
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
//	--name <name>         - Player name for play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/taxi-rush/internal/games/taxi"
)

var (
	// Global flags
	flagTick       int
	flagSeed       int64
	flagDBPath     string
	flagBoardPath  string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
	flagPlayerName string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taxirush",
	Short: "Taxi Rush - pick up fares and beat the clock in your terminal",
	Long: `Taxi Rush is a terminal arcade game. Drive a taxi or a delivery van
around a city grid, pick up passengers or parcels, drop them off, keep the
tank full and avoid traffic. Reach 100 points before the shift ends.

Available commands:
  play     - Play one shift directly
  menu     - Start screen with leaderboard and role choice
  scores   - Print the leaderboard
  history  - Print past runs
  roles    - List playable roles
  serve    - Start SSH server for remote play

Examples:
  taxirush play
  taxirush play delivery --name Ann
  taxirush menu --difficulty hard
  taxirush serve --ssh :2222
  taxirush scores`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagTick, "tick", 0, "Tick period in milliseconds (0 = use config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.taxirush/history.db", "Path to run history database")
	flags.StringVar(&flagBoardPath, "leaderboard", "~/.taxirush/scores.dat", "Path to leaderboard file")
	flags.StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound cues")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagPlayerName, "name", "Anonymous", "Player name recorded on the leaderboard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(serveCmd)
}
