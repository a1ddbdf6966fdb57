package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/taxi-rush/internal/platform/tui"
	"github.com/vovakirdan/taxi-rush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [taxi|delivery|random]",
	Short: "Drive one shift",
	Long: `Start a shift in the given role (default taxi).

Controls:
  Arrows/WASD  - Drive
  Enter        - Pick up or drop off
  Space        - Refuel at a station
  P            - Pause
  R            - Play again (after game over)
  Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - 2 traffic cars, 4 minute shift
  normal - 4 traffic cars, 3 minute shift
  hard   - 4 faster traffic cars, 2.5 minute shift

Examples:
  taxirush play
  taxirush play delivery --difficulty easy
  taxirush play random --name Ann
  taxirush play --config ./my-taxi.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "taxi"
	if len(args) == 1 {
		gameID = args[0]
	}
	if gameID == "random" {
		games := registry.List()
		gameID = games[rand.New(rand.NewSource(time.Now().UnixNano())).Intn(len(games))].ID
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown role %q, run 'taxirush roles' to see the choices", gameID)
	}

	a, err := setup(modeTUI)
	if err != nil {
		return err
	}
	defer a.close()

	game, err := registry.Create(gameID, registry.Env{Logger: a.svc.Logger})
	if err != nil {
		return err
	}
	a.svc.Logger.Info("shift started", "role", gameID, "name", a.runtime.PlayerName)
	return tui.Run(game, a.runtime, a.svc)
}
