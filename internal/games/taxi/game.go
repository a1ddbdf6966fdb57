// Package taxi adapts the taxi simulation to the arcade game interface.
// Two variants are registered: "taxi" carries passengers and "delivery"
// carries parcels. The rules are identical.
package taxi

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/taxi-rush/internal/config"
	"github.com/vovakirdan/taxi-rush/internal/core"
	"github.com/vovakirdan/taxi-rush/internal/games/taxi/sim"
	"github.com/vovakirdan/taxi-rush/internal/logging"
	"github.com/vovakirdan/taxi-rush/internal/registry"
)

func init() {
	registry.Register("taxi", func(env registry.Env) registry.Game {
		return New(sim.RoleTaxi, env.Logger)
	})
	registry.Register("delivery", func(env registry.Env) registry.Game {
		return New(sim.RoleDelivery, env.Logger)
	})
}

var (
	sharedMu  sync.RWMutex
	sharedCfg = config.DefaultTaxiConfig()
)

// Configure sets the rules used by every game created afterwards.
// The CLI calls it once after loading configuration.
func Configure(cfg config.TaxiConfig) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedCfg = cfg
}

func currentConfig() config.TaxiConfig {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedCfg
}

// Game is one player's taxi round.
type Game struct {
	role    sim.Role
	logger  *log.Logger
	cfg     config.TaxiConfig
	runtime core.RuntimeConfig

	session *sim.Session
	paused  bool
	err     error // setup failure, shown instead of the map
}

// New creates a game for the given role. A nil logger discards output.
func New(role sim.Role, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		role:   role,
		logger: logger,
		cfg:    currentConfig(),
	}
}

// WithConfig overrides the rules for this instance.
func (g *Game) WithConfig(cfg config.TaxiConfig) *Game {
	g.cfg = cfg
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.role.String()
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.role == sim.RoleDelivery {
		return "Delivery Driver"
	}
	return "Taxi Driver"
}

// Role returns the variant's role.
func (g *Game) Role() sim.Role {
	return g.role
}

// Reset starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	rng := rand.New(rand.NewSource(runtime.Seed))
	s, err := sim.NewSession(sim.Params{Config: g.cfg, Role: g.role}, rng, g.logger.With("player", runtime.PlayerName))
	if err != nil {
		g.logger.Error("cannot start session", "err", err)
		g.session = nil
		g.err = err
		return
	}
	g.session = s
}

// Session exposes the running simulation, or nil before Reset.
func (g *Game) Session() *sim.Session {
	return g.session
}

// Step applies queued actions in order and then advances the clock one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if g.session.Ended() {
		if in.Has(core.ActionRestart) {
			g.runtime.Seed++
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if g.session.Ended() {
			break
		}
		// Rejections are logged by the session and have no further effect.
		switch a {
		case core.ActionUp:
			_ = g.session.MovePlayer(sim.DirUp)
		case core.ActionDown:
			_ = g.session.MovePlayer(sim.DirDown)
		case core.ActionLeft:
			_ = g.session.MovePlayer(sim.DirLeft)
		case core.ActionRight:
			_ = g.session.MovePlayer(sim.DirRight)
		case core.ActionInteract:
			_ = g.session.Interact()
		case core.ActionRefuel:
			_ = g.session.Refuel()
		}
	}
	g.session.Tick()

	return core.StepResult{
		State: g.State(),
		Cues:  g.session.DrainCues(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	return core.GameState{
		Score:    g.session.Player().Score(),
		GameOver: g.session.Ended(),
		Won:      g.session.Outcome() == sim.OutcomeWin,
		Paused:   g.paused,
	}
}

// Report summarises the round for the history store.
func (g *Game) Report() core.RoundReport {
	if g.session == nil {
		return core.RoundReport{Role: g.role.String()}
	}
	r := g.session.Result()
	return core.RoundReport{
		Role:       r.Role.String(),
		Outcome:    r.Outcome.String(),
		Score:      r.Score,
		Duration:   r.Elapsed,
		Deliveries: r.Deliveries,
	}
}

var _ registry.Reporter = (*Game)(nil)
