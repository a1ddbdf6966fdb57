package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/taxi-rush/internal/config"
	"github.com/vovakirdan/taxi-rush/internal/core"
)

// Outcome describes how a session ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWin
	OutcomeTimeUp
	OutcomeOutOfFuel
	OutcomeBankrupt
)

var outcomeNames = [...]string{"running", "win", "time_up", "out_of_fuel", "bankrupt"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Params configures a new session.
type Params struct {
	Config config.TaxiConfig
	Role   Role
}

// Result summarises a finished (or running) session.
type Result struct {
	Outcome    Outcome
	Role       Role
	Score      int
	Money      float64
	Elapsed    time.Duration
	Deliveries int
}

// Session owns one round of play: the player, traffic, the world registry
// and the clock. It is not safe for concurrent use.
type Session struct {
	cfg     config.TaxiConfig
	grid    Grid
	sampler *Sampler
	rng     *rand.Rand
	logger  *log.Logger

	player *PlayerCar
	npcs   []*NPCCar
	world  Registry

	tick    uint64
	elapsed time.Duration
	outcome Outcome
	cues    []core.Cue
	message string
}

// NewSession lays out a fresh world. A nil logger discards output.
func NewSession(p Params, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := p.Config
	g := NewGrid(cfg.Grid)
	s := &Session{
		cfg:     cfg,
		grid:    g,
		sampler: NewSampler(g, rng, cfg.Spawn.MaxAttempts),
		rng:     rng,
		logger:  logger,
	}
	fp := Footprint{W: cfg.Player.FootprintW, H: cfg.Player.FootprintH}
	start := Position{X: cfg.Player.StartX, Y: cfg.Player.StartY}
	s.player = newPlayerCar(start, p.Role, fp, cfg.Player.Fuel, cfg.Player.Money)

	for i := range cfg.NPC.Count {
		pos, err := s.sampler.SampleRoadPositionWhere(func(c Position) bool {
			return s.clearForNPC(c, -1)
		})
		if err != nil {
			return nil, fmt.Errorf("sim: place npc %d: %w", i, err)
		}
		s.npcs = append(s.npcs, NewNPCCar(pos, randomDirection(rng), fp))
	}

	for i := range cfg.Spawn.FuelStations {
		pos, err := s.sampler.SampleAdjacentBuildingPosition(s.world.Occupied())
		if err != nil {
			return nil, fmt.Errorf("sim: place fuel station %d: %w", i, err)
		}
		s.world.SetFuelStation(i, FuelStation{Pos: pos})
	}

	n := cfg.Spawn.MinPickups + rng.Intn(cfg.Spawn.MaxPickups-cfg.Spawn.MinPickups+1)
	s.world.SetActivePickupItems(n)
	for i := range s.world.ActivePickupItems() {
		pos, err := s.sampler.SampleAdjacentBuildingPosition(s.world.Occupied())
		if err != nil {
			return nil, fmt.Errorf("sim: place pickup %d: %w", i, err)
		}
		s.world.SetPickupItem(i, PickupItem{Kind: p.Role.PickupKind(), Pos: pos, Active: true})
	}

	s.logger.Info("session started",
		"role", p.Role,
		"npcs", len(s.npcs),
		"pickups", s.world.ActivePickupItems(),
	)
	return s, nil
}

// clearForNPC reports whether an NPC footprint at pos would overlap neither
// the player nor any NPC other than skip.
func (s *Session) clearForNPC(pos Position, skip int) bool {
	r := Footprint{W: s.cfg.Player.FootprintW, H: s.cfg.Player.FootprintH}.Rect(pos)
	if r.Intersects(s.player.Bounds()) {
		return false
	}
	for i, n := range s.npcs {
		if i != skip && r.Intersects(n.Bounds()) {
			return false
		}
	}
	return true
}

func (s *Session) Grid() Grid             { return s.grid }
func (s *Session) Player() *PlayerCar     { return s.player }
func (s *Session) NPCs() []*NPCCar        { return s.npcs }
func (s *Session) World() *Registry       { return &s.world }
func (s *Session) Ended() bool            { return s.outcome != OutcomeRunning }
func (s *Session) Outcome() Outcome       { return s.outcome }
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Message is the most recent event text for the HUD.
func (s *Session) Message() string { return s.message }

// Remaining returns the time left on the clock, never negative.
func (s *Session) Remaining() time.Duration {
	return max(s.cfg.Duration()-s.elapsed, 0)
}

// Result reports the current outcome and totals.
func (s *Session) Result() Result {
	return Result{
		Outcome:    s.outcome,
		Role:       s.player.role,
		Score:      s.player.score,
		Money:      s.player.money,
		Elapsed:    s.elapsed,
		Deliveries: s.player.deliveries,
	}
}

// DrainCues returns the cues raised since the previous call.
func (s *Session) DrainCues() []core.Cue {
	out := s.cues
	s.cues = nil
	return out
}

func (s *Session) raise(c core.Cue) {
	s.cues = append(s.cues, c)
}

func (s *Session) say(msg string) {
	s.message = msg
}

// MovePlayer tries to drive one step in dir. The fuel cost is paid whether
// or not the move succeeds. A target outside the map box is ignored without
// penalty; driving into a building costs score and raises a collision cue.
func (s *Session) MovePlayer(dir Direction) error {
	if s.Ended() {
		return ErrSessionOver
	}
	p := s.player
	p.AddFuel(-s.cfg.Player.MoveFuelCost)

	dx, dy := dir.Delta(s.cfg.Player.Step)
	target := Position{X: p.pos.X + dx, Y: p.pos.Y + dy}
	if !s.grid.InBox(target) {
		s.logger.Debug("move ignored at map edge", "dir", dir, "target", target)
		return fmt.Errorf("sim: move %s to %s: %w", dir, target, ErrBlocked)
	}
	if !s.grid.Drivable(target) {
		p.AddScore(-s.cfg.Player.WallPenalty)
		s.raise(core.CueCollision)
		s.say("Hit a building!")
		s.logger.Debug("move rejected", "dir", dir, "target", target)
		return fmt.Errorf("sim: move %s to %s: %w", dir, target, ErrBlocked)
	}
	p.pos = target
	s.resolveCollisions()
	return nil
}

// Tick advances the simulation by one tick period. It does nothing once
// the session has ended.
func (s *Session) Tick() {
	if s.Ended() {
		return
	}
	s.tick++
	s.elapsed += s.cfg.TickPeriod()
	for _, n := range s.npcs {
		n.Step(s.grid, s.rng, s.cfg.NPC.Speed)
	}
	s.resolveCollisions()
	s.checkEnd()
}

// resolveCollisions moves every NPC overlapping the player to a clear road
// position and charges the crash penalty for each. It returns the number of
// collisions handled.
func (s *Session) resolveCollisions() int {
	hits := 0
	for i, n := range s.npcs {
		if !Collides(s.player, n) {
			continue
		}
		hits++
		s.player.AddScore(-s.cfg.Player.CrashPenalty)
		pos, err := s.sampler.SampleRoadPositionWhere(func(c Position) bool {
			return s.clearForNPC(c, i)
		})
		if err != nil {
			s.logger.Warn("cannot relocate npc", "npc", i, "err", err)
			continue
		}
		n.Relocate(pos, randomDirection(s.rng))
	}
	if hits > 0 {
		s.raise(core.CueCollision)
		s.say("Collision!")
		s.logger.Debug("collision", "count", hits, "score", s.player.score)
	}
	return hits
}

func (s *Session) checkEnd() {
	p := s.player
	switch {
	case p.score >= s.cfg.Session.WinScore:
		s.outcome = OutcomeWin
	case p.score < 0:
		s.outcome = OutcomeBankrupt
	case p.fuel <= 0:
		s.outcome = OutcomeOutOfFuel
	case s.elapsed >= s.cfg.Duration():
		s.outcome = OutcomeTimeUp
	default:
		return
	}
	s.logger.Info("session ended",
		"outcome", s.outcome,
		"score", p.score,
		"elapsed", s.elapsed,
		"deliveries", p.deliveries,
	)
}

// near reports whether pos is within the interaction radius of the player.
func (s *Session) near(pos Position) bool {
	return core.WithinChebyshev(s.player.pos.X, s.player.pos.Y, pos.X, pos.Y, s.cfg.Delivery.Radius)
}
