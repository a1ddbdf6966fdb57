package sim

import (
	"fmt"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

// Interact performs the context action: drop off when carrying, pick up
// otherwise.
func (s *Session) Interact() error {
	if s.player.carrying {
		return s.DropOff()
	}
	return s.Pickup()
}

// Pickup collects the lowest-index active pickup within reach and places a
// destination for it.
func (s *Session) Pickup() error {
	if s.Ended() {
		return ErrSessionOver
	}
	p := s.player
	switch {
	case p.fuel <= 0:
		return s.reject("pickup", ErrNoFuel)
	case p.carrying:
		return s.reject("pickup", ErrAlreadyCarrying)
	}

	for i := range s.world.ActivePickupItems() {
		item := s.world.PickupItem(i)
		if item == nil || !item.Active || !s.near(item.Pos) {
			continue
		}
		dest, err := s.sampler.SampleAdjacentBuildingPosition(s.world.Occupied())
		if err != nil {
			return fmt.Errorf("sim: place destination: %w", err)
		}
		item.Active = false
		p.carrying = true
		p.dest.Place(dest)
		p.AddFuel(-s.cfg.Delivery.FuelCost)

		if item.Kind == KindBox {
			s.say("Box picked up!")
		} else {
			s.say("Passenger picked up!")
		}
		s.logger.Debug("pickup", "slot", i, "kind", item.Kind, "destination", dest)
		return nil
	}
	return s.reject("pickup", ErrNothingNearby)
}

// DropOff delivers the cargo when the destination is within reach, pays
// out the reward and brings one inactive pickup slot back into play.
func (s *Session) DropOff() error {
	if s.Ended() {
		return ErrSessionOver
	}
	p := s.player
	switch {
	case p.fuel <= 0:
		return s.reject("drop-off", ErrNoFuel)
	case !p.carrying || !p.dest.Active:
		return s.reject("drop-off", ErrNotCarrying)
	case !s.near(p.dest.Pos):
		return s.reject("drop-off", ErrTooFar)
	}

	// Pick the respawn slot and its position before touching any state so a
	// placement failure leaves the session unchanged.
	var (
		respawn    *PickupItem
		respawnPos Position
	)
	respawnSlot := -1
	for i := range s.world.ActivePickupItems() {
		if item := s.world.PickupItem(i); item != nil && !item.Active {
			pos, err := s.sampler.SampleAdjacentBuildingPosition(s.world.Occupied())
			if err != nil {
				return fmt.Errorf("sim: respawn pickup %d: %w", i, err)
			}
			respawn, respawnSlot, respawnPos = item, i, pos
			break
		}
	}

	p.carrying = false
	p.dest.Active = false
	p.deliveries++
	p.AddScore(s.cfg.Delivery.ScoreReward)
	p.AddMoney(s.cfg.Delivery.MoneyReward)
	p.AddFuel(-s.cfg.Delivery.FuelCost)
	if respawn != nil {
		respawn.Pos = respawnPos
		respawn.Active = true
	}

	s.raise(core.CueDelivery)
	if p.role == RoleDelivery {
		s.say("Box delivered!")
	} else {
		s.say("Passenger delivered!")
	}
	s.logger.Debug("drop-off", "score", p.score, "money", p.money, "respawn", respawnSlot)
	return nil
}

// Refuel buys fuel at the first station within reach.
func (s *Session) Refuel() error {
	if s.Ended() {
		return ErrSessionOver
	}
	var station *FuelStation
	for i := range StationCapacity {
		if st := s.world.FuelStation(i); st != nil && s.near(st.Pos) {
			station = st
			break
		}
	}
	p := s.player
	switch {
	case station == nil:
		return s.reject("refuel", ErrNoStation)
	case p.money < s.cfg.Refuel.MoneyCost:
		s.say("Not enough money to refuel!")
		return s.reject("refuel", ErrInsufficientFunds)
	}

	p.AddFuel(s.cfg.Refuel.FuelGain)
	p.AddMoney(-s.cfg.Refuel.MoneyCost)
	s.raise(core.CueRefuel)
	s.say("Refueled!")
	s.logger.Debug("refuel", "station", station.Pos, "fuel", p.fuel, "money", p.money)
	return nil
}

func (s *Session) reject(action string, err error) error {
	s.logger.Debug("action rejected", "action", action, "reason", err)
	return fmt.Errorf("sim: %s: %w", action, err)
}
