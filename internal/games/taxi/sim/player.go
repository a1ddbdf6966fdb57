package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

// Role selects what the player transports.
type Role int

const (
	RoleTaxi Role = iota
	RoleDelivery
)

func (r Role) String() string {
	if r == RoleDelivery {
		return "delivery"
	}
	return "taxi"
}

// PickupKind is the kind of item this role collects.
func (r Role) PickupKind() ItemKind {
	if r == RoleDelivery {
		return KindBox
	}
	return KindPassenger
}

// ParseRole accepts "taxi" or "delivery", case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "taxi":
		return RoleTaxi, nil
	case "delivery":
		return RoleDelivery, nil
	default:
		return RoleTaxi, fmt.Errorf("sim: unknown role %q", s)
	}
}

// PlayerCar is the car the user drives.
type PlayerCar struct {
	pos        Position
	role       Role
	footprint  Footprint
	fuel       float64
	money      float64
	score      int
	carrying   bool
	dest       Destination
	deliveries int
}

func newPlayerCar(pos Position, role Role, fp Footprint, fuel, money float64) *PlayerCar {
	return &PlayerCar{
		pos:       pos,
		role:      role,
		footprint: fp,
		fuel:      fuel,
		money:     money,
	}
}

func (p *PlayerCar) Pos() Position     { return p.pos }
func (p *PlayerCar) Bounds() core.Rect { return p.footprint.Rect(p.pos) }
func (p *PlayerCar) Role() Role        { return p.role }
func (p *PlayerCar) Fuel() float64     { return p.fuel }
func (p *PlayerCar) Money() float64    { return p.money }
func (p *PlayerCar) Score() int        { return p.score }
func (p *PlayerCar) Carrying() bool    { return p.carrying }
func (p *PlayerCar) Deliveries() int   { return p.deliveries }

// Destination returns a copy of the current drop-off target.
func (p *PlayerCar) Destination() Destination { return p.dest }

// MoveTo places the car at pos without any rule checks.
func (p *PlayerCar) MoveTo(pos Position) { p.pos = pos }

// SetFuel sets the tank level, flooring at zero.
func (p *PlayerCar) SetFuel(v float64) { p.fuel = max(v, 0) }

// AddFuel adjusts the tank level, flooring at zero.
func (p *PlayerCar) AddFuel(delta float64) { p.SetFuel(p.fuel + delta) }

// SetMoney sets the wallet, flooring at zero.
func (p *PlayerCar) SetMoney(v float64) { p.money = max(v, 0) }

// AddMoney adjusts the wallet, flooring at zero.
func (p *PlayerCar) AddMoney(delta float64) { p.SetMoney(p.money + delta) }

// AddScore adjusts the score. The score may go negative.
func (p *PlayerCar) AddScore(delta int) { p.score += delta }
