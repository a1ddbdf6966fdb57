package sim

import "errors"

// Rejected transitions. Every one of them leaves the session unchanged
// apart from costs the rules charge unconditionally (movement fuel).
var (
	ErrSessionOver       = errors.New("sim: session is over")
	ErrBlocked           = errors.New("sim: move blocked")
	ErrNoFuel            = errors.New("sim: out of fuel")
	ErrAlreadyCarrying   = errors.New("sim: already carrying cargo")
	ErrNotCarrying       = errors.New("sim: not carrying cargo")
	ErrNothingNearby     = errors.New("sim: no pickup within reach")
	ErrTooFar            = errors.New("sim: destination out of reach")
	ErrNoStation         = errors.New("sim: no fuel station within reach")
	ErrInsufficientFunds = errors.New("sim: not enough money to refuel")
)

// ErrNoFreeCell is returned when the grid has no cell left that satisfies a
// placement request.
var ErrNoFreeCell = errors.New("sim: no free cell")
