package sim

// Fixed slot capacities of the world registry.
const (
	PickupCapacity  = 4
	StationCapacity = 3
)

// ItemKind is what a pickup represents.
type ItemKind int

const (
	KindPassenger ItemKind = iota
	KindBox
)

func (k ItemKind) String() string {
	if k == KindBox {
		return "box"
	}
	return "passenger"
}

// PickupItem is a passenger or parcel waiting to be collected.
type PickupItem struct {
	Kind   ItemKind
	Pos    Position
	Active bool
}

// Destination is the drop-off target for the cargo being carried.
type Destination struct {
	Pos    Position
	Active bool
}

// Place moves the destination to pos and activates it.
func (d *Destination) Place(pos Position) {
	d.Pos = pos
	d.Active = true
}

// FuelStation is where money buys fuel.
type FuelStation struct {
	Pos Position
}

// Registry is the fixed-capacity world store for pickups and fuel stations.
// Slots hold values; an unoccupied slot reads as nil.
type Registry struct {
	pickups       [PickupCapacity]PickupItem
	pickupSet     [PickupCapacity]bool
	activePickups int
	stations      [StationCapacity]FuelStation
	stationSet    [StationCapacity]bool
}

// SetPickupItem stores item in slot i. It reports false when i is out of
// range.
func (r *Registry) SetPickupItem(i int, item PickupItem) bool {
	if i < 0 || i >= PickupCapacity {
		return false
	}
	r.pickups[i] = item
	r.pickupSet[i] = true
	return true
}

// PickupItem returns slot i, or nil when the index is out of range or the
// slot was never filled.
func (r *Registry) PickupItem(i int) *PickupItem {
	if i < 0 || i >= PickupCapacity || !r.pickupSet[i] {
		return nil
	}
	return &r.pickups[i]
}

// SetActivePickupItems sets how many pickup slots are in play, clamped to
// the slot capacity.
func (r *Registry) SetActivePickupItems(n int) {
	r.activePickups = min(max(n, 0), PickupCapacity)
}

// ActivePickupItems returns the number of pickup slots in play.
func (r *Registry) ActivePickupItems() int {
	return r.activePickups
}

// SetFuelStation stores st in slot i. It reports false when i is out of
// range.
func (r *Registry) SetFuelStation(i int, st FuelStation) bool {
	if i < 0 || i >= StationCapacity {
		return false
	}
	r.stations[i] = st
	r.stationSet[i] = true
	return true
}

// FuelStation returns slot i or nil.
func (r *Registry) FuelStation(i int) *FuelStation {
	if i < 0 || i >= StationCapacity || !r.stationSet[i] {
		return nil
	}
	return &r.stations[i]
}

// Occupied lists the positions of every station and every active pickup in
// play. New placements must avoid them.
func (r *Registry) Occupied() []Position {
	var out []Position
	for i := range StationCapacity {
		if r.stationSet[i] {
			out = append(out, r.stations[i].Pos)
		}
	}
	for i := range r.activePickups {
		if r.pickupSet[i] && r.pickups[i].Active {
			out = append(out, r.pickups[i].Pos)
		}
	}
	return out
}
