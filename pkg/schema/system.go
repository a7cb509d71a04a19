package schema

// System is a star system and the waypoints orbiting it.
type System struct {
	Symbol       string           `json:"symbol"`
	SectorSymbol string           `json:"sectorSymbol"`
	Kind         SystemType       `json:"type"`
	X            int              `json:"x"`
	Y            int              `json:"y"`
	Waypoints    []SystemWaypoint `json:"waypoints"`
	Factions     []SystemFaction  `json:"factions"`
}

// SystemFaction is a faction present in a system.
type SystemFaction = Symbolic

// SystemWaypoint is the summary of a waypoint listed by its system.
type SystemWaypoint struct {
	Symbol string       `json:"symbol"`
	Kind   WaypointType `json:"type"`
	X      int          `json:"x"`
	Y      int          `json:"y"`
}

// ScannedSystem is a system found by a long-range scan.
type ScannedSystem struct {
	Symbol       string     `json:"symbol"`
	SectorSymbol string     `json:"sectorSymbol"`
	Kind         SystemType `json:"type"`
	X            int        `json:"x"`
	Y            int        `json:"y"`
	Distance     *int       `json:"distance,omitempty"`
}

// ConnectedSystem is a system reachable through a jump gate.
type ConnectedSystem struct {
	Symbol        string     `json:"symbol"`
	SectorSymbol  string     `json:"sectorSymbol"`
	Kind          SystemType `json:"type"`
	FactionSymbol *string    `json:"factionSymbol,omitempty"`
	X             int        `json:"x"`
	Y             int        `json:"y"`
	Distance      int        `json:"distance"`
}

// JumpGate lists the systems a gate can jump to.
type JumpGate struct {
	JumpRange        int               `json:"jumpRange"`
	FactionSymbol    *string           `json:"factionSymbol,omitempty"`
	ConnectedSystems []ConnectedSystem `json:"connectedSystems"`
}

type (
	WaypointFaction = Symbolic
	WaypointOrbital = Symbolic
	WaypointTrait   = TypedSymbol[WaypointTraitSymbol]
)

// Waypoint is a location within a system.
type Waypoint struct {
	Symbol       string            `json:"symbol"`
	Kind         WaypointType      `json:"type"`
	SystemSymbol string            `json:"systemSymbol"`
	X            int               `json:"x"`
	Y            int               `json:"y"`
	Orbitals     []WaypointOrbital `json:"orbitals"`
	Faction      *WaypointFaction  `json:"faction,omitempty"`
	Traits       []WaypointTrait   `json:"traits"`
	Chart        *Chart            `json:"chart,omitempty"`
}

// HasTrait reports whether the waypoint carries the given trait.
func (w Waypoint) HasTrait(sym WaypointTraitSymbol) bool {
	for _, t := range w.Traits {
		if t.Symbol == sym {
			return true
		}
	}
	return false
}

// ScannedWaypoint is a waypoint seen by a sensor sweep.
type ScannedWaypoint struct {
	Symbol       string            `json:"symbol"`
	Kind         WaypointType      `json:"type"`
	SystemSymbol string            `json:"systemSymbol"`
	X            int               `json:"x"`
	Y            int               `json:"y"`
	Orbitals     []WaypointOrbital `json:"orbitals"`
	Faction      *WaypointFaction  `json:"faction,omitempty"`
	Traits       []WaypointTrait   `json:"traits"`
	Chart        *Chart            `json:"chart,omitempty"`
}
