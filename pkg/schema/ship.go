package schema

import "time"

// Ship is a ship owned by the agent.
type Ship struct {
	Symbol       string           `json:"symbol"`
	Registration ShipRegistration `json:"registration"`
	Nav          ShipNav          `json:"nav"`
	Crew         ShipCrew         `json:"crew"`
	Frame        ShipFrame        `json:"frame"`
	Reactor      ShipReactor      `json:"reactor"`
	Engine       ShipEngine       `json:"engine"`
	Modules      []ShipModule     `json:"modules"`
	Mounts       []ShipMount      `json:"mounts"`
	Cargo        ShipCargo        `json:"cargo"`
	Fuel         ShipFuel         `json:"fuel"`
	Cooldown     *Cooldown        `json:"cooldown,omitempty"`
}

// ShipRegistration is the public identity of a ship.
type ShipRegistration struct {
	Name          string   `json:"name"`
	FactionSymbol string   `json:"factionSymbol"`
	Role          ShipRole `json:"role"`
}

// ShipNav is the navigation state of a ship.
type ShipNav struct {
	SystemSymbol   string            `json:"systemSymbol"`
	WaypointSymbol string            `json:"waypointSymbol"`
	Route          ShipNavRoute      `json:"route"`
	Status         ShipNavStatus     `json:"status"`
	FlightMode     ShipNavFlightMode `json:"flightMode"`
}

// ShipNavRoute is the last or current leg a ship flew.
type ShipNavRoute struct {
	Destination   ShipNavRouteWaypoint `json:"destination"`
	Departure     ShipNavRouteWaypoint `json:"departure"`
	DepartureTime time.Time            `json:"departureTime"`
	Arrival       time.Time            `json:"arrival"`
}

// InTransit reports whether the route is still being flown at now.
func (r ShipNavRoute) InTransit(now time.Time) bool {
	return now.Before(r.Arrival)
}

// ShipNavRouteWaypoint is an endpoint of a route.
type ShipNavRouteWaypoint struct {
	Symbol       string       `json:"symbol"`
	Kind         WaypointType `json:"type"`
	SystemSymbol string       `json:"systemSymbol"`
	X            int          `json:"x"`
	Y            int          `json:"y"`
}

// ShipCrew is the crew aboard a ship.
type ShipCrew struct {
	Current  int              `json:"current"`
	Required int              `json:"required"`
	Capacity int              `json:"capacity"`
	Rotation ShipCrewRotation `json:"rotation"`
	Morale   int              `json:"morale"`
	Wages    int              `json:"wages"`
}

// ShipRequirements is what a component needs from the ship it is installed on.
type ShipRequirements struct {
	Power *int `json:"power,omitempty"`
	Crew  *int `json:"crew,omitempty"`
	Slots *int `json:"slots,omitempty"`
}

// ShipCondition is the wear of a component, from 0 (broken) up.
// The API has sent both integers and fractions here, so it is a float.
type ShipCondition = float64

type ShipFrame struct {
	Symbol         ShipFrameSymbol  `json:"symbol"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Condition      *ShipCondition   `json:"condition,omitempty"`
	ModuleSlots    int              `json:"moduleSlots"`
	MountingPoints int              `json:"mountingPoints"`
	FuelCapacity   int              `json:"fuelCapacity"`
	Requirements   ShipRequirements `json:"requirements"`
}

type ShipReactor struct {
	Symbol       ShipReactorSymbol `json:"symbol"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Condition    *ShipCondition    `json:"condition,omitempty"`
	PowerOutput  int               `json:"powerOutput"`
	Requirements ShipRequirements  `json:"requirements"`
}

type ShipEngine struct {
	Symbol       ShipEngineSymbol `json:"symbol"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Condition    *ShipCondition   `json:"condition,omitempty"`
	Speed        int              `json:"speed"`
	Requirements ShipRequirements `json:"requirements"`
}

type ShipModule struct {
	Symbol       ShipModuleSymbol `json:"symbol"`
	Capacity     *int             `json:"capacity,omitempty"`
	Range        *int             `json:"range,omitempty"`
	Name         string           `json:"name"`
	Description  *string          `json:"description,omitempty"`
	Requirements ShipRequirements `json:"requirements"`
}

type ShipMount struct {
	Symbol       ShipMountSymbol  `json:"symbol"`
	Name         string           `json:"name"`
	Description  *string          `json:"description,omitempty"`
	Strength     *int             `json:"strength,omitempty"`
	Deposits     []Deposit        `json:"deposits,omitempty"`
	Requirements ShipRequirements `json:"requirements"`
}

// ShipCargo is the contents of a ship's hold.
type ShipCargo struct {
	Capacity  int             `json:"capacity"`
	Units     int             `json:"units"`
	Inventory []ShipCargoItem `json:"inventory"`
}

// Free returns the unused capacity of the hold.
func (c ShipCargo) Free() int {
	return c.Capacity - c.Units
}

// ShipCargoItem is one stack of goods in the hold.
type ShipCargoItem struct {
	Symbol      TradeSymbol `json:"symbol"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Units       int         `json:"units"`
}

// ShipFuel is the fuel state of a ship. Consumed is only set after a flight.
type ShipFuel struct {
	Current  int                  `json:"current"`
	Capacity int                  `json:"capacity"`
	Consumed *ShipFuelConsumption `json:"consumed,omitempty"`
}

type ShipFuelConsumption struct {
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// ScannedShip is another ship seen by a sensor sweep.
type ScannedShip struct {
	Symbol       string           `json:"symbol"`
	Registration ShipRegistration `json:"registration"`
	Nav          ShipNav          `json:"nav"`
	Frame        Symbolic         `json:"frame"`
	Reactor      Symbolic         `json:"reactor"`
	Engine       Symbolic         `json:"engine"`
	Mounts       []Symbolic       `json:"mounts"`
}
