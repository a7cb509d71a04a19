package mockapi

import (
	"math"
	"net/http"
	"time"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

func ptr[T any](v T) *T { return &v }

func routeWaypoint(wp *schema.Waypoint) schema.ShipNavRouteWaypoint {
	return schema.ShipNavRouteWaypoint{
		Symbol:       wp.Symbol,
		Kind:         wp.Kind,
		SystemSymbol: wp.SystemSymbol,
		X:            wp.X,
		Y:            wp.Y,
	}
}

func dockedAt(wp *schema.Waypoint, now time.Time) schema.ShipNav {
	here := routeWaypoint(wp)
	return schema.ShipNav{
		SystemSymbol:   wp.SystemSymbol,
		WaypointSymbol: wp.Symbol,
		Route: schema.ShipNavRoute{
			Destination:   here,
			Departure:     here,
			DepartureTime: now,
			Arrival:       now,
		},
		Status:     schema.NavStatusDocked,
		FlightMode: schema.FlightModeCruise,
	}
}

func frame(sym schema.ShipFrameSymbol, name string, modules, mounts, fuel int) schema.ShipFrame {
	return schema.ShipFrame{
		Symbol:         sym,
		Name:           name,
		Description:    name + " frame.",
		Condition:      ptr(1.0),
		ModuleSlots:    modules,
		MountingPoints: mounts,
		FuelCapacity:   fuel,
		Requirements:   schema.ShipRequirements{Power: ptr(1), Crew: ptr(0)},
	}
}

func reactor(sym schema.ShipReactorSymbol, name string, power int) schema.ShipReactor {
	return schema.ShipReactor{
		Symbol:       sym,
		Name:         name,
		Description:  name + ".",
		Condition:    ptr(1.0),
		PowerOutput:  power,
		Requirements: schema.ShipRequirements{Crew: ptr(0)},
	}
}

func engine(sym schema.ShipEngineSymbol, name string, speed int) schema.ShipEngine {
	return schema.ShipEngine{
		Symbol:       sym,
		Name:         name,
		Description:  name + ".",
		Condition:    ptr(1.0),
		Speed:        speed,
		Requirements: schema.ShipRequirements{Power: ptr(1), Crew: ptr(0)},
	}
}

func cargoHold(capacity int) schema.ShipModule {
	return schema.ShipModule{
		Symbol:       schema.ModuleCargoHoldI,
		Capacity:     ptr(capacity),
		Name:         "Cargo Hold",
		Description:  ptr("Expands the ship's cargo capacity."),
		Requirements: schema.ShipRequirements{Power: ptr(1), Crew: ptr(0), Slots: ptr(1)},
	}
}

func miningLaser() schema.ShipMount {
	return schema.ShipMount{
		Symbol:       schema.MountMiningLaserI,
		Name:         "Mining Laser I",
		Description:  ptr("A basic mining laser."),
		Strength:     ptr(10),
		Requirements: schema.ShipRequirements{Power: ptr(1), Crew: ptr(0)},
	}
}

func sensorArray() schema.ShipMount {
	return schema.ShipMount{
		Symbol:       schema.MountSensorArrayI,
		Name:         "Sensor Array I",
		Strength:     ptr(1),
		Requirements: schema.ShipRequirements{Power: ptr(1), Crew: ptr(0)},
	}
}

func emptyCargo(capacity int) schema.ShipCargo {
	return schema.ShipCargo{Capacity: capacity, Inventory: []schema.ShipCargoItem{}}
}

// newShip builds the command frigate every agent starts with.
func newShip(sym, faction string, role schema.ShipRole, at *schema.Waypoint, now time.Time) *schema.Ship {
	return &schema.Ship{
		Symbol:       sym,
		Registration: schema.ShipRegistration{Name: sym, FactionSymbol: faction, Role: role},
		Nav:          dockedAt(at, now),
		Crew: schema.ShipCrew{
			Current: 57, Required: 57, Capacity: 80,
			Rotation: schema.CrewRotationStrict, Morale: 100,
		},
		Frame:   frame(schema.FrameFrigate, "Frigate", 8, 5, 400),
		Reactor: reactor(schema.ReactorFissionI, "Fission Reactor I", 31),
		Engine:  engine(schema.EngineIonDriveI, "Ion Drive I", 30),
		Modules: []schema.ShipModule{cargoHold(40)},
		Mounts:  []schema.ShipMount{sensorArray(), miningLaser()},
		Cargo:   emptyCargo(40),
		Fuel:    schema.ShipFuel{Current: 400, Capacity: 400},
	}
}

// newProbe builds a satellite. Probes carry no fuel and fly for free.
func newProbe(sym, faction string, at *schema.Waypoint, now time.Time) *schema.Ship {
	return &schema.Ship{
		Symbol:       sym,
		Registration: schema.ShipRegistration{Name: sym, FactionSymbol: faction, Role: schema.RoleSatellite},
		Nav:          dockedAt(at, now),
		Crew:         schema.ShipCrew{Rotation: schema.CrewRotationRelaxed},
		Frame:        frame(schema.FrameProbe, "Probe", 0, 0, 0),
		Reactor:      reactor(schema.ReactorSolarI, "Solar Reactor I", 3),
		Engine:       engine(schema.EngineImpulseDriveI, "Impulse Drive I", 9),
		Modules:      []schema.ShipModule{},
		Mounts:       []schema.ShipMount{},
		Cargo:        emptyCargo(0),
		Fuel:         schema.ShipFuel{},
	}
}

// newDrone builds a mining drone.
func newDrone(sym, faction string, at *schema.Waypoint, now time.Time) *schema.Ship {
	return &schema.Ship{
		Symbol:       sym,
		Registration: schema.ShipRegistration{Name: sym, FactionSymbol: faction, Role: schema.RoleExcavator},
		Nav:          dockedAt(at, now),
		Crew:         schema.ShipCrew{Rotation: schema.CrewRotationRelaxed, Morale: 100},
		Frame:        frame(schema.FrameDrone, "Drone", 3, 2, 80),
		Reactor:      reactor(schema.ReactorChemicalI, "Chemical Reactor I", 15),
		Engine:       engine(schema.EngineImpulseDriveI, "Impulse Drive I", 9),
		Modules:      []schema.ShipModule{cargoHold(15)},
		Mounts:       []schema.ShipMount{miningLaser()},
		Cargo:        emptyCargo(15),
		Fuel:         schema.ShipFuel{Current: 80, Capacity: 80},
	}
}

// shipBuilders are the ship types shipyards can deliver.
var shipBuilders = map[schema.ShipType]func(sym, faction string, at *schema.Waypoint, now time.Time) *schema.Ship{
	schema.ShipTypeProbe:       newProbe,
	schema.ShipTypeMiningDrone: newDrone,
}

func shipyardListing(kind schema.ShipType, price int) schema.ShipyardShip {
	sh := shipBuilders[kind]("LISTING", "", &schema.Waypoint{}, time.Time{})
	return schema.ShipyardShip{
		Kind:          ptr(kind),
		Name:          sh.Frame.Name,
		Description:   sh.Frame.Description,
		PurchasePrice: price,
		Frame:         sh.Frame,
		Reactor:       sh.Reactor,
		Engine:        sh.Engine,
		Modules:       sh.Modules,
		Mounts:        sh.Mounts,
	}
}

// flightMode holds the travel time multiplier of a flight mode and its fuel
// cost for a distance.
type flightMode struct {
	multiplier float64
	fuel       func(distance int) int
}

var flightModes = map[schema.ShipNavFlightMode]flightMode{
	schema.FlightModeCruise:  {25, func(d int) int { return d }},
	schema.FlightModeDrift:   {250, func(int) int { return 1 }},
	schema.FlightModeBurn:    {12.5, func(d int) int { return 2 * d }},
	schema.FlightModeStealth: {30, func(d int) int { return d }},
}

func distance(a, b *schema.Waypoint) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Round(math.Hypot(dx, dy)))
}

// travelTime is the duration of a flight over distance at the given engine
// speed.
func travelTime(mode flightMode, dist, speed int) time.Duration {
	if speed <= 0 {
		speed = 1
	}
	secs := math.Round(float64(max(1, dist))*(mode.multiplier/float64(speed)) + 15)
	return time.Duration(secs) * time.Second
}

// fuelCost returns the fuel a flight burns. Ships without tanks fly free.
func fuelCost(sh *schema.Ship, mode flightMode, dist int) int {
	if sh.Fuel.Capacity == 0 {
		return 0
	}
	return mode.fuel(dist)
}

// settle brings a ship's state up to now: finished flights land in orbit
// and elapsed cooldowns are cleared.
func settle(sh *schema.Ship, now time.Time) {
	if sh.Nav.Status == schema.NavStatusInTransit && !sh.Nav.Route.InTransit(now) {
		sh.Nav.Status = schema.NavStatusInOrbit
	}
	if sh.Cooldown != nil {
		remaining := int(math.Ceil(sh.Cooldown.Expiration.Sub(now).Seconds()))
		if remaining <= 0 {
			sh.Cooldown = nil
		} else {
			sh.Cooldown.RemainingSeconds = remaining
		}
	}
}

// startCooldown puts the ship's reactor on cooldown and returns a copy.
func startCooldown(sh *schema.Ship, secs int, now time.Time) schema.Cooldown {
	sh.Cooldown = &schema.Cooldown{
		ShipSymbol:       sh.Symbol,
		TotalSeconds:     secs,
		RemainingSeconds: secs,
		Expiration:       now.Add(time.Duration(secs) * time.Second),
	}
	return *sh.Cooldown
}

// addCargo stores units of sym, merging with an existing stack.
func addCargo(cargo *schema.ShipCargo, sym schema.TradeSymbol, name string, units int) {
	cargo.Units += units
	for i := range cargo.Inventory {
		if cargo.Inventory[i].Symbol == sym {
			cargo.Inventory[i].Units += units
			return
		}
	}
	cargo.Inventory = append(cargo.Inventory, schema.ShipCargoItem{
		Symbol: sym, Name: name, Description: name + ".", Units: units,
	})
}

// removeCargo takes units of sym out of the hold.
func removeCargo(cargo *schema.ShipCargo, sym schema.TradeSymbol, units int) error {
	for i := range cargo.Inventory {
		item := &cargo.Inventory[i]
		if item.Symbol != sym {
			continue
		}
		if item.Units < units {
			return rejectf(http.StatusBadRequest, apierr.CodeShipCargoUnitCount, "Ship cargo does not contain %d unit(s) of %s. Ship has %d unit(s).", units, sym, item.Units)
		}
		item.Units -= units
		cargo.Units -= units
		if item.Units == 0 {
			cargo.Inventory = append(cargo.Inventory[:i], cargo.Inventory[i+1:]...)
		}
		return nil
	}
	return rejectf(http.StatusBadRequest, apierr.CodeShipCargoMissing, "Ship cargo does not contain %s.", sym)
}
