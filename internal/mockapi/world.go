package mockapi

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// Starting conditions of a new agent.
const (
	startingCredits = 175000
	headquarters    = "X1-DF55-20250Z"
	fuelPerUnit     = 100
)

// world is the in-memory game state. Every field is guarded by Server.mu.
type world struct {
	systems   []*schema.System
	waypoints map[string]*schema.Waypoint
	markets   map[string]*schema.Market
	shipyards map[string]*schema.Shipyard
	gates     map[string]*schema.JumpGate
	factions  []*schema.Faction
	agents    map[string]*agentState
}

// agentState is everything owned by one agent.
type agentState struct {
	agent     schema.Agent
	ships     []*schema.Ship
	contracts []*schema.Contract
	// extractions counts extract calls, used to rotate yields.
	extractions int
}

func (a *agentState) ship(sym string) (*schema.Ship, error) {
	for _, sh := range a.ships {
		if sh.Symbol == sym {
			return sh, nil
		}
	}
	return nil, notFound("Ship", sym)
}

func (a *agentState) contract(id string) (*schema.Contract, error) {
	for _, ct := range a.contracts {
		if ct.ID == id {
			return ct, nil
		}
	}
	return nil, notFound("Contract", id)
}

func (a *agentState) syncShipCount() {
	n := len(a.ships)
	a.agent.ShipCount = &n
}

func trait(sym schema.WaypointTraitSymbol, name, desc string) schema.WaypointTrait {
	return schema.WaypointTrait{Symbol: sym, Name: name, Description: desc}
}

func good(sym schema.TradeSymbol, name string) schema.TradeGood {
	return schema.TradeGood{Symbol: sym, Name: name, Description: name + "."}
}

// newWorld seeds the starting system, its neighbour and the factions.
func newWorld() *world {
	w := &world{
		waypoints: make(map[string]*schema.Waypoint),
		markets:   make(map[string]*schema.Market),
		shipyards: make(map[string]*schema.Shipyard),
		gates:     make(map[string]*schema.JumpGate),
		agents:    make(map[string]*agentState),
	}

	marketplace := trait(schema.TraitMarketplace, "Marketplace", "A thriving center of commerce.")
	shipyard := trait(schema.TraitShipyard, "Shipyard", "A bustling hub for ship construction.")
	metals := trait(schema.TraitCommonMetalDeposits, "Common Metal Deposits", "Extractable iron, copper and aluminum.")

	cosmic := &schema.WaypointFaction{Symbol: string(schema.FactionCosmic)}
	w.addSystem(&schema.System{
		Symbol:       "X1-DF55",
		SectorSymbol: "X1",
		Kind:         schema.SystemTypeRedStar,
		X:            -2,
		Y:            12,
		Factions:     []schema.SystemFaction{{Symbol: string(schema.FactionCosmic)}},
	},
		&schema.Waypoint{
			Symbol: headquarters, Kind: schema.WaypointTypePlanet, X: 10, Y: 5,
			Orbitals: []schema.WaypointOrbital{{Symbol: "X1-DF55-69207D"}},
			Faction:  cosmic,
			Traits:   []schema.WaypointTrait{marketplace, shipyard},
		},
		&schema.Waypoint{
			Symbol: "X1-DF55-69207D", Kind: schema.WaypointTypeMoon, X: 10, Y: 5,
			Faction: cosmic,
			Traits:  []schema.WaypointTrait{marketplace},
		},
		&schema.Waypoint{
			Symbol: "X1-DF55-17335A", Kind: schema.WaypointTypeAsteroidField, X: -30, Y: 41,
			Traits: []schema.WaypointTrait{metals},
		},
		&schema.Waypoint{
			Symbol: "X1-DF55-91710F", Kind: schema.WaypointTypeJumpGate, X: 57, Y: -80,
			Faction: cosmic,
		},
	)
	w.addSystem(&schema.System{
		Symbol:       "X1-KS52",
		SectorSymbol: "X1",
		Kind:         schema.SystemTypeOrangeStar,
		X:            310,
		Y:            -152,
	},
		&schema.Waypoint{
			Symbol: "X1-KS52-51225B", Kind: schema.WaypointTypePlanet, X: 4, Y: -12,
			Traits: []schema.WaypointTrait{marketplace},
		},
		&schema.Waypoint{
			Symbol: "X1-KS52-23717D", Kind: schema.WaypointTypeJumpGate, X: -44, Y: 9,
		},
	)

	fuel := good(schema.TradeFuel, "Fuel")
	ironOre := good(schema.TradeIronOre, "Iron Ore")
	copperOre := good(schema.TradeCopperOre, "Copper Ore")
	aluminumOre := good(schema.TradeAluminumOre, "Aluminum Ore")
	quartz := good(schema.TradeQuartzSand, "Quartz Sand")

	w.markets[headquarters] = &schema.Market{
		Symbol:   headquarters,
		Exports:  []schema.TradeGood{fuel},
		Imports:  []schema.TradeGood{ironOre, copperOre, aluminumOre},
		Exchange: []schema.TradeGood{quartz},
		TradeGoods: []schema.MarketTradeGood{
			{Symbol: schema.TradeFuel, TradeVolume: 100, Supply: schema.SupplyAbundant, PurchasePrice: 72, SellPrice: 68},
			{Symbol: schema.TradeIronOre, TradeVolume: 60, Supply: schema.SupplyScarce, PurchasePrice: 48, SellPrice: 44},
			{Symbol: schema.TradeCopperOre, TradeVolume: 60, Supply: schema.SupplyLimited, PurchasePrice: 61, SellPrice: 56},
			{Symbol: schema.TradeAluminumOre, TradeVolume: 60, Supply: schema.SupplyModerate, PurchasePrice: 55, SellPrice: 50},
			{Symbol: schema.TradeQuartzSand, TradeVolume: 40, Supply: schema.SupplyHigh, PurchasePrice: 21, SellPrice: 18},
		},
		Transactions: []schema.MarketTransaction{},
	}
	w.markets["X1-DF55-69207D"] = &schema.Market{
		Symbol:   "X1-DF55-69207D",
		Exports:  []schema.TradeGood{},
		Imports:  []schema.TradeGood{quartz},
		Exchange: []schema.TradeGood{fuel},
		TradeGoods: []schema.MarketTradeGood{
			{Symbol: schema.TradeFuel, TradeVolume: 100, Supply: schema.SupplyModerate, PurchasePrice: 80, SellPrice: 75},
			{Symbol: schema.TradeQuartzSand, TradeVolume: 40, Supply: schema.SupplyScarce, PurchasePrice: 30, SellPrice: 27},
		},
		Transactions: []schema.MarketTransaction{},
	}
	w.markets["X1-KS52-51225B"] = &schema.Market{
		Symbol:       "X1-KS52-51225B",
		Exports:      []schema.TradeGood{ironOre},
		Imports:      []schema.TradeGood{fuel},
		Exchange:     []schema.TradeGood{},
		TradeGoods:   []schema.MarketTradeGood{{Symbol: schema.TradeIronOre, TradeVolume: 80, Supply: schema.SupplyHigh, PurchasePrice: 39, SellPrice: 35}},
		Transactions: []schema.MarketTransaction{},
	}

	w.shipyards[headquarters] = &schema.Shipyard{
		Symbol: headquarters,
		ShipTypes: []schema.ShipTypeObject{
			{Kind: schema.ShipTypeProbe},
			{Kind: schema.ShipTypeMiningDrone},
		},
		Transactions: []schema.ShipyardTransaction{},
		Ships:        []schema.ShipyardShip{shipyardListing(schema.ShipTypeProbe, 24000), shipyardListing(schema.ShipTypeMiningDrone, 46000)},
	}

	cosmicSys := string(schema.FactionCosmic)
	w.gates["X1-DF55-91710F"] = &schema.JumpGate{
		JumpRange:     2000,
		FactionSymbol: &cosmicSys,
		ConnectedSystems: []schema.ConnectedSystem{
			{Symbol: "X1-KS52", SectorSymbol: "X1", Kind: schema.SystemTypeOrangeStar, X: 310, Y: -152, Distance: 344},
		},
	}
	w.gates["X1-KS52-23717D"] = &schema.JumpGate{
		JumpRange: 2000,
		ConnectedSystems: []schema.ConnectedSystem{
			{Symbol: "X1-DF55", SectorSymbol: "X1", Kind: schema.SystemTypeRedStar, FactionSymbol: &cosmicSys, X: -2, Y: 12, Distance: 344},
		},
	}

	recruiting := true
	w.factions = []*schema.Faction{
		{
			Symbol:       schema.FactionCosmic,
			Name:         "Cosmic Engineers",
			Description:  "Pioneers of interstellar engineering.",
			Headquarters: "X1-DF55",
			Traits: []schema.FactionTrait{
				{Symbol: schema.FactionTraitInnovative, Name: "Innovative", Description: "Willing to try new ideas."},
			},
			IsRecruiting: &recruiting,
		},
		{
			Symbol:       schema.FactionVoid,
			Name:         "Voidfarers",
			Description:  "Drifters of the spaces between systems.",
			Headquarters: "X1-KS52",
			Traits:       []schema.FactionTrait{},
			IsRecruiting: &recruiting,
		},
	}
	return w
}

// addSystem registers sys and its waypoints, filling the summaries kept on
// the system.
func (w *world) addSystem(sys *schema.System, wps ...*schema.Waypoint) {
	sys.Waypoints = make([]schema.SystemWaypoint, 0, len(wps))
	if sys.Factions == nil {
		sys.Factions = []schema.SystemFaction{}
	}
	for _, wp := range wps {
		wp.SystemSymbol = sys.Symbol
		if wp.Orbitals == nil {
			wp.Orbitals = []schema.WaypointOrbital{}
		}
		if wp.Traits == nil {
			wp.Traits = []schema.WaypointTrait{}
		}
		w.waypoints[wp.Symbol] = wp
		sys.Waypoints = append(sys.Waypoints, schema.SystemWaypoint{
			Symbol: wp.Symbol, Kind: wp.Kind, X: wp.X, Y: wp.Y,
		})
	}
	w.systems = append(w.systems, sys)
}

func (w *world) system(sym string) (*schema.System, error) {
	for _, s := range w.systems {
		if s.Symbol == sym {
			return s, nil
		}
	}
	return nil, notFound("System", sym)
}

func (w *world) waypoint(sym string) (*schema.Waypoint, error) {
	wp, ok := w.waypoints[sym]
	if !ok {
		return nil, notFound("Waypoint", sym)
	}
	return wp, nil
}

// systemWaypoints returns the waypoints of a system in listing order.
func (w *world) systemWaypoints(sys *schema.System) []*schema.Waypoint {
	out := make([]*schema.Waypoint, 0, len(sys.Waypoints))
	for _, sw := range sys.Waypoints {
		out = append(out, w.waypoints[sw.Symbol])
	}
	return out
}

func (w *world) faction(sym schema.FactionSymbol) (*schema.Faction, bool) {
	for _, f := range w.factions {
		if f.Symbol == sym {
			return f, true
		}
	}
	return nil, false
}

// newAgent creates an agent with a command frigate, a probe and an open
// procurement contract.
func (w *world) newAgent(symbol string, faction schema.FactionSymbol, now time.Time) *agentState {
	a := &agentState{
		agent: schema.Agent{
			AccountID:       uuid.NewString(),
			Symbol:          symbol,
			Headquarters:    headquarters,
			Credits:         startingCredits,
			StartingFaction: &faction,
		},
	}
	hq := w.waypoints[headquarters]
	a.ships = []*schema.Ship{
		newShip(fmt.Sprintf("%s-1", symbol), string(faction), schema.RoleCommand, hq, now),
		newProbe(fmt.Sprintf("%s-2", symbol), string(faction), hq, now),
	}
	a.syncShipCount()

	accept := now.Add(24 * time.Hour)
	a.contracts = []*schema.Contract{{
		ID:            uuid.NewString(),
		FactionSymbol: string(faction),
		Kind:          schema.ContractTypeProcurement,
		Terms: schema.ContractTerms{
			Deadline: now.Add(7 * 24 * time.Hour),
			Payment:  schema.ContractPayment{OnAccepted: 8000, OnFulfilled: 40000},
			Deliver: []schema.ContractDeliverGood{{
				TradeSymbol:       string(schema.TradeIronOre),
				DestinationSymbol: headquarters,
				UnitsRequired:     50,
			}},
		},
		Expiration:       accept,
		DeadlineToAccept: &accept,
	}}
	w.agents[symbol] = a
	return a
}

// sortedAgents returns the agents ordered by symbol.
func (w *world) sortedAgents() []*agentState {
	out := make([]*agentState, 0, len(w.agents))
	for _, a := range w.agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].agent.Symbol < out[j].agent.Symbol })
	return out
}

var goodNames = map[schema.TradeSymbol]string{
	schema.TradeFuel:        "Fuel",
	schema.TradeIronOre:     "Iron Ore",
	schema.TradeCopperOre:   "Copper Ore",
	schema.TradeAluminumOre: "Aluminum Ore",
	schema.TradeQuartzSand:  "Quartz Sand",
}

// goodName returns the display name of a trade good.
func goodName(sym schema.TradeSymbol) string {
	if n, ok := goodNames[sym]; ok {
		return n
	}
	return string(sym)
}
