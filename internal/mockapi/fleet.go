package mockapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

const (
	extractCooldown = 70
	maxTransactions = 20
)

// extractable is the deposit rotation of asteroid fields without a survey.
var extractable = []schema.TradeSymbol{
	schema.TradeIronOre,
	schema.TradeCopperOre,
	schema.TradeIronOre,
	schema.TradeAluminumOre,
	schema.TradeQuartzSand,
}

// shipFunc performs an action on one of the caller's ships and returns the
// reply status and payload. It runs with the game lock held, after the
// ship has been settled to now.
type shipFunc func(c *gin.Context, now time.Time, a *agentState, sh *schema.Ship) (int, any, error)

func (s *Server) registerFleetRoutes(rg *gin.RouterGroup) {
	ships := rg.Group("/my/ships")
	{
		ships.GET("", s.listShips)
		ships.POST("", s.purchaseShip)
		ships.GET("/:ship", s.shipAction(getShip))
		ships.GET("/:ship/cargo", s.shipAction(getCargo))
		ships.GET("/:ship/nav", s.shipAction(getNav))
		ships.PATCH("/:ship/nav", s.shipAction(patchNav))
		ships.GET("/:ship/cooldown", s.shipCooldown)
		ships.POST("/:ship/orbit", s.shipAction(orbitShip))
		ships.POST("/:ship/dock", s.shipAction(dockShip))
		ships.POST("/:ship/navigate", s.shipAction(s.navigateShip))
		ships.POST("/:ship/refuel", s.shipAction(s.refuelShip))
		ships.POST("/:ship/extract", s.shipAction(s.extract))
		ships.POST("/:ship/sell", s.shipAction(s.trade(schema.TransactionSell)))
		ships.POST("/:ship/purchase", s.shipAction(s.trade(schema.TransactionPurchase)))
		ships.POST("/:ship/jettison", s.shipAction(jettison))
	}
}

// shipAction adapts a shipFunc into a handler.
func (s *Server) shipAction(fn shipFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		a := s.world.agents[agentSymbol(c)]
		sh, err := a.ship(c.Param("ship"))
		if err != nil {
			s.fail(c, err)
			return
		}
		now := s.now()
		settle(sh, now)

		status, v, err := fn(c, now, a, sh)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.data(c, status, v)
	}
}

// listShips handles GET /my/ships.
func (s *Server) listShips(c *gin.Context) {
	page, limit, err := pagination(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.world.agents[agentSymbol(c)]
	now := s.now()
	for _, sh := range a.ships {
		settle(sh, now)
	}
	items, meta := paginate(a.ships, page, limit)
	s.page(c, items, meta)
}

// shipCooldown handles GET /my/ships/:ship/cooldown. A ship that is not
// cooling down gets 204 with no body.
func (s *Server) shipCooldown(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.world.agents[agentSymbol(c)]
	sh, err := a.ship(c.Param("ship"))
	if err != nil {
		s.fail(c, err)
		return
	}
	settle(sh, s.now())
	if sh.Cooldown == nil {
		c.Status(http.StatusNoContent)
		return
	}
	s.data(c, http.StatusOK, sh.Cooldown)
}

func getShip(_ *gin.Context, _ time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	return http.StatusOK, sh, nil
}

func getCargo(_ *gin.Context, _ time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	return http.StatusOK, sh.Cargo, nil
}

func getNav(_ *gin.Context, _ time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	return http.StatusOK, sh.Nav, nil
}

func patchNav(c *gin.Context, _ time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	var req struct {
		FlightMode string `json:"flightMode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, nil, reject(http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
	}
	mode, err := schema.ParseShipNavFlightMode(req.FlightMode)
	if err != nil {
		return 0, nil, invalid("flightMode", "flightMode must be one of DRIFT, STEALTH, CRUISE, BURN")
	}
	sh.Nav.FlightMode = mode
	return http.StatusOK, sh.Nav, nil
}

// inTransit is the rejection for acting on a ship that has not arrived.
func inTransit(sh *schema.Ship, now time.Time) error {
	route := sh.Nav.Route
	secs := int(route.Arrival.Sub(now).Seconds())
	e := apierr.New(apierr.CodeShipInTransit, fmt.Sprintf(
		"Ship is currently in-transit from %s to %s and arrives in %d seconds.",
		route.Departure.Symbol, route.Destination.Symbol, secs))
	e.Data = &apierr.Detail{Raw: mustJSON(map[string]any{
		"departureSymbol":   route.Departure.Symbol,
		"destinationSymbol": route.Destination.Symbol,
		"arrival":           route.Arrival,
		"departureTime":     route.DepartureTime,
		"secondsToArrival":  secs,
	})}
	return &rejection{status: http.StatusBadRequest, err: e}
}

func notInOrbit(sh *schema.Ship) error {
	return rejectf(http.StatusBadRequest, apierr.CodeShipNotInOrbit,
		"Ship action requires ship to be in orbit. Ship %s is currently %s.", sh.Symbol, sh.Nav.Status)
}

func notDocked(sh *schema.Ship) error {
	return rejectf(http.StatusBadRequest, codeShipNotDocked,
		"Ship action requires ship to be docked. Ship %s is currently %s.", sh.Symbol, sh.Nav.Status)
}

func orbitShip(_ *gin.Context, now time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	if sh.Nav.Status == schema.NavStatusInTransit {
		return 0, nil, inTransit(sh, now)
	}
	sh.Nav.Status = schema.NavStatusInOrbit
	return http.StatusOK, schema.NavData{Nav: sh.Nav}, nil
}

func dockShip(_ *gin.Context, now time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	if sh.Nav.Status == schema.NavStatusInTransit {
		return 0, nil, inTransit(sh, now)
	}
	sh.Nav.Status = schema.NavStatusDocked
	return http.StatusOK, schema.NavData{Nav: sh.Nav}, nil
}

func (s *Server) navigateShip(c *gin.Context, now time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	var req struct {
		WaypointSymbol string `json:"waypointSymbol"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, nil, reject(http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
	}
	switch sh.Nav.Status {
	case schema.NavStatusInTransit:
		return 0, nil, inTransit(sh, now)
	case schema.NavStatusDocked:
		return 0, nil, notInOrbit(sh)
	}

	dest, err := s.world.waypoint(req.WaypointSymbol)
	if err != nil {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeNavigateInvalidDestination,
			"Navigation destination %s is not a valid waypoint.", req.WaypointSymbol)
	}
	if dest.SystemSymbol != sh.Nav.SystemSymbol {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeNavigateOutsideSystem,
			"Navigation destination %s is outside of system %s.", dest.Symbol, sh.Nav.SystemSymbol)
	}
	if dest.Symbol == sh.Nav.WaypointSymbol {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeNavigateSameDestination,
			"Ship %s is already at %s.", sh.Symbol, dest.Symbol)
	}

	origin := s.world.waypoints[sh.Nav.WaypointSymbol]
	mode := flightModes[sh.Nav.FlightMode]
	dist := distance(origin, dest)
	cost := fuelCost(sh, mode, dist)
	if cost > sh.Fuel.Current {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeNavigateInsufficientFuel,
			"Navigate request failed. Ship %s requires %d more fuel for navigation.", sh.Symbol, cost-sh.Fuel.Current)
	}

	if cost > 0 {
		sh.Fuel.Current -= cost
		sh.Fuel.Consumed = &schema.ShipFuelConsumption{Amount: cost, Timestamp: now}
	}
	sh.Nav.WaypointSymbol = dest.Symbol
	sh.Nav.Status = schema.NavStatusInTransit
	sh.Nav.Route = schema.ShipNavRoute{
		Departure:     routeWaypoint(origin),
		Destination:   routeWaypoint(dest),
		DepartureTime: now,
		Arrival:       now.Add(travelTime(mode, dist, sh.Engine.Speed)),
	}
	return http.StatusOK, schema.NavigateData{Fuel: sh.Fuel, Nav: sh.Nav}, nil
}

func (s *Server) refuelShip(_ *gin.Context, now time.Time, a *agentState, sh *schema.Ship) (int, any, error) {
	if sh.Nav.Status != schema.NavStatusDocked {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipRefuelDocked,
			"Ship %s must be docked to refuel.", sh.Symbol)
	}
	market, ok := s.world.markets[sh.Nav.WaypointSymbol]
	var price schema.MarketTradeGood
	if ok {
		price, ok = market.Good(schema.TradeFuel)
	}
	if !ok {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipRefuelInvalidWaypoint,
			"Waypoint %s does not sell fuel.", sh.Nav.WaypointSymbol)
	}

	missing := sh.Fuel.Capacity - sh.Fuel.Current
	units := (missing + fuelPerUnit - 1) / fuelPerUnit
	total := units * price.PurchasePrice
	if int64(total) > a.agent.Credits {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeMarketTradeInsufficientCredits,
			"Agent has insufficient funds. Required %d credits, available %d.", total, a.agent.Credits)
	}
	a.agent.Credits -= int64(total)
	sh.Fuel.Current = sh.Fuel.Capacity

	tx := recordTransaction(market, schema.MarketTransaction{
		WaypointSymbol: market.Symbol,
		ShipSymbol:     sh.Symbol,
		TradeSymbol:    string(schema.TradeFuel),
		Kind:           schema.TransactionPurchase,
		Units:          units,
		PricePerUnit:   price.PurchasePrice,
		TotalPrice:     total,
		Timestamp:      now,
	})
	return http.StatusOK, schema.RefuelData{Agent: a.agent, Fuel: sh.Fuel, Transaction: &tx}, nil
}

// recordTransaction appends tx to the market's recent transactions.
func recordTransaction(m *schema.Market, tx schema.MarketTransaction) schema.MarketTransaction {
	m.Transactions = append(m.Transactions, tx)
	if n := len(m.Transactions); n > maxTransactions {
		m.Transactions = append([]schema.MarketTransaction{}, m.Transactions[n-maxTransactions:]...)
	}
	return tx
}

func (s *Server) extract(c *gin.Context, now time.Time, a *agentState, sh *schema.Ship) (int, any, error) {
	var req struct {
		Survey *schema.Survey `json:"survey"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return 0, nil, reject(http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		}
	}
	switch sh.Nav.Status {
	case schema.NavStatusInTransit:
		return 0, nil, inTransit(sh, now)
	case schema.NavStatusDocked:
		return 0, nil, notInOrbit(sh)
	}
	if sh.Cooldown != nil {
		e := apierr.New(apierr.CodeCooldownConflict, fmt.Sprintf(
			"Ship action is still on cooldown for %d second(s).", sh.Cooldown.RemainingSeconds))
		e.Data = &apierr.Detail{Raw: mustJSON(map[string]any{"cooldown": sh.Cooldown})}
		return 0, nil, &rejection{status: http.StatusConflict, err: e}
	}

	wp := s.world.waypoints[sh.Nav.WaypointSymbol]
	if wp.Kind != schema.WaypointTypeAsteroidField {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipExtractInvalidWaypoint,
			"Waypoint %s is not an asteroid field.", wp.Symbol)
	}
	strength := 0
	for _, m := range sh.Mounts {
		if m.Symbol == schema.MountMiningLaserI && m.Strength != nil {
			strength += *m.Strength
		}
	}
	if strength == 0 {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipMissingMounts,
			"Ship %s has no mining lasers.", sh.Symbol)
	}
	if sh.Cargo.Free() <= 0 {
		return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipCargoFull,
			"Ship %s cargo hold is full.", sh.Symbol)
	}

	yields := extractable
	if req.Survey != nil {
		if req.Survey.Symbol != wp.Symbol {
			return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipSurveyVerification,
				"Survey %s is not for waypoint %s.", req.Survey.Signature, wp.Symbol)
		}
		if req.Survey.Expiration != nil && now.After(*req.Survey.Expiration) {
			return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipSurveyExpiration,
				"Survey %s has expired.", req.Survey.Signature)
		}
		yields = nil
		for _, d := range req.Survey.Deposits {
			if sym, err := schema.ParseTradeSymbol(d.Symbol); err == nil {
				yields = append(yields, sym)
			}
		}
		if len(yields) == 0 {
			return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipSurveyExhausted,
				"Survey %s has no deposits left.", req.Survey.Signature)
		}
	}

	sym := yields[a.extractions%len(yields)]
	a.extractions++
	units := min(strength, sh.Cargo.Free())
	addCargo(&sh.Cargo, sym, goodName(sym), units)
	cd := startCooldown(sh, extractCooldown, now)

	return http.StatusCreated, schema.ExtractData{
		Cooldown: cd,
		Extraction: schema.Extraction{
			ShipSymbol: sh.Symbol,
			Yield:      schema.ExtractionYield{Symbol: sym, Units: units},
		},
		Cargo: sh.Cargo,
	}, nil
}

type cargoRequest struct {
	Symbol string `json:"symbol"`
	Units  int    `json:"units"`
}

func bindCargo(c *gin.Context) (schema.TradeSymbol, int, error) {
	var req cargoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", 0, reject(http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
	}
	sym, err := schema.ParseTradeSymbol(req.Symbol)
	if err != nil {
		return "", 0, invalid("symbol", "symbol must be a trade symbol")
	}
	if req.Units < 1 {
		return "", 0, invalid("units", "units must be a positive integer")
	}
	return sym, req.Units, nil
}

// trade returns the shipFunc for buying or selling at the local market.
func (s *Server) trade(kind schema.MarketTransactionType) shipFunc {
	return func(c *gin.Context, now time.Time, a *agentState, sh *schema.Ship) (int, any, error) {
		sym, units, err := bindCargo(c)
		if err != nil {
			return 0, nil, err
		}
		if sh.Nav.Status != schema.NavStatusDocked {
			return 0, nil, notDocked(sh)
		}
		market, ok := s.world.markets[sh.Nav.WaypointSymbol]
		if !ok {
			return 0, nil, rejectf(http.StatusNotFound, apierr.CodeMarketNotFound,
				"Market not found at waypoint %s.", sh.Nav.WaypointSymbol)
		}
		price, listed := market.Good(sym)
		if !listed && kind == schema.TransactionSell {
			return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeMarketTradeNotSold,
				"Market %s does not buy %s.", market.Symbol, sym)
		}
		if !listed {
			return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeMarketTradeNoPurchase,
				"Market %s does not sell %s.", market.Symbol, sym)
		}
		if units > price.TradeVolume {
			return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeMarketTradeUnitLimit,
				"Market %s trades at most %d unit(s) of %s per transaction.", market.Symbol, price.TradeVolume, sym)
		}

		unitPrice := price.SellPrice
		if kind == schema.TransactionPurchase {
			unitPrice = price.PurchasePrice
		}
		total := units * unitPrice

		switch kind {
		case schema.TransactionSell:
			if err := removeCargo(&sh.Cargo, sym, units); err != nil {
				return 0, nil, err
			}
			a.agent.Credits += int64(total)
		default:
			if int64(total) > a.agent.Credits {
				return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeMarketTradeInsufficientCredits,
					"Agent has insufficient funds. Required %d credits, available %d.", total, a.agent.Credits)
			}
			if units > sh.Cargo.Free() {
				return 0, nil, rejectf(http.StatusBadRequest, apierr.CodeShipCargoExceedsLimit,
					"Ship %s has %d unit(s) of cargo space left.", sh.Symbol, sh.Cargo.Free())
			}
			a.agent.Credits -= int64(total)
			addCargo(&sh.Cargo, sym, goodName(sym), units)
		}

		tx := recordTransaction(market, schema.MarketTransaction{
			WaypointSymbol: market.Symbol,
			ShipSymbol:     sh.Symbol,
			TradeSymbol:    string(sym),
			Kind:           kind,
			Units:          units,
			PricePerUnit:   unitPrice,
			TotalPrice:     total,
			Timestamp:      now,
		})
		return http.StatusCreated, schema.TradeData{Agent: a.agent, Cargo: sh.Cargo, Transaction: tx}, nil
	}
}

func jettison(c *gin.Context, _ time.Time, _ *agentState, sh *schema.Ship) (int, any, error) {
	sym, units, err := bindCargo(c)
	if err != nil {
		return 0, nil, err
	}
	if err := removeCargo(&sh.Cargo, sym, units); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, schema.CargoData{Cargo: sh.Cargo}, nil
}

// purchaseShip handles POST /my/ships.
func (s *Server) purchaseShip(c *gin.Context) {
	var req struct {
		ShipType       string `json:"shipType"`
		WaypointSymbol string `json:"waypointSymbol"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, reject(http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	kind, err := schema.ParseShipType(req.ShipType)
	if err != nil {
		s.fail(c, invalid("shipType", "shipType must be a ship type"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.world.agents[agentSymbol(c)]
	yard, ok := s.world.shipyards[req.WaypointSymbol]
	if !ok {
		s.fail(c, notFound("Shipyard", req.WaypointSymbol))
		return
	}
	now := s.now()
	if !a.presentAt(yard.Symbol, now) {
		s.fail(c, rejectf(http.StatusBadRequest, apierr.CodeWaypointNoAccess,
			"Agent %s has no ship present at %s.", a.agent.Symbol, yard.Symbol))
		return
	}
	var listing *schema.ShipyardShip
	for i := range yard.Ships {
		if yard.Ships[i].Kind != nil && *yard.Ships[i].Kind == kind {
			listing = &yard.Ships[i]
		}
	}
	if listing == nil {
		s.fail(c, invalid("shipType", fmt.Sprintf("shipyard %s does not sell %s", yard.Symbol, kind)))
		return
	}
	if int64(listing.PurchasePrice) > a.agent.Credits {
		s.fail(c, rejectf(http.StatusBadRequest, apierr.CodePurchaseShipCredits,
			"Failed to purchase ship. Agent has insufficient funds: %d credits, price %d.", a.agent.Credits, listing.PurchasePrice))
		return
	}

	a.agent.Credits -= int64(listing.PurchasePrice)
	sym := fmt.Sprintf("%s-%d", a.agent.Symbol, len(a.ships)+1)
	sh := shipBuilders[kind](sym, a.agent.Symbol, s.world.waypoints[yard.Symbol], now)
	if a.agent.StartingFaction != nil {
		sh.Registration.FactionSymbol = string(*a.agent.StartingFaction)
	}
	a.ships = append(a.ships, sh)
	a.syncShipCount()

	tx := schema.ShipyardTransaction{
		WaypointSymbol: yard.Symbol,
		ShipSymbol:     sym,
		Price:          listing.PurchasePrice,
		AgentSymbol:    a.agent.Symbol,
		Timestamp:      now,
	}
	yard.Transactions = append(yard.Transactions, tx)
	s.data(c, http.StatusCreated, schema.PurchaseShipData{Agent: a.agent, Ship: *sh, Transaction: tx})
}

// presentAt reports whether one of the agent's ships is at the waypoint
// and not in flight.
func (a *agentState) presentAt(waypoint string, now time.Time) bool {
	for _, sh := range a.ships {
		settle(sh, now)
		if sh.Nav.WaypointSymbol == waypoint && sh.Nav.Status != schema.NavStatusInTransit {
			return true
		}
	}
	return false
}
