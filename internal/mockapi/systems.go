package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

func (s *Server) registerSystemRoutes(rg *gin.RouterGroup) {
	systems := rg.Group("/systems")
	{
		systems.GET("", s.listSystems)
		systems.GET("/:system", s.getSystem)
		systems.GET("/:system/waypoints", s.listWaypoints)
		systems.GET("/:system/waypoints/:waypoint", s.getWaypoint)
		systems.GET("/:system/waypoints/:waypoint/market", s.getMarket)
		systems.GET("/:system/waypoints/:waypoint/shipyard", s.getShipyard)
		systems.GET("/:system/waypoints/:waypoint/jump-gate", s.getJumpGate)
	}
}

// listSystems handles GET /systems.
func (s *Server) listSystems(c *gin.Context) {
	page, limit, err := pagination(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, meta := paginate(s.world.systems, page, limit)
	s.page(c, items, meta)
}

// getSystem handles GET /systems/:system.
func (s *Server) getSystem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sys, err := s.world.system(c.Param("system"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.data(c, http.StatusOK, sys)
}

// listWaypoints handles GET /systems/:system/waypoints. ?type= narrows the
// listing to one waypoint type.
func (s *Server) listWaypoints(c *gin.Context) {
	page, limit, err := pagination(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	var kind schema.WaypointType
	if v := c.Query("type"); v != "" {
		if kind, err = schema.ParseWaypointType(v); err != nil {
			s.fail(c, invalid("type", "type must be a waypoint type"))
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sys, err := s.world.system(c.Param("system"))
	if err != nil {
		s.fail(c, err)
		return
	}
	wps := s.world.systemWaypoints(sys)
	if kind != "" {
		filtered := wps[:0:0]
		for _, wp := range wps {
			if wp.Kind == kind {
				filtered = append(filtered, wp)
			}
		}
		wps = filtered
	}
	items, meta := paginate(wps, page, limit)
	s.page(c, items, meta)
}

// lookupWaypoint resolves the :system and :waypoint parameters. The
// waypoint must belong to the system in the path.
func (s *Server) lookupWaypoint(c *gin.Context) (*schema.Waypoint, error) {
	wp, err := s.world.waypoint(c.Param("waypoint"))
	if err != nil {
		return nil, err
	}
	if wp.SystemSymbol != c.Param("system") {
		return nil, notFound("Waypoint", wp.Symbol)
	}
	return wp, nil
}

// getWaypoint handles GET /systems/:system/waypoints/:waypoint.
func (s *Server) getWaypoint(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, err := s.lookupWaypoint(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.data(c, http.StatusOK, wp)
}

// getMarket handles GET .../market. Prices and transactions are only shown
// while one of the caller's ships is present.
func (s *Server) getMarket(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, err := s.lookupWaypoint(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	m, ok := s.world.markets[wp.Symbol]
	if !ok {
		s.fail(c, rejectf(http.StatusNotFound, apierr.CodeMarketNotFound,
			"Market not found at waypoint %s.", wp.Symbol))
		return
	}
	view := *m
	if !s.world.agents[agentSymbol(c)].presentAt(wp.Symbol, s.now()) {
		view.TradeGoods = nil
		view.Transactions = nil
	}
	s.data(c, http.StatusOK, view)
}

// getShipyard handles GET .../shipyard, hiding listings and transactions
// from agents without a ship present.
func (s *Server) getShipyard(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, err := s.lookupWaypoint(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	y, ok := s.world.shipyards[wp.Symbol]
	if !ok {
		s.fail(c, notFound("Shipyard", wp.Symbol))
		return
	}
	view := *y
	if !s.world.agents[agentSymbol(c)].presentAt(wp.Symbol, s.now()) {
		view.Ships = nil
		view.Transactions = nil
	}
	s.data(c, http.StatusOK, view)
}

// getJumpGate handles GET .../jump-gate.
func (s *Server) getJumpGate(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, err := s.lookupWaypoint(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	g, ok := s.world.gates[wp.Symbol]
	if !ok {
		s.fail(c, notFound("Jump gate", wp.Symbol))
		return
	}
	s.data(c, http.StatusOK, g)
}
