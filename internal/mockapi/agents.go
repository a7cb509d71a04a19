package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

const (
	minAgentSymbol = 3
	maxAgentSymbol = 14
)

type registerRequest struct {
	Symbol  string `json:"symbol"`
	Faction string `json:"faction"`
	Email   string `json:"email"`
}

func (s *Server) registerAgentRoutes(rg *gin.RouterGroup) {
	rg.GET("/my/agent", s.myAgent)
	rg.GET("/factions", s.listFactions)
	rg.GET("/factions/:faction", s.getFaction)
}

// register handles POST /register: creates an agent and returns its token
// together with its starting assets.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, reject(http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if n := len(symbol); n < minAgentSymbol || n > maxAgentSymbol {
		s.fail(c, invalid("symbol", "symbol must be between 3 and 14 characters"))
		return
	}
	faction, err := schema.ParseFactionSymbol(strings.ToUpper(req.Faction))
	if err != nil {
		s.fail(c, invalid("faction", "faction must be a known faction symbol"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.world.faction(faction)
	if !ok || f.IsRecruiting == nil || !*f.IsRecruiting {
		s.fail(c, invalid("faction", "faction "+string(faction)+" is not recruiting"))
		return
	}
	if _, exists := s.world.agents[symbol]; exists {
		s.fail(c, reject(http.StatusConflict, apierr.CodeRegisterAgentExists,
			"Cannot register agent. Agent symbol "+symbol+" has already been claimed.", symbol))
		return
	}

	token, err := s.tokens.Issue(symbol)
	if err != nil {
		s.fail(c, err)
		return
	}
	a := s.world.newAgent(symbol, faction, s.now())
	s.data(c, http.StatusCreated, schema.RegisterData{
		Token:    token,
		Agent:    &a.agent,
		Contract: a.contracts[0],
		Faction:  f,
		Ship:     a.ships[0],
	})
}

// myAgent handles GET /my/agent.
func (s *Server) myAgent(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.world.agents[agentSymbol(c)]
	s.data(c, http.StatusOK, a.agent)
}

// listFactions handles GET /factions.
func (s *Server) listFactions(c *gin.Context) {
	page, limit, err := pagination(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, meta := paginate(s.world.factions, page, limit)
	s.page(c, items, meta)
}

// getFaction handles GET /factions/:faction.
func (s *Server) getFaction(c *gin.Context) {
	sym := c.Param("faction")
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.world.faction(schema.FactionSymbol(sym))
	if !ok {
		s.fail(c, notFound("Faction", sym))
		return
	}
	s.data(c, http.StatusOK, f)
}
