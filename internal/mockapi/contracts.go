package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// contractFunc acts on one of the caller's contracts with the game lock
// held.
type contractFunc func(c *gin.Context, now time.Time, a *agentState, ct *schema.Contract) (any, error)

func (s *Server) registerContractRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/my/contracts")
	{
		contracts.GET("", s.listContracts)
		contracts.GET("/:contract", s.contractAction(getContract))
		contracts.POST("/:contract/accept", s.contractAction(acceptContract))
		contracts.POST("/:contract/deliver", s.contractAction(deliverContract))
		contracts.POST("/:contract/fulfill", s.contractAction(fulfillContract))
	}
}

func (s *Server) contractAction(fn contractFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		a := s.world.agents[agentSymbol(c)]
		ct, err := a.contract(c.Param("contract"))
		if err != nil {
			s.fail(c, err)
			return
		}
		v, err := fn(c, s.now(), a, ct)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.data(c, http.StatusOK, v)
	}
}

// listContracts handles GET /my/contracts.
func (s *Server) listContracts(c *gin.Context) {
	page, limit, err := pagination(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.world.agents[agentSymbol(c)]
	items, meta := paginate(a.contracts, page, limit)
	s.page(c, items, meta)
}

func getContract(_ *gin.Context, _ time.Time, _ *agentState, ct *schema.Contract) (any, error) {
	return ct, nil
}

func acceptContract(_ *gin.Context, now time.Time, a *agentState, ct *schema.Contract) (any, error) {
	if ct.Accepted {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeAcceptContractConflict,
			"Contract %s has already been accepted.", ct.ID)
	}
	if ct.DeadlineToAccept != nil && now.After(*ct.DeadlineToAccept) {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeContractDeadline,
			"Contract %s can no longer be accepted.", ct.ID)
	}
	ct.Accepted = true
	a.agent.Credits += ct.Terms.Payment.OnAccepted
	return schema.AgentContractData{Agent: a.agent, Contract: *ct}, nil
}

func deliverContract(c *gin.Context, now time.Time, a *agentState, ct *schema.Contract) (any, error) {
	var req struct {
		ShipSymbol  string `json:"shipSymbol"`
		TradeSymbol string `json:"tradeSymbol"`
		Units       int    `json:"units"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, reject(http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
	}
	if req.Units < 1 {
		return nil, invalid("units", "units must be a positive integer")
	}
	if !ct.Accepted {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeContractNotAccepted,
			"Contract %s has not been accepted.", ct.ID)
	}
	if ct.Fulfilled {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeContractFulfilled,
			"Contract %s has already been fulfilled.", ct.ID)
	}
	if now.After(ct.Terms.Deadline) {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeContractDeadline,
			"Contract %s is past its deadline.", ct.ID)
	}
	sh, err := a.ship(req.ShipSymbol)
	if err != nil {
		return nil, err
	}
	settle(sh, now)

	var term *schema.ContractDeliverGood
	for i := range ct.Terms.Deliver {
		if ct.Terms.Deliver[i].TradeSymbol == req.TradeSymbol {
			term = &ct.Terms.Deliver[i]
		}
	}
	if term == nil {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeShipDeliverTerms,
			"Contract %s does not require %s.", ct.ID, req.TradeSymbol)
	}
	if sh.Nav.Status != schema.NavStatusDocked || sh.Nav.WaypointSymbol != term.DestinationSymbol {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeShipDeliverInvalidLocation,
			"Ship %s must be docked at %s to deliver.", sh.Symbol, term.DestinationSymbol)
	}
	if term.Remaining() == 0 {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeShipDeliverFulfilled,
			"Contract %s has already received all %s.", ct.ID, req.TradeSymbol)
	}

	units := min(req.Units, term.Remaining())
	if err := removeCargo(&sh.Cargo, schema.TradeSymbol(req.TradeSymbol), units); err != nil {
		return nil, err
	}
	term.UnitsFulfilled += units
	return schema.DeliverContractData{Contract: *ct, Cargo: sh.Cargo}, nil
}

func fulfillContract(_ *gin.Context, _ time.Time, a *agentState, ct *schema.Contract) (any, error) {
	if !ct.Accepted {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeContractNotAccepted,
			"Contract %s has not been accepted.", ct.ID)
	}
	if ct.Fulfilled {
		return nil, rejectf(http.StatusBadRequest, apierr.CodeContractFulfilled,
			"Contract %s has already been fulfilled.", ct.ID)
	}
	for _, g := range ct.Terms.Deliver {
		if g.Remaining() > 0 {
			return nil, rejectf(http.StatusBadRequest, apierr.CodeFulfillContractDelivery,
				"Contract %s still requires %d unit(s) of %s.", ct.ID, g.Remaining(), g.TradeSymbol)
		}
	}
	ct.Fulfilled = true
	a.agent.Credits += ct.Terms.Payment.OnFulfilled
	return schema.AgentContractData{Agent: a.agent, Contract: *ct}, nil
}
