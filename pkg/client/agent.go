package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmerrifield20/spacetraders/pkg/envelope"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// DefaultFaction is the faction a new agent joins when none is given.
const DefaultFaction = schema.FactionCosmic

// RegisterResult is the outcome of Register. Token is always set; the other
// members are filled when the server sends them.
type RegisterResult struct {
	Token    string
	Agent    *schema.Agent
	Contract *schema.Contract
	Faction  *schema.Faction
	Ship     *schema.Ship
}

// Register creates a new agent and stores its token on c for subsequent
// calls. An empty faction selects DefaultFaction.
//
//	res, err := c.Register(ctx, "BADGER", "")
//	fmt.Println(res.Token) // keep this; it cannot be recovered
func (c *Client) Register(ctx context.Context, symbol string, faction schema.FactionSymbol) (*RegisterResult, error) {
	if symbol == "" {
		return nil, fmt.Errorf("agent symbol must not be empty")
	}
	if faction == "" {
		faction = DefaultFaction
	}

	data, err := call[schema.RegisterData](ctx, c, request{
		op:     "Register",
		method: http.MethodPost,
		path:   "/register",
		body: map[string]string{
			"symbol":  symbol,
			"faction": string(faction),
		},
	})
	if err != nil {
		return nil, err
	}

	c.SetToken(data.Token)
	return &RegisterResult{
		Token:    data.Token,
		Agent:    data.Agent,
		Contract: data.Contract,
		Faction:  data.Faction,
		Ship:     data.Ship,
	}, nil
}

// MyAgent returns the agent owning the client's token.
func (c *Client) MyAgent(ctx context.Context) (*schema.Agent, error) {
	a, err := call[schema.Agent](ctx, c, request{op: "MyAgent", method: http.MethodGet, path: "/my/agent"})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListFactions returns one page of factions.
func (c *Client) ListFactions(ctx context.Context, p Pagination) (*envelope.Page[[]schema.Faction], error) {
	page, err := callPage[[]schema.Faction](ctx, c, request{
		op:     "ListFactions",
		method: http.MethodGet,
		path:   "/factions",
		query:  p.values(),
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetFaction returns a single faction.
func (c *Client) GetFaction(ctx context.Context, faction schema.FactionSymbol) (*schema.Faction, error) {
	f, err := call[schema.Faction](ctx, c, request{
		op:     "GetFaction",
		method: http.MethodGet,
		path:   pathf("/factions/%s", string(faction)),
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}
