package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmerrifield20/spacetraders/pkg/envelope"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
	"github.com/jmerrifield20/spacetraders/pkg/symbol"
)

// ListSystems returns one page of systems.
func (c *Client) ListSystems(ctx context.Context, p Pagination) (*envelope.Page[[]schema.System], error) {
	page, err := callPage[[]schema.System](ctx, c, request{
		op:     "ListSystems",
		method: http.MethodGet,
		path:   "/systems",
		query:  p.values(),
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSystem returns a single system.
func (c *Client) GetSystem(ctx context.Context, system string) (*schema.System, error) {
	v, err := call[schema.System](ctx, c, request{
		op:     "GetSystem",
		method: http.MethodGet,
		path:   pathf("/systems/%s", system),
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListWaypoints returns one page of the waypoints in a system.
func (c *Client) ListWaypoints(ctx context.Context, system string, p Pagination) (*envelope.Page[[]schema.Waypoint], error) {
	page, err := callPage[[]schema.Waypoint](ctx, c, request{
		op:     "ListWaypoints",
		method: http.MethodGet,
		path:   pathf("/systems/%s/waypoints", system),
		query:  p.values(),
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// waypointOp performs a GET on /systems/{system}/waypoints/{waypoint}/{action},
// deriving the system from the waypoint symbol.
func waypointOp[T any](ctx context.Context, c *Client, op, waypoint, action string) (*T, error) {
	sym, err := symbol.ParseWaypoint(waypoint)
	if err != nil {
		return nil, fmt.Errorf("parse waypoint: %w", err)
	}
	path := pathf("/systems/%s/waypoints/%s", sym.SystemSymbol(), sym.String())
	if action != "" {
		path += "/" + action
	}
	v, err := call[T](ctx, c, request{op: op, method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetWaypoint returns a single waypoint, e.g. "X1-DF55-20250Z".
func (c *Client) GetWaypoint(ctx context.Context, waypoint string) (*schema.Waypoint, error) {
	return waypointOp[schema.Waypoint](ctx, c, "GetWaypoint", waypoint, "")
}

// GetMarket returns the market at a waypoint. Prices and transactions are
// only included while one of the agent's ships is present.
func (c *Client) GetMarket(ctx context.Context, waypoint string) (*schema.Market, error) {
	return waypointOp[schema.Market](ctx, c, "GetMarket", waypoint, "market")
}

// GetShipyard returns the shipyard at a waypoint.
func (c *Client) GetShipyard(ctx context.Context, waypoint string) (*schema.Shipyard, error) {
	return waypointOp[schema.Shipyard](ctx, c, "GetShipyard", waypoint, "shipyard")
}

// GetJumpGate returns the jump gate at a waypoint.
func (c *Client) GetJumpGate(ctx context.Context, waypoint string) (*schema.JumpGate, error) {
	return waypointOp[schema.JumpGate](ctx, c, "GetJumpGate", waypoint, "jump-gate")
}
