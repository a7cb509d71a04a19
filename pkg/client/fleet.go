package client

import (
	"context"
	"net/http"

	"github.com/jmerrifield20/spacetraders/pkg/envelope"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// shipOp performs a call on /my/ships/{ship}/{action} and returns a pointer
// to the decoded payload.
func shipOp[T any](ctx context.Context, c *Client, op, method, ship, action string, body any) (*T, error) {
	path := pathf("/my/ships/%s", ship)
	if action != "" {
		path += "/" + action
	}
	v, err := call[T](ctx, c, request{op: op, method: method, path: path, body: body})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListShips returns one page of the agent's ships.
func (c *Client) ListShips(ctx context.Context, p Pagination) (*envelope.Page[[]schema.Ship], error) {
	page, err := callPage[[]schema.Ship](ctx, c, request{
		op:     "ListShips",
		method: http.MethodGet,
		path:   "/my/ships",
		query:  p.values(),
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// PurchaseShip buys a ship of the given type at a shipyard waypoint.
func (c *Client) PurchaseShip(ctx context.Context, shipType schema.ShipType, waypoint string) (*schema.PurchaseShipData, error) {
	v, err := call[schema.PurchaseShipData](ctx, c, request{
		op:     "PurchaseShip",
		method: http.MethodPost,
		path:   "/my/ships",
		body: map[string]string{
			"shipType":       string(shipType),
			"waypointSymbol": waypoint,
		},
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetShip returns one of the agent's ships.
func (c *Client) GetShip(ctx context.Context, ship string) (*schema.Ship, error) {
	return shipOp[schema.Ship](ctx, c, "GetShip", http.MethodGet, ship, "", nil)
}

// GetShipCargo returns the cargo hold of a ship.
func (c *Client) GetShipCargo(ctx context.Context, ship string) (*schema.ShipCargo, error) {
	return shipOp[schema.ShipCargo](ctx, c, "GetShipCargo", http.MethodGet, ship, "cargo", nil)
}

// OrbitShip moves a docked ship into orbit.
func (c *Client) OrbitShip(ctx context.Context, ship string) (*schema.NavData, error) {
	return shipOp[schema.NavData](ctx, c, "OrbitShip", http.MethodPost, ship, "orbit", nil)
}

// DockShip docks an orbiting ship at its current waypoint.
func (c *Client) DockShip(ctx context.Context, ship string) (*schema.NavData, error) {
	return shipOp[schema.NavData](ctx, c, "DockShip", http.MethodPost, ship, "dock", nil)
}

// NavigateShip flies a ship to a waypoint in its current system.
func (c *Client) NavigateShip(ctx context.Context, ship, waypoint string) (*schema.NavigateData, error) {
	return shipOp[schema.NavigateData](ctx, c, "NavigateShip", http.MethodPost, ship, "navigate",
		map[string]string{"waypointSymbol": waypoint})
}

// WarpShip warps a ship to a waypoint in another system.
func (c *Client) WarpShip(ctx context.Context, ship, waypoint string) (*schema.NavigateData, error) {
	return shipOp[schema.NavigateData](ctx, c, "WarpShip", http.MethodPost, ship, "warp",
		map[string]string{"waypointSymbol": waypoint})
}

// JumpShip jumps a ship to another system through a jump gate.
func (c *Client) JumpShip(ctx context.Context, ship, system string) (*schema.JumpData, error) {
	return shipOp[schema.JumpData](ctx, c, "JumpShip", http.MethodPost, ship, "jump",
		map[string]string{"systemSymbol": system})
}

// GetShipNav returns the navigation state of a ship.
func (c *Client) GetShipNav(ctx context.Context, ship string) (*schema.ShipNav, error) {
	return shipOp[schema.ShipNav](ctx, c, "GetShipNav", http.MethodGet, ship, "nav", nil)
}

// PatchShipNav changes the flight mode of a ship.
func (c *Client) PatchShipNav(ctx context.Context, ship string, mode schema.ShipNavFlightMode) (*schema.ShipNav, error) {
	return shipOp[schema.ShipNav](ctx, c, "PatchShipNav", http.MethodPatch, ship, "nav",
		map[string]string{"flightMode": string(mode)})
}

// RefuelShip fills a docked ship's tanks at the local market.
func (c *Client) RefuelShip(ctx context.Context, ship string) (*schema.RefuelData, error) {
	return shipOp[schema.RefuelData](ctx, c, "RefuelShip", http.MethodPost, ship, "refuel", nil)
}

// ExtractResources mines the ship's current waypoint. A non-nil survey
// targets its deposits.
func (c *Client) ExtractResources(ctx context.Context, ship string, survey *schema.Survey) (*schema.ExtractData, error) {
	var body any
	if survey != nil {
		body = map[string]*schema.Survey{"survey": survey}
	}
	return shipOp[schema.ExtractData](ctx, c, "ExtractResources", http.MethodPost, ship, "extract", body)
}

// CreateSurvey surveys the ship's current waypoint for deposits.
func (c *Client) CreateSurvey(ctx context.Context, ship string) (*schema.SurveyData, error) {
	return shipOp[schema.SurveyData](ctx, c, "CreateSurvey", http.MethodPost, ship, "survey", nil)
}

// CreateChart charts the ship's current waypoint.
func (c *Client) CreateChart(ctx context.Context, ship string) (*schema.ChartData, error) {
	return shipOp[schema.ChartData](ctx, c, "CreateChart", http.MethodPost, ship, "chart", nil)
}

type cargoBody struct {
	Symbol string `json:"symbol"`
	Units  int    `json:"units"`
}

// SellCargo sells cargo at the local market.
func (c *Client) SellCargo(ctx context.Context, ship string, good schema.TradeSymbol, units int) (*schema.TradeData, error) {
	return shipOp[schema.TradeData](ctx, c, "SellCargo", http.MethodPost, ship, "sell",
		cargoBody{Symbol: string(good), Units: units})
}

// PurchaseCargo buys cargo at the local market.
func (c *Client) PurchaseCargo(ctx context.Context, ship string, good schema.TradeSymbol, units int) (*schema.TradeData, error) {
	return shipOp[schema.TradeData](ctx, c, "PurchaseCargo", http.MethodPost, ship, "purchase",
		cargoBody{Symbol: string(good), Units: units})
}

// JettisonCargo dumps cargo into space.
func (c *Client) JettisonCargo(ctx context.Context, ship string, good schema.TradeSymbol, units int) (*schema.CargoData, error) {
	return shipOp[schema.CargoData](ctx, c, "JettisonCargo", http.MethodPost, ship, "jettison",
		cargoBody{Symbol: string(good), Units: units})
}

// TransferCargo moves cargo to another ship at the same waypoint.
func (c *Client) TransferCargo(ctx context.Context, ship string, good schema.TradeSymbol, units int, to string) (*schema.CargoData, error) {
	body := struct {
		TradeSymbol string `json:"tradeSymbol"`
		Units       int    `json:"units"`
		ShipSymbol  string `json:"shipSymbol"`
	}{string(good), units, to}
	return shipOp[schema.CargoData](ctx, c, "TransferCargo", http.MethodPost, ship, "transfer", body)
}

// ShipRefine refines raw goods in the cargo hold into produce.
func (c *Client) ShipRefine(ctx context.Context, ship string, produce schema.TradeSymbol) (*schema.RefineData, error) {
	return shipOp[schema.RefineData](ctx, c, "ShipRefine", http.MethodPost, ship, "refine",
		map[string]string{"produce": string(produce)})
}

// GetShipCooldown returns the ship's reactor cooldown, or nil when the ship
// is not cooling down.
func (c *Client) GetShipCooldown(ctx context.Context, ship string) (*schema.Cooldown, error) {
	v, status, err := callWithStatus[schema.Cooldown](ctx, c, request{
		op:     "GetShipCooldown",
		method: http.MethodGet,
		path:   pathf("/my/ships/%s/cooldown", ship),
	})
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &v, nil
}

// ScanSystems scans for systems around the ship.
func (c *Client) ScanSystems(ctx context.Context, ship string) (*schema.ScanSystemsData, error) {
	return shipOp[schema.ScanSystemsData](ctx, c, "ScanSystems", http.MethodPost, ship, "scan/systems", nil)
}

// ScanWaypoints scans for waypoints around the ship.
func (c *Client) ScanWaypoints(ctx context.Context, ship string) (*schema.ScanWaypointsData, error) {
	return shipOp[schema.ScanWaypointsData](ctx, c, "ScanWaypoints", http.MethodPost, ship, "scan/waypoints", nil)
}

// ScanShips scans for other ships around the ship.
func (c *Client) ScanShips(ctx context.Context, ship string) (*schema.ScanShipsData, error) {
	return shipOp[schema.ScanShipsData](ctx, c, "ScanShips", http.MethodPost, ship, "scan/ships", nil)
}
