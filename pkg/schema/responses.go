package schema

// Payload shapes of the "data" member for each endpoint. List endpoints
// decode straight into slices of records and need no wrapper.

// RegisterData is returned by POST /register. Only the token is required;
// the server also sends the new agent and its starting assets.
type RegisterData struct {
	Token    string    `json:"token"`
	Agent    *Agent    `json:"agent,omitempty"`
	Contract *Contract `json:"contract,omitempty"`
	Faction  *Faction  `json:"faction,omitempty"`
	Ship     *Ship     `json:"ship,omitempty"`
}

// AgentContractData is returned by POST /my/contracts/{id}/accept and /fulfill.
type AgentContractData struct {
	Agent    Agent    `json:"agent"`
	Contract Contract `json:"contract"`
}

// DeliverContractData is returned by POST /my/contracts/{id}/deliver.
type DeliverContractData struct {
	Contract Contract  `json:"contract"`
	Cargo    ShipCargo `json:"cargo"`
}

// PurchaseShipData is returned by POST /my/ships.
type PurchaseShipData struct {
	Agent       Agent               `json:"agent"`
	Ship        Ship                `json:"ship"`
	Transaction ShipyardTransaction `json:"transaction"`
}

// NavData is returned by POST /my/ships/{ship}/orbit and /dock.
type NavData struct {
	Nav ShipNav `json:"nav"`
}

// NavigateData is returned by POST /my/ships/{ship}/navigate and /warp.
type NavigateData struct {
	Fuel ShipFuel `json:"fuel"`
	Nav  ShipNav  `json:"nav"`
}

// JumpData is returned by POST /my/ships/{ship}/jump.
type JumpData struct {
	Cooldown Cooldown `json:"cooldown"`
	Nav      ShipNav  `json:"nav"`
}

// RefineData is returned by POST /my/ships/{ship}/refine.
type RefineData struct {
	Cargo    ShipCargo `json:"cargo"`
	Cooldown Cooldown  `json:"cooldown"`
	Produced []Produce `json:"produced"`
	Consumed []Produce `json:"consumed"`
}

// ChartData is returned by POST /my/ships/{ship}/chart.
type ChartData struct {
	Chart    Chart    `json:"chart"`
	Waypoint Waypoint `json:"waypoint"`
}

// SurveyData is returned by POST /my/ships/{ship}/survey.
type SurveyData struct {
	Cooldown Cooldown `json:"cooldown"`
	Surveys  []Survey `json:"surveys"`
}

// ExtractData is returned by POST /my/ships/{ship}/extract.
type ExtractData struct {
	Cooldown   Cooldown   `json:"cooldown"`
	Extraction Extraction `json:"extraction"`
	Cargo      ShipCargo  `json:"cargo"`
}

// CargoData is returned by POST /my/ships/{ship}/jettison and /transfer.
type CargoData struct {
	Cargo ShipCargo `json:"cargo"`
}

// TradeData is returned by POST /my/ships/{ship}/purchase and /sell.
type TradeData struct {
	Agent       Agent             `json:"agent"`
	Cargo       ShipCargo         `json:"cargo"`
	Transaction MarketTransaction `json:"transaction"`
}

// RefuelData is returned by POST /my/ships/{ship}/refuel.
type RefuelData struct {
	Agent       Agent              `json:"agent"`
	Fuel        ShipFuel           `json:"fuel"`
	Transaction *MarketTransaction `json:"transaction,omitempty"`
}

// ScanSystemsData is returned by POST /my/ships/{ship}/scan/systems.
type ScanSystemsData struct {
	Cooldown Cooldown        `json:"cooldown"`
	Systems  []ScannedSystem `json:"systems"`
}

// ScanWaypointsData is returned by POST /my/ships/{ship}/scan/waypoints.
type ScanWaypointsData struct {
	Cooldown  Cooldown          `json:"cooldown"`
	Waypoints []ScannedWaypoint `json:"waypoints"`
}

// ScanShipsData is returned by POST /my/ships/{ship}/scan/ships.
type ScanShipsData struct {
	Cooldown Cooldown      `json:"cooldown"`
	Ships    []ScannedShip `json:"ships"`
}
