package schema

import "time"

// TradeGood is a good a market imports, exports or exchanges.
type TradeGood = TypedSymbol[TradeSymbol]

// Market lists what a waypoint trades. Transactions and TradeGoods are only
// sent while one of the agent's ships is present.
type Market struct {
	Symbol       string              `json:"symbol"`
	Exports      []TradeGood         `json:"exports"`
	Imports      []TradeGood         `json:"imports"`
	Exchange     []TradeGood         `json:"exchange"`
	Transactions []MarketTransaction `json:"transactions,omitempty"`
	TradeGoods   []MarketTradeGood   `json:"tradeGoods,omitempty"`
}

// MarketTradeGood is the current price of a good at a market.
type MarketTradeGood struct {
	Symbol        TradeSymbol `json:"symbol"`
	TradeVolume   int         `json:"tradeVolume"`
	Supply        SupplyLevel `json:"supply"`
	PurchasePrice int         `json:"purchasePrice"`
	SellPrice     int         `json:"sellPrice"`
}

// Good returns the price entry for sym, if the market lists one.
func (m Market) Good(sym TradeSymbol) (MarketTradeGood, bool) {
	for _, g := range m.TradeGoods {
		if g.Symbol == sym {
			return g, true
		}
	}
	return MarketTradeGood{}, false
}

// MarketTransaction is a completed trade.
type MarketTransaction struct {
	WaypointSymbol string                `json:"waypointSymbol"`
	ShipSymbol     string                `json:"shipSymbol"`
	TradeSymbol    string                `json:"tradeSymbol"`
	Kind           MarketTransactionType `json:"type"`
	Units          int                   `json:"units"`
	PricePerUnit   int                   `json:"pricePerUnit"`
	TotalPrice     int                   `json:"totalPrice"`
	Timestamp      time.Time             `json:"timestamp"`
}

// ShipTypeObject wraps a ship type offered by a shipyard.
type ShipTypeObject struct {
	Kind ShipType `json:"type"`
}

// Shipyard lists the ships a waypoint sells. Transactions and Ships are only
// sent while one of the agent's ships is present.
type Shipyard struct {
	Symbol       string                `json:"symbol"`
	ShipTypes    []ShipTypeObject      `json:"shipTypes"`
	Transactions []ShipyardTransaction `json:"transactions,omitempty"`
	Ships        []ShipyardShip        `json:"ships,omitempty"`
}

// ShipyardShip is a ship for sale.
type ShipyardShip struct {
	Kind          *ShipType    `json:"type,omitempty"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	PurchasePrice int          `json:"purchasePrice"`
	Frame         ShipFrame    `json:"frame"`
	Reactor       ShipReactor  `json:"reactor"`
	Engine        ShipEngine   `json:"engine"`
	Modules       []ShipModule `json:"modules"`
	Mounts        []ShipMount  `json:"mounts"`
}

// ShipyardTransaction is a completed ship purchase.
type ShipyardTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol"`
	ShipSymbol     string    `json:"shipSymbol"`
	Price          int       `json:"price"`
	AgentSymbol    string    `json:"agentSymbol"`
	Timestamp      time.Time `json:"timestamp"`
}
