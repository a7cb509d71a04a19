package schema

import "time"

// Agent is the player's account in the game.
type Agent struct {
	AccountID       string         `json:"accountId"`
	Symbol          string         `json:"symbol"`
	Headquarters    string         `json:"headquarters"`
	// Credits can be negative when funds are overdrawn.
	Credits         int64          `json:"credits"`
	StartingFaction *FactionSymbol `json:"startingFaction,omitempty"`
	ShipCount       *int           `json:"shipCount,omitempty"`
}

// Faction is one of the powers an agent can align with.
type Faction struct {
	Symbol       FactionSymbol  `json:"symbol"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Headquarters string         `json:"headquarters"`
	Traits       []FactionTrait `json:"traits"`
	IsRecruiting *bool          `json:"isRecruiting,omitempty"`
}

// FactionTrait describes a faction.
type FactionTrait = TypedSymbol[FactionTraitSymbol]

// Contract is work offered by a faction.
type Contract struct {
	ID               string        `json:"id"`
	FactionSymbol    string        `json:"factionSymbol"`
	Kind             ContractType  `json:"type"`
	Terms            ContractTerms `json:"terms"`
	Accepted         bool          `json:"accepted"`
	Fulfilled        bool          `json:"fulfilled"`
	Expiration       time.Time     `json:"expiration"`
	// DeadlineToAccept is absent once the contract is accepted.
	DeadlineToAccept *time.Time    `json:"deadlineToAccept,omitempty"`
}

// ContractTerms is what a contract pays and what it requires.
type ContractTerms struct {
	Deadline time.Time             `json:"deadline"`
	Payment  ContractPayment       `json:"payment"`
	Deliver  []ContractDeliverGood `json:"deliver"`
}

// ContractPayment is paid in two instalments.
type ContractPayment struct {
	OnAccepted  int64 `json:"onAccepted"`
	OnFulfilled int64 `json:"onFulfilled"`
}

// ContractDeliverGood is one delivery obligation of a contract.
type ContractDeliverGood struct {
	TradeSymbol       string `json:"tradeSymbol"`
	DestinationSymbol string `json:"destinationSymbol"`
	UnitsRequired     int    `json:"unitsRequired"`
	UnitsFulfilled    int    `json:"unitsFulfilled"`
}

// Remaining returns the units still to deliver.
func (g ContractDeliverGood) Remaining() int {
	if g.UnitsFulfilled >= g.UnitsRequired {
		return 0
	}
	return g.UnitsRequired - g.UnitsFulfilled
}
