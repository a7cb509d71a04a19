// Package schema declares the SpaceTraders domain records and the closed
// enumerations they are built from.
//
// Records are plain values. Field presence follows one rule: pointer and
// omitempty fields are optional, everything else is required. Use Decode
// rather than json.Unmarshal to have that rule enforced:
//
//	var wp schema.Waypoint
//	if err := schema.Decode(raw, &wp); err != nil {
//	    // *MissingFieldError, *TypeMismatchError or *UnknownVariantError
//	}
//
// Records reference each other by symbol string only (a ShipNav's
// SystemSymbol names a System); resolving those references is up to the
// caller.
package schema

import "time"

// Symbolic is a reference to another entity by its symbol.
type Symbolic struct {
	Symbol string `json:"symbol"`
}

// TypedSymbol is a described member of a closed enumeration, such as a
// waypoint trait or a trade good listed by a market.
type TypedSymbol[T ~string] struct {
	Symbol      T      `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Meta is the pagination block sent with list responses.
type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pages returns the number of pages needed to hold Total items.
func (m Meta) Pages() int {
	if m.Limit <= 0 {
		return 0
	}
	return (m.Total + m.Limit - 1) / m.Limit
}

// Cooldown is the reactor cooldown a ship observes after extracting,
// surveying, scanning or jumping.
type Cooldown struct {
	ShipSymbol       string    `json:"shipSymbol"`
	TotalSeconds     int       `json:"totalSeconds"`
	RemainingSeconds int       `json:"remainingSeconds"`
	Expiration       time.Time `json:"expiration"`
}

// Chart records who first charted a waypoint.
type Chart struct {
	WaypointSymbol *string    `json:"waypointSymbol,omitempty"`
	SubmittedBy    *string    `json:"submittedBy,omitempty"`
	SubmittedOn    *time.Time `json:"submittedOn,omitempty"`
}

// SurveyDeposit is a single deposit found by a survey.
type SurveyDeposit = Symbolic

// Survey is a resource survey of a waypoint. Pass it back to
// ExtractResources to target its deposits.
type Survey struct {
	Signature string          `json:"signature"`
	Symbol    string          `json:"symbol"`
	Deposits  []SurveyDeposit `json:"deposits"`

	Expiration *time.Time `json:"expiration,omitempty"`
	Size       *string    `json:"size,omitempty"`
}

// Extraction is the outcome of an extract call.
type Extraction struct {
	ShipSymbol string          `json:"shipSymbol"`
	Yield      ExtractionYield `json:"yield"`
}

// ExtractionYield is what an extraction put in the cargo hold.
type ExtractionYield struct {
	Symbol TradeSymbol `json:"symbol"`
	Units  int         `json:"units"`
}

// Produce is a good produced or consumed by a refinery.
type Produce struct {
	TradeSymbol TradeSymbol `json:"tradeSymbol"`
	Units       int         `json:"units"`
}
