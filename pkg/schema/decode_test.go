package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return b
}

func TestDecode_fixtures(t *testing.T) {
	cases := []struct {
		file string
		into any
	}{
		{"Waypoint.json", new(schema.Waypoint)},
		{"ScannedWaypoint.json", new(schema.ScannedWaypoint)},
		{"WaypointTrait.json", new(schema.WaypointTrait)},
		{"ShipNav.json", new(schema.ShipNav)},
		{"Ship.json", new(schema.Ship)},
		{"Contract.json", new(schema.Contract)},
		{"Market.json", new(schema.Market)},
		{"System.json", new(schema.System)},
		{"Shipyard.json", new(schema.Shipyard)},
		{"Faction.json", new(schema.Faction)},
		{"Survey.json", new(schema.Survey)},
		{"JumpGate.json", new(schema.JumpGate)},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			if err := schema.Decode(readFixture(t, tc.file), tc.into); err != nil {
				t.Fatalf("Decode: %v", err)
			}
		})
	}
}

func TestDecode_waypoint(t *testing.T) {
	var wp schema.Waypoint
	if err := schema.Decode(readFixture(t, "Waypoint.json"), &wp); err != nil {
		t.Fatal(err)
	}
	if wp.Kind != schema.WaypointTypePlanet {
		t.Errorf("Kind: got %q", wp.Kind)
	}
	if wp.X != -42 || wp.Y != 17 {
		t.Errorf("coords: got (%d,%d)", wp.X, wp.Y)
	}
	if wp.Faction == nil || wp.Faction.Symbol != "COSMIC" {
		t.Errorf("Faction: got %+v", wp.Faction)
	}
	if !wp.HasTrait(schema.TraitMarketplace) || wp.HasTrait(schema.TraitOutpost) {
		t.Errorf("HasTrait: unexpected traits %+v", wp.Traits)
	}
	if wp.Chart == nil || wp.Chart.SubmittedOn == nil || wp.Chart.WaypointSymbol != nil {
		t.Errorf("Chart: got %+v", wp.Chart)
	}
}

func TestDecode_shipNav(t *testing.T) {
	var nav schema.ShipNav
	if err := schema.Decode(readFixture(t, "ShipNav.json"), &nav); err != nil {
		t.Fatal(err)
	}
	if nav.Status != schema.NavStatusInTransit || nav.FlightMode != schema.FlightModeCruise {
		t.Errorf("status/mode: got %q/%q", nav.Status, nav.FlightMode)
	}
	// +02:00 offset normalises to 07:31:12Z.
	want := time.Date(2023, 6, 12, 7, 31, 12, 0, time.UTC)
	if !nav.Route.Arrival.Equal(want) {
		t.Errorf("Arrival: got %s, want %s", nav.Route.Arrival, want)
	}
	if nav.Route.Departure.Kind != schema.WaypointTypeAsteroidField {
		t.Errorf("Departure.Kind: got %q", nav.Route.Departure.Kind)
	}
}

func TestDecode_ship(t *testing.T) {
	var s schema.Ship
	if err := schema.Decode(readFixture(t, "Ship.json"), &s); err != nil {
		t.Fatal(err)
	}
	if s.Engine.Symbol != schema.EngineIonDriveII {
		t.Errorf("Engine.Symbol: got %q", s.Engine.Symbol)
	}
	if s.Reactor.Condition == nil || *s.Reactor.Condition != 0.98 {
		t.Errorf("Reactor.Condition: got %v", s.Reactor.Condition)
	}
	if s.Frame.Requirements.Slots != nil || s.Frame.Requirements.Power == nil {
		t.Errorf("Frame.Requirements: got %+v", s.Frame.Requirements)
	}
	if len(s.Mounts) != 2 || len(s.Mounts[1].Deposits) != 2 || s.Mounts[1].Deposits[1] != schema.DepositIronOre {
		t.Errorf("Mounts: got %+v", s.Mounts)
	}
	if s.Modules[1].Description != nil {
		t.Errorf("Modules[1].Description: got %v", *s.Modules[1].Description)
	}
	if s.Cooldown != nil {
		t.Errorf("Cooldown: got %+v", s.Cooldown)
	}
}

func TestDecode_emptyArrayIsNonNil(t *testing.T) {
	var s schema.Ship
	if err := schema.Decode(readFixture(t, "Ship.json"), &s); err != nil {
		t.Fatal(err)
	}
	if s.Cargo.Inventory == nil {
		t.Error("Cargo.Inventory: got nil, want empty slice")
	}
	if len(s.Cargo.Inventory) != 0 {
		t.Errorf("Cargo.Inventory: got %d items", len(s.Cargo.Inventory))
	}
	if s.Cargo.Free() != 60 {
		t.Errorf("Free: got %d", s.Cargo.Free())
	}
}

func TestDecode_contract(t *testing.T) {
	var c schema.Contract
	if err := schema.Decode(readFixture(t, "Contract.json"), &c); err != nil {
		t.Fatal(err)
	}
	if c.Kind != schema.ContractTypeProcurement {
		t.Errorf("Kind: got %q", c.Kind)
	}
	if c.Terms.Payment.OnFulfilled != 30800 {
		t.Errorf("OnFulfilled: got %d", c.Terms.Payment.OnFulfilled)
	}
	if len(c.Terms.Deliver) != 1 || c.Terms.Deliver[0].Remaining() != 3300 {
		t.Errorf("Deliver: got %+v", c.Terms.Deliver)
	}
	if c.DeadlineToAccept == nil {
		t.Error("DeadlineToAccept: got nil")
	}
}

func TestDecode_market(t *testing.T) {
	var m schema.Market
	if err := schema.Decode(readFixture(t, "Market.json"), &m); err != nil {
		t.Fatal(err)
	}
	g, ok := m.Good(schema.TradeIronOre)
	if !ok {
		t.Fatal("Good(IRON_ORE): not found")
	}
	if g.Supply != schema.SupplyScarce || g.SellPrice != 41 {
		t.Errorf("Good(IRON_ORE): got %+v", g)
	}
	if _, ok := m.Good(schema.TradeFuel); ok {
		t.Error("Good(FUEL): FUEL is imported, not traded here")
	}
	if m.Transactions[0].Kind != schema.TransactionSell {
		t.Errorf("Transactions[0].Kind: got %q", m.Transactions[0].Kind)
	}
}

func TestDecode_unknownVariant(t *testing.T) {
	raw := []byte(`{"symbol":"X1-DF55-20250Z","type":"WORMHOLE","systemSymbol":"X1-DF55","x":0,"y":0,"orbitals":[],"traits":[]}`)
	var wp schema.Waypoint
	err := schema.Decode(raw, &wp)
	var uv *schema.UnknownVariantError
	if !errors.As(err, &uv) {
		t.Fatalf("got %v, want *UnknownVariantError", err)
	}
	if uv.Value != "WORMHOLE" || uv.Enum != "WaypointType" {
		t.Errorf("got %+v", uv)
	}
}

func TestDecode_missingField(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		into any
		want string
	}{
		{
			name: "top level",
			raw:  `{"symbol":"X1-DF55-20250Z","type":"PLANET","systemSymbol":"X1-DF55","x":0,"orbitals":[],"traits":[]}`,
			into: new(schema.Waypoint),
			want: "y",
		},
		{
			name: "null counts as absent",
			raw:  `{"symbol":"X1-DF55-20250Z","type":"PLANET","systemSymbol":"X1-DF55","x":0,"y":null,"orbitals":[],"traits":[]}`,
			into: new(schema.Waypoint),
			want: "y",
		},
		{
			name: "nested",
			raw:  `{"systemSymbol":"X1","waypointSymbol":"X1-A","status":"DOCKED","flightMode":"CRUISE","route":{"destination":{"symbol":"X1-A","type":"PLANET","systemSymbol":"X1","x":0,"y":0},"departure":{"symbol":"X1-A","type":"PLANET","systemSymbol":"X1","x":0,"y":0},"departureTime":"2023-06-12T09:30:00Z"}}`,
			into: new(schema.ShipNav),
			want: "route.arrival",
		},
		{
			name: "inside array",
			raw:  `{"symbol":"X1-A","type":"PLANET","systemSymbol":"X1","x":0,"y":0,"orbitals":[],"traits":[{"symbol":"SHIPYARD","name":"Shipyard"}]}`,
			into: new(schema.Waypoint),
			want: "traits[0].description",
		},
		{
			name: "enum null",
			raw:  `{"symbol":"X1-A","type":null,"systemSymbol":"X1","x":0,"y":0,"orbitals":[],"traits":[]}`,
			into: new(schema.Waypoint),
			want: "type",
		},
		{
			name: "required timestamp",
			raw:  `{"shipSymbol":"BADGER-1","totalSeconds":60,"remainingSeconds":12}`,
			into: new(schema.Cooldown),
			want: "expiration",
		},
		{
			name: "root null",
			raw:  `null`,
			into: new(schema.Agent),
			want: "(root)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := schema.Decode([]byte(tc.raw), tc.into)
			var mf *schema.MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("got %v, want *MissingFieldError", err)
			}
			if mf.Name != tc.want {
				t.Errorf("Name: got %q, want %q", mf.Name, tc.want)
			}
		})
	}
}

func TestDecode_typeMismatch(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		into     any
		field    string
		expected string
		got      string
	}{
		{
			name:     "string for integer",
			raw:      `{"symbol":"X1-A","type":"PLANET","systemSymbol":"X1","x":"12","y":0,"orbitals":[],"traits":[]}`,
			into:     new(schema.Waypoint),
			field:    "x",
			expected: "integer",
			got:      "string",
		},
		{
			name:     "number for enum",
			raw:      `{"symbol":"X1-A","type":7,"systemSymbol":"X1","x":0,"y":0,"orbitals":[],"traits":[]}`,
			into:     new(schema.Waypoint),
			field:    "type",
			expected: "string",
			got:      "number",
		},
		{
			name:     "object for array",
			raw:      `{"symbol":"X1-A","type":"PLANET","systemSymbol":"X1","x":0,"y":0,"orbitals":{},"traits":[]}`,
			into:     new(schema.Waypoint),
			field:    "orbitals",
			expected: "array",
			got:      "object",
		},
		{
			name:     "string for bool",
			raw:      `{"id":"c1","factionSymbol":"COSMIC","type":"PROCUREMENT","terms":{"deadline":"2023-06-19T09:30:00Z","payment":{"onAccepted":1,"onFulfilled":2},"deliver":[]},"accepted":"no","fulfilled":false,"expiration":"2023-06-13T09:30:00Z"}`,
			into:     new(schema.Contract),
			field:    "accepted",
			expected: "bool",
			got:      "string",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := schema.Decode([]byte(tc.raw), tc.into)
			var tm *schema.TypeMismatchError
			if !errors.As(err, &tm) {
				t.Fatalf("got %v, want *TypeMismatchError", err)
			}
			if tm.Field != tc.field || tm.Expected != tc.expected || tm.Got != tc.got {
				t.Errorf("got %+v, want field=%s expected=%s got=%s", tm, tc.field, tc.expected, tc.got)
			}
		})
	}
}

func TestDecode_optionalTimestampNull(t *testing.T) {
	raw := []byte(`{"id":"c1","factionSymbol":"COSMIC","type":"SHUTTLE","terms":{"deadline":"2023-06-19T09:30:00Z","payment":{"onAccepted":1,"onFulfilled":2},"deliver":[]},"accepted":true,"fulfilled":false,"expiration":"2023-06-13T09:30:00Z","deadlineToAccept":null}`)
	var c schema.Contract
	if err := schema.Decode(raw, &c); err != nil {
		t.Fatal(err)
	}
	if c.DeadlineToAccept != nil {
		t.Errorf("DeadlineToAccept: got %v, want nil", c.DeadlineToAccept)
	}
	if c.Terms.Deliver == nil {
		t.Error("Terms.Deliver: got nil, want empty slice")
	}
}

func TestDecode_unknownKeysIgnored(t *testing.T) {
	raw := []byte(`{"symbol":"X1-A","name":"Trading Hub","description":"d","rarity":"COMMON","extra":{"nested":[1,2]}}`)
	var tr schema.WaypointTrait
	if err := schema.Decode(raw, &tr); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecode_caseSensitiveKeys(t *testing.T) {
	// encoding/json folds key case; presence checking does not.
	raw := []byte(`{"ShipSymbol":"BADGER-1","totalSeconds":60,"remainingSeconds":12,"expiration":"2023-06-12T09:30:00Z"}`)
	var cd schema.Cooldown
	err := schema.Decode(raw, &cd)
	var mf *schema.MissingFieldError
	if !errors.As(err, &mf) || mf.Name != "shipSymbol" {
		t.Fatalf("got %v, want missing shipSymbol", err)
	}
}

func TestMeta_pages(t *testing.T) {
	cases := []struct {
		meta schema.Meta
		want int
	}{
		{schema.Meta{Total: 0, Page: 1, Limit: 10}, 0},
		{schema.Meta{Total: 10, Page: 1, Limit: 10}, 1},
		{schema.Meta{Total: 11, Page: 1, Limit: 10}, 2},
		{schema.Meta{Total: 5, Page: 1, Limit: 0}, 0},
	}
	for _, tc := range cases {
		if got := tc.meta.Pages(); got != tc.want {
			t.Errorf("%+v.Pages(): got %d, want %d", tc.meta, got, tc.want)
		}
	}
}
