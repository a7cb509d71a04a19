package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// roundTrip checks that every variant parses from and marshals back to its
// own wire string.
func roundTrip[T ~string](t *testing.T, name string, values []T, parse func(string) (T, error)) {
	t.Helper()
	if len(values) == 0 {
		t.Fatalf("%s: no variants", name)
	}
	seen := make(map[T]bool, len(values))
	for _, v := range values {
		if seen[v] {
			t.Errorf("%s: duplicate variant %q", name, v)
		}
		seen[v] = true

		got, err := parse(string(v))
		if err != nil {
			t.Errorf("%s: Parse(%q): %v", name, v, err)
			continue
		}
		if got != v {
			t.Errorf("%s: Parse(%q) = %q", name, v, got)
		}

		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%s: Marshal(%q): %v", name, v, err)
		}
		if want := `"` + string(v) + `"`; string(b) != want {
			t.Errorf("%s: Marshal(%q) = %s, want %s", name, v, b, want)
		}
		var back T
		if err := json.Unmarshal(b, &back); err != nil {
			t.Errorf("%s: Unmarshal(%s): %v", name, b, err)
		}
		if back != v {
			t.Errorf("%s: Unmarshal(%s) = %q", name, b, back)
		}
	}
}

func TestEnums_roundTrip(t *testing.T) {
	roundTrip(t, "ContractType", schema.ContractTypeValues(), schema.ParseContractType)
	roundTrip(t, "MarketTransactionType", schema.MarketTransactionTypeValues(), schema.ParseMarketTransactionType)
	roundTrip(t, "ShipCrewRotation", schema.ShipCrewRotationValues(), schema.ParseShipCrewRotation)
	roundTrip(t, "ShipEngineSymbol", schema.ShipEngineSymbolValues(), schema.ParseShipEngineSymbol)
	roundTrip(t, "ShipFrameSymbol", schema.ShipFrameSymbolValues(), schema.ParseShipFrameSymbol)
	roundTrip(t, "ShipModuleSymbol", schema.ShipModuleSymbolValues(), schema.ParseShipModuleSymbol)
	roundTrip(t, "ShipMountSymbol", schema.ShipMountSymbolValues(), schema.ParseShipMountSymbol)
	roundTrip(t, "ShipReactorSymbol", schema.ShipReactorSymbolValues(), schema.ParseShipReactorSymbol)
	roundTrip(t, "ShipNavFlightMode", schema.ShipNavFlightModeValues(), schema.ParseShipNavFlightMode)
	roundTrip(t, "ShipNavStatus", schema.ShipNavStatusValues(), schema.ParseShipNavStatus)
	roundTrip(t, "ShipRole", schema.ShipRoleValues(), schema.ParseShipRole)
	roundTrip(t, "ShipType", schema.ShipTypeValues(), schema.ParseShipType)
	roundTrip(t, "SystemType", schema.SystemTypeValues(), schema.ParseSystemType)
	roundTrip(t, "WaypointType", schema.WaypointTypeValues(), schema.ParseWaypointType)
	roundTrip(t, "Deposit", schema.DepositValues(), schema.ParseDeposit)
	roundTrip(t, "SupplyLevel", schema.SupplyLevelValues(), schema.ParseSupplyLevel)
	roundTrip(t, "FactionSymbol", schema.FactionSymbolValues(), schema.ParseFactionSymbol)
	roundTrip(t, "TradeSymbol", schema.TradeSymbolValues(), schema.ParseTradeSymbol)
	roundTrip(t, "WaypointTraitSymbol", schema.WaypointTraitSymbolValues(), schema.ParseWaypointTraitSymbol)
	roundTrip(t, "FactionTraitSymbol", schema.FactionTraitSymbolValues(), schema.ParseFactionTraitSymbol)
}

func TestEnums_wireSpelling(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{string(schema.EngineIonDriveII), "ENGINE_ION_DRIVE_II"},
		{string(schema.ReactorFissionI), "REACTOR_FISSION_I"},
		{string(schema.WaypointTypeGasGiant), "GAS_GIANT"},
		{string(schema.SystemTypeRedStar), "RED_STAR"},
		{string(schema.FlightModeBurn), "BURN"},
		{string(schema.NavStatusInTransit), "IN_TRANSIT"},
		{string(schema.ShipTypeProbe), "SHIP_PROBE"},
		{string(schema.FactionCosmic), "COSMIC"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestParse_exactMatchOnly(t *testing.T) {
	cases := []string{"", "planet", "Planet", " PLANET", "PLANET ", "WORMHOLE"}
	for _, s := range cases {
		_, err := schema.ParseWaypointType(s)
		var uv *schema.UnknownVariantError
		if !errors.As(err, &uv) {
			t.Errorf("ParseWaypointType(%q): got %v, want *UnknownVariantError", s, err)
			continue
		}
		if uv.Value != s || uv.Enum != "WaypointType" {
			t.Errorf("ParseWaypointType(%q): got %+v", s, uv)
		}
	}
}

func TestUnmarshal_unknownVariant(t *testing.T) {
	var ft schema.ShipNavFlightMode
	err := json.Unmarshal([]byte(`"HYPERSPACE"`), &ft)
	var uv *schema.UnknownVariantError
	if !errors.As(err, &uv) {
		t.Fatalf("got %v, want *UnknownVariantError", err)
	}
	if uv.Value != "HYPERSPACE" {
		t.Errorf("Value: got %q", uv.Value)
	}
	if ft != "" {
		t.Errorf("target modified on failure: %q", ft)
	}
}

func TestValues_returnsCopy(t *testing.T) {
	vals := schema.ShipNavStatusValues()
	vals[0] = "BROKEN"
	if _, err := schema.ParseShipNavStatus(string(schema.ShipNavStatusValues()[0])); err != nil {
		t.Errorf("mutating Values() leaked into the enum: %v", err)
	}
}
