package apierr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
)

func TestName_knownCodes(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{4000, "cooldownConflictError"},
		{4001, "waypointNoAccessError"},
		{4109, "registerAgentExistsError"},
		{4214, "shipInTransitError"},
		{4231, "shipTransferShipNotFound"},
		{4240, "shipMissingSurveyorError"},
		{4510, "shipDeliverInvalidLocationError"},
		{4604, "marketTradeUnitLimitError"},
		{6000, "badReplyError"},
	}
	for _, tc := range cases {
		if got := apierr.Name(tc.code); got != tc.want {
			t.Errorf("Name(%d): got %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestName_unknownCodes(t *testing.T) {
	// Gaps inside the bands are not in the table either.
	codes := []int{0, -1, 4002, 4209, 4213, 4507, 4605, 5000, 6001, 9999, math.MaxInt32, math.MinInt32}
	for _, code := range codes {
		if got := apierr.Name(code); got != apierr.UnknownName {
			t.Errorf("Name(%d): got %q, want %q", code, got, apierr.UnknownName)
		}
		if apierr.Known(code) {
			t.Errorf("Known(%d) = true", code)
		}
	}
}

func TestName_totalOverBands(t *testing.T) {
	for code := 3990; code <= 6010; code++ {
		if apierr.Name(code) == "" {
			t.Fatalf("Name(%d) returned empty string", code)
		}
	}
}

func TestError_render(t *testing.T) {
	e := apierr.New(apierr.CodeShipInTransit, "Ship in transit")
	want := "SpaceTraders API error (code=shipInTransitError): Ship in transit"
	if got := e.Error(); got != want {
		t.Errorf("Error():\n got %q\nwant %q", got, want)
	}
}

func TestError_renderWithDetail(t *testing.T) {
	var e apierr.Error
	raw := `{"message":"Cargo missing","code":4218,"data":{"symbol":["IRON_ORE","COPPER_ORE"]}}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	want := "SpaceTraders API error (code=shipCargoMissingError): Cargo missing\nAdditional info: IRON_ORE COPPER_ORE"
	if got := e.Error(); got != want {
		t.Errorf("Error():\n got %q\nwant %q", got, want)
	}
}

func TestError_renderEmptySymbolDetail(t *testing.T) {
	var e apierr.Error
	raw := `{"message":"Cargo missing","code":4218,"data":{"symbol":[]}}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	want := "SpaceTraders API error (code=shipCargoMissingError): Cargo missing\nAdditional info: "
	if got := e.Error(); got != want {
		t.Errorf("Error():\n got %q\nwant %q", got, want)
	}
	out, err := json.Marshal(e.Data)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"symbol":[]}` {
		t.Errorf("round trip: got %s", out)
	}
}

func TestDetail_nonSymbolPayload(t *testing.T) {
	var e apierr.Error
	raw := `{"message":"cooling down","code":4000,"data":{"cooldown":{"remainingSeconds":12}}}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	if e.Data == nil {
		t.Fatal("expected detail to be kept")
	}
	if len(e.Data.Symbol) != 0 {
		t.Errorf("Symbol: got %v, want empty", e.Data.Symbol)
	}
	out, err := json.Marshal(e.Data)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"cooldown":{"remainingSeconds":12}}` {
		t.Errorf("round trip: got %s", out)
	}
}

func TestIs_matchesByCode(t *testing.T) {
	err := fmt.Errorf("navigate: %w", apierr.New(apierr.CodeShipInTransit, "Ship in transit"))

	if !apierr.Is(err, apierr.CodeShipInTransit) {
		t.Error("apierr.Is: expected match")
	}
	if apierr.Is(err, apierr.CodeShipCargoFull) {
		t.Error("apierr.Is: unexpected match on different code")
	}
	if !errors.Is(err, apierr.New(apierr.CodeShipInTransit, "")) {
		t.Error("errors.Is: expected match on code")
	}
	if got := apierr.CodeOf(err); got != apierr.CodeShipInTransit {
		t.Errorf("CodeOf: got %d", got)
	}
	if got := apierr.CodeOf(errors.New("plain")); got != 0 {
		t.Errorf("CodeOf(plain): got %d, want 0", got)
	}
}

func TestBadReply_unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	e := apierr.BadReply("badReplyError: malformed response", cause)
	if e.Code != apierr.CodeBadReply {
		t.Errorf("Code: got %d, want %d", e.Code, apierr.CodeBadReply)
	}
	if !errors.Is(e, cause) {
		t.Error("expected BadReply to wrap its cause")
	}
}

func TestIncomplete(t *testing.T) {
	e := apierr.Incomplete()
	if e.Code != 6000 || e.Message != "Server did not return expected fields 'data' or 'error'" || e.Data != nil {
		t.Errorf("unexpected incomplete error: %+v", e)
	}
}
