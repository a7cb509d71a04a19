package mockapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jmerrifield20/spacetraders/internal/metrics"
	"github.com/jmerrifield20/spacetraders/internal/mockapi"
	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/client"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeClock is a settable clock shared by the server and the test.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

type env struct {
	srv   *mockapi.Server
	ts    *httptest.Server
	clock *fakeClock
	c     *client.Client
}

func newEnv(t *testing.T, cfg mockapi.Config) *env {
	t.Helper()
	clock := newFakeClock()
	cfg.Clock = clock.Now
	srv, err := mockapi.New(cfg, nil)
	if err != nil {
		t.Fatalf("mockapi.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})
	c, err := client.New(client.WithBaseURL(ts.URL + "/v2"))
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	return &env{srv: srv, ts: ts, clock: clock, c: c}
}

// registered returns an env with agent BADGER already registered on e.c.
func registered(t *testing.T) *env {
	t.Helper()
	e := newEnv(t, mockapi.Config{})
	if _, err := e.c.Register(context.Background(), "badger", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return e
}

func wantCode(t *testing.T, err error, code int) *apierr.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code %d, got nil", code)
	}
	e, ok := apierr.As(err)
	if !ok {
		t.Fatalf("error %v is not an *apierr.Error", err)
	}
	if e.Code != code {
		t.Fatalf("code = %d (%s), want %d", e.Code, e.Message, code)
	}
	return e
}

func TestRegister(t *testing.T) {
	e := newEnv(t, mockapi.Config{})
	ctx := context.Background()

	res, err := e.c.Register(ctx, "badger", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Token == "" || e.c.Token() != res.Token {
		t.Fatal("token not stored on the client")
	}
	if res.Agent == nil || res.Agent.Symbol != "BADGER" || res.Agent.Credits != 175000 {
		t.Errorf("Agent = %+v", res.Agent)
	}
	if res.Ship == nil || res.Ship.Symbol != "BADGER-1" || res.Ship.Nav.Status != schema.NavStatusDocked {
		t.Errorf("Ship = %+v", res.Ship)
	}
	if res.Contract == nil || res.Contract.Accepted {
		t.Errorf("Contract = %+v", res.Contract)
	}
	if res.Faction == nil || res.Faction.Symbol != schema.FactionCosmic {
		t.Errorf("Faction = %+v", res.Faction)
	}

	claims, err := client.ParseToken(res.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Identifier != "BADGER" || claims.Version != mockapi.Version {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ResetDate != "2026-03-14" {
		t.Errorf("ResetDate = %q, want 2026-03-14", claims.ResetDate)
	}

	agent, err := e.c.MyAgent(ctx)
	if err != nil {
		t.Fatalf("MyAgent: %v", err)
	}
	if agent.ShipCount == nil || *agent.ShipCount != 2 {
		t.Errorf("ShipCount = %v, want 2", agent.ShipCount)
	}
}

func TestRegister_Rejected(t *testing.T) {
	e := registered(t)
	ctx := context.Background()
	other := client.MustNew(client.WithBaseURL(e.ts.URL + "/v2"))

	_, err := other.Register(ctx, "BADGER", schema.FactionCosmic)
	ae := wantCode(t, err, apierr.CodeRegisterAgentExists)
	if ae.Name() != "registerAgentExistsError" {
		t.Errorf("Name = %q", ae.Name())
	}
	if ae.Data == nil || len(ae.Data.Symbol) != 1 || ae.Data.Symbol[0] != "BADGER" {
		t.Errorf("Data = %+v", ae.Data)
	}
	if other.Token() != "" {
		t.Error("failed registration must not set a token")
	}

	_, err = other.Register(ctx, "AB", "")
	ae = wantCode(t, err, 422)
	if ae.Name() != apierr.UnknownName {
		t.Errorf("Name = %q, want %q", ae.Name(), apierr.UnknownName)
	}
	if ae.Data == nil || !strings.Contains(string(ae.Data.Raw), `"symbol"`) {
		t.Errorf("Data = %+v, want validation detail keyed by symbol", ae.Data)
	}

	_, err = other.Register(ctx, "WALRUS", "GALACTIC")
	wantCode(t, err, 422)
}

func TestRequireToken(t *testing.T) {
	e := registered(t)
	ctx := context.Background()

	foreign, err := mockapi.NewTokenIssuer([]byte("another-key"), mockapi.Version, e.clock.Now())
	if err != nil {
		t.Fatal(err)
	}
	forged, err := foreign.Issue("BADGER")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
		code  int
	}{
		{"no token", "", apierr.CodeTokenEmpty},
		{"garbage", "not-a-jwt", apierr.CodeInvalidTokenRequest},
		{"wrong key", forged, apierr.CodeInvalidTokenRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := client.MustNew(client.WithBaseURL(e.ts.URL+"/v2"), client.WithToken(tc.token))
			_, err := c.MyAgent(ctx)
			wantCode(t, err, tc.code)
		})
	}
}

func TestFlightExtractionAndCooldown(t *testing.T) {
	e := registered(t)
	ctx := context.Background()
	const ship = "BADGER-1"
	const field = "X1-DF55-17335A"

	// Docked ships cannot navigate.
	_, err := e.c.NavigateShip(ctx, ship, field)
	wantCode(t, err, apierr.CodeShipNotInOrbit)

	if _, err := e.c.OrbitShip(ctx, ship); err != nil {
		t.Fatalf("OrbitShip: %v", err)
	}
	nav, err := e.c.NavigateShip(ctx, ship, field)
	if err != nil {
		t.Fatalf("NavigateShip: %v", err)
	}
	// (10,5) to (-30,41) is 54 units: 54 fuel, 54*25/30+15 = 60 seconds.
	if nav.Fuel.Current != 346 || nav.Fuel.Consumed == nil || nav.Fuel.Consumed.Amount != 54 {
		t.Errorf("Fuel = %+v", nav.Fuel)
	}
	if got := nav.Nav.Route.Arrival.Sub(nav.Nav.Route.DepartureTime); got != 60*time.Second {
		t.Errorf("flight time = %v, want 60s", got)
	}
	if nav.Nav.Status != schema.NavStatusInTransit || nav.Nav.Route.Destination.Kind != schema.WaypointTypeAsteroidField {
		t.Errorf("Nav = %+v", nav.Nav)
	}

	_, err = e.c.DockShip(ctx, ship)
	ae := wantCode(t, err, apierr.CodeShipInTransit)
	if ae.Data == nil || !strings.Contains(string(ae.Data.Raw), `"secondsToArrival":60`) {
		t.Errorf("Data = %+v", ae.Data)
	}

	e.clock.Advance(61 * time.Second)
	sn, err := e.c.GetShipNav(ctx, ship)
	if err != nil {
		t.Fatalf("GetShipNav: %v", err)
	}
	if sn.Status != schema.NavStatusInOrbit || sn.WaypointSymbol != field {
		t.Errorf("after arrival Nav = %+v", sn)
	}

	cd, err := e.c.GetShipCooldown(ctx, ship)
	if err != nil || cd != nil {
		t.Fatalf("GetShipCooldown before extracting = %+v, %v; want nil, nil", cd, err)
	}

	ex, err := e.c.ExtractResources(ctx, ship, nil)
	if err != nil {
		t.Fatalf("ExtractResources: %v", err)
	}
	if ex.Extraction.Yield.Symbol != schema.TradeIronOre || ex.Extraction.Yield.Units != 10 {
		t.Errorf("Yield = %+v", ex.Extraction.Yield)
	}
	if ex.Cargo.Units != 10 || len(ex.Cargo.Inventory) != 1 {
		t.Errorf("Cargo = %+v", ex.Cargo)
	}
	if ex.Cooldown.TotalSeconds != 70 {
		t.Errorf("Cooldown = %+v", ex.Cooldown)
	}

	_, err = e.c.ExtractResources(ctx, ship, nil)
	wantCode(t, err, apierr.CodeCooldownConflict)

	e.clock.Advance(30 * time.Second)
	cd, err = e.c.GetShipCooldown(ctx, ship)
	if err != nil {
		t.Fatalf("GetShipCooldown: %v", err)
	}
	if cd == nil || cd.RemainingSeconds != 40 {
		t.Fatalf("Cooldown = %+v, want 40s remaining", cd)
	}

	e.clock.Advance(40 * time.Second)
	cd, err = e.c.GetShipCooldown(ctx, ship)
	if err != nil || cd != nil {
		t.Fatalf("GetShipCooldown after expiry = %+v, %v; want nil, nil", cd, err)
	}

	survey := &schema.Survey{
		Signature: "X1-DF55-17335A-BD2F6D",
		Symbol:    "X1-DF55-69207D",
		Deposits:  []schema.SurveyDeposit{{Symbol: "COPPER_ORE"}},
	}
	_, err = e.c.ExtractResources(ctx, ship, survey)
	wantCode(t, err, apierr.CodeShipSurveyVerification)

	survey.Symbol = field
	ex, err = e.c.ExtractResources(ctx, ship, survey)
	if err != nil {
		t.Fatalf("ExtractResources with survey: %v", err)
	}
	if ex.Extraction.Yield.Symbol != schema.TradeCopperOre {
		t.Errorf("surveyed yield = %s, want COPPER_ORE", ex.Extraction.Yield.Symbol)
	}
}

func TestNavigate_Rejections(t *testing.T) {
	e := registered(t)
	ctx := context.Background()
	if _, err := e.c.OrbitShip(ctx, "BADGER-1"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		dest string
		code int
	}{
		{"X1-DF55-20250Z", apierr.CodeNavigateSameDestination},
		{"X1-KS52-51225B", apierr.CodeNavigateOutsideSystem},
		{"X1-DF55-00000Q", apierr.CodeNavigateInvalidDestination},
	}
	for _, tc := range tests {
		t.Run(tc.dest, func(t *testing.T) {
			_, err := e.c.NavigateShip(ctx, "BADGER-1", tc.dest)
			wantCode(t, err, tc.code)
		})
	}

	_, err := e.c.GetShip(ctx, "BADGER-9")
	wantCode(t, err, 404)
}

func TestTradeAndContract(t *testing.T) {
	e := registered(t)
	ctx := context.Background()
	const ship = "BADGER-1"

	page, err := e.c.ListContracts(ctx, client.Pagination{})
	if err != nil {
		t.Fatalf("ListContracts: %v", err)
	}
	if len(page.Data) != 1 || page.Meta.Total != 1 {
		t.Fatalf("contracts = %+v", page)
	}
	id := page.Data[0].ID

	_, err = e.c.SellCargo(ctx, ship, schema.TradeIronOre, 1)
	wantCode(t, err, apierr.CodeShipCargoMissing)

	buy, err := e.c.PurchaseCargo(ctx, ship, schema.TradeIronOre, 40)
	if err != nil {
		t.Fatalf("PurchaseCargo: %v", err)
	}
	if buy.Transaction.TotalPrice != 40*48 || buy.Agent.Credits != 175000-1920 {
		t.Errorf("purchase = %+v / credits %d", buy.Transaction, buy.Agent.Credits)
	}
	if buy.Transaction.Kind != schema.TransactionPurchase {
		t.Errorf("Kind = %s", buy.Transaction.Kind)
	}

	_, err = e.c.PurchaseCargo(ctx, ship, schema.TradeIronOre, 1)
	wantCode(t, err, apierr.CodeShipCargoExceedsLimit)

	_, err = e.c.DeliverContract(ctx, id, ship, schema.TradeIronOre, 40)
	wantCode(t, err, apierr.CodeContractNotAccepted)

	acc, err := e.c.AcceptContract(ctx, id)
	if err != nil {
		t.Fatalf("AcceptContract: %v", err)
	}
	if !acc.Contract.Accepted || acc.Agent.Credits != 175000-1920+8000 {
		t.Errorf("accept = %+v", acc)
	}
	_, err = e.c.AcceptContract(ctx, id)
	wantCode(t, err, apierr.CodeAcceptContractConflict)

	del, err := e.c.DeliverContract(ctx, id, ship, schema.TradeIronOre, 40)
	if err != nil {
		t.Fatalf("DeliverContract: %v", err)
	}
	if got := del.Contract.Terms.Deliver[0].UnitsFulfilled; got != 40 {
		t.Errorf("UnitsFulfilled = %d, want 40", got)
	}
	if del.Cargo.Units != 0 || len(del.Cargo.Inventory) != 0 {
		t.Errorf("Cargo = %+v", del.Cargo)
	}

	_, err = e.c.FulfillContract(ctx, id)
	wantCode(t, err, apierr.CodeFulfillContractDelivery)

	if _, err := e.c.PurchaseCargo(ctx, ship, schema.TradeIronOre, 10); err != nil {
		t.Fatalf("PurchaseCargo: %v", err)
	}
	if _, err := e.c.DeliverContract(ctx, id, ship, schema.TradeIronOre, 10); err != nil {
		t.Fatalf("DeliverContract: %v", err)
	}
	done, err := e.c.FulfillContract(ctx, id)
	if err != nil {
		t.Fatalf("FulfillContract: %v", err)
	}
	if want := int64(175000 - 1920 + 8000 - 480 + 40000); done.Agent.Credits != want {
		t.Errorf("Credits = %d, want %d", done.Agent.Credits, want)
	}
	if !done.Contract.Fulfilled {
		t.Error("contract not fulfilled")
	}
}

func TestTrade_NotDocked(t *testing.T) {
	e := registered(t)
	ctx := context.Background()
	if _, err := e.c.OrbitShip(ctx, "BADGER-1"); err != nil {
		t.Fatal(err)
	}
	_, err := e.c.PurchaseCargo(ctx, "BADGER-1", schema.TradeFuel, 1)
	ae := wantCode(t, err, 4244)
	if ae.Name() != apierr.UnknownName {
		t.Errorf("Name = %q", ae.Name())
	}
}

func TestRefuel(t *testing.T) {
	e := registered(t)
	ctx := context.Background()
	const ship = "BADGER-1"

	if _, err := e.c.OrbitShip(ctx, ship); err != nil {
		t.Fatal(err)
	}
	// Out to the asteroid field and back to the moon: 54 fuel each way.
	for _, dest := range []string{"X1-DF55-17335A", "X1-DF55-69207D"} {
		if _, err := e.c.NavigateShip(ctx, ship, dest); err != nil {
			t.Fatalf("NavigateShip %s: %v", dest, err)
		}
		e.clock.Advance(61 * time.Second)
	}

	_, err := e.c.RefuelShip(ctx, ship)
	wantCode(t, err, apierr.CodeShipRefuelDocked)

	if _, err := e.c.DockShip(ctx, ship); err != nil {
		t.Fatalf("DockShip: %v", err)
	}
	res, err := e.c.RefuelShip(ctx, ship)
	if err != nil {
		t.Fatalf("RefuelShip: %v", err)
	}
	if res.Fuel.Current != 400 {
		t.Errorf("Fuel = %+v, want a full tank", res.Fuel)
	}
	// 108 fuel is two market units at the moon's price of 80.
	tx := res.Transaction
	if tx == nil || tx.TradeSymbol != "FUEL" || tx.Units != 2 || tx.TotalPrice != 160 {
		t.Errorf("Transaction = %+v", tx)
	}
	if res.Agent.Credits != 175000-160 {
		t.Errorf("Credits = %d", res.Agent.Credits)
	}
}

func TestMarketVisibility(t *testing.T) {
	e := registered(t)
	ctx := context.Background()

	m, err := e.c.GetMarket(ctx, "X1-DF55-20250Z")
	if err != nil {
		t.Fatalf("GetMarket: %v", err)
	}
	if g, ok := m.Good(schema.TradeFuel); !ok || g.PurchasePrice != 72 {
		t.Errorf("fuel price = %+v, %v", g, ok)
	}

	remote, err := e.c.GetMarket(ctx, "X1-KS52-51225B")
	if err != nil {
		t.Fatalf("GetMarket remote: %v", err)
	}
	if remote.TradeGoods != nil || remote.Transactions != nil {
		t.Errorf("remote market leaked prices: %+v", remote)
	}
	if len(remote.Exports) != 1 {
		t.Errorf("Exports = %+v", remote.Exports)
	}

	yard, err := e.c.GetShipyard(ctx, "X1-DF55-20250Z")
	if err != nil {
		t.Fatalf("GetShipyard: %v", err)
	}
	if len(yard.Ships) != 2 || len(yard.ShipTypes) != 2 {
		t.Errorf("Shipyard = %+v", yard)
	}

	_, err = e.c.GetShipyard(ctx, "X1-DF55-17335A")
	wantCode(t, err, 404)

	gate, err := e.c.GetJumpGate(ctx, "X1-DF55-91710F")
	if err != nil {
		t.Fatalf("GetJumpGate: %v", err)
	}
	if len(gate.ConnectedSystems) != 1 || gate.ConnectedSystems[0].Symbol != "X1-KS52" {
		t.Errorf("JumpGate = %+v", gate)
	}
}

func TestPurchaseShip(t *testing.T) {
	e := registered(t)
	ctx := context.Background()

	res, err := e.c.PurchaseShip(ctx, schema.ShipTypeMiningDrone, "X1-DF55-20250Z")
	if err != nil {
		t.Fatalf("PurchaseShip: %v", err)
	}
	if res.Ship.Symbol != "BADGER-3" || res.Ship.Registration.Role != schema.RoleExcavator {
		t.Errorf("Ship = %+v", res.Ship.Registration)
	}
	if res.Agent.Credits != 175000-46000 || res.Transaction.Price != 46000 {
		t.Errorf("credits %d, price %d", res.Agent.Credits, res.Transaction.Price)
	}

	page, err := e.c.ListShips(ctx, client.Pagination{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("ListShips: %v", err)
	}
	if page.Meta.Total != 3 || len(page.Data) != 1 || page.Data[0].Symbol != "BADGER-3" {
		t.Errorf("page = %+v", page.Meta)
	}

	_, err = e.c.PurchaseShip(ctx, schema.ShipTypeMiningDrone, "X1-KS52-51225B")
	wantCode(t, err, 404)
}

func TestSystemsPagination(t *testing.T) {
	e := registered(t)
	ctx := context.Background()

	page, err := e.c.ListSystems(ctx, client.Pagination{Page: 2, Limit: 1})
	if err != nil {
		t.Fatalf("ListSystems: %v", err)
	}
	if page.Meta.Total != 2 || page.Meta.Pages() != 2 || page.Data[0].Symbol != "X1-KS52" {
		t.Errorf("page = %+v", page)
	}

	beyond, err := e.c.ListWaypoints(ctx, "X1-DF55", client.Pagination{Page: 9, Limit: 20})
	if err != nil {
		t.Fatalf("ListWaypoints: %v", err)
	}
	if beyond.Data == nil || len(beyond.Data) != 0 || beyond.Meta.Total != 4 {
		t.Errorf("page beyond the end = %+v", beyond)
	}

	_, err = e.c.ListWaypoints(ctx, "X1-DF55", client.Pagination{Limit: 50})
	wantCode(t, err, 422)

	wp, err := e.c.GetWaypoint(ctx, "X1-DF55-20250Z")
	if err != nil {
		t.Fatalf("GetWaypoint: %v", err)
	}
	if !wp.HasTrait(schema.TraitShipyard) || wp.Faction == nil {
		t.Errorf("Waypoint = %+v", wp)
	}
}

func TestSystemsPagination_hugePage(t *testing.T) {
	e := registered(t)
	ctx := context.Background()

	const page = 1 << 62
	res, err := e.c.ListSystems(ctx, client.Pagination{Page: page, Limit: 4})
	if err != nil {
		t.Fatalf("ListSystems: %v", err)
	}
	if res.Data == nil || len(res.Data) != 0 || res.Meta.Total != 2 || res.Meta.Page != page {
		t.Errorf("page = %+v", res)
	}

	req, _ := http.NewRequest(http.MethodGet, e.ts.URL+"/v2/systems?page=4611686018427387904&limit=4", nil)
	req.Header.Set("Authorization", "Bearer "+e.c.Token())
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"data":[]`) {
		t.Errorf("status = %d, body = %s", resp.StatusCode, body)
	}
}

func TestRawEnvelopes(t *testing.T) {
	m := metrics.New()
	e := newEnv(t, mockapi.Config{Metrics: m})

	resp, err := http.Get(e.ts.URL + "/v2/nowhere")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var env struct {
		Error apierr.Error `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Error.Code != 404 {
		t.Errorf("body = %s (%v)", body, err)
	}

	resp, err = http.Get(e.ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}

	// The client reports into the same registry the server is scraped from.
	observed := client.MustNew(client.WithBaseURL(e.ts.URL+"/v2"), client.WithObserver(m))
	if _, err := observed.Register(context.Background(), "BADGER", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	resp, err = http.Get(e.ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	scrape, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	for _, want := range []string{
		`st_mock_envelopes_total{kind="data",name="none"} 1`,
		`st_mock_envelopes_total{kind="error",name="unknownError"} 1`,
		`st_mock_requests_total{method="POST",path="/v2/register",status="201"} 1`,
		`st_client_calls_total{op="Register",outcome="success"} 1`,
	} {
		if !strings.Contains(string(scrape), want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestRateLimit(t *testing.T) {
	e := newEnv(t, mockapi.Config{RateLimitRPS: 1, RateBurst: 1})
	ctx := context.Background()

	if _, err := e.c.Register(ctx, "BADGER", ""); err != nil {
		t.Fatalf("first request: %v", err)
	}
	_, err := e.c.MyAgent(ctx)
	ae := wantCode(t, err, 429)
	if ae.Data == nil || !strings.Contains(string(ae.Data.Raw), `"limitBurst":1`) {
		t.Errorf("Data = %+v", ae.Data)
	}
	if errors.Is(err, apierr.New(apierr.CodeBadReply, "")) {
		t.Error("a rate limit reply is a server error, not a bad reply")
	}

	// Health checks sit outside the limited group.
	resp, err := http.Get(e.ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	e := newEnv(t, mockapi.Config{CORSOrigins: []string{"http://localhost:3000"}})

	req, _ := http.NewRequest(http.MethodOptions, e.ts.URL+"/v2/my/agent", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
