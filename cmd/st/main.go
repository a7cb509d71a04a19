// Command st is a command-line client for the SpaceTraders API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmerrifield20/spacetraders/internal/config"
	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/client"
	"github.com/jmerrifield20/spacetraders/pkg/envelope"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// version is overridden via -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile      string
	baseURL      string
	token        string
	outputFormat string
	debug        bool

	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "st",
	Short: "SpaceTraders API client",
	Long: `st talks to the SpaceTraders v2 API.

Register an agent once; the token is saved and reused by later commands:

  st register BADGER --faction COSMIC
  st ships
  st navigate BADGER-1 X1-DF55-17335A

Settings come from ~/.spacetraders/config.yaml and ST_* environment
variables, e.g. ST_API_BASE_URL=http://localhost:8089/v2 for a local stmock.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, _, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if baseURL == "" {
			baseURL = cfg.API.BaseURL
		}
		switch outputFormat {
		case "text", "json":
		default:
			return fmt.Errorf("unknown --format %q: want text or json", outputFormat)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.spacetraders/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default https://api.spacetraders.io/v2)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "agent token (default: agent.token, then agent.token_file)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every API call to stderr")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(shipsCmd)
	rootCmd.AddCommand(orbitCmd)
	rootCmd.AddCommand(dockCmd)
	rootCmd.AddCommand(navigateCmd)
	rootCmd.AddCommand(contractsCmd)
	rootCmd.AddCommand(waypointsCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

// newClient builds an API client from flags and config. Commands that act
// as an agent pass authed; the token is then required.
func newClient(authed bool) (*client.Client, error) {
	logger := zap.NewNop()
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
		logger = l
	}

	opts := []client.Option{
		client.WithBaseURL(baseURL),
		client.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		client.WithLogger(logger),
	}
	if authed {
		tok, err := resolveToken()
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithToken(tok))
	}
	return client.New(opts...)
}

func resolveToken() (string, error) {
	if token != "" {
		return token, nil
	}
	if cfg.Agent.Token != "" {
		return cfg.Agent.Token, nil
	}
	tok, err := client.LoadToken(cfg.Agent.TokenFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("no agent token: run st register or set --token")
		}
		return "", err
	}
	return tok, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPageJSON[T any](w io.Writer, page *envelope.Page[T]) error {
	return printJSON(w, struct {
		Data T           `json:"data"`
		Meta schema.Meta `json:"meta"`
	}{page.Data, page.Meta})
}

// describe renders API errors on one line for terminal output.
func describe(op string, err error) error {
	if e, ok := apierr.As(err); ok {
		return fmt.Errorf("%s: %s [%d %s]", op, e.Message, e.Code, e.Name())
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ── register ─────────────────────────────────────────────────────────────────

var (
	regFaction string
	regNoSave  bool
)

var registerCmd = &cobra.Command{
	Use:   "register <SYMBOL>",
	Short: "Register a new agent and save its token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := cfg.Agent.Symbol
		if len(args) == 1 {
			symbol = args[0]
		}
		if symbol == "" {
			return errors.New("agent symbol required: st register <SYMBOL>")
		}
		faction := regFaction
		if faction == "" {
			faction = cfg.Agent.Faction
		}
		fs, err := schema.ParseFactionSymbol(strings.ToUpper(faction))
		if err != nil {
			return fmt.Errorf("--faction: %w", err)
		}

		c, err := newClient(false)
		if err != nil {
			return err
		}
		res, err := c.Register(cmd.Context(), symbol, fs)
		if err != nil {
			return describe("register", err)
		}
		if !regNoSave {
			if err := client.SaveToken(cfg.Agent.TokenFile, res.Token); err != nil {
				return err
			}
		}

		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printJSON(w, res)
		}
		fmt.Fprintf(w, "✓ Agent %s registered\n\n", strings.ToUpper(symbol))
		if a := res.Agent; a != nil {
			fmt.Fprintf(w, "  Headquarters: %s\n", a.Headquarters)
			fmt.Fprintf(w, "  Credits:      %d\n", a.Credits)
		}
		if res.Ship != nil {
			fmt.Fprintf(w, "  Ship:         %s\n", res.Ship.Symbol)
		}
		if res.Contract != nil {
			fmt.Fprintf(w, "  Contract:     %s\n", res.Contract.ID)
		}
		if !regNoSave {
			fmt.Fprintf(w, "\nToken saved to %s\n", cfg.Agent.TokenFile)
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&regFaction, "faction", "", "Starting faction (default agent.faction, COSMIC)")
	registerCmd.Flags().BoolVar(&regNoSave, "no-save", false, "Do not write the token to agent.token_file")
}

// ── agent ────────────────────────────────────────────────────────────────────

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Show the current agent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true)
		if err != nil {
			return err
		}
		a, err := c.MyAgent(cmd.Context())
		if err != nil {
			return describe("agent", err)
		}

		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printJSON(w, a)
		}
		fmt.Fprintf(w, "Symbol:       %s\n", a.Symbol)
		fmt.Fprintf(w, "Headquarters: %s\n", a.Headquarters)
		fmt.Fprintf(w, "Credits:      %d\n", a.Credits)
		if a.StartingFaction != nil {
			fmt.Fprintf(w, "Faction:      %s\n", *a.StartingFaction)
		}
		if a.ShipCount != nil {
			fmt.Fprintf(w, "Ships:        %d\n", *a.ShipCount)
		}
		return nil
	},
}

// ── ships ────────────────────────────────────────────────────────────────────

var (
	listPage  int
	listLimit int
)

var shipsCmd = &cobra.Command{
	Use:   "ships [SHIP]",
	Short: "List the fleet, or show one ship",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		if len(args) == 1 {
			sh, err := c.GetShip(cmd.Context(), args[0])
			if err != nil {
				return describe("get ship", err)
			}
			if outputFormat == "json" {
				return printJSON(w, sh)
			}
			return printShips(w, []schema.Ship{*sh})
		}

		page, err := c.ListShips(cmd.Context(), client.Pagination{Page: listPage, Limit: listLimit})
		if err != nil {
			return describe("list ships", err)
		}
		if outputFormat == "json" {
			return printPageJSON(w, page)
		}
		if err := printShips(w, page.Data); err != nil {
			return err
		}
		fmt.Fprintf(w, "\npage %d of %d (%d ships)\n", page.Meta.Page, page.Meta.Pages(), page.Meta.Total)
		return nil
	},
}

func printShips(w io.Writer, ships []schema.Ship) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tROLE\tSTATUS\tWAYPOINT\tFUEL\tCARGO")
	for _, sh := range ships {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/%d\t%d/%d\n",
			sh.Symbol, sh.Registration.Role, sh.Nav.Status, sh.Nav.WaypointSymbol,
			sh.Fuel.Current, sh.Fuel.Capacity, sh.Cargo.Units, sh.Cargo.Capacity)
	}
	return tw.Flush()
}

func init() {
	for _, cmd := range []*cobra.Command{shipsCmd, contractsCmd, waypointsCmd} {
		cmd.Flags().IntVar(&listPage, "page", 0, "Page to fetch (default 1)")
		cmd.Flags().IntVar(&listLimit, "limit", 0, "Items per page, 1-20 (default 10)")
	}
}

// ── orbit / dock / navigate ──────────────────────────────────────────────────

var orbitCmd = &cobra.Command{
	Use:   "orbit <SHIP>",
	Short: "Move a docked ship into orbit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNav(cmd, "orbit", func(ctx context.Context, c *client.Client) (*schema.NavData, error) {
			return c.OrbitShip(ctx, args[0])
		})
	},
}

var dockCmd = &cobra.Command{
	Use:   "dock <SHIP>",
	Short: "Dock a ship at its current waypoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNav(cmd, "dock", func(ctx context.Context, c *client.Client) (*schema.NavData, error) {
			return c.DockShip(ctx, args[0])
		})
	},
}

func runNav(cmd *cobra.Command, op string, fn func(context.Context, *client.Client) (*schema.NavData, error)) error {
	c, err := newClient(true)
	if err != nil {
		return err
	}
	res, err := fn(cmd.Context(), c)
	if err != nil {
		return describe(op, err)
	}
	w := cmd.OutOrStdout()
	if outputFormat == "json" {
		return printJSON(w, res)
	}
	fmt.Fprintf(w, "%s at %s\n", res.Nav.Status, res.Nav.WaypointSymbol)
	return nil
}

var navigateCmd = &cobra.Command{
	Use:   "navigate <SHIP> <WAYPOINT>",
	Short: "Fly an orbiting ship to a waypoint in the same system",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true)
		if err != nil {
			return err
		}
		res, err := c.NavigateShip(cmd.Context(), args[0], args[1])
		if err != nil {
			return describe("navigate", err)
		}

		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printJSON(w, res)
		}
		route := res.Nav.Route
		fmt.Fprintf(w, "%s → %s\n", route.Departure.Symbol, route.Destination.Symbol)
		fmt.Fprintf(w, "  Arrives: %s (%s)\n", route.Arrival.Format(time.RFC3339),
			route.Arrival.Sub(route.DepartureTime).Round(time.Second))
		fmt.Fprintf(w, "  Fuel:    %d/%d\n", res.Fuel.Current, res.Fuel.Capacity)
		return nil
	},
}

// ── contracts ────────────────────────────────────────────────────────────────

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List the agent's contracts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true)
		if err != nil {
			return err
		}
		page, err := c.ListContracts(cmd.Context(), client.Pagination{Page: listPage, Limit: listLimit})
		if err != nil {
			return describe("list contracts", err)
		}

		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printPageJSON(w, page)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTYPE\tSTATE\tDELIVER\tPAYMENT\tDEADLINE")
		for _, ct := range page.Data {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d+%d\t%s\n",
				ct.ID, ct.Kind, contractState(ct), deliverSummary(ct.Terms.Deliver),
				ct.Terms.Payment.OnAccepted, ct.Terms.Payment.OnFulfilled,
				ct.Terms.Deadline.Format(time.RFC3339))
		}
		return tw.Flush()
	},
}

var contractAcceptCmd = &cobra.Command{
	Use:   "accept <ID>",
	Short: "Accept a contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true)
		if err != nil {
			return err
		}
		res, err := c.AcceptContract(cmd.Context(), args[0])
		if err != nil {
			return describe("accept contract", err)
		}
		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printJSON(w, res)
		}
		fmt.Fprintf(w, "✓ Contract %s accepted\n", res.Contract.ID)
		fmt.Fprintf(w, "  Credits: %d\n", res.Agent.Credits)
		return nil
	},
}

func init() {
	contractsCmd.AddCommand(contractAcceptCmd)
}

func contractState(ct schema.Contract) string {
	switch {
	case ct.Fulfilled:
		return "fulfilled"
	case ct.Accepted:
		return "accepted"
	default:
		return "open"
	}
}

func deliverSummary(goods []schema.ContractDeliverGood) string {
	parts := make([]string, 0, len(goods))
	for _, g := range goods {
		parts = append(parts, fmt.Sprintf("%s %d/%d → %s",
			g.TradeSymbol, g.UnitsFulfilled, g.UnitsRequired, g.DestinationSymbol))
	}
	return strings.Join(parts, ", ")
}

// ── waypoints / market ───────────────────────────────────────────────────────

var waypointType string

var waypointsCmd = &cobra.Command{
	Use:   "waypoints <SYSTEM>",
	Short: "List the waypoints of a system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind schema.WaypointType
		if waypointType != "" {
			k, err := schema.ParseWaypointType(strings.ToUpper(waypointType))
			if err != nil {
				return fmt.Errorf("--type: %w", err)
			}
			kind = k
		}

		c, err := newClient(true)
		if err != nil {
			return err
		}
		page, err := c.ListWaypoints(cmd.Context(), args[0], client.Pagination{Page: listPage, Limit: listLimit})
		if err != nil {
			return describe("list waypoints", err)
		}
		wps := page.Data
		if kind != "" {
			filtered := wps[:0]
			for _, wp := range wps {
				if wp.Kind == kind {
					filtered = append(filtered, wp)
				}
			}
			wps = filtered
		}

		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printJSON(w, wps)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SYMBOL\tTYPE\tX\tY\tTRAITS")
		for _, wp := range wps {
			traits := make([]string, 0, len(wp.Traits))
			for _, t := range wp.Traits {
				traits = append(traits, string(t.Symbol))
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", wp.Symbol, wp.Kind, wp.X, wp.Y, strings.Join(traits, ","))
		}
		return tw.Flush()
	},
}

func init() {
	waypointsCmd.Flags().StringVar(&waypointType, "type", "", "Only show waypoints of this type (e.g. ASTEROID_FIELD)")
}

var marketCmd = &cobra.Command{
	Use:   "market <WAYPOINT>",
	Short: "Show a marketplace; prices need a ship present",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true)
		if err != nil {
			return err
		}
		m, err := c.GetMarket(cmd.Context(), args[0])
		if err != nil {
			return describe("get market", err)
		}

		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printJSON(w, m)
		}
		if m.TradeGoods == nil {
			fmt.Fprintf(w, "%s: no ship present, prices hidden\n", m.Symbol)
			for _, g := range m.Exports {
				fmt.Fprintf(w, "  export %s\n", g.Symbol)
			}
			for _, g := range m.Imports {
				fmt.Fprintf(w, "  import %s\n", g.Symbol)
			}
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "GOOD\tSUPPLY\tBUY\tSELL\tVOLUME")
		for _, g := range m.TradeGoods {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", g.Symbol, g.Supply, g.PurchasePrice, g.SellPrice, g.TradeVolume)
		}
		return tw.Flush()
	},
}

// ── token ────────────────────────────────────────────────────────────────────

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Decode the claims of the agent token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := resolveToken()
		if err != nil {
			return err
		}
		claims, err := client.ParseToken(tok)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if outputFormat == "json" {
			return printJSON(w, claims)
		}
		fmt.Fprintf(w, "Agent:      %s\n", claims.Identifier)
		fmt.Fprintf(w, "Version:    %s\n", claims.Version)
		fmt.Fprintf(w, "Reset date: %s\n", claims.ResetDate)
		if claims.IssuedAt != nil {
			fmt.Fprintf(w, "Issued:     %s\n", claims.IssuedAt.Format(time.RFC3339))
		}
		return nil
	},
}

// ── version ──────────────────────────────────────────────────────────────────

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the st CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "st %s (SpaceTraders client)\n", version)
	},
}
