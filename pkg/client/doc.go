// Package client is the SpaceTraders Go SDK.
//
// It wraps the SpaceTraders v2 REST API in typed calls: every reply envelope
// is decoded into the records of package schema, and every failure surfaces
// as an *apierr.Error carrying the API's numeric code.
//
// # Registering a new agent
//
// Registration needs no token. The returned token is stored on the client
// and is the only credential for the agent, so persist it:
//
//	c, _ := client.New()
//	res, err := c.Register(ctx, "BADGER", schema.FactionCosmic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.SaveToken(os.ExpandEnv("$HOME/.spacetraders/token"), res.Token)
//
// # Connecting as an existing agent
//
//	c, err := client.NewFromTokenFile(
//	    os.ExpandEnv("$HOME/.spacetraders/token"),
//	    client.WithLogger(logger),
//	)
//
// # Handling errors
//
// API errors are branched on by code:
//
//	_, err := c.NavigateShip(ctx, "BADGER-1", "X1-DF55-20250Z")
//	switch {
//	case apierr.Is(err, apierr.CodeShipInTransit):
//	    // wait for arrival
//	case apierr.Is(err, apierr.CodeBadReply):
//	    // the reply could not be decoded; errors.As reaches the cause
//	case err != nil:
//	    // transport failure
//	}
//
// # Pagination
//
// List calls return one page plus its meta block. Request further pages
// explicitly:
//
//	page, _ := c.ListShips(ctx, client.Pagination{Page: 2, Limit: 20})
//	fmt.Println(page.Meta.Pages())
//
// The client does not retry, cache or rate-limit. A 429 from the server is
// returned as the error the server sent.
package client
