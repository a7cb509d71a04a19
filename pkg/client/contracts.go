package client

import (
	"context"
	"net/http"

	"github.com/jmerrifield20/spacetraders/pkg/envelope"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// ListContracts returns one page of the agent's contracts.
func (c *Client) ListContracts(ctx context.Context, p Pagination) (*envelope.Page[[]schema.Contract], error) {
	page, err := callPage[[]schema.Contract](ctx, c, request{
		op:     "ListContracts",
		method: http.MethodGet,
		path:   "/my/contracts",
		query:  p.values(),
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetContract returns a single contract.
func (c *Client) GetContract(ctx context.Context, id string) (*schema.Contract, error) {
	v, err := call[schema.Contract](ctx, c, request{
		op:     "GetContract",
		method: http.MethodGet,
		path:   pathf("/my/contracts/%s", id),
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// AcceptContract accepts a contract and collects its up-front payment.
func (c *Client) AcceptContract(ctx context.Context, id string) (*schema.AgentContractData, error) {
	v, err := call[schema.AgentContractData](ctx, c, request{
		op:     "AcceptContract",
		method: http.MethodPost,
		path:   pathf("/my/contracts/%s/accept", id),
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeliverContract hands over cargo from ship toward a contract's terms.
func (c *Client) DeliverContract(ctx context.Context, id, ship string, good schema.TradeSymbol, units int) (*schema.DeliverContractData, error) {
	body := struct {
		ShipSymbol  string `json:"shipSymbol"`
		TradeSymbol string `json:"tradeSymbol"`
		Units       int    `json:"units"`
	}{ship, string(good), units}
	v, err := call[schema.DeliverContractData](ctx, c, request{
		op:     "DeliverContract",
		method: http.MethodPost,
		path:   pathf("/my/contracts/%s/deliver", id),
		body:   body,
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FulfillContract completes a contract whose deliveries are all made.
func (c *Client) FulfillContract(ctx context.Context, id string) (*schema.AgentContractData, error) {
	v, err := call[schema.AgentContractData](ctx, c, request{
		op:     "FulfillContract",
		method: http.MethodPost,
		path:   pathf("/my/contracts/%s/fulfill", id),
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}
