package clients

import (
	"context"
	"errors"
	"strconv"
)

type CartClient struct{ c *Client }

func NewCartClient(c *Client) *CartClient { return &CartClient{c: c} }

// LinesByBuyer returns the buyer's active cart lines. An absent cart is not
// an error: the buyer simply has nothing to order, so a 404 maps to an empty
// snapshot.
func (cc *CartClient) LinesByBuyer(ctx context.Context, buyerID int) ([]CartLine, error) {
	var lines []CartLine
	err := cc.c.getJSON(ctx, "/api/cart/buyer/"+strconv.Itoa(buyerID), &lines)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lines, nil
}
