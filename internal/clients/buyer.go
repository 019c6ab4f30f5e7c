package clients

import (
	"context"
	"strconv"
)

type BuyerClient struct{ c *Client }

func NewBuyerClient(c *Client) *BuyerClient { return &BuyerClient{c: c} }

func (bc *BuyerClient) ByID(ctx context.Context, buyerID int) (Buyer, error) {
	var b Buyer
	if err := bc.c.getJSON(ctx, "/api/buyers/"+strconv.Itoa(buyerID), &b); err != nil {
		return Buyer{}, err
	}
	return b, nil
}
