package clients

import (
	"context"
	"strconv"
)

type AddressClient struct{ c *Client }

func NewAddressClient(c *Client) *AddressClient { return &AddressClient{c: c} }

func (ac *AddressClient) ByID(ctx context.Context, addressID int) (Address, error) {
	var a Address
	if err := ac.c.getJSON(ctx, "/api/addresses/"+strconv.Itoa(addressID), &a); err != nil {
		return Address{}, err
	}
	return a, nil
}
