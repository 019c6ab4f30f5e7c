package clients

import (
	"context"
	"strconv"
)

type ProductClient struct{ c *Client }

func NewProductClient(c *Client) *ProductClient { return &ProductClient{c: c} }

func (pc *ProductClient) ByID(ctx context.Context, productID int) (Product, error) {
	var p Product
	if err := pc.c.getJSON(ctx, "/api/products/"+strconv.Itoa(productID), &p); err != nil {
		return Product{}, err
	}
	return p, nil
}
