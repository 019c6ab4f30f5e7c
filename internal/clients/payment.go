package clients

import (
	"context"
	"strconv"
)

type PaymentClient struct{ c *Client }

func NewPaymentClient(c *Client) *PaymentClient { return &PaymentClient{c: c} }

// ByOrder looks a payment up by the order it belongs to, not by payment id.
func (pc *PaymentClient) ByOrder(ctx context.Context, orderID int) (Payment, error) {
	var p Payment
	if err := pc.c.getJSON(ctx, "/api/payments/by-order/"+strconv.Itoa(orderID), &p); err != nil {
		return Payment{}, err
	}
	return p, nil
}
