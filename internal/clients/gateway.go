package clients

import (
	"context"
	"net/http"
)

// Gateway bundles the five collaborator lookups behind one facade. The HTTP
// client is injected so the caller controls timeouts and connection reuse.
type Gateway struct {
	buyers    *BuyerClient
	addresses *AddressClient
	products  *ProductClient
	payments  *PaymentClient
	carts     *CartClient
}

// URLs holds the collaborator base URLs the gateway talks to.
type URLs struct {
	Buyer   string
	Address string
	Product string
	Payment string
	Cart    string
}

func NewGateway(urls URLs, httpClient *http.Client) *Gateway {
	return &Gateway{
		buyers:    NewBuyerClient(NewClient("buyer", urls.Buyer, httpClient)),
		addresses: NewAddressClient(NewClient("address", urls.Address, httpClient)),
		products:  NewProductClient(NewClient("product", urls.Product, httpClient)),
		payments:  NewPaymentClient(NewClient("payment", urls.Payment, httpClient)),
		carts:     NewCartClient(NewClient("cart", urls.Cart, httpClient)),
	}
}

func (g *Gateway) FetchBuyer(ctx context.Context, buyerID int) (Buyer, error) {
	return g.buyers.ByID(ctx, buyerID)
}

func (g *Gateway) FetchAddress(ctx context.Context, addressID int) (Address, error) {
	return g.addresses.ByID(ctx, addressID)
}

func (g *Gateway) FetchProduct(ctx context.Context, productID int) (Product, error) {
	return g.products.ByID(ctx, productID)
}

func (g *Gateway) FetchPayment(ctx context.Context, orderID int) (Payment, error) {
	return g.payments.ByOrder(ctx, orderID)
}

func (g *Gateway) FetchCart(ctx context.Context, buyerID int) ([]CartLine, error) {
	return g.carts.LinesByBuyer(ctx, buyerID)
}
