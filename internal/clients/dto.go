package clients

import "github.com/shopspring/decimal"

// Collaborator-owned records. The order service holds foreign ids only and
// fetches these fresh on every hydration.

type Buyer struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Address struct {
	ID         int    `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	// Quantity is the stock available right now.
	Quantity int `json:"quantity"`
}

type Payment struct {
	ID      string `json:"id"`
	OrderID int    `json:"orderId"`
	IsPayed bool   `json:"isPayed"`
	Status  string `json:"status"`
}

// CartLine is one line of a buyer's active cart, carrying the product's price
// at the moment of the call.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
