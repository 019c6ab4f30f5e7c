package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/novmah62/ecommerce-app-apis/internal/clients"
)

// ReviewStatus tracks moderation of a single order line.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// ItemStatus tracks fulfilment of a single order line.
type ItemStatus string

const (
	ItemOrdered   ItemStatus = "ORDERED"
	ItemShipped   ItemStatus = "SHIPPED"
	ItemDelivered ItemStatus = "DELIVERED"
	ItemCancelled ItemStatus = "CANCELLED"
)

type Item struct {
	ID           int          `json:"id"`
	ProductID    int          `json:"productId"`
	Quantity     int          `json:"quantity"`
	ReviewStatus ReviewStatus `json:"reviewStatus"`
	OrderStatus  ItemStatus   `json:"orderStatus"`
}

// Order is the persisted purchase record. It owns its items; buyer, addresses
// and payment are referenced by id and owned by their collaborator services.
type Order struct {
	ID                int             `json:"id"`
	BuyerID           int             `json:"buyerId"`
	ShippingAddressID int             `json:"shippingAddressId"`
	BillingAddressID  int             `json:"billingAddressId"`
	PaymentID         string          `json:"paymentId"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	OrderedOn         time.Time       `json:"orderedOn"`
	Items             []Item          `json:"items"`
}

// PaymentDraft is the payment section of an incoming order request. The
// payment record itself is owned by the payment service; at creation time the
// order service only synthesizes one for the response and the emitted event.
type PaymentDraft struct {
	IsPayed bool   `json:"isPayed"`
	Status  string `json:"status"`
}

// Draft is the caller's order request before the cart has been consulted.
type Draft struct {
	BuyerID           int          `json:"buyerId"`
	ShippingAddressID int          `json:"shippingAddressId"`
	BillingAddressID  int          `json:"billingAddressId"`
	Payment           PaymentDraft `json:"payment"`
}

// View is an order enriched with collaborator data, assembled on demand for
// responses and for the OrderCreated event. Never persisted as a unit.
type View struct {
	Order           Order           `json:"order"`
	Buyer           clients.Buyer   `json:"buyer"`
	ShippingAddress clients.Address `json:"shippingAddress"`
	BillingAddress  clients.Address `json:"billingAddress"`
	Payment         clients.Payment `json:"payment"`
}
