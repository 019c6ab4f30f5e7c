package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/novmah62/ecommerce-app-apis/internal/clients"
)

// Gateway is the synchronous facade over the five remote collaborators.
type Gateway interface {
	FetchBuyer(ctx context.Context, buyerID int) (clients.Buyer, error)
	FetchAddress(ctx context.Context, addressID int) (clients.Address, error)
	FetchProduct(ctx context.Context, productID int) (clients.Product, error)
	// FetchPayment is keyed by order id, not by the stored payment token.
	FetchPayment(ctx context.Context, orderID int) (clients.Payment, error)
	// FetchCart returns the buyer's active cart lines; empty means no cart.
	FetchCart(ctx context.Context, buyerID int) ([]clients.CartLine, error)
}

// Publisher emits the OrderCreated event.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, view *View) error
}

// Service drives the order workflows: creation from a cart snapshot and
// hydrated reads, plus plain update and delete.
type Service struct {
	repo    Repository
	gateway Gateway
	builder *Builder
	pub     Publisher
	logger  *log.Logger
}

func NewService(repo Repository, gateway Gateway, pub Publisher, logger *log.Logger) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		builder: NewBuilder(gateway),
		pub:     pub,
		logger:  logger,
	}
}

// CreateFromCart converts the buyer's active cart into a persisted order.
// Nothing is persisted unless every line passes stock validation. Exactly one
// OrderCreated event is emitted per successful call; a failed publish is
// logged and does not fail the already persisted order.
func (s *Service) CreateFromCart(ctx context.Context, draft Draft) (string, error) {
	o := &Order{
		BuyerID:           draft.BuyerID,
		ShippingAddressID: draft.ShippingAddressID,
		BillingAddressID:  draft.BillingAddressID,
		OrderedOn:         time.Now().UTC(),
	}

	// Single fetch; the snapshot is reused for the whole build.
	lines, err := s.gateway.FetchCart(ctx, draft.BuyerID)
	if err != nil {
		return "", asNotFound(err)
	}

	if err := s.builder.Build(ctx, o, lines); err != nil {
		return "", asNotFound(err)
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return "", fmt.Errorf("save order: %w", err)
	}

	view := &View{
		Order:           *o,
		Buyer:           clients.Buyer{ID: o.BuyerID},
		ShippingAddress: clients.Address{ID: o.ShippingAddressID},
		BillingAddress:  clients.Address{ID: o.BillingAddressID},
		// The payment service has no record yet; synthesize one from the
		// generated token and the draft's payment section.
		Payment: clients.Payment{
			ID:      o.PaymentID,
			OrderID: o.ID,
			IsPayed: draft.Payment.IsPayed,
			Status:  draft.Payment.Status,
		},
	}

	if err := s.pub.PublishOrderCreated(ctx, view); err != nil {
		s.logger.Printf("publish OrderCreated for order %d: %v", o.ID, err)
	}

	return "Order saved successfully", nil
}

// FindByID loads the order and enriches it with fresh collaborator data.
func (s *Service) FindByID(ctx context.Context, id int) (*View, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return s.hydrate(ctx, o)
}

// FindAll hydrates every stored order independently, four lookups each.
func (s *Service) FindAll(ctx context.Context) ([]View, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	views := make([]View, 0, len(orders))
	for i := range orders {
		v, err := s.hydrate(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Update overwrites a stored order wholesale and returns the re-hydrated
// result. It does not re-run stock validation or recompute the total; the
// input representation is taken as is. Non-upserting: the order must exist.
func (s *Service) Update(ctx context.Context, o *Order) (*View, error) {
	exists, err := s.repo.ExistsByID(ctx, o.ID)
	if err != nil {
		return nil, fmt.Errorf("check order: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return s.hydrate(ctx, o)
}

// Delete removes the order unconditionally. Deleting an id that does not
// exist is not an error.
func (s *Service) Delete(ctx context.Context, id int) (string, error) {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return "", fmt.Errorf("delete order: %w", err)
	}
	return "Order deleted successfully", nil
}

func (s *Service) hydrate(ctx context.Context, o *Order) (*View, error) {
	buyer, err := s.gateway.FetchBuyer(ctx, o.BuyerID)
	if err != nil {
		return nil, asNotFound(err)
	}
	shipping, err := s.gateway.FetchAddress(ctx, o.ShippingAddressID)
	if err != nil {
		return nil, asNotFound(err)
	}
	billing, err := s.gateway.FetchAddress(ctx, o.BillingAddressID)
	if err != nil {
		return nil, asNotFound(err)
	}
	payment, err := s.gateway.FetchPayment(ctx, o.ID)
	if err != nil {
		return nil, asNotFound(err)
	}

	return &View{
		Order:           *o,
		Buyer:           buyer,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Payment:         payment,
	}, nil
}

// asNotFound translates a collaborator's "entity does not exist" into the
// service-level not-found; transport failures pass through untouched so
// callers can tell the two apart.
func asNotFound(err error) error {
	if errors.Is(err, clients.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
