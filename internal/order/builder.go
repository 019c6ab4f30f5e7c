package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novmah62/ecommerce-app-apis/internal/clients"
)

// ProductFetcher is the slice of the collaborator gateway the builder needs.
type ProductFetcher interface {
	FetchProduct(ctx context.Context, productID int) (clients.Product, error)
}

// Builder turns a cart snapshot into the items and total of an order.
type Builder struct {
	products ProductFetcher
}

func NewBuilder(products ProductFetcher) *Builder {
	return &Builder{products: products}
}

// Build walks the cart lines in gateway order, validating each line against
// current stock and accumulating the total from the snapshot's unit prices.
// Any line over stock rejects the whole order; nothing partial survives.
// An empty snapshot is allowed and yields zero items and a zero total.
func (b *Builder) Build(ctx context.Context, o *Order, lines []clients.CartLine) error {
	items := make([]Item, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		item := Item{
			ProductID:    line.Product.ID,
			Quantity:     line.Quantity,
			ReviewStatus: ReviewPending,
			OrderStatus:  ItemOrdered,
		}

		product, err := b.products.FetchProduct(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if item.Quantity > product.Quantity {
			return ErrStockUnavailable
		}

		items = append(items, item)
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	o.Items = items
	o.TotalAmount = total
	o.PaymentID = uuid.NewString()
	return nil
}
