package order

import "errors"

var (
	// ErrNotFound is returned when an order, or an entity it references on a
	// collaborator, does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrStockUnavailable rejects a whole order when any line asks for more
	// than the product service reports in stock.
	ErrStockUnavailable = errors.New("product is not in stock, please try again later")
)
