package events

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/novmah62/ecommerce-app-apis/internal/order"
)

const (
	orderCreatedEventName    = "OrderCreated"
	orderCreatedEventVersion = 1
)

// OrderCreatedPayload is the v1 payload: the fully hydrated order view shared
// with downstream consumers.
type OrderCreatedPayload = order.View

// OrderCreatedEnvelope is the enveloped event structure.
type OrderCreatedEnvelope = EventEnvelope[OrderCreatedPayload]

// BuildOrderCreatedEnvelope wraps a hydrated order view in the event envelope.
func BuildOrderCreatedEnvelope(v *order.View) OrderCreatedEnvelope {
	return OrderCreatedEnvelope{
		EventName:    orderCreatedEventName,
		EventVersion: orderCreatedEventVersion,
		EventID:      uuid.NewString(),
		Producer:     orderServiceName,
		PartitionKey: strconv.Itoa(v.Order.ID),
		OccurredAt:   time.Now().UTC(),
		Payload:      *v,
	}
}
