package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/novmah62/ecommerce-app-apis/internal/clients"
	"github.com/novmah62/ecommerce-app-apis/internal/order"
)

// OrderService is the slice of the orchestrator the handlers need.
type OrderService interface {
	CreateFromCart(ctx context.Context, draft order.Draft) (string, error)
	FindByID(ctx context.Context, id int) (*order.View, error)
	FindAll(ctx context.Context) ([]order.View, error)
	Update(ctx context.Context, o *order.Order) (*order.View, error)
	Delete(ctx context.Context, id int) (string, error)
}

type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var draft order.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Creation fans out to cart + one product call per line; give it room.
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	ack, err := h.svc.CreateFromCart(ctx, draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": ack})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	view, err := h.svc.FindByID(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	// Every order costs four collaborator lookups; no pagination.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	views, err := h.svc.FindAll(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if o.ID <= 0 {
		writeError(w, http.StatusBadRequest, "missing order id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, err := h.svc.Update(ctx, &o)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ack, err := h.svc.Delete(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": ack})
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "orderId")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid orderId")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var remote *clients.RemoteError
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, order.ErrNotFound.Error())
	case errors.Is(err, order.ErrStockUnavailable):
		writeError(w, http.StatusConflict, order.ErrStockUnavailable.Error())
	case errors.As(err, &remote):
		writeError(w, http.StatusBadGateway, remote.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
