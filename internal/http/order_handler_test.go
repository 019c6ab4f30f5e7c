package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novmah62/ecommerce-app-apis/internal/clients"
	"github.com/novmah62/ecommerce-app-apis/internal/order"
)

type fakeService struct {
	createFunc  func(ctx context.Context, draft order.Draft) (string, error)
	findByIDFn  func(ctx context.Context, id int) (*order.View, error)
	findAllFunc func(ctx context.Context) ([]order.View, error)
	updateFunc  func(ctx context.Context, o *order.Order) (*order.View, error)
	deleteFunc  func(ctx context.Context, id int) (string, error)
}

func (f *fakeService) CreateFromCart(ctx context.Context, draft order.Draft) (string, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, draft)
	}
	return "Order saved successfully", nil
}

func (f *fakeService) FindByID(ctx context.Context, id int) (*order.View, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &order.View{}, nil
}

func (f *fakeService) FindAll(ctx context.Context) ([]order.View, error) {
	if f.findAllFunc != nil {
		return f.findAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeService) Update(ctx context.Context, o *order.Order) (*order.View, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, o)
	}
	return &order.View{Order: *o}, nil
}

func (f *fakeService) Delete(ctx context.Context, id int) (string, error) {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return "Order deleted successfully", nil
}

func serve(t *testing.T, svc OrderService, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	NewRouter(svc).ServeHTTP(rr, req)
	return rr
}

func TestCreateOrder_Success(t *testing.T) {
	var got order.Draft
	svc := &fakeService{
		createFunc: func(ctx context.Context, draft order.Draft) (string, error) {
			got = draft
			return "Order saved successfully", nil
		},
	}

	rr := serve(t, svc, http.MethodPost, "/api/orders",
		`{"buyerId":1,"shippingAddressId":2,"billingAddressId":3,"payment":{"isPayed":true,"status":"COMPLETED"}}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, got.BuyerID)
	assert.True(t, got.Payment.IsPayed)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Order saved successfully", resp["message"])
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	rr := serve(t, &fakeService{}, http.MethodPost, "/api/orders", `{"buyerId":`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateOrder_StockUnavailable(t *testing.T) {
	svc := &fakeService{
		createFunc: func(ctx context.Context, draft order.Draft) (string, error) {
			return "", order.ErrStockUnavailable
		},
	}

	rr := serve(t, svc, http.MethodPost, "/api/orders", `{"buyerId":1}`)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestCreateOrder_CollaboratorDown(t *testing.T) {
	svc := &fakeService{
		createFunc: func(ctx context.Context, draft order.Draft) (string, error) {
			return "", &clients.RemoteError{Service: "cart", Err: errors.New("connection refused")}
		},
	}

	rr := serve(t, svc, http.MethodPost, "/api/orders", `{"buyerId":1}`)

	require.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetOrder_Success(t *testing.T) {
	svc := &fakeService{
		findByIDFn: func(ctx context.Context, id int) (*order.View, error) {
			return &order.View{Order: order.Order{ID: id, BuyerID: 1}}, nil
		},
	}

	rr := serve(t, svc, http.MethodGet, "/api/orders/7", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp order.View
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 7, resp.Order.ID)
}

func TestGetOrder_InvalidID(t *testing.T) {
	rr := serve(t, &fakeService{}, http.MethodGet, "/api/orders/abc", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := &fakeService{
		findByIDFn: func(ctx context.Context, id int) (*order.View, error) {
			return nil, order.ErrNotFound
		},
	}

	rr := serve(t, svc, http.MethodGet, "/api/orders/99", "")

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "order not found", resp["error"])
}

func TestListOrders_Empty(t *testing.T) {
	svc := &fakeService{
		findAllFunc: func(ctx context.Context) ([]order.View, error) {
			return []order.View{}, nil
		},
	}

	rr := serve(t, svc, http.MethodGet, "/api/orders", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []order.View
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Empty(t, resp)
}

func TestListOrders_ServiceError(t *testing.T) {
	svc := &fakeService{
		findAllFunc: func(ctx context.Context) ([]order.View, error) {
			return nil, errors.New("db down")
		},
	}

	rr := serve(t, svc, http.MethodGet, "/api/orders", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpdateOrder_MissingID(t *testing.T) {
	rr := serve(t, &fakeService{}, http.MethodPut, "/api/orders", `{"buyerId":1}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	svc := &fakeService{
		updateFunc: func(ctx context.Context, o *order.Order) (*order.View, error) {
			return nil, order.ErrNotFound
		},
	}

	rr := serve(t, svc, http.MethodPut, "/api/orders", `{"id":5,"buyerId":1}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateOrder_Success(t *testing.T) {
	rr := serve(t, &fakeService{}, http.MethodPut, "/api/orders", `{"id":5,"buyerId":1}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp order.View
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 5, resp.Order.ID)
}

func TestDeleteOrder_Success(t *testing.T) {
	rr := serve(t, &fakeService{}, http.MethodDelete, "/api/orders/5", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Order deleted successfully", resp["message"])
}

func TestHealthHandler(t *testing.T) {
	rr := serve(t, &fakeService{}, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "order-service", resp["service"])
}
