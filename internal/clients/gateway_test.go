package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(baseURL string) *Gateway {
	return NewGateway(URLs{
		Buyer:   baseURL,
		Address: baseURL,
		Product: baseURL,
		Payment: baseURL,
		Cart:    baseURL,
	}, &http.Client{Timeout: 2 * time.Second})
}

func TestFetchProduct_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"name":"mug","price":"10.00","quantity":5}`))
	}))
	defer srv.Close()

	p, err := newTestGateway(srv.URL).FetchProduct(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, p.ID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 5, p.Quantity)
}

func TestFetchBuyer_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestGateway(srv.URL).FetchBuyer(context.Background(), 1)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestFetchAddress_ServerErrorIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestGateway(srv.URL).FetchAddress(context.Background(), 1)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "address", remote.Service)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFetchPayment_BrokenBodyIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/by-order/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	_, err := newTestGateway(srv.URL).FetchPayment(context.Background(), 7)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "payment", remote.Service)
}

func TestFetchCart_AbsentCartIsEmptySnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	lines, err := newTestGateway(srv.URL).FetchCart(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFetchCart_ReturnsLinesInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cart/buyer/1", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"product":{"id":2,"price":"5.00","quantity":9},"quantity":1},
			{"product":{"id":1,"price":"10.00","quantity":9},"quantity":2}
		]`))
	}))
	defer srv.Close()

	lines, err := newTestGateway(srv.URL).FetchCart(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Product.ID)
	assert.Equal(t, 1, lines[1].Product.ID)
}

func TestGateway_UnreachableCollaborator(t *testing.T) {
	// Closed server: the port refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestGateway(srv.URL).FetchBuyer(context.Background(), 1)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "buyer", remote.Service)
	assert.NotNil(t, errors.Unwrap(err))
}
