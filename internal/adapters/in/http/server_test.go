package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapterhttp "applemart/internal/adapters/in/http"
	"applemart/internal/adapters/out/memstore"
	"applemart/internal/core/application/usecases/commands"
	"applemart/internal/core/application/usecases/queries"
	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/core/domain/model/notification"
	"applemart/internal/core/domain/model/order"
	"applemart/internal/core/domain/model/shipper"
	"applemart/internal/core/ports"
	"applemart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderClient serves canned data so the facade can be exercised without
// a backend. ChangeStatus echoes the requested transition back.
type fakeOrderClient struct {
	orders    map[int]*order.Order
	changeErr error
}

func (f *fakeOrderClient) ListOrders(_ context.Context) []*order.Order {
	out := make([]*order.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out
}

func (f *fakeOrderClient) GetOrder(_ context.Context, id int) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

func (f *fakeOrderClient) ChangeStatus(_ context.Context, id int, target order.Status, _ *kernel.UUID) (*order.Order, error) {
	if f.changeErr != nil {
		return nil, f.changeErr
	}
	updated, err := order.RestoreOrder(id, target, order.Attributes{})
	if err != nil {
		return nil, err
	}
	f.orders[id] = updated
	return updated, nil
}

type fakeDirectory struct{ shippers []*shipper.Shipper }

func (f *fakeDirectory) ListShippers(_ context.Context) []*shipper.Shipper {
	return f.shippers
}

type fakeFeed struct{ notifications []*notification.Notification }

func (f *fakeFeed) ListNotifications(_ context.Context) []*notification.Notification {
	return f.notifications
}

func newTestServer(t *testing.T, client ports.OrderClient, store ports.OrderStore) *echo.Echo {
	t.Helper()

	server := adapterhttp.NewServer(
		commands.NewChangeOrderStatusCommandHandler(client, store),
		commands.NewRefreshOrdersCommandHandler(client, store),
		queries.NewGetOrdersQueryHandler(store),
		queries.NewGetOrderQueryHandler(client),
		queries.NewGetShippersQueryHandler(&fakeDirectory{}),
		queries.NewGetNotificationsQueryHandler(&fakeFeed{}),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func seededStore(t *testing.T, orders ...*order.Order) *memstore.OrderStore {
	t.Helper()
	store := memstore.NewOrderStore()
	store.SetAll(orders)
	return store
}

func mustOrder(t *testing.T, id int, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, status, order.Attributes{})
	require.NoError(t, err)
	return o
}

func TestServer_GetOrders(t *testing.T) {
	t.Run("should list orders with status filter", func(t *testing.T) {
		store := seededStore(t,
			mustOrder(t, 1, order.Pending),
			mustOrder(t, 2, order.Shipped),
		)
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, store)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/orders?status=Pending", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body []adapterhttp.OrderSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, 1, body[0].ID)
		assert.Equal(t, "Pending", body[0].Status)
		assert.Equal(t, []string{"Processing", "Cancelled"}, body[0].NextStatuses)
	})

	t.Run("should reject unrecognized status filter", func(t *testing.T) {
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, seededStore(t))

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/orders?status=Bogus", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
	})
}

func TestServer_GetOrder(t *testing.T) {
	t.Run("should return order detail", func(t *testing.T) {
		client := &fakeOrderClient{orders: map[int]*order.Order{
			42: mustOrder(t, 42, order.Processing),
		}}
		e := newTestServer(t, client, seededStore(t))

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/orders/42", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body adapterhttp.OrderDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 42, body.ID)
		assert.Equal(t, "Processing", body.Status)
		assert.Equal(t, []string{"Shipped"}, body.NextStatuses)
	})

	t.Run("should return 404 for missing order", func(t *testing.T) {
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, seededStore(t))

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/orders/999", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for non-integer identifier", func(t *testing.T) {
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, seededStore(t))

		req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/orders/abc", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestServer_ChangeOrderStatus(t *testing.T) {
	t.Run("should perform legal transition", func(t *testing.T) {
		client := &fakeOrderClient{orders: map[int]*order.Order{
			42: mustOrder(t, 42, order.Pending),
		}}
		store := seededStore(t, mustOrder(t, 42, order.Pending))
		e := newTestServer(t, client, store)

		req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/orders/42/status",
			strings.NewReader(`{"newStatus":"Processing"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, nethttp.StatusNoContent, rec.Code)

		updated, ok := store.Get(42)
		require.True(t, ok)
		assert.Equal(t, order.Processing, updated.Status())
	})

	t.Run("should reject illegal transition", func(t *testing.T) {
		store := seededStore(t, mustOrder(t, 42, order.Pending))
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, store)

		req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/orders/42/status",
			strings.NewReader(`{"newStatus":"Completed"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)

		// The stored order is untouched.
		current, ok := store.Get(42)
		require.True(t, ok)
		assert.Equal(t, order.Pending, current.Status())
	})

	t.Run("should reject Shipped without shipper", func(t *testing.T) {
		store := seededStore(t, mustOrder(t, 42, order.Processing))
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, store)

		req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/orders/42/status",
			strings.NewReader(`{"newStatus":"Shipped"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should accept Shipped with shipper GUID", func(t *testing.T) {
		client := &fakeOrderClient{orders: map[int]*order.Order{
			42: mustOrder(t, 42, order.Processing),
		}}
		store := seededStore(t, mustOrder(t, 42, order.Processing))
		e := newTestServer(t, client, store)

		shipperID := kernel.NewUUID()
		req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/orders/42/status",
			strings.NewReader(`{"newStatus":"Shipped","shipperId":"`+shipperID.String()+`"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	})

	t.Run("should reject malformed shipper GUID", func(t *testing.T) {
		store := seededStore(t, mustOrder(t, 42, order.Processing))
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, store)

		req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/orders/42/status",
			strings.NewReader(`{"newStatus":"Shipped","shipperId":"not-a-guid"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should surface backend rejection as bad gateway", func(t *testing.T) {
		client := &fakeOrderClient{
			orders:    map[int]*order.Order{},
			changeErr: assert.AnError,
		}
		store := seededStore(t, mustOrder(t, 42, order.Pending))
		e := newTestServer(t, client, store)

		req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/orders/42/status",
			strings.NewReader(`{"newStatus":"Processing"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusBadGateway, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	t.Run("should report ok", func(t *testing.T) {
		e := newTestServer(t, &fakeOrderClient{orders: map[int]*order.Order{}}, seededStore(t))

		req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusOK, rec.Code)
	})
}
