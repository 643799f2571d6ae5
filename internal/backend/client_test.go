package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/resto_admin/internal/backend"
	"github.com/Gunvolt24/resto_admin/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func newTestClient(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(&backend.Config{BaseURL: srv.URL, Timeout: time.Second}, nopLogger{})
}

func TestLogin_StoresToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "admin@resto.local", req["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "t0ken"})
	}))

	require.NoError(t, c.Login(context.Background(), "admin@resto.local", "secret"))
	require.Equal(t, "t0ken", c.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := c.Login(context.Background(), "admin@resto.local", "wrong")
	require.ErrorIs(t, err, backend.ErrUnauthorized)
	require.Empty(t, c.Token())
}

func TestListOrders_BareArrayAndNumericIDs(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/orders", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":5,"customer_name":"A","items":[{"name":"X","price":100,"quantity":2}],
			 "total_amount":200,"status":"pending","delivery_type":"pickup",
			 "created_at":"2024-01-01T00:00:00Z"},
			{"id":"6","customer_name":"B","items":[],"total_amount":0,"status":"shipped",
			 "delivery_type":"pickup","created_at":"2024-01-01T00:00:00Z"}
		]`))
	}))

	orders, err := c.ListOrders(context.Background())
	require.NoError(t, err)
	// заказ с нераспознанным статусом пропущен
	require.Len(t, orders, 1)
	require.Equal(t, "5", orders[0].ID)
	require.Equal(t, domain.StatusPending, orders[0].Status)
}

func TestListOrders_WrappedPayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"orders":[
			{"id":1,"customer_name":"A","items":[],"total_amount":0,"status":"ready",
			 "delivery_type":"delivery","created_at":"2024-01-01T00:00:00Z"}
		]}`))
	}))

	orders, err := c.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, domain.StatusReady, orders[0].Status)
}

func TestUpdateOrderStatus_Body(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "t0ken"})
			return
		}
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/orders/5/status", r.URL.Path)
		require.Equal(t, "Bearer t0ken", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.Login(context.Background(), "admin@resto.local", "secret"))
	require.NoError(t, c.UpdateOrderStatus(context.Background(), "5", domain.StatusAccepted, 30))
	require.Equal(t, "accepted", got["status"])
	require.Equal(t, float64(30), got["estimated_time"])
}

func TestUpdateOrderStatus_OmitsZeroEstimate(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.UpdateOrderStatus(context.Background(), "5", domain.StatusCancelled, 0))
	_, present := got["estimated_time"]
	require.False(t, present, "estimated_time must be omitted when zero")
}

func TestUpdateOrderStatus_ServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := c.UpdateOrderStatus(context.Background(), "5", domain.StatusAccepted, 0)
	require.ErrorIs(t, err, backend.ErrUnexpectedStatus)
}

func TestCreateOrder(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// id и статус клиент не присылает — их назначает бэкенд
		require.NotContains(t, req, "id")
		require.NotContains(t, req, "status")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"customer_name":"A","items":[],"total_amount":500,
			"status":"pending","delivery_type":"pickup","created_at":"2024-01-01T00:00:00Z"}`))
	}))

	created, err := c.CreateOrder(context.Background(), &domain.Order{
		CustomerName: "A",
		Items:        []domain.Item{},
		TotalAmount:  500,
		DeliveryType: domain.DeliveryPickup,
	})
	require.NoError(t, err)
	require.Equal(t, "7", created.ID)
	require.Equal(t, domain.StatusPending, created.Status)
}

func TestMenuCRUD(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/menu", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":1,"name":"Tea","price":100,"category":"drinks","available":true}]}`))
	})
	mux.HandleFunc("POST /api/v1/menu", func(w http.ResponseWriter, r *http.Request) {
		var item domain.MenuItem
		_ = json.NewDecoder(r.Body).Decode(&item)
		item.ID = 2
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(item)
	})
	mux.HandleFunc("PUT /api/v1/menu/2", func(w http.ResponseWriter, r *http.Request) {
		var item domain.MenuItem
		_ = json.NewDecoder(r.Body).Decode(&item)
		item.ID = 2
		_ = json.NewEncoder(w).Encode(item)
	})
	mux.HandleFunc("DELETE /api/v1/menu/2", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	c := newTestClient(t, mux)
	ctx := context.Background()

	items, err := c.ListMenu(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Tea", items[0].Name)

	created, err := c.CreateMenuItem(ctx, &domain.MenuItem{Name: "Coffee", Price: 150, Category: "drinks"})
	require.NoError(t, err)
	require.Equal(t, 2, created.ID)

	updated, err := c.UpdateMenuItem(ctx, 2, &domain.MenuItem{Name: "Coffee", Price: 180, Category: "drinks"})
	require.NoError(t, err)
	require.Equal(t, int64(180), updated.Price)

	require.NoError(t, c.DeleteMenuItem(ctx, 2))
}
