package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/resto_admin/internal/domain"
	"github.com/Gunvolt24/resto_admin/internal/ports"
)

// Проверка соответствия портам приложения.
var (
	_ ports.OrdersAPI = (*Client)(nil)
	_ ports.MenuAPI   = (*Client)(nil)
)

var (
	// ErrUnauthorized — бэкенд вернул 401 (токен истёк или не было логина).
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrUnexpectedStatus — любой другой неожиданный HTTP-статус.
	ErrUnexpectedStatus = errors.New("backend: unexpected status")
)

// Config — параметры подключения к бэкенду ресторана.
type Config struct {
	BaseURL string        // http://host:8000
	Timeout time.Duration // таймаут одного запроса
}

// Client — HTTP-клиент REST API бэкенда. Бэкенд — единственный источник
// истины: клиент ничего не кеширует и не ретраит, неудачный вызов просто
// возвращает ошибку вызывающему.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     ports.Logger

	mu    sync.RWMutex
	token string
}

// NewClient — конструктор.
func NewClient(cfg *Config, log ports.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Login — POST /auth/login; полученный токен подставляется во все
// последующие запросы.
func (c *Client) Login(ctx context.Context, email, password string) error {
	req := map[string]string{"email": email, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
		Token       string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp, http.StatusOK); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return fmt.Errorf("login: %w: пустой токен в ответе", ErrUnexpectedStatus)
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.log.Infof(ctx, "backend login ok user=%s", email)
	return nil
}

// Token — текущий bearer-токен (для рукопожатия канала уведомлений).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ListOrders — GET /api/v1/orders. Заказы с нераспознанным статусом
// пропускаются с предупреждением, остальные загружаются.
func (c *Client) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	var payload ordersPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/orders", nil, &payload, http.StatusOK); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(payload.Orders))
	for _, w := range payload.Orders {
		order, err := w.toDomain()
		if err != nil {
			c.log.Warnf(ctx, "order %s skipped: %v", w.ID, err)
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateOrderStatus — PUT /api/v1/orders/{id}/status.
// estimatedTime в минутах; 0 — поле не передаётся.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.Status, estimatedTime int) error {
	req := statusUpdateRequest{Status: string(status), EstimatedTime: estimatedTime}
	path := fmt.Sprintf("/api/v1/orders/%s/status", id)
	if err := c.doJSON(ctx, http.MethodPut, path, req, nil, http.StatusOK, http.StatusNoContent); err != nil {
		return fmt.Errorf("update order %s status: %w", id, err)
	}
	return nil
}

// CreateOrder — POST /api/v1/orders; id и статус назначает бэкенд.
func (c *Client) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var created wireOrder
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/orders", newCreateOrderRequest(order), &created,
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created.toDomain()
}

// ListMenu — GET /api/v1/menu.
func (c *Client) ListMenu(ctx context.Context) ([]*domain.MenuItem, error) {
	var payload menuPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/menu", nil, &payload, http.StatusOK); err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return payload.Items, nil
}

// CreateMenuItem — POST /api/v1/menu.
func (c *Client) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	var created domain.MenuItem
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/menu", item, &created,
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return &created, nil
}

// UpdateMenuItem — PUT /api/v1/menu/{id}.
func (c *Client) UpdateMenuItem(ctx context.Context, id int, item *domain.MenuItem) (*domain.MenuItem, error) {
	var updated domain.MenuItem
	path := fmt.Sprintf("/api/v1/menu/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, item, &updated, http.StatusOK); err != nil {
		return nil, fmt.Errorf("update menu item %d: %w", id, err)
	}
	return &updated, nil
}

// DeleteMenuItem — DELETE /api/v1/menu/{id}.
func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/v1/menu/%d", id)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusOK, http.StatusNoContent); err != nil {
		return fmt.Errorf("delete menu item %d: %w", id, err)
	}
	return nil
}

// doJSON — общий путь запроса: сериализация тела, bearer-авторизация,
// проверка статуса, декодирование ответа.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, wantStatus ...int) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	if !statusExpected(resp.StatusCode, wantStatus) {
		return fmt.Errorf("%s %s: %w %d", method, path, ErrUnexpectedStatus, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func statusExpected(code int, want []int) bool {
	for _, w := range want {
		if code == w {
			return true
		}
	}
	return false
}
