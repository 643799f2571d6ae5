package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/resto_admin/internal/backend"
	"github.com/Gunvolt24/resto_admin/internal/domain"
	"github.com/Gunvolt24/resto_admin/internal/usecase"
	"github.com/Gunvolt24/resto_admin/pkg/httpx"
)

// listOrders — GET /api/v1/orders?filter=all|pending|active&limit=&offset=.
func (h *Handler) listOrders(c *gin.Context) {
	filter, err := domain.ParseFilter(c.DefaultQuery("filter", "all"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders := h.service.Orders(c.Request.Context(), filter)
	total := len(orders)

	limit, offset := httpx.ParseLimitOffset(c, 50, 200)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":  orders[offset:end],
		"total":   total,
		"pending": h.service.PendingCount(),
	})
}

// getOrder — GET /api/v1/orders/:id.
func (h *Handler) getOrder(c *gin.Context) {
	order, ok := h.service.Order(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// createOrderRequest — тело POST /api/v1/orders (телефонный заказ).
type createOrderRequest struct {
	CustomerName  string        `json:"customer_name" binding:"required"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	Items         []domain.Item `json:"items" binding:"required,min=1"`
	TotalAmount   int64         `json:"total_amount" binding:"required"`
	DeliveryType  string        `json:"delivery_type" binding:"required,oneof=pickup delivery"`
	DeliveryAddr  string        `json:"delivery_address"`
}

// createOrder — POST /api/v1/orders.
func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateOrder(c.Request.Context(), &domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		DeliveryType:  domain.DeliveryType(req.DeliveryType),
		DeliveryAddr:  req.DeliveryAddr,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// acceptOrder — POST /api/v1/orders/:id/accept, тело опционально:
// {"estimated_time": минуты}.
func (h *Handler) acceptOrder(c *gin.Context) {
	var req struct {
		EstimatedTime int `json:"estimated_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EstimatedTime < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estimated_time must be >= 0"})
		return
	}

	if err := h.service.Accept(c.Request.Context(), c.Param("id"), req.EstimatedTime); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": domain.StatusAccepted})
}

// rejectOrder — POST /api/v1/orders/:id/reject.
func (h *Handler) rejectOrder(c *gin.Context) {
	if err := h.service.Reject(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": domain.StatusCancelled})
}

// advanceOrder — POST /api/v1/orders/:id/advance: следующий статус по циклу.
func (h *Handler) advanceOrder(c *gin.Context) {
	next, err := h.service.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": next})
}

// getAlertAudio — GET /api/v1/alert/audio.
func (h *Handler) getAlertAudio(c *gin.Context) {
	resp := gin.H{
		"enabled": h.alerts.Enabled(),
		"pending": h.service.PendingCount(),
	}
	if lastErr := h.alerts.LastError(); lastErr != "" {
		resp["last_error"] = lastErr
	}
	c.JSON(http.StatusOK, resp)
}

// setAlertAudio — PUT /api/v1/alert/audio {"enabled": true|false}.
// Включение играет тест-сигнал синхронно: если звука нет, клиент узнаёт сразу.
func (h *Handler) setAlertAudio(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	if *req.Enabled {
		err = h.alerts.EnableAudio(c.Request.Context())
	} else {
		err = h.alerts.DisableAudio(c.Request.Context())
	}
	if err != nil {
		h.log.Errorf(c.Request.Context(), "alert audio toggle failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "audio unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": h.alerts.Enabled()})
}

// listMenu — GET /api/v1/menu (прокси на бэкенд).
func (h *Handler) listMenu(c *gin.Context) {
	items, err := h.menu.ListMenu(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// createMenuItem — POST /api/v1/menu.
func (h *Handler) createMenuItem(c *gin.Context) {
	var item domain.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.menu.CreateMenuItem(c.Request.Context(), &item)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateMenuItem — PUT /api/v1/menu/:id.
func (h *Handler) updateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}
	var item domain.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.menu.UpdateMenuItem(c.Request.Context(), id, &item)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteMenuItem — DELETE /api/v1/menu/:id.
func (h *Handler) deleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}
	if err := h.menu.DeleteMenuItem(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError — отображение доменных ошибок в HTTP-статусы.
func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, backend.ErrUnauthorized):
		h.log.Errorf(ctx, "backend auth failed err=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend rejected credentials"})
	default:
		h.log.Errorf(ctx, "backend call failed err=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
	}
}
