package rest

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/resto_admin/internal/ports"
	"github.com/Gunvolt24/resto_admin/internal/usecase"
	"github.com/Gunvolt24/resto_admin/pkg/httpx"
)

// alertControl — управление звуковым оповещением (реализуется alert.Engine).
type alertControl interface {
	Enabled() bool
	LastError() string
	EnableAudio(ctx context.Context) error
	DisableAudio(ctx context.Context) error
}

type Handler struct {
	service *usecase.OrderService
	alerts  alertControl
	menu    ports.MenuAPI
	log     ports.Logger
}

func NewHandler(service *usecase.OrderService, alerts alertControl, menu ports.MenuAPI, log ports.Logger) *Handler {
	return &Handler{service: service, alerts: alerts, menu: menu, log: log}
}

// RouterOptions — настройки HTTP-слоя.
type RouterOptions struct {
	HandlerTimeout time.Duration
	Tracing        bool
	ServiceName    string
}

func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Tracing {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if opts.HandlerTimeout > 0 {
		r.Use(timeoutMiddleware(opts.HandlerTimeout))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/orders", h.listOrders)
		api.POST("/orders", h.createOrder)
		api.GET("/orders/:id", h.getOrder)
		api.POST("/orders/:id/accept", h.acceptOrder)
		api.POST("/orders/:id/reject", h.rejectOrder)
		api.POST("/orders/:id/advance", h.advanceOrder)

		api.GET("/alert/audio", h.getAlertAudio)
		api.PUT("/alert/audio", h.setAlertAudio)

		api.GET("/menu", h.listMenu)
		api.POST("/menu", h.createMenuItem)
		api.PUT("/menu/:id", h.updateMenuItem)
		api.DELETE("/menu/:id", h.deleteMenuItem)
	}

	return r
}

// timeoutMiddleware — общий дедлайн обработки запроса.
func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
