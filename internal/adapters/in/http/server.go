// Package http exposes the ordering core as a JSON API over echo.
//
// Customers are anonymous; their cart is found through the cart_token cookie
// which the session binder maps to an order id. Kitchen endpoints work on
// order ids directly.
package http

import (
	"log/slog"
	"net/http"

	"foodly/internal/core/application/session"
	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/application/usecases/queries"
	"foodly/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	AddItem       commands.AddItemCommandHandler
	RemoveItem    commands.RemoveItemCommandHandler
	SetDiet       commands.SetDietCommandHandler
	AdvanceStatus commands.AdvanceStatusCommandHandler

	// Query handlers
	ListProducts      queries.ListProductsQueryHandler
	GetItemsForOrder  queries.GetItemsForOrderQueryHandler
	GetItem           queries.GetItemQueryHandler
	GetOrdersByStatus queries.GetOrdersByStatusQueryHandler
	GetActiveOrders   queries.GetActiveOrdersQueryHandler
	GetOrderDetail    queries.GetOrderDetailQueryHandler
	OrderExists       queries.OrderExistsQueryHandler
	ItemInOrder       queries.ItemInOrderQueryHandler
}

// Server handles HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	binder   *session.Binder
	policy   services.StalenessPolicy
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	handlers Handlers,
	binder *session.Binder,
	policy services.StalenessPolicy,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		binder:   binder,
		policy:   policy,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds an echo instance with logging, recovery, error mapping and
// all routes registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				s.logger.WarnContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.DebugContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	s.Register(e)
	return e
}

// Register adds all routes to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.GET("/products", s.ListProducts)

	cart := api.Group("/cart")
	cart.GET("", s.GetCart)
	cart.DELETE("", s.DiscardCart)
	cart.POST("/items", s.AddItem)
	cart.GET("/items/:itemId", s.GetItem)
	cart.HEAD("/items/:itemId", s.HasItem)
	cart.DELETE("/items/:itemId", s.RemoveItem)
	cart.PUT("/items/:itemId/diet", s.SetDiet)
	cart.POST("/place", s.PlaceOrder)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.HEAD("/orders/:id", s.HasOrder)
	api.GET("/orders/:id/receipt", s.GetReceipt)

	api.GET("/kitchen/orders", s.GetKitchenOrders)
	api.POST("/kitchen/orders/:id/status", s.AdvanceStatus)
}
