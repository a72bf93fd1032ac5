package http

import (
	"net/http"

	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/application/usecases/queries"
	"foodly/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetActiveOrders handles GET /api/v1/orders/active - the landing board.
func (s *Server) GetActiveOrders(c echo.Context) error {
	active, err := s.handlers.GetActiveOrders.Handle(c.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ActiveOrders{Done: active.Done, Preparing: active.Preparing})
}

// GetOrder handles GET /api/v1/orders/:id - status view in any state.
func (s *Server) GetOrder(c echo.Context) error {
	return s.orderDetail(c, false)
}

// GetReceipt handles GET /api/v1/orders/:id/receipt - placed orders only.
func (s *Server) GetReceipt(c echo.Context) error {
	return s.orderDetail(c, true)
}

// HasOrder handles HEAD /api/v1/orders/:id.
func (s *Server) HasOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if !s.handlers.OrderExists.Handle(c.Request().Context(), queries.NewOrderExistsQuery(orderID)) {
		return c.NoContent(http.StatusNotFound)
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) orderDetail(c echo.Context, requirePlaced bool) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := s.handlers.GetOrderDetail.Handle(
		c.Request().Context(),
		queries.NewGetOrderDetailQuery(orderID, requirePlaced),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(detail))
}

// GetKitchenOrders handles GET /api/v1/kitchen/orders.
func (s *Server) GetKitchenOrders(c echo.Context) error {
	ctx := c.Request().Context()

	placed, err := s.handlers.GetOrdersByStatus.Handle(ctx, queries.NewGetPlacedOrdersQuery())
	if err != nil {
		return err
	}
	cooking, err := s.handlers.GetOrdersByStatus.Handle(ctx, queries.NewGetCookingOrdersQuery())
	if err != nil {
		return err
	}
	done, err := s.handlers.GetOrdersByStatus.Handle(ctx, queries.NewGetDoneOrdersQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, KitchenOrders{Placed: placed, Cooking: cooking, Done: done})
}

// AdvanceStatus handles POST /api/v1/kitchen/orders/:id/status.
func (s *Server) AdvanceStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var request AdvanceStatusRequest
	if err = c.Bind(&request); err != nil {
		return badRequest("Invalid request body")
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceStatusCommand(orderID, status)
	if err != nil {
		return err
	}
	if err = s.handlers.AdvanceStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
