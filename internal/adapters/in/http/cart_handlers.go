package http

import (
	"net/http"
	"strconv"

	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/application/usecases/queries"
	"foodly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products - the menu.
func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.handlers.ListProducts.Handle(c.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return err
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{ID: p.ID, Name: p.Name, Cost: p.Cost, Category: p.Category}
	}
	return c.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart - opens a cart if the client has none.
func (s *Server) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	binding, err := s.binder.Resolve(ctx, cartToken(c))
	if err != nil {
		return err
	}
	s.setCartToken(c, binding.Token)

	items, err := s.handlers.GetItemsForOrder.Handle(ctx, queries.NewGetItemsForOrderQuery(binding.OrderID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Cart{
		OrderID: binding.OrderID,
		Items:   toItems(items),
		Total:   queries.SumItems(items),
	})
}

// AddItem handles POST /api/v1/cart/items - adds one product to the cart.
func (s *Server) AddItem(c echo.Context) error {
	var request AddItemRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("Invalid request body")
	}

	ctx := c.Request().Context()
	binding, err := s.binder.Resolve(ctx, cartToken(c))
	if err != nil {
		return err
	}
	s.setCartToken(c, binding.Token)

	cmd, err := commands.NewAddItemCommand(binding.OrderID, request.ProductID)
	if err != nil {
		return err
	}

	itemID, err := s.handlers.AddItem.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: itemID})
}

// GetItem handles GET /api/v1/cart/items/:itemId.
func (s *Server) GetItem(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	orderID, err := s.currentCart(c)
	if err != nil {
		return err
	}

	item, err := s.handlers.GetItem.Handle(c.Request().Context(), queries.NewGetItemQuery(itemID, orderID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItem(item))
}

// HasItem handles HEAD /api/v1/cart/items/:itemId. It answers 404 for items
// outside the client's cart.
func (s *Server) HasItem(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	orderID, err := s.currentCart(c)
	if err != nil {
		return err
	}

	if !s.handlers.ItemInOrder.Handle(c.Request().Context(), queries.NewItemInOrderQuery(orderID, itemID)) {
		return c.NoContent(http.StatusNotFound)
	}
	return c.NoContent(http.StatusOK)
}

// RemoveItem handles DELETE /api/v1/cart/items/:itemId.
func (s *Server) RemoveItem(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	orderID, err := s.currentCart(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return err
	}
	if err = s.handlers.RemoveItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDiet handles PUT /api/v1/cart/items/:itemId/diet. An empty note clears it.
func (s *Server) SetDiet(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	var request SetDietRequest
	if err = c.Bind(&request); err != nil {
		return badRequest("Invalid request body")
	}

	orderID, err := s.currentCart(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetDietCommand(orderID, itemID, request.Diet)
	if err != nil {
		return err
	}
	if err = s.handlers.SetDiet.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DiscardCart handles DELETE /api/v1/cart.
func (s *Server) DiscardCart(c echo.Context) error {
	if err := s.binder.Discard(c.Request().Context(), cartToken(c)); err != nil {
		return err
	}
	clearCartToken(c)
	return c.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/cart/place - submits the cart.
func (s *Server) PlaceOrder(c echo.Context) error {
	var request PlaceOrderRequest
	if err := c.Bind(&request); err != nil {
		return badRequest("Invalid request body")
	}

	orderID, err := s.binder.Place(c.Request().Context(), cartToken(c), request.HandledBy)
	if err != nil {
		return err
	}
	clearCartToken(c)
	return c.JSON(http.StatusCreated, Created{ID: orderID})
}

func (s *Server) currentCart(c echo.Context) (int64, error) {
	orderID, ok, err := s.binder.Current(c.Request().Context(), cartToken(c))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errs.NewObjectNotFoundError("cart", "session")
	}
	return orderID, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("Invalid " + name)
	}
	return id, nil
}
