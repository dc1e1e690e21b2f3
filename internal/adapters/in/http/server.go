package http

import (
	"errors"
	"net/http"
	"time"

	"resty/internal/core/application/usecases/commands"
	"resty/internal/core/application/usecases/queries"
	"resty/internal/core/domain/model/cart"
	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"
	"resty/internal/core/ports"
	"resty/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle over HTTP. It coordinates between HTTP
// handlers and application use cases; all domain rules live below it.
type Server struct {
	// Command handlers
	checkoutHandler          commands.CheckoutCommandHandler
	advanceOrderHandler      commands.AdvanceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignStaffHandler       commands.AssignStaffCommandHandler

	// Query handlers
	searchOrdersHandler      queries.SearchOrdersQueryHandler
	getOrderBoardHandler     queries.GetOrderBoardQueryHandler
	trackOrdersHandler       queries.TrackOrdersQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler

	catalog        ports.Catalog
	staffDirectory ports.StaffDirectory
	carts          *CartRegistry
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignStaffHandler commands.AssignStaffCommandHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	getOrderBoardHandler queries.GetOrderBoardQueryHandler,
	trackOrdersHandler queries.TrackOrdersQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	catalog ports.Catalog,
	staffDirectory ports.StaffDirectory,
) *Server {
	return &Server{
		checkoutHandler:          checkoutHandler,
		advanceOrderHandler:      advanceOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		assignStaffHandler:       assignStaffHandler,
		searchOrdersHandler:      searchOrdersHandler,
		getOrderBoardHandler:     getOrderBoardHandler,
		trackOrdersHandler:       trackOrdersHandler,
		getDashboardStatsHandler: getDashboardStatsHandler,
		catalog:                  catalog,
		staffDirectory:           staffDirectory,
		carts:                    NewCartRegistry(),
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)
	api.GET("/staff", s.GetStaff)

	api.GET("/cart/:sessionId", s.GetCart)
	api.POST("/cart/:sessionId/items", s.AddCartItem)
	api.DELETE("/cart/:sessionId/items/:menuItemId", s.RemoveCartItem)
	api.POST("/cart/:sessionId/checkout", s.Checkout)

	api.GET("/orders", s.SearchOrders)
	api.GET("/orders/board", s.GetOrderBoard)
	api.GET("/orders/track", s.TrackOrders)
	api.POST("/orders/:orderId/advance", s.AdvanceOrder)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PUT("/orders/:orderId/staff", s.AssignStaff)

	api.GET("/dashboard", s.GetDashboardStats)
}

// GetMenu handles GET /api/v1/menu - retrieves the catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	items := s.catalog.Items()

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			Available:   item.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStaff handles GET /api/v1/staff - retrieves the staff roster.
func (s *Server) GetStaff(ctx echo.Context) error {
	members := s.staffDirectory.List()

	response := make([]StaffMemberResponse, len(members))
	for i, member := range members {
		response[i] = StaffMemberResponse{
			ID:   member.ID(),
			Name: member.Name(),
			Role: member.Role().String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart/{sessionId} - retrieves the session cart.
func (s *Server) GetCart(ctx echo.Context) error {
	sessionCart := s.carts.Obtain(ctx.Param("sessionId"))
	return s.renderCart(ctx, ctx.Param("sessionId"), sessionCart)
}

// AddCartItem handles POST /api/v1/cart/{sessionId}/items - adds one unit of
// a menu item to the session cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if _, err := s.catalog.PriceOf(request.MenuItemID); err != nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Unknown menu item: " + request.MenuItemID,
		})
	}

	sessionCart := s.carts.Obtain(ctx.Param("sessionId"))
	if err := sessionCart.Add(request.MenuItemID); err != nil {
		return s.renderError(ctx, err)
	}

	return s.renderCart(ctx, ctx.Param("sessionId"), sessionCart)
}

// RemoveCartItem handles DELETE /api/v1/cart/{sessionId}/items/{menuItemId} -
// removes one unit of a menu item from the session cart. Removing an item
// that is not in the cart is a no-op.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	sessionCart := s.carts.Obtain(ctx.Param("sessionId"))
	sessionCart.Remove(ctx.Param("menuItemId"))
	return s.renderCart(ctx, ctx.Param("sessionId"), sessionCart)
}

// Checkout handles POST /api/v1/cart/{sessionId}/checkout - places an order
// from the session cart.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sessionCart := s.carts.Obtain(ctx.Param("sessionId"))

	cmd, err := commands.NewCheckoutCommand(
		sessionCart,
		request.CustomerName,
		request.TableNumber,
		request.SpecialRequests,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid checkout data: " + err.Error(),
		})
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:            placed.ID().String(),
		Status:             placed.Status().String(),
		EstimatedReadyTime: placed.EstimatedReadyTime().Format(time.RFC3339),
	})
}

// SearchOrders handles GET /api/v1/orders - retrieves the admin board list
// for a free-text search and status facet.
func (s *Server) SearchOrders(ctx echo.Context) error {
	query, err := queries.NewSearchOrdersQuery(
		ctx.QueryParam("search"),
		ctx.QueryParam("status"),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid search query: " + err.Error(),
		})
	}

	orders, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderBoard handles GET /api/v1/orders/board - retrieves every order
// partitioned into the four status tabs.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	board, err := s.getOrderBoardHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetOrderBoardQuery(),
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, board)
}

// TrackOrders handles GET /api/v1/orders/track - retrieves the customer
// tracking cards for a free-text search.
func (s *Server) TrackOrders(ctx echo.Context) error {
	tracked, err := s.trackOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewTrackOrdersQuery(ctx.QueryParam("search")),
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tracked)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - moves an
// order one step along the pipeline. Advancing a served order is a no-op.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + ctx.Param("orderId"),
		})
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid advance request: " + err.Error(),
		})
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status - sets an
// order to an explicit pipeline status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + ctx.Param("orderId"),
		})
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + request.Status,
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignStaff handles PUT /api/v1/orders/{orderId}/staff - assigns a staff
// member to an order by display name.
func (s *Server) AssignStaff(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + ctx.Param("orderId"),
		})
	}

	var request AssignStaffRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, request.StaffName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment: " + err.Error(),
		})
	}

	if err := s.assignStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboardStats handles GET /api/v1/dashboard - retrieves the dashboard
// counters and distributions.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDashboardStatsQuery(),
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// renderCart builds the cart view. Entries keep the cart's first-add order;
// the subtotal comes from current catalog prices.
func (s *Server) renderCart(ctx echo.Context, sessionID string, sessionCart *cart.Cart) error {
	entries := sessionCart.Entries()

	response := CartResponse{
		SessionID: sessionID,
		Entries:   make([]CartEntryResponse, 0, len(entries)),
		ItemCount: sessionCart.ItemCount(),
	}

	for _, entry := range entries {
		name, err := s.catalog.NameOf(entry.ItemID())
		if err != nil {
			return s.renderError(ctx, err)
		}
		price, err := s.catalog.PriceOf(entry.ItemID())
		if err != nil {
			return s.renderError(ctx, err)
		}

		response.Entries = append(response.Entries, CartEntryResponse{
			MenuItemID: entry.ItemID(),
			Name:       name,
			Quantity:   entry.Quantity(),
			UnitPrice:  price,
		})
	}

	subtotal, err := sessionCart.Subtotal(s.catalog)
	if err != nil {
		return s.renderError(ctx, err)
	}
	response.Subtotal = subtotal

	return ctx.JSON(http.StatusOK, response)
}

// renderError maps domain errors to HTTP status codes.
func (s *Server) renderError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var invalidTransition *errs.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
