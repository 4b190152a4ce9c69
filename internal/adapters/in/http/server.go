package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const customerIDHeader = "X-Customer-ID"

// Server exposes the marketplace use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addToCartHandler      commands.AddToCartCommandHandler
	updateCartItemHandler commands.UpdateCartItemCommandHandler
	removeCartItemHandler commands.RemoveCartItemCommandHandler
	clearCartHandler      commands.ClearCartCommandHandler
	checkoutHandler       commands.CheckoutCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	assignShopHandler     commands.AssignShopCommandHandler
	assignDeliveryHandler commands.AssignDeliveryCommandHandler
	markShopPaidHandler   commands.MarkShopPaidCommandHandler
	changeStatusHandler   commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getCartHandler      queries.GetCartQueryHandler
	getMyOrdersHandler  queries.GetMyOrdersQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	nearestShopsHandler queries.NearestShopsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addToCartHandler commands.AddToCartCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignShopHandler commands.AssignShopCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	markShopPaidHandler commands.MarkShopPaidCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	nearestShopsHandler queries.NearestShopsQueryHandler,
) *Server {
	return &Server{
		addToCartHandler:      addToCartHandler,
		updateCartItemHandler: updateCartItemHandler,
		removeCartItemHandler: removeCartItemHandler,
		clearCartHandler:      clearCartHandler,
		checkoutHandler:       checkoutHandler,
		cancelOrderHandler:    cancelOrderHandler,
		assignShopHandler:     assignShopHandler,
		assignDeliveryHandler: assignDeliveryHandler,
		markShopPaidHandler:   markShopPaidHandler,
		changeStatusHandler:   changeStatusHandler,
		getCartHandler:        getCartHandler,
		getMyOrdersHandler:    getMyOrdersHandler,
		listOrdersHandler:     listOrdersHandler,
		nearestShopsHandler:   nearestShopsHandler,
	}
}

// RegisterRoutes binds all endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)

	e.GET("/api/cart", s.GetCart)
	e.POST("/api/cart/items", s.AddCartItem)
	e.PUT("/api/cart/items", s.UpdateCartItem)
	e.DELETE("/api/cart/items/:productID", s.RemoveCartItem)
	e.DELETE("/api/cart", s.ClearCart)

	e.POST("/api/orders", s.Checkout)
	e.GET("/api/orders/my", s.GetMyOrders)
	e.POST("/api/orders/:orderID/cancel", s.CancelOrder)

	e.GET("/api/admin/orders", s.ListOrders)
	e.GET("/api/admin/orders/:code/nearest-shops", s.NearestShops)
	e.POST("/api/admin/orders/:code/assign-shop", s.AssignShop)
	e.POST("/api/admin/orders/:code/assign-delivery", s.AssignDelivery)
	e.POST("/api/admin/orders/:code/status", s.ChangeStatus)
	e.POST("/api/admin/orders/:code/mark-paid", s.MarkShopPaid)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetCart handles GET /api/cart - returns the customer's cart view.
// An absent cart renders as an empty one.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := customerIDFromHeader(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromQuery(view))
}

// AddCartItem handles POST /api/cart/items - adds a product to the cart,
// creating the cart on first use and merging quantities for repeated adds.
// Responds with the updated cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customerID, err := customerIDFromHeader(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	var request CartItemRequest
	if err = bind(ctx, &request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAddToCartCommand(customerID, productID, request.Quantity, request.VariantName)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.addToCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromDomain(updated))
}

// UpdateCartItem handles PUT /api/cart/items - sets a line's quantity.
// A quantity of zero or less removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	customerID, err := customerIDFromHeader(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	var request CartItemRequest
	if err = bind(ctx, &request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewUpdateCartItemCommand(customerID, productID, request.Quantity, request.VariantName)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromDomain(updated))
}

// RemoveCartItem handles DELETE /api/cart/items/:productID - removes one
// line. The variant is passed as the "variant" query parameter.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, err := customerIDFromHeader(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, productID, ctx.QueryParam("variant"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromDomain(updated))
}

// ClearCart handles DELETE /api/cart - empties the customer's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, err := customerIDFromHeader(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromDomain(updated))
}

// Checkout handles POST /api/orders - places an order. Guests check out
// without the X-Customer-ID header; authenticated customers get their cart
// cleared along with the order.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := bind(ctx, &request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	var customer *kernel.UUID
	if header := ctx.Request().Header.Get(customerIDHeader); header != "" {
		id, err := kernel.UUIDFromString(header)
		if err != nil {
			return jsonError(ctx, http.StatusUnauthorized, err.Error())
		}
		customer = &id
	}

	items := make([]commands.CheckoutItem, len(request.Items))
	for i, item := range request.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, err.Error())
		}

		items[i] = commands.CheckoutItem{
			ProductID:   productID,
			Quantity:    item.Quantity,
			VariantName: item.VariantName,
		}
	}

	var location *kernel.GeoPoint
	if request.Location != nil {
		point, err := kernel.NewGeoPoint(request.Location.Lat, request.Location.Lng)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, err.Error())
		}
		location = &point
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(
		orderID,
		customer,
		request.CustomerName,
		request.Phone,
		request.Address,
		request.Notes,
		location,
		request.PaymentMethod,
		request.CouponCode,
		request.OfferPrice,
		items,
	)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	code, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{
		OrderID: orderID.String(),
		Code:    code,
	})
}

// GetMyOrders handles GET /api/orders/my - returns the customer's order
// history, newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customerID, err := customerIDFromHeader(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewGetMyOrdersQuery(customerID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	views, err := s.getMyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(views))
}

// CancelOrder handles POST /api/orders/:orderID/cancel - cancels the
// customer's own order within the cancellation window and responds with
// the cancelled order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID, err := customerIDFromHeader(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// ListOrders handles GET /api/admin/orders - the admin list view, filtered
// by the "status" and "search" query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"), ctx.QueryParam("search"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, adminOrdersFromQuery(views))
}

// NearestShops handles GET /api/admin/orders/:code/nearest-shops - ranks
// active shops by distance to the order's delivery location.
func (s *Server) NearestShops(ctx echo.Context) error {
	query, err := queries.NewNearestShopsQuery(ctx.Param("code"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	view, err := s.nearestShopsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, nearestShopsFromQuery(view))
}

// AssignShop handles POST /api/admin/orders/:code/assign-shop - assigns the
// order to a shop and confirms it.
func (s *Server) AssignShop(ctx echo.Context) error {
	var request AssignShopRequest
	if err := bind(ctx, &request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	shopID, err := kernel.UUIDFromString(request.ShopID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAssignShopCommand(ctx.Param("code"), shopID, request.ShopPrice, request.ShopMargin)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.assignShopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/admin/orders/:code/assign-delivery -
// hands the order to a delivery agent and issues the handover OTP.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var request AssignDeliveryRequest
	if err := bind(ctx, &request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAssignDeliveryCommand(ctx.Param("code"), request.AgentName)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	otp, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryAssigned{OTP: otp})
}

// ChangeStatus handles POST /api/admin/orders/:code/status - the admin
// status override.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	var request ChangeStatusRequest
	if err := bind(ctx, &request); err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(ctx.Param("code"), request.Status)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkShopPaid handles POST /api/admin/orders/:code/mark-paid - records the
// shop payout.
func (s *Server) MarkShopPaid(ctx echo.Context) error {
	cmd, err := commands.NewMarkShopPaidCommand(ctx.Param("code"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.markShopPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// customerIDFromHeader extracts the authenticated customer from the X-Customer-ID
// header.
func customerIDFromHeader(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(customerIDHeader)
	if header == "" {
		return kernel.UUID{}, errMissingCustomerID
	}

	return kernel.UUIDFromString(header)
}

// bind decodes the request body and runs struct validation.
func bind(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return err
	}

	return ctx.Validate(request)
}
