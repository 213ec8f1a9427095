// Package http exposes the storefront operations over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerName  string          `json:"customerName"`
	Mobile        string          `json:"mobile"`
	Address       string          `json:"address"`
	SKU           string          `json:"sku"`
	Size          string          `json:"size"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	PaymentMethod string          `json:"paymentMethod"`
	Note          string          `json:"note"`
}

// OrderResponse is the full order representation returned by the create and
// transition endpoints, including the status history trail.
type OrderResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	Mobile        string          `json:"mobile"`
	Address       string          `json:"address"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"productName"`
	Size          string          `json:"size"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Note          string          `json:"note"`
	Status        string          `json:"status"`
	Read          bool            `json:"read"`
	History       []HistoryItem   `json:"history"`
	CreatedAt     string          `json:"createdAt"`
}

// TransitionOrderRequest is the body of PUT /api/v1/orders/:id/status.
type TransitionOrderRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// OrderSummary is one row of the order list response.
type OrderSummary struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	Mobile        string          `json:"mobile"`
	Address       string          `json:"address"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"productName"`
	Size          string          `json:"size"`
	Qty           int             `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Note          string          `json:"note"`
	Status        string          `json:"status"`
	Read          bool            `json:"read"`
	CreatedAt     string          `json:"createdAt"`
}

// OrderListResponse is the paged order list.
type OrderListResponse struct {
	Items []OrderSummary `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// HistoryItem is one entry of the status trail.
type HistoryItem struct {
	Status    string `json:"status"`
	Note      string `json:"note"`
	ChangedAt string `json:"changedAt"`
}

// OrderStatusResponse is the status trail of one order.
type OrderStatusResponse struct {
	OrderNumber string        `json:"orderNumber"`
	Status      string        `json:"status"`
	History     []HistoryItem `json:"history"`
}

// UnreadCountResponse carries the unread order count for dashboards.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// Server wires the REST endpoints to the command and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler      commands.PlaceOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderStatusHandler    queries.GetOrderStatusQueryHandler
	countUnreadOrdersHandler queries.CountUnreadOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	countUnreadOrdersHandler queries.CountUnreadOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		transitionOrderHandler:   transitionOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
		countUnreadOrdersHandler: countUnreadOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/unread-count", s.CountUnreadOrders)
	api.GET("/orders/:id/status", s.GetOrderStatus)
	api.PUT("/orders/:id/status", s.TransitionOrder)

	e.GET("/health", s.Health)
}

// PlaceOrder handles POST /api/v1/orders - places a new customer order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		request.CustomerName,
		request.Mobile,
		request.Address,
		request.SKU,
		request.Size,
		request.Qty,
		request.UnitPrice,
		request.PaymentMethod,
		request.Note,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// TransitionOrder handles PUT /api/v1/orders/:id/status - moves an order to a
// new lifecycle status. A lost concurrent-update race maps to 409; callers
// retry against fresh state.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request TransitionOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+request.Status)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, newStatus, request.Note)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// ListOrders handles GET /api/v1/orders - retrieves a page of orders.
// Query parameters: page, limit, search, status.
func (s *Server) ListOrders(ctx echo.Context) error {
	page := intQueryParam(ctx, "page", 1)
	limit := intQueryParam(ctx, "limit", queries.DefaultPageSize)

	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+raw)
		}
		status = parsed
	}

	query, err := queries.NewListOrdersQuery(page, limit, ctx.QueryParam("search"), status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid paging: "+err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	items := make([]OrderSummary, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderSummary{
			ID:            item.ID.String(),
			OrderNumber:   item.OrderNumber,
			CustomerName:  item.CustomerName,
			Mobile:        item.Mobile,
			Address:       item.Address,
			SKU:           item.SKU,
			ProductName:   item.ProductName,
			Size:          item.Size,
			Qty:           item.Qty,
			UnitPrice:     item.UnitPrice,
			Total:         item.Total,
			PaymentMethod: item.PaymentMethod,
			Note:          item.Note,
			Status:        item.Status,
			Read:          item.Read,
			CreatedAt:     item.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Items: items,
		Total: result.Total,
		Page:  result.Page,
		Pages: result.Pages,
	})
}

// GetOrderStatus handles GET /api/v1/orders/:id/status - returns the current
// status of an order with its full history trail.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	result, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	history := make([]HistoryItem, len(result.History))
	for i, entry := range result.History {
		history[i] = HistoryItem{
			Status:    entry.Status,
			Note:      entry.Note,
			ChangedAt: entry.ChangedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderNumber: result.OrderNumber,
		Status:      result.Status,
		History:     history,
	})
}

// CountUnreadOrders handles GET /api/v1/orders/unread-count.
func (s *Server) CountUnreadOrders(ctx echo.Context) error {
	count, err := s.countUnreadOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewCountUnreadOrdersQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to count unread orders")
	}

	return ctx.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	var value int
	if err := echo.QueryParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return fallback
	}
	return value
}

// orderResponse projects an order aggregate into the response body shared by
// the create and transition endpoints.
func orderResponse(o *order.Order) OrderResponse {
	history := make([]HistoryItem, len(o.History()))
	for i, entry := range o.History() {
		history[i] = HistoryItem{
			Status:    entry.Status().String(),
			Note:      entry.Note(),
			ChangedAt: entry.ChangedAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return OrderResponse{
		ID:            o.ID().String(),
		OrderNumber:   o.OrderNumber(),
		CustomerName:  o.CustomerName(),
		Mobile:        o.Mobile(),
		Address:       o.Address(),
		SKU:           o.SKU(),
		ProductName:   o.ProductName(),
		Size:          o.Size(),
		Qty:           o.Qty(),
		UnitPrice:     o.UnitPrice(),
		Total:         o.Total(),
		PaymentMethod: o.PaymentMethod(),
		Note:          o.Note(),
		Status:        o.Status().String(),
		Read:          o.Read(),
		History:       history,
		CreatedAt:     o.CreatedAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// domainErrorResponse maps domain errors onto HTTP status codes.
// Concurrency conflicts and exhausted stock are reported as 409 so clients
// know a retry against fresh state may succeed; a state mismatch is a
// data-integrity fault in the request's product reference and maps to 400.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConcurrentUpdate),
		errors.Is(err, errs.ErrInsufficientStock):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrStateMismatch),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
