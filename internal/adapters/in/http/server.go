// Package http exposes the order service over HTTP. It coordinates between
// echo handlers and the application use cases, and owns the mapping from
// the error taxonomy to response codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface of the order service.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the order endpoints on the given group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/orders", s.GetOrders)
	g.POST("/orders", s.CreateOrder)
	g.PUT("/orders", s.UpdateOrder)
}

// Order is the wire representation of an order record.
type Order struct {
	OrderID      string    `json:"order_id"`
	ContainerID  string    `json:"container_id"`
	CustomerName string    `json:"customer_name"`
	Destination  string    `json:"destination"`
	Status       string    `json:"status"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewOrderRequest is the create payload: the client supplies the business
// identifier and the shipment fields, never status, version or timestamps.
type NewOrderRequest struct {
	OrderID      string `json:"order_id"`
	ContainerID  string `json:"container_id"`
	CustomerName string `json:"customer_name"`
	Destination  string `json:"destination"`
}

// UpdateOrderRequest is the update payload. Version, when present, is the
// version the caller based the update on; container_id, when present,
// reassigns the shipping container.
type UpdateOrderRequest struct {
	Status      string  `json:"status"`
	ContainerID *string `json:"container_id,omitempty"`
	Version     *int64  `json:"version,omitempty"`
}

// Error is the wire representation of a failure. Code is machine-readable
// so callers can distinguish kinds and implement retry-on-conflict.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toWire(aggregate *order.Order) Order {
	return Order{
		OrderID:      aggregate.ID().String(),
		ContainerID:  aggregate.ContainerID(),
		CustomerName: aggregate.CustomerName(),
		Destination:  aggregate.Destination(),
		Status:       aggregate.Status().String(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// writeError maps the error taxonomy to distinct response codes. Every kind
// keeps its identity on the wire; nothing is coerced to a default success.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var status int
	var code string

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status, code = http.StatusConflict, "already_exists"
	case errors.Is(err, errs.ErrVersionConflict):
		status, code = http.StatusConflict, "version_conflict"
	case errors.Is(err, errs.ErrInvalidTransition):
		status, code = http.StatusConflict, "invalid_transition"
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status, code = http.StatusBadRequest, "validation_error"
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed", "error", err)
		status, code = http.StatusInternalServerError, "internal_error"
	}

	return ctx.JSON(status, Error{Code: code, Message: err.Error()})
}

// GetOrders handles GET /api/orders.
//
// With an order_id query parameter the response is the single matching
// order (404 when absent); without one it is the full listing in insertion
// order. Server-side filtering replaces the original client's
// fetch-all-then-scan pattern.
func (s *Server) GetOrders(ctx echo.Context) error {
	rawID := ctx.QueryParam("order_id")
	if rawID == "" {
		orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
		if err != nil {
			return s.writeError(ctx, err)
		}

		response := make([]Order, len(orders))
		for i, aggregate := range orders {
			response[i] = toWire(aggregate)
		}
		return ctx.JSON(http.StatusOK, response)
	}

	orderID, err := kernel.NewOrderID(rawID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWire(aggregate))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := kernel.NewOrderID(req.OrderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, req.ContainerID, req.CustomerName, req.Destination)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toWire(created))
}

// UpdateOrder handles PUT /api/orders?order_id=ID.
//
// The requested status must be one of the fixed enumeration; free text is
// rejected before it can reach the state machine.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	rawID := ctx.QueryParam("order_id")
	if rawID == "" {
		return s.writeError(ctx, errs.NewValueIsRequiredError("order_id"))
	}

	orderID, err := kernel.NewOrderID(rawID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.ContainerID, req.Version)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWire(updated))
}
