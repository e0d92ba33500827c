// Package http exposes the order board and production floor over a REST API.
// It coordinates between HTTP handlers and application use cases; all business
// rules live in the domain model and the command handlers.
package http

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"printshop/internal/adapters/in/http/middleware"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for order and production operations.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	addItemHandler            commands.AddItemCommandHandler
	updateItemHandler         commands.UpdateItemCommandHandler
	removeItemHandler         commands.RemoveItemCommandHandler
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	archiveOrderHandler       commands.ArchiveOrderCommandHandler
	unarchiveOrderHandler     commands.UnarchiveOrderCommandHandler
	changeItemStatusHandler   commands.ChangeItemStatusCommandHandler
	updateOrderNotesHandler   commands.UpdateOrderNotesCommandHandler
	recalculateTotalsHandler  commands.RecalculateOrderTotalsCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	listProductionItemsHandler queries.ListProductionItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	archiveOrderHandler commands.ArchiveOrderCommandHandler,
	unarchiveOrderHandler commands.UnarchiveOrderCommandHandler,
	changeItemStatusHandler commands.ChangeItemStatusCommandHandler,
	updateOrderNotesHandler commands.UpdateOrderNotesCommandHandler,
	recalculateTotalsHandler commands.RecalculateOrderTotalsCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listProductionItemsHandler queries.ListProductionItemsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addItemHandler:             addItemHandler,
		updateItemHandler:          updateItemHandler,
		removeItemHandler:          removeItemHandler,
		advanceOrderStatusHandler:  advanceOrderStatusHandler,
		archiveOrderHandler:        archiveOrderHandler,
		unarchiveOrderHandler:      unarchiveOrderHandler,
		changeItemStatusHandler:    changeItemStatusHandler,
		updateOrderNotesHandler:    updateOrderNotesHandler,
		recalculateTotalsHandler:   recalculateTotalsHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		listProductionItemsHandler: listProductionItemsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Write routes
// require the matching write permission; read routes only the read one.
func (s *Server) RegisterRoutes(e *echo.Echo, authz *middleware.Authz) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder, authz.Require(middleware.PermOrdersWrite))
	api.GET("/orders", s.GetOrders, authz.Require(middleware.PermOrdersRead))
	api.GET("/orders/:orderId", s.GetOrder, authz.Require(middleware.PermOrdersRead))
	api.POST("/orders/:orderId/status", s.AdvanceOrderStatus, authz.Require(middleware.PermOrdersWrite))
	api.POST("/orders/:orderId/archive", s.ArchiveOrder, authz.Require(middleware.PermOrdersWrite))
	api.POST("/orders/:orderId/unarchive", s.UnarchiveOrder, authz.Require(middleware.PermOrdersWrite))
	api.PUT("/orders/:orderId/notes", s.UpdateOrderNotes, authz.Require(middleware.PermOrdersWrite))
	api.POST("/orders/:orderId/recalculate", s.RecalculateOrderTotals, authz.Require(middleware.PermOrdersWrite))

	api.POST("/orders/:orderId/items", s.AddItem, authz.Require(middleware.PermOrdersWrite))
	api.PUT("/orders/:orderId/items/:itemId", s.UpdateItem, authz.Require(middleware.PermOrdersWrite))
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveItem, authz.Require(middleware.PermOrdersWrite))
	api.PUT("/orders/:orderId/items/:itemId/status", s.ChangeItemStatus,
		authz.Require(middleware.PermProductionWrite))

	api.GET("/production/items", s.GetProductionItems, authz.Require(middleware.PermProductionRead))
	api.GET("/production/items/export", s.ExportProductionItems, authz.Require(middleware.PermProductionRead))
}

// CreateOrder handles POST /api/v1/orders - registers a new order with its items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryFee, err := kernel.ParseMoney(body.DeliveryFee)
	if err != nil {
		return badRequest(ctx, "Invalid delivery fee: "+err.Error())
	}

	drafts := make([]commands.ItemDraft, 0, len(body.Items))
	for _, item := range body.Items {
		draft, draftErr := itemDraftFromRequest(item)
		if draftErr != nil {
			return badRequest(ctx, "Invalid item: "+draftErr.Error())
		}
		drafts = append(drafts, draft)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		body.Brand,
		body.UsageType,
		body.CustomerName,
		body.CustomerPhone,
		body.CustomerAddress,
		body.CustomerCity,
		deliveryFee,
		body.InternalNotes,
		drafts,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - the order board.
// Optional query parameters: status, brand, search, createdFrom, createdTo
// (RFC 3339 timestamps).
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
		statusFilter = &status
	}

	createdFrom, err := parseTimeParam(ctx.QueryParam("createdFrom"))
	if err != nil {
		return badRequest(ctx, "Invalid createdFrom: "+err.Error())
	}
	createdTo, err := parseTimeParam(ctx.QueryParam("createdTo"))
	if err != nil {
		return badRequest(ctx, "Invalid createdTo: "+err.Error())
	}

	query, err := queries.NewListOrdersQuery(
		statusFilter,
		ctx.QueryParam("brand"),
		ctx.QueryParam("search"),
		createdFrom,
		createdTo,
	)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		response[i] = OrderSummary{
			ID:            row.ID.String(),
			Code:          row.Code,
			Brand:         row.Brand,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			Status:        row.Status,
			ExpectedCOD:   row.ExpectedCOD.String(),
			ItemCount:     row.ItemCount,
			CreatedAt:     row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - the full order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	items := make([]OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItem{
			ID:         item.ID.String(),
			DesignName: item.DesignName,
			SizeText:   item.SizeText,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			LineTotal:  item.LineTotal.String(),
			Status:     item.Status,
			BatchCode:  item.BatchCode,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:              detail.ID.String(),
		Code:            detail.Code,
		Brand:           detail.Brand,
		UsageType:       detail.UsageType,
		CustomerName:    detail.CustomerName,
		CustomerPhone:   detail.CustomerPhone,
		CustomerAddress: detail.CustomerAddress,
		CustomerCity:    detail.CustomerCity,
		Status:          detail.Status,
		ExpectedCOD:     detail.ExpectedCOD.String(),
		DeliveryFee:     detail.DeliveryFee.String(),
		InternalNotes:   detail.InternalNotes,
		Items:           items,
		CreatedAt:       detail.CreatedAt,
		UpdatedAt:       detail.UpdatedAt,
	})
}

// AdvanceOrderStatus handles POST /api/v1/orders/:orderId/status - moves the
// order to the requested lifecycle status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body AdvanceStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ArchiveOrder handles POST /api/v1/orders/:orderId/archive.
func (s *Server) ArchiveOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewArchiveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.archiveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to archive order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnarchiveOrder handles POST /api/v1/orders/:orderId/unarchive.
func (s *Server) UnarchiveOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewUnarchiveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.unarchiveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to unarchive order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderNotes handles PUT /api/v1/orders/:orderId/notes.
func (s *Server) UpdateOrderNotes(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body UpdateNotes
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderNotesCommand(orderID, body.InternalNotes)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.updateOrderNotesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to update notes")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecalculateOrderTotals handles POST /api/v1/orders/:orderId/recalculate.
// Repair endpoint; the stored expected amount is rederived from the items.
func (s *Server) RecalculateOrderTotals(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRecalculateOrderTotalsCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.recalculateTotalsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to recalculate totals")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body NewItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	draft, err := itemDraftFromRequest(body)
	if err != nil {
		return badRequest(ctx, "Invalid item: "+err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(orderID, itemID, draft)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to add item")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.String()})
}

// UpdateItem handles PUT /api/v1/orders/:orderId/items/:itemId.
func (s *Server) UpdateItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}
	itemID, err := parseUUIDParam(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	var body NewItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	draft, err := itemDraftFromRequest(body)
	if err != nil {
		return badRequest(ctx, "Invalid item: "+err.Error())
	}

	cmd, err := commands.NewUpdateItemCommand(orderID, itemID, draft)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.updateItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to update item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}
	itemID, err := parseUUIDParam(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to remove item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeItemStatus handles PUT /api/v1/orders/:orderId/items/:itemId/status.
func (s *Server) ChangeItemStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}
	itemID, err := parseUUIDParam(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	var body ChangeItemStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ItemStatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeItemStatusCommand(orderID, itemID, status)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.changeItemStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr, "Failed to change item status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductionItems handles GET /api/v1/production/items - the production
// floor view. Optional query parameters: batchId, status, brand.
func (s *Server) GetProductionItems(ctx echo.Context) error {
	query, err := s.productionItemsQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.listProductionItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve production items")
	}

	response := make([]ProductionItem, len(rows))
	for i, row := range rows {
		response[i] = ProductionItem{
			ItemID:     row.ItemID.String(),
			OrderID:    row.OrderID.String(),
			OrderCode:  row.OrderCode,
			Brand:      row.Brand,
			BatchCode:  row.BatchCode,
			DesignName: row.DesignName,
			SizeText:   row.SizeText,
			Quantity:   row.Quantity,
			Status:     row.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ExportProductionItems handles GET /api/v1/production/items/export - the
// same view as GetProductionItems, rendered as a CSV download for the
// production floor printouts.
func (s *Server) ExportProductionItems(ctx echo.Context) error {
	query, err := s.productionItemsQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.listProductionItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve production items")
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="production-items.csv"`)
	ctx.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(ctx.Response())
	if err = w.Write([]string{
		"order_code", "batch_code", "brand", "design_name", "size", "quantity", "status",
	}); err != nil {
		return err
	}

	for _, row := range rows {
		if err = w.Write([]string{
			row.OrderCode,
			row.BatchCode,
			row.Brand,
			row.DesignName,
			row.SizeText,
			strconv.Itoa(row.Quantity),
			row.Status,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (s *Server) productionItemsQuery(ctx echo.Context) (queries.ListProductionItemsQuery, error) {
	var batchID *kernel.UUID
	if raw := ctx.QueryParam("batchId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.ListProductionItemsQuery{}, errs.NewValueIsInvalidErrorWithCause("batchId", err)
		}
		batchID = &id
	}

	var statusFilter *order.ItemStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ItemStatusFromString(raw)
		if err != nil {
			return queries.ListProductionItemsQuery{}, err
		}
		statusFilter = &status
	}

	return queries.NewListProductionItemsQuery(batchID, statusFilter, ctx.QueryParam("brand"))
}

func itemDraftFromRequest(item NewItem) (commands.ItemDraft, error) {
	unitPrice, err := kernel.ParseMoney(item.UnitPrice)
	if err != nil {
		return commands.ItemDraft{}, err
	}
	return commands.NewItemDraft(item.DesignName, item.SizeText, item.Quantity, unitPrice)
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP status codes. Not-found maps to
// 404, business rule violations and code conflicts to 409, validation to 400,
// everything else to 500 with the generic message.
func writeError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrItemsLocked),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrCodeConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
