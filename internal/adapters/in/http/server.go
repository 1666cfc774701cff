package http

import (
	"errors"
	"net/http"

	"serviceops/internal/core/application/permissions"
	"serviceops/internal/core/application/usecases/commands"
	"serviceops/internal/core/application/usecases/queries"
	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"
	"serviceops/internal/core/domain/services"
	"serviceops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateServiceOrderCommandHandler
	advanceOrderHandler           commands.AdvanceOrderCommandHandler
	assignTechnicianHandler       commands.AssignTechnicianCommandHandler
	setPhysicalOrderNumberHandler commands.SetPhysicalOrderNumberCommandHandler
	addEvidenceHandler            commands.AddEvidenceCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateServiceOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	assignTechnicianHandler commands.AssignTechnicianCommandHandler,
	setPhysicalOrderNumberHandler commands.SetPhysicalOrderNumberCommandHandler,
	addEvidenceHandler commands.AddEvidenceCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		advanceOrderHandler:           advanceOrderHandler,
		assignTechnicianHandler:       assignTechnicianHandler,
		setPhysicalOrderNumberHandler: setPhysicalOrderNumberHandler,
		addEvidenceHandler:            addEvidenceHandler,
		getActiveOrdersHandler:        getActiveOrdersHandler,
		getOrderHandler:               getOrderHandler,
	}
}

// RegisterRoutes binds every route, each behind its permission gate.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder, RequirePermission(permissions.CreateOrder))
	api.POST("/orders/:id/advance", s.AdvanceOrder, RequirePermission(permissions.AdvanceOrder))
	api.PUT("/orders/:id/technician", s.AssignTechnician, RequirePermission(permissions.AssignTechnician))
	api.PUT("/orders/:id/physical-number", s.SetPhysicalOrderNumber, RequirePermission(permissions.SetPhysicalOrderNumber))
	api.POST("/orders/:id/evidence", s.AddEvidence, RequirePermission(permissions.AddEvidence))
	api.GET("/orders/active", s.GetActiveOrders, RequirePermission(permissions.ViewOrders))
	api.GET("/orders/:id", s.GetOrder, RequirePermission(permissions.ViewOrders))

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new service order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	var quotationID *kernel.UUID
	if request.QuotationID != "" {
		parsed, err := kernel.UUIDFromString(request.QuotationID)
		if err != nil {
			return badRequest(ctx, "Invalid quotation id")
		}
		quotationID = &parsed
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateServiceOrderCommand(
		orderID,
		request.Company,
		request.ServiceType,
		request.Priority,
		request.Description,
		quotationID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order to
// its next pipeline status. Guard rejections and concurrent modifications
// both come back as 409 so the client reloads and retries.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	newStatus, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		case services.IsGuardRejection(err),
			errors.Is(err, errs.ErrVersionIsInvalid),
			errors.Is(err, serviceorder.ErrPipelineComplete):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		default:
			return internalError(ctx, "Failed to advance order")
		}
	}

	return ctx.JSON(http.StatusOK, AdvanceOrderResponse{
		Status: newStatus.String(),
		Phase:  newStatus.Phase().String(),
	})
}

// AssignTechnician handles PUT /api/v1/orders/:id/technician.
func (s *Server) AssignTechnician(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignTechnicianRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid technician data: "+err.Error())
	}

	cmd, err := commands.NewAssignTechnicianCommand(orderID, request.Technician)
	if err != nil {
		return badRequest(ctx, "Invalid technician data: "+err.Error())
	}

	if err = s.assignTechnicianHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to assign technician")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPhysicalOrderNumber handles PUT /api/v1/orders/:id/physical-number.
func (s *Server) SetPhysicalOrderNumber(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request SetPhysicalOrderNumberRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid physical order number: "+err.Error())
	}

	cmd, err := commands.NewSetPhysicalOrderNumberCommand(orderID, request.PhysicalOrderNumber)
	if err != nil {
		return badRequest(ctx, "Invalid physical order number: "+err.Error())
	}

	if err = s.setPhysicalOrderNumberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to set physical order number")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddEvidence handles POST /api/v1/orders/:id/evidence.
func (s *Server) AddEvidence(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AddEvidenceRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid evidence data: "+err.Error())
	}

	kind, err := evidence.KindFromString(request.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid evidence kind")
	}

	evidenceID := kernel.NewUUID()

	cmd, err := commands.NewAddEvidenceCommand(evidenceID, orderID, kind, request.FileName)
	if err != nil {
		return badRequest(ctx, "Invalid evidence data: "+err.Error())
	}

	if err = s.addEvidenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to add evidence")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: evidenceID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, order := range orders {
		response[i] = OrderSummaryResponse{
			ID:         order.ID.String(),
			Number:     order.Number.String(),
			Company:    order.Company,
			Technician: order.Technician,
			Status:     order.Status.String(),
			Phase:      order.Phase.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	counts := make(map[string]int, len(detail.EvidenceCounts))
	for kind, count := range detail.EvidenceCounts {
		counts[kind.String()] = count
	}

	response := OrderDetailResponse{
		ID:                  detail.ID.String(),
		Number:              detail.Number.String(),
		Company:             detail.Company,
		ServiceType:         detail.ServiceType,
		Priority:            detail.Priority,
		Description:         detail.Description,
		Technician:          detail.Technician,
		PhysicalOrderNumber: detail.PhysicalOrderNumber,
		Status:              detail.Status.String(),
		Phase:               detail.Phase.String(),
		Version:             detail.Version,
		EvidenceCounts:      counts,
	}
	if detail.QuotationID != nil {
		response.QuotationID = detail.QuotationID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

func commandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Code: http.StatusInternalServerError, Message: message})
}
