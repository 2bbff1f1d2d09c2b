// Package http is the REST adapter of the courier service. Server implements
// the ServerInterface generated from api/openapi.yml: it parses input, calls
// the command and query handlers and renders the generated response types.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/generated/servers"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitShipmentHandler commands.SubmitShipmentCommandHandler
	addCustomerHandler    commands.AddCustomerCommandHandler
	addStaffHandler       commands.AddStaffCommandHandler

	// Query handlers
	trackShipmentHandler queries.TrackShipmentQueryHandler
	listShipmentsHandler queries.ListShipmentsQueryHandler
	listCustomersHandler queries.ListCustomersQueryHandler
	listStaffHandler     queries.ListStaffQueryHandler

	logger *slog.Logger
}

func NewServer(
	submitShipmentHandler commands.SubmitShipmentCommandHandler,
	addCustomerHandler commands.AddCustomerCommandHandler,
	addStaffHandler commands.AddStaffCommandHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	listCustomersHandler queries.ListCustomersQueryHandler,
	listStaffHandler queries.ListStaffQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		submitShipmentHandler: submitShipmentHandler,
		addCustomerHandler:    addCustomerHandler,
		addStaffHandler:       addStaffHandler,
		trackShipmentHandler:  trackShipmentHandler,
		listShipmentsHandler:  listShipmentsHandler,
		listCustomersHandler:  listCustomersHandler,
		listStaffHandler:      listStaffHandler,
		logger:                logger.With("component", "http"),
	}
}

// SubmitShipment handles POST /api/v1/shipments. The shipment is accepted
// for delivery and becomes trackable once delivered.
func (s *Server) SubmitShipment(ctx echo.Context) error {
	var req servers.SubmitShipmentJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	weight, err := shipment.ParseWeight(req.Weight.String())
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	category, err := shipment.ParseCategory(req.Category)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewSubmitShipmentCommand(req.Sender, req.Receiver, req.Address, weight, category)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	id, err := s.submitShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeHandlerError(ctx, err, "Failed to submit shipment")
	}

	cost := shipment.Cost(category, weight)
	s.logger.InfoContext(ctx.Request().Context(), "Shipment submitted",
		"shipment_id", id.String(),
		"category", category.String(),
		"cost", cost,
	)

	return ctx.JSON(http.StatusAccepted, servers.SubmittedShipment{Id: id.Raw(), Cost: cost})
}

// TrackShipment handles GET /api/v1/shipments/{id}.
func (s *Server) TrackShipment(ctx echo.Context, id string) error {
	view, err := s.trackShipmentHandler.Handle(
		ctx.Request().Context(),
		queries.NewTrackShipmentQuery(id),
	)
	if err != nil {
		return s.writeHandlerError(ctx, err, "Failed to track shipment")
	}

	return ctx.JSON(http.StatusOK, toShipment(view))
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	resp, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery())
	if err != nil {
		return s.writeHandlerError(ctx, err, "Failed to retrieve shipments")
	}

	items := make([]servers.Shipment, len(resp.Shipments))
	for i, view := range resp.Shipments {
		items[i] = toShipment(view)
	}

	return ctx.JSON(http.StatusOK, servers.ShipmentList{Items: items, Empty: resp.IsEmpty()})
}

// AddCustomer handles POST /api/v1/customers.
func (s *Server) AddCustomer(ctx echo.Context) error {
	var req servers.AddCustomerJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd := commands.NewAddCustomerCommand(req.Name, req.Contact)
	if err := s.addCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeHandlerError(ctx, err, "Failed to add customer")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Customer added", "name", req.Name)
	return ctx.NoContent(http.StatusCreated)
}

func (s *Server) ListCustomers(ctx echo.Context) error {
	resp, err := s.listCustomersHandler.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return s.writeHandlerError(ctx, err, "Failed to retrieve customers")
	}

	items := make([]servers.Customer, len(resp.Customers))
	for i, c := range resp.Customers {
		items[i] = servers.Customer{Name: c.Name, Contact: c.Contact}
	}

	return ctx.JSON(http.StatusOK, servers.CustomerList{Items: items, Empty: resp.IsEmpty()})
}

// AddStaff handles POST /api/v1/staff.
func (s *Server) AddStaff(ctx echo.Context) error {
	var req servers.AddStaffJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd := commands.NewAddStaffCommand(req.Name, req.Role)
	if err := s.addStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeHandlerError(ctx, err, "Failed to add staff")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Staff added", "name", req.Name, "role", req.Role)
	return ctx.NoContent(http.StatusCreated)
}

func (s *Server) ListStaff(ctx echo.Context) error {
	resp, err := s.listStaffHandler.Handle(ctx.Request().Context(), queries.NewListStaffQuery())
	if err != nil {
		return s.writeHandlerError(ctx, err, "Failed to retrieve staff")
	}

	items := make([]servers.Staff, len(resp.Staff))
	for i, m := range resp.Staff {
		items[i] = servers.Staff{Name: m.Name, Role: m.Role}
	}

	return ctx.JSON(http.StatusOK, servers.StaffList{Items: items, Empty: resp.IsEmpty()})
}

// writeHandlerError maps domain errors to status codes. Only unexpected
// failures are logged.
func (s *Server) writeHandlerError(ctx echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), msg, "error", err)
		return writeError(ctx, http.StatusInternalServerError, msg)
	}
}

func writeError(ctx echo.Context, code int, msg string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: msg})
}

func toShipment(view queries.ShipmentView) servers.Shipment {
	return servers.Shipment{
		Id:       view.ID.Raw(),
		Sender:   view.Sender,
		Receiver: view.Receiver,
		Address:  view.Address,
		Weight:   view.Weight,
		Category: servers.ShipmentCategory(view.Category.String()),
		Status:   servers.ShipmentStatus(view.Status.String()),
		Cost:     view.Cost,
	}
}
