// Package http exposes the admin client's use cases over a local HTTP API.
// It is a thin facade: handlers translate requests into commands and queries,
// and translate domain errors into status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"applemart/internal/core/application/usecases/commands"
	"applemart/internal/core/application/usecases/queries"
	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/core/domain/model/order"
	"applemart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	refreshOrdersHandler     commands.RefreshOrdersCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getShippersHandler      queries.GetShippersQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	refreshOrdersHandler commands.RefreshOrdersCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getShippersHandler queries.GetShippersQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		changeOrderStatusHandler: changeOrderStatusHandler,
		refreshOrdersHandler:     refreshOrdersHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getShippersHandler:       getShippersHandler,
		getNotificationsHandler:  getNotificationsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.PUT("/api/v1/orders/:id/status", s.ChangeOrderStatus)
	e.POST("/api/v1/orders/refresh", s.RefreshOrders)
	e.GET("/api/v1/shippers", s.GetShippers)
	e.GET("/api/v1/notifications", s.GetNotifications)
}

// Error is the JSON error body for all failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderSummary is the list representation of an order.
type OrderSummary struct {
	ID           int       `json:"id"`
	Status       string    `json:"status"`
	NextStatuses []string  `json:"nextStatuses"`
	OrderDate    time.Time `json:"orderDate"`
	Address      string    `json:"address"`
	Total        float64   `json:"total"`
	ShipperID    string    `json:"shipperId,omitempty"`
}

// OrderDetailLine is one line item in the order detail representation.
type OrderDetailLine struct {
	ID            int     `json:"id"`
	ProductItemID int     `json:"productItemId"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}

// OrderDetail is the full representation of a single order.
type OrderDetail struct {
	ID            int               `json:"id"`
	Status        string            `json:"status"`
	NextStatuses  []string          `json:"nextStatuses"`
	OrderDate     time.Time         `json:"orderDate"`
	Address       string            `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
	Total         float64           `json:"total"`
	UserID        string            `json:"userId,omitempty"`
	ShipperID     string            `json:"shipperId,omitempty"`
	Details       []OrderDetailLine `json:"details"`
}

// ChangeStatusRequest is the body of a status-transition request.
type ChangeStatusRequest struct {
	NewStatus string `json:"newStatus"`
	ShipperID string `json:"shipperId,omitempty"`
}

// Shipper is the directory representation of a delivery agent.
type Shipper struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email,omitempty"`
	PendingOrders int    `json:"pendingOrders"`
	Role          string `json:"role,omitempty"`
}

// Notification is the feed representation of one notification.
type Notification struct {
	ID          int       `json:"id"`
	Header      string    `json:"header"`
	Content     string    `json:"content"`
	IsRead      bool      `json:"isRead"`
	CreatedDate time.Time `json:"createdDate"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - lists the session's orders.
// Supports ?status=, ?search= and ?sort=oldest query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status := order.StatusFromString(raw)
		statusFilter = &status
	}

	sortOrder := queries.SortNewestFirst
	if ctx.QueryParam("sort") == "oldest" {
		sortOrder = queries.SortOldestFirst
	}

	query, err := queries.NewGetOrdersQuery(statusFilter, ctx.QueryParam("search"), sortOrder)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:           o.ID,
			Status:       o.Status.String(),
			NextStatuses: statusStrings(o.NextStatuses),
			OrderDate:    o.OrderDate,
			Address:      o.Address,
			Total:        o.Total,
			ShipperID:    o.ShipperID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order from the backend.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Order identifier must be an integer",
		})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	details := make([]OrderDetailLine, len(o.Details))
	for i, d := range o.Details {
		details[i] = OrderDetailLine{
			ID:            d.ID,
			ProductItemID: d.ProductItemID,
			Quantity:      d.Quantity,
			Price:         d.Price,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetail{
		ID:            o.ID,
		Status:        o.Status.String(),
		NextStatuses:  statusStrings(o.NextStatuses),
		OrderDate:     o.OrderDate,
		Address:       o.Address,
		PaymentMethod: o.PaymentMethod,
		Total:         o.Total,
		UserID:        o.UserID,
		ShipperID:     o.ShipperID,
		Details:       details,
	})
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - requests a transition.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Order identifier must be an integer",
		})
	}

	var request ChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var shipperID *kernel.UUID
	if request.ShipperID != "" {
		parsed, parseErr := kernel.UUIDFromString(request.ShipperID)
		if parseErr != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "Shipper identifier must be a GUID",
			})
		}
		shipperID = &parsed
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.StatusFromString(request.NewStatus), shipperID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefreshOrders handles POST /api/v1/orders/refresh - reloads the order collection.
func (s *Server) RefreshOrders(ctx echo.Context) error {
	cmd := commands.NewRefreshOrdersCommand()

	if err := s.refreshOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShippers handles GET /api/v1/shippers - lists shippers available for assignment.
func (s *Server) GetShippers(ctx echo.Context) error {
	query := queries.NewGetShippersQuery()

	shippers, err := s.getShippersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Shipper, len(shippers))
	for i, sh := range shippers {
		response[i] = Shipper{
			ID:            sh.ID,
			Name:          sh.Name,
			PhoneNumber:   sh.PhoneNumber,
			Email:         sh.Email,
			PendingOrders: sh.PendingOrders,
			Role:          sh.Role,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications - lists the notification feed.
// Supports ?unread=true to exclude read notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	query := queries.NewGetNotificationsQuery(ctx.QueryParam("unread") == "true")

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Notification, len(notifications))
	for i, n := range notifications {
		response[i] = Notification{
			ID:          n.ID,
			Header:      n.Header,
			Content:     n.Content,
			IsRead:      n.IsRead,
			CreatedDate: n.CreatedDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError maps domain and backend errors to HTTP status codes.
// Validation failures are the caller's fault; everything else reached the
// backend and failed there.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	}
}

func statusStrings(statuses []order.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
