// Package http exposes the marketplace over a REST API. It coordinates
// between HTTP handlers and application use cases: handlers parse and
// authenticate requests, commands and queries do the work, and the error
// mapper translates domain failures to status codes.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmaya/internal/core/application/usecases/commands"
	"farmaya/internal/core/application/usecases/queries"
	"farmaya/internal/core/ports"
)

// Server wires the HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	registerUserHandler         commands.RegisterUserCommandHandler
	loginHandler                commands.LoginCommandHandler
	createProductHandler        commands.CreateProductCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler
	reviewPrescriptionHandler   commands.ReviewPrescriptionCommandHandler
	resubmitPrescriptionHandler commands.ResubmitPrescriptionCommandHandler
	acknowledgeRejectionHandler commands.AcknowledgeRejectionCommandHandler
	claimOrderHandler           commands.ClaimOrderCommandHandler
	rejectOrderHandler          commands.RejectOrderCommandHandler

	// Query handlers
	getProductsHandler        queries.GetProductsQueryHandler
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getPharmacyOrdersHandler  queries.GetPharmacyOrdersQueryHandler
	getCourierOrdersHandler   queries.GetCourierOrdersQueryHandler
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler

	fileStore ports.FileStore
	sessions  ports.UserRepository
}

// NewServer creates the HTTP server with its command and query handlers. The
// user repository resolves bearer tokens outside any transaction.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	loginHandler commands.LoginCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	reviewPrescriptionHandler commands.ReviewPrescriptionCommandHandler,
	resubmitPrescriptionHandler commands.ResubmitPrescriptionCommandHandler,
	acknowledgeRejectionHandler commands.AcknowledgeRejectionCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getPharmacyOrdersHandler queries.GetPharmacyOrdersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	fileStore ports.FileStore,
	sessions ports.UserRepository,
) *Server {
	return &Server{
		registerUserHandler:         registerUserHandler,
		loginHandler:                loginHandler,
		createProductHandler:        createProductHandler,
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		reviewPrescriptionHandler:   reviewPrescriptionHandler,
		resubmitPrescriptionHandler: resubmitPrescriptionHandler,
		acknowledgeRejectionHandler: acknowledgeRejectionHandler,
		claimOrderHandler:           claimOrderHandler,
		rejectOrderHandler:          rejectOrderHandler,
		getProductsHandler:          getProductsHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getPharmacyOrdersHandler:    getPharmacyOrdersHandler,
		getCourierOrdersHandler:     getCourierOrdersHandler,
		getAvailableOrdersHandler:   getAvailableOrdersHandler,
		fileStore:                   fileStore,
		sessions:                    sessions,
	}
}

// RegisterRoutes attaches all marketplace routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/register/", s.Register)
	api.POST("/login/", s.Login)
	api.GET("/productos/", s.GetProducts)

	auth := api.Group("", s.RequireUser)
	auth.POST("/productos/", s.CreateProduct)
	auth.POST("/pedidos/", s.CreateOrder)
	auth.GET("/pedidos/mis/", s.GetMyOrders)
	auth.GET("/pedidos/farmacia/:farmacia_id/", s.GetPharmacyOrders)
	auth.PATCH("/pedidos/:id/estado/", s.ChangeOrderStatus)
	auth.PATCH("/pedidos/detalles/:id/receta/", s.ReviewPrescription)
	auth.POST("/pedidos/detalles/:id/receta/reenviar/", s.ResubmitPrescription)
	auth.POST("/pedidos/detalles/:id/receta/omitir/", s.AcknowledgeRejection)
	auth.GET("/pedidos/disponibles/", s.GetAvailableOrders)
	auth.POST("/pedidos/:id/aceptar/", s.ClaimOrder)
	auth.POST("/pedidos/:id/rechazar/", s.RejectOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
