// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bloodcare/config"
	"bloodcare/internal/delivery/http/middleware"
	"bloodcare/internal/delivery/http/router/handler"
	"bloodcare/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	AuthHandler      *handler.AuthHandler
	OtpHandler       *handler.OtpHandler
	LocationHandler  *handler.LocationHandler
	RequestHandler   *handler.RequestHandler
	AdminHandler     *handler.AdminHandler
	InventoryHandler *handler.InventoryHandler
	SocketHandler    *handler.SocketHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Socket endpoint authenticates via its token query parameter, so it
	// sits outside the Bearer middleware.
	e.GET("/ws", r.params.SocketHandler.Connect)

	api := e.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.GET("/current-user", r.params.AuthHandler.CurrentUser, r.params.AuthMiddleware.Authenticate)
	}

	// Email verification routes, reachable before login
	otpGroup := api.Group("/otp")
	{
		otpGroup.POST("/send", r.params.OtpHandler.Send)
		otpGroup.POST("/verify", r.params.OtpHandler.Verify)
	}

	// Donor geo index routes
	locationGroup := api.Group("/location")
	locationGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		locationGroup.POST("", r.params.LocationHandler.Update)
		locationGroup.GET("", r.params.LocationHandler.Get)
		locationGroup.GET("/donors", r.params.LocationHandler.ListDonors)
		locationGroup.GET("/nearby", r.params.LocationHandler.Nearby)
		locationGroup.PATCH("/availability", r.params.LocationHandler.SetAvailability)
		locationGroup.DELETE("", r.params.LocationHandler.Delete)
		locationGroup.GET("/all", r.params.LocationHandler.ListAll,
			r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Blood request routes
	requestGroup := api.Group("/request")
	requestGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		requestGroup.POST("/send-otp", r.params.RequestHandler.SendOtp)
		requestGroup.POST("/send", r.params.RequestHandler.Create)
		requestGroup.GET("/incoming", r.params.RequestHandler.Incoming)
		requestGroup.GET("/outgoing", r.params.RequestHandler.Outgoing)
		requestGroup.PATCH("/accept/:id", r.params.RequestHandler.Accept)
		requestGroup.PATCH("/reject/:id", r.params.RequestHandler.Reject)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/donor-list", r.params.AdminHandler.DonorList)
		adminGroup.GET("/hospital-list", r.params.AdminHandler.HospitalList)
		adminGroup.GET("/organisation-list", r.params.AdminHandler.OrganisationList)
		adminGroup.GET("/pending-hospitals", r.params.AdminHandler.PendingHospitals)
		adminGroup.DELETE("/donor/:id", r.params.AdminHandler.DeleteDonor)
		adminGroup.POST("/send-approval-otp", r.params.AdminHandler.SendApprovalOtp)
		adminGroup.PATCH("/approve-hospital/:id", r.params.AdminHandler.ApproveHospital)
		adminGroup.PATCH("/reject-hospital/:id", r.params.AdminHandler.RejectHospital)
	}

	// Inventory routes require authentication and the "organisation" role
	inventoryGroup := api.Group("/inventory")
	inventoryGroup.Use(r.params.AuthMiddleware.Authenticate)
	inventoryGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleOrganisation))
	{
		inventoryGroup.POST("/in", r.params.InventoryHandler.RecordIn)
		inventoryGroup.POST("/out", r.params.InventoryHandler.RecordOut)
		inventoryGroup.GET("/in", r.params.InventoryHandler.InRecords)
		inventoryGroup.GET("/out", r.params.InventoryHandler.OutRecords)
		inventoryGroup.GET("/analytics", r.params.InventoryHandler.Analytics)
	}

	// Diagnostic routes, disabled unless config turns them on
	if r.params.Config.TestRoutes != nil && r.params.Config.TestRoutes.Enabled {
		testGroup := api.Group("/test")
		{
			testGroup.GET("/ping", r.params.TestHandler.Ping)
			testGroup.GET("/connections", r.params.TestHandler.Connections)
			testGroup.POST("/broadcast", r.params.TestHandler.Broadcast)
		}
	}
}
