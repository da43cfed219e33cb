// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clinic/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler     *handler.AccountHandler
	PatientHandler     *handler.PatientHandler
	AppointmentHandler *handler.AppointmentHandler
	RecordHandler      *handler.RecordHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler     *handler.AccountHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	recordHandler      *handler.RecordHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:     params.AccountHandler,
		patientHandler:     params.PatientHandler,
		appointmentHandler: params.AppointmentHandler,
		recordHandler:      params.RecordHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/login", r.accountHandler.Login)
		api.POST("/users", r.accountHandler.Register)
		api.GET("/users", r.accountHandler.List)

		api.GET("/patients", r.patientHandler.List)
		api.POST("/patients", r.patientHandler.Create)
		api.PUT("/patients/:id", r.patientHandler.Update)
		api.DELETE("/patients/:id", r.patientHandler.Delete)

		api.GET("/appointments", r.appointmentHandler.List)
		api.POST("/appointments", r.appointmentHandler.Create)

		api.GET("/medical-records", r.recordHandler.List)
		api.POST("/medical-records", r.recordHandler.Create)
	}
}
