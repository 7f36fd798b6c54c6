package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/rufomartins/talent-nexus-notifier/internal/api/handlers/assignment"
	"github.com/rufomartins/talent-nexus-notifier/internal/api/handlers/booking"
	"github.com/rufomartins/talent-nexus-notifier/internal/api/handlers/notification"
	"github.com/rufomartins/talent-nexus-notifier/internal/middlewares"
)

func New(
	notifHandler *notification.Handler,
	bookingHandler *booking.Handler,
	assignHandler *assignment.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.POST("/", bookingHandler.Create)
			bookings.POST("/check", bookingHandler.Check)
		}

		assignments := api.Group("/assignments")
		{
			assignments.POST("/", assignHandler.Create)
			assignments.PUT("/:id/status", assignHandler.UpdateStatus)
			assignments.PUT("/:id/role", assignHandler.UpdateRole)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("/:userID", notifHandler.ListPending)
			notifications.GET("/:userID/stream", notifHandler.Stream)
			notifications.PUT("/:userID/read/:id", notifHandler.MarkRead)
		}
	}

	return e
}
