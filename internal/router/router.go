package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ValidateBooking(c *ginext.Context)
	AttendBooking(c *ginext.Context)
}

// InitRouter wires the booking endpoints. identity authenticates every /api
// route; tickets are served statically from the uploads dir.
func InitRouter(mode string, h Handler, ticketDir string, identity ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(identity)
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/bookings/:id/validate", h.ValidateBooking)
		api.POST("/bookings/:id/attend", h.AttendBooking)
	}

	router.Static("/uploads/qr-codes", ticketDir)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
