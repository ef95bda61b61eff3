package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCourse(c *ginext.Context)
	GetCourse(c *ginext.Context)
	ListCourses(c *ginext.Context)
	UpdateCourse(c *ginext.Context)
	DeactivateCourse(c *ginext.Context)
	BookCourse(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Courses
		api.POST("/courses", h.CreateCourse)
		api.GET("/courses", h.ListCourses)
		api.GET("/courses/:id", h.GetCourse)
		api.PATCH("/courses/:id", h.UpdateCourse)
		api.DELETE("/courses/:id", h.DeactivateCourse)

		// Bookings
		api.POST("/courses/:id/book", h.BookCourse)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
