package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/immunika/server/internal/auth"
)

// Handlers groups every endpoint handler the router mounts.
type Handlers struct {
	Users        *UserHandler
	Vaccines     *VaccineHandler
	Calendar     *CalendarHandler
	Vaccinations *VaccinationHandler
	Reservations *ReservationHandler
}

// InitRoutes initializes all API routes. Vaccination records and
// reservations are bearer-gated end to end; user routes are gated except for
// registration and authentication.
func InitRoutes(e *echo.Echo, h Handlers, tokens *auth.JWT, uploadDir string, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "immunika-server",
		})
	})

	authenticated := RequireAuth(tokens, logger)

	user := e.Group("/user")
	user.GET("", h.Users.List)
	user.POST("", h.Users.Register)
	user.POST("/authentication", h.Users.Authenticate)
	user.GET("/:id", h.Users.Get, authenticated)
	user.PUT("/update/:id", h.Users.Update, authenticated)
	user.DELETE("/remove/:id", h.Users.Delete, authenticated)
	user.PATCH("/upload/:id", h.Users.Upload, authenticated)

	vaccine := e.Group("/vaccine")
	vaccine.GET("", h.Vaccines.List)
	vaccine.POST("", h.Vaccines.Create)
	vaccine.GET("/:id", h.Vaccines.Get)
	vaccine.PATCH("/update/:id", h.Vaccines.Update)
	vaccine.DELETE("/remove/:id", h.Vaccines.Delete)

	event := e.Group("/event")
	event.GET("", h.Calendar.List)
	event.GET("/:id", h.Calendar.Get)
	event.POST("", h.Calendar.Create)
	event.PUT("/update/:id", h.Calendar.Update)
	event.DELETE("/remove/:id", h.Calendar.Delete)

	register := e.Group("/register", authenticated)
	register.GET("", h.Vaccinations.List)
	register.POST("", h.Vaccinations.Register)
	register.PUT("/update/:id", h.Vaccinations.Update)
	register.DELETE("/remove/:id", h.Vaccinations.Remove)

	reservation := e.Group("/reservation", authenticated)
	reservation.GET("", h.Reservations.List)
	reservation.POST("", h.Reservations.Request)
	reservation.PUT("/update/:id", h.Reservations.Update)
	reservation.DELETE("/remove/:id", h.Reservations.Remove)

	// Uploaded user images
	e.Static("/images", uploadDir)
}
