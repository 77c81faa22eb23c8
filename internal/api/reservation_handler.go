package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/immunika/server/usecase"
)

// ReservationHandler serves the authenticated user's reservation requests.
type ReservationHandler struct {
	reservations *usecase.ReservationService
	logger       *zap.Logger
}

func NewReservationHandler(reservations *usecase.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		logger:       logger,
	}
}

func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.reservations.List(c.Request().Context(), authenticatedUserID(c))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) Request(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	reservation, err := h.reservations.Request(c.Request().Context(), authenticatedUserID(c), usecase.ReservationInput{
		Date:       req.Date,
		CalendarID: req.CalendarID,
		Status:     req.Status,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":               "Reservation requested",
		"newRequestReservation": reservation,
	})
}

func (h *ReservationHandler) Update(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	user, reservations, err := h.reservations.Update(c.Request().Context(), authenticatedUserID(c), c.Param("id"), usecase.ReservationInput{
		Date:       req.Date,
		CalendarID: req.CalendarID,
		Status:     req.Status,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Registered reservation request",
		"updatedUser": userWithReservations{User: user, Reservations: reservations},
	})
}

func (h *ReservationHandler) Remove(c echo.Context) error {
	user, reservations, err := h.reservations.Remove(c.Request().Context(), authenticatedUserID(c), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":                 "Reservation request removed",
		"updateRemoveReservation": userWithReservations{User: user, Reservations: reservations},
	})
}
