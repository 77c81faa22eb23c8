package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/immunika/server/usecase"
)

type CalendarHandler struct {
	events *usecase.CalendarService
	logger *zap.Logger
}

func NewCalendarHandler(events *usecase.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		events: events,
		logger: logger,
	}
}

func (h *CalendarHandler) List(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *CalendarHandler) Get(c echo.Context) error {
	event, err := h.events.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *CalendarHandler) Create(c echo.Context) error {
	var req CalendarRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	event, err := h.events.Create(c.Request().Context(), usecase.CalendarInput{
		Local:       req.Local,
		Date:        req.Date,
		Places:      req.Places,
		Status:      req.Status,
		Observation: req.Observation,
		Responsible: req.Responsible,
		Vaccine:     req.Vaccine,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":               "Registered event",
		"createEventInCalendar": event,
	})
}

func (h *CalendarHandler) Update(c echo.Context) error {
	var req CalendarRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	event, err := h.events.Update(c.Request().Context(), c.Param("id"), usecase.CalendarInput{
		Local:       req.Local,
		Date:        req.Date,
		Places:      req.Places,
		Status:      req.Status,
		Observation: req.Observation,
		Responsible: req.Responsible,
		Vaccine:     req.Vaccine,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Update event",
		"updateEvent": event,
	})
}

func (h *CalendarHandler) Delete(c echo.Context) error {
	if err := h.events.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Event removed"})
}
