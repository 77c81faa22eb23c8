package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/immunika/server/usecase"
)

// VaccinationHandler serves the authenticated user's vaccination records; the
// account is always the token's subject.
type VaccinationHandler struct {
	vaccinations *usecase.VaccinationService
	logger       *zap.Logger
}

func NewVaccinationHandler(vaccinations *usecase.VaccinationService, logger *zap.Logger) *VaccinationHandler {
	return &VaccinationHandler{
		vaccinations: vaccinations,
		logger:       logger,
	}
}

func (h *VaccinationHandler) List(c echo.Context) error {
	records, err := h.vaccinations.List(c.Request().Context(), authenticatedUserID(c))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *VaccinationHandler) Register(c echo.Context) error {
	var req VaccinationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	record, err := h.vaccinations.Register(c.Request().Context(), authenticatedUserID(c), usecase.VaccinationInput{
		Date:    req.Date,
		Applied: req.Applied,
		Vaccine: req.Vaccine,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":                "Registered vaccination",
		"newRegisterVaccination": record,
	})
}

func (h *VaccinationHandler) Update(c echo.Context) error {
	var req VaccinationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	user, records, err := h.vaccinations.Update(c.Request().Context(), authenticatedUserID(c), c.Param("id"), usecase.VaccinationInput{
		Date:    req.Date,
		Applied: req.Applied,
		Vaccine: req.Vaccine,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Up-to-date vaccination record",
		"updatedUser": userWithVaccinations{User: user, Vaccinations: records},
	})
}

func (h *VaccinationHandler) Remove(c echo.Context) error {
	user, records, err := h.vaccinations.Remove(c.Request().Context(), authenticatedUserID(c), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, userWithVaccinations{User: user, Vaccinations: records})
}
