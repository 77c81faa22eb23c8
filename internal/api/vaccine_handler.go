package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/immunika/server/usecase"
)

type VaccineHandler struct {
	vaccines *usecase.VaccineService
	logger   *zap.Logger
}

func NewVaccineHandler(vaccines *usecase.VaccineService, logger *zap.Logger) *VaccineHandler {
	return &VaccineHandler{
		vaccines: vaccines,
		logger:   logger,
	}
}

func (h *VaccineHandler) List(c echo.Context) error {
	vaccines, err := h.vaccines.List(c.Request().Context())
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, vaccines)
}

func (h *VaccineHandler) Create(c echo.Context) error {
	var req VaccineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	vaccine, err := h.vaccines.Create(c.Request().Context(), usecase.VaccineInput{
		Name:             req.Name,
		Type:             req.Type,
		Manufacturer:     req.Manufacturer,
		Description:      req.Description,
		ContraIndication: req.ContraIndication,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, vaccine)
}

func (h *VaccineHandler) Get(c echo.Context) error {
	vaccine, err := h.vaccines.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, vaccine)
}

func (h *VaccineHandler) Update(c echo.Context) error {
	var req VaccineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	vaccine, err := h.vaccines.Update(c.Request().Context(), c.Param("id"), usecase.VaccineInput{
		Name:             req.Name,
		Type:             req.Type,
		Manufacturer:     req.Manufacturer,
		Description:      req.Description,
		ContraIndication: req.ContraIndication,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Updated Vaccine",
		"updateVaccine": vaccine,
	})
}

func (h *VaccineHandler) Delete(c echo.Context) error {
	if err := h.vaccines.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Vaccine removed"})
}
