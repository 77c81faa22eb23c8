package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/immunika/server/usecase"
)

// fail maps a service error onto the wire. Rule violations become a 400 with
// the message under the endpoint's historical key; anything else is logged
// and hidden behind a generic 500.
func fail(c echo.Context, logger *zap.Logger, err error) error {
	var rejection *usecase.Rejection
	if errors.As(err, &rejection) {
		return c.JSON(http.StatusBadRequest, echo.Map{rejection.Key: rejection.Message})
	}

	logger.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
}
