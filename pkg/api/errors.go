package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/pythmata/ent"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
)

// mapEngineError maps engine-layer errors to HTTP error responses:
// definition errors and invalid transitions are 400, unknown resources 404,
// transaction conflicts 400, everything else 500.
func mapEngineError(err error) *echo.HTTPError {
	if ent.IsNotFound(err) || errors.Is(err, engineerr.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, engineerr.ErrInvalidTransition) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if engineerr.As(err, engineerr.KindDefinition) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if engineerr.As(err, engineerr.KindTransaction) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Unexpected error
	slog.Error("Unexpected engine error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
