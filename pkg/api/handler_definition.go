package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
)

// validateDefinitionHandler handles POST /api/v1/definitions/validate: the
// non-throwing validator. Structural problems come back as a collected
// error list with codes, never as an HTTP failure.
func (s *Server) validateDefinitionHandler(c *echo.Context) error {
	var req ValidateDefinitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result := bpmn.Validate(req.BpmnXML)
	if result.Valid {
		// Cycles are rejected unconditionally before execution, so surface
		// them at validation time too.
		if graph, err := bpmn.Parse(req.BpmnXML); err == nil {
			if found, at := graph.HasCycle(); found {
				result.Valid = false
				result.Errors = append(result.Errors, bpmn.ValidationIssue{
					Code:      bpmn.CodeInvalidStructure,
					Message:   "Cycle detected at " + at,
					ElementID: at,
				})
			}
		}
	}
	return c.JSON(http.StatusOK, toValidationResponse(result))
}
