package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/codeready-toolchain/pythmata/ent/processinstance"
)

// createInstanceHandler handles POST /api/v1/instances.
func (s *Server) createInstanceHandler(c *echo.Context) error {
	var req CreateInstanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.DefinitionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "definition_id is required")
	}
	instanceID := req.InstanceID
	if instanceID == "" {
		instanceID = uuid.New().String()
	}

	if err := s.sched.StartProcess(c.Request().Context(), instanceID, req.DefinitionID, req.Variables); err != nil {
		return mapEngineError(err)
	}
	s.sched.SubmitRun(instanceID, req.DefinitionID)

	inst, err := s.instances.GetInstance(c.Request().Context(), instanceID)
	if err != nil {
		return mapEngineError(err)
	}
	return c.JSON(http.StatusCreated, inst)
}

// listInstancesHandler handles GET /api/v1/instances.
func (s *Server) listInstancesHandler(c *echo.Context) error {
	var status *processinstance.Status
	if v := c.QueryParam("status"); v != "" {
		st := processinstance.Status(v)
		if err := processinstance.StatusValidator(st); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		status = &st
	}
	instances, err := s.instances.ListInstances(c.Request().Context(), status)
	if err != nil {
		return mapEngineError(err)
	}
	return c.JSON(http.StatusOK, instances)
}

// getInstanceHandler handles GET /api/v1/instances/:id.
func (s *Server) getInstanceHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "instance id is required")
	}
	inst, err := s.instances.GetInstance(c.Request().Context(), id)
	if err != nil {
		return mapEngineError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

// suspendInstanceHandler handles POST /api/v1/instances/:id/suspend.
func (s *Server) suspendInstanceHandler(c *echo.Context) error {
	if err := s.instances.SuspendInstance(c.Request().Context(), c.Param("id")); err != nil {
		return mapEngineError(err)
	}
	return s.respondWithInstance(c)
}

// resumeInstanceHandler handles POST /api/v1/instances/:id/resume. Recovery
// is explicit: resuming re-enters the run loop from the retained token.
func (s *Server) resumeInstanceHandler(c *echo.Context) error {
	id := c.Param("id")
	if err := s.instances.ResumeInstance(c.Request().Context(), id); err != nil {
		return mapEngineError(err)
	}
	defID, err := s.instances.InstanceDefinitionID(c.Request().Context(), id)
	if err != nil {
		return mapEngineError(err)
	}
	s.sched.SubmitRun(id, defID)
	return s.respondWithInstance(c)
}

// terminateInstanceHandler handles POST /api/v1/instances/:id/terminate.
func (s *Server) terminateInstanceHandler(c *echo.Context) error {
	if err := s.instances.TerminateInstance(c.Request().Context(), c.Param("id")); err != nil {
		return mapEngineError(err)
	}
	return s.respondWithInstance(c)
}

func (s *Server) respondWithInstance(c *echo.Context) error {
	inst, err := s.instances.GetInstance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapEngineError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

// listVariablesHandler handles GET /api/v1/instances/:id/variables.
func (s *Server) listVariablesHandler(c *echo.Context) error {
	id := c.Param("id")
	var scope *string
	if v, ok := c.QueryParams()["scope_id"]; ok && len(v) > 0 {
		scope = &v[0]
	}
	vars, err := s.instances.GetInstanceVariables(c.Request().Context(), id, scope)
	if err != nil {
		return mapEngineError(err)
	}
	return c.JSON(http.StatusOK, vars)
}

// listActivityLogHandler handles GET /api/v1/instances/:id/activity-log.
func (s *Server) listActivityLogHandler(c *echo.Context) error {
	logs, err := s.instances.ListActivityLogs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapEngineError(err)
	}
	return c.JSON(http.StatusOK, logs)
}
