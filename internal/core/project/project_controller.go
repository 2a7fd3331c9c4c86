package project

import (
	"strconv"

	"github.com/innovate-hub/registry/internal/shared"
	"github.com/labstack/echo/v4"
)

type controller struct {
	service *service
}

func NewHTTPController(service *service) *controller {
	return &controller{service: service}
}

func (ctrl *controller) List(c shared.Context) error {
	if programID := c.QueryParam("programId"); programID != "" {
		id, err := strconv.ParseUint(programID, 10, 32)
		if err != nil {
			return echo.NewHTTPError(400, "invalid program id").WithInternal(err)
		}
		projects, err := ctrl.service.FilterByProgram(uint(id))
		if err != nil {
			return shared.ToHTTPError(err, "could not list projects")
		}
		return c.JSON(200, projects)
	}
	if facilityID := c.QueryParam("facilityId"); facilityID != "" {
		id, err := strconv.ParseUint(facilityID, 10, 32)
		if err != nil {
			return echo.NewHTTPError(400, "invalid facility id").WithInternal(err)
		}
		projects, err := ctrl.service.FilterByFacility(uint(id))
		if err != nil {
			return shared.ToHTTPError(err, "could not list projects")
		}
		return c.JSON(200, projects)
	}

	projects, err := ctrl.service.List()
	if err != nil {
		return shared.ToHTTPError(err, "could not list projects")
	}
	return c.JSON(200, projects)
}

func (ctrl *controller) Read(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	project, err := ctrl.service.GetByID(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not read project")
	}
	if project == nil {
		return echo.NewHTTPError(404, "project not found")
	}
	return c.JSON(200, project)
}

func (ctrl *controller) Create(c shared.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	project, err := ctrl.service.Create(req)
	if err != nil {
		return shared.ToHTTPError(err, "could not create project")
	}
	return c.JSON(201, project)
}

func (ctrl *controller) Patch(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch PatchRequest
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	project, err := ctrl.service.Update(id, patch)
	if err != nil {
		return shared.ToHTTPError(err, "could not update project")
	}
	return c.JSON(200, project)
}

func (ctrl *controller) Delete(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.service.Delete(id); err != nil {
		return shared.ToHTTPError(err, "could not delete project")
	}
	return c.NoContent(204)
}

func (ctrl *controller) Stats(c shared.Context) error {
	stats, err := ctrl.service.Statistics()
	if err != nil {
		return shared.ToHTTPError(err, "could not compute project statistics")
	}
	return c.JSON(200, stats)
}

func parseID(c shared.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("projectID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}
	return uint(id), nil
}
