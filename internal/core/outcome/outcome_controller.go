package outcome

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
	if projectID := c.QueryParam("projectId"); projectID != "" {
		id, err := strconv.ParseUint(projectID, 10, 32)
		if err != nil {
			return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
		}
		outcomes, err := ctrl.service.FilterByProject(uint(id))
		if err != nil {
			return shared.ToHTTPError(err, "could not list outcomes")
		}
		return c.JSON(200, outcomes)
	}

	outcomes, err := ctrl.service.List()
	if err != nil {
		return shared.ToHTTPError(err, "could not list outcomes")
	}
	return c.JSON(200, outcomes)
}

func (ctrl *controller) Read(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	outcome, err := ctrl.service.GetByID(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not read outcome")
	}
	if outcome == nil {
		return echo.NewHTTPError(404, "outcome not found")
	}
	return c.JSON(200, outcome)
}

func (ctrl *controller) Create(c shared.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	outcome, err := ctrl.service.Create(req)
	if err != nil {
		return shared.ToHTTPError(err, "could not create outcome")
	}
	return c.JSON(201, outcome)
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

	outcome, err := ctrl.service.Update(id, patch)
	if err != nil {
		return shared.ToHTTPError(err, "could not update outcome")
	}
	return c.JSON(200, outcome)
}

func (ctrl *controller) Delete(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.service.Delete(id); err != nil {
		return shared.ToHTTPError(err, "could not delete outcome")
	}
	return c.NoContent(204)
}

func (ctrl *controller) Stats(c shared.Context) error {
	stats, err := ctrl.service.Statistics()
	if err != nil {
		return shared.ToHTTPError(err, "could not compute outcome statistics")
	}
	return c.JSON(200, stats)
}

func parseID(c shared.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("outcomeID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid outcome id").WithInternal(err)
	}
	return uint(id), nil
}
