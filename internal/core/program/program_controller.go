package program

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
	programs, err := ctrl.service.List()
	if err != nil {
		return shared.ToHTTPError(err, "could not list programs")
	}
	return c.JSON(200, programs)
}

func (ctrl *controller) Read(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	program, err := ctrl.service.GetByID(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not read program")
	}
	if program == nil {
		return echo.NewHTTPError(404, "program not found")
	}
	return c.JSON(200, program)
}

func (ctrl *controller) Create(c shared.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	program, err := ctrl.service.Create(req)
	if err != nil {
		return shared.ToHTTPError(err, "could not create program")
	}
	return c.JSON(201, program)
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

	program, err := ctrl.service.Update(id, patch)
	if err != nil {
		return shared.ToHTTPError(err, "could not update program")
	}
	return c.JSON(200, program)
}

func (ctrl *controller) Delete(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.service.Delete(id); err != nil {
		return shared.ToHTTPError(err, "could not delete program")
	}
	return c.NoContent(204)
}

func (ctrl *controller) Search(c shared.Context) error {
	programs, err := ctrl.service.Search(c.QueryParam("q"))
	if err != nil {
		return shared.ToHTTPError(err, "could not search programs")
	}
	return c.JSON(200, programs)
}

func (ctrl *controller) Stats(c shared.Context) error {
	stats, err := ctrl.service.Statistics()
	if err != nil {
		return shared.ToHTTPError(err, "could not compute program statistics")
	}
	return c.JSON(200, stats)
}

func parseID(c shared.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("programID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid program id").WithInternal(err)
	}
	return uint(id), nil
}
