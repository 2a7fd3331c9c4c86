package service

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
	var facilityID uint
	if raw := c.QueryParam("facilityId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(400, "invalid facility id").WithInternal(err)
		}
		facilityID = uint(id)
	}

	services, err := ctrl.service.Filter(c.QueryParam("category"), c.QueryParam("skillType"), facilityID)
	if err != nil {
		return shared.ToHTTPError(err, "could not list services")
	}
	return c.JSON(200, services)
}

func (ctrl *controller) Read(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	svc, err := ctrl.service.GetByID(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not read service")
	}
	if svc == nil {
		return echo.NewHTTPError(404, "service not found")
	}
	return c.JSON(200, svc)
}

func (ctrl *controller) Create(c shared.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	svc, err := ctrl.service.Create(req)
	if err != nil {
		return shared.ToHTTPError(err, "could not create service")
	}
	return c.JSON(201, svc)
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

	svc, err := ctrl.service.Update(id, patch)
	if err != nil {
		return shared.ToHTTPError(err, "could not update service")
	}
	return c.JSON(200, svc)
}

func (ctrl *controller) Delete(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.service.Delete(id); err != nil {
		return shared.ToHTTPError(err, "could not delete service")
	}
	return c.NoContent(204)
}

func (ctrl *controller) Stats(c shared.Context) error {
	stats, err := ctrl.service.Statistics()
	if err != nil {
		return shared.ToHTTPError(err, "could not compute service statistics")
	}
	return c.JSON(200, stats)
}

func parseID(c shared.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("serviceID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid service id").WithInternal(err)
	}
	return uint(id), nil
}
