package equipment

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
	if facilityID := c.QueryParam("facilityId"); facilityID != "" {
		id, err := strconv.ParseUint(facilityID, 10, 32)
		if err != nil {
			return echo.NewHTTPError(400, "invalid facility id").WithInternal(err)
		}
		equipment, err := ctrl.service.FilterByFacility(uint(id))
		if err != nil {
			return shared.ToHTTPError(err, "could not list equipment")
		}
		return c.JSON(200, equipment)
	}

	equipment, err := ctrl.service.List()
	if err != nil {
		return shared.ToHTTPError(err, "could not list equipment")
	}
	return c.JSON(200, equipment)
}

func (ctrl *controller) Read(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	equipment, err := ctrl.service.GetByID(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not read equipment")
	}
	if equipment == nil {
		return echo.NewHTTPError(404, "equipment not found")
	}
	return c.JSON(200, equipment)
}

func (ctrl *controller) Create(c shared.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	equipment, err := ctrl.service.Create(req)
	if err != nil {
		return shared.ToHTTPError(err, "could not create equipment")
	}
	return c.JSON(201, equipment)
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

	equipment, err := ctrl.service.Update(id, patch)
	if err != nil {
		return shared.ToHTTPError(err, "could not update equipment")
	}
	return c.JSON(200, equipment)
}

func (ctrl *controller) Delete(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.service.Delete(id); err != nil {
		return shared.ToHTTPError(err, "could not delete equipment")
	}
	return c.NoContent(204)
}

func (ctrl *controller) Search(c shared.Context) error {
	equipment, err := ctrl.service.Search(c.QueryParam("q"))
	if err != nil {
		return shared.ToHTTPError(err, "could not search equipment")
	}
	return c.JSON(200, equipment)
}

func (ctrl *controller) Stats(c shared.Context) error {
	stats, err := ctrl.service.Statistics()
	if err != nil {
		return shared.ToHTTPError(err, "could not compute equipment statistics")
	}
	return c.JSON(200, stats)
}

func parseID(c shared.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("equipmentID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid equipment id").WithInternal(err)
	}
	return uint(id), nil
}
