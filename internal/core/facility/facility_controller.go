package facility

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
	facilities, err := ctrl.service.List()
	if err != nil {
		return shared.ToHTTPError(err, "could not list facilities")
	}
	return c.JSON(200, facilities)
}

func (ctrl *controller) Read(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	facility, err := ctrl.service.GetByID(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not read facility")
	}
	if facility == nil {
		return echo.NewHTTPError(404, "facility not found")
	}
	return c.JSON(200, facility)
}

func (ctrl *controller) Create(c shared.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	facility, err := ctrl.service.Create(req)
	if err != nil {
		return shared.ToHTTPError(err, "could not create facility")
	}
	return c.JSON(201, facility)
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

	facility, err := ctrl.service.Update(id, patch)
	if err != nil {
		return shared.ToHTTPError(err, "could not update facility")
	}
	return c.JSON(200, facility)
}

func (ctrl *controller) Delete(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.service.Delete(id); err != nil {
		return shared.ToHTTPError(err, "could not delete facility")
	}
	return c.NoContent(204)
}

func (ctrl *controller) Search(c shared.Context) error {
	facilities, err := ctrl.service.Search(
		c.QueryParam("name"),
		c.QueryParam("type"),
		c.QueryParam("location"),
	)
	if err != nil {
		return shared.ToHTTPError(err, "could not search facilities")
	}
	return c.JSON(200, facilities)
}

func (ctrl *controller) FilterByPartner(c shared.Context) error {
	facilities, err := ctrl.service.FilterByPartner(c.QueryParam("partner"))
	if err != nil {
		return shared.ToHTTPError(err, "could not filter facilities")
	}
	return c.JSON(200, facilities)
}

func (ctrl *controller) Stats(c shared.Context) error {
	stats, err := ctrl.service.Statistics()
	if err != nil {
		return shared.ToHTTPError(err, "could not compute facility statistics")
	}
	return c.JSON(200, stats)
}

func parseID(c shared.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("facilityID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid facility id").WithInternal(err)
	}
	return uint(id), nil
}
