package participant

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
		participants, err := ctrl.service.FilterByProject(uint(id))
		if err != nil {
			return shared.ToHTTPError(err, "could not list participants")
		}
		return c.JSON(200, participants)
	}
	if c.QueryParam("crossSkillTrained") == "true" {
		participants, err := ctrl.service.CrossSkillTrained()
		if err != nil {
			return shared.ToHTTPError(err, "could not list participants")
		}
		return c.JSON(200, participants)
	}

	participants, err := ctrl.service.List()
	if err != nil {
		return shared.ToHTTPError(err, "could not list participants")
	}
	return c.JSON(200, participants)
}

func (ctrl *controller) Read(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	participant, err := ctrl.service.GetByID(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not read participant")
	}
	if participant == nil {
		return echo.NewHTTPError(404, "participant not found")
	}
	return c.JSON(200, participant)
}

func (ctrl *controller) Create(c shared.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	participant, err := ctrl.service.Create(req)
	if err != nil {
		return shared.ToHTTPError(err, "could not create participant")
	}
	return c.JSON(201, participant)
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
	if err := shared.V.Struct(patch); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	participant, err := ctrl.service.Update(id, patch)
	if err != nil {
		return shared.ToHTTPError(err, "could not update participant")
	}
	return c.JSON(200, participant)
}

func (ctrl *controller) Delete(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.service.Delete(id); err != nil {
		return shared.ToHTTPError(err, "could not delete participant")
	}
	return c.NoContent(204)
}

func (ctrl *controller) AssignToProject(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	participant, err := ctrl.service.AssignToProject(id, req.ProjectID)
	if err != nil {
		return shared.ToHTTPError(err, "could not assign participant")
	}
	return c.JSON(200, participant)
}

func (ctrl *controller) RemoveFromProject(c shared.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	participant, err := ctrl.service.RemoveFromProject(id)
	if err != nil {
		return shared.ToHTTPError(err, "could not unassign participant")
	}
	return c.JSON(200, participant)
}

func (ctrl *controller) Stats(c shared.Context) error {
	stats, err := ctrl.service.Statistics()
	if err != nil {
		return shared.ToHTTPError(err, "could not compute participant statistics")
	}
	return c.JSON(200, stats)
}

func parseID(c shared.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("participantID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid participant id").WithInternal(err)
	}
	return uint(id), nil
}
