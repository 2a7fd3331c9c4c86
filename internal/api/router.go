package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/innovate-hub/registry/internal/catalog"
	"github.com/innovate-hub/registry/internal/core/equipment"
	"github.com/innovate-hub/registry/internal/core/facility"
	"github.com/innovate-hub/registry/internal/core/outcome"
	"github.com/innovate-hub/registry/internal/core/participant"
	"github.com/innovate-hub/registry/internal/core/program"
	"github.com/innovate-hub/registry/internal/core/project"
	"github.com/innovate-hub/registry/internal/core/service"
	"github.com/innovate-hub/registry/internal/database/repositories"
	"github.com/innovate-hub/registry/internal/shared"
)

// BuildRouter wires repositories, services and HTTP controllers onto a
// fresh echo server. Migrations run as a side effect of repository
// construction.
func BuildRouter(db shared.DB, cat catalog.Catalog) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	programRepository := repositories.NewProgramRepository(db)
	facilityRepository := repositories.NewFacilityRepository(db)
	projectRepository := repositories.NewProjectRepository(db)
	participantRepository := repositories.NewParticipantRepository(db)
	equipmentRepository := repositories.NewEquipmentRepository(db)
	serviceRepository := repositories.NewServiceRepository(db)
	outcomeRepository := repositories.NewOutcomeRepository(db)

	programController := program.NewHTTPController(
		program.NewService(programRepository, projectRepository, cat))
	facilityController := facility.NewHTTPController(
		facility.NewService(facilityRepository, serviceRepository, equipmentRepository, projectRepository))
	projectController := project.NewHTTPController(
		project.NewService(projectRepository, programRepository, facilityRepository, participantRepository, outcomeRepository))
	participantController := participant.NewHTTPController(
		participant.NewService(participantRepository, projectRepository))
	equipmentController := equipment.NewHTTPController(
		equipment.NewService(equipmentRepository, facilityRepository, projectRepository, cat))
	serviceController := service.NewHTTPController(
		service.NewService(serviceRepository, facilityRepository, projectRepository))
	outcomeController := outcome.NewHTTPController(
		outcome.NewService(outcomeRepository, projectRepository))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	v1 := e.Group("/api/v1")
	v1.GET("/catalog", func(c echo.Context) error {
		return c.JSON(200, cat)
	})

	programs := v1.Group("/programs")
	programs.GET("", programController.List)
	programs.POST("", programController.Create)
	programs.GET("/search", programController.Search)
	programs.GET("/stats", programController.Stats)
	programs.GET("/:programID", programController.Read)
	programs.PATCH("/:programID", programController.Patch)
	programs.DELETE("/:programID", programController.Delete)

	facilities := v1.Group("/facilities")
	facilities.GET("", facilityController.List)
	facilities.POST("", facilityController.Create)
	facilities.GET("/search", facilityController.Search)
	facilities.GET("/by-partner", facilityController.FilterByPartner)
	facilities.GET("/stats", facilityController.Stats)
	facilities.GET("/:facilityID", facilityController.Read)
	facilities.PATCH("/:facilityID", facilityController.Patch)
	facilities.DELETE("/:facilityID", facilityController.Delete)

	projects := v1.Group("/projects")
	projects.GET("", projectController.List)
	projects.POST("", projectController.Create)
	projects.GET("/stats", projectController.Stats)
	projects.GET("/:projectID", projectController.Read)
	projects.PATCH("/:projectID", projectController.Patch)
	projects.DELETE("/:projectID", projectController.Delete)

	participants := v1.Group("/participants")
	participants.GET("", participantController.List)
	participants.POST("", participantController.Create)
	participants.GET("/stats", participantController.Stats)
	participants.GET("/:participantID", participantController.Read)
	participants.PATCH("/:participantID", participantController.Patch)
	participants.DELETE("/:participantID", participantController.Delete)
	participants.POST("/:participantID/project", participantController.AssignToProject)
	participants.DELETE("/:participantID/project", participantController.RemoveFromProject)

	equipmentGroup := v1.Group("/equipment")
	equipmentGroup.GET("", equipmentController.List)
	equipmentGroup.POST("", equipmentController.Create)
	equipmentGroup.GET("/search", equipmentController.Search)
	equipmentGroup.GET("/stats", equipmentController.Stats)
	equipmentGroup.GET("/:equipmentID", equipmentController.Read)
	equipmentGroup.PATCH("/:equipmentID", equipmentController.Patch)
	equipmentGroup.DELETE("/:equipmentID", equipmentController.Delete)

	services := v1.Group("/services")
	services.GET("", serviceController.List)
	services.POST("", serviceController.Create)
	services.GET("/stats", serviceController.Stats)
	services.GET("/:serviceID", serviceController.Read)
	services.PATCH("/:serviceID", serviceController.Patch)
	services.DELETE("/:serviceID", serviceController.Delete)

	outcomes := v1.Group("/outcomes")
	outcomes.GET("", outcomeController.List)
	outcomes.POST("", outcomeController.Create)
	outcomes.GET("/stats", outcomeController.Stats)
	outcomes.GET("/:outcomeID", outcomeController.Read)
	outcomes.PATCH("/:outcomeID", outcomeController.Patch)
	outcomes.DELETE("/:outcomeID", outcomeController.Delete)

	return e
}
