package controller

import (
	"errors"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SimulationController struct {
	SimulationService *service.SimulationService
}

func NewSimulationController(simulationService *service.SimulationService) *SimulationController {
	return &SimulationController{SimulationService: simulationService}
}

// ListByConcept godoc
// @Summary List simulations for a concept
// @Tags simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Concept ID"
// @Success 200 {object} util.Response{data=[]model.Simulation} "Success"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/concepts/{id}/simulations [get]
func (c *SimulationController) ListByConcept(ctx *gin.Context) {
	simulations, err := c.SimulationService.ListByConcept(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, simulations)
}

// Get godoc
// @Summary Get a simulation config
// @Tags simulations
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Simulation ID"
// @Success 200 {object} util.Response{data=model.Simulation} "Success"
// @Failure 404 {object} util.Response "Simulation not found"
// @Router /api/simulations/{id} [get]
func (c *SimulationController) Get(ctx *gin.Context) {
	simulation, err := c.SimulationService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSimulationNotFound) {
			util.NotFound(ctx, "simulation not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, simulation)
}

// Create godoc
// @Summary Create a simulation
// @Tags simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SimulationRequest true "Simulation payload"
// @Success 201 {object} util.Response{data=model.Simulation} "Created"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/teacher/simulations [post]
func (c *SimulationController) Create(ctx *gin.Context) {
	var req service.SimulationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	simulation, err := c.SimulationService.Create(req)
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, simulation)
}
