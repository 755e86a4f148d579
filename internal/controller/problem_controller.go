package controller

import (
	"errors"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	ProblemService *service.ProblemService
}

func NewProblemController(problemService *service.ProblemService) *ProblemController {
	return &ProblemController{ProblemService: problemService}
}

// Get godoc
// @Summary Get a problem for solving
// @Description Returns the problem with its steps and options. Correctness flags and explanations are withheld.
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Problem ID"
// @Success 200 {object} util.Response{data=service.StudentProblem} "Success"
// @Failure 404 {object} util.Response "Problem not found"
// @Router /api/problems/{id} [get]
func (c *ProblemController) Get(ctx *gin.Context) {
	problem, err := c.ProblemService.GetForStudent(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx, "problem not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, problem)
}

// ListByConcept godoc
// @Summary List problems for a concept
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Concept ID"
// @Success 200 {object} util.Response{data=[]model.Problem} "Success"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/concepts/{id}/problems [get]
func (c *ProblemController) ListByConcept(ctx *gin.Context) {
	problems, err := c.ProblemService.ListByConcept(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, problems)
}

// Create godoc
// @Summary Create a problem with steps and options
// @Tags problems
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ProblemRequest true "Problem payload"
// @Success 201 {object} util.Response{data=model.Problem} "Created"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/teacher/problems [post]
func (c *ProblemController) Create(ctx *gin.Context) {
	var req service.ProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.Create(req)
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, problem)
}

// Delete godoc
// @Summary Delete a problem
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Problem ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Problem not found"
// @Router /api/teacher/problems/{id} [delete]
func (c *ProblemController) Delete(ctx *gin.Context) {
	if err := c.ProblemService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx, "problem not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
