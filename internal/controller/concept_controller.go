package controller

import (
	"errors"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ConceptController struct {
	ConceptService *service.ConceptService
}

func NewConceptController(conceptService *service.ConceptService) *ConceptController {
	return &ConceptController{ConceptService: conceptService}
}

// List godoc
// @Summary List concepts
// @Description Returns the concept catalogue ordered for display
// @Tags concepts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Concept} "Success"
// @Router /api/concepts [get]
func (c *ConceptController) List(ctx *gin.Context) {
	concepts, err := c.ConceptService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, concepts)
}

// Get godoc
// @Summary Get a concept
// @Tags concepts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Concept ID"
// @Success 200 {object} util.Response{data=model.Concept} "Success"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/concepts/{id} [get]
func (c *ConceptController) Get(ctx *gin.Context) {
	concept, err := c.ConceptService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, concept)
}

// Create godoc
// @Summary Create a concept
// @Tags concepts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ConceptRequest true "Concept payload"
// @Success 201 {object} util.Response{data=model.Concept} "Created"
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/teacher/concepts [post]
func (c *ConceptController) Create(ctx *gin.Context) {
	var req service.ConceptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	concept, err := c.ConceptService.Create(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, concept)
}

// Update godoc
// @Summary Update a concept
// @Tags concepts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Concept ID"
// @Param body body service.ConceptRequest true "Concept payload"
// @Success 200 {object} util.Response{data=model.Concept} "Success"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/teacher/concepts/{id} [put]
func (c *ConceptController) Update(ctx *gin.Context) {
	var req service.ConceptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	concept, err := c.ConceptService.Update(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, concept)
}
