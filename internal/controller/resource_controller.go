package controller

import (
	"errors"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// ListByConcept godoc
// @Summary List resources for a concept
// @Tags resources
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Concept ID"
// @Success 200 {object} util.Response{data=[]model.Resource} "Success"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/concepts/{id}/resources [get]
func (c *ResourceController) ListByConcept(ctx *gin.Context) {
	resources, err := c.ResourceService.ListByConcept(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// CreateLink godoc
// @Summary Create a link resource
// @Tags resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ResourceLinkRequest true "Link resource payload"
// @Success 201 {object} util.Response{data=model.Resource} "Created"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/teacher/resources [post]
func (c *ResourceController) CreateLink(ctx *gin.Context) {
	var req service.ResourceLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ResourceService.CreateLink(req)
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, resource)
}

// Upload godoc
// @Summary Upload a file resource
// @Description Accepts a multipart upload. Video files are probed for duration.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param conceptId formData int true "Concept ID"
// @Param title formData string true "Resource title"
// @Param file formData file true "File to upload"
// @Success 201 {object} util.Response{data=model.Resource} "Created"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/teacher/resources/upload [post]
func (c *ResourceController) Upload(ctx *gin.Context) {
	conceptID := util.MustParseUint(ctx.PostForm("conceptId"))
	title := ctx.PostForm("title")
	if conceptID == 0 || title == "" {
		util.BadRequest(ctx, "conceptId and title are required")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	resource, err := c.ResourceService.UploadFile(ctx.Request.Context(), conceptID, title, fileHeader)
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, resource)
}

// Delete godoc
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Resource not found"
// @Router /api/teacher/resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	if err := c.ResourceService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, "resource not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
