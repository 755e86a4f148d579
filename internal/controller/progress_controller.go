package controller

import (
	"errors"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetOwn godoc
// @Summary Get the current student's progress
// @Description Returns per-concept attempt counts and statuses for the authenticated student
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.ConceptProgress} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/progress [get]
func (c *ProgressController) GetOwn(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	c.respond(ctx, claims.UserID)
}

// GetForStudent godoc
// @Summary Get a student's progress
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} util.Response{data=[]service.ConceptProgress} "Success"
// @Failure 404 {object} util.Response "Student not found"
// @Router /api/students/{id}/progress [get]
func (c *ProgressController) GetForStudent(ctx *gin.Context) {
	c.respond(ctx, util.MustParseUint(ctx.Param("id")))
}

func (c *ProgressController) respond(ctx *gin.Context, studentID uint) {
	progress, err := c.ProgressService.GetStudentProgress(studentID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "student not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
