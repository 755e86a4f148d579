package controller

import (
	"errors"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DiagnoseController struct {
	DiagnosticService *service.DiagnosticService
	CheckpointService *service.CheckpointService
}

func NewDiagnoseController(diagnosticService *service.DiagnosticService, checkpointService *service.CheckpointService) *DiagnoseController {
	return &DiagnoseController{
		DiagnosticService: diagnosticService,
		CheckpointService: checkpointService,
	}
}

// swagger:model StepSubmissionRequest
type StepSubmissionRequest struct {
	OptionID      uint `json:"optionId" binding:"required"`
	AttemptNumber int  `json:"attemptNumber" binding:"required,min=1"`
}

// SubmitStep godoc
// @Summary Submit an answer for a problem step
// @Description Evaluates the chosen option and returns a verdict with graduated hints
// @Tags diagnose
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param stepId path int true "Step ID"
// @Param body body StepSubmissionRequest true "Chosen option and attempt number"
// @Success 200 {object} util.Response{data=service.Verdict} "Success"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Step not found"
// @Router /api/diagnose/steps/{stepId}/submit [post]
func (c *DiagnoseController) SubmitStep(ctx *gin.Context) {
	var req StepSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	verdict, err := c.DiagnosticService.EvaluateStepSubmission(
		util.MustParseUint(ctx.Param("stepId")), req.OptionID, req.AttemptNumber)
	if err != nil {
		if errors.Is(err, util.ErrStepNotFound) {
			util.NotFound(ctx, "step not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, verdict)
}

// swagger:model CheckpointSubmissionRequest
type CheckpointSubmissionRequest struct {
	Answer        string `json:"answer" binding:"required"`
	AttemptNumber int    `json:"attemptNumber" binding:"required,min=1"`
}

// SubmitCheckpoint godoc
// @Summary Submit an answer for a checkpoint
// @Description Grades the answer, matches known error patterns on a miss and records the attempt against the student's progress
// @Tags diagnose
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param checkpointId path int true "Checkpoint ID"
// @Param body body CheckpointSubmissionRequest true "Answer and attempt number"
// @Success 200 {object} util.Response{data=service.CheckpointVerdict} "Success"
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Checkpoint or student not found"
// @Failure 409 {object} util.Response "Progress record conflict"
// @Router /api/diagnose/checkpoints/{checkpointId}/submit [post]
func (c *DiagnoseController) SubmitCheckpoint(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CheckpointSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	verdict, err := c.DiagnosticService.EvaluateCheckpointAnswer(
		util.MustParseUint(ctx.Param("checkpointId")), req.Answer, req.AttemptNumber, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCheckpointNotFound):
			util.NotFound(ctx, "checkpoint not found")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "student not found")
		case errors.Is(err, util.ErrProgressConflict):
			util.Error(ctx, 409, "progress record busy, please retry")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, verdict)
}

// ListCheckpoints godoc
// @Summary List checkpoints for a concept
// @Description Returns checkpoints in presentation order. Correct answers are withheld.
// @Tags diagnose
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Concept ID"
// @Success 200 {object} util.Response{data=[]model.Checkpoint} "Success"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/concepts/{id}/checkpoints [get]
func (c *DiagnoseController) ListCheckpoints(ctx *gin.Context) {
	checkpoints, err := c.CheckpointService.ListByConcept(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, checkpoints)
}

// CreateCheckpoint godoc
// @Summary Create a checkpoint
// @Tags diagnose
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CheckpointRequest true "Checkpoint payload"
// @Success 201 {object} util.Response{data=model.Checkpoint} "Created"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/teacher/checkpoints [post]
func (c *DiagnoseController) CreateCheckpoint(ctx *gin.Context) {
	var req service.CheckpointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkpoint, err := c.CheckpointService.Create(req)
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, checkpoint)
}

// UpdateCheckpoint godoc
// @Summary Update a checkpoint
// @Tags diagnose
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Checkpoint ID"
// @Param body body service.CheckpointRequest true "Checkpoint payload"
// @Success 200 {object} util.Response{data=model.Checkpoint} "Success"
// @Failure 404 {object} util.Response "Checkpoint not found"
// @Router /api/teacher/checkpoints/{id} [put]
func (c *DiagnoseController) UpdateCheckpoint(ctx *gin.Context) {
	var req service.CheckpointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkpoint, err := c.CheckpointService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrCheckpointNotFound) {
			util.NotFound(ctx, "checkpoint not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, checkpoint)
}

// DeleteCheckpoint godoc
// @Summary Delete a checkpoint
// @Tags diagnose
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Checkpoint ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Checkpoint not found"
// @Router /api/teacher/checkpoints/{id} [delete]
func (c *DiagnoseController) DeleteCheckpoint(ctx *gin.Context) {
	if err := c.CheckpointService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrCheckpointNotFound) {
			util.NotFound(ctx, "checkpoint not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListPatterns godoc
// @Summary List error patterns for a checkpoint
// @Tags diagnose
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Checkpoint ID"
// @Success 200 {object} util.Response{data=[]model.ErrorPattern} "Success"
// @Failure 404 {object} util.Response "Checkpoint not found"
// @Router /api/teacher/checkpoints/{id}/patterns [get]
func (c *DiagnoseController) ListPatterns(ctx *gin.Context) {
	patterns, err := c.CheckpointService.ListPatterns(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrCheckpointNotFound) {
			util.NotFound(ctx, "checkpoint not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, patterns)
}

// CreatePattern godoc
// @Summary Create an error pattern for a checkpoint
// @Tags diagnose
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Checkpoint ID"
// @Param body body service.ErrorPatternRequest true "Pattern payload"
// @Success 201 {object} util.Response{data=model.ErrorPattern} "Created"
// @Failure 404 {object} util.Response "Checkpoint not found"
// @Router /api/teacher/checkpoints/{id}/patterns [post]
func (c *DiagnoseController) CreatePattern(ctx *gin.Context) {
	var req service.ErrorPatternRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pattern, err := c.CheckpointService.CreatePattern(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrCheckpointNotFound) {
			util.NotFound(ctx, "checkpoint not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, pattern)
}

// DeletePattern godoc
// @Summary Delete an error pattern
// @Tags diagnose
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Pattern ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Pattern not found"
// @Router /api/teacher/patterns/{id} [delete]
func (c *DiagnoseController) DeletePattern(ctx *gin.Context) {
	if err := c.CheckpointService.DeletePattern(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrPatternNotFound) {
			util.NotFound(ctx, "pattern not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
