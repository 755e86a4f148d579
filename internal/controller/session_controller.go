package controller

import (
	"errors"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// swagger:model SessionStartRequest
type SessionStartRequest struct {
	ConceptID uint `json:"conceptId" binding:"required"`
}

// Start godoc
// @Summary Start a learning session
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SessionStartRequest true "Concept to study"
// @Success 201 {object} util.Response{data=model.LearningSession} "Created"
// @Failure 404 {object} util.Response "Concept not found"
// @Router /api/sessions/start [post]
func (c *SessionController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SessionStartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.Start(ctx.Request.Context(), claims.UserID, req.ConceptID)
	if err != nil {
		if errors.Is(err, util.ErrConceptNotFound) {
			util.NotFound(ctx, "concept not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// End godoc
// @Summary End a learning session
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Session ID"
// @Success 200 {object} util.Response{data=model.LearningSession} "Success"
// @Failure 403 {object} util.Response "Not the session owner"
// @Failure 404 {object} util.Response "Session not found"
// @Failure 409 {object} util.Response "Session already ended"
// @Router /api/sessions/{id}/end [post]
func (c *SessionController) End(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.SessionService.End(ctx.Request.Context(), claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, "session not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrSessionEnded):
			util.Error(ctx, 409, "session already ended")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, session)
}

// List godoc
// @Summary List the current student's sessions
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.LearningSession} "Success"
// @Router /api/sessions [get]
func (c *SessionController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.SessionService.ListByStudent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}
