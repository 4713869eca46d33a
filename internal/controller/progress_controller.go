package controller

import (
	"basecase_backend/internal/service"
	"basecase_backend/internal/util"
	"basecase_backend/pkg/monitoring"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary Save progress for a problem
// @Description Applies a partial progress update (bookmark, solved, confidence, notes) and returns the persisted record. Unsolving a solved problem is rejected.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "problem slug"
// @Param body body service.ProgressPatch true "progress patch"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{slug} [patch]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	// Strict decode: unknown fields are a validation error, caught before
	// any business rule runs.
	var patch service.ProgressPatch
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		monitoring.ProgressSaves.WithLabelValues("malformed").Inc()
		util.BadRequest(ctx, "malformed body: "+err.Error())
		return
	}

	slug := ctx.Param("slug")
	record, err := c.ProgressService.UpdateProgress(ctx.Request.Context(), user.UserID, slug, patch)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProblemNotFound):
			monitoring.ProgressSaves.WithLabelValues("not_found").Inc()
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCannotUnsolve), errors.Is(err, util.ErrInvalidConfidence):
			monitoring.ProgressSaves.WithLabelValues("rejected").Inc()
			util.BadRequest(ctx, err.Error())
		default:
			monitoring.ProgressSaves.WithLabelValues("error").Inc()
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.ProgressSaves.WithLabelValues("ok").Inc()
	util.Success(ctx, record)
}

// @Summary Get progress for a problem
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "problem slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{slug} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.ProgressService.GetProgressBySlug(user.UserID, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// Untouched problems come back as null data rather than 404.
	util.Success(ctx, record)
}
