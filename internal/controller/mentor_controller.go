package controller

import (
	"basecase_backend/internal/service"
	"basecase_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MentorController struct {
	MentorService *service.MentorService
}

func NewMentorController(mentorService *service.MentorService) *MentorController {
	return &MentorController{MentorService: mentorService}
}

// @Summary Ask the AI mentor a question
// @Tags mentor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AskRequest true "question"
// @Success 200 {object} util.Response
// @Router /api/mentor/ask [post]
func (c *MentorController) Ask(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.MentorService.Ask(user.UserID, req.Question)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary Get mentor chat history
// @Tags mentor
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max entries"
// @Success 200 {object} util.Response
// @Router /api/mentor/history [get]
func (c *MentorController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	history, err := c.MentorService.GetHistory(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}
