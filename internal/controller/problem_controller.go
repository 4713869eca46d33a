package controller

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/repository"
	"basecase_backend/internal/service"
	"basecase_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	ProblemService *service.ProblemService
}

func NewProblemController(problemService *service.ProblemService) *ProblemController {
	return &ProblemController{ProblemService: problemService}
}

// @Summary List problems
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param difficulty query string false "EASY, MEDIUM or HARD"
// @Param pattern query string false "pattern name"
// @Param sheetId query int false "sheet id"
// @Param q query string false "title search"
// @Success 200 {object} util.Response
// @Router /api/problems [get]
func (c *ProblemController) ListProblems(ctx *gin.Context) {
	filter := repository.ProblemFilter{
		Difficulty: ctx.Query("difficulty"),
		Pattern:    ctx.Query("pattern"),
		Search:     ctx.Query("q"),
	}
	if sheetID, err := strconv.Atoi(ctx.Query("sheetId")); err == nil {
		filter.SheetID = uint(sheetID)
	}

	problems, err := c.ProblemService.ListProblems(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, problems)
}

// @Summary Get a problem with the caller's progress
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "problem slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/problems/{slug} [get]
func (c *ProblemController) GetProblem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.ProblemService.GetProblemWithProgress(user.UserID, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary Create a problem
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Problem true "problem"
// @Success 201 {object} util.Response
// @Router /api/admin/problems [post]
func (c *ProblemController) CreateProblem(ctx *gin.Context) {
	var problem model.Problem
	if err := ctx.ShouldBindJSON(&problem); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProblemService.CreateProblem(&problem); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, problem)
}

// @Summary Update a problem
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "problem id"
// @Param body body model.Problem true "problem"
// @Success 200 {object} util.Response
// @Router /api/admin/problems/{id} [put]
func (c *ProblemController) UpdateProblem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid problem ID")
		return
	}

	var update model.Problem
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.UpdateProblem(uint(id), &update)
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, problem)
}

// @Summary Delete a problem
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "problem id"
// @Success 200 {object} util.Response
// @Router /api/admin/problems/{id} [delete]
func (c *ProblemController) DeleteProblem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid problem ID")
		return
	}

	if err := c.ProblemService.DeleteProblem(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Problem deleted"})
}
