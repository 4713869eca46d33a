package controller

import (
	"basecase_backend/internal/model"
	"basecase_backend/internal/service"
	"basecase_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SheetController struct {
	SheetService *service.SheetService
}

func NewSheetController(sheetService *service.SheetService) *SheetController {
	return &SheetController{SheetService: sheetService}
}

// @Summary List sheets with the caller's completion counts
// @Tags sheets
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/sheets [get]
func (c *SheetController) ListSheets(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sheets, err := c.SheetService.ListSheets(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sheets)
}

// @Summary Get a sheet with problems and the caller's progress
// @Tags sheets
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "sheet slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sheets/{slug} [get]
func (c *SheetController) GetSheet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.SheetService.GetSheetWithProgress(user.UserID, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrSheetNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

type SheetRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// @Summary Create a sheet
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SheetRequest true "sheet"
// @Success 201 {object} util.Response
// @Router /api/admin/sheets [post]
func (c *SheetController) CreateSheet(ctx *gin.Context) {
	var req SheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sheet := &model.Sheet{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.SheetService.CreateSheet(sheet); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, sheet)
}

// @Summary Update a sheet
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "sheet id"
// @Param body body SheetRequest true "sheet"
// @Success 200 {object} util.Response
// @Router /api/admin/sheets/{id} [put]
func (c *SheetController) UpdateSheet(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid sheet ID")
		return
	}

	var req SheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sheet, err := c.SheetService.UpdateSheet(uint(id), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, util.ErrSheetNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sheet)
}

// @Summary Delete a sheet
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "sheet id"
// @Success 200 {object} util.Response
// @Router /api/admin/sheets/{id} [delete]
func (c *SheetController) DeleteSheet(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid sheet ID")
		return
	}

	if err := c.SheetService.DeleteSheet(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Sheet deleted"})
}
