package controller

import (
	"errors"

	"pathshala_backend/internal/service"
	"pathshala_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 学习进度分析
// @Description 汇总历史成绩：平均分、近期走势和强弱科目
// @Tags 进度
// @Produce json
// @Param userId path string true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{userId} [get]
func (c *ProgressController) Progress(ctx *gin.Context) {
	report, err := c.ProgressService.Progress(ctx.Request.Context(), ctx.Param("userId"))
	if errors.Is(err, util.ErrLearnerNotFound) {
		util.NotFound(ctx, "学习者不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
