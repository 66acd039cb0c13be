package controller

import (
	"errors"

	"pathshala_backend/internal/service"
	"pathshala_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyPlanController struct {
	StudyPlanService *service.StudyPlanService
}

func NewStudyPlanController(studyPlanService *service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{StudyPlanService: studyPlanService}
}

// @Summary 获取当日学习计划
// @Description 返回学习者当天的 20 分钟学习计划，同一天内幂等
// @Tags 学习计划
// @Produce json
// @Param userId path string true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/study-plan/{userId} [get]
func (c *StudyPlanController) DailyPlan(ctx *gin.Context) {
	plan, err := c.StudyPlanService.DailyPlan(ctx.Param("userId"))
	if errors.Is(err, util.ErrLearnerNotFound) {
		util.NotFound(ctx, "学习者不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}
