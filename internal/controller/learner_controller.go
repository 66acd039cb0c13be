package controller

import (
	"errors"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/service"
	"pathshala_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	LearnerService *service.LearnerService
}

func NewLearnerController(learnerService *service.LearnerService) *LearnerController {
	return &LearnerController{LearnerService: learnerService}
}

type createLearnerRequest struct {
	Name              string         `json:"name" binding:"required,min=1,max=100"`
	Phone             string         `json:"phone" binding:"required,min=10,max=20"`
	TargetExam        string         `json:"target_exam" binding:"required"`
	PreferredLanguage model.Language `json:"preferred_language"`
}

// @Summary 创建学习者档案
// @Description 按手机号创建学习者，已注册时返回现有档案
// @Tags 学习者
// @Accept json
// @Produce json
// @Param learner body createLearnerRequest true "学习者信息"
// @Success 200 {object} util.Response "手机号已注册，返回现有档案"
// @Success 201 {object} util.Response "新建档案"
// @Router /api/users [post]
func (c *LearnerController) CreateLearner(ctx *gin.Context) {
	var req createLearnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner, created, err := c.LearnerService.CreateOrGet(req.Name, req.Phone, req.TargetExam, req.PreferredLanguage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if created {
		util.Created(ctx, learner)
		return
	}
	util.Success(ctx, learner)
}

// @Summary 获取学习者档案
// @Tags 学习者
// @Produce json
// @Param id path string true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *LearnerController) GetLearner(ctx *gin.Context) {
	learner, err := c.LearnerService.GetByID(ctx.Param("id"))
	if errors.Is(err, util.ErrLearnerNotFound) {
		util.NotFound(ctx, "学习者不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learner)
}
