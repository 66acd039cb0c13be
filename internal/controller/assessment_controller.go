package controller

import (
	"errors"
	"strconv"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/service"
	"pathshala_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	ProgressService   *service.ProgressService
}

func NewAssessmentController(
	assessmentService *service.AssessmentService,
	progressService *service.ProgressService,
) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
		ProgressService:   progressService,
	}
}

type startDiagnosticRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// @Summary 开始诊断测试
// @Description 从题库分层抽取 10 道题，创建一次诊断测评
// @Tags 测评
// @Accept json
// @Produce json
// @Param request body startDiagnosticRequest true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/diagnostic-test [post]
func (c *AssessmentController) StartDiagnostic(ctx *gin.Context) {
	var req startDiagnosticRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.AssessmentService.StartDiagnostic(req.UserID)
	if errors.Is(err, util.ErrLearnerNotFound) {
		util.NotFound(ctx, "学习者不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, test)
}

type submitAnswerRequest struct {
	AssessmentID   string `json:"assessment_id" binding:"required"`
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedOption *int   `json:"selected_option" binding:"required"`
	TimeTaken      int    `json:"time_taken"`
}

// @Summary 提交答案
// @Description 判分并记录一次作答，测评完成后拒绝新答案
// @Tags 测评
// @Accept json
// @Produce json
// @Param request body submitAnswerRequest true "作答内容"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/submit-answer [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	var req submitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.SubmitAnswer(req.AssessmentID, req.QuestionID, *req.SelectedOption, req.TimeTaken)
	switch {
	case errors.Is(err, util.ErrAssessmentNotFound):
		util.NotFound(ctx, "测评不存在")
	case errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx, "题目不存在")
	case errors.Is(err, util.ErrAssessmentCompleted):
		util.Conflict(ctx, "测评已完成，不能再提交答案")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, result)
	}
}

type completeAssessmentRequest struct {
	AssessmentID string `json:"assessment_id" binding:"required"`
}

// @Summary 完成测评
// @Description 结算成绩并更新学习者技能档案，重复结算返回冲突
// @Tags 测评
// @Accept json
// @Produce json
// @Param request body completeAssessmentRequest true "测评ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/complete-assessment [post]
func (c *AssessmentController) CompleteAssessment(ctx *gin.Context) {
	var req completeAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.AssessmentRepo.FindByID(req.AssessmentID)
	if errors.Is(err, util.ErrAssessmentNotFound) {
		util.NotFound(ctx, "测评不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	result, err := c.AssessmentService.CompleteAssessment(req.AssessmentID)
	switch {
	case errors.Is(err, util.ErrAssessmentCompleted):
		util.Conflict(ctx, "测评已完成")
	case errors.Is(err, util.ErrLearnerNotFound):
		util.NotFound(ctx, "学习者不存在")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		// 成绩变了，进度快照作废
		c.ProgressService.Invalidate(ctx.Request.Context(), assessment.LearnerID)
		util.Success(ctx, result)
	}
}

// @Summary 获取自适应练习题
// @Description 按薄弱科目加权出题，LLM 不可用时回退静态题库
// @Tags 测评
// @Produce json
// @Param user_id query string true "学习者ID"
// @Param count query int false "题目数量" default(5)
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/adaptive-practice [get]
func (c *AssessmentController) AdaptivePractice(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		util.BadRequest(ctx, "user_id 不能为空")
		return
	}
	count, err := strconv.Atoi(ctx.DefaultQuery("count", strconv.Itoa(service.DefaultAdaptiveCount)))
	if err != nil || count <= 0 || count > 20 {
		util.BadRequest(ctx, "count 必须是 1-20 的整数")
		return
	}

	batch, err := c.AssessmentService.AdaptivePractice(ctx.Request.Context(), userID, count)
	if errors.Is(err, util.ErrLearnerNotFound) {
		util.NotFound(ctx, "学习者不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, batch)
}

type feedbackRequest struct {
	QuestionID string         `json:"question_id" binding:"required"`
	UserAnswer *int           `json:"user_answer" binding:"required"`
	Language   model.Language `json:"language"`
}

// @Summary 错题AI讲解
// @Description 对一次错误作答生成个性化反馈，LLM 不可用时返回固定话术
// @Tags 测评
// @Accept json
// @Produce json
// @Param request body feedbackRequest true "错题信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/ai-feedback [post]
func (c *AssessmentController) AnswerFeedback(ctx *gin.Context) {
	var req feedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Language == "" {
		req.Language = model.LanguageEnglish
	}

	result, err := c.AssessmentService.AnswerFeedback(ctx.Request.Context(), req.QuestionID, *req.UserAnswer, req.Language)
	if errors.Is(err, util.ErrQuestionNotFound) {
		util.NotFound(ctx, "题目不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 测评历史
// @Description 按创建时间倒序返回学习者的全部测评
// @Tags 测评
// @Produce json
// @Param userId path string true "学习者ID"
// @Success 200 {object} util.Response
// @Router /api/assessments/{userId} [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	assessments, err := c.AssessmentService.ListByLearner(ctx.Param("userId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assessments": assessments})
}
