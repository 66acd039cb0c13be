package service

import (
	"context"
	"time"

	"pathshala_backend/internal/config"
	"pathshala_backend/internal/model"
	"pathshala_backend/internal/questionbank"
	"pathshala_backend/internal/repository"
	"pathshala_backend/internal/util"
	"pathshala_backend/pkg/logger"
	"pathshala_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// QuestionGenerator LLM 出题接口，测试中可替换为 mock。
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, subject model.Subject, difficulty model.Difficulty, performance map[string]interface{}) (*GeneratedQuestion, error)
	Feedback(ctx context.Context, question *model.Question, userAnswer int, language model.Language) string
}

type AssessmentService struct {
	LearnerRepo    repository.LearnerRepository
	QuestionRepo   repository.QuestionRepository
	AssessmentRepo repository.AssessmentRepository
	Bank           *questionbank.Bank
	Generator      QuestionGenerator
	SkillPolicy    string
}

func NewAssessmentService(
	learnerRepo repository.LearnerRepository,
	questionRepo repository.QuestionRepository,
	assessmentRepo repository.AssessmentRepository,
	bank *questionbank.Bank,
	generator QuestionGenerator,
	skillCfg config.SkillConfig,
) *AssessmentService {
	return &AssessmentService{
		LearnerRepo:    learnerRepo,
		QuestionRepo:   questionRepo,
		AssessmentRepo: assessmentRepo,
		Bank:           bank,
		Generator:      generator,
		SkillPolicy:    skillCfg.UpdatePolicy,
	}
}

// DiagnosticTest 诊断测试响应
type DiagnosticTest struct {
	AssessmentID   string               `json:"assessment_id"`
	Questions      []model.QuestionView `json:"questions"`
	TotalQuestions int                  `json:"total_questions"`
}

// StartDiagnostic 为学习者开启一次诊断测试：
// 从静态题库分层抽取题目，落库后创建 in_progress 测评。
func (s *AssessmentService) StartDiagnostic(learnerID string) (*DiagnosticTest, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}

	templates := s.Bank.SampleForDiagnostic()
	if len(templates) == 0 {
		return nil, util.ErrEmptyQuestionBank
	}

	questions := make([]model.Question, 0, len(templates))
	questionIDs := make([]string, 0, len(templates))
	for _, t := range templates {
		q := t.Question("")
		questions = append(questions, q)
		questionIDs = append(questionIDs, q.ID)
	}
	if err := s.QuestionRepo.CreateBatch(questions); err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		LearnerID: learnerID,
		TestType:  model.TestTypeDiagnostic,
		Questions: questionIDs,
		Status:    model.AssessmentInProgress,
	}
	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}

	views := make([]model.QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, questions[i].View())
	}
	return &DiagnosticTest{
		AssessmentID:   assessment.ID,
		Questions:      views,
		TotalQuestions: len(views),
	}, nil
}

// AnswerResult 提交答案后的即时判分结果
type AnswerResult struct {
	IsCorrect     bool              `json:"is_correct"`
	CorrectAnswer int               `json:"correct_answer"`
	Explanation   map[string]string `json:"explanation"`
}

// SubmitAnswer 判分并追加答题记录。重复提交同一题按独立作答计入，
// 已完成的测评拒绝新答案。
func (s *AssessmentService) SubmitAnswer(assessmentID, questionID string, selectedOption, timeTaken int) (*AnswerResult, error) {
	assessment, err := s.AssessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.IsCompleted() {
		return nil, util.ErrAssessmentCompleted
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return nil, err
	}

	isCorrect := selectedOption == question.CorrectAnswer
	answer := &model.AssessmentAnswer{
		AssessmentID:   assessmentID,
		QuestionID:     questionID,
		SelectedOption: selectedOption,
		IsCorrect:      isCorrect,
		TimeTaken:      timeTaken,
	}
	if err := s.AssessmentRepo.AppendAnswer(answer); err != nil {
		return nil, err
	}

	return &AnswerResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Explanation: map[string]string{
			"english": question.ExplanationEn,
			"hindi":   question.ExplanationHi,
		},
	}, nil
}

// AssessmentResult 测评完成后的成绩汇总
type AssessmentResult struct {
	OverallScore   float64             `json:"overall_score"`
	SubjectScores  map[string]float64  `json:"subject_scores"`
	SkillLevels    model.SkillLevelMap `json:"skill_levels"`
	TotalQuestions int                 `json:"total_questions"`
	CorrectAnswers int                 `json:"correct_answers"`
}

// tierFor 分数到技能等级：80 及以上 advanced，50 及以上 intermediate，其余 beginner
func tierFor(score float64) model.Difficulty {
	switch {
	case score >= 80:
		return model.DifficultyAdvanced
	case score >= 50:
		return model.DifficultyIntermediate
	default:
		return model.DifficultyBeginner
	}
}

// CompleteAssessment 结算测评：计算总分和科目分，更新学习者技能档案。
// 重复结算返回 ErrAssessmentCompleted，保证成绩只写一次。
func (s *AssessmentService) CompleteAssessment(assessmentID string) (*AssessmentResult, error) {
	assessment, err := s.AssessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.IsCompleted() {
		return nil, util.ErrAssessmentCompleted
	}

	learner, err := s.LearnerRepo.FindByID(assessment.LearnerID)
	if err != nil {
		return nil, err
	}

	answers, err := s.AssessmentRepo.ListAnswers(assessmentID)
	if err != nil {
		return nil, err
	}

	totalQuestions := len(answers)
	correctAnswers := 0
	for _, a := range answers {
		if a.IsCorrect {
			correctAnswers++
		}
	}
	overallScore := 0.0
	if totalQuestions > 0 {
		overallScore = float64(correctAnswers) / float64(totalQuestions) * 100
	}

	// 科目分：按答题记录关联的题目归属科目统计
	questionIDs := make([]string, 0, len(answers))
	for _, a := range answers {
		questionIDs = append(questionIDs, a.QuestionID)
	}
	questions, err := s.QuestionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, err
	}
	subjectByQuestion := make(map[string]model.Subject, len(questions))
	for i := range questions {
		subjectByQuestion[questions[i].ID] = questions[i].Subject
	}

	type tally struct{ correct, total int }
	counts := make(map[string]*tally)
	for _, a := range answers {
		subject, ok := subjectByQuestion[a.QuestionID]
		if !ok {
			continue
		}
		t := counts[string(subject)]
		if t == nil {
			t = &tally{}
			counts[string(subject)] = t
		}
		t.total++
		if a.IsCorrect {
			t.correct++
		}
	}
	subjectScores := make(map[string]float64, len(counts))
	for subject, t := range counts {
		subjectScores[subject] = float64(t.correct) / float64(t.total) * 100
	}

	now := time.Now().UTC()
	assessment.Score = overallScore
	assessment.SubjectScores = subjectScores
	assessment.Status = model.AssessmentCompleted
	assessment.CompletedAt = &now
	if err := s.AssessmentRepo.Update(assessment); err != nil {
		return nil, err
	}

	// merge 只覆盖本次考到的科目，replace 整表重建
	skillLevels := model.SkillLevelMap{}
	if s.SkillPolicy != "replace" {
		for subject, level := range learner.SkillLevels {
			skillLevels[subject] = level
		}
	}
	for subject, score := range subjectScores {
		skillLevels[subject] = string(tierFor(score))
	}
	if err := s.LearnerRepo.UpdateSkillLevels(learner.ID, skillLevels); err != nil {
		return nil, err
	}

	return &AssessmentResult{
		OverallScore:   overallScore,
		SubjectScores:  subjectScores,
		SkillLevels:    skillLevels,
		TotalQuestions: totalQuestions,
		CorrectAnswers: correctAnswers,
	}, nil
}

// AdaptiveBatch 一批自适应练习题
type AdaptiveBatch struct {
	AssessmentID string               `json:"assessment_id"`
	Questions    []model.QuestionView `json:"questions"`
}

const DefaultAdaptiveCount = 5

// 出题时带给生成器的历史成绩条数
const recentAssessmentLimit = 5

// AdaptivePractice 按学习者薄弱科目生成一批练习题。
// 优先 LLM 出题，失败时回退静态题库；回退在同一批内按题面去重。
func (s *AssessmentService) AdaptivePractice(ctx context.Context, learnerID string, count int) (*AdaptiveBatch, error) {
	if count <= 0 {
		count = DefaultAdaptiveCount
	}

	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		LearnerID: learnerID,
		TestType:  model.TestTypeAdaptivePractice,
		Questions: model.StringList{},
		Status:    model.AssessmentInProgress,
	}
	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}

	performance := map[string]interface{}{
		"recent_performance": learner.SkillLevels,
	}
	if recent, err := s.AssessmentRepo.ListRecentCompleted(learnerID, recentAssessmentLimit); err != nil {
		logger.Log.Warn("查询近期测评失败，出题仅依据能力档案",
			zap.String("learner_id", learnerID),
			zap.Error(err))
	} else if len(recent) > 0 {
		scores := make([]float64, 0, len(recent))
		for _, a := range recent {
			scores = append(scores, a.Score)
		}
		performance["recent_scores"] = scores
	}
	usedFallback := make(map[string]bool)

	views := make([]model.QuestionView, 0, count)
	questionIDs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		subject := s.Bank.PickWeightedSubject(learner.SkillLevels)
		difficulty := model.DifficultyBeginner
		if level, ok := learner.SkillLevels[string(subject)]; ok {
			difficulty = model.Difficulty(level)
		}

		var question model.Question
		generated, err := s.Generator.GenerateQuestion(ctx, subject, difficulty, performance)
		if err == nil {
			question = model.Question{
				UUIDBase:       model.UUIDBase{ID: model.GenerateUUID()},
				Subject:        subject,
				Difficulty:     difficulty,
				QuestionTextEn: generated.QuestionTextEn,
				QuestionTextHi: generated.QuestionTextHi,
				OptionsEn:      generated.OptionsEn,
				OptionsHi:      generated.OptionsHi,
				CorrectAnswer:  generated.CorrectAnswer,
				ExplanationEn:  generated.ExplanationEn,
				ExplanationHi:  generated.ExplanationHi,
				ExamType:       learner.TargetExam,
			}
			monitoring.GeneratedQuestions.WithLabelValues("generator").Inc()
		} else {
			logger.Log.Warn("LLM出题失败，回退静态题库",
				zap.String("subject", string(subject)),
				zap.String("difficulty", string(difficulty)),
				zap.Error(err))
			question = s.Bank.PickAdaptiveFallback(usedFallback).Question(learner.TargetExam)
			monitoring.GeneratedQuestions.WithLabelValues("fallback").Inc()
		}

		if err := s.QuestionRepo.Create(&question); err != nil {
			return nil, err
		}
		questionIDs = append(questionIDs, question.ID)
		views = append(views, question.View())
	}

	// 回写题目列表，complete-assessment 时据此溯源
	assessment.Questions = questionIDs
	if err := s.AssessmentRepo.Update(assessment); err != nil {
		return nil, err
	}

	return &AdaptiveBatch{
		AssessmentID: assessment.ID,
		Questions:    views,
	}, nil
}

func (s *AssessmentService) ListByLearner(learnerID string) ([]model.Assessment, error) {
	return s.AssessmentRepo.ListByLearner(learnerID)
}

// FeedbackResult 错题的 AI 讲解
type FeedbackResult struct {
	Feedback           string `json:"feedback"`
	CorrectExplanation string `json:"correct_explanation"`
	StudyTips          string `json:"study_tips"`
}

const studyTips = "Focus on similar question patterns and practice daily for better retention."

// AnswerFeedback 对一次错误作答生成个性化讲解，附带题目自带的标准解析。
func (s *AssessmentService) AnswerFeedback(ctx context.Context, questionID string, userAnswer int, language model.Language) (*FeedbackResult, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return nil, err
	}

	explanation := question.ExplanationEn
	if language == model.LanguageHindi {
		explanation = question.ExplanationHi
	}

	return &FeedbackResult{
		Feedback:           s.Generator.Feedback(ctx, question, userAnswer, language),
		CorrectExplanation: explanation,
		StudyTips:          studyTips,
	}, nil
}
