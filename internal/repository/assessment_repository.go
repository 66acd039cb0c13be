package repository

import (
	"errors"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/util"

	"gorm.io/gorm"
)

// AssessmentRepository 测评及其答题记录的持久化接口。
// 答题记录是追加式日志，自增主键即提交顺序。
type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id string) (*model.Assessment, error)
	Update(assessment *model.Assessment) error
	ListByLearner(learnerID string) ([]model.Assessment, error)
	ListCompletedByLearner(learnerID string) ([]model.Assessment, error)
	ListRecentCompleted(learnerID string, limit int) ([]model.Assessment, error)
	AppendAnswer(answer *model.AssessmentAnswer) error
	ListAnswers(assessmentID string) ([]model.AssessmentAnswer, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Where("id = ?", id).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) Update(assessment *model.Assessment) error {
	return r.db.Save(assessment).Error
}

func (r *assessmentRepository) ListByLearner(learnerID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("learner_id = ?", learnerID).
		Order("created_at desc").Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

// ListCompletedByLearner 按完成时间升序返回已完成的测评，进度分析依赖这个顺序。
func (r *assessmentRepository) ListCompletedByLearner(learnerID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("learner_id = ? AND completed_at IS NOT NULL", learnerID).
		Order("completed_at asc").Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) ListRecentCompleted(learnerID string, limit int) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("learner_id = ? AND completed_at IS NOT NULL", learnerID).
		Order("completed_at desc").Limit(limit).Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) AppendAnswer(answer *model.AssessmentAnswer) error {
	return r.db.Create(answer).Error
}

func (r *assessmentRepository) ListAnswers(assessmentID string) ([]model.AssessmentAnswer, error) {
	var answers []model.AssessmentAnswer
	err := r.db.Where("assessment_id = ?", assessmentID).
		Order("id asc").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
