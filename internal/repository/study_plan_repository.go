package repository

import (
	"errors"

	"pathshala_backend/internal/model"

	"gorm.io/gorm"
)

type StudyPlanRepository interface {
	Create(plan *model.StudyPlan) error
	FindByLearnerAndDate(learnerID, date string) (*model.StudyPlan, error)
}

type studyPlanRepository struct {
	db *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) StudyPlanRepository {
	return &studyPlanRepository{db: db}
}

func (r *studyPlanRepository) Create(plan *model.StudyPlan) error {
	return r.db.Create(plan).Error
}

// FindByLearnerAndDate 未找到时返回 (nil, nil)，调用方据此判断当天是否已有计划。
func (r *studyPlanRepository) FindByLearnerAndDate(learnerID, date string) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.db.Where("learner_id = ? AND date = ?", learnerID, date).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
