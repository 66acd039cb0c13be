package repository

import (
	"errors"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/util"

	"gorm.io/gorm"
)

// LearnerRepository 学习者档案的持久化接口
type LearnerRepository interface {
	Create(learner *model.Learner) error
	FindByID(id string) (*model.Learner, error)
	FindByPhone(phone string) (*model.Learner, error)
	UpdateSkillLevels(id string, levels model.SkillLevelMap) error
}

type learnerRepository struct {
	db *gorm.DB
}

func NewLearnerRepository(db *gorm.DB) LearnerRepository {
	return &learnerRepository{db: db}
}

func (r *learnerRepository) Create(learner *model.Learner) error {
	return r.db.Create(learner).Error
}

func (r *learnerRepository) FindByID(id string) (*model.Learner, error) {
	var learner model.Learner
	err := r.db.Where("id = ?", id).First(&learner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLearnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &learner, nil
}

func (r *learnerRepository) FindByPhone(phone string) (*model.Learner, error) {
	var learner model.Learner
	err := r.db.Where("phone = ?", phone).First(&learner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLearnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &learner, nil
}

func (r *learnerRepository) UpdateSkillLevels(id string, levels model.SkillLevelMap) error {
	return r.db.Model(&model.Learner{}).Where("id = ?", id).
		Update("skill_levels", levels).Error
}
