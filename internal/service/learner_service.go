package service

import (
	"errors"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/repository"
	"pathshala_backend/internal/util"
)

type LearnerService struct {
	LearnerRepo repository.LearnerRepository
}

func NewLearnerService(learnerRepo repository.LearnerRepository) *LearnerService {
	return &LearnerService{LearnerRepo: learnerRepo}
}

// CreateOrGet 手机号是学习者的自然键：已注册直接返回现有档案，不重复建档。
// created 标记本次是否新建，接口层据此区分 200 / 201。
func (s *LearnerService) CreateOrGet(name, phone, targetExam string, language model.Language) (learner *model.Learner, created bool, err error) {
	existing, err := s.LearnerRepo.FindByPhone(phone)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, util.ErrLearnerNotFound) {
		return nil, false, err
	}

	if language == "" {
		language = model.LanguageEnglish
	}
	learner = &model.Learner{
		Name:              name,
		Phone:             phone,
		TargetExam:        targetExam,
		PreferredLanguage: language,
		SkillLevels:       model.SkillLevelMap{},
	}
	if err := s.LearnerRepo.Create(learner); err != nil {
		return nil, false, err
	}
	return learner, true, nil
}

func (s *LearnerService) GetByID(id string) (*model.Learner, error) {
	return s.LearnerRepo.FindByID(id)
}
