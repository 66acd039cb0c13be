package service

import (
	"sort"
	"time"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/questionbank"
	"pathshala_backend/internal/repository"
)

const (
	dailyQuestionCount = 20
	dailyStudyMinutes  = 20
)

type StudyPlanService struct {
	LearnerRepo   repository.LearnerRepository
	StudyPlanRepo repository.StudyPlanRepository
	Bank          *questionbank.Bank
}

func NewStudyPlanService(
	learnerRepo repository.LearnerRepository,
	studyPlanRepo repository.StudyPlanRepository,
	bank *questionbank.Bank,
) *StudyPlanService {
	return &StudyPlanService{
		LearnerRepo:   learnerRepo,
		StudyPlanRepo: studyPlanRepo,
		Bank:          bank,
	}
}

// DailyPlan 返回学习者当天的学习计划，同一天重复请求返回同一份。
// 科目按薄弱程度加权（beginner 计两次、intermediate 计一次），
// 没有技能档案时落到预设计划。
func (s *StudyPlanService) DailyPlan(learnerID string) (*model.StudyPlan, error) {
	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	existing, err := s.StudyPlanRepo.FindByLearnerAndDate(learnerID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	subjects := weakSubjects(learner.SkillLevels)
	if len(subjects) == 0 {
		preset := s.Bank.PickStudyPlanPreset()
		for _, subject := range preset.Subjects {
			subjects = append(subjects, string(subject))
		}
	}

	plan := &model.StudyPlan{
		LearnerID:      learnerID,
		Date:           today,
		Subjects:       truncateDedupe(subjects, 3),
		QuestionsCount: dailyQuestionCount,
		EstimatedTime:  dailyStudyMinutes,
		Status:         model.StudyPlanPending,
	}
	if err := s.StudyPlanRepo.Create(plan); err != nil {
		// 并发请求撞上唯一索引时，返回已落库的那份
		if created, findErr := s.StudyPlanRepo.FindByLearnerAndDate(learnerID, today); findErr == nil && created != nil {
			return created, nil
		}
		return nil, err
	}
	return plan, nil
}

// weakSubjects 薄弱科目加权列表：beginner 出现两次，intermediate 一次。
// advanced 科目不进当日计划。按科目名排序保证同一档案生成的计划稳定。
func weakSubjects(levels model.SkillLevelMap) []string {
	keys := make([]string, 0, len(levels))
	for subject := range levels {
		keys = append(keys, subject)
	}
	sort.Strings(keys)

	var subjects []string
	for _, subject := range keys {
		switch levels[subject] {
		case string(model.DifficultyBeginner):
			subjects = append(subjects, subject, subject)
		case string(model.DifficultyIntermediate):
			subjects = append(subjects, subject)
		}
	}
	return subjects
}

// truncateDedupe 先截断加权列表再按首次出现顺序去重，
// 加权重复只决定某科目能否挤进前 max 个名额。
func truncateDedupe(subjects []string, max int) []string {
	if len(subjects) > max {
		subjects = subjects[:max]
	}
	seen := make(map[string]bool, len(subjects))
	out := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		if seen[subject] {
			continue
		}
		seen[subject] = true
		out = append(out, subject)
	}
	return out
}
