package service

import (
	"errors"
	"testing"
	"time"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/questionbank"
	"pathshala_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestStudyPlanService(learnerRepo *MockLearnerRepository, planRepo *MockStudyPlanRepository) *StudyPlanService {
	return NewStudyPlanService(learnerRepo, planRepo, questionbank.NewBankWithSeed(7))
}

func TestDailyPlanIdempotent(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	planRepo := new(MockStudyPlanRepository)
	svc := newTestStudyPlanService(learnerRepo, planRepo)

	today := time.Now().Format("2006-01-02")
	existing := &model.StudyPlan{
		UUIDBase:  model.UUIDBase{ID: "plan-1"},
		LearnerID: "learner-1",
		Date:      today,
		Subjects:  model.StringList{"quantitative"},
	}
	learnerRepo.On("FindByID", "learner-1").Return(testLearner(nil), nil)
	planRepo.On("FindByLearnerAndDate", "learner-1", today).Return(existing, nil)

	plan, err := svc.DailyPlan("learner-1")
	assert.NoError(t, err)
	assert.Equal(t, "plan-1", plan.ID)
	planRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDailyPlanWeakSubjects(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	planRepo := new(MockStudyPlanRepository)
	svc := newTestStudyPlanService(learnerRepo, planRepo)

	today := time.Now().Format("2006-01-02")
	learnerRepo.On("FindByID", "learner-1").Return(testLearner(model.SkillLevelMap{
		"quantitative":      "beginner",
		"reasoning":         "intermediate",
		"english":           "advanced",
		"general_knowledge": "beginner",
	}), nil)
	planRepo.On("FindByLearnerAndDate", "learner-1", today).Return(nil, nil)

	var created *model.StudyPlan
	planRepo.On("Create", mock.AnythingOfType("*model.StudyPlan")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.StudyPlan)
		}).Return(nil)

	plan, err := svc.DailyPlan("learner-1")
	assert.NoError(t, err)
	assert.Equal(t, created, plan)

	// beginner and intermediate subjects only, deduped, never more than 3;
	// both beginner subjects fill the first slots of the weighted list
	assert.LessOrEqual(t, len(plan.Subjects), 3)
	assert.NotContains(t, []string(plan.Subjects), "english")
	assert.Equal(t, model.StringList{"general_knowledge", "quantitative"}, plan.Subjects)

	assert.Equal(t, today, plan.Date)
	assert.Equal(t, 20, plan.QuestionsCount)
	assert.Equal(t, 20, plan.EstimatedTime)
	assert.Equal(t, model.StudyPlanPending, plan.Status)
}

func TestDailyPlanCapsBeforeDedupe(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	planRepo := new(MockStudyPlanRepository)
	svc := newTestStudyPlanService(learnerRepo, planRepo)

	today := time.Now().Format("2006-01-02")
	// weighted list is [english, quantitative, quantitative, reasoning, reasoning];
	// only the first three entries compete for plan slots, so reasoning is out
	learnerRepo.On("FindByID", "learner-1").Return(testLearner(model.SkillLevelMap{
		"quantitative": "beginner",
		"reasoning":    "beginner",
		"english":      "intermediate",
	}), nil)
	planRepo.On("FindByLearnerAndDate", "learner-1", today).Return(nil, nil)
	planRepo.On("Create", mock.AnythingOfType("*model.StudyPlan")).Return(nil)

	plan, err := svc.DailyPlan("learner-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StringList{"english", "quantitative"}, plan.Subjects)
}

func TestDailyPlanWithoutSkillProfile(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	planRepo := new(MockStudyPlanRepository)
	svc := newTestStudyPlanService(learnerRepo, planRepo)

	today := time.Now().Format("2006-01-02")
	learnerRepo.On("FindByID", "learner-1").Return(testLearner(nil), nil)
	planRepo.On("FindByLearnerAndDate", "learner-1", today).Return(nil, nil)
	planRepo.On("Create", mock.AnythingOfType("*model.StudyPlan")).Return(nil)

	plan, err := svc.DailyPlan("learner-1")
	assert.NoError(t, err)

	// a preset fills in when there is no skill profile yet
	assert.NotEmpty(t, plan.Subjects)
	assert.LessOrEqual(t, len(plan.Subjects), 3)
}

func TestDailyPlanCreateRace(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	planRepo := new(MockStudyPlanRepository)
	svc := newTestStudyPlanService(learnerRepo, planRepo)

	today := time.Now().Format("2006-01-02")
	winner := &model.StudyPlan{
		UUIDBase:  model.UUIDBase{ID: "plan-winner"},
		LearnerID: "learner-1",
		Date:      today,
	}
	learnerRepo.On("FindByID", "learner-1").Return(testLearner(nil), nil)
	// first lookup misses, insert hits the unique index, second lookup wins
	planRepo.On("FindByLearnerAndDate", "learner-1", today).Return(nil, nil).Once()
	planRepo.On("Create", mock.Anything).Return(errors.New("Error 1062: Duplicate entry"))
	planRepo.On("FindByLearnerAndDate", "learner-1", today).Return(winner, nil).Once()

	plan, err := svc.DailyPlan("learner-1")
	assert.NoError(t, err)
	assert.Equal(t, "plan-winner", plan.ID)
}

func TestDailyPlanLearnerMissing(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	svc := newTestStudyPlanService(learnerRepo, new(MockStudyPlanRepository))

	learnerRepo.On("FindByID", "ghost").Return(nil, util.ErrLearnerNotFound)

	_, err := svc.DailyPlan("ghost")
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}
