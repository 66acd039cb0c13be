package service

import (
	"context"

	"pathshala_backend/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockLearnerRepository is a mock type for the LearnerRepository interface
type MockLearnerRepository struct {
	mock.Mock
}

func (m *MockLearnerRepository) Create(learner *model.Learner) error {
	args := m.Called(learner)
	return args.Error(0)
}

func (m *MockLearnerRepository) FindByID(id string) (*model.Learner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Learner), args.Error(1)
}

func (m *MockLearnerRepository) FindByPhone(phone string) (*model.Learner, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Learner), args.Error(1)
}

func (m *MockLearnerRepository) UpdateSkillLevels(id string, levels model.SkillLevelMap) error {
	args := m.Called(id, levels)
	return args.Error(0)
}

// MockQuestionRepository is a mock type for the QuestionRepository interface
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *model.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) CreateBatch(questions []model.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) FindByID(id string) (*model.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

// MockAssessmentRepository is a mock type for the AssessmentRepository interface
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(assessment *model.Assessment) error {
	args := m.Called(assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) FindByID(id string) (*model.Assessment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) Update(assessment *model.Assessment) error {
	args := m.Called(assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) ListByLearner(learnerID string) ([]model.Assessment, error) {
	args := m.Called(learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) ListCompletedByLearner(learnerID string) ([]model.Assessment, error) {
	args := m.Called(learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) ListRecentCompleted(learnerID string, limit int) ([]model.Assessment, error) {
	args := m.Called(learnerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) AppendAnswer(answer *model.AssessmentAnswer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAssessmentRepository) ListAnswers(assessmentID string) ([]model.AssessmentAnswer, error) {
	args := m.Called(assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AssessmentAnswer), args.Error(1)
}

// MockStudyPlanRepository is a mock type for the StudyPlanRepository interface
type MockStudyPlanRepository struct {
	mock.Mock
}

func (m *MockStudyPlanRepository) Create(plan *model.StudyPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockStudyPlanRepository) FindByLearnerAndDate(learnerID, date string) (*model.StudyPlan, error) {
	args := m.Called(learnerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyPlan), args.Error(1)
}

// MockQuestionGenerator is a mock type for the QuestionGenerator interface
type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) GenerateQuestion(ctx context.Context, subject model.Subject, difficulty model.Difficulty, performance map[string]interface{}) (*GeneratedQuestion, error) {
	args := m.Called(ctx, subject, difficulty, performance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GeneratedQuestion), args.Error(1)
}

func (m *MockQuestionGenerator) Feedback(ctx context.Context, question *model.Question, userAnswer int, language model.Language) string {
	args := m.Called(ctx, question, userAnswer, language)
	return args.String(0)
}
