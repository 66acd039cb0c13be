package service

import (
	"context"
	"testing"
	"time"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func completedWithScore(score float64, at time.Time) model.Assessment {
	return model.Assessment{
		LearnerID:   "learner-1",
		Score:       score,
		Status:      model.AssessmentCompleted,
		CompletedAt: &at,
	}
}

func TestProgressReport(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	assessmentRepo := new(MockAssessmentRepository)
	svc := NewProgressService(learnerRepo, assessmentRepo, nil)

	learnerRepo.On("FindByID", "learner-1").Return(testLearner(model.SkillLevelMap{
		"quantitative": "advanced",
		"reasoning":    "beginner",
		"english":      "intermediate",
	}), nil)

	// nine completed tests in chronological order
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	scores := []float64{20, 30, 40, 45, 50, 55, 60, 70, 85.5}
	assessments := make([]model.Assessment, 0, len(scores))
	for i, score := range scores {
		assessments = append(assessments, completedWithScore(score, base.AddDate(0, 0, i)))
	}
	assessmentRepo.On("ListCompletedByLearner", "learner-1").Return(assessments, nil)

	report, err := svc.Progress(context.Background(), "learner-1")
	assert.NoError(t, err)
	assert.Equal(t, 9, report.TotalTestsTaken)
	assert.InDelta(t, 50.61, report.AverageScore, 0.001)

	// only the last seven scores feed the trend
	assert.Equal(t, []float64{40, 45, 50, 55, 60, 70, 85.5}, report.RecentScores)
	assert.InDelta(t, 45.5, report.ImprovementTrend, 0.001)

	assert.Equal(t, []string{"quantitative"}, report.StrongSubjects)
	assert.Equal(t, []string{"reasoning"}, report.WeakSubjects)
}

func TestProgressReportNoHistory(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	assessmentRepo := new(MockAssessmentRepository)
	svc := NewProgressService(learnerRepo, assessmentRepo, nil)

	learnerRepo.On("FindByID", "learner-1").Return(testLearner(nil), nil)
	assessmentRepo.On("ListCompletedByLearner", "learner-1").Return([]model.Assessment{}, nil)

	report, err := svc.Progress(context.Background(), "learner-1")
	assert.NoError(t, err)
	assert.Zero(t, report.TotalTestsTaken)
	assert.Zero(t, report.AverageScore)
	assert.Empty(t, report.RecentScores)
	assert.Zero(t, report.ImprovementTrend)
}

func TestProgressReportSingleScore(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	assessmentRepo := new(MockAssessmentRepository)
	svc := NewProgressService(learnerRepo, assessmentRepo, nil)

	learnerRepo.On("FindByID", "learner-1").Return(testLearner(nil), nil)
	assessmentRepo.On("ListCompletedByLearner", "learner-1").Return([]model.Assessment{
		completedWithScore(66.67, time.Now()),
	}, nil)

	report, err := svc.Progress(context.Background(), "learner-1")
	assert.NoError(t, err)
	// one data point is not a trend
	assert.Zero(t, report.ImprovementTrend)
	assert.Equal(t, []float64{66.67}, report.RecentScores)
}

func TestProgressLearnerMissing(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	svc := NewProgressService(learnerRepo, new(MockAssessmentRepository), nil)

	learnerRepo.On("FindByID", "ghost").Return(nil, util.ErrLearnerNotFound)

	_, err := svc.Progress(context.Background(), "ghost")
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}
