package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/repository"
	"pathshala_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	progressKeyPrefix = "progress:"
	progressCacheTTL  = 5 * time.Minute
)

type ProgressService struct {
	LearnerRepo    repository.LearnerRepository
	AssessmentRepo repository.AssessmentRepository
	Redis          *redis.Client
}

func NewProgressService(
	learnerRepo repository.LearnerRepository,
	assessmentRepo repository.AssessmentRepository,
	rdb *redis.Client,
) *ProgressService {
	return &ProgressService{
		LearnerRepo:    learnerRepo,
		AssessmentRepo: assessmentRepo,
		Redis:          rdb,
	}
}

// ProgressReport 学习进度快照
type ProgressReport struct {
	TotalTestsTaken  int                 `json:"total_tests_taken"`
	AverageScore     float64             `json:"average_score"`
	RecentScores     []float64           `json:"recent_scores"`
	ImprovementTrend float64             `json:"improvement_trend"`
	SkillLevels      model.SkillLevelMap `json:"skill_levels"`
	StrongSubjects   []string            `json:"strong_subjects"`
	WeakSubjects     []string            `json:"weak_subjects"`
}

// Progress 汇总学习者的历史成绩。结果短期缓存在 Redis，
// 缓存不可用时直接查库，不影响正确性。
func (s *ProgressService) Progress(ctx context.Context, learnerID string) (*ProgressReport, error) {
	cacheKey := progressKeyPrefix + learnerID
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached ProgressReport
			if json.Unmarshal([]byte(val), &cached) == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("进度缓存读取失败", zap.Error(err))
		}
	}

	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}

	assessments, err := s.AssessmentRepo.ListCompletedByLearner(learnerID)
	if err != nil {
		return nil, err
	}

	total := len(assessments)
	avg := 0.0
	if total > 0 {
		sum := 0.0
		for _, a := range assessments {
			sum += a.Score
		}
		avg = sum / float64(total)
	}

	// 最近 7 次成绩，按完成时间先后排列
	start := 0
	if total > 7 {
		start = total - 7
	}
	recentScores := make([]float64, 0, total-start)
	for _, a := range assessments[start:] {
		recentScores = append(recentScores, a.Score)
	}

	trend := 0.0
	if len(recentScores) >= 2 {
		trend = recentScores[len(recentScores)-1] - recentScores[0]
	}

	report := &ProgressReport{
		TotalTestsTaken:  total,
		AverageScore:     round2(avg),
		RecentScores:     recentScores,
		ImprovementTrend: round2(trend),
		SkillLevels:      learner.SkillLevels,
		StrongSubjects:   subjectsAtLevel(learner.SkillLevels, model.DifficultyAdvanced),
		WeakSubjects:     subjectsAtLevel(learner.SkillLevels, model.DifficultyBeginner),
	}

	if s.Redis != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, progressCacheTTL).Err(); err != nil {
				logger.Log.Warn("进度缓存写入失败", zap.Error(err))
			}
		}
	}
	return report, nil
}

// Invalidate 成绩变动后清掉缓存快照
func (s *ProgressService) Invalidate(ctx context.Context, learnerID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, progressKeyPrefix+learnerID).Err(); err != nil {
		logger.Log.Warn("进度缓存失效失败", zap.Error(err))
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func subjectsAtLevel(levels model.SkillLevelMap, level model.Difficulty) []string {
	subjects := make([]string, 0, len(levels))
	for subject, l := range levels {
		if l == string(level) {
			subjects = append(subjects, subject)
		}
	}
	sort.Strings(subjects)
	return subjects
}
