package model

type StudyPlanStatus string

const (
	StudyPlanPending   StudyPlanStatus = "pending"
	StudyPlanCompleted StudyPlanStatus = "completed"
	StudyPlanSkipped   StudyPlanStatus = "skipped"
)

// swagger:model StudyPlan
type StudyPlan struct {
	UUIDBase
	LearnerID      string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_learner_date" json:"user_id"`
	Date           string          `gorm:"size:10;not null;uniqueIndex:idx_learner_date" json:"date"` // YYYY-MM-DD
	Subjects       StringList      `gorm:"type:json" json:"subjects"`
	QuestionsCount int             `gorm:"default:20" json:"questions_count"`
	EstimatedTime  int             `gorm:"default:20" json:"estimated_time"` // 分钟
	Status         StudyPlanStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}
