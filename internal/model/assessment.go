package model

import "time"

type TestType string

const (
	TestTypeDiagnostic       TestType = "diagnostic"
	TestTypePractice         TestType = "practice"
	TestTypeMock             TestType = "mock"
	TestTypeAdaptivePractice TestType = "adaptive_practice"
)

type AssessmentStatus string

const (
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentCompleted  AssessmentStatus = "completed"
)

// swagger:model Assessment
type Assessment struct {
	UUIDBase
	LearnerID     string           `gorm:"type:varchar(36);not null;index" json:"user_id"`
	TestType      TestType         `gorm:"size:30;not null" json:"test_type"`
	Questions     StringList       `gorm:"type:json" json:"questions"` // question IDs
	Score         float64          `gorm:"default:0" json:"score"`
	SubjectScores ScoreMap         `gorm:"type:json" json:"subject_scores"`
	Status        AssessmentStatus `gorm:"size:20;default:'in_progress'" json:"status"`
	CompletedAt   *time.Time       `json:"completed_at"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// IsCompleted 完成时间一旦写入，测评即为终态
func (a *Assessment) IsCompleted() bool {
	return a.CompletedAt != nil
}

// AssessmentAnswer 仅追加的答题记录。自增ID即提交顺序，
// 并发提交互不覆盖（区别于整表读-改-写）。
type AssessmentAnswer struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	AssessmentID   string    `gorm:"type:varchar(36);not null;index" json:"-"`
	QuestionID     string    `gorm:"type:varchar(36);not null" json:"question_id"`
	SelectedOption int       `gorm:"not null" json:"selected_option"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	TimeTaken      int       `gorm:"not null" json:"time_taken"` // 秒
	CreatedAt      time.Time `json:"-"`
}

func (AssessmentAnswer) TableName() string {
	return "assessment_answers"
}
