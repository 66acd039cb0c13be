package model

type Subject string

const (
	SubjectQuantitative     Subject = "quantitative"
	SubjectReasoning        Subject = "reasoning"
	SubjectEnglish          Subject = "english"
	SubjectGeneralKnowledge Subject = "general_knowledge"
	SubjectCurrentAffairs   Subject = "current_affairs"
)

// CoreSubjects 诊断测试覆盖的四个核心科目
var CoreSubjects = []Subject{
	SubjectQuantitative,
	SubjectReasoning,
	SubjectEnglish,
	SubjectGeneralKnowledge,
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// swagger:model Learner
type Learner struct {
	UUIDBase
	Name              string        `gorm:"size:100;not null" json:"name"`
	Phone             string        `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	TargetExam        string        `gorm:"size:50;not null" json:"target_exam"` // SSC, Banking, State PSC
	PreferredLanguage Language      `gorm:"size:10;default:'english'" json:"preferred_language"`
	SkillLevels       SkillLevelMap `gorm:"type:json" json:"skill_levels"` // subject -> difficulty
}

func (Learner) TableName() string {
	return "learners"
}
