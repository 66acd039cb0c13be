package model

// swagger:model Question
type Question struct {
	UUIDBase
	Subject        Subject    `gorm:"size:30;not null;index" json:"subject"`
	Difficulty     Difficulty `gorm:"size:20;not null" json:"difficulty"`
	QuestionTextEn string     `gorm:"type:text;not null" json:"question_text_en"`
	QuestionTextHi string     `gorm:"type:text" json:"question_text_hi"`
	OptionsEn      StringList `gorm:"type:json" json:"options_en"`
	OptionsHi      StringList `gorm:"type:json" json:"options_hi"`
	CorrectAnswer  int        `gorm:"not null" json:"correct_answer"` // 正确选项下标 0-3
	ExplanationEn  string     `gorm:"type:text" json:"explanation_en"`
	ExplanationHi  string     `gorm:"type:text" json:"explanation_hi"`
	ExamType       string     `gorm:"size:50" json:"exam_type"` // SSC, Banking, etc.
}

func (Question) TableName() string {
	return "questions"
}

// QuestionView 对外视图，隐藏答案与解析（出题阶段返回）
type QuestionView struct {
	ID             string     `json:"id"`
	Subject        Subject    `json:"subject"`
	Difficulty     Difficulty `json:"difficulty"`
	QuestionTextEn string     `json:"question_text_en"`
	QuestionTextHi string     `json:"question_text_hi"`
	OptionsEn      []string   `json:"options_en"`
	OptionsHi      []string   `json:"options_hi"`
	ExamType       string     `json:"exam_type"`
}

func (q *Question) View() QuestionView {
	return QuestionView{
		ID:             q.ID,
		Subject:        q.Subject,
		Difficulty:     q.Difficulty,
		QuestionTextEn: q.QuestionTextEn,
		QuestionTextHi: q.QuestionTextHi,
		OptionsEn:      q.OptionsEn,
		OptionsHi:      q.OptionsHi,
		ExamType:       q.ExamType,
	}
}
