package util

import "errors"

var (
	ErrLearnerNotFound         = errors.New("learner not found")
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrQuestionNotFound        = errors.New("question not found")
	ErrAssessmentCompleted     = errors.New("assessment already completed")
	ErrGeneratorUnavailable    = errors.New("question generator unavailable")
	ErrInvalidGeneratorPayload = errors.New("generator returned an invalid question payload")
	ErrEmptyQuestionBank       = errors.New("question bank is empty")
)
