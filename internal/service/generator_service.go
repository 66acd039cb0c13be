package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"pathshala_backend/internal/config"
	"pathshala_backend/internal/model"
	"pathshala_backend/internal/util"
	"pathshala_backend/pkg/logger"

	"go.uber.org/zap"
)

const systemPrompt = "You are an expert tutor for Indian competitive exams (SSC, Banking, State PSC). " +
	"Provide accurate, helpful explanations in both English and Hindi."

const feedbackFallback = "I apologize, but I'm having trouble generating a response right now. Please try again."

// GeneratorService 调用 LLM 生成自适应练习题和错题反馈。
// 配置可热更新（配合 configwatcher），读写都走锁。
type GeneratorService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewGeneratorService(cfg config.AIConfig) *GeneratorService {
	return &GeneratorService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// UpdateConfig 配置文件变更时由 watcher 回调，替换凭据和超时。
func (s *GeneratorService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: cfg.Timeout()}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GeneratedQuestion LLM 返回的题目载荷，入库前必须过 validate。
type GeneratedQuestion struct {
	QuestionTextEn string   `json:"question_text_en"`
	QuestionTextHi string   `json:"question_text_hi"`
	OptionsEn      []string `json:"options_en"`
	OptionsHi      []string `json:"options_hi"`
	CorrectAnswer  int      `json:"correct_answer"`
	ExplanationEn  string   `json:"explanation_en"`
	ExplanationHi  string   `json:"explanation_hi"`
}

func (q *GeneratedQuestion) validate() error {
	if q.QuestionTextEn == "" || q.QuestionTextHi == "" {
		return util.ErrInvalidGeneratorPayload
	}
	if len(q.OptionsEn) != 4 || len(q.OptionsHi) != 4 {
		return util.ErrInvalidGeneratorPayload
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
		return util.ErrInvalidGeneratorPayload
	}
	return nil
}

func (s *GeneratorService) complete(ctx context.Context, prompt string) (string, error) {
	s.mu.RLock()
	cfg := s.config
	client := s.client
	s.mu.RUnlock()

	if cfg.APIKey == "" {
		return "", util.ErrGeneratorUnavailable
	}

	reqBody := chatCompletionRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("AI API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", util.ErrGeneratorUnavailable
	}
	return completion.Choices[0].Message.Content, nil
}

// GenerateQuestion 让 LLM 按科目和难度出一道双语题。
// performance 注入学习者近期表现，让出题贴合薄弱点。
func (s *GeneratorService) GenerateQuestion(ctx context.Context, subject model.Subject, difficulty model.Difficulty, performance map[string]interface{}) (*GeneratedQuestion, error) {
	perfJSON, _ := json.Marshal(performance)

	prompt := fmt.Sprintf(`Generate a %s level %s question for Indian competitive exams (SSC, Banking, State PSC).

User Performance Context: %s

Please provide the response in the following JSON format:
{
    "question_text_en": "Question in English",
    "question_text_hi": "प्रश्न हिंदी में",
    "options_en": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "options_hi": ["विकल्प 1", "विकल्प 2", "विकल्प 3", "विकल्प 4"],
    "correct_answer": 0,
    "explanation_en": "Detailed explanation in English",
    "explanation_hi": "हिंदी में विस्तृत व्याख्या"
}

Make sure the question is relevant to %s and appropriate for Tier-2/3 city exam aspirants.`,
		difficulty, subject, string(perfJSON), subject)

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var question GeneratedQuestion
	if err := json.Unmarshal([]byte(extractJSON(raw)), &question); err != nil {
		logger.Log.Warn("生成题目解析失败",
			zap.String("subject", string(subject)),
			zap.Error(err))
		return nil, util.ErrInvalidGeneratorPayload
	}
	if err := question.validate(); err != nil {
		return nil, err
	}
	return &question, nil
}

// Feedback 为错题生成个性化讲解。LLM 不可用时返回固定道歉话术，不报错。
func (s *GeneratorService) Feedback(ctx context.Context, question *model.Question, userAnswer int, language model.Language) string {
	if userAnswer < 0 || userAnswer >= len(question.OptionsEn) {
		userAnswer = 0
	}

	lang := "English"
	if language == model.LanguageHindi {
		lang = "Hindi"
	}

	optionsJSON, _ := json.Marshal([]string(question.OptionsEn))
	prompt := fmt.Sprintf(`A student answered incorrectly on this competitive exam question:

Question: %s
Options: %s
Correct Answer: %s
Student's Answer: %s

Provide encouraging, personalized feedback that:
1. Explains why the student's answer was incorrect
2. Explains the correct approach step-by-step
3. Gives tips to avoid similar mistakes
4. Provides additional practice suggestions

Keep it concise but helpful for Indian competitive exam aspirants.
Language: %s`,
		question.QuestionTextEn, string(optionsJSON),
		question.OptionsEn[question.CorrectAnswer],
		question.OptionsEn[userAnswer], lang)

	feedback, err := s.complete(ctx, prompt)
	if err != nil {
		logger.Log.Warn("AI反馈生成失败", zap.Error(err))
		return feedbackFallback
	}
	return feedback
}

// extractJSON 容忍模型把 JSON 包在 markdown 代码块里返回。
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx >= 0 {
			raw = raw[:idx]
		}
		return strings.TrimSpace(raw)
	}
	// 模型偶尔在 JSON 前后加说明文字，截取首尾大括号之间的部分
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
