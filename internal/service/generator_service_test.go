package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pathshala_backend/internal/config"
	"pathshala_backend/internal/model"
	"pathshala_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

const validQuestionJSON = `{
	"question_text_en": "What is 10% of 50?",
	"question_text_hi": "50 का 10% क्या है?",
	"options_en": ["2", "5", "10", "15"],
	"options_hi": ["2", "5", "10", "15"],
	"correct_answer": 1,
	"explanation_en": "10% of 50 = 5",
	"explanation_hi": "50 का 10% = 5"
}`

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func generatorFor(url string) *GeneratorService {
	return NewGeneratorService(config.AIConfig{
		BaseURL:        url,
		APIKey:         "test-key",
		Model:          "gpt-4o-mini",
		TimeoutSeconds: 2,
	})
}

func TestGenerateQuestion(t *testing.T) {
	srv := completionServer(t, validQuestionJSON)
	defer srv.Close()

	q, err := generatorFor(srv.URL).GenerateQuestion(
		context.Background(), model.SubjectQuantitative, model.DifficultyBeginner,
		map[string]interface{}{"recent_performance": map[string]string{}})
	assert.NoError(t, err)
	assert.Equal(t, "What is 10% of 50?", q.QuestionTextEn)
	assert.Equal(t, 1, q.CorrectAnswer)
	assert.Len(t, q.OptionsHi, 4)
}

func TestGenerateQuestionCodeFencedPayload(t *testing.T) {
	srv := completionServer(t, "```json\n"+validQuestionJSON+"\n```")
	defer srv.Close()

	q, err := generatorFor(srv.URL).GenerateQuestion(
		context.Background(), model.SubjectQuantitative, model.DifficultyBeginner, nil)
	assert.NoError(t, err)
	assert.Equal(t, "What is 10% of 50?", q.QuestionTextEn)
}

func TestGenerateQuestionChattyPayload(t *testing.T) {
	srv := completionServer(t, "Sure, here is your question:\n"+validQuestionJSON+"\nGood luck!")
	defer srv.Close()

	q, err := generatorFor(srv.URL).GenerateQuestion(
		context.Background(), model.SubjectEnglish, model.DifficultyIntermediate, nil)
	assert.NoError(t, err)
	assert.Equal(t, "50 का 10% क्या है?", q.QuestionTextHi)
}

func TestGenerateQuestionInvalidPayload(t *testing.T) {
	cases := map[string]string{
		"not json":         "I cannot answer that.",
		"missing options":  `{"question_text_en": "Q?", "question_text_hi": "प्र?", "correct_answer": 0}`,
		"bad answer index": `{"question_text_en": "Q?", "question_text_hi": "प्र?", "options_en": ["a","b","c","d"], "options_hi": ["a","b","c","d"], "correct_answer": 7}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			srv := completionServer(t, content)
			defer srv.Close()

			_, err := generatorFor(srv.URL).GenerateQuestion(
				context.Background(), model.SubjectReasoning, model.DifficultyBeginner, nil)
			assert.ErrorIs(t, err, util.ErrInvalidGeneratorPayload)
		})
	}
}

func TestGenerateQuestionNoAPIKey(t *testing.T) {
	svc := NewGeneratorService(config.AIConfig{BaseURL: "http://127.0.0.1:1", Model: "gpt-4o-mini"})

	_, err := svc.GenerateQuestion(context.Background(), model.SubjectEnglish, model.DifficultyBeginner, nil)
	assert.ErrorIs(t, err, util.ErrGeneratorUnavailable)
}

func TestFeedbackFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	question := &model.Question{
		QuestionTextEn: "What is 25% of 800?",
		OptionsEn:      model.StringList{"150", "200", "250", "300"},
		CorrectAnswer:  1,
	}
	feedback := generatorFor(srv.URL).Feedback(context.Background(), question, 0, model.LanguageEnglish)
	assert.Equal(t, feedbackFallback, feedback)
}

func TestFeedback(t *testing.T) {
	srv := completionServer(t, "Close! Remember that 25% means a quarter.")
	defer srv.Close()

	question := &model.Question{
		QuestionTextEn: "What is 25% of 800?",
		OptionsEn:      model.StringList{"150", "200", "250", "300"},
		CorrectAnswer:  1,
	}
	feedback := generatorFor(srv.URL).Feedback(context.Background(), question, 0, model.LanguageEnglish)
	assert.Equal(t, "Close! Remember that 25% means a quarter.", feedback)
}

func TestUpdateConfigSwapsCredentials(t *testing.T) {
	svc := NewGeneratorService(config.AIConfig{BaseURL: "http://old", Model: "gpt-4o-mini"})

	srv := completionServer(t, validQuestionJSON)
	defer srv.Close()

	svc.UpdateConfig(config.AIConfig{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		Model:          "gpt-4o-mini",
		TimeoutSeconds: 2,
	})

	q, err := svc.GenerateQuestion(context.Background(), model.SubjectQuantitative, model.DifficultyBeginner, nil)
	assert.NoError(t, err)
	assert.Equal(t, "What is 10% of 50?", q.QuestionTextEn)
}
