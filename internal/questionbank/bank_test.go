package questionbank

import (
	"testing"

	"pathshala_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSampleForDiagnostic(t *testing.T) {
	bank := NewBankWithSeed(1)

	picked := bank.SampleForDiagnostic()
	assert.Len(t, picked, 10)

	perSubject := make(map[model.Subject]int)
	seen := make(map[string]bool)
	for _, tmpl := range picked {
		perSubject[tmpl.Subject]++
		assert.False(t, seen[tmpl.TemplateID], "template %s drawn twice", tmpl.TemplateID)
		seen[tmpl.TemplateID] = true
	}
	for _, subject := range model.CoreSubjects {
		assert.LessOrEqual(t, perSubject[subject], 3)
		assert.Positive(t, perSubject[subject], "subject %s missing", subject)
	}
}

func TestSampleForDiagnosticVariesOrder(t *testing.T) {
	a := NewBankWithSeed(1).SampleForDiagnostic()
	b := NewBankWithSeed(2).SampleForDiagnostic()

	idsOf := func(templates []Template) []string {
		ids := make([]string, len(templates))
		for i, tmpl := range templates {
			ids[i] = tmpl.TemplateID
		}
		return ids
	}
	assert.NotEqual(t, idsOf(a), idsOf(b))
}

func TestFilterBySubjectAndDifficulty(t *testing.T) {
	matching := FilterBySubjectAndDifficulty(model.SubjectEnglish, model.DifficultyBeginner)
	assert.NotEmpty(t, matching)
	for _, tmpl := range matching {
		assert.Equal(t, model.SubjectEnglish, tmpl.Subject)
		assert.Equal(t, model.DifficultyBeginner, tmpl.Difficulty)
	}

	// current_affairs has no hand-authored questions
	assert.Empty(t, FilterBySubjectAndDifficulty(model.SubjectCurrentAffairs, model.DifficultyBeginner))
}

func TestPickBySubjectAndDifficulty(t *testing.T) {
	bank := NewBankWithSeed(3)

	tmpl := bank.PickBySubjectAndDifficulty(model.SubjectReasoning, model.DifficultyBeginner)
	assert.Equal(t, model.SubjectReasoning, tmpl.Subject)
	assert.Equal(t, model.DifficultyBeginner, tmpl.Difficulty)

	// no advanced questions exist in the diagnostic pool, falls back to the first entry
	tmpl = bank.PickBySubjectAndDifficulty(model.SubjectReasoning, model.DifficultyAdvanced)
	assert.Equal(t, diagnosticCatalog[0].TemplateID, tmpl.TemplateID)
}

func TestPickAdaptiveFallbackExhaustsThenResets(t *testing.T) {
	bank := NewBankWithSeed(4)
	used := make(map[string]bool)

	seen := make(map[string]bool)
	for i := 0; i < AdaptiveCatalogSize(); i++ {
		tmpl := bank.PickAdaptiveFallback(used)
		assert.False(t, seen[tmpl.QuestionTextEn], "question %q repeated before exhaustion", tmpl.QuestionTextEn)
		seen[tmpl.QuestionTextEn] = true
	}

	// pool is exhausted, the next draw resets and still succeeds
	tmpl := bank.PickAdaptiveFallback(used)
	assert.NotEmpty(t, tmpl.QuestionTextEn)
	assert.Len(t, used, 1)
}

func TestPickWeightedSubject(t *testing.T) {
	bank := NewBankWithSeed(5)

	// empty profile draws from the core subjects
	subject := bank.PickWeightedSubject(nil)
	assert.Contains(t, model.CoreSubjects, subject)

	// a single-subject profile always returns that subject
	for i := 0; i < 10; i++ {
		subject = bank.PickWeightedSubject(map[string]string{"english": "beginner"})
		assert.Equal(t, model.SubjectEnglish, subject)
	}
}

func TestPickWeightedSubjectFavorsWeakness(t *testing.T) {
	bank := NewBankWithSeed(6)
	levels := map[string]string{
		"quantitative": "beginner",
		"english":      "advanced",
	}

	counts := make(map[model.Subject]int)
	for i := 0; i < 1000; i++ {
		counts[bank.PickWeightedSubject(levels)]++
	}
	// beginner carries 3x the weight of advanced
	assert.Greater(t, counts[model.SubjectQuantitative], counts[model.SubjectEnglish])
}

func TestPickStudyPlanPreset(t *testing.T) {
	bank := NewBankWithSeed(7)

	preset := bank.PickStudyPlanPreset()
	assert.NotEmpty(t, preset.Subjects)
	assert.NotEmpty(t, preset.Description)
}

func TestTemplateQuestion(t *testing.T) {
	tmpl := diagnosticCatalog[0]

	q := tmpl.Question("")
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, tmpl.Subject, q.Subject)
	assert.Equal(t, tmpl.ExamType, q.ExamType)
	assert.Equal(t, []string(q.OptionsEn), tmpl.OptionsEn)

	// explicit exam type overrides the template's
	q = tmpl.Question("Banking")
	assert.Equal(t, "Banking", q.ExamType)

	// two instances never share an id
	assert.NotEqual(t, tmpl.Question("").ID, tmpl.Question("").ID)
}

func TestCatalogIntegrity(t *testing.T) {
	ids := make(map[string]bool)
	for _, tmpl := range append(append([]Template{}, diagnosticCatalog...), adaptiveCatalog...) {
		assert.False(t, ids[tmpl.TemplateID], "duplicate template id %s", tmpl.TemplateID)
		ids[tmpl.TemplateID] = true

		assert.Len(t, tmpl.OptionsEn, 4, "template %s", tmpl.TemplateID)
		assert.Len(t, tmpl.OptionsHi, 4, "template %s", tmpl.TemplateID)
		assert.GreaterOrEqual(t, tmpl.CorrectAnswer, 0, "template %s", tmpl.TemplateID)
		assert.Less(t, tmpl.CorrectAnswer, 4, "template %s", tmpl.TemplateID)
		assert.NotEmpty(t, tmpl.QuestionTextEn, "template %s", tmpl.TemplateID)
		assert.NotEmpty(t, tmpl.QuestionTextHi, "template %s", tmpl.TemplateID)
	}
}
