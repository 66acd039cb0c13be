// Package questionbank 管理静态双语题库：诊断测试抽样、按科目/难度筛选，
// 以及 LLM 出题失败时的回退选题。
package questionbank

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"pathshala_backend/internal/model"
)

const diagnosticSize = 10

// Bank 对静态题库的并发安全访问入口。随机源可注入，测试时传入固定种子。
type Bank struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewBank() *Bank {
	return NewBankWithSeed(time.Now().UnixNano())
}

func NewBankWithSeed(seed int64) *Bank {
	return &Bank{rng: rand.New(rand.NewSource(seed))}
}

// SampleForDiagnostic 按科目分层抽取诊断测试题：每个核心科目最多 3 道，
// 不足 10 道时从剩余未用题目中补齐，打乱顺序后截到 10 道。
// 去重基于 TemplateID，同一次抽样不会出现重复模板；
// 题库少于 10 道时返回全部。
func (b *Bank) SampleForDiagnostic() []Template {
	b.mu.Lock()
	defer b.mu.Unlock()

	used := make(map[string]bool)
	var picked []Template

	for _, subject := range model.CoreSubjects {
		var available []Template
		for _, t := range diagnosticCatalog {
			if t.Subject == subject && !used[t.TemplateID] {
				available = append(available, t)
			}
		}
		n := 3
		if len(available) < n {
			n = len(available)
		}
		b.rng.Shuffle(len(available), func(i, j int) {
			available[i], available[j] = available[j], available[i]
		})
		for _, t := range available[:n] {
			picked = append(picked, t)
			used[t.TemplateID] = true
		}
	}

	// 补齐到目标题数，题库耗尽时提前结束
	for len(picked) < diagnosticSize {
		var remaining []Template
		for _, t := range diagnosticCatalog {
			if !used[t.TemplateID] {
				remaining = append(remaining, t)
			}
		}
		if len(remaining) == 0 {
			break
		}
		t := remaining[b.rng.Intn(len(remaining))]
		picked = append(picked, t)
		used[t.TemplateID] = true
	}

	b.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > diagnosticSize {
		picked = picked[:diagnosticSize]
	}
	return picked
}

// FilterBySubjectAndDifficulty 返回诊断题库中科目和难度都精确匹配的题，可能为空。
func FilterBySubjectAndDifficulty(subject model.Subject, difficulty model.Difficulty) []Template {
	var matching []Template
	for _, t := range diagnosticCatalog {
		if t.Subject == subject && t.Difficulty == difficulty {
			matching = append(matching, t)
		}
	}
	return matching
}

// PickBySubjectAndDifficulty 从诊断题库中随机挑一道指定科目和难度的题，
// 没有完全匹配时退回题库第一道。LLM 返回内容不可用时的兜底路径。
func (b *Bank) PickBySubjectAndDifficulty(subject model.Subject, difficulty model.Difficulty) Template {
	matching := FilterBySubjectAndDifficulty(subject, difficulty)
	if len(matching) == 0 {
		return diagnosticCatalog[0]
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return matching[b.rng.Intn(len(matching))]
}

// PickAdaptiveFallback 从自适应回退题库中选题，按英文题面去重。
// used 由调用方在一批选题内持有；全部用过一轮后清空重来，
// 题库非空时本方法总能返回一道题。
func (b *Bank) PickAdaptiveFallback(used map[string]bool) Template {
	b.mu.Lock()
	defer b.mu.Unlock()

	var available []Template
	for _, t := range adaptiveCatalog {
		if !used[t.QuestionTextEn] {
			available = append(available, t)
		}
	}
	if len(available) == 0 {
		for k := range used {
			delete(used, k)
		}
		available = append(available, adaptiveCatalog...)
	}
	t := available[b.rng.Intn(len(available))]
	used[t.QuestionTextEn] = true
	return t
}

// PickWeightedSubject 按技能档案加权随机挑选练习科目：
// beginner 权重 3、intermediate 权重 2、其余权重 1。
// 没有档案时在四个核心科目中均匀随机。
func (b *Bank) PickWeightedSubject(levels map[string]string) model.Subject {
	b.mu.Lock()
	defer b.mu.Unlock()

	var pool []model.Subject
	// 排序保证同种子下选择可复现
	keys := make([]string, 0, len(levels))
	for subject := range levels {
		keys = append(keys, subject)
	}
	sort.Strings(keys)
	for _, subject := range keys {
		weight := 1
		switch levels[subject] {
		case string(model.DifficultyBeginner):
			weight = 3
		case string(model.DifficultyIntermediate):
			weight = 2
		}
		for i := 0; i < weight; i++ {
			pool = append(pool, model.Subject(subject))
		}
	}
	if len(pool) == 0 {
		pool = append(pool, model.CoreSubjects...)
	}
	return pool[b.rng.Intn(len(pool))]
}

// PickStudyPlanPreset 随机返回一个预设学习计划。
func (b *Bank) PickStudyPlanPreset() StudyPlanPreset {
	b.mu.Lock()
	defer b.mu.Unlock()
	return studyPlanPresets[b.rng.Intn(len(studyPlanPresets))]
}

// DiagnosticCatalogSize 诊断题库总题数。
func DiagnosticCatalogSize() int {
	return len(diagnosticCatalog)
}

// AdaptiveCatalogSize 自适应回退题库总题数。
func AdaptiveCatalogSize() int {
	return len(adaptiveCatalog)
}

// Question 将模板实例化为可落库的 Question 记录。
func (t Template) Question(examType string) model.Question {
	et := t.ExamType
	if examType != "" {
		et = examType
	}
	return model.Question{
		UUIDBase:       model.UUIDBase{ID: model.GenerateUUID()},
		Subject:        t.Subject,
		Difficulty:     t.Difficulty,
		QuestionTextEn: t.QuestionTextEn,
		QuestionTextHi: t.QuestionTextHi,
		OptionsEn:      t.OptionsEn,
		OptionsHi:      t.OptionsHi,
		CorrectAnswer:  t.CorrectAnswer,
		ExplanationEn:  t.ExplanationEn,
		ExplanationHi:  t.ExplanationHi,
		ExamType:       et,
	}
}
