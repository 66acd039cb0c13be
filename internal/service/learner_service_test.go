package service

import (
	"testing"

	"pathshala_backend/internal/model"
	"pathshala_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateOrGetNewLearner(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	svc := NewLearnerService(learnerRepo)

	learnerRepo.On("FindByPhone", "9876543210").Return(nil, util.ErrLearnerNotFound)
	learnerRepo.On("Create", mock.AnythingOfType("*model.Learner")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Learner).ID = "learner-1"
		}).Return(nil)

	learner, created, err := svc.CreateOrGet("Ravi Kumar", "9876543210", "SSC", "")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "learner-1", learner.ID)
	assert.Equal(t, "Ravi Kumar", learner.Name)
	// empty language defaults to english
	assert.Equal(t, model.LanguageEnglish, learner.PreferredLanguage)
	assert.NotNil(t, learner.SkillLevels)
}

func TestCreateOrGetExistingPhone(t *testing.T) {
	learnerRepo := new(MockLearnerRepository)
	svc := NewLearnerService(learnerRepo)

	existing := testLearner(nil)
	learnerRepo.On("FindByPhone", "9876543210").Return(existing, nil)

	learner, created, err := svc.CreateOrGet("Someone Else", "9876543210", "Banking", model.LanguageHindi)
	assert.NoError(t, err)
	assert.False(t, created)
	// the registered profile wins over the new payload
	assert.Equal(t, existing, learner)
	learnerRepo.AssertNotCalled(t, "Create", mock.Anything)
}
