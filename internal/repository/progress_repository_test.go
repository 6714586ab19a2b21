package repository

import (
	"testing"
	"time"

	"safemit_training_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameRecord(t *testing.T) {
	repo := NewProgressRepository()

	first := repo.GetOrCreate("learner-1", "m1")
	first.CompleteLesson("l1")

	second := repo.GetOrCreate("learner-1", "m1")
	assert.Same(t, first, second)
	assert.True(t, second.HasCompleted("l1"))

	other := repo.GetOrCreate("learner-2", "m1")
	assert.False(t, other.HasCompleted("l1"), "records are per learner")
}

func TestFindMissesUntilCreated(t *testing.T) {
	repo := NewProgressRepository()

	_, ok := repo.Find("learner-1", "m1")
	assert.False(t, ok)

	repo.GetOrCreate("learner-1", "m1")
	record, ok := repo.Find("learner-1", "m1")
	assert.True(t, ok)
	assert.Equal(t, "learner-1", record.LearnerID)
}

func TestSaveStampsUpdatedAt(t *testing.T) {
	repo := NewProgressRepository()
	record := repo.GetOrCreate("learner-1", "m1")
	before := record.UpdatedAt

	time.Sleep(time.Millisecond)
	repo.Save(record)
	assert.True(t, record.UpdatedAt.After(before))
}

func TestListByModuleAndLearner(t *testing.T) {
	repo := NewProgressRepository()
	repo.GetOrCreate("learner-1", "m1")
	repo.GetOrCreate("learner-2", "m1")
	repo.GetOrCreate("learner-1", "m2")

	assert.Len(t, repo.ListByModule("m1"), 2)
	assert.Len(t, repo.ListByModule("m2"), 1)
	assert.Empty(t, repo.ListByModule("m3"))

	assert.Len(t, repo.ListByLearner("learner-1"), 2)
	assert.Len(t, repo.ListByLearner("learner-2"), 1)
}

func TestCertificateRepositoryIndexes(t *testing.T) {
	repo := NewCertificateRepository()
	cert := &model.Certificate{
		ID:               "cert-1",
		LearnerID:        "learner-1",
		ModuleID:         "m1",
		VerificationCode: "SAFE-MIT-ABCDEF123",
	}
	repo.Save(cert)

	byPair, ok := repo.FindByLearnerAndModule("learner-1", "m1")
	require.True(t, ok)
	assert.Equal(t, "cert-1", byPair.ID)

	_, ok = repo.FindByLearnerAndModule("learner-1", "m2")
	assert.False(t, ok)

	byCode, err := repo.FindByCode("SAFE-MIT-ABCDEF123")
	require.NoError(t, err)
	assert.Equal(t, "cert-1", byCode.ID)

	assert.Len(t, repo.ListByLearner("learner-1"), 1)
	assert.Empty(t, repo.ListByLearner("learner-2"))
}
