package service

import (
	"testing"

	"safemit_training_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestIsAccessibleNoPrerequisites(t *testing.T) {
	lesson := &model.Lesson{ID: "l1"}
	assert.True(t, IsAccessible(lesson, nil))
	assert.True(t, IsAccessible(lesson, map[string]bool{}))
}

func TestIsAccessibleRequiresEveryPrerequisite(t *testing.T) {
	lesson := &model.Lesson{ID: "l3", Prerequisites: []string{"l1", "l2"}}

	assert.False(t, IsAccessible(lesson, map[string]bool{}))
	assert.False(t, IsAccessible(lesson, map[string]bool{"l1": true}))
	assert.True(t, IsAccessible(lesson, map[string]bool{"l1": true, "l2": true}))
}

func TestIsAccessibleUnknownPrerequisiteCountsAsIncomplete(t *testing.T) {
	lesson := &model.Lesson{ID: "l2", Prerequisites: []string{"does-not-exist"}}
	assert.False(t, IsAccessible(lesson, map[string]bool{"l1": true}))
}

func TestAccessibleLessonsEvaluatesIndependently(t *testing.T) {
	lessons := []model.Lesson{
		{ID: "l1"},
		{ID: "l2", Prerequisites: []string{"l1"}},
		{ID: "l3", Prerequisites: []string{"l1", "l2"}},
	}

	accessible := AccessibleLessons(lessons, map[string]bool{"l1": true})
	assert.True(t, accessible["l1"])
	assert.True(t, accessible["l2"])
	assert.False(t, accessible["l3"])

	// Completing a lesson never revokes access elsewhere.
	accessible = AccessibleLessons(lessons, map[string]bool{"l1": true, "l2": true})
	assert.True(t, accessible["l1"])
	assert.True(t, accessible["l2"])
	assert.True(t, accessible["l3"])
}
