package service

import (
	"testing"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeUnitLesson() *model.Lesson {
	return &model.Lesson{
		ID: "l1",
		Content: []model.ContentUnit{
			{Type: model.UnitText, Content: "one"},
			{Type: model.UnitVideo, Content: "two", Duration: 60},
			{Type: model.UnitText, Content: "three"},
		},
	}
}

func TestNewLessonSessionRejectsEmptyLesson(t *testing.T) {
	_, err := NewLessonSession(&model.Lesson{ID: "empty"})
	assert.ErrorIs(t, err, util.ErrLessonNoContent)

	_, err = NewLessonSession(nil)
	assert.ErrorIs(t, err, util.ErrLessonNoContent)
}

func TestLessonSessionAdvanceToCompletion(t *testing.T) {
	s, err := NewLessonSession(threeUnitLesson())
	require.NoError(t, err)

	assert.Equal(t, 0, s.UnitIndex())
	assert.False(t, s.Completed())

	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.UnitIndex())
	assert.False(t, s.Advance())
	assert.Equal(t, 2, s.UnitIndex())

	// Last unit: completion fires exactly once.
	assert.True(t, s.Advance())
	assert.True(t, s.Completed())
	assert.False(t, s.Advance())
	assert.False(t, s.Advance())
	assert.True(t, s.Completed())
}

func TestLessonSessionRetreatGuards(t *testing.T) {
	s, err := NewLessonSession(threeUnitLesson())
	require.NoError(t, err)

	assert.False(t, s.Retreat(), "retreat at the first unit is a no-op")
	assert.Equal(t, 0, s.UnitIndex())

	s.Advance()
	assert.True(t, s.Retreat())
	assert.Equal(t, 0, s.UnitIndex())

	s.Advance()
	s.Advance()
	s.Advance()
	require.True(t, s.Completed())
	assert.False(t, s.Retreat(), "retreat after completion is a no-op")
}

func TestLessonSessionUnitCompletionIsMonotonic(t *testing.T) {
	s, err := NewLessonSession(threeUnitLesson())
	require.NoError(t, err)

	s.Advance()
	s.Advance()
	require.True(t, s.CompletedUnits()[0])
	require.True(t, s.CompletedUnits()[1])

	s.Retreat()
	s.Retreat()
	assert.True(t, s.CompletedUnits()[0], "navigating back never un-marks a unit")
	assert.True(t, s.CompletedUnits()[1])
}

func TestLessonSessionProgressPercent(t *testing.T) {
	s, err := NewLessonSession(threeUnitLesson())
	require.NoError(t, err)

	assert.Equal(t, 33, s.ProgressPercent())
	s.Advance()
	assert.Equal(t, 67, s.ProgressPercent())
	s.Advance()
	assert.Equal(t, 100, s.ProgressPercent())
	s.Advance()
	assert.Equal(t, 100, s.ProgressPercent())
}

func TestResumeLessonSessionClampsStaleState(t *testing.T) {
	lesson := threeUnitLesson()

	s, err := ResumeLessonSession(lesson, 7, map[int]bool{0: true, 9: true, -1: true})
	require.NoError(t, err)
	assert.Equal(t, 2, s.UnitIndex(), "index clamps to the last unit")
	assert.True(t, s.CompletedUnits()[0])
	assert.False(t, s.CompletedUnits()[9], "out-of-range units are dropped")

	s, err = ResumeLessonSession(lesson, -3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.UnitIndex())
}

func TestLessonSessionSingleUnit(t *testing.T) {
	lesson := &model.Lesson{ID: "l1", Content: []model.ContentUnit{{Type: model.UnitText, Content: "only"}}}
	s, err := NewLessonSession(lesson)
	require.NoError(t, err)

	assert.Equal(t, 100, s.ProgressPercent())
	assert.True(t, s.Advance())
	assert.True(t, s.Completed())
}
