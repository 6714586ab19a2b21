package service

import (
	"math"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"
)

// LessonSession drives a learner through one lesson's content units. It is a
// small state machine: Viewing(i) for i in [0, N), then Completed. Unit
// completion is monotonic; navigating back never un-marks a unit.
type LessonSession struct {
	lesson         *model.Lesson
	unitIndex      int
	completedUnits map[int]bool
	completed      bool
}

func NewLessonSession(lesson *model.Lesson) (*LessonSession, error) {
	if lesson == nil || len(lesson.Content) == 0 {
		return nil, util.ErrLessonNoContent
	}
	return &LessonSession{
		lesson:         lesson,
		completedUnits: make(map[int]bool),
	}, nil
}

// ResumeLessonSession rebuilds a session from saved progress state. The unit
// index is clamped into the valid range so a stale record never produces an
// unrepresentable state.
func ResumeLessonSession(lesson *model.Lesson, unitIndex int, completedUnits map[int]bool) (*LessonSession, error) {
	s, err := NewLessonSession(lesson)
	if err != nil {
		return nil, err
	}
	if unitIndex < 0 {
		unitIndex = 0
	}
	if unitIndex > len(lesson.Content)-1 {
		unitIndex = len(lesson.Content) - 1
	}
	s.unitIndex = unitIndex
	for idx, done := range completedUnits {
		if done && idx >= 0 && idx < len(lesson.Content) {
			s.completedUnits[idx] = true
		}
	}
	return s, nil
}

// Advance marks the current unit completed and moves forward. On the last
// unit it transitions to Completed and returns true exactly once; every
// later call is a no-op.
func (s *LessonSession) Advance() bool {
	if s.completed {
		return false
	}
	s.completedUnits[s.unitIndex] = true
	if s.unitIndex < len(s.lesson.Content)-1 {
		s.unitIndex++
		return false
	}
	s.completed = true
	return true
}

// Retreat moves back one unit. The guard makes retreating at index 0 (or
// after completion) a no-op rather than a fault.
func (s *LessonSession) Retreat() bool {
	if s.completed || s.unitIndex == 0 {
		return false
	}
	s.unitIndex--
	return true
}

func (s *LessonSession) UnitIndex() int { return s.unitIndex }

func (s *LessonSession) Completed() bool { return s.completed }

func (s *LessonSession) CurrentUnit() model.ContentUnit {
	return s.lesson.Content[s.unitIndex]
}

func (s *LessonSession) TotalUnits() int { return len(s.lesson.Content) }

// CompletedUnits returns a copy of the per-unit completion set.
func (s *LessonSession) CompletedUnits() map[int]bool {
	units := make(map[int]bool, len(s.completedUnits))
	for idx := range s.completedUnits {
		units[idx] = true
	}
	return units
}

// ProgressPercent is display-only rounding; it is not part of the completion
// invariant.
func (s *LessonSession) ProgressPercent() int {
	if s.completed {
		return 100
	}
	return int(math.Round(float64(s.unitIndex+1) / float64(len(s.lesson.Content)) * 100))
}
