package model

import "time"

// ProgressRecord is the per-learner, per-module state mutated by the
// progression and scoring engines. It is an in-memory value; saving or
// restoring it is the surrounding application's responsibility, so every
// field serializes cleanly.
type ProgressRecord struct {
	LearnerID        string            `json:"learnerId"`
	ModuleID         string            `json:"moduleId"`
	CompletedLessons map[string]bool   `json:"completedLessons"`
	ActiveLessonID   string            `json:"activeLessonId,omitempty"`
	UnitIndex        int               `json:"unitIndex"`
	CompletedUnits   map[int]bool      `json:"completedUnits"`
	Answers          map[string]Answer `json:"answers,omitempty"`
	LastResult       *QuizResult       `json:"lastResult,omitempty"`
	CertificateID    string            `json:"certificateId,omitempty"`
	StartedAt        time.Time         `json:"startedAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func NewProgressRecord(learnerID, moduleID string) *ProgressRecord {
	now := time.Now()
	return &ProgressRecord{
		LearnerID:        learnerID,
		ModuleID:         moduleID,
		CompletedLessons: make(map[string]bool),
		CompletedUnits:   make(map[int]bool),
		StartedAt:        now,
		UpdatedAt:        now,
	}
}

// CompleteLesson adds the lesson to the completed-set and reports whether it
// was newly added. Re-completing an already-completed lesson is a no-op.
func (p *ProgressRecord) CompleteLesson(lessonID string) bool {
	if p.CompletedLessons == nil {
		p.CompletedLessons = make(map[string]bool)
	}
	if p.CompletedLessons[lessonID] {
		return false
	}
	p.CompletedLessons[lessonID] = true
	return true
}

func (p *ProgressRecord) HasCompleted(lessonID string) bool {
	return p.CompletedLessons[lessonID]
}

func (p *ProgressRecord) CompletedCount() int {
	return len(p.CompletedLessons)
}

// ResetActiveLesson points the record at a new lesson-in-progress.
func (p *ProgressRecord) ResetActiveLesson(lessonID string) {
	p.ActiveLessonID = lessonID
	p.UnitIndex = 0
	p.CompletedUnits = make(map[int]bool)
}

// ClearActiveLesson drops the lesson-in-progress state, typically after the
// lesson completes and control returns to the module overview.
func (p *ProgressRecord) ClearActiveLesson() {
	p.ActiveLessonID = ""
	p.UnitIndex = 0
	p.CompletedUnits = make(map[int]bool)
}
