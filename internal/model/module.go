package model

import "sort"

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

type UnitType string

const (
	UnitText        UnitType = "text"
	UnitImage       UnitType = "image"
	UnitVideo       UnitType = "video"
	UnitInteractive UnitType = "interactive"
)

// ContentUnit is one renderable chunk within a lesson. Content holds raw
// text, a media URL, or a description depending on Type.
type ContentUnit struct {
	Type     UnitType `json:"type"`
	Content  string   `json:"content"`
	Duration int      `json:"duration,omitempty"` // seconds, video units only
}

// Lesson is an ordered sequence of content units, optionally ending in a
// quiz. Order values are unique within a module and define the canonical
// navigation sequence.
type Lesson struct {
	ID             string        `json:"id"`
	ModuleID       string        `json:"moduleId"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Duration       int           `json:"duration"` // seconds
	Order          int           `json:"order"`
	Content        []ContentUnit `json:"content"`
	Quiz           *Quiz         `json:"quiz,omitempty"`
	Prerequisites  []string      `json:"prerequisites"`
	CompletionRate float64       `json:"completionRate,omitempty"`
}

// TrainingModule is authored content: loaded once, read-only for the
// duration of a learner session.
type TrainingModule struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Difficulty      Difficulty `json:"difficulty"`
	TotalDuration   int        `json:"totalDuration"` // seconds
	EnrollmentCount int        `json:"enrollmentCount"`
	Lessons         []Lesson   `json:"lessons"`
}

func (m *TrainingModule) LessonByID(id string) *Lesson {
	for i := range m.Lessons {
		if m.Lessons[i].ID == id {
			return &m.Lessons[i]
		}
	}
	return nil
}

// SortedLessons returns the lessons in canonical navigation order.
func (m *TrainingModule) SortedLessons() []Lesson {
	lessons := make([]Lesson, len(m.Lessons))
	copy(lessons, m.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Order < lessons[j].Order
	})
	return lessons
}

// NextLesson returns the lesson following the given one by Order, or nil if
// the lesson is the last one or unknown.
func (m *TrainingModule) NextLesson(lessonID string) *Lesson {
	lessons := m.SortedLessons()
	for i := range lessons {
		if lessons[i].ID == lessonID {
			if i+1 < len(lessons) {
				next := lessons[i+1]
				return &next
			}
			return nil
		}
	}
	return nil
}

// FinalQuiz returns the module's final assessment: the quiz attached to the
// last lesson (by Order) that carries one, or nil when no lesson has a quiz.
func (m *TrainingModule) FinalQuiz() *Quiz {
	lessons := m.SortedLessons()
	for i := len(lessons) - 1; i >= 0; i-- {
		if lessons[i].Quiz != nil {
			return lessons[i].Quiz
		}
	}
	return nil
}
