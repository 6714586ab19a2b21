package service

import "safemit_training_backend/internal/model"

// IsAccessible reports whether every prerequisite of the lesson is present in
// the completed set. Lessons without prerequisites are always accessible.
// Prerequisite ids that resolve to nothing simply count as not completed;
// authoring mistakes must not break navigation.
func IsAccessible(lesson *model.Lesson, completed map[string]bool) bool {
	for _, prereq := range lesson.Prerequisites {
		if !completed[prereq] {
			return false
		}
	}
	return true
}

// AccessibleLessons evaluates IsAccessible for every lesson independently and
// returns the full accessibility set keyed by lesson id.
func AccessibleLessons(lessons []model.Lesson, completed map[string]bool) map[string]bool {
	accessible := make(map[string]bool, len(lessons))
	for i := range lessons {
		accessible[lessons[i].ID] = IsAccessible(&lessons[i], completed)
	}
	return accessible
}
