package util

import "errors"

var (
	ErrModuleNotFound      = errors.New("training module not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrLessonLocked        = errors.New("lesson prerequisites not completed")
	ErrLessonNoContent     = errors.New("lesson has no content units")
	ErrNoActiveLesson      = errors.New("no lesson in progress")
	ErrQuizNotFound        = errors.New("module has no final quiz")
	ErrInvalidQuizConfig   = errors.New("quiz has no questions or zero total points")
	ErrLessonsIncomplete   = errors.New("all lessons must be completed before the final quiz")
	ErrAnswerKindMismatch  = errors.New("answer shape does not match question type")
	ErrNotPassed           = errors.New("certificate requires a passing quiz result")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrDuplicateOrder      = errors.New("duplicate lesson order within module")
)
