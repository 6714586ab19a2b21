package service

import (
	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"
)

// QuizSession presents questions one at a time with forward/back navigation.
// Moving forward requires the current question to be answered; moving back
// never clears previously submitted answers. Submission becomes reachable
// only once every question is answered.
type QuizSession struct {
	quiz    *model.Quiz
	index   int
	answers map[string]model.Answer
}

func NewQuizSession(quiz *model.Quiz) (*QuizSession, error) {
	if quiz == nil || len(quiz.Questions) == 0 || quiz.TotalPoints() <= 0 {
		return nil, util.ErrInvalidQuizConfig
	}
	return &QuizSession{
		quiz:    quiz,
		answers: make(map[string]model.Answer),
	}, nil
}

func (s *QuizSession) CurrentQuestion() model.Question {
	return s.quiz.Questions[s.index]
}

func (s *QuizSession) QuestionIndex() int { return s.index }

func (s *QuizSession) TotalQuestions() int { return len(s.quiz.Questions) }

// SetAnswer records an answer for the current question. The answer's kind
// must match the question type; the tagged union rules out shape confusion
// between single and multi-select responses.
func (s *QuizSession) SetAnswer(answer model.Answer) error {
	question := s.CurrentQuestion()
	if answer.Kind != question.AnswerKind() {
		return util.ErrAnswerKindMismatch
	}
	s.answers[question.ID] = answer
	return nil
}

func (s *QuizSession) Answered(questionID string) bool {
	_, ok := s.answers[questionID]
	return ok
}

// Next advances to the following question, gated on the current one being
// answered. Returns false on the last question or when unanswered.
func (s *QuizSession) Next() bool {
	if !s.Answered(s.CurrentQuestion().ID) {
		return false
	}
	if s.index >= len(s.quiz.Questions)-1 {
		return false
	}
	s.index++
	return true
}

func (s *QuizSession) Previous() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// CanSubmit reports whether every question has an answer.
func (s *QuizSession) CanSubmit() bool {
	for i := range s.quiz.Questions {
		if !s.Answered(s.quiz.Questions[i].ID) {
			return false
		}
	}
	return true
}

// Answers returns a copy of the submitted answers keyed by question id.
func (s *QuizSession) Answers() map[string]model.Answer {
	answers := make(map[string]model.Answer, len(s.answers))
	for id, a := range s.answers {
		answers[id] = a
	}
	return answers
}
