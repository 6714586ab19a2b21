package service

import (
	"testing"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionQuiz() *model.Quiz {
	return &model.Quiz{
		ID:           "quiz-1",
		PassingScore: 60,
		Questions: []model.Question{
			{
				ID:            "q1",
				Type:          model.MultipleChoice,
				Options:       []string{"a", "b", "c"},
				CorrectAnswer: model.SingleChoice(1),
				Points:        5,
			},
			{
				ID:            "q2",
				Type:          model.MultiSelect,
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: model.MultiChoice(0, 2),
				Points:        5,
			},
		},
	}
}

func TestNewQuizSessionRejectsBadConfig(t *testing.T) {
	_, err := NewQuizSession(nil)
	assert.ErrorIs(t, err, util.ErrInvalidQuizConfig)

	_, err = NewQuizSession(&model.Quiz{ID: "empty"})
	assert.ErrorIs(t, err, util.ErrInvalidQuizConfig)

	_, err = NewQuizSession(&model.Quiz{ID: "zero", Questions: []model.Question{{ID: "q1", Points: 0}}})
	assert.ErrorIs(t, err, util.ErrInvalidQuizConfig)
}

func TestQuizSessionForwardGatedOnAnswer(t *testing.T) {
	s, err := NewQuizSession(twoQuestionQuiz())
	require.NoError(t, err)

	assert.False(t, s.Next(), "cannot advance past an unanswered question")
	assert.Equal(t, 0, s.QuestionIndex())

	require.NoError(t, s.SetAnswer(model.SingleChoice(1)))
	assert.True(t, s.Next())
	assert.Equal(t, 1, s.QuestionIndex())

	require.NoError(t, s.SetAnswer(model.MultiChoice(0, 2)))
	assert.False(t, s.Next(), "no question after the last")
}

func TestQuizSessionBackNavigationKeepsAnswers(t *testing.T) {
	s, err := NewQuizSession(twoQuestionQuiz())
	require.NoError(t, err)

	require.NoError(t, s.SetAnswer(model.SingleChoice(0)))
	require.True(t, s.Next())
	require.NoError(t, s.SetAnswer(model.MultiChoice(1)))

	assert.True(t, s.Previous())
	assert.Equal(t, 0, s.QuestionIndex())
	assert.False(t, s.Previous())

	answers := s.Answers()
	assert.True(t, s.Answered("q1"))
	assert.True(t, s.Answered("q2"))
	assert.Equal(t, model.SingleChoice(0), answers["q1"])

	// Revising after navigating back replaces the earlier answer.
	require.NoError(t, s.SetAnswer(model.SingleChoice(2)))
	assert.Equal(t, model.SingleChoice(2), s.Answers()["q1"])
}

func TestQuizSessionRejectsWrongAnswerKind(t *testing.T) {
	s, err := NewQuizSession(twoQuestionQuiz())
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetAnswer(model.MultiChoice(1)), util.ErrAnswerKindMismatch)
	assert.False(t, s.Answered("q1"))

	require.NoError(t, s.SetAnswer(model.SingleChoice(1)))
	require.True(t, s.Next())
	assert.ErrorIs(t, s.SetAnswer(model.SingleChoice(0)), util.ErrAnswerKindMismatch)
}

func TestQuizSessionCanSubmitRequiresAllAnswers(t *testing.T) {
	s, err := NewQuizSession(twoQuestionQuiz())
	require.NoError(t, err)

	assert.False(t, s.CanSubmit())
	require.NoError(t, s.SetAnswer(model.SingleChoice(1)))
	assert.False(t, s.CanSubmit())

	require.True(t, s.Next())
	require.NoError(t, s.SetAnswer(model.MultiChoice(0, 2)))
	assert.True(t, s.CanSubmit())
}
