package service

import (
	"testing"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreQuizRejectsBadConfig(t *testing.T) {
	_, err := ScoreQuiz(nil, nil)
	assert.ErrorIs(t, err, util.ErrInvalidQuizConfig)

	_, err = ScoreQuiz(&model.Quiz{ID: "empty"}, nil)
	assert.ErrorIs(t, err, util.ErrInvalidQuizConfig)

	zeroPoints := &model.Quiz{ID: "zero", Questions: []model.Question{{ID: "q1", Points: 0}}}
	_, err = ScoreQuiz(zeroPoints, nil)
	assert.ErrorIs(t, err, util.ErrInvalidQuizConfig)
}

func TestScoreQuizAllCorrect(t *testing.T) {
	quiz := twoQuestionQuiz()
	answers := map[string]model.Answer{
		"q1": model.SingleChoice(1),
		"q2": model.MultiChoice(2, 0),
	}

	result, err := ScoreQuiz(quiz, answers)
	require.NoError(t, err)
	assert.Equal(t, 10, result.EarnedPoints)
	assert.Equal(t, 10, result.TotalPoints)
	assert.Equal(t, 100, result.Percentage)
	assert.True(t, result.Passed)
	require.Len(t, result.Questions, 2)
	assert.True(t, result.Questions[0].Correct)
	assert.True(t, result.Questions[1].Correct)
	assert.False(t, result.CompletedAt.IsZero())
}

func TestScoreQuizUnansweredCountsAsIncorrect(t *testing.T) {
	quiz := twoQuestionQuiz()
	answers := map[string]model.Answer{"q1": model.SingleChoice(1)}

	result, err := ScoreQuiz(quiz, answers)
	require.NoError(t, err)
	assert.Equal(t, 5, result.EarnedPoints)
	assert.Equal(t, 50, result.Percentage)
	assert.False(t, result.Passed)
	assert.True(t, result.Questions[0].Answered)
	assert.False(t, result.Questions[1].Answered)
	assert.False(t, result.Questions[1].Correct)
}

func TestScoreQuizWrongKindCountsAsIncorrect(t *testing.T) {
	quiz := twoQuestionQuiz()
	answers := map[string]model.Answer{
		"q1": model.MultiChoice(1),
		"q2": model.MultiChoice(0, 2),
	}

	result, err := ScoreQuiz(quiz, answers)
	require.NoError(t, err)
	assert.Equal(t, 5, result.EarnedPoints)
	assert.False(t, result.Questions[0].Correct)
	assert.True(t, result.Questions[0].Answered)
}

func TestScoreQuizOverSelectionScoresZero(t *testing.T) {
	quiz := twoQuestionQuiz()
	answers := map[string]model.Answer{
		"q1": model.SingleChoice(1),
		"q2": model.MultiChoice(0, 1, 2, 3),
	}

	result, err := ScoreQuiz(quiz, answers)
	require.NoError(t, err)
	assert.False(t, result.Questions[1].Correct, "selecting every option must not pass a multi-select")
	assert.Equal(t, 5, result.EarnedPoints)
}

func TestScoreQuizPercentageRounds(t *testing.T) {
	quiz := &model.Quiz{
		ID:           "thirds",
		PassingScore: 70,
		Questions: []model.Question{
			{ID: "q1", Type: model.TrueFalse, CorrectAnswer: model.SingleChoice(0), Points: 1},
			{ID: "q2", Type: model.TrueFalse, CorrectAnswer: model.SingleChoice(0), Points: 1},
			{ID: "q3", Type: model.TrueFalse, CorrectAnswer: model.SingleChoice(0), Points: 1},
		},
	}
	answers := map[string]model.Answer{
		"q1": model.SingleChoice(0),
		"q2": model.SingleChoice(0),
		"q3": model.SingleChoice(1),
	}

	result, err := ScoreQuiz(quiz, answers)
	require.NoError(t, err)
	// 2/3 rounds to 67, not truncates to 66.
	assert.Equal(t, 67, result.Percentage)
	assert.False(t, result.Passed)
}

func TestScoreQuizPassingThresholdIsInclusive(t *testing.T) {
	quiz := &model.Quiz{
		ID:           "boundary",
		PassingScore: 70,
		Questions: []model.Question{
			{ID: "q1", Type: model.TrueFalse, CorrectAnswer: model.SingleChoice(0), Points: 7},
			{ID: "q2", Type: model.TrueFalse, CorrectAnswer: model.SingleChoice(0), Points: 3},
		},
	}

	result, err := ScoreQuiz(quiz, map[string]model.Answer{"q1": model.SingleChoice(0)})
	require.NoError(t, err)
	assert.Equal(t, 70, result.Percentage)
	assert.True(t, result.Passed, "a score exactly at the threshold passes")

	result, err = ScoreQuiz(quiz, map[string]model.Answer{"q2": model.SingleChoice(0)})
	require.NoError(t, err)
	assert.Equal(t, 30, result.Percentage)
	assert.False(t, result.Passed)
}

func TestScoreQuizPointsWeighted(t *testing.T) {
	quiz := &model.Quiz{
		ID:           "weighted",
		PassingScore: 50,
		Questions: []model.Question{
			{ID: "big", Type: model.TrueFalse, CorrectAnswer: model.SingleChoice(0), Points: 10},
			{ID: "small", Type: model.TrueFalse, CorrectAnswer: model.SingleChoice(0), Points: 2},
		},
	}

	result, err := ScoreQuiz(quiz, map[string]model.Answer{"big": model.SingleChoice(0)})
	require.NoError(t, err)
	assert.Equal(t, 83, result.Percentage)
	assert.True(t, result.Passed)
}
