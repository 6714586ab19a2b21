package service

import (
	"math"
	"time"

	"safemit_training_backend/internal/model"
	"safemit_training_backend/internal/util"
)

// ScoreQuiz evaluates submitted answers against the quiz's answer keys.
// Unanswered questions and answers of the wrong shape score as incorrect;
// scoring itself never fails for a well-configured quiz. A quiz with no
// questions or zero total points is a content-authoring error and is
// refused before any division happens.
func ScoreQuiz(quiz *model.Quiz, answers map[string]model.Answer) (*model.QuizResult, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, util.ErrInvalidQuizConfig
	}
	totalPoints := quiz.TotalPoints()
	if totalPoints <= 0 {
		return nil, util.ErrInvalidQuizConfig
	}

	earned := 0
	results := make([]model.QuestionResult, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		answer, answered := answers[question.ID]
		correct := answered && question.CorrectAnswer.Equals(answer)

		earnedPoints := 0
		if correct {
			earnedPoints = question.Points
			earned += question.Points
		}
		results = append(results, model.QuestionResult{
			QuestionID:   question.ID,
			Answered:     answered,
			Correct:      correct,
			Points:       question.Points,
			EarnedPoints: earnedPoints,
			Explanation:  question.Explanation,
		})
	}

	percentage := int(math.Round(float64(earned) / float64(totalPoints) * 100))
	return &model.QuizResult{
		QuizID:       quiz.ID,
		EarnedPoints: earned,
		TotalPoints:  totalPoints,
		Percentage:   percentage,
		Passed:       percentage >= quiz.PassingScore,
		Questions:    results,
		CompletedAt:  time.Now(),
	}, nil
}
