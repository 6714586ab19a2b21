package model

import "time"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	MultiSelect    QuestionType = "multi-select"
)

// Quiz is an ordered sequence of questions with an inclusive passing
// threshold. TimeLimit is advisory display metadata and is not enforced.
type Quiz struct {
	ID           string     `json:"id"`
	LessonID     string     `json:"lessonId"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passingScore"`        // percentage, 0-100
	TimeLimit    int        `json:"timeLimit,omitempty"` // minutes
}

func (q *Quiz) TotalPoints() int {
	total := 0
	for i := range q.Questions {
		total += q.Questions[i].Points
	}
	return total
}

func (q *Quiz) QuestionByID(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

type Question struct {
	ID            string       `json:"id"`
	Prompt        string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer Answer       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Points        int          `json:"points"`
}

// AnswerKind returns the answer shape the question's type requires.
func (q *Question) AnswerKind() AnswerKind {
	if q.Type == MultiSelect {
		return AnswerMultiple
	}
	return AnswerSingle
}

// QuizResult is the outcome of scoring one submission.
type QuizResult struct {
	QuizID       string           `json:"quizId"`
	EarnedPoints int              `json:"earnedPoints"`
	TotalPoints  int              `json:"totalPoints"`
	Percentage   int              `json:"percentage"`
	Passed       bool             `json:"passed"`
	Questions    []QuestionResult `json:"questions"`
	CompletedAt  time.Time        `json:"completedAt"`
}

// QuestionResult carries per-question correctness for review-mode rendering.
type QuestionResult struct {
	QuestionID   string `json:"questionId"`
	Answered     bool   `json:"answered"`
	Correct      bool   `json:"correct"`
	Points       int    `json:"points"`
	EarnedPoints int    `json:"earnedPoints"`
	Explanation  string `json:"explanation"`
}
