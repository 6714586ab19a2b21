package model

import "encoding/json"

type AnswerKind string

const (
	AnswerSingle   AnswerKind = "single"
	AnswerMultiple AnswerKind = "multiple"
)

// Answer is a submitted response to a question: a single option index for
// multiple-choice and true-false questions, or a set of indices for
// multi-select questions. The kind is fixed by the question's type, so the
// scoring engine never inspects shapes at runtime.
type Answer struct {
	Kind    AnswerKind
	Index   int
	Indices []int
}

func SingleChoice(index int) Answer {
	return Answer{Kind: AnswerSingle, Index: index}
}

func MultiChoice(indices ...int) Answer {
	selected := make([]int, len(indices))
	copy(selected, indices)
	return Answer{Kind: AnswerMultiple, Indices: selected}
}

// Equals reports whether two answers select the same options. Multi-select
// answers compare as sets: sizes must match and every expected index must be
// present, so over-selection is never accepted.
func (a Answer) Equals(b Answer) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == AnswerSingle {
		return a.Index == b.Index
	}
	if len(a.Indices) != len(b.Indices) {
		return false
	}
	selected := make(map[int]bool, len(b.Indices))
	for _, idx := range b.Indices {
		selected[idx] = true
	}
	if len(selected) != len(a.Indices) {
		return false
	}
	for _, idx := range a.Indices {
		if !selected[idx] {
			return false
		}
	}
	return true
}

// MarshalJSON keeps the authored wire shape: a bare option index for single
// answers, an array of indices for multi-select answers.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == AnswerMultiple {
		if a.Indices == nil {
			return json.Marshal([]int{})
		}
		return json.Marshal(a.Indices)
	}
	return json.Marshal(a.Index)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*a = SingleChoice(single)
		return nil
	}
	var multiple []int
	if err := json.Unmarshal(data, &multiple); err != nil {
		return err
	}
	*a = MultiChoice(multiple...)
	return nil
}
