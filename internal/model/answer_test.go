package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerEqualsSingle(t *testing.T) {
	assert.True(t, SingleChoice(1).Equals(SingleChoice(1)))
	assert.False(t, SingleChoice(1).Equals(SingleChoice(2)))
	assert.False(t, SingleChoice(1).Equals(MultiChoice(1)))
}

func TestAnswerEqualsMultiSetSemantics(t *testing.T) {
	key := MultiChoice(0, 1, 3)

	assert.True(t, key.Equals(MultiChoice(0, 1, 3)))
	assert.True(t, key.Equals(MultiChoice(3, 0, 1)), "selection order must not matter")
	assert.False(t, key.Equals(MultiChoice(0, 1)), "missing an index")
	assert.False(t, key.Equals(MultiChoice(0, 1, 2, 3)), "over-selection must not pass")
	assert.False(t, key.Equals(MultiChoice(0, 1, 2)), "wrong index")
	assert.False(t, key.Equals(MultiChoice(0, 1, 1)), "duplicates do not substitute for a missing index")
}

func TestAnswerEqualsEmptyMulti(t *testing.T) {
	assert.True(t, MultiChoice().Equals(MultiChoice()))
	assert.False(t, MultiChoice().Equals(MultiChoice(0)))
}

func TestAnswerUnmarshalBareIndex(t *testing.T) {
	var a Answer
	require.NoError(t, json.Unmarshal([]byte(`2`), &a))
	assert.Equal(t, AnswerSingle, a.Kind)
	assert.Equal(t, 2, a.Index)
}

func TestAnswerUnmarshalIndexArray(t *testing.T) {
	var a Answer
	require.NoError(t, json.Unmarshal([]byte(`[0,2]`), &a))
	assert.Equal(t, AnswerMultiple, a.Kind)
	assert.Equal(t, []int{0, 2}, a.Indices)
}

func TestAnswerUnmarshalRejectsOtherShapes(t *testing.T) {
	var a Answer
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"index":1}`), &a))
}

func TestAnswerMarshalRoundTrip(t *testing.T) {
	single, err := json.Marshal(SingleChoice(1))
	require.NoError(t, err)
	assert.Equal(t, `1`, string(single))

	multi, err := json.Marshal(MultiChoice(0, 3))
	require.NoError(t, err)
	assert.Equal(t, `[0,3]`, string(multi))

	empty, err := json.Marshal(Answer{Kind: AnswerMultiple})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(empty))
}
