package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

func TestGradeQuiz_NilQuiz(t *testing.T) {
	_, err := GradeQuiz(nil, map[int]int{}, false)
	assert.ErrorIs(t, err, app_errors.ErrNoQuiz)
}

func TestGradeQuiz_EmptyQuiz(t *testing.T) {
	_, err := GradeQuiz(&models.Quiz{}, map[int]int{}, false)
	assert.ErrorIs(t, err, app_errors.ErrEmptyQuiz)
}

func TestGradeQuiz_AllCorrect(t *testing.T) {
	quiz := newTestQuiz(4, 70, 85)
	answers := map[int]int{0: 0, 1: 1, 2: 2, 3: 3}

	result, err := GradeQuiz(quiz, answers, false)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 70, result.RequiredScore)
	assert.True(t, result.IsPassed)
	assert.False(t, result.IsFastTracked)
	assert.Len(t, result.Corrections, 4)
}

func TestGradeQuiz_Rounding(t *testing.T) {
	// 2 of 3 correct is 66.67, rounded to 67.
	quiz := newTestQuiz(3, 70, 85)
	answers := map[int]int{0: 0, 1: 1, 2: 0}

	result, err := GradeQuiz(quiz, answers, false)
	require.NoError(t, err)
	assert.Equal(t, 67, result.Score)
	assert.False(t, result.IsPassed)
}

func TestGradeQuiz_FastTrackThreshold(t *testing.T) {
	// 4 of 5 correct is 80: enough for the regular pass, short of the
	// fast-track bar.
	quiz := newTestQuiz(5, 70, 85)
	answers := map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 2}

	regular, err := GradeQuiz(quiz, answers, false)
	require.NoError(t, err)
	assert.Equal(t, 80, regular.Score)
	assert.True(t, regular.IsPassed)

	fastTrack, err := GradeQuiz(quiz, answers, true)
	require.NoError(t, err)
	assert.Equal(t, 80, fastTrack.Score)
	assert.Equal(t, 85, fastTrack.RequiredScore)
	assert.False(t, fastTrack.IsPassed)
	assert.True(t, fastTrack.IsFastTracked)
}

func TestGradeQuiz_DefaultThresholds(t *testing.T) {
	quiz := newTestQuiz(4, 0, 0)
	answers := map[int]int{0: 0, 1: 1, 2: 2}

	regular, err := GradeQuiz(quiz, answers, false)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPassingScore, regular.RequiredScore)
	assert.True(t, regular.IsPassed) // 75 >= 70

	fastTrack, err := GradeQuiz(quiz, answers, true)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFastTrackScore, fastTrack.RequiredScore)
	assert.False(t, fastTrack.IsPassed) // 75 < 85
}

func TestGradeQuiz_ExactThresholdPasses(t *testing.T) {
	quiz := newTestQuiz(10, 70, 85)
	answers := make(map[int]int, 7)
	for i := 0; i < 7; i++ {
		answers[i] = i % 4
	}

	result, err := GradeQuiz(quiz, answers, false)
	require.NoError(t, err)
	assert.Equal(t, 70, result.Score)
	assert.True(t, result.IsPassed)
}

func TestGradeQuiz_UnansweredAndOutOfRange(t *testing.T) {
	quiz := newTestQuiz(4, 70, 85)
	// One correct, one wrong option, one out-of-range option index, one
	// unanswered. None of these is an error.
	answers := map[int]int{0: 0, 1: 3, 2: 99}

	result, err := GradeQuiz(quiz, answers, false)
	require.NoError(t, err)
	assert.Equal(t, 25, result.Score)
	assert.False(t, result.IsPassed)
}

func TestGradeQuiz_CorrectionsCoverEveryQuestion(t *testing.T) {
	quiz := newTestQuiz(3, 70, 85)
	answers := map[int]int{0: 0}

	result, err := GradeQuiz(quiz, answers, false)
	require.NoError(t, err)
	require.Len(t, result.Corrections, 3)

	for i, corr := range result.Corrections {
		assert.Equal(t, i, corr.QuestionIndex)
		assert.Equal(t, quiz.Questions[i].CorrectAnswerIndex, corr.CorrectAnswerIndex)
		assert.Equal(t, "because", corr.Explanation)
	}
	assert.True(t, result.Corrections[0].IsCorrect)
	assert.False(t, result.Corrections[1].IsCorrect)
	assert.False(t, result.Corrections[2].IsCorrect)
}
