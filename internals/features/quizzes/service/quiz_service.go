package service

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quizengine_backend/internals/features/quizzes/model"
)

// Fixed feedback texts returned by the solve endpoint. The feedback is a
// constant, never computed per quiz.
const (
	FeedbackCorrect = "Congratulations, you solved the quiz correctly!"
	FeedbackWrong   = "Sorry, your answer is wrong - try again!"
)

// AnswerIsCorrect compares a submitted index list with the stored one using
// exact list equality (same order, same values).
//
// Edge case, kept on purpose: a quiz is never required to carry an answer
// list. If the stored answer is absent, only an absent submission counts as
// correct; an empty list is a real (and wrong) answer in that case.
func AnswerIsCorrect(stored datatypes.JSON, submitted *[]int) bool {
	if len(stored) == 0 {
		return submitted == nil
	}
	var want []int
	if err := json.Unmarshal(stored, &want); err != nil {
		return false
	}
	return submitted != nil && slices.Equal(want, *submitted)
}

// RecordCompletion appends a completion stamped with the current wall clock.
func RecordCompletion(ctx context.Context, db *gorm.DB, quizID, userID uint) error {
	completion := model.QuizCompletionModel{
		QuizID:      quizID,
		UserID:      userID,
		CompletedAt: time.Now(),
	}
	return db.WithContext(ctx).Create(&completion).Error
}

// DeleteQuiz removes a quiz and every completion referencing it in one
// transaction, so a reader can never observe the quiz gone while its
// completions remain (or the other way around).
func DeleteQuiz(ctx context.Context, db *gorm.DB, quiz *model.QuizModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("quiz_completion_quiz_id = ?", quiz.ID).
			Delete(&model.QuizCompletionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(quiz).Error
	})
}
