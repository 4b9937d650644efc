package model

import (
	"time"
)

// QuizCompletionModel records the fact that a user solved a quiz. Rows are
// append-only; they are only ever removed in bulk when their quiz is deleted,
// inside the same transaction as the quiz row.
type QuizCompletionModel struct {
	ID          uint      `gorm:"column:quiz_completion_id;primaryKey" json:"-"`
	QuizID      uint      `gorm:"column:quiz_completion_quiz_id;not null;index" json:"id"`
	UserID      uint      `gorm:"column:quiz_completion_user_id;not null;index" json:"-"`
	CompletedAt time.Time `gorm:"column:quiz_completion_completed_at;not null" json:"completedAt"`
}

func (QuizCompletionModel) TableName() string {
	return "quiz_completions"
}
